package models

import (
	"testing"

	"hms/constants"

	"github.com/stretchr/testify/assert"
)

func TestRoomValidateStatus(t *testing.T) {
	for _, s := range []int{
		constants.RoomStatusUnavailable,
		constants.RoomStatusAvailable,
		constants.RoomStatusMaintenance,
	} {
		r := &Room{Status: s}
		assert.NoError(t, r.ValidateStatus(), "status %d", s)
	}

	assert.Error(t, (&Room{Status: -1}).ValidateStatus())
	assert.Error(t, (&Room{Status: constants.RoomStatusMaintenance + 1}).ValidateStatus())
}

func TestRoomValidate(t *testing.T) {
	valid := &Room{
		HotelID:    1,
		RoomNumber: "101",
		Capacity:   2,
		Price:      500000,
		Status:     constants.RoomStatusAvailable,
	}
	assert.NoError(t, valid.Validate())

	noNumber := *valid
	noNumber.RoomNumber = ""
	assert.Error(t, noNumber.Validate())

	zeroCap := *valid
	zeroCap.Capacity = 0
	assert.Error(t, zeroCap.Validate())
}
