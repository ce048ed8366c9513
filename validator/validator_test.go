package validator

import (
	"testing"
	"time"

	"hms/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), got)

	for _, bad := range []string{"", "10-03-2026", "2026/03/10", "2026-3-10", "2026-03-10T00:00:00Z"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestParseInterval(t *testing.T) {
	t.Run("valid interval", func(t *testing.T) {
		from, to, err := ParseInterval("2026-03-10", "2026-03-12")
		require.NoError(t, err)
		assert.True(t, to.After(from))
	})

	t.Run("zero nights rejected", func(t *testing.T) {
		_, _, err := ParseInterval("2026-03-10", "2026-03-10")
		assert.Error(t, err)
	})

	t.Run("reversed dates rejected", func(t *testing.T) {
		_, _, err := ParseInterval("2026-03-12", "2026-03-10")
		assert.Error(t, err)
	})
}

func validCreateRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		RoomID:       7,
		GuestName:    "Nguyen Van A",
		GuestPhone:   "0901234567",
		NumGuests:    2,
		CheckInDate:  "2026-03-10",
		CheckOutDate: "2026-03-12",
	}
}

func TestValidateCreateBooking(t *testing.T) {
	t.Run("walk-in guest with contact info", func(t *testing.T) {
		req := validCreateRequest()
		assert.NoError(t, ValidateCreateBooking(&req))
	})

	t.Run("registered user skips guest fields", func(t *testing.T) {
		req := validCreateRequest()
		req.UserID = 42
		req.GuestName = ""
		req.GuestPhone = ""
		assert.NoError(t, ValidateCreateBooking(&req))
	})

	t.Run("missing room", func(t *testing.T) {
		req := validCreateRequest()
		req.RoomID = 0
		assert.Error(t, ValidateCreateBooking(&req))
	})

	t.Run("walk-in guest without name", func(t *testing.T) {
		req := validCreateRequest()
		req.GuestName = ""
		assert.Error(t, ValidateCreateBooking(&req))
	})

	t.Run("walk-in guest without phone", func(t *testing.T) {
		req := validCreateRequest()
		req.GuestPhone = ""
		assert.Error(t, ValidateCreateBooking(&req))
	})

	t.Run("bad phone", func(t *testing.T) {
		req := validCreateRequest()
		req.GuestPhone = "abc"
		assert.Error(t, ValidateCreateBooking(&req))
	})

	t.Run("bad email", func(t *testing.T) {
		req := validCreateRequest()
		req.GuestEmail = "not-an-email"
		assert.Error(t, ValidateCreateBooking(&req))
	})

	t.Run("zero-night stay", func(t *testing.T) {
		req := validCreateRequest()
		req.CheckOutDate = req.CheckInDate
		assert.Error(t, ValidateCreateBooking(&req))
	})
}

func TestValidateCreateBlock(t *testing.T) {
	valid := dto.CreateBlockRequest{
		RoomID:   3,
		Reason:   "Sửa điều hòa",
		FromDate: "2026-03-10",
		ToDate:   "2026-03-15",
	}
	assert.NoError(t, ValidateCreateBlock(&valid))

	noReason := valid
	noReason.Reason = ""
	assert.Error(t, ValidateCreateBlock(&noReason))

	zeroNights := valid
	zeroNights.ToDate = zeroNights.FromDate
	assert.Error(t, ValidateCreateBlock(&zeroNights))
}
