package services

import (
	"testing"

	"hms/models"

	"github.com/stretchr/testify/assert"
)

func TestSortRoomsForListing(t *testing.T) {
	rooms := []models.Room{
		{RoomNumber: "305", Price: 900000},
		{RoomNumber: "101", Price: 500000},
		{RoomNumber: "202", Price: 500000},
		{RoomNumber: "102", Price: 500000},
		{RoomNumber: "201", Price: 700000},
	}

	SortRoomsForListing(rooms)

	want := []string{"101", "102", "202", "201", "305"}
	for i, num := range want {
		assert.Equal(t, num, rooms[i].RoomNumber, "position %d", i)
	}
}

func TestSortRoomsForListing_Empty(t *testing.T) {
	var rooms []models.Room
	SortRoomsForListing(rooms)
	assert.Empty(t, rooms)
}
