package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
}

func TestOccupancyOverlaps(t *testing.T) {
	o := &Occupancy{FromDate: day(10), ToDate: day(15)}

	cases := []struct {
		name     string
		from, to time.Time
		want     bool
	}{
		{"identical interval", day(10), day(15), true},
		{"contained inside", day(11), day(13), true},
		{"covers entirely", day(8), day(20), true},
		{"overlaps start", day(8), day(11), true},
		{"overlaps end", day(14), day(18), true},
		{"adjacent before, half-open", day(5), day(10), false},
		{"adjacent after, half-open", day(15), day(20), false},
		{"disjoint before", day(1), day(5), false},
		{"disjoint after", day(20), day(25), false},
		{"single night at start", day(10), day(11), true},
		{"single night at end", day(14), day(15), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, o.Overlaps(c.from, c.to))
		})
	}
}

func TestBookingNights(t *testing.T) {
	b := &Booking{CheckInDate: day(10), CheckOutDate: day(13)}
	assert.Equal(t, 3, b.Nights())

	oneNight := &Booking{CheckInDate: day(10), CheckOutDate: day(11)}
	assert.Equal(t, 1, oneNight.Nights())
}
