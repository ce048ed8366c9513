package models

import (
	"testing"

	hmserrors "hms/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to BookingStatus
		ok       bool
	}{
		{BookingStatusPending, BookingStatusConfirmed, true},
		{BookingStatusPending, BookingStatusCancelled, true},
		{BookingStatusPending, BookingStatusCheckedIn, false},
		{BookingStatusPending, BookingStatusCheckedOut, false},
		{BookingStatusConfirmed, BookingStatusCheckedIn, true},
		{BookingStatusConfirmed, BookingStatusCancelled, true},
		{BookingStatusConfirmed, BookingStatusPending, false},
		{BookingStatusConfirmed, BookingStatusCheckedOut, false},
		{BookingStatusCheckedIn, BookingStatusCheckedOut, true},
		{BookingStatusCheckedIn, BookingStatusCancelled, false},
		{BookingStatusCheckedIn, BookingStatusConfirmed, false},
		{BookingStatusCheckedOut, BookingStatusCancelled, false},
		{BookingStatusCheckedOut, BookingStatusCheckedIn, false},
		{BookingStatusCancelled, BookingStatusPending, false},
		{BookingStatusCancelled, BookingStatusConfirmed, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.ok, CanTransition(c.from, c.to),
			"transition %s -> %s", c.from, c.to)
	}
}

func TestCanTransition_SelfLoopRejected(t *testing.T) {
	for from := range map[BookingStatus]bool{
		BookingStatusPending: true, BookingStatusConfirmed: true,
		BookingStatusCheckedIn: true, BookingStatusCheckedOut: true,
		BookingStatusCancelled: true,
	} {
		assert.False(t, CanTransition(from, from), "self transition %s", from)
	}
}

func TestValidateTransition(t *testing.T) {
	require.NoError(t, ValidateTransition(BookingStatusPending, BookingStatusConfirmed))

	err := ValidateTransition(BookingStatusCheckedOut, BookingStatusCancelled)
	require.Error(t, err)
	assert.True(t, hmserrors.IsInvalidTransition(err))

	var ite *hmserrors.InvalidTransitionError
	require.ErrorAs(t, err, &ite)
	assert.Equal(t, string(BookingStatusCheckedOut), ite.From)
	assert.Equal(t, string(BookingStatusCancelled), ite.To)
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(BookingStatusPending))
	assert.True(t, IsValidStatus(BookingStatusCancelled))
	assert.False(t, IsValidStatus(BookingStatus("ARCHIVED")))
	assert.False(t, IsValidStatus(BookingStatus("")))
	assert.False(t, IsValidStatus(BookingStatus("pending")))
}

func TestHasVerifiedKYC(t *testing.T) {
	verified := KYCDocument{Status: KYCStatusVerified}
	pending := KYCDocument{Status: KYCStatusPending}
	rejected := KYCDocument{Status: KYCStatusRejected}

	t.Run("enough verified documents", func(t *testing.T) {
		b := &Booking{NumGuests: 2, KYCDocuments: []KYCDocument{verified, verified}}
		assert.True(t, b.HasVerifiedKYC())
	})

	t.Run("pending documents do not count", func(t *testing.T) {
		b := &Booking{NumGuests: 2, KYCDocuments: []KYCDocument{verified, pending}}
		assert.False(t, b.HasVerifiedKYC())
	})

	t.Run("rejected documents do not count", func(t *testing.T) {
		b := &Booking{NumGuests: 1, KYCDocuments: []KYCDocument{rejected}}
		assert.False(t, b.HasVerifiedKYC())
	})

	t.Run("more documents than guests is fine", func(t *testing.T) {
		b := &Booking{NumGuests: 1, KYCDocuments: []KYCDocument{verified, pending, verified}}
		assert.True(t, b.HasVerifiedKYC())
	})

	t.Run("no documents", func(t *testing.T) {
		b := &Booking{NumGuests: 1}
		assert.False(t, b.HasVerifiedKYC())
	})

	t.Run("zero guests never passes", func(t *testing.T) {
		b := &Booking{NumGuests: 0, KYCDocuments: []KYCDocument{verified}}
		assert.False(t, b.HasVerifiedKYC())
	})
}

func TestRefundStatusOnCancel(t *testing.T) {
	now := day(1)

	t.Run("unpaid stays unchanged", func(t *testing.T) {
		b := &Booking{PaymentStatus: PaymentStatusUnpaid, CheckInDate: day(10)}
		assert.Equal(t, PaymentStatusUnpaid, b.RefundStatusOnCancel(now))
	})

	t.Run("early cancel refunds in full", func(t *testing.T) {
		b := &Booking{PaymentStatus: PaymentStatusPaid, CheckInDate: day(10)}
		assert.Equal(t, PaymentStatusRefunded, b.RefundStatusOnCancel(now))
	})

	t.Run("cancel within 72h of check-in refunds partially", func(t *testing.T) {
		b := &Booking{PaymentStatus: PaymentStatusPaid, CheckInDate: day(3)}
		assert.Equal(t, PaymentStatusPartiallyRefunded, b.RefundStatusOnCancel(now))
	})

	t.Run("exactly 72h notice still refunds in full", func(t *testing.T) {
		b := &Booking{PaymentStatus: PaymentStatusPaid, CheckInDate: day(4)}
		assert.Equal(t, PaymentStatusRefunded, b.RefundStatusOnCancel(now))
	})
}

func TestBookingIsActive(t *testing.T) {
	for _, s := range ActiveStatuses {
		b := &Booking{Status: s}
		assert.True(t, b.IsActive(), "status %s", s)
	}
	assert.False(t, (&Booking{Status: BookingStatusCancelled}).IsActive())
	assert.False(t, (&Booking{Status: BookingStatusCheckedOut}).IsActive())
}
