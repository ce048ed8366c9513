package models

import (
	hmserrors "hms/errors"
)

// transitionTable liệt kê đầy đủ các chuyển trạng thái hợp lệ.
// Booking service là nơi duy nhất được ghi Status; mọi chuyển khác
// bảng này bị từ chối với InvalidTransitionError.
var transitionTable = map[BookingStatus][]BookingStatus{
	BookingStatusPending:    {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed:  {BookingStatusCheckedIn, BookingStatusCancelled},
	BookingStatusCheckedIn:  {BookingStatusCheckedOut},
	BookingStatusCheckedOut: {},
	BookingStatusCancelled:  {},
}

// CanTransition kiểm tra chuyển trạng thái from -> to có hợp lệ không
func CanTransition(from, to BookingStatus) bool {
	for _, next := range transitionTable[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidateTransition trả về InvalidTransitionError nếu chuyển không hợp lệ
func ValidateTransition(from, to BookingStatus) error {
	if !CanTransition(from, to) {
		return &hmserrors.InvalidTransitionError{From: string(from), To: string(to)}
	}
	return nil
}

// IsValidStatus kiểm tra chuỗi trạng thái client gửi lên có thuộc enum không
func IsValidStatus(s BookingStatus) bool {
	_, ok := transitionTable[s]
	return ok
}

// HasVerifiedKYC là precondition của bước check-in: mỗi khách phải có
// ít nhất một giấy tờ đã VERIFIED gắn vào booking.
func (b *Booking) HasVerifiedKYC() bool {
	if b.NumGuests < 1 {
		return false
	}
	verified := 0
	for _, doc := range b.KYCDocuments {
		if doc.Status == KYCStatusVerified {
			verified++
		}
	}
	return verified >= b.NumGuests
}
