package validator

import (
	"regexp"
	"time"

	"hms/dto"
	"hms/errors"
)

// DateLayout là định dạng ngày dùng trên toàn bộ API (không có giờ)
const DateLayout = "2006-01-02"

// ParseDate parse chuỗi ngày theo DateLayout, chuẩn hóa về UTC midnight
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày không hợp lệ, cần YYYY-MM-DD", err)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// ParseInterval parse và kiểm tra một khoảng [checkIn, checkOut).
// Khoảng 0 đêm (checkIn == checkOut) bị từ chối.
func ParseInterval(checkInStr, checkOutStr string) (time.Time, time.Time, error) {
	checkIn, err := ParseDate(checkInStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	checkOut, err := ParseDate(checkOutStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !checkOut.After(checkIn) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDates, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}
	return checkIn, checkOut, nil
}

// ValidateCreateBooking validate request tạo booking trước khi chạm vào
// inventory index
func ValidateCreateBooking(req *dto.CreateBookingRequest) error {
	if req.RoomID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID phòng không được để trống", nil)
	}
	if _, _, err := ParseInterval(req.CheckInDate, req.CheckOutDate); err != nil {
		return err
	}
	if req.NumGuests < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Số khách không được âm", nil)
	}
	if req.UserID == 0 {
		if req.GuestName == "" {
			return errors.NewAppError(errors.ErrCodeRequiredField, "Tên khách không được để trống", nil)
		}
		if req.GuestPhone == "" {
			return errors.NewAppError(errors.ErrCodeRequiredField, "Số điện thoại khách không được để trống", nil)
		}
		if !isValidPhone(req.GuestPhone) {
			return errors.NewAppError(errors.ErrCodeValidation, "Số điện thoại khách không hợp lệ", nil)
		}
		if req.GuestEmail != "" && !isValidEmail(req.GuestEmail) {
			return errors.NewAppError(errors.ErrCodeValidation, "Email khách không hợp lệ", nil)
		}
	}
	return nil
}

// ValidateCreateBlock validate request chặn phòng
func ValidateCreateBlock(req *dto.CreateBlockRequest) error {
	if req.RoomID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID phòng không được để trống", nil)
	}
	if req.Reason == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Lý do chặn phòng không được để trống", nil)
	}
	if _, _, err := ParseInterval(req.FromDate, req.ToDate); err != nil {
		return err
	}
	return nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// isValidPhone kiểm tra số điện thoại hợp lệ
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^[0-9]{10,12}$`)
	return phoneRegex.MatchString(phone)
}
