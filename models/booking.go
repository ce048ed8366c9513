package models

import (
	"time"
)

// BookingStatus là trạng thái vòng đời của booking
type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "PENDING"
	BookingStatusConfirmed  BookingStatus = "CONFIRMED"
	BookingStatusCheckedIn  BookingStatus = "CHECKED_IN"
	BookingStatusCheckedOut BookingStatus = "CHECKED_OUT"
	BookingStatusCancelled  BookingStatus = "CANCELLED"
)

// PaymentStatus là trạng thái thanh toán, độc lập với BookingStatus
type PaymentStatus string

const (
	PaymentStatusUnpaid            PaymentStatus = "UNPAID"
	PaymentStatusPaid              PaymentStatus = "PAID"
	PaymentStatusPartiallyRefunded PaymentStatus = "PARTIALLY_REFUNDED"
	PaymentStatusRefunded          PaymentStatus = "REFUNDED"
)

// BookingSource là kênh tạo booking
type BookingSource string

const (
	BookingSourceOnline  BookingSource = "ONLINE"
	BookingSourceOffline BookingSource = "OFFLINE"
	BookingSourceAdmin   BookingSource = "ADMIN"
)

// ActiveStatuses là các trạng thái vẫn giữ phòng trong occupancy index.
// CHECKED_OUT giữ nguyên interval gốc cho mục đích lịch sử nhưng không
// còn là nguồn ghi mới; CANCELLED giải phóng ngay.
var ActiveStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCheckedIn,
}

type Booking struct {
	ID                 uint          `json:"id" gorm:"primaryKey"`
	ConfirmationNumber string        `json:"confirmationNumber" gorm:"uniqueIndex;size:32"`
	RoomID             uint          `json:"roomId" gorm:"index"`
	Room               Room          `json:"room" gorm:"foreignKey:RoomID"`
	HotelID            uint          `json:"hotelId" gorm:"index"`
	Hotel              Hotel         `json:"hotel" gorm:"foreignKey:HotelID"`
	UserID             *uint         `json:"userId"`
	User               *User         `json:"user,omitempty" gorm:"foreignKey:UserID"`
	GuestName          string        `json:"guestName,omitempty"`
	GuestEmail         string        `json:"guestEmail,omitempty"`
	GuestPhone         string        `json:"guestPhone,omitempty"`
	NumGuests          int           `json:"numGuests" gorm:"default:1"`
	CheckInDate        time.Time     `json:"checkInDate" gorm:"index"`
	CheckOutDate       time.Time     `json:"checkOutDate" gorm:"index"`
	Status             BookingStatus `json:"status" gorm:"size:16;index"`
	PaymentStatus      PaymentStatus `json:"paymentStatus" gorm:"size:24;default:UNPAID"`
	Source             BookingSource `json:"source" gorm:"size:16"`
	TotalPrice         float64       `json:"totalPrice"`
	PaidAmount         float64       `json:"paidAmount"`
	KYCDocuments       []KYCDocument `json:"kycDocuments,omitempty" gorm:"foreignKey:BookingID"`
	CreatedAt          time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt          time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
}

// IsActive cho biết booking còn giữ phòng hay không
func (b *Booking) IsActive() bool {
	for _, s := range ActiveStatuses {
		if b.Status == s {
			return true
		}
	}
	return false
}

// Nights trả về số đêm của booking
func (b *Booking) Nights() int {
	return int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
}

// freeCancellationNotice là khoảng báo trước tối thiểu để được hoàn
// tiền đầy đủ khi hủy booking đã thanh toán
const freeCancellationNotice = 72 * time.Hour

// RefundStatusOnCancel trả về trạng thái thanh toán sau khi hủy: hoàn
// đủ nếu hủy trước ngày nhận phòng ít nhất 72 giờ, hoàn một phần nếu
// hủy muộn hơn; booking chưa thanh toán giữ nguyên trạng thái.
func (b *Booking) RefundStatusOnCancel(now time.Time) PaymentStatus {
	if b.PaymentStatus != PaymentStatusPaid {
		return b.PaymentStatus
	}
	if b.CheckInDate.Sub(now) < freeCancellationNotice {
		return PaymentStatusPartiallyRefunded
	}
	return PaymentStatusRefunded
}
