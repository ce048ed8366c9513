package dto

import (
	"time"

	"hms/models"
)

// CreateBookingRequest là DTO cho request tạo booking
type CreateBookingRequest struct {
	RoomID       uint    `json:"roomId" binding:"required"`
	UserID       uint    `json:"userId"`
	GuestName    string  `json:"guestName,omitempty"`
	GuestEmail   string  `json:"guestEmail,omitempty" binding:"omitempty,email"`
	GuestPhone   string  `json:"guestPhone,omitempty"`
	NumGuests    int     `json:"numGuests"`
	CheckInDate  string  `json:"checkInDate" binding:"required"`
	CheckOutDate string  `json:"checkOutDate" binding:"required"`
	PaidAmount   float64 `json:"paidAmount"`
}

// ModifyBookingRequest là DTO cho request đổi ngày/phòng của booking
type ModifyBookingRequest struct {
	RoomID       uint   `json:"roomId"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
}

// StatusUpdateRequest là DTO cho request cập nhật trạng thái booking
type StatusUpdateRequest struct {
	Status     models.BookingStatus `json:"status" binding:"required"`
	PaidAmount float64              `json:"paidAmount"`
	KYCIDs     []uint               `json:"kycIds"`
	Note       string               `json:"note"`
}

// PhysicalCheckInRequest là DTO cho check-in tại quầy kèm giấy tờ
type PhysicalCheckInRequest struct {
	KYCIDs []uint `json:"kycIds" binding:"required"`
}

// AvailabilityQuery là DTO cho query tìm phòng trống
type AvailabilityQuery struct {
	CheckIn  string `form:"checkIn" binding:"required"`
	CheckOut string `form:"checkOut" binding:"required"`
	City     string `form:"city"`
	HotelID  uint   `form:"hotelId"`
}

// AvailableRoomResponse là một phòng trống kèm giá cho UI
type AvailableRoomResponse struct {
	ID         uint    `json:"id"`
	HotelID    uint    `json:"hotelId"`
	HotelName  string  `json:"hotelName"`
	City       string  `json:"city"`
	RoomNumber string  `json:"roomNumber"`
	Type       string  `json:"type"`
	Capacity   int     `json:"capacity"`
	Price      float64 `json:"price"`
}

// AvailabilityResponse bọc danh sách phòng trống theo contract của frontend
type AvailabilityResponse struct {
	AvailableRooms []AvailableRoomResponse `json:"availableRooms"`
}

// BookingResponse là DTO cho response của booking
type BookingResponse struct {
	ID                 uint                 `json:"id"`
	ConfirmationNumber string               `json:"confirmationNumber"`
	RoomID             uint                 `json:"roomId"`
	HotelID            uint                 `json:"hotelId"`
	UserID             *uint                `json:"userId,omitempty"`
	GuestName          string               `json:"guestName,omitempty"`
	GuestPhone         string               `json:"guestPhone,omitempty"`
	NumGuests          int                  `json:"numGuests"`
	CheckInDate        string               `json:"checkInDate"`
	CheckOutDate       string               `json:"checkOutDate"`
	Status             models.BookingStatus `json:"status"`
	PaymentStatus      models.PaymentStatus `json:"paymentStatus"`
	Source             models.BookingSource `json:"source"`
	TotalPrice         float64              `json:"totalPrice"`
	PaidAmount         float64              `json:"paidAmount"`
	CreatedAt          time.Time            `json:"createdAt"`
	UpdatedAt          time.Time            `json:"updatedAt"`
}

// HistoryResponse là một bản ghi audit của booking
type HistoryResponse struct {
	ID         uint                 `json:"id"`
	Action     string               `json:"action"`
	FromStatus models.BookingStatus `json:"fromStatus,omitempty"`
	ToStatus   models.BookingStatus `json:"toStatus,omitempty"`
	ActorID    *uint                `json:"actorId,omitempty"`
	Note       string               `json:"note,omitempty"`
	CreatedAt  time.Time            `json:"createdAt"`
}
