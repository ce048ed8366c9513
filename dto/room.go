package dto

import "encoding/json"

// CreateRoomRequest là DTO cho request tạo phòng
type CreateRoomRequest struct {
	HotelID     uint            `json:"hotelId" binding:"required"`
	RoomNumber  string          `json:"roomNumber" binding:"required"`
	Type        string          `json:"type"`
	Capacity    int             `json:"capacity"`
	Price       float64         `json:"price" binding:"required"`
	Description string          `json:"description"`
	Amenities   json.RawMessage `json:"amenities"`
}

// UpdateRoomRequest là DTO cho request cập nhật phòng
type UpdateRoomRequest struct {
	ID          uint            `json:"id" binding:"required"`
	RoomNumber  string          `json:"roomNumber"`
	Type        string          `json:"type"`
	Capacity    *int            `json:"capacity"`
	Price       *float64        `json:"price"`
	Description string          `json:"description"`
	Amenities   json.RawMessage `json:"amenities"`
	Status      *int            `json:"status"`
}

// RoomResponse là DTO cho response của phòng
type RoomResponse struct {
	ID          uint            `json:"id"`
	HotelID     uint            `json:"hotelId"`
	RoomNumber  string          `json:"roomNumber"`
	Type        string          `json:"type"`
	Capacity    int             `json:"capacity"`
	Price       float64         `json:"price"`
	Description string          `json:"description"`
	Amenities   json.RawMessage `json:"amenities"`
	Status      int             `json:"status"`
}
