package dto

// CreateHotelRequest là DTO cho request tạo khách sạn
type CreateHotelRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state"`
}

// UpdateHotelRequest là DTO cho request cập nhật khách sạn
type UpdateHotelRequest struct {
	ID      uint   `json:"id" binding:"required"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Status  *int   `json:"status"`
}

// HotelResponse là DTO cho response của khách sạn
type HotelResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Status  int    `json:"status"`
}
