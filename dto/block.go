package dto

import "time"

// CreateBlockRequest là DTO cho request chặn phòng
type CreateBlockRequest struct {
	RoomID   uint   `json:"roomId" binding:"required"`
	FromDate string `json:"fromDate" binding:"required"`
	ToDate   string `json:"toDate" binding:"required"`
	Reason   string `json:"reason" binding:"required"`
}

// BlockResponse là DTO cho response của facility block
type BlockResponse struct {
	ID        uint      `json:"id"`
	RoomID    uint      `json:"roomId"`
	FromDate  string    `json:"fromDate"`
	ToDate    string    `json:"toDate"`
	Reason    string    `json:"reason"`
	CreatedBy uint      `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}
