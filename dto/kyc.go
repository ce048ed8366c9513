package dto

import (
	"time"

	"hms/models"
)

// VerifyKYCRequest là DTO cho request duyệt giấy tờ
type VerifyKYCRequest struct {
	ID     uint             `json:"id" binding:"required"`
	Status models.KYCStatus `json:"status" binding:"required"`
}

// KYCResponse là DTO cho response của giấy tờ KYC
type KYCResponse struct {
	ID        uint             `json:"id"`
	BookingID uint             `json:"bookingId"`
	GuestName string           `json:"guestName"`
	DocType   string           `json:"docType"`
	FileURL   string           `json:"fileUrl"`
	Status    models.KYCStatus `json:"status"`
	CreatedAt time.Time        `json:"createdAt"`
}
