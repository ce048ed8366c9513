package models

import "time"

// KYCStatus là trạng thái xác minh giấy tờ
type KYCStatus string

const (
	KYCStatusPending  KYCStatus = "PENDING"
	KYCStatusVerified KYCStatus = "VERIFIED"
	KYCStatusRejected KYCStatus = "REJECTED"
)

type KYCDocument struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	BookingID  uint      `json:"bookingId" gorm:"index"`
	GuestName  string    `json:"guestName"`
	DocType    string    `json:"docType"`
	FileURL    string    `json:"fileUrl"`
	Status     KYCStatus `json:"status" gorm:"size:16;default:PENDING"`
	VerifiedBy *uint     `json:"verifiedBy,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// IsVerified kiểm tra giấy tờ đã được duyệt chưa
func (d *KYCDocument) IsVerified() bool {
	return d.Status == KYCStatusVerified
}
