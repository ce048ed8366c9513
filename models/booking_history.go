package models

import "time"

// BookingHistory ghi lại mọi thay đổi trên booking để phục vụ audit
type BookingHistory struct {
	ID         uint          `json:"id" gorm:"primaryKey"`
	BookingID  uint          `json:"bookingId" gorm:"index"`
	Action     string        `json:"action"`
	FromStatus BookingStatus `json:"fromStatus,omitempty" gorm:"size:16"`
	ToStatus   BookingStatus `json:"toStatus,omitempty" gorm:"size:16"`
	ActorID    *uint         `json:"actorId,omitempty"`
	Note       string        `json:"note,omitempty"`
	CreatedAt  time.Time     `gorm:"autoCreateTime" json:"createdAt"`
}

// History actions
const (
	HistoryActionCreated    = "CREATED"
	HistoryActionTransition = "STATUS_CHANGED"
	HistoryActionModified   = "MODIFIED"
	HistoryActionKYC        = "KYC_ATTACHED"
)
