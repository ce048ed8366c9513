package models

import "time"

// FacilityBlock chặn một phòng trong khoảng [FromDate, ToDate) vì lý do
// vận hành (bảo trì, sự kiện...). Chiếm phòng y như booking nhưng không
// mang dữ liệu khách hay thanh toán; tự hết hạn khi qua ToDate.
type FacilityBlock struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	RoomID    uint      `json:"roomId" gorm:"index"`
	Room      Room      `json:"room" gorm:"foreignKey:RoomID"`
	FromDate  time.Time `json:"fromDate"`
	ToDate    time.Time `json:"toDate"`
	Reason    string     `json:"reason"`
	CreatedBy uint       `json:"createdBy"`
	SweptAt   *time.Time `json:"sweptAt,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Expired cho biết block đã qua ToDate chưa
func (b *FacilityBlock) Expired(now time.Time) bool {
	return !now.Before(b.ToDate)
}
