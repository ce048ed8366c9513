package models

import "time"

// Occupancy là một interval chiếm phòng trong inventory index, do một
// booking đang hoạt động hoặc một facility block sở hữu. Interval theo
// nghĩa nửa mở [FromDate, ToDate): hai interval kề nhau không xung đột.
type Occupancy struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	RoomID     uint      `gorm:"index:idx_occupancy_room" json:"roomId"`
	FromDate   time.Time `gorm:"index" json:"fromDate"`
	ToDate     time.Time `gorm:"index" json:"toDate"`
	SourceType string    `gorm:"size:16;uniqueIndex:idx_occupancy_source" json:"sourceType"`
	SourceKey  string    `gorm:"size:32;uniqueIndex:idx_occupancy_source" json:"sourceKey"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Overlaps kiểm tra interval nửa mở [from, to) có giao với occupancy không
func (o *Occupancy) Overlaps(from, to time.Time) bool {
	return o.FromDate.Before(to) && from.Before(o.ToDate)
}
