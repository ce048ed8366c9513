package services

import (
	"context"
	"sort"
	"time"

	"hms/constants"
	"hms/models"

	"gorm.io/gorm"
)

// AvailabilityService trả lời câu hỏi "phòng nào trống trong khoảng
// [checkIn, checkOut)?". Chỉ đọc, không khóa, chấp nhận eventual
// consistency với các ghi đang diễn ra; ghi booking mới là việc của
// BookingService.
type AvailabilityService struct {
	db *gorm.DB
}

// NewAvailabilityService tạo service gắn với database
func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{db: db}
}

// AvailabilityFilter là bộ lọc tùy chọn cho query tìm phòng
type AvailabilityFilter struct {
	City    string
	HotelID uint
}

// AvailableRooms trả về các phòng không có interval nào giao với
// [checkIn, checkOut), sắp theo giá tăng dần rồi số phòng tăng dần.
// Hai interval kề nhau (checkIn == existing.checkOut) không xung đột.
func (s *AvailabilityService) AvailableRooms(ctx context.Context, checkIn, checkOut time.Time, filter AvailabilityFilter) ([]models.Room, error) {
	q := s.db.WithContext(ctx).Model(&models.Room{}).
		Preload("Hotel").
		Joins("JOIN hotels ON hotels.id = rooms.hotel_id").
		Where("rooms.status = ?", constants.RoomStatusAvailable).
		Where("hotels.status = ?", constants.HotelStatusActive)

	if filter.City != "" {
		q = q.Where("LOWER(hotels.city) = LOWER(?)", filter.City)
	}
	if filter.HotelID != 0 {
		q = q.Where("rooms.hotel_id = ?", filter.HotelID)
	}

	// Luật overlap nửa mở: start1 < end2 AND start2 < end1
	q = q.Where(`NOT EXISTS (
		SELECT 1 FROM occupancies
		WHERE occupancies.room_id = rooms.id
		  AND occupancies.from_date < ?
		  AND occupancies.to_date > ?)`, checkOut, checkIn)

	var rooms []models.Room
	if err := q.Find(&rooms).Error; err != nil {
		return nil, err
	}

	SortRoomsForListing(rooms)
	return rooms, nil
}

// SortRoomsForListing sắp phòng theo giá tăng dần, tie-break theo số
// phòng tăng dần để kết quả ổn định cho UI.
func SortRoomsForListing(rooms []models.Room) {
	sort.Slice(rooms, func(i, j int) bool {
		if rooms[i].Price != rooms[j].Price {
			return rooms[i].Price < rooms[j].Price
		}
		return rooms[i].RoomNumber < rooms[j].RoomNumber
	})
}
