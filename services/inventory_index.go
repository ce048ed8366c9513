package services

import (
	"context"
	"time"

	"hms/errors"
	"hms/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SourceRef định danh chủ sở hữu của một interval trong inventory index:
// một booking (key là confirmation number) hoặc một facility block.
type SourceRef struct {
	Type string
	Key  string
}

// InventoryIndex là ánh xạ roomID -> các interval chiếm phòng đang hoạt
// động. Insert phải atomic với bước kiểm tra overlap trên từng phòng;
// đây là invariant chống double-booking duy nhất của toàn hệ thống.
type InventoryIndex interface {
	// IntervalsFor trả về các interval của phòng, sắp theo ngày bắt đầu.
	IntervalsFor(ctx context.Context, roomID uint) ([]models.Occupancy, error)

	// Insert chèn [from, to) nếu không overlap với interval nào đã có
	// của phòng. Trả về errors.ErrRoomUnavailable khi xung đột.
	Insert(ctx context.Context, roomID uint, from, to time.Time, src SourceRef) error

	// Remove gỡ interval theo chủ sở hữu (hủy booking, block hết hạn).
	Remove(ctx context.Context, src SourceRef) error

	// Replace chuyển interval của src sang phòng/khoảng mới trong một
	// bước atomic; khi xung đột, interval gốc được giữ nguyên.
	Replace(ctx context.Context, src SourceRef, newRoomID uint, from, to time.Time) error
}

// GormInventoryIndex là implementation Postgres của InventoryIndex.
// Atomic per-room bằng transaction + row lock FOR UPDATE trên phòng.
type GormInventoryIndex struct {
	db *gorm.DB
}

// NewGormInventoryIndex tạo index gắn với database
func NewGormInventoryIndex(db *gorm.DB) *GormInventoryIndex {
	return &GormInventoryIndex{db: db}
}

func (idx *GormInventoryIndex) IntervalsFor(ctx context.Context, roomID uint) ([]models.Occupancy, error) {
	var occupancies []models.Occupancy
	err := idx.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("from_date ASC").
		Find(&occupancies).Error
	if err != nil {
		return nil, err
	}
	return occupancies, nil
}

func (idx *GormInventoryIndex) Insert(ctx context.Context, roomID uint, from, to time.Time, src SourceRef) error {
	return idx.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockRoom(tx, roomID); err != nil {
			return err
		}
		if err := checkOverlap(tx, roomID, from, to, SourceRef{}); err != nil {
			return err
		}
		return tx.Create(&models.Occupancy{
			RoomID:     roomID,
			FromDate:   from,
			ToDate:     to,
			SourceType: src.Type,
			SourceKey:  src.Key,
		}).Error
	})
}

func (idx *GormInventoryIndex) Remove(ctx context.Context, src SourceRef) error {
	return idx.db.WithContext(ctx).
		Where("source_type = ? AND source_key = ?", src.Type, src.Key).
		Delete(&models.Occupancy{}).Error
}

func (idx *GormInventoryIndex) Replace(ctx context.Context, src SourceRef, newRoomID uint, from, to time.Time) error {
	return idx.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.Occupancy
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("source_type = ? AND source_key = ?", src.Type, src.Key).
			First(&current).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrBookingNotFound
			}
			return err
		}
		// Khóa hai phòng theo thứ tự ID tăng dần để tránh deadlock giữa
		// hai Replace chéo chiều chạy song song.
		first, second := lockOrder(current.RoomID, newRoomID)
		if err := lockRoom(tx, first); err != nil {
			return err
		}
		if second != first {
			if err := lockRoom(tx, second); err != nil {
				return err
			}
		}
		if err := checkOverlap(tx, newRoomID, from, to, src); err != nil {
			return err
		}
		return tx.Model(&current).Updates(map[string]interface{}{
			"room_id":   newRoomID,
			"from_date": from,
			"to_date":   to,
		}).Error
	})
}

// lockOrder trả về hai ID phòng theo thứ tự khóa tăng dần
func lockOrder(a, b uint) (uint, uint) {
	if b < a {
		return b, a
	}
	return a, b
}

// lockRoom giữ row lock trên phòng trong suốt transaction
func lockRoom(tx *gorm.DB, roomID uint) error {
	var room models.Room
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&room, roomID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrRoomNotFound
		}
		return err
	}
	return nil
}

// checkOverlap đếm các interval giao với [from, to) theo luật nửa mở,
// bỏ qua interval của chính exclude (phục vụ Replace).
func checkOverlap(tx *gorm.DB, roomID uint, from, to time.Time, exclude SourceRef) error {
	q := tx.Model(&models.Occupancy{}).
		Where("room_id = ? AND from_date < ? AND to_date > ?", roomID, to, from)
	if exclude.Key != "" {
		q = q.Where("NOT (source_type = ? AND source_key = ?)", exclude.Type, exclude.Key)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errors.ErrRoomUnavailable
	}
	return nil
}
