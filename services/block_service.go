package services

import (
	"context"
	"time"

	"hms/constants"
	"hms/errors"
	"hms/models"
	"hms/services/logger"

	"gorm.io/gorm"
)

// BlockService quản lý facility block: chặn phòng vì lý do vận hành.
// Block chiếm phòng qua cùng inventory index với booking nên không thể
// chồng lên một booking đang hoạt động (policy: từ chối, không ghi đè).
type BlockService struct {
	db     *gorm.DB
	idx    InventoryIndex
	logger logger.Logger
}

// NewBlockService tạo instance mới của BlockService
func NewBlockService(db *gorm.DB, idx InventoryIndex, l logger.Logger) *BlockService {
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &BlockService{db: db, idx: idx, logger: l}
}

// CreateBlock ghi block rồi chèn interval vào index; nếu phòng đã bị
// chiếm trong khoảng đó thì xóa block vừa ghi và trả ErrRoomUnavailable.
func (s *BlockService) CreateBlock(ctx context.Context, roomID uint, from, to time.Time, reason string, createdBy uint) (*models.FacilityBlock, error) {
	var room models.Room
	if err := s.db.WithContext(ctx).First(&room, roomID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrRoomNotFound
		}
		return nil, err
	}

	block := &models.FacilityBlock{
		RoomID:    roomID,
		FromDate:  from,
		ToDate:    to,
		Reason:    reason,
		CreatedBy: createdBy,
	}
	if err := s.db.WithContext(ctx).Create(block).Error; err != nil {
		return nil, err
	}

	if err := s.idx.Insert(ctx, roomID, from, to, BlockRef(block.ID)); err != nil {
		if delErr := s.db.WithContext(ctx).Delete(block).Error; delErr != nil {
			s.logger.Error("compensating delete failed for block %d: %v", block.ID, delErr)
		}
		return nil, err
	}

	return block, nil
}

// RemoveBlock gỡ block thủ công trước khi hết hạn
func (s *BlockService) RemoveBlock(ctx context.Context, blockID uint) error {
	var block models.FacilityBlock
	if err := s.db.WithContext(ctx).First(&block, blockID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrBlockNotFound
		}
		return err
	}

	if err := s.idx.Remove(ctx, BlockRef(block.ID)); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&block).Error
}

// ListBlocks trả về các block của một phòng hoặc tất cả nếu roomID == 0
func (s *BlockService) ListBlocks(ctx context.Context, roomID uint) ([]models.FacilityBlock, error) {
	q := s.db.WithContext(ctx).Model(&models.FacilityBlock{}).Order("from_date ASC")
	if roomID != 0 {
		q = q.Where("room_id = ?", roomID)
	}
	var blocks []models.FacilityBlock
	err := q.Find(&blocks).Error
	return blocks, err
}

// SweepLapsedBlocks gỡ khỏi index các block đã qua ToDate. Block tự hết
// hạn, không có chuyển trạng thái nào khác; dòng block được giữ lại và
// đánh dấu swept_at để không quét lại.
func (s *BlockService) SweepLapsedBlocks(ctx context.Context) (int, error) {
	var lapsed []models.FacilityBlock
	now := time.Now().UTC()
	if err := s.db.WithContext(ctx).
		Where("to_date <= ? AND swept_at IS NULL", now).
		Find(&lapsed).Error; err != nil {
		return 0, err
	}

	swept := 0
	for _, block := range lapsed {
		if err := s.idx.Remove(ctx, BlockRef(block.ID)); err != nil {
			s.logger.Error("sweep block %d failed: %v", block.ID, err)
			continue
		}
		if err := s.db.WithContext(ctx).Model(&block).Update("swept_at", now).Error; err != nil {
			s.logger.Error("mark block %d swept failed: %v", block.ID, err)
			continue
		}
		swept++
	}
	return swept, nil
}

// SweepOrphanedOccupancies dọn các interval mà booking sở hữu đã bị hủy
// nhưng bước gỡ index trước đó thất bại, để hệ thống tự hồi về trạng
// thái nhất quán.
func (s *BlockService) SweepOrphanedOccupancies(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).
		Where(`source_type = ? AND source_key IN (
			SELECT confirmation_number FROM bookings WHERE status = ?)`,
			constants.OccupancySourceBooking, models.BookingStatusCancelled).
		Delete(&models.Occupancy{})
	return result.RowsAffected, result.Error
}
