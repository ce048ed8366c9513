package jobs

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"
)

// InventorySweeper định nghĩa các việc dọn dẹp định kỳ trên inventory
// index: block hết hạn, booking giữ chỗ quá hạn, interval mồ côi.
type InventorySweeper interface {
	SweepLapsedBlocks(ctx context.Context) (int, error)
	CancelStalePending(ctx context.Context) (int, error)
	SweepOrphanedOccupancies(ctx context.Context) (int64, error)
}

var sweeper InventorySweeper

// SetInventorySweeper thiết lập implementation cho InventorySweeper
func SetInventorySweeper(s InventorySweeper) {
	sweeper = s
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron) error {
	// Mỗi 10 phút: hủy các booking PENDING quá hạn giữ chỗ
	if _, err := c.AddFunc("*/10 * * * *", func() {
		if sweeper == nil {
			return
		}
		n, err := sweeper.CancelStalePending(context.Background())
		if err != nil {
			log.Printf("Lỗi khi hủy booking quá hạn giữ chỗ: %v", err)
			return
		}
		if n > 0 {
			log.Printf("Đã hủy %d booking quá hạn giữ chỗ", n)
		}
	}); err != nil {
		return err
	}

	// 0h mỗi ngày: gỡ block đã hết hạn và dọn interval mồ côi
	if _, err := c.AddFunc("0 0 * * *", func() {
		if sweeper == nil {
			return
		}
		if n, err := sweeper.SweepLapsedBlocks(context.Background()); err != nil {
			log.Printf("Lỗi khi gỡ block hết hạn: %v", err)
		} else if n > 0 {
			log.Printf("Đã gỡ %d block hết hạn khỏi index", n)
		}
		if n, err := sweeper.SweepOrphanedOccupancies(context.Background()); err != nil {
			log.Printf("Lỗi khi dọn interval mồ côi: %v", err)
		} else if n > 0 {
			log.Printf("Đã dọn %d interval mồ côi", n)
		}
	}); err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
