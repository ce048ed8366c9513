package services

import "context"

// SweeperAdapter gom các việc dọn dẹp định kỳ của BookingService và
// BlockService lại cho jobs gọi qua một interface duy nhất.
type SweeperAdapter struct {
	bookings *BookingService
	blocks   *BlockService
}

// NewSweeperAdapter tạo adapter cho cron jobs
func NewSweeperAdapter(bookings *BookingService, blocks *BlockService) *SweeperAdapter {
	return &SweeperAdapter{bookings: bookings, blocks: blocks}
}

func (a *SweeperAdapter) SweepLapsedBlocks(ctx context.Context) (int, error) {
	return a.blocks.SweepLapsedBlocks(ctx)
}

func (a *SweeperAdapter) CancelStalePending(ctx context.Context) (int, error) {
	return a.bookings.CancelStalePending(ctx)
}

func (a *SweeperAdapter) SweepOrphanedOccupancies(ctx context.Context) (int64, error) {
	return a.blocks.SweepOrphanedOccupancies(ctx)
}
