package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"hms/constants"
	"hms/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
}

func bookingRef(key string) SourceRef {
	return SourceRef{Type: constants.OccupancySourceBooking, Key: key}
}

func TestMemoryIndex_InsertAndOverlap(t *testing.T) {
	ctx := context.Background()
	idx := NewMemoryInventoryIndex()

	require.NoError(t, idx.Insert(ctx, 1, day(10), day(15), bookingRef("BK-A")))

	t.Run("overlapping insert rejected", func(t *testing.T) {
		err := idx.Insert(ctx, 1, day(12), day(14), bookingRef("BK-B"))
		assert.ErrorIs(t, err, errors.ErrRoomUnavailable)
	})

	t.Run("adjacent intervals allowed", func(t *testing.T) {
		require.NoError(t, idx.Insert(ctx, 1, day(15), day(18), bookingRef("BK-C")))
		require.NoError(t, idx.Insert(ctx, 1, day(8), day(10), bookingRef("BK-D")))
	})

	t.Run("other rooms unaffected", func(t *testing.T) {
		require.NoError(t, idx.Insert(ctx, 2, day(10), day(15), bookingRef("BK-E")))
	})

	t.Run("intervals sorted by start date", func(t *testing.T) {
		got, err := idx.IntervalsFor(ctx, 1)
		require.NoError(t, err)
		require.Len(t, got, 3)
		for i := 1; i < len(got); i++ {
			assert.False(t, got[i].FromDate.Before(got[i-1].FromDate))
		}
	})
}

func TestMemoryIndex_RemoveFreesInterval(t *testing.T) {
	ctx := context.Background()
	idx := NewMemoryInventoryIndex()

	require.NoError(t, idx.Insert(ctx, 1, day(10), day(15), bookingRef("BK-A")))
	require.ErrorIs(t, idx.Insert(ctx, 1, day(10), day(15), bookingRef("BK-B")), errors.ErrRoomUnavailable)

	require.NoError(t, idx.Remove(ctx, bookingRef("BK-A")))
	require.NoError(t, idx.Insert(ctx, 1, day(10), day(15), bookingRef("BK-B")))
}

func TestMemoryIndex_RemoveUnknownIsNoop(t *testing.T) {
	idx := NewMemoryInventoryIndex()
	assert.NoError(t, idx.Remove(context.Background(), bookingRef("BK-MISSING")))
}

func TestMemoryIndex_Replace(t *testing.T) {
	ctx := context.Background()

	t.Run("same room, new dates", func(t *testing.T) {
		idx := NewMemoryInventoryIndex()
		require.NoError(t, idx.Insert(ctx, 1, day(10), day(15), bookingRef("BK-A")))

		require.NoError(t, idx.Replace(ctx, bookingRef("BK-A"), 1, day(12), day(17)))

		got, err := idx.IntervalsFor(ctx, 1)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, day(12), got[0].FromDate)
		assert.Equal(t, day(17), got[0].ToDate)
	})

	t.Run("move to another room", func(t *testing.T) {
		idx := NewMemoryInventoryIndex()
		require.NoError(t, idx.Insert(ctx, 1, day(10), day(15), bookingRef("BK-A")))

		require.NoError(t, idx.Replace(ctx, bookingRef("BK-A"), 2, day(10), day(15)))

		old, _ := idx.IntervalsFor(ctx, 1)
		assert.Empty(t, old)
		moved, _ := idx.IntervalsFor(ctx, 2)
		require.Len(t, moved, 1)
		assert.Equal(t, uint(2), moved[0].RoomID)
	})

	t.Run("new dates may touch the old interval", func(t *testing.T) {
		idx := NewMemoryInventoryIndex()
		require.NoError(t, idx.Insert(ctx, 1, day(10), day(15), bookingRef("BK-A")))

		// Interval cũ của chính booking không được tính là xung đột
		require.NoError(t, idx.Replace(ctx, bookingRef("BK-A"), 1, day(13), day(16)))
	})

	t.Run("conflict keeps original interval", func(t *testing.T) {
		idx := NewMemoryInventoryIndex()
		require.NoError(t, idx.Insert(ctx, 1, day(10), day(15), bookingRef("BK-A")))
		require.NoError(t, idx.Insert(ctx, 2, day(12), day(14), bookingRef("BK-B")))

		err := idx.Replace(ctx, bookingRef("BK-A"), 2, day(10), day(15))
		require.ErrorIs(t, err, errors.ErrRoomUnavailable)

		got, _ := idx.IntervalsFor(ctx, 1)
		require.Len(t, got, 1)
		assert.Equal(t, day(10), got[0].FromDate)
		assert.Equal(t, day(15), got[0].ToDate)
	})

	t.Run("unknown source", func(t *testing.T) {
		idx := NewMemoryInventoryIndex()
		err := idx.Replace(ctx, bookingRef("BK-MISSING"), 1, day(10), day(15))
		assert.ErrorIs(t, err, errors.ErrBookingNotFound)
	})
}

func TestMemoryIndex_ConcurrentInsertSameInterval(t *testing.T) {
	ctx := context.Background()
	idx := NewMemoryInventoryIndex()

	const workers = 50
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = idx.Insert(ctx, 1, day(10), day(15), bookingRef(fmt.Sprintf("BK-%03d", i)))
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, errors.ErrRoomUnavailable)
		}
	}
	assert.Equal(t, 1, wins, "exactly one insert may win the interval")

	got, err := idx.IntervalsFor(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestMemoryIndex_ConcurrentInsertDistinctRooms(t *testing.T) {
	ctx := context.Background()
	idx := NewMemoryInventoryIndex()

	const rooms = 200
	var wg sync.WaitGroup
	errs := make([]error, rooms)
	for i := 0; i < rooms; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = idx.Insert(ctx, uint(i+1), day(10), day(15), bookingRef(fmt.Sprintf("BK-%03d", i)))
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		assert.NoError(t, err, "room %d", i+1)
	}
	for i := 0; i < rooms; i++ {
		got, err := idx.IntervalsFor(ctx, uint(i+1))
		require.NoError(t, err)
		assert.Len(t, got, 1, "room %d", i+1)
	}
}

func TestMemoryIndex_ConcurrentInsertAndRemove(t *testing.T) {
	ctx := context.Background()
	idx := NewMemoryInventoryIndex()

	const rooms = 50
	for i := 0; i < rooms; i++ {
		require.NoError(t, idx.Insert(ctx, uint(i+1), day(10), day(15), bookingRef(fmt.Sprintf("BK-%03d", i))))
	}

	var wg sync.WaitGroup
	for i := 0; i < rooms; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = idx.Remove(ctx, bookingRef(fmt.Sprintf("BK-%03d", i)))
		}(i)
		go func(i int) {
			defer wg.Done()
			_ = idx.Insert(ctx, uint(i+1), day(20), day(25), bookingRef(fmt.Sprintf("BK-NEW-%03d", i)))
		}(i)
	}
	wg.Wait()

	for i := 0; i < rooms; i++ {
		got, err := idx.IntervalsFor(ctx, uint(i+1))
		require.NoError(t, err)
		assert.Len(t, got, 1, "room %d", i+1)
		assert.Equal(t, fmt.Sprintf("BK-NEW-%03d", i), got[0].SourceKey)
	}
}

func TestMemoryIndex_ConcurrentCrossReplace(t *testing.T) {
	ctx := context.Background()
	idx := NewMemoryInventoryIndex()

	// Hai booking ở hai phòng, khoảng ngày không giao nhau, đổi chéo
	// phòng đồng thời nhiều vòng: không được deadlock và mỗi booking
	// luôn nằm ở đúng một phòng
	require.NoError(t, idx.Insert(ctx, 1, day(1), day(5), bookingRef("BK-A")))
	require.NoError(t, idx.Insert(ctx, 2, day(10), day(15), bookingRef("BK-B")))

	roomA, roomB := uint(1), uint(2)
	for i := 0; i < 50; i++ {
		roomA, roomB = roomB, roomA

		var wg sync.WaitGroup
		var errA, errB error
		wg.Add(2)
		go func(target uint) {
			defer wg.Done()
			errA = idx.Replace(ctx, bookingRef("BK-A"), target, day(1), day(5))
		}(roomA)
		go func(target uint) {
			defer wg.Done()
			errB = idx.Replace(ctx, bookingRef("BK-B"), target, day(10), day(15))
		}(roomB)
		wg.Wait()

		require.NoError(t, errA)
		require.NoError(t, errB)
	}

	gotA, _ := idx.IntervalsFor(ctx, roomA)
	require.Len(t, gotA, 1)
	assert.Equal(t, "BK-A", gotA[0].SourceKey)
	gotB, _ := idx.IntervalsFor(ctx, roomB)
	require.Len(t, gotB, 1)
	assert.Equal(t, "BK-B", gotB[0].SourceKey)
}

func TestLockOrder(t *testing.T) {
	first, second := lockOrder(5, 2)
	assert.Equal(t, uint(2), first)
	assert.Equal(t, uint(5), second)

	first, second = lockOrder(2, 5)
	assert.Equal(t, uint(2), first)
	assert.Equal(t, uint(5), second)

	first, second = lockOrder(3, 3)
	assert.Equal(t, uint(3), first)
	assert.Equal(t, uint(3), second)
}
