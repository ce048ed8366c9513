package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"hms/errors"
	"hms/models"
)

// roomIntervals là bucket interval của một phòng kèm mutex riêng
type roomIntervals struct {
	sync.Mutex
	items []models.Occupancy
}

// MemoryInventoryIndex là implementation in-process của InventoryIndex,
// atomic per-room bằng mutex riêng cho từng phòng thay vì một khóa toàn
// cục, để các phòng khác nhau không chặn lẫn nhau. Map rooms và nextID
// chỉ được đụng dưới mu; slice interval chỉ dưới mutex của bucket.
type MemoryInventoryIndex struct {
	mu     sync.Mutex
	rooms  map[uint]*roomIntervals
	nextID uint
}

// NewMemoryInventoryIndex tạo index rỗng
func NewMemoryInventoryIndex() *MemoryInventoryIndex {
	return &MemoryInventoryIndex{
		rooms:  make(map[uint]*roomIntervals),
		nextID: 1,
	}
}

// roomFor trả về bucket của phòng, tạo mới nếu chưa có
func (idx *MemoryInventoryIndex) roomFor(roomID uint) *roomIntervals {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	r, ok := idx.rooms[roomID]
	if !ok {
		r = &roomIntervals{}
		idx.rooms[roomID] = r
	}
	return r
}

// snapshotRooms chụp các bucket hiện có dưới mu
func (idx *MemoryInventoryIndex) snapshotRooms() map[uint]*roomIntervals {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	out := make(map[uint]*roomIntervals, len(idx.rooms))
	for id, r := range idx.rooms {
		out[id] = r
	}
	return out
}

func (idx *MemoryInventoryIndex) allocID() uint {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	id := idx.nextID
	idx.nextID++
	return id
}

func (idx *MemoryInventoryIndex) IntervalsFor(ctx context.Context, roomID uint) ([]models.Occupancy, error) {
	r := idx.roomFor(roomID)
	r.Lock()
	defer r.Unlock()

	out := make([]models.Occupancy, len(r.items))
	copy(out, r.items)
	sort.Slice(out, func(i, j int) bool { return out[i].FromDate.Before(out[j].FromDate) })
	return out, nil
}

func (idx *MemoryInventoryIndex) Insert(ctx context.Context, roomID uint, from, to time.Time, src SourceRef) error {
	r := idx.roomFor(roomID)
	r.Lock()
	defer r.Unlock()

	for _, o := range r.items {
		if o.Overlaps(from, to) {
			return errors.ErrRoomUnavailable
		}
	}

	r.items = append(r.items, models.Occupancy{
		ID:         idx.allocID(),
		RoomID:     roomID,
		FromDate:   from,
		ToDate:     to,
		SourceType: src.Type,
		SourceKey:  src.Key,
	})
	return nil
}

func (idx *MemoryInventoryIndex) Remove(ctx context.Context, src SourceRef) error {
	for _, r := range idx.snapshotRooms() {
		r.Lock()
		kept := r.items[:0]
		for _, o := range r.items {
			if o.SourceType != src.Type || o.SourceKey != src.Key {
				kept = append(kept, o)
			}
		}
		r.items = kept
		r.Unlock()
	}
	return nil
}

func (idx *MemoryInventoryIndex) Replace(ctx context.Context, src SourceRef, newRoomID uint, from, to time.Time) error {
	for {
		oldRoomID, ok := idx.findRoom(src)
		if !ok {
			return errors.ErrBookingNotFound
		}

		oldR := idx.roomFor(oldRoomID)
		newR := idx.roomFor(newRoomID)

		// Khóa hai phòng theo thứ tự ID tăng dần để tránh deadlock
		// giữa hai Replace chéo chiều chạy song song
		first, second := oldR, newR
		if a, _ := lockOrder(oldRoomID, newRoomID); a == newRoomID {
			first, second = newR, oldR
		}
		first.Lock()
		if second != first {
			second.Lock()
		}

		moved, err := replaceLocked(oldR, newR, src, newRoomID, from, to)

		if second != first {
			second.Unlock()
		}
		first.Unlock()

		if err != nil {
			return err
		}
		if moved {
			return nil
		}
		// Interval đã bị dời giữa lúc tìm và lúc khóa, tìm lại
	}
}

// replaceLocked thực hiện Replace khi cả hai bucket đã được khóa. Trả
// về false nếu src không còn nằm trong oldR (caller tìm lại).
func replaceLocked(oldR, newR *roomIntervals, src SourceRef, newRoomID uint, from, to time.Time) (bool, error) {
	var current *models.Occupancy
	for i := range oldR.items {
		o := &oldR.items[i]
		if o.SourceType == src.Type && o.SourceKey == src.Key {
			current = o
			break
		}
	}
	if current == nil {
		return false, nil
	}

	for _, o := range newR.items {
		if o.SourceType == src.Type && o.SourceKey == src.Key {
			continue
		}
		if o.Overlaps(from, to) {
			return false, errors.ErrRoomUnavailable
		}
	}

	moved := *current
	moved.RoomID = newRoomID
	moved.FromDate = from
	moved.ToDate = to

	kept := oldR.items[:0]
	for _, o := range oldR.items {
		if o.ID != moved.ID {
			kept = append(kept, o)
		}
	}
	oldR.items = kept
	newR.items = append(newR.items, moved)
	return true, nil
}

// findRoom tìm phòng đang giữ interval của src
func (idx *MemoryInventoryIndex) findRoom(src SourceRef) (uint, bool) {
	for roomID, r := range idx.snapshotRooms() {
		r.Lock()
		for _, o := range r.items {
			if o.SourceType == src.Type && o.SourceKey == src.Key {
				r.Unlock()
				return roomID, true
			}
		}
		r.Unlock()
	}
	return 0, false
}
