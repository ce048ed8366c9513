package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"hms/constants"
	"hms/errors"
	"hms/models"
	"hms/services/logger"

	"github.com/olahol/melody"
	"gorm.io/gorm"
)

// BookingService là nơi duy nhất được ghi Booking.Status và là chủ sở
// hữu mọi mutation lên inventory index. Mọi chuyển trạng thái đi qua
// bảng transition trong models/booking_state.go.
type BookingService struct {
	db     *gorm.DB
	idx    InventoryIndex
	logger logger.Logger
	ws     *melody.Melody
}

// BookingServiceOptions là tham số khởi tạo BookingService
type BookingServiceOptions struct {
	DB     *gorm.DB
	Index  InventoryIndex
	Logger logger.Logger
	WS     *melody.Melody
}

// NewBookingService tạo instance mới của BookingService
func NewBookingService(opts BookingServiceOptions) *BookingService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &BookingService{
		db:     opts.DB,
		idx:    opts.Index,
		logger: l,
		ws:     opts.WS,
	}
}

// BookingRef trả về SourceRef của booking trong inventory index
func BookingRef(confirmationNumber string) SourceRef {
	return SourceRef{Type: constants.OccupancySourceBooking, Key: confirmationNumber}
}

// BlockRef trả về SourceRef của facility block trong inventory index
func BlockRef(blockID uint) SourceRef {
	return SourceRef{Type: constants.OccupancySourceBlock, Key: fmt.Sprintf("%d", blockID)}
}

// CreateBookingInput gom tham số tạo booking đã qua validate dates
type CreateBookingInput struct {
	RoomID       uint
	UserID       *uint
	GuestName    string
	GuestEmail   string
	GuestPhone   string
	NumGuests    int
	CheckInDate  time.Time
	CheckOutDate time.Time
	Source       models.BookingSource
	PaidAmount   float64
	ActorID      *uint
}

// CreateBooking giữ phòng và tạo booking theo đúng thứ tự: chèn interval
// vào index (atomic per-room) rồi mới ghi booking. Nếu ghi booking thất
// bại sau khi index đã nhận interval thì gỡ interval bù trừ, không bao
// giờ để lại reservation ma.
func (s *BookingService) CreateBooking(ctx context.Context, in CreateBookingInput) (*models.Booking, error) {
	var room models.Room
	if err := s.db.WithContext(ctx).First(&room, in.RoomID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrRoomNotFound
		}
		return nil, err
	}

	confirmation, err := s.generateConfirmationNumber(ctx)
	if err != nil {
		return nil, err
	}

	numGuests := in.NumGuests
	if numGuests < 1 {
		numGuests = 1
	}

	booking := &models.Booking{
		ConfirmationNumber: confirmation,
		RoomID:             room.ID,
		HotelID:            room.HotelID,
		UserID:             in.UserID,
		GuestName:          in.GuestName,
		GuestEmail:         in.GuestEmail,
		GuestPhone:         in.GuestPhone,
		NumGuests:          numGuests,
		CheckInDate:        in.CheckInDate,
		CheckOutDate:       in.CheckOutDate,
		Status:             models.BookingStatusPending,
		PaymentStatus:      models.PaymentStatusUnpaid,
		Source:             in.Source,
		PaidAmount:         in.PaidAmount,
	}
	booking.TotalPrice = room.Price * float64(booking.Nights())

	// Admin tạo đơn đã thanh toán thì vào thẳng CONFIRMED
	if in.Source == models.BookingSourceAdmin && in.PaidAmount > 0 {
		booking.Status = models.BookingStatusConfirmed
		booking.PaymentStatus = models.PaymentStatusPaid
	}

	ref := BookingRef(confirmation)
	if err := s.idx.Insert(ctx, room.ID, in.CheckInDate, in.CheckOutDate, ref); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Create(booking).Error; err != nil {
		// Gỡ interval bù trừ, index và bảng booking phải nhất quán
		if rmErr := s.idx.Remove(ctx, ref); rmErr != nil {
			s.logger.Error("compensating remove failed for %s: %v", confirmation, rmErr)
		}
		return nil, err
	}

	s.recordHistory(ctx, booking.ID, models.HistoryActionCreated, "", booking.Status, in.ActorID, "")
	s.announce(ctx, booking, models.HistoryActionCreated, "", booking.Status)

	return booking, nil
}

// TransitionOptions là tham số phụ của một lần chuyển trạng thái
type TransitionOptions struct {
	ActorID    *uint
	PaidAmount float64
	KYCIDs     []uint
	Note       string
}

// Transition thực hiện một chuyển trạng thái theo bảng transition.
// CHECKED_IN yêu cầu đủ giấy tờ VERIFIED cho từng khách; CANCELLED giải
// phóng interval ngay lập tức; các chuyển khác không chạm vào index.
func (s *BookingService) Transition(ctx context.Context, bookingID uint, target models.BookingStatus, opts TransitionOptions) (*models.Booking, error) {
	if !models.IsValidStatus(target) {
		return nil, errors.NewAppError(errors.ErrCodeValidation, "Trạng thái không hợp lệ: "+string(target), nil)
	}

	var booking models.Booking
	if err := s.db.WithContext(ctx).Preload("KYCDocuments").First(&booking, bookingID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrBookingNotFound
		}
		return nil, err
	}

	if err := models.ValidateTransition(booking.Status, target); err != nil {
		return nil, err
	}

	// Check-in tại quầy có thể gắn thêm giấy tờ ngay trong request
	if target == models.BookingStatusCheckedIn && len(opts.KYCIDs) > 0 {
		if err := s.attachKYC(ctx, &booking, opts.KYCIDs); err != nil {
			return nil, err
		}
	}

	if target == models.BookingStatusCheckedIn && !booking.HasVerifiedKYC() {
		return nil, errors.ErrKYCNotVerified
	}

	from := booking.Status
	updates := map[string]interface{}{"status": target}

	switch target {
	case models.BookingStatusConfirmed:
		if opts.PaidAmount > 0 {
			updates["paid_amount"] = booking.PaidAmount + opts.PaidAmount
			updates["payment_status"] = models.PaymentStatusPaid
		}
	case models.BookingStatusCancelled:
		if next := booking.RefundStatusOnCancel(time.Now().UTC()); next != booking.PaymentStatus {
			updates["payment_status"] = next
		}
	}

	if err := s.db.WithContext(ctx).Model(&booking).Updates(updates).Error; err != nil {
		return nil, err
	}
	booking.Status = target

	if target == models.BookingStatusCancelled {
		if err := s.idx.Remove(ctx, BookingRef(booking.ConfirmationNumber)); err != nil {
			// Sweep job sẽ dọn interval mồ côi; trả lỗi để caller retry
			s.logger.Error("free interval failed for %s: %v", booking.ConfirmationNumber, err)
			return nil, err
		}
	}

	s.recordHistory(ctx, booking.ID, models.HistoryActionTransition, from, target, opts.ActorID, opts.Note)
	s.announce(ctx, &booking, models.HistoryActionTransition, from, target)

	return &booking, nil
}

// ModifyBooking đổi phòng hoặc ngày của booking trong một bước atomic:
// index Replace giữ nguyên interval gốc khi có xung đột, và nếu ghi
// booking thất bại sau khi Replace thành công thì Replace ngược lại.
func (s *BookingService) ModifyBooking(ctx context.Context, bookingID uint, newRoomID uint, newCheckIn, newCheckOut time.Time, actorID *uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.WithContext(ctx).First(&booking, bookingID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrBookingNotFound
		}
		return nil, err
	}

	// Chỉ đổi được trước khi khách nhận phòng
	if booking.Status != models.BookingStatusPending && booking.Status != models.BookingStatusConfirmed {
		return nil, &errors.InvalidTransitionError{From: string(booking.Status), To: string(booking.Status)}
	}

	if newRoomID == 0 {
		newRoomID = booking.RoomID
	}
	var room models.Room
	if err := s.db.WithContext(ctx).First(&room, newRoomID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrRoomNotFound
		}
		return nil, err
	}

	ref := BookingRef(booking.ConfirmationNumber)
	if err := s.idx.Replace(ctx, ref, newRoomID, newCheckIn, newCheckOut); err != nil {
		return nil, err
	}

	nights := int(newCheckOut.Sub(newCheckIn).Hours() / 24)
	updates := map[string]interface{}{
		"room_id":        newRoomID,
		"hotel_id":       room.HotelID,
		"check_in_date":  newCheckIn,
		"check_out_date": newCheckOut,
		"total_price":    room.Price * float64(nights),
	}
	if err := s.db.WithContext(ctx).Model(&booking).Updates(updates).Error; err != nil {
		// Trả interval về chỗ cũ, không để index và booking lệch nhau
		if rbErr := s.idx.Replace(ctx, ref, booking.RoomID, booking.CheckInDate, booking.CheckOutDate); rbErr != nil {
			s.logger.Error("rollback replace failed for %s: %v", booking.ConfirmationNumber, rbErr)
		}
		return nil, err
	}

	booking.RoomID = newRoomID
	booking.HotelID = room.HotelID
	booking.CheckInDate = newCheckIn
	booking.CheckOutDate = newCheckOut
	booking.TotalPrice = room.Price * float64(nights)

	note := fmt.Sprintf("room=%d %s..%s", newRoomID,
		newCheckIn.Format("2006-01-02"), newCheckOut.Format("2006-01-02"))
	s.recordHistory(ctx, booking.ID, models.HistoryActionModified, booking.Status, booking.Status, actorID, note)

	return &booking, nil
}

// History trả về audit trail của booking, cũ nhất trước
func (s *BookingService) History(ctx context.Context, bookingID uint) ([]models.BookingHistory, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Booking{}).Where("id = ?", bookingID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, errors.ErrBookingNotFound
	}

	var history []models.BookingHistory
	err := s.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at ASC, id ASC").
		Find(&history).Error
	return history, err
}

// CancelStalePending hủy các booking PENDING chưa thanh toán đã quá hạn
// giữ chỗ, giải phóng interval cho khách khác.
func (s *BookingService) CancelStalePending(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-time.Duration(constants.PendingHoldMinutes) * time.Minute)
	var stale []models.Booking
	err := s.db.WithContext(ctx).
		Where("status = ? AND payment_status = ? AND created_at < ?",
			models.BookingStatusPending, models.PaymentStatusUnpaid, cutoff).
		Find(&stale).Error
	if err != nil {
		return 0, err
	}

	cancelled := 0
	for _, b := range stale {
		if _, err := s.Transition(ctx, b.ID, models.BookingStatusCancelled, TransitionOptions{
			Note: "auto-cancel: payment hold expired",
		}); err != nil {
			s.logger.Error("auto-cancel booking %d failed: %v", b.ID, err)
			continue
		}
		cancelled++
	}
	return cancelled, nil
}

// attachKYC gắn các giấy tờ đã upload vào booking
func (s *BookingService) attachKYC(ctx context.Context, booking *models.Booking, kycIDs []uint) error {
	if err := s.db.WithContext(ctx).Model(&models.KYCDocument{}).
		Where("id IN ?", kycIDs).
		Update("booking_id", booking.ID).Error; err != nil {
		return err
	}
	// Nạp lại danh sách giấy tờ để precondition check-in nhìn thấy chúng
	return s.db.WithContext(ctx).
		Where("booking_id = ?", booking.ID).
		Find(&booking.KYCDocuments).Error
}

// recordHistory ghi một dòng audit; lỗi chỉ log, không làm hỏng request
func (s *BookingService) recordHistory(ctx context.Context, bookingID uint, action string, from, to models.BookingStatus, actorID *uint, note string) {
	h := models.BookingHistory{
		BookingID:  bookingID,
		Action:     action,
		FromStatus: from,
		ToStatus:   to,
		ActorID:    actorID,
		Note:       note,
	}
	if err := s.db.WithContext(ctx).Create(&h).Error; err != nil {
		s.logger.Error("record history failed for booking %d: %v", bookingID, err)
	}
}

// announce phát event lên broker và broadcast websocket, best-effort
func (s *BookingService) announce(ctx context.Context, booking *models.Booking, action string, from, to models.BookingStatus) {
	_ = PublishBookingEvent(ctx, BookingEvent{
		BookingID:          booking.ID,
		ConfirmationNumber: booking.ConfirmationNumber,
		RoomID:             booking.RoomID,
		HotelID:            booking.HotelID,
		Action:             action,
		FromStatus:         from,
		ToStatus:           to,
		OccurredAt:         time.Now().UTC(),
	})

	if s.ws != nil {
		msg := fmt.Sprintf("booking %s: %s -> %s", booking.ConfirmationNumber, from, to)
		if err := s.ws.Broadcast([]byte(msg)); err != nil {
			s.logger.Error("ws broadcast failed: %v", err)
		}
	}
}

// generateConfirmationNumber sinh mã xác nhận duy nhất dạng
// BK-YYYYMMDD-XXXXXX, kiểm tra trùng với bảng bookings.
func (s *BookingService) generateConfirmationNumber(ctx context.Context) (string, error) {
	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	for attempt := 0; attempt < 5; attempt++ {
		suffix := make([]byte, 6)
		for i := range suffix {
			n, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
			if err != nil {
				return "", err
			}
			suffix[i] = alphabet[n.Int64()]
		}
		code := fmt.Sprintf("BK-%s-%s", time.Now().UTC().Format("20060102"), suffix)

		var count int64
		if err := s.db.WithContext(ctx).Model(&models.Booking{}).
			Where("confirmation_number = ?", code).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return code, nil
		}
	}
	return "", errors.ErrConfirmationExhausted
}
