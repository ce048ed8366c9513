package controllers

import (
	stderrors "errors"
	"fmt"
	"strconv"
	"time"

	"hms/config"
	"hms/constants"
	"hms/dto"
	"hms/errors"
	"hms/middleware"
	"hms/models"
	"hms/response"
	"hms/services"
	"hms/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// BookingController bọc các endpoint booking quanh BookingService và
// AvailabilityService
type BookingController struct {
	db     *gorm.DB
	rdb    *redis.Client
	svc    *services.BookingService
	avail  *services.AvailabilityService
	search *services.CitySearch
}

// NewBookingController tạo instance mới của BookingController
func NewBookingController(db *gorm.DB, rdb *redis.Client, svc *services.BookingService) *BookingController {
	return &BookingController{
		db:     db,
		rdb:    rdb,
		svc:    svc,
		avail:  services.NewAvailabilityService(db),
		search: services.NewCitySearch(db),
	}
}

func convertToBookingResponse(b *models.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:                 b.ID,
		ConfirmationNumber: b.ConfirmationNumber,
		RoomID:             b.RoomID,
		HotelID:            b.HotelID,
		UserID:             b.UserID,
		GuestName:          b.GuestName,
		GuestPhone:         b.GuestPhone,
		NumGuests:          b.NumGuests,
		CheckInDate:        b.CheckInDate.Format(validator.DateLayout),
		CheckOutDate:       b.CheckOutDate.Format(validator.DateLayout),
		Status:             b.Status,
		PaymentStatus:      b.PaymentStatus,
		Source:             b.Source,
		TotalPrice:         b.TotalPrice,
		PaidAmount:         b.PaidAmount,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

func convertToAvailableRoomResponse(room models.Room) dto.AvailableRoomResponse {
	return dto.AvailableRoomResponse{
		ID:         room.ID,
		HotelID:    room.HotelID,
		HotelName:  room.Hotel.Name,
		City:       room.Hotel.City,
		RoomNumber: room.RoomNumber,
		Type:       room.Type,
		Capacity:   room.Capacity,
		Price:      room.Price,
	}
}

// respondBookingError ánh xạ lỗi domain sang HTTP status theo taxonomy:
// 400 validation, 404 not found, 409 conflict/transition, 500 còn lại.
func respondBookingError(c *gin.Context, err error) {
	switch {
	case stderrors.Is(err, errors.ErrRoomUnavailable):
		response.Conflict(c, "Phòng không còn trống trong khoảng thời gian này")
	case errors.IsInvalidTransition(err):
		response.Conflict(c, err.Error())
	case stderrors.Is(err, errors.ErrKYCNotVerified):
		response.Conflict(c, "Mỗi khách phải có giấy tờ đã xác minh trước khi nhận phòng")
	case stderrors.Is(err, errors.ErrBookingNotFound):
		response.NotFound(c, "Không tìm thấy booking")
	case stderrors.Is(err, errors.ErrRoomNotFound):
		response.NotFound(c, "Không tìm thấy phòng")
	case errors.IsAppError(err):
		response.BadRequest(c, errors.GetAppError(err).Message)
	default:
		response.ServerError(c)
	}
}

// CheckAvailability trả về các phòng trống cho [checkIn, checkOut),
// lọc tùy chọn theo thành phố (fuzzy) và khách sạn. Kết quả cache ngắn
// hạn trong Redis; các ghi booking mới nhất có thể chưa phản ánh ngay.
func (bc *BookingController) CheckAvailability(c *gin.Context) {
	var query dto.AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Thiếu tham số checkIn hoặc checkOut")
		return
	}

	checkIn, checkOut, err := validator.ParseInterval(query.CheckIn, query.CheckOut)
	if err != nil {
		response.BadRequest(c, errors.GetAppError(err).Message)
		return
	}

	city := query.City
	if city != "" {
		resolved, err := bc.search.ResolveCity(c.Request.Context(), city)
		if err == nil && resolved != "" {
			city = resolved
		}
	}

	cacheKey := fmt.Sprintf("availability:%s:%s:%s:%d", query.CheckIn, query.CheckOut, city, query.HotelID)
	var cached dto.AvailabilityResponse
	if err := services.GetFromRedis(config.Ctx, bc.rdb, cacheKey, &cached); err == nil && cached.AvailableRooms != nil {
		response.Success(c, cached)
		return
	}

	rooms, err := bc.avail.AvailableRooms(c.Request.Context(), checkIn, checkOut, services.AvailabilityFilter{
		City:    city,
		HotelID: query.HotelID,
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	result := dto.AvailabilityResponse{AvailableRooms: make([]dto.AvailableRoomResponse, 0, len(rooms))}
	for _, room := range rooms {
		result.AvailableRooms = append(result.AvailableRooms, convertToAvailableRoomResponse(room))
	}

	_ = services.SetToRedis(config.Ctx, bc.rdb, cacheKey, result, time.Minute)

	response.Success(c, result)
}

// CreateBooking tạo booking với source lấy từ body (mặc định ONLINE)
func (bc *BookingController) CreateBooking(c *gin.Context) {
	bc.createWithSource(c, models.BookingSourceOnline)
}

// CreateOnlineBooking tạo booking tự phục vụ, vào PENDING chờ thanh toán
func (bc *BookingController) CreateOnlineBooking(c *gin.Context) {
	bc.createWithSource(c, models.BookingSourceOnline)
}

// CreateAdminBooking tạo booking bởi admin; nếu đã thanh toán thì vào
// thẳng CONFIRMED
func (bc *BookingController) CreateAdminBooking(c *gin.Context) {
	bc.createWithSource(c, models.BookingSourceAdmin)
}

// CreateOfflineBooking tạo booking walk-in tại quầy
func (bc *BookingController) CreateOfflineBooking(c *gin.Context) {
	bc.createWithSource(c, models.BookingSourceOffline)
}

func (bc *BookingController) createWithSource(c *gin.Context, source models.BookingSource) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateCreateBooking(&req); err != nil {
		response.BadRequest(c, errors.GetAppError(err).Message)
		return
	}
	checkIn, checkOut, _ := validator.ParseInterval(req.CheckInDate, req.CheckOutDate)

	var userID *uint
	if req.UserID != 0 {
		userID = &req.UserID
	}

	booking, err := bc.svc.CreateBooking(c.Request.Context(), services.CreateBookingInput{
		RoomID:       req.RoomID,
		UserID:       userID,
		GuestName:    req.GuestName,
		GuestEmail:   req.GuestEmail,
		GuestPhone:   req.GuestPhone,
		NumGuests:    req.NumGuests,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Source:       source,
		PaidAmount:   req.PaidAmount,
		ActorID:      middleware.ActorID(c),
	})
	if err != nil {
		respondBookingError(c, err)
		return
	}

	bc.invalidateListCache()
	response.Created(c, convertToBookingResponse(booking))
}

// ChangeStatus xử lý PATCH /bookings/:id/status với trạng thái đích
// trong body
func (bc *BookingController) ChangeStatus(c *gin.Context) {
	bookingID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	bc.transitionTo(c, bookingID, req.Status, req)
}

// Confirm xác nhận booking sau khi thanh toán hoặc duyệt thủ công
func (bc *BookingController) Confirm(c *gin.Context) {
	bc.shortcutTransition(c, models.BookingStatusConfirmed)
}

// CheckIn chuyển booking sang CHECKED_IN (yêu cầu KYC đã xác minh)
func (bc *BookingController) CheckIn(c *gin.Context) {
	bc.shortcutTransition(c, models.BookingStatusCheckedIn)
}

// CheckOut chuyển booking sang CHECKED_OUT
func (bc *BookingController) CheckOut(c *gin.Context) {
	bc.shortcutTransition(c, models.BookingStatusCheckedOut)
}

// Cancel hủy booking và giải phóng interval ngay
func (bc *BookingController) Cancel(c *gin.Context) {
	bc.shortcutTransition(c, models.BookingStatusCancelled)
}

// PhysicalCheckIn nhận phòng tại quầy, gắn giấy tờ trong cùng request
func (bc *BookingController) PhysicalCheckIn(c *gin.Context) {
	bookingID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.PhysicalCheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Thiếu danh sách kycIds")
		return
	}

	bc.transitionTo(c, bookingID, models.BookingStatusCheckedIn, dto.StatusUpdateRequest{
		Status: models.BookingStatusCheckedIn,
		KYCIDs: req.KYCIDs,
	})
}

func (bc *BookingController) shortcutTransition(c *gin.Context, target models.BookingStatus) {
	bookingID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.StatusUpdateRequest
	_ = c.ShouldBindJSON(&req) // body tùy chọn với các shortcut
	req.Status = target

	bc.transitionTo(c, bookingID, target, req)
}

func (bc *BookingController) transitionTo(c *gin.Context, bookingID uint, target models.BookingStatus, req dto.StatusUpdateRequest) {
	booking, err := bc.svc.Transition(c.Request.Context(), bookingID, target, services.TransitionOptions{
		ActorID:    middleware.ActorID(c),
		PaidAmount: req.PaidAmount,
		KYCIDs:     req.KYCIDs,
		Note:       req.Note,
	})
	if err != nil {
		respondBookingError(c, err)
		return
	}

	bc.invalidateListCache()
	response.Success(c, convertToBookingResponse(booking))
}

// Modify đổi ngày hoặc phòng của booking; khi xung đột interval gốc
// được giữ nguyên
func (bc *BookingController) Modify(c *gin.Context) {
	bookingID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.ModifyBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	checkIn, checkOut, err := validator.ParseInterval(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		response.BadRequest(c, errors.GetAppError(err).Message)
		return
	}

	booking, err := bc.svc.ModifyBooking(c.Request.Context(), bookingID, req.RoomID, checkIn, checkOut, middleware.ActorID(c))
	if err != nil {
		respondBookingError(c, err)
		return
	}

	bc.invalidateListCache()
	response.Success(c, convertToBookingResponse(booking))
}

// GetBookings liệt kê booking theo quyền: manager chỉ thấy các khách
// sạn của mình, superadmin thấy tất cả
func (bc *BookingController) GetBookings(c *gin.Context) {
	userRole := c.GetInt("userRole")
	currentUserID := c.GetUint("userID")

	cacheKey := fmt.Sprintf("bookings:all:user:%d", currentUserID)
	var allBookings []models.Booking

	if err := services.GetFromRedis(config.Ctx, bc.rdb, cacheKey, &allBookings); err != nil || len(allBookings) == 0 {
		baseTx := bc.db.Model(&models.Booking{}).Preload("Room").Preload("Hotel")

		if userRole == constants.RoleManager {
			baseTx = baseTx.Where("bookings.hotel_id IN (?)",
				bc.db.Model(&models.Hotel{}).Select("id").Where("manager_id = ?", currentUserID))
		} else if userRole == constants.RoleReceptionist {
			var adminID uint
			if err := bc.db.Model(&models.User{}).Select("admin_id").Where("id = ?", currentUserID).Scan(&adminID).Error; err != nil || adminID == 0 {
				response.Forbidden(c)
				return
			}
			baseTx = baseTx.Where("bookings.hotel_id IN (?)",
				bc.db.Model(&models.Hotel{}).Select("id").Where("manager_id = ?", adminID))
		}

		if err := baseTx.Order("updated_at DESC").Find(&allBookings).Error; err != nil {
			response.ServerError(c)
			return
		}

		_ = services.SetToRedis(config.Ctx, bc.rdb, cacheKey, allBookings, 10*time.Minute)
	}

	// Lọc theo query
	statusFilter := c.Query("status")
	hotelFilter := c.Query("hotelId")

	filtered := make([]models.Booking, 0, len(allBookings))
	for _, b := range allBookings {
		if statusFilter != "" && string(b.Status) != statusFilter {
			continue
		}
		if hotelFilter != "" {
			hotelID, err := strconv.Atoi(hotelFilter)
			if err == nil && b.HotelID != uint(hotelID) {
				continue
			}
		}
		filtered = append(filtered, b)
	}

	page := 0
	limit := 10
	if parsed, err := strconv.Atoi(c.Query("page")); err == nil && parsed >= 0 {
		page = parsed
	}
	if parsed, err := strconv.Atoi(c.Query("limit")); err == nil && parsed > 0 {
		limit = parsed
	}

	start := page * limit
	end := start + limit
	if start >= len(filtered) {
		start, end = 0, 0
	} else if end > len(filtered) {
		end = len(filtered)
	}

	items := make([]dto.BookingResponse, 0, end-start)
	for i := start; i < end; i++ {
		items = append(items, convertToBookingResponse(&filtered[i]))
	}

	response.SuccessWithPagination(c, items, page, limit, len(filtered))
}

// GetBookingDetail trả về một booking kèm giấy tờ KYC
func (bc *BookingController) GetBookingDetail(c *gin.Context) {
	bookingID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var booking models.Booking
	if err := bc.db.Preload("Room").Preload("Hotel").Preload("KYCDocuments").
		First(&booking, bookingID).Error; err != nil {
		response.NotFound(c, "Không tìm thấy booking")
		return
	}

	response.Success(c, booking)
}

// GetHistory trả về audit trail của booking theo thứ tự thời gian
func (bc *BookingController) GetHistory(c *gin.Context) {
	bookingID, ok := parseIDParam(c)
	if !ok {
		return
	}

	history, err := bc.svc.History(c.Request.Context(), bookingID)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	items := make([]dto.HistoryResponse, 0, len(history))
	for _, h := range history {
		items = append(items, dto.HistoryResponse{
			ID:         h.ID,
			Action:     h.Action,
			FromStatus: h.FromStatus,
			ToStatus:   h.ToStatus,
			ActorID:    h.ActorID,
			Note:       h.Note,
			CreatedAt:  h.CreatedAt,
		})
	}
	response.Success(c, items)
}

func (bc *BookingController) invalidateListCache() {
	// Cache availability hết hạn theo TTL; cache danh sách xóa chủ động
	keys, err := bc.rdb.Keys(config.Ctx, "bookings:all:user:*").Result()
	if err != nil {
		return
	}
	for _, key := range keys {
		_ = services.DeleteFromRedis(config.Ctx, bc.rdb, key)
	}
}

// parseIDParam đọc :id từ path, trả về false nếu không hợp lệ
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return 0, false
	}
	return uint(id), true
}
