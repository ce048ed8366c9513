package controllers

import (
	"hms/constants"
	"hms/dto"
	"hms/models"
	"hms/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RoomController quản lý CRUD phòng
type RoomController struct {
	db *gorm.DB
}

// NewRoomController tạo instance mới của RoomController
func NewRoomController(db *gorm.DB) *RoomController {
	return &RoomController{db: db}
}

func convertToRoomResponse(r models.Room) dto.RoomResponse {
	return dto.RoomResponse{
		ID:          r.ID,
		HotelID:     r.HotelID,
		RoomNumber:  r.RoomNumber,
		Type:        r.Type,
		Capacity:    r.Capacity,
		Price:       r.Price,
		Description: r.Description,
		Amenities:   r.Amenities,
		Status:      r.Status,
	}
}

// GetRooms liệt kê phòng, lọc tùy chọn theo khách sạn
func (rc *RoomController) GetRooms(c *gin.Context) {
	q := rc.db.Model(&models.Room{}).Order("hotel_id ASC, room_number ASC")
	if hotelID := c.Query("hotelId"); hotelID != "" {
		q = q.Where("hotel_id = ?", hotelID)
	}

	var rooms []models.Room
	if err := q.Find(&rooms).Error; err != nil {
		response.ServerError(c)
		return
	}

	items := make([]dto.RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		items = append(items, convertToRoomResponse(r))
	}
	response.Success(c, items)
}

// GetRoomDetail trả về một phòng
func (rc *RoomController) GetRoomDetail(c *gin.Context) {
	roomID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var room models.Room
	if err := rc.db.Preload("Hotel").First(&room, roomID).Error; err != nil {
		response.NotFound(c, "Không tìm thấy phòng")
		return
	}
	response.Success(c, room)
}

// CreateRoom tạo phòng mới trong một khách sạn
func (rc *RoomController) CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var hotel models.Hotel
	if err := rc.db.First(&hotel, req.HotelID).Error; err != nil {
		response.NotFound(c, "Không tìm thấy khách sạn")
		return
	}

	capacity := req.Capacity
	if capacity < 1 {
		capacity = 2
	}

	room := models.Room{
		HotelID:     req.HotelID,
		RoomNumber:  req.RoomNumber,
		Type:        req.Type,
		Capacity:    capacity,
		Price:       req.Price,
		Description: req.Description,
		Amenities:   req.Amenities,
		Status:      constants.RoomStatusAvailable,
	}
	if err := room.Validate(); err != nil {
		response.BadRequest(c, "Dữ liệu phòng không hợp lệ")
		return
	}
	if err := rc.db.Create(&room).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Created(c, convertToRoomResponse(room))
}

// UpdateRoom cập nhật thông tin phòng (chỉnh sửa hành chính, không đụng
// tới lịch đặt phòng)
func (rc *RoomController) UpdateRoom(c *gin.Context) {
	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var room models.Room
	if err := rc.db.First(&room, req.ID).Error; err != nil {
		response.NotFound(c, "Không tìm thấy phòng")
		return
	}

	updates := map[string]interface{}{}
	if req.RoomNumber != "" {
		updates["room_number"] = req.RoomNumber
	}
	if req.Type != "" {
		updates["type"] = req.Type
	}
	if req.Capacity != nil {
		updates["capacity"] = *req.Capacity
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if len(req.Amenities) > 0 {
		updates["amenities"] = req.Amenities
	}
	if req.Status != nil {
		room.Status = *req.Status
		if err := room.ValidateStatus(); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		updates["status"] = *req.Status
	}

	if err := rc.db.Model(&room).Updates(updates).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, convertToRoomResponse(room))
}
