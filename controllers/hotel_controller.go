package controllers

import (
	"hms/dto"
	"hms/models"
	"hms/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HotelController quản lý CRUD khách sạn cho console admin
type HotelController struct {
	db *gorm.DB
}

// NewHotelController tạo instance mới của HotelController
func NewHotelController(db *gorm.DB) *HotelController {
	return &HotelController{db: db}
}

func convertToHotelResponse(h models.Hotel) dto.HotelResponse {
	return dto.HotelResponse{
		ID:      h.ID,
		Name:    h.Name,
		Address: h.Address,
		City:    h.City,
		State:   h.State,
		Status:  h.Status,
	}
}

// GetHotels liệt kê khách sạn, lọc tùy chọn theo thành phố
func (hc *HotelController) GetHotels(c *gin.Context) {
	q := hc.db.Model(&models.Hotel{}).Order("name ASC")
	if city := c.Query("city"); city != "" {
		q = q.Where("LOWER(city) = LOWER(?)", city)
	}

	var hotels []models.Hotel
	if err := q.Find(&hotels).Error; err != nil {
		response.ServerError(c)
		return
	}

	items := make([]dto.HotelResponse, 0, len(hotels))
	for _, h := range hotels {
		items = append(items, convertToHotelResponse(h))
	}
	response.Success(c, items)
}

// GetHotelDetail trả về một khách sạn kèm danh sách phòng
func (hc *HotelController) GetHotelDetail(c *gin.Context) {
	hotelID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var hotel models.Hotel
	if err := hc.db.Preload("Rooms").First(&hotel, hotelID).Error; err != nil {
		response.NotFound(c, "Không tìm thấy khách sạn")
		return
	}
	response.Success(c, hotel)
}

// CreateHotel tạo khách sạn mới, gán manager là user hiện tại
func (hc *HotelController) CreateHotel(c *gin.Context) {
	var req dto.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	hotel := models.Hotel{
		Name:      req.Name,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		ManagerID: c.GetUint("userID"),
	}
	if err := hc.db.Create(&hotel).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Created(c, convertToHotelResponse(hotel))
}

// UpdateHotel cập nhật thông tin khách sạn
func (hc *HotelController) UpdateHotel(c *gin.Context) {
	var req dto.UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var hotel models.Hotel
	if err := hc.db.First(&hotel, req.ID).Error; err != nil {
		response.NotFound(c, "Không tìm thấy khách sạn")
		return
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Address != "" {
		updates["address"] = req.Address
	}
	if req.City != "" {
		updates["city"] = req.City
	}
	if req.State != "" {
		updates["state"] = req.State
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if err := hc.db.Model(&hotel).Updates(updates).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, convertToHotelResponse(hotel))
}
