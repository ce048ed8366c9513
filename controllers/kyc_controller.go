package controllers

import (
	"strconv"

	"hms/dto"
	"hms/errors"
	"hms/models"
	"hms/response"
	"hms/services"

	"github.com/gin-gonic/gin"
)

// KYCController xử lý upload và duyệt giấy tờ định danh của khách
type KYCController struct {
	svc *services.KYCService
}

// NewKYCController tạo instance mới của KYCController
func NewKYCController(svc *services.KYCService) *KYCController {
	return &KYCController{svc: svc}
}

func convertToKYCResponse(d models.KYCDocument) dto.KYCResponse {
	return dto.KYCResponse{
		ID:        d.ID,
		BookingID: d.BookingID,
		GuestName: d.GuestName,
		DocType:   d.DocType,
		FileURL:   d.FileURL,
		Status:    d.Status,
		CreatedAt: d.CreatedAt,
	}
}

// Upload nhận file giấy tờ qua multipart form và đẩy lên Cloudinary
func (kc *KYCController) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Không có file")
		return
	}

	bookingID, _ := strconv.ParseUint(c.PostForm("bookingId"), 10, 32)
	guestName := c.PostForm("guestName")
	docType := c.PostForm("docType")
	if guestName == "" || docType == "" {
		response.BadRequest(c, "Thiếu guestName hoặc docType")
		return
	}

	src, err := file.Open()
	if err != nil {
		response.BadRequest(c, "Lỗi khi mở file")
		return
	}
	defer src.Close()

	doc, err := kc.svc.Upload(c.Request.Context(), src, uint(bookingID), guestName, docType)
	if err != nil {
		response.ServerError(c)
		return
	}
	response.Created(c, convertToKYCResponse(*doc))
}

// Verify duyệt hoặc từ chối một giấy tờ
func (kc *KYCController) Verify(c *gin.Context) {
	var req dto.VerifyKYCRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	doc, err := kc.svc.Verify(c.Request.Context(), req.ID, req.Status, c.GetUint("userID"))
	if err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			if appErr.Code == errors.ErrCodeDBNotFound {
				response.NotFound(c, appErr.Message)
				return
			}
			response.BadRequest(c, appErr.Message)
			return
		}
		response.ServerError(c)
		return
	}
	response.Success(c, convertToKYCResponse(*doc))
}

// ListForBooking trả về các giấy tờ của một booking
func (kc *KYCController) ListForBooking(c *gin.Context) {
	bookingID, ok := parseIDParam(c)
	if !ok {
		return
	}

	docs, err := kc.svc.ListForBooking(c.Request.Context(), bookingID)
	if err != nil {
		response.ServerError(c)
		return
	}

	items := make([]dto.KYCResponse, 0, len(docs))
	for _, d := range docs {
		items = append(items, convertToKYCResponse(d))
	}
	response.Success(c, items)
}
