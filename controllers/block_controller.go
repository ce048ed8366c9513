package controllers

import (
	stderrors "errors"
	"strconv"

	"hms/dto"
	"hms/errors"
	"hms/models"
	"hms/response"
	"hms/services"
	"hms/validator"

	"github.com/gin-gonic/gin"
)

// BlockController quản lý facility block (chặn phòng bảo trì/sự kiện)
type BlockController struct {
	svc *services.BlockService
}

// NewBlockController tạo instance mới của BlockController
func NewBlockController(svc *services.BlockService) *BlockController {
	return &BlockController{svc: svc}
}

func convertToBlockResponse(b models.FacilityBlock) dto.BlockResponse {
	return dto.BlockResponse{
		ID:        b.ID,
		RoomID:    b.RoomID,
		FromDate:  b.FromDate.Format(validator.DateLayout),
		ToDate:    b.ToDate.Format(validator.DateLayout),
		Reason:    b.Reason,
		CreatedBy: b.CreatedBy,
		CreatedAt: b.CreatedAt,
	}
}

// CreateBlock chặn một phòng trong khoảng ngày; từ chối nếu phòng đã có
// booking hoặc block chồng lấn
func (blc *BlockController) CreateBlock(c *gin.Context) {
	var req dto.CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateCreateBlock(&req); err != nil {
		response.BadRequest(c, errors.GetAppError(err).Message)
		return
	}
	from, to, _ := validator.ParseInterval(req.FromDate, req.ToDate)

	block, err := blc.svc.CreateBlock(c.Request.Context(), req.RoomID, from, to, req.Reason, c.GetUint("userID"))
	if err != nil {
		switch {
		case stderrors.Is(err, errors.ErrRoomUnavailable):
			response.Conflict(c, "Phòng đã có booking hoặc block trong khoảng thời gian này")
		case stderrors.Is(err, errors.ErrRoomNotFound):
			response.NotFound(c, "Không tìm thấy phòng")
		default:
			response.ServerError(c)
		}
		return
	}

	response.Created(c, convertToBlockResponse(*block))
}

// GetBlocks liệt kê block, lọc tùy chọn theo phòng
func (blc *BlockController) GetBlocks(c *gin.Context) {
	var roomID uint
	if raw := c.Query("roomId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			response.BadRequest(c, "roomId không hợp lệ")
			return
		}
		roomID = uint(parsed)
	}

	blocks, err := blc.svc.ListBlocks(c.Request.Context(), roomID)
	if err != nil {
		response.ServerError(c)
		return
	}

	items := make([]dto.BlockResponse, 0, len(blocks))
	for _, b := range blocks {
		items = append(items, convertToBlockResponse(b))
	}
	response.Success(c, items)
}

// DeleteBlock gỡ block thủ công trước khi hết hạn
func (blc *BlockController) DeleteBlock(c *gin.Context) {
	blockID, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := blc.svc.RemoveBlock(c.Request.Context(), blockID); err != nil {
		if stderrors.Is(err, errors.ErrBlockNotFound) {
			response.NotFound(c, "Không tìm thấy block")
			return
		}
		response.ServerError(c)
		return
	}
	response.Success(c, gin.H{"deleted": blockID})
}
