package controllers

import (
	stderrors "errors"

	"hms/dto"
	"hms/errors"
	"hms/models"
	"hms/response"
	"hms/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthController xử lý đăng nhập và đăng ký cho console admin
type AuthController struct {
	svc *services.AuthService
	db  *gorm.DB
}

// NewAuthController tạo instance mới của AuthController
func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{svc: services.NewAuthService(db), db: db}
}

func convertToUserResponse(u *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
	}
}

// Login xác thực email/mật khẩu và trả về JWT
func (ac *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	user, token, err := ac.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if stderrors.Is(err, errors.ErrUserNotFound) || stderrors.Is(err, errors.ErrInvalidPassword) {
			response.Unauthorized(c)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, dto.LoginResponse{
		Token: token,
		User:  convertToUserResponse(user),
	})
}

// Register tạo tài khoản mới
func (ac *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	user, err := ac.svc.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.PhoneNumber)
	if err != nil {
		if stderrors.Is(err, errors.ErrUserAlreadyExists) {
			response.Conflict(c, "Email đã được sử dụng")
			return
		}
		response.ServerError(c)
		return
	}

	response.Created(c, convertToUserResponse(user))
}

// GetProfile trả về thông tin user hiện tại
func (ac *AuthController) GetProfile(c *gin.Context) {
	var user models.User
	if err := ac.db.First(&user, c.GetUint("userID")).Error; err != nil {
		response.NotFound(c, "Không tìm thấy người dùng")
		return
	}
	response.Success(c, convertToUserResponse(&user))
}
