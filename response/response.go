package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody là envelope lỗi trả về cho client
type ErrorBody struct {
	Message string `json:"message"`
}

// Pagination định nghĩa cấu trúc phân trang
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// PaginatedBody bọc danh sách kèm phân trang
type PaginatedBody struct {
	Data       interface{} `json:"data"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Success trả về response thành công
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created trả về response tạo mới thành công
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// SuccessWithPagination trả về danh sách có phân trang
func SuccessWithPagination(c *gin.Context, data interface{}, page, limit, total int) {
	c.JSON(http.StatusOK, PaginatedBody{
		Data: data,
		Pagination: &Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
		},
	})
}

// BadRequest trả về lỗi dữ liệu đầu vào (400)
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Message: message})
}

// Unauthorized trả về lỗi chưa xác thực (401)
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, ErrorBody{Message: "Chưa xác thực"})
}

// Forbidden trả về lỗi không có quyền (403)
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, ErrorBody{Message: "Không có quyền truy cập"})
}

// NotFound trả về lỗi không tìm thấy (404)
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Không tìm thấy"
	}
	c.JSON(http.StatusNotFound, ErrorBody{Message: message})
}

// Conflict trả về lỗi xung đột trạng thái hoặc dữ liệu (409)
func Conflict(c *gin.Context, message string) {
	if message == "" {
		message = "Xung đột dữ liệu"
	}
	c.JSON(http.StatusConflict, ErrorBody{Message: message})
}

// ServerError trả về lỗi server (500)
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, ErrorBody{Message: "Lỗi server"})
}
