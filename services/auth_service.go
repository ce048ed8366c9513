package services

import (
	"context"

	"hms/errors"
	"hms/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService xử lý đăng nhập/đăng ký tối thiểu cho console admin.
// OTP và đăng nhập Google thuộc về auth collaborator bên ngoài.
type AuthService struct {
	db *gorm.DB
}

// NewAuthService tạo instance mới của AuthService
func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Register tạo tài khoản mới với mật khẩu đã hash
func (s *AuthService) Register(ctx context.Context, name, email, password, phone string) (*models.User, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.ErrUserAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:        name,
		Email:       email,
		Password:    string(hashed),
		PhoneNumber: phone,
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Login kiểm tra mật khẩu và trả về user kèm token
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, "", errors.ErrUserNotFound
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", errors.ErrInvalidPassword
	}

	token, err := GenerateToken(&user)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}
