package services

import (
	"context"
	"mime/multipart"

	"hms/errors"
	"hms/models"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"gorm.io/gorm"
)

// KYCService upload giấy tờ định danh lên Cloudinary và quản lý trạng
// thái xác minh. Việc duyệt giấy tờ là workflow riêng của lễ tân; bước
// check-in chỉ đọc kết quả qua Booking.HasVerifiedKYC.
type KYCService struct {
	db  *gorm.DB
	cld *cloudinary.Cloudinary
}

// NewKYCService tạo instance mới của KYCService
func NewKYCService(db *gorm.DB, cld *cloudinary.Cloudinary) *KYCService {
	return &KYCService{db: db, cld: cld}
}

// Upload đẩy file giấy tờ lên Cloudinary và ghi bản ghi PENDING
func (s *KYCService) Upload(ctx context.Context, file multipart.File, bookingID uint, guestName, docType string) (*models.KYCDocument, error) {
	resp, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: "kyc"})
	if err != nil {
		return nil, err
	}

	doc := &models.KYCDocument{
		BookingID: bookingID,
		GuestName: guestName,
		DocType:   docType,
		FileURL:   resp.SecureURL,
		Status:    models.KYCStatusPending,
	}
	if err := s.db.WithContext(ctx).Create(doc).Error; err != nil {
		return nil, err
	}
	return doc, nil
}

// Verify cập nhật trạng thái xác minh của giấy tờ
func (s *KYCService) Verify(ctx context.Context, docID uint, status models.KYCStatus, verifiedBy uint) (*models.KYCDocument, error) {
	if status != models.KYCStatusVerified && status != models.KYCStatusRejected {
		return nil, errors.NewAppError(errors.ErrCodeValidation, "Trạng thái KYC không hợp lệ: "+string(status), nil)
	}

	var doc models.KYCDocument
	if err := s.db.WithContext(ctx).First(&doc, docID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy giấy tờ", err)
		}
		return nil, err
	}

	updates := map[string]interface{}{
		"status":      status,
		"verified_by": verifiedBy,
	}
	if err := s.db.WithContext(ctx).Model(&doc).Updates(updates).Error; err != nil {
		return nil, err
	}
	doc.Status = status
	doc.VerifiedBy = &verifiedBy
	return &doc, nil
}

// IsVerified cho collaborator bên ngoài hỏi nhanh một giấy tờ đã được
// duyệt chưa
func (s *KYCService) IsVerified(ctx context.Context, docID uint) (bool, error) {
	var doc models.KYCDocument
	if err := s.db.WithContext(ctx).Select("status").First(&doc, docID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, nil
		}
		return false, err
	}
	return doc.IsVerified(), nil
}

// ListForBooking trả về các giấy tờ gắn với một booking
func (s *KYCService) ListForBooking(ctx context.Context, bookingID uint) ([]models.KYCDocument, error) {
	var docs []models.KYCDocument
	err := s.db.WithContext(ctx).Where("booking_id = ?", bookingID).Find(&docs).Error
	return docs, err
}
