package models

import (
	"encoding/json"
	"fmt"
	"time"

	"hms/constants"

	"github.com/go-playground/validator/v10"
)

type Room struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	HotelID     uint            `json:"hotelId" gorm:"index" validate:"required"`
	Hotel       Hotel           `json:"hotel" gorm:"foreignKey:HotelID"`
	RoomNumber  string          `json:"roomNumber" gorm:"index" validate:"required"`
	Type        string          `json:"type"`
	Capacity    int             `json:"capacity" gorm:"default:2" validate:"min=1"`
	Price       float64         `json:"price" validate:"min=0"`
	Description string          `json:"description"`
	Amenities   json.RawMessage `json:"amenities" gorm:"type:json"`
	Status      int             `json:"status" gorm:"default:1"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (r *Room) Validate() error {
	validate := validator.New()

	if err := validate.Struct(r); err != nil {
		return err
	}

	return r.ValidateStatus()
}

func (r *Room) ValidateStatus() error {
	if r.Status < constants.RoomStatusUnavailable || r.Status > constants.RoomStatusMaintenance {
		return fmt.Errorf("invalid status: %d, must be between %d and %d",
			r.Status, constants.RoomStatusUnavailable, constants.RoomStatusMaintenance)
	}
	return nil
}
