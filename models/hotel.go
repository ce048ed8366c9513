package models

import (
	"time"
)

type Hotel struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Address   string    `json:"address"`
	City      string    `json:"city" gorm:"index"`
	State     string    `json:"state"`
	ManagerID uint      `json:"managerId" gorm:"index"`
	Manager   *User     `json:"manager,omitempty" gorm:"foreignKey:ManagerID"`
	Rooms     []Room    `json:"rooms,omitempty" gorm:"foreignKey:HotelID"`
	Status    int       `json:"status" gorm:"default:1"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
