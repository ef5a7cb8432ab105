package models

import (
	"time"

	"gorm.io/gorm"
)

type Announcement struct {
	ID            uint64         `gorm:"primarykey" json:"id"`
	Title         string         `gorm:"not null" json:"title"`
	Description   string         `gorm:"type:text;not null" json:"description"`
	IsImportant   bool           `gorm:"not null;default:false" json:"is_important"`
	CreatedBy     uint64         `gorm:"not null;index" json:"created_by"`
	CreatedByName string         `gorm:"type:varchar(255)" json:"created_by_name"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
