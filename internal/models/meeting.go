package models

import (
	"time"

	"gorm.io/gorm"
)

type Meeting struct {
	ID    uint64    `gorm:"primarykey" json:"id"`
	Title string    `gorm:"not null" json:"title"`
	Date  time.Time `gorm:"not null;index" json:"date"`

	// Time is the wall-clock start ("15:04"), stored separately from Date.
	// The two fields are not validated against each other.
	Time  string `gorm:"type:varchar(10);not null" json:"time"`
	Link  string `gorm:"type:varchar(500)" json:"link"`
	Notes string `gorm:"type:text" json:"notes"`

	CreatedBy     uint64         `gorm:"not null;index" json:"created_by"`
	CreatedByName string         `gorm:"type:varchar(255)" json:"created_by_name"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Attendees []User `gorm:"many2many:meeting_attendees" json:"attendees,omitempty"`
}
