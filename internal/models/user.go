package models

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleAdmin          UserRole = "admin"
	RoleProjectManager UserRole = "project_manager"
	RoleMember         UserRole = "member"
)

// IsPrivileged reports whether the role may manage shared resources.
func (r UserRole) IsPrivileged() bool {
	return r == RoleAdmin || r == RoleProjectManager
}

type User struct {
	ID             uint64         `gorm:"primarykey" json:"id"`
	FirstName      string         `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName       string         `gorm:"type:varchar(100);not null" json:"last_name"`
	Email          string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash   string         `gorm:"type:varchar(255);not null" json:"-"`
	Role           UserRole       `gorm:"type:varchar(20);not null;default:'member'" json:"role"`
	Department     string         `gorm:"type:varchar(100)" json:"department"`
	Position       string         `gorm:"type:varchar(100)" json:"position"`
	IsActive       bool           `gorm:"not null;default:true" json:"is_active"`
	ProfilePicture string         `gorm:"type:varchar(255)" json:"profile_picture"`
	IBAN           string         `gorm:"type:varchar(34)" json:"iban"`
	BirthDate      *time.Time     `json:"birth_date"`
	StartDate      *time.Time     `json:"start_date"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	CreatedTasks  []Task `gorm:"foreignKey:CreatedBy" json:"-"`
	AssignedTasks []Task `gorm:"many2many:task_assignees" json:"-"`
}

// FullName is the display name denormalized onto records the user creates.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
