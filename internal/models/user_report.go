package models

import (
	"time"

	"gorm.io/gorm"
)

type ReportCategory string

const (
	ReportCategoryTechnical  ReportCategory = "technical"
	ReportCategoryHR         ReportCategory = "hr"
	ReportCategoryFinance    ReportCategory = "finance"
	ReportCategorySuggestion ReportCategory = "suggestion"
	ReportCategoryComplaint  ReportCategory = "complaint"
	ReportCategoryOther      ReportCategory = "other"
)

func ValidReportCategory(c ReportCategory) bool {
	switch c {
	case ReportCategoryTechnical, ReportCategoryHR, ReportCategoryFinance,
		ReportCategorySuggestion, ReportCategoryComplaint, ReportCategoryOther:
		return true
	}
	return false
}

type ReportStatus string

const (
	ReportStatusPending   ReportStatus = "pending"
	ReportStatusReviewing ReportStatus = "reviewing"
	ReportStatusDone      ReportStatus = "done"
	ReportStatusRejected  ReportStatus = "rejected"
)

func ValidReportStatus(s ReportStatus) bool {
	switch s {
	case ReportStatusPending, ReportStatusReviewing, ReportStatusDone, ReportStatusRejected:
		return true
	}
	return false
}

type UserReport struct {
	ID       uint64         `gorm:"primarykey" json:"id"`
	Title    string         `gorm:"not null" json:"title"`
	Content  string         `gorm:"type:text;not null" json:"content"`
	Category ReportCategory `gorm:"type:varchar(20);not null;default:'other'" json:"category"`
	Priority TaskPriority   `gorm:"type:varchar(20);not null;default:'medium'" json:"priority"`
	Status   ReportStatus   `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	// AdminNotes is written only by privileged roles.
	AdminNotes string `gorm:"type:text" json:"admin_notes"`

	CreatedBy     uint64         `gorm:"not null;index" json:"created_by"`
	CreatedByName string         `gorm:"type:varchar(255)" json:"created_by_name"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
