package models

import (
	"time"

	"gorm.io/gorm"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

// ValidTaskStatus reports whether s is one of the canonical status values.
// There is no transition graph: any allowed value may follow any other.
func ValidTaskStatus(s TaskStatus) bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled:
		return true
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

func ValidTaskPriority(p TaskPriority) bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

type Task struct {
	ID          uint64       `gorm:"primarykey" json:"id"`
	Title       string       `gorm:"not null" json:"title"`
	Description string       `gorm:"type:text" json:"description"`
	Status      TaskStatus   `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Priority    TaskPriority `gorm:"type:varchar(20);not null;default:'medium'" json:"priority"`
	DueDate     *time.Time   `json:"due_date"`

	// Team is a free-text label matched against User.Department for
	// team-scoped visibility. A task may be individually assigned,
	// team-assigned, or both.
	Team string `gorm:"type:varchar(100)" json:"team"`

	CreatedBy     uint64 `gorm:"not null;index" json:"created_by"`
	CreatedByName string `gorm:"type:varchar(255)" json:"created_by_name"`

	// AssignedToNames holds the assignees' display names as resolved at
	// assignment time. Later renames do not update it.
	AssignedToNames StringList `gorm:"type:text" json:"assigned_to_names"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Creator   User   `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
	Assignees []User `gorm:"many2many:task_assignees" json:"assignees,omitempty"`
}
