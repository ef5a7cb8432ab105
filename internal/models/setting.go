package models

import "time"

// Setting is the application configuration record (departments, languages).
// A single row; persisted so the lists survive restarts.
type Setting struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	Departments StringList `gorm:"type:text" json:"departments"`
	Languages   StringList `gorm:"type:text" json:"languages"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// DefaultSetting seeds the settings row on first access.
func DefaultSetting() Setting {
	return Setting{
		Departments: StringList{"Engineering", "Design", "Marketing", "Finance", "Human Resources"},
		Languages:   StringList{"en", "tr"},
	}
}
