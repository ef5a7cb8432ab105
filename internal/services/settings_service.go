package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/oguzk/teamhub-api/internal/models"
)

// SettingsService reads and writes the persisted application settings row.
type SettingsService struct {
	db *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

// Get returns the settings, seeding the defaults on first access.
func (s *SettingsService) Get() (*models.Setting, error) {
	var setting models.Setting
	err := s.db.First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		setting = models.DefaultSetting()
		if err := s.db.Create(&setting).Error; err != nil {
			return nil, fmt.Errorf("failed to seed settings: %w", err)
		}
		return &setting, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return &setting, nil
}

// Update replaces the department and language lists.
func (s *SettingsService) Update(departments, languages []string) (*models.Setting, error) {
	setting, err := s.Get()
	if err != nil {
		return nil, err
	}
	setting.Departments = departments
	setting.Languages = languages
	if err := s.db.Save(setting).Error; err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	return setting, nil
}
