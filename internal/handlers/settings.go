package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/oguzk/teamhub-api/internal/response"
	"github.com/oguzk/teamhub-api/internal/services"
)

type SettingsHandler struct {
	settingsService *services.SettingsService
}

func NewSettingsHandler(settingsService *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// GetSettings returns the department and language lists.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	setting, err := h.settingsService.Get()
	if err != nil {
		response.InternalError(c, "Failed to load settings")
		return
	}
	response.OK(c, setting)
}

// UpdateSettings replaces the lists. Admin only (enforced by routing).
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	type UpdateSettingsRequest struct {
		Departments []string `json:"departments" binding:"required"`
		Languages   []string `json:"languages" binding:"required"`
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Departments and languages are required")
		return
	}

	setting, err := h.settingsService.Update(req.Departments, req.Languages)
	if err != nil {
		response.InternalError(c, "Failed to save settings")
		return
	}
	response.OK(c, setting)
}
