package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/oguzk/teamhub-api/internal/database"
	"github.com/oguzk/teamhub-api/internal/middleware"
	"github.com/oguzk/teamhub-api/internal/models"
	"github.com/oguzk/teamhub-api/internal/response"
)

type AnnouncementHandler struct{}

func NewAnnouncementHandler() *AnnouncementHandler {
	return &AnnouncementHandler{}
}

// ListAnnouncements returns all announcements, newest first. Visible to every
// authenticated user.
func (h *AnnouncementHandler) ListAnnouncements(c *gin.Context) {
	var announcements []models.Announcement
	if err := database.GetDB().Order("created_at DESC").Find(&announcements).Error; err != nil {
		response.InternalError(c, "Failed to fetch announcements")
		return
	}
	response.OK(c, announcements)
}

// GetAnnouncement returns one announcement by ID.
func (h *AnnouncementHandler) GetAnnouncement(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var announcement models.Announcement
	if err := database.GetDB().First(&announcement, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Announcement not found")
			return
		}
		response.InternalError(c, "Failed to fetch announcement")
		return
	}
	response.OK(c, announcement)
}

// CreateAnnouncement creates an announcement. Manager role enforced by routing.
func (h *AnnouncementHandler) CreateAnnouncement(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateAnnouncementRequest struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description" binding:"required"`
		IsImportant bool   `json:"is_important"`
	}

	var req CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Title and description are required")
		return
	}

	announcement := models.Announcement{
		Title:         req.Title,
		Description:   req.Description,
		IsImportant:   req.IsImportant,
		CreatedBy:     user.ID,
		CreatedByName: user.FullName(),
	}
	if err := database.GetDB().Create(&announcement).Error; err != nil {
		response.InternalError(c, "Failed to create announcement")
		return
	}

	response.Created(c, announcement)
}

// UpdateAnnouncement updates an announcement. Manager role enforced by routing.
func (h *AnnouncementHandler) UpdateAnnouncement(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var announcement models.Announcement
	if err := database.GetDB().First(&announcement, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Announcement not found")
			return
		}
		response.InternalError(c, "Failed to fetch announcement")
		return
	}

	type UpdateAnnouncementRequest struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		IsImportant *bool   `json:"is_important"`
	}

	var req UpdateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if req.Title != nil {
		announcement.Title = *req.Title
	}
	if req.Description != nil {
		announcement.Description = *req.Description
	}
	if req.IsImportant != nil {
		announcement.IsImportant = *req.IsImportant
	}

	if err := database.GetDB().Save(&announcement).Error; err != nil {
		response.InternalError(c, "Failed to update announcement")
		return
	}

	response.OK(c, announcement)
}

// DeleteAnnouncement removes an announcement. Manager role enforced by routing.
func (h *AnnouncementHandler) DeleteAnnouncement(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	res := database.GetDB().Delete(&models.Announcement{}, id)
	if res.Error != nil {
		response.InternalError(c, "Failed to delete announcement")
		return
	}
	if res.RowsAffected == 0 {
		response.NotFound(c, "Announcement not found")
		return
	}

	response.Message(c, "Announcement deleted successfully")
}
