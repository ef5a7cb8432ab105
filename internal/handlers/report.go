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

type ReportHandler struct{}

func NewReportHandler() *ReportHandler {
	return &ReportHandler{}
}

// CreateReport submits a report. Any authenticated user; the author is
// always the caller.
func (h *ReportHandler) CreateReport(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateReportRequest struct {
		Title    string                `json:"title" binding:"required"`
		Content  string                `json:"content" binding:"required"`
		Category models.ReportCategory `json:"category"`
		Priority models.TaskPriority   `json:"priority"`
	}

	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Title and content are required")
		return
	}

	category := req.Category
	if category == "" {
		category = models.ReportCategoryOther
	}
	if !models.ValidReportCategory(category) {
		response.BadRequest(c, "Invalid category")
		return
	}
	priority := req.Priority
	if priority == "" {
		priority = models.TaskPriorityMedium
	}
	if !models.ValidTaskPriority(priority) {
		response.BadRequest(c, "Invalid priority")
		return
	}

	report := models.UserReport{
		Title:         req.Title,
		Content:       req.Content,
		Category:      category,
		Priority:      priority,
		Status:        models.ReportStatusPending,
		CreatedBy:     user.ID,
		CreatedByName: user.FullName(),
	}
	if err := database.GetDB().Create(&report).Error; err != nil {
		response.InternalError(c, "Failed to create report")
		return
	}

	response.Created(c, report)
}

// ListReports returns all reports for privileged roles, the caller's own
// reports otherwise.
func (h *ReportHandler) ListReports(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	query := database.GetDB().Order("created_at DESC")
	if !user.Role.IsPrivileged() {
		query = query.Where("created_by = ?", user.ID)
	}

	var reports []models.UserReport
	if err := query.Find(&reports).Error; err != nil {
		response.InternalError(c, "Failed to fetch reports")
		return
	}
	response.OK(c, reports)
}

// GetReport returns one report, enforcing author-or-privileged visibility.
func (h *ReportHandler) GetReport(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var report models.UserReport
	if err := database.GetDB().First(&report, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Report not found")
			return
		}
		response.InternalError(c, "Failed to fetch report")
		return
	}

	if !user.Role.IsPrivileged() && report.CreatedBy != user.ID {
		response.Forbidden(c, "You do not have access to this report")
		return
	}

	response.OK(c, report)
}

// UpdateReport sets status, priority and admin notes. Manager role enforced
// by routing; authors cannot edit after submission.
func (h *ReportHandler) UpdateReport(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var report models.UserReport
	if err := database.GetDB().First(&report, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Report not found")
			return
		}
		response.InternalError(c, "Failed to fetch report")
		return
	}

	type UpdateReportRequest struct {
		Status     *models.ReportStatus `json:"status"`
		Priority   *models.TaskPriority `json:"priority"`
		AdminNotes *string              `json:"admin_notes"`
	}

	var req UpdateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if req.Status != nil {
		if !models.ValidReportStatus(*req.Status) {
			response.BadRequest(c, "Invalid status")
			return
		}
		report.Status = *req.Status
	}
	if req.Priority != nil {
		if !models.ValidTaskPriority(*req.Priority) {
			response.BadRequest(c, "Invalid priority")
			return
		}
		report.Priority = *req.Priority
	}
	if req.AdminNotes != nil {
		report.AdminNotes = *req.AdminNotes
	}

	if err := database.GetDB().Save(&report).Error; err != nil {
		response.InternalError(c, "Failed to update report")
		return
	}

	response.OK(c, report)
}

// DeleteReport removes a report. Admin role enforced by routing.
func (h *ReportHandler) DeleteReport(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	res := database.GetDB().Delete(&models.UserReport{}, id)
	if res.Error != nil {
		response.InternalError(c, "Failed to delete report")
		return
	}
	if res.RowsAffected == 0 {
		response.NotFound(c, "Report not found")
		return
	}

	response.Message(c, "Report deleted successfully")
}
