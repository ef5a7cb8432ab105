package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oguzk/teamhub-api/internal/database"
	"github.com/oguzk/teamhub-api/internal/middleware"
	"github.com/oguzk/teamhub-api/internal/models"
	"github.com/oguzk/teamhub-api/internal/response"
)

type MeetingHandler struct{}

func NewMeetingHandler() *MeetingHandler {
	return &MeetingHandler{}
}

// ListMeetings returns all meetings ordered by date. Visible to every
// authenticated user.
func (h *MeetingHandler) ListMeetings(c *gin.Context) {
	var meetings []models.Meeting
	if err := database.GetDB().Preload("Attendees").Order("date").Find(&meetings).Error; err != nil {
		response.InternalError(c, "Failed to fetch meetings")
		return
	}
	response.OK(c, meetings)
}

// GetMeeting returns one meeting by ID.
func (h *MeetingHandler) GetMeeting(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var meeting models.Meeting
	if err := database.GetDB().Preload("Attendees").First(&meeting, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Meeting not found")
			return
		}
		response.InternalError(c, "Failed to fetch meeting")
		return
	}
	response.OK(c, meeting)
}

// CreateMeeting schedules a meeting. Manager role enforced by routing.
// Date and time are independent fields; no combined validity check.
func (h *MeetingHandler) CreateMeeting(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateMeetingRequest struct {
		Title       string    `json:"title" binding:"required"`
		Date        time.Time `json:"date" binding:"required"`
		Time        string    `json:"time" binding:"required"`
		Link        string    `json:"link"`
		Notes       string    `json:"notes"`
		AttendeeIDs []uint64  `json:"attendee_ids"`
	}

	var req CreateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Title, date and time are required")
		return
	}

	attendees, ok := resolveMeetingAttendees(c, req.AttendeeIDs)
	if !ok {
		return
	}

	meeting := models.Meeting{
		Title:         req.Title,
		Date:          req.Date,
		Time:          req.Time,
		Link:          req.Link,
		Notes:         req.Notes,
		CreatedBy:     user.ID,
		CreatedByName: user.FullName(),
		Attendees:     attendees,
	}
	if err := database.GetDB().Create(&meeting).Error; err != nil {
		response.InternalError(c, "Failed to create meeting")
		return
	}

	response.Created(c, meeting)
}

// UpdateMeeting updates a meeting. Manager role enforced by routing.
func (h *MeetingHandler) UpdateMeeting(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var meeting models.Meeting
	if err := database.GetDB().Preload("Attendees").First(&meeting, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Meeting not found")
			return
		}
		response.InternalError(c, "Failed to fetch meeting")
		return
	}

	type UpdateMeetingRequest struct {
		Title       *string    `json:"title"`
		Date        *time.Time `json:"date"`
		Time        *string    `json:"time"`
		Link        *string    `json:"link"`
		Notes       *string    `json:"notes"`
		AttendeeIDs []uint64   `json:"attendee_ids"`
	}

	var req UpdateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if req.Title != nil {
		meeting.Title = *req.Title
	}
	if req.Date != nil {
		meeting.Date = *req.Date
	}
	if req.Time != nil {
		meeting.Time = *req.Time
	}
	if req.Link != nil {
		meeting.Link = *req.Link
	}
	if req.Notes != nil {
		meeting.Notes = *req.Notes
	}
	if req.AttendeeIDs != nil {
		attendees, ok := resolveMeetingAttendees(c, req.AttendeeIDs)
		if !ok {
			return
		}
		if err := database.GetDB().Model(&meeting).Association("Attendees").Replace(attendees); err != nil {
			response.InternalError(c, "Failed to update attendees")
			return
		}
		meeting.Attendees = attendees
	}

	if err := database.GetDB().Omit(clause.Associations).Save(&meeting).Error; err != nil {
		response.InternalError(c, "Failed to update meeting")
		return
	}

	response.OK(c, meeting)
}

// DeleteMeeting removes a meeting. Manager role enforced by routing.
func (h *MeetingHandler) DeleteMeeting(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	res := database.GetDB().Delete(&models.Meeting{}, id)
	if res.Error != nil {
		response.InternalError(c, "Failed to delete meeting")
		return
	}
	if res.RowsAffected == 0 {
		response.NotFound(c, "Meeting not found")
		return
	}

	response.Message(c, "Meeting deleted successfully")
}

func resolveMeetingAttendees(c *gin.Context, ids []uint64) ([]models.User, bool) {
	if len(ids) == 0 {
		return nil, true
	}
	var attendees []models.User
	if err := database.GetDB().Where("id IN ?", ids).Find(&attendees).Error; err != nil {
		response.InternalError(c, "Failed to resolve attendees")
		return nil, false
	}
	if len(attendees) != len(ids) {
		response.BadRequest(c, "One or more attendees do not exist")
		return nil, false
	}
	return attendees, true
}
