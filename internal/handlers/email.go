package handlers

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/oguzk/teamhub-api/internal/database"
	"github.com/oguzk/teamhub-api/internal/models"
	"github.com/oguzk/teamhub-api/internal/response"
	"github.com/oguzk/teamhub-api/internal/services"
)

type EmailHandler struct {
	emailService services.EmailService
}

func NewEmailHandler(emailService services.EmailService) *EmailHandler {
	return &EmailHandler{
		emailService: emailService,
	}
}

// SendNotification emails a message to the selected users, or to every
// active user when no recipients are given. The batch counts as done once
// all sends have settled; individual failures are logged, not reported.
func (h *EmailHandler) SendNotification(c *gin.Context) {
	type SendNotificationRequest struct {
		RecipientIDs []uint64 `json:"recipient_ids"`
		Subject      string   `json:"subject" binding:"required"`
		Message      string   `json:"message" binding:"required"`
	}

	var req SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Subject and message are required")
		return
	}

	query := database.GetDB().Model(&models.User{})
	if len(req.RecipientIDs) > 0 {
		query = query.Where("id IN ?", req.RecipientIDs)
	} else {
		query = query.Where("is_active = ?", true)
	}

	var recipients []models.User
	if err := query.Find(&recipients).Error; err != nil {
		response.InternalError(c, "Failed to resolve recipients")
		return
	}
	if len(recipients) == 0 {
		response.BadRequest(c, "No recipients found")
		return
	}

	messages := make([]services.EmailMessage, len(recipients))
	for i, r := range recipients {
		messages[i] = services.EmailMessage{
			To:      []string{r.Email},
			Subject: req.Subject,
			Body:    req.Message,
		}
	}
	h.emailService.SendMessages(messages...)

	response.Message(c, fmt.Sprintf("Notification sent to %d recipients", len(recipients)))
}

// SendMeetingInvitation emails a meeting's details to all of its attendees.
func (h *EmailHandler) SendMeetingInvitation(c *gin.Context) {
	type SendInvitationRequest struct {
		MeetingID uint64 `json:"meeting_id" binding:"required"`
	}

	var req SendInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Meeting ID is required")
		return
	}

	var meeting models.Meeting
	if err := database.GetDB().Preload("Attendees").First(&meeting, req.MeetingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Meeting not found")
			return
		}
		response.InternalError(c, "Failed to fetch meeting")
		return
	}
	if len(meeting.Attendees) == 0 {
		response.BadRequest(c, "Meeting has no attendees")
		return
	}

	body := fmt.Sprintf("You are invited to %q on %s at %s.",
		meeting.Title, meeting.Date.Format("2006-01-02"), meeting.Time)
	if meeting.Link != "" {
		body += "\nJoin: " + meeting.Link
	}
	if meeting.Notes != "" {
		body += "\n\n" + meeting.Notes
	}

	messages := make([]services.EmailMessage, len(meeting.Attendees))
	for i, attendee := range meeting.Attendees {
		messages[i] = services.EmailMessage{
			To:      []string{attendee.Email},
			Subject: "Meeting invitation: " + meeting.Title,
			Body:    body,
		}
	}
	h.emailService.SendMessages(messages...)

	response.Message(c, fmt.Sprintf("Invitation sent to %d attendees", len(meeting.Attendees)))
}
