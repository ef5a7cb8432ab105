package handlers

import (
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/oguzk/teamhub-api/internal/constants"
	"github.com/oguzk/teamhub-api/internal/database"
	"github.com/oguzk/teamhub-api/internal/dto"
	"github.com/oguzk/teamhub-api/internal/middleware"
	"github.com/oguzk/teamhub-api/internal/models"
	"github.com/oguzk/teamhub-api/internal/repository"
	"github.com/oguzk/teamhub-api/internal/response"
	"github.com/oguzk/teamhub-api/internal/services"
)

type DashboardHandler struct {
	taskService *services.TaskService
}

func NewDashboardHandler(taskService *services.TaskService) *DashboardHandler {
	return &DashboardHandler{
		taskService: taskService,
	}
}

// GetStats returns the admin dashboard counters. The counts are independent
// queries issued concurrently; the response waits for all of them.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	var stats dto.DashboardStats
	today := startOfDay(time.Now())

	g := new(errgroup.Group)
	db := database.GetDB()
	g.Go(func() error {
		return db.Model(&models.User{}).Count(&stats.TotalMembers).Error
	})
	g.Go(func() error {
		return db.Model(&models.User{}).Where("is_active = ?", true).Count(&stats.ActiveMembers).Error
	})
	g.Go(func() error {
		return db.Model(&models.Task{}).Count(&stats.TotalTasks).Error
	})
	g.Go(func() error {
		return db.Model(&models.Task{}).Where("status = ?", models.TaskStatusCompleted).Count(&stats.CompletedTasks).Error
	})
	g.Go(func() error {
		return db.Model(&models.Task{}).Where("status = ?", models.TaskStatusPending).Count(&stats.PendingTasks).Error
	})
	g.Go(func() error {
		return db.Model(&models.Announcement{}).Count(&stats.TotalAnnouncements).Error
	})
	g.Go(func() error {
		return db.Model(&models.Meeting{}).Where("date >= ?", today).Count(&stats.UpcomingMeetings).Error
	})

	if err := g.Wait(); err != nil {
		response.InternalError(c, "Failed to compute stats")
		return
	}

	response.OK(c, stats)
}

// GetMemberDashboard returns the caller's tasks, their team's tasks, recent
// announcements and upcoming meetings as bounded lists.
func (h *DashboardHandler) GetMemberDashboard(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	limit := constants.DashboardListLimit
	db := database.GetDB()

	myTasks, _, err := h.taskService.List(repository.TaskFilter{
		AssigneeID: &user.ID,
		Page:       1,
		PageSize:   limit,
	}, user)
	if err != nil {
		response.InternalError(c, "Failed to fetch tasks")
		return
	}

	var teamTasks []models.Task
	if user.Department != "" {
		if err := db.Preload("Assignees").
			Where("team = ?", user.Department).
			Order("created_at DESC").
			Limit(limit).
			Find(&teamTasks).Error; err != nil {
			response.InternalError(c, "Failed to fetch team tasks")
			return
		}
	}

	var announcements []models.Announcement
	if err := db.Order("created_at DESC").Limit(limit).Find(&announcements).Error; err != nil {
		response.InternalError(c, "Failed to fetch announcements")
		return
	}

	var meetings []models.Meeting
	if err := db.Where("date >= ?", startOfDay(time.Now())).
		Order("date").
		Limit(limit).
		Find(&meetings).Error; err != nil {
		response.InternalError(c, "Failed to fetch meetings")
		return
	}

	response.OK(c, dto.MemberDashboard{
		MyTasks:             dto.ToTaskDTOs(myTasks),
		TeamTasks:           dto.ToTaskDTOs(teamTasks),
		RecentAnnouncements: announcements,
		UpcomingMeetings:    meetings,
	})
}

// GetActivities returns a bounded recent-activity feed merged from the
// latest tasks, announcements and reports.
func (h *DashboardHandler) GetActivities(c *gin.Context) {
	limit := constants.ActivityFeedLimit
	db := database.GetDB()

	var (
		tasks         []models.Task
		announcements []models.Announcement
		reports       []models.UserReport
	)

	g := new(errgroup.Group)
	g.Go(func() error {
		return db.Order("created_at DESC").Limit(limit).Find(&tasks).Error
	})
	g.Go(func() error {
		return db.Order("created_at DESC").Limit(limit).Find(&announcements).Error
	})
	g.Go(func() error {
		return db.Order("created_at DESC").Limit(limit).Find(&reports).Error
	})
	if err := g.Wait(); err != nil {
		response.InternalError(c, "Failed to fetch activities")
		return
	}

	activities := make([]dto.Activity, 0, len(tasks)+len(announcements)+len(reports))
	for _, t := range tasks {
		activities = append(activities, dto.Activity{
			Type:          "task",
			ID:            t.ID,
			Title:         t.Title,
			CreatedByName: t.CreatedByName,
			CreatedAt:     t.CreatedAt,
		})
	}
	for _, a := range announcements {
		activities = append(activities, dto.Activity{
			Type:          "announcement",
			ID:            a.ID,
			Title:         a.Title,
			CreatedByName: a.CreatedByName,
			CreatedAt:     a.CreatedAt,
		})
	}
	for _, r := range reports {
		activities = append(activities, dto.Activity{
			Type:          "report",
			ID:            r.ID,
			Title:         r.Title,
			CreatedByName: r.CreatedByName,
			CreatedAt:     r.CreatedAt,
		})
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].CreatedAt.After(activities[j].CreatedAt)
	})
	if len(activities) > limit {
		activities = activities[:limit]
	}

	response.OK(c, activities)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
