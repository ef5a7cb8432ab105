package dto

import (
	"time"

	"github.com/oguzk/teamhub-api/internal/models"
)

// DashboardStats holds the admin dashboard counters.
type DashboardStats struct {
	TotalMembers       int64 `json:"total_members"`
	ActiveMembers      int64 `json:"active_members"`
	TotalTasks         int64 `json:"total_tasks"`
	CompletedTasks     int64 `json:"completed_tasks"`
	PendingTasks       int64 `json:"pending_tasks"`
	TotalAnnouncements int64 `json:"total_announcements"`
	UpcomingMeetings   int64 `json:"upcoming_meetings"`
}

// MemberDashboard holds the member dashboard lists.
type MemberDashboard struct {
	MyTasks             []TaskDTO             `json:"my_tasks"`
	TeamTasks           []TaskDTO             `json:"team_tasks"`
	RecentAnnouncements []models.Announcement `json:"recent_announcements"`
	UpcomingMeetings    []models.Meeting      `json:"upcoming_meetings"`
}

// Activity is one entry of the recent-activity feed.
type Activity struct {
	Type          string    `json:"type"`
	ID            uint64    `json:"id"`
	Title         string    `json:"title"`
	CreatedByName string    `json:"created_by_name"`
	CreatedAt     time.Time `json:"created_at"`
}
