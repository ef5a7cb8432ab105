package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oguzk/teamhub-api/internal/dto"
	"github.com/oguzk/teamhub-api/internal/models"
)

func TestDashboardHandler_StatsMatchDirectCounts(t *testing.T) {
	env := setupTestEnv(t)
	admin, adminToken := env.createUser(t, "Ann", "Admin", "admin@example.com", models.RoleAdmin, "")
	env.createUser(t, "Grace", "Hopper", "grace@example.com", models.RoleMember, "Engineering")
	inactive, _ := env.createUser(t, "Ida", "Inactive", "ida@example.com", models.RoleMember, "")
	require.NoError(t, env.db.Model(&models.User{}).Where("id = ?", inactive.ID).Update("is_active", false).Error)

	seedTasks := []models.Task{
		{Title: "a", Status: models.TaskStatusPending, Priority: models.TaskPriorityLow, CreatedBy: admin.ID},
		{Title: "b", Status: models.TaskStatusCompleted, Priority: models.TaskPriorityLow, CreatedBy: admin.ID},
		{Title: "c", Status: models.TaskStatusCompleted, Priority: models.TaskPriorityLow, CreatedBy: admin.ID},
		{Title: "d", Status: models.TaskStatusInProgress, Priority: models.TaskPriorityLow, CreatedBy: admin.ID},
	}
	require.NoError(t, env.db.Create(&seedTasks).Error)

	require.NoError(t, env.db.Create(&models.Announcement{
		Title: "hello", Description: "world", CreatedBy: admin.ID,
	}).Error)

	meetings := []models.Meeting{
		{Title: "past", Date: time.Now().AddDate(0, 0, -7), Time: "10:00", CreatedBy: admin.ID},
		{Title: "future", Date: time.Now().AddDate(0, 0, 7), Time: "10:00", CreatedBy: admin.ID},
	}
	require.NoError(t, env.db.Create(&meetings).Error)

	w := env.doJSON(t, http.MethodGet, "/api/dashboard/stats", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var stats dto.DashboardStats
	decodeData(t, w, &stats)
	require.EqualValues(t, 3, stats.TotalMembers)
	require.EqualValues(t, 2, stats.ActiveMembers)
	require.EqualValues(t, 4, stats.TotalTasks)
	require.EqualValues(t, 2, stats.CompletedTasks)
	require.EqualValues(t, 1, stats.PendingTasks)
	require.EqualValues(t, 1, stats.TotalAnnouncements)
	require.EqualValues(t, 1, stats.UpcomingMeetings)
}

func TestDashboardHandler_StatsRequireManager(t *testing.T) {
	env := setupTestEnv(t)
	_, memberToken := env.createUser(t, "Mal", "Member", "member@example.com", models.RoleMember, "")

	requireFailure(t, env.doJSON(t, http.MethodGet, "/api/dashboard/stats", memberToken, nil), http.StatusForbidden)
}

func TestDashboardHandler_MemberDashboard(t *testing.T) {
	env := setupTestEnv(t)
	admin, adminToken := env.createUser(t, "Ann", "Admin", "admin@example.com", models.RoleAdmin, "")
	member, memberToken := env.createUser(t, "Grace", "Hopper", "grace@example.com", models.RoleMember, "Engineering")

	w := env.doJSON(t, http.MethodPost, "/api/tasks", adminToken, map[string]any{
		"title":        "Mine",
		"assignee_ids": []uint64{member.ID},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = env.doJSON(t, http.MethodPost, "/api/tasks", adminToken, map[string]any{
		"title": "Team thing",
		"team":  "Engineering",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	require.NoError(t, env.db.Create(&models.Announcement{
		Title: "news", Description: "big news", CreatedBy: admin.ID,
	}).Error)
	require.NoError(t, env.db.Create(&models.Meeting{
		Title: "standup", Date: time.Now().AddDate(0, 0, 1), Time: "09:30", CreatedBy: admin.ID,
	}).Error)

	w = env.doJSON(t, http.MethodGet, "/api/dashboard/member", memberToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var board dto.MemberDashboard
	decodeData(t, w, &board)
	require.Len(t, board.MyTasks, 1)
	require.Equal(t, "Mine", board.MyTasks[0].Title)
	require.Len(t, board.TeamTasks, 1)
	require.Equal(t, "Team thing", board.TeamTasks[0].Title)
	require.Len(t, board.RecentAnnouncements, 1)
	require.Len(t, board.UpcomingMeetings, 1)
}

func TestDashboardHandler_Activities(t *testing.T) {
	env := setupTestEnv(t)
	admin, token := env.createUser(t, "Ann", "Admin", "admin@example.com", models.RoleAdmin, "")

	require.NoError(t, env.db.Create(&models.Task{
		Title: "t1", Status: models.TaskStatusPending, Priority: models.TaskPriorityLow, CreatedBy: admin.ID, CreatedByName: "Ann Admin",
	}).Error)
	require.NoError(t, env.db.Create(&models.Announcement{
		Title: "a1", Description: "d", CreatedBy: admin.ID, CreatedByName: "Ann Admin",
	}).Error)
	require.NoError(t, env.db.Create(&models.UserReport{
		Title: "r1", Content: "c", CreatedBy: admin.ID, CreatedByName: "Ann Admin",
		Category: models.ReportCategoryOther, Priority: models.TaskPriorityLow, Status: models.ReportStatusPending,
	}).Error)

	w := env.doJSON(t, http.MethodGet, "/api/dashboard/activities", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var feed []dto.Activity
	decodeData(t, w, &feed)
	require.Len(t, feed, 3)
	types := map[string]bool{}
	for _, item := range feed {
		types[item.Type] = true
	}
	require.True(t, types["task"] && types["announcement"] && types["report"])
}
