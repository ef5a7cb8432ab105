package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oguzk/teamhub-api/internal/models"
)

func TestReportHandler_MemberSeesOnlyOwnReports(t *testing.T) {
	env := setupTestEnv(t)
	_, aliceToken := env.createUser(t, "Alice", "Author", "alice@example.com", models.RoleMember, "")
	_, bobToken := env.createUser(t, "Bob", "Bystander", "bob@example.com", models.RoleMember, "")
	_, pmToken := env.createUser(t, "Pat", "Manager", "pm@example.com", models.RoleProjectManager, "")

	w := env.doJSON(t, http.MethodPost, "/api/user-reports", aliceToken, map[string]any{
		"title":    "Broken build",
		"content":  "CI fails on main",
		"category": "technical",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var report models.UserReport
	decodeData(t, w, &report)
	require.Equal(t, models.ReportStatusPending, report.Status)
	require.Equal(t, "Alice Author", report.CreatedByName)

	// Bob sees nothing in the list and 403 on direct fetch.
	w = env.doJSON(t, http.MethodGet, "/api/user-reports", bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var bobReports []models.UserReport
	decodeData(t, w, &bobReports)
	require.Empty(t, bobReports)

	requireFailure(t, env.doJSON(t, http.MethodGet, fmt.Sprintf("/api/user-reports/%d", report.ID), bobToken, nil), http.StatusForbidden)

	// The manager sees everything.
	w = env.doJSON(t, http.MethodGet, "/api/user-reports", pmToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var all []models.UserReport
	decodeData(t, w, &all)
	require.Len(t, all, 1)
}

func TestReportHandler_StatusAndNotesArePrivileged(t *testing.T) {
	env := setupTestEnv(t)
	_, aliceToken := env.createUser(t, "Alice", "Author", "alice@example.com", models.RoleMember, "")
	_, pmToken := env.createUser(t, "Pat", "Manager", "pm@example.com", models.RoleProjectManager, "")
	_, adminToken := env.createUser(t, "Ann", "Admin", "admin@example.com", models.RoleAdmin, "")

	w := env.doJSON(t, http.MethodPost, "/api/user-reports", aliceToken, map[string]any{
		"title":   "Parking",
		"content": "Need more spots",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var report models.UserReport
	decodeData(t, w, &report)

	// The author cannot edit after submission.
	requireFailure(t, env.doJSON(t, http.MethodPut, fmt.Sprintf("/api/user-reports/%d", report.ID), aliceToken, map[string]any{
		"status": "done",
	}), http.StatusForbidden)

	// A manager moves it through review.
	w = env.doJSON(t, http.MethodPut, fmt.Sprintf("/api/user-reports/%d", report.ID), pmToken, map[string]any{
		"status":      "reviewing",
		"admin_notes": "Talking to facilities",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated models.UserReport
	decodeData(t, w, &updated)
	require.Equal(t, models.ReportStatusReviewing, updated.Status)
	require.Equal(t, "Talking to facilities", updated.AdminNotes)

	// Delete is admin only.
	requireFailure(t, env.doJSON(t, http.MethodDelete, fmt.Sprintf("/api/user-reports/%d", report.ID), pmToken, nil), http.StatusForbidden)
	w = env.doJSON(t, http.MethodDelete, fmt.Sprintf("/api/user-reports/%d", report.ID), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestReportHandler_InvalidEnumRejected(t *testing.T) {
	env := setupTestEnv(t)
	_, token := env.createUser(t, "Alice", "Author", "alice@example.com", models.RoleMember, "")

	w := env.doJSON(t, http.MethodPost, "/api/user-reports", token, map[string]any{
		"title":    "Bad category",
		"content":  "x",
		"category": "sikayet",
	})
	requireFailure(t, w, http.StatusBadRequest)
}
