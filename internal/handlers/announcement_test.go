package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oguzk/teamhub-api/internal/models"
)

func TestAnnouncementHandler_CRUD(t *testing.T) {
	env := setupTestEnv(t)
	_, memberToken := env.createUser(t, "Mal", "Member", "member@example.com", models.RoleMember, "")
	_, pmToken := env.createUser(t, "Pat", "Manager", "pm@example.com", models.RoleProjectManager, "")

	// Members cannot create.
	requireFailure(t, env.doJSON(t, http.MethodPost, "/api/announcements", memberToken, map[string]any{
		"title":       "Nope",
		"description": "not allowed",
	}), http.StatusForbidden)

	// Missing description fails validation.
	requireFailure(t, env.doJSON(t, http.MethodPost, "/api/announcements", pmToken, map[string]any{
		"title": "No body",
	}), http.StatusBadRequest)

	w := env.doJSON(t, http.MethodPost, "/api/announcements", pmToken, map[string]any{
		"title":        "All hands",
		"description":  "Friday 10am",
		"is_important": true,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created models.Announcement
	decodeData(t, w, &created)
	require.Equal(t, "Pat Manager", created.CreatedByName)
	require.True(t, created.IsImportant)

	// Every authenticated user can read.
	w = env.doJSON(t, http.MethodGet, "/api/announcements", memberToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var list []models.Announcement
	decodeData(t, w, &list)
	require.Len(t, list, 1)

	w = env.doJSON(t, http.MethodPut, fmt.Sprintf("/api/announcements/%d", created.ID), pmToken, map[string]any{
		"description": "Moved to Monday",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated models.Announcement
	decodeData(t, w, &updated)
	require.Equal(t, "Moved to Monday", updated.Description)
	require.Equal(t, "All hands", updated.Title)

	requireFailure(t, env.doJSON(t, http.MethodDelete, fmt.Sprintf("/api/announcements/%d", created.ID), memberToken, nil), http.StatusForbidden)
	w = env.doJSON(t, http.MethodDelete, fmt.Sprintf("/api/announcements/%d", created.ID), pmToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	requireFailure(t, env.doJSON(t, http.MethodGet, fmt.Sprintf("/api/announcements/%d", created.ID), memberToken, nil), http.StatusNotFound)
}

func TestMeetingHandler_CRUD(t *testing.T) {
	env := setupTestEnv(t)
	_, memberToken := env.createUser(t, "Mal", "Member", "member@example.com", models.RoleMember, "")
	attendee, _ := env.createUser(t, "Grace", "Hopper", "grace@example.com", models.RoleMember, "")
	_, pmToken := env.createUser(t, "Pat", "Manager", "pm@example.com", models.RoleProjectManager, "")

	requireFailure(t, env.doJSON(t, http.MethodPost, "/api/meetings", memberToken, map[string]any{
		"title": "Nope",
		"date":  time.Now().Format(time.RFC3339),
		"time":  "10:00",
	}), http.StatusForbidden)

	// Unknown attendee is a validation failure.
	requireFailure(t, env.doJSON(t, http.MethodPost, "/api/meetings", pmToken, map[string]any{
		"title":        "Ghost meeting",
		"date":         time.Now().Format(time.RFC3339),
		"time":         "10:00",
		"attendee_ids": []uint64{9999},
	}), http.StatusBadRequest)

	w := env.doJSON(t, http.MethodPost, "/api/meetings", pmToken, map[string]any{
		"title":        "Sprint review",
		"date":         time.Now().AddDate(0, 0, 2).Format(time.RFC3339),
		"time":         "15:30",
		"link":         "https://meet.example.com/review",
		"attendee_ids": []uint64{attendee.ID},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created models.Meeting
	decodeData(t, w, &created)
	require.Equal(t, "15:30", created.Time)
	require.Len(t, created.Attendees, 1)

	w = env.doJSON(t, http.MethodGet, fmt.Sprintf("/api/meetings/%d", created.ID), memberToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = env.doJSON(t, http.MethodPut, fmt.Sprintf("/api/meetings/%d", created.ID), pmToken, map[string]any{
		"time": "16:00",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated models.Meeting
	decodeData(t, w, &updated)
	require.Equal(t, "16:00", updated.Time)

	w = env.doJSON(t, http.MethodDelete, fmt.Sprintf("/api/meetings/%d", created.ID), pmToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}
