package handlers

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oguzk/teamhub-api/internal/constants"
	"github.com/oguzk/teamhub-api/internal/models"
)

func (env *testEnv) doUpload(t *testing.T, path, token, contentType string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="avatar"`)
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func dirEntryCount(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return 0
	}
	require.NoError(t, err)
	return len(entries)
}

func TestUploadHandler_StoresAndReplacesPicture(t *testing.T) {
	env := setupTestEnv(t)
	user, token := env.createUser(t, "Grace", "Hopper", "grace@example.com", models.RoleMember, "")

	path := fmt.Sprintf("/api/upload/profile-picture/%d", user.ID)

	w := env.doUpload(t, path, token, "image/png", []byte("first image"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Equal(t, 1, dirEntryCount(t, env.uploadDir))

	var updated models.User
	require.NoError(t, env.db.First(&updated, user.ID).Error)
	require.NotEmpty(t, updated.ProfilePicture)

	// A second upload replaces the stored file instead of accumulating.
	w = env.doUpload(t, path, token, "image/jpeg", []byte("second image"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Equal(t, 1, dirEntryCount(t, env.uploadDir))

	var replaced models.User
	require.NoError(t, env.db.First(&replaced, user.ID).Error)
	require.NotEqual(t, updated.ProfilePicture, replaced.ProfilePicture)
}

func TestUploadHandler_RejectsDisallowedType(t *testing.T) {
	env := setupTestEnv(t)
	user, token := env.createUser(t, "Grace", "Hopper", "grace@example.com", models.RoleMember, "")

	w := env.doUpload(t, fmt.Sprintf("/api/upload/profile-picture/%d", user.ID), token,
		"application/pdf", []byte("%PDF-1.4"))
	requireFailure(t, w, http.StatusBadRequest)

	// Nothing was written to disk.
	require.Equal(t, 0, dirEntryCount(t, env.uploadDir))
}

func TestUploadHandler_RejectsOversizedFile(t *testing.T) {
	env := setupTestEnv(t)
	user, token := env.createUser(t, "Grace", "Hopper", "grace@example.com", models.RoleMember, "")

	big := make([]byte, constants.MaxUploadSize+1)
	w := env.doUpload(t, fmt.Sprintf("/api/upload/profile-picture/%d", user.ID), token, "image/png", big)
	requireFailure(t, w, http.StatusBadRequest)
	require.Equal(t, 0, dirEntryCount(t, env.uploadDir))
}

func TestUploadHandler_OnlySelfOrAdmin(t *testing.T) {
	env := setupTestEnv(t)
	target, _ := env.createUser(t, "Grace", "Hopper", "grace@example.com", models.RoleMember, "")
	_, otherToken := env.createUser(t, "Oscar", "Other", "oscar@example.com", models.RoleMember, "")
	_, adminToken := env.createUser(t, "Ann", "Admin", "admin@example.com", models.RoleAdmin, "")

	path := fmt.Sprintf("/api/upload/profile-picture/%d", target.ID)

	w := env.doUpload(t, path, otherToken, "image/png", []byte("img"))
	requireFailure(t, w, http.StatusForbidden)

	w = env.doUpload(t, path, adminToken, "image/png", []byte("img"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}
