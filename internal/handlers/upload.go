package handlers

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oguzk/teamhub-api/internal/constants"
	"github.com/oguzk/teamhub-api/internal/middleware"
	"github.com/oguzk/teamhub-api/internal/models"
	"github.com/oguzk/teamhub-api/internal/repository"
	"github.com/oguzk/teamhub-api/internal/response"
)

// allowedImageTypes maps accepted MIME types to the stored file extension.
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type UploadHandler struct {
	userRepo  repository.UserRepository
	uploadDir string
}

func NewUploadHandler(userRepo repository.UserRepository, uploadDir string) *UploadHandler {
	return &UploadHandler{
		userRepo:  userRepo,
		uploadDir: uploadDir,
	}
}

// UploadProfilePicture stores a single image for the given user. Size and
// MIME type are validated before anything touches disk; the previous picture
// is removed once the new one is in place.
func (h *UploadHandler) UploadProfilePicture(c *gin.Context) {
	caller, ok := middleware.GetCurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	if userID != caller.ID && caller.Role != models.RoleAdmin {
		response.Forbidden(c, "")
		return
	}

	user, err := h.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		response.InternalError(c, "Failed to fetch user")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "A file is required")
		return
	}

	if file.Size > constants.MaxUploadSize {
		response.BadRequest(c, "File exceeds the maximum allowed size")
		return
	}
	ext, ok := allowedImageTypes[file.Header.Get("Content-Type")]
	if !ok {
		response.BadRequest(c, "Unsupported file type")
		return
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		response.InternalError(c, "Failed to store file")
		return
	}

	filename := uuid.NewString() + ext
	dst := filepath.Join(h.uploadDir, filename)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		response.InternalError(c, "Failed to store file")
		return
	}

	// Replace, then clean up the old file. A leftover file is not worth
	// failing the request over.
	previous := user.ProfilePicture
	user.ProfilePicture = fmt.Sprintf("uploads/%s", filename)
	if err := h.userRepo.Update(user); err != nil {
		_ = os.Remove(dst)
		response.InternalError(c, "Failed to update user")
		return
	}
	if previous != "" {
		_ = os.Remove(filepath.Join(h.uploadDir, filepath.Base(previous)))
	}

	response.OKWithMessage(c, gin.H{"profile_picture": user.ProfilePicture}, "Profile picture updated")
}
