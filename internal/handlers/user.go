package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/oguzk/teamhub-api/internal/auth"
	"github.com/oguzk/teamhub-api/internal/constants"
	"github.com/oguzk/teamhub-api/internal/dto"
	"github.com/oguzk/teamhub-api/internal/middleware"
	"github.com/oguzk/teamhub-api/internal/models"
	"github.com/oguzk/teamhub-api/internal/repository"
	"github.com/oguzk/teamhub-api/internal/response"
	"github.com/oguzk/teamhub-api/internal/utils"
)

type UserHandler struct {
	userRepo repository.UserRepository
}

func NewUserHandler(userRepo repository.UserRepository) *UserHandler {
	return &UserHandler{
		userRepo: userRepo,
	}
}

// ListUsers returns users with optional isActive/department filters.
// Manager role enforced by routing.
func (h *UserHandler) ListUsers(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	filter := repository.UserFilter{
		Department: c.Query("department"),
		Page:       params.Page,
		PageSize:   params.Limit,
	}
	if v := c.Query("is_active"); v != "" {
		active := v == "true"
		filter.IsActive = &active
	}

	users, total, err := h.userRepo.List(filter)
	if err != nil {
		response.InternalError(c, "Failed to fetch users")
		return
	}

	response.OK(c, dto.UserListResponse{
		Users: dto.ToUserDTOs(users),
		Pagination: dto.Paging{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// GetUser returns one user. Callers may fetch themselves; managers may fetch
// anyone.
func (h *UserHandler) GetUser(c *gin.Context) {
	caller, ok := middleware.GetCurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if id != caller.ID && !caller.Role.IsPrivileged() {
		response.Forbidden(c, "")
		return
	}

	user, err := h.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		response.InternalError(c, "Failed to fetch user")
		return
	}

	response.OK(c, dto.ToUserDTO(*user))
}

// CreateUser creates an account with the full field set, including role.
// Admin only (enforced by routing).
func (h *UserHandler) CreateUser(c *gin.Context) {
	type CreateUserRequest struct {
		FirstName  string          `json:"first_name" binding:"required"`
		LastName   string          `json:"last_name" binding:"required"`
		Email      string          `json:"email" binding:"required,email"`
		Password   string          `json:"password" binding:"required"`
		Role       models.UserRole `json:"role"`
		Department string          `json:"department"`
		Position   string          `json:"position"`
		IBAN       string          `json:"iban"`
		BirthDate  *time.Time      `json:"birth_date"`
		StartDate  *time.Time      `json:"start_date"`
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if len(req.Password) < constants.MinPasswordLength {
		response.BadRequest(c, "Password too short")
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleMember
	}
	switch role {
	case models.RoleAdmin, models.RoleProjectManager, models.RoleMember:
	default:
		response.BadRequest(c, "Invalid role")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := h.userRepo.FindByEmail(email); err == nil {
		response.BadRequest(c, "Email already registered")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		response.InternalError(c, "Failed to check email")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		response.InternalError(c, "Failed to hash password")
		return
	}

	user := models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Department:   req.Department,
		Position:     req.Position,
		IsActive:     true,
		IBAN:         req.IBAN,
		BirthDate:    req.BirthDate,
		StartDate:    req.StartDate,
	}
	if err := h.userRepo.Create(&user); err != nil {
		response.InternalError(c, "Failed to create user")
		return
	}

	response.Created(c, dto.ToUserDTO(user))
}

// UpdateUser edits a user. Self-service edits cover profile fields and the
// password; role and isActive changes are admin only.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	caller, ok := middleware.GetCurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	isAdmin := caller.Role == models.RoleAdmin
	if id != caller.ID && !isAdmin {
		response.Forbidden(c, "")
		return
	}

	user, err := h.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		response.InternalError(c, "Failed to fetch user")
		return
	}

	type UpdateUserRequest struct {
		FirstName  *string          `json:"first_name"`
		LastName   *string          `json:"last_name"`
		Email      *string          `json:"email"`
		Password   *string          `json:"password"`
		Role       *models.UserRole `json:"role"`
		Department *string          `json:"department"`
		Position   *string          `json:"position"`
		IsActive   *bool            `json:"is_active"`
		IBAN       *string          `json:"iban"`
		BirthDate  *time.Time       `json:"birth_date"`
		StartDate  *time.Time       `json:"start_date"`
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != user.Email {
			if _, err := h.userRepo.FindByEmail(email); err == nil {
				response.BadRequest(c, "Email already registered")
				return
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				response.InternalError(c, "Failed to check email")
				return
			}
			user.Email = email
		}
	}
	if req.Password != nil {
		if len(*req.Password) < constants.MinPasswordLength {
			response.BadRequest(c, "Password too short")
			return
		}
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			response.InternalError(c, "Failed to hash password")
			return
		}
		user.PasswordHash = hash
	}
	if req.Department != nil {
		user.Department = *req.Department
	}
	if req.Position != nil {
		user.Position = *req.Position
	}
	if req.IBAN != nil {
		user.IBAN = *req.IBAN
	}
	if req.BirthDate != nil {
		user.BirthDate = req.BirthDate
	}
	if req.StartDate != nil {
		user.StartDate = req.StartDate
	}

	// Role and activation changes are admin territory.
	if isAdmin {
		if req.Role != nil {
			switch *req.Role {
			case models.RoleAdmin, models.RoleProjectManager, models.RoleMember:
				user.Role = *req.Role
			default:
				response.BadRequest(c, "Invalid role")
				return
			}
		}
		if req.IsActive != nil {
			user.IsActive = *req.IsActive
		}
	}

	if err := h.userRepo.Update(user); err != nil {
		response.InternalError(c, "Failed to update user")
		return
	}

	response.OK(c, dto.ToUserDTO(*user))
}

// DeleteUser soft deletes a user. Admin only (enforced by routing).
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if _, err := h.userRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		response.InternalError(c, "Failed to fetch user")
		return
	}

	if err := h.userRepo.Delete(id); err != nil {
		response.InternalError(c, "Failed to delete user")
		return
	}

	response.Message(c, "User deleted successfully")
}
