package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oguzk/teamhub-api/internal/constants"
	"github.com/oguzk/teamhub-api/internal/dto"
	"github.com/oguzk/teamhub-api/internal/middleware"
	"github.com/oguzk/teamhub-api/internal/response"
	"github.com/oguzk/teamhub-api/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register creates a new member account.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		FirstName  string `json:"first_name" binding:"required"`
		LastName   string `json:"last_name" binding:"required"`
		Email      string `json:"email" binding:"required,email"`
		Password   string `json:"password" binding:"required"`
		Department string `json:"department"`
		Position   string `json:"position"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, token, err := h.authService.Register(services.RegisterInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Password:   req.Password,
		Department: req.Department,
		Position:   req.Position,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Envelope{
		Success: true,
		Data:    dto.AuthResponse{Token: token, User: dto.ToUserDTO(*user)},
	})
}

// MemberLogin authenticates any active account.
func (h *AuthHandler) MemberLogin(c *gin.Context) {
	req, ok := bindLogin(c)
	if !ok {
		return
	}

	user, token, err := h.authService.Login(services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	response.OK(c, dto.AuthResponse{Token: token, User: dto.ToUserDTO(*user)})
}

// AdminLogin authenticates admins and project managers.
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	req, ok := bindLogin(c)
	if !ok {
		return
	}

	user, token, err := h.authService.AdminLogin(services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	response.OK(c, dto.AuthResponse{Token: token, User: dto.ToUserDTO(*user)})
}

// GetCurrentUser returns the authenticated user.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}
	response.OK(c, dto.ToUserDTO(user))
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func bindLogin(c *gin.Context) (loginRequest, bool) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return req, false
	}
	return req, true
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPasswordTooShort):
		response.BadRequest(c, fmt.Sprintf("Password must be at least %d characters", constants.MinPasswordLength))
	case errors.Is(err, services.ErrEmailTaken):
		response.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials), errors.Is(err, services.ErrAccountDisabled):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrInsufficientRole):
		response.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		response.NotFound(c, err.Error())
	default:
		response.InternalError(c, "")
	}
}
