package dto

import (
	"time"

	"github.com/oguzk/teamhub-api/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID             uint64          `json:"id"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	Email          string          `json:"email"`
	Role           models.UserRole `json:"role"`
	Department     string          `json:"department"`
	Position       string          `json:"position"`
	IsActive       bool            `json:"is_active"`
	ProfilePicture string          `json:"profile_picture"`
	IBAN           string          `json:"iban,omitempty"`
	BirthDate      *time.Time      `json:"birth_date,omitempty"`
	StartDate      *time.Time      `json:"start_date,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// AuthResponse is returned by the login and register endpoints.
type AuthResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// UserListResponse is a paginated list of users.
type UserListResponse struct {
	Users      []UserDTO `json:"users"`
	Pagination Paging    `json:"pagination"`
}

// Paging is the pagination metadata attached to list responses.
type Paging struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:             user.ID,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Email:          user.Email,
		Role:           user.Role,
		Department:     user.Department,
		Position:       user.Position,
		IsActive:       user.IsActive,
		ProfilePicture: user.ProfilePicture,
		IBAN:           user.IBAN,
		BirthDate:      user.BirthDate,
		StartDate:      user.StartDate,
		CreatedAt:      user.CreatedAt,
	}
}

// ToUserDTOs converts a slice of users.
func ToUserDTOs(users []models.User) []UserDTO {
	out := make([]UserDTO, len(users))
	for i, u := range users {
		out[i] = ToUserDTO(u)
	}
	return out
}
