package repository

import (
	"github.com/oguzk/teamhub-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// FindByIDs returns the users matching the given IDs
	FindByIDs(ids []uint64) ([]models.User, error)

	// List retrieves users with filtering and pagination
	List(filter UserFilter) ([]models.User, int64, error)

	// Update persists changes to a user
	Update(user *models.User) error

	// Delete soft deletes a user
	Delete(id uint64) error
}

// UserFilter holds filtering options for listing users
type UserFilter struct {
	IsActive   *bool
	Department string
	Page       int
	PageSize   int
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task with its assignees
	Create(task *models.Task) error

	// FindByID finds a task by ID with creator and assignees preloaded
	FindByID(id uint64) (*models.Task, error)

	// List retrieves tasks with filtering and pagination
	List(filter TaskFilter) ([]models.Task, int64, error)

	// Update persists changes to a task
	Update(task *models.Task) error

	// ReplaceAssignees replaces the task's assignee set
	ReplaceAssignees(task *models.Task, users []models.User) error

	// Delete soft deletes a task
	Delete(id uint64) error
}

// TaskFilter holds filtering options for listing tasks. VisibleTo scopes the
// result to tasks assigned to that user or labeled with their department.
type TaskFilter struct {
	Status     *models.TaskStatus
	Priority   *models.TaskPriority
	Team       string
	AssigneeID *uint64
	VisibleTo  *models.User
	Page       int
	PageSize   int
}
