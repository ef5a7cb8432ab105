package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/oguzk/teamhub-api/internal/models"
	"github.com/oguzk/teamhub-api/internal/repository"
)

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrTaskForbidden   = errors.New("task not visible to caller")
	ErrUnknownAssignee = errors.New("one or more assignees do not exist")
	ErrInvalidStatus   = errors.New("invalid task status")
	ErrInvalidPriority = errors.New("invalid task priority")
)

// TaskService owns task lifecycle and role-scoped visibility.
type TaskService struct {
	taskRepo repository.TaskRepository
	userRepo repository.UserRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository, userRepo repository.UserRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		userRepo: userRepo,
	}
}

// CanView reports whether the user may see the task. Admins see everything;
// everyone else sees tasks assigned to them or labeled with their department.
func (s *TaskService) CanView(task *models.Task, user models.User) bool {
	if user.Role == models.RoleAdmin {
		return true
	}
	for _, assignee := range task.Assignees {
		if assignee.ID == user.ID {
			return true
		}
	}
	return task.Team != "" && task.Team == user.Department
}

// CreateTaskInput holds the fields for task creation.
type CreateTaskInput struct {
	Title       string
	Description string
	Priority    models.TaskPriority
	DueDate     *time.Time
	Team        string
	AssigneeIDs []uint64
}

// Create creates a task, resolving assignee IDs to users and capturing their
// display names as they are at creation time.
func (s *TaskService) Create(input CreateTaskInput, creator models.User) (*models.Task, error) {
	priority := input.Priority
	if priority == "" {
		priority = models.TaskPriorityMedium
	}
	if !models.ValidTaskPriority(priority) {
		return nil, ErrInvalidPriority
	}

	assignees, names, err := s.resolveAssignees(input.AssigneeIDs)
	if err != nil {
		return nil, err
	}

	task := &models.Task{
		Title:           input.Title,
		Description:     input.Description,
		Status:          models.TaskStatusPending,
		Priority:        priority,
		DueDate:         input.DueDate,
		Team:            input.Team,
		CreatedBy:       creator.ID,
		CreatedByName:   creator.FullName(),
		AssignedToNames: names,
		Assignees:       assignees,
	}
	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// Get fetches a task and re-applies the visibility check.
func (s *TaskService) Get(id uint64, user models.User) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	if !s.CanView(task, user) {
		return nil, ErrTaskForbidden
	}
	return task, nil
}

// List returns tasks matching the filter, scoped to the caller's visibility
// for non-admins.
func (s *TaskService) List(filter repository.TaskFilter, user models.User) ([]models.Task, int64, error) {
	if user.Role != models.RoleAdmin {
		filter.VisibleTo = &user
	}
	return s.taskRepo.List(filter)
}

// MyTasks returns tasks assigned to the caller or labeled with their
// department, regardless of role.
func (s *TaskService) MyTasks(user models.User, page, pageSize int) ([]models.Task, int64, error) {
	return s.taskRepo.List(repository.TaskFilter{
		VisibleTo: &user,
		Page:      page,
		PageSize:  pageSize,
	})
}

// UpdateTaskInput holds a partial task update. Nil fields were not submitted.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *models.TaskStatus
	Priority    *models.TaskPriority
	DueDate     *time.Time
	DueDateSet  bool
	Team        *string
	AssigneeIDs []uint64
}

// Update applies a partial update. Admins may change any field; everyone else
// may only transition status on tasks they can see, and any other submitted
// field is silently ignored.
func (s *TaskService) Update(id uint64, input UpdateTaskInput, user models.User) (*models.Task, error) {
	task, err := s.Get(id, user)
	if err != nil {
		return nil, err
	}

	if input.Status != nil {
		if !models.ValidTaskStatus(*input.Status) {
			return nil, ErrInvalidStatus
		}
		task.Status = *input.Status
	}

	if user.Role == models.RoleAdmin {
		if input.Title != nil {
			task.Title = *input.Title
		}
		if input.Description != nil {
			task.Description = *input.Description
		}
		if input.Priority != nil {
			if !models.ValidTaskPriority(*input.Priority) {
				return nil, ErrInvalidPriority
			}
			task.Priority = *input.Priority
		}
		if input.DueDateSet {
			task.DueDate = input.DueDate
		}
		if input.Team != nil {
			task.Team = *input.Team
		}
		if input.AssigneeIDs != nil {
			assignees, names, err := s.resolveAssignees(input.AssigneeIDs)
			if err != nil {
				return nil, err
			}
			if err := s.taskRepo.ReplaceAssignees(task, assignees); err != nil {
				return nil, fmt.Errorf("failed to replace assignees: %w", err)
			}
			task.Assignees = assignees
			task.AssignedToNames = names
		}
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

// Delete removes a task.
func (s *TaskService) Delete(id uint64) error {
	if _, err := s.taskRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to find task: %w", err)
	}
	return s.taskRepo.Delete(id)
}

func (s *TaskService) resolveAssignees(ids []uint64) ([]models.User, models.StringList, error) {
	if len(ids) == 0 {
		return nil, models.StringList{}, nil
	}
	users, err := s.userRepo.FindByIDs(ids)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve assignees: %w", err)
	}
	if len(users) != len(ids) {
		return nil, nil, ErrUnknownAssignee
	}
	names := make(models.StringList, len(users))
	for i, u := range users {
		names[i] = u.FullName()
	}
	return users, names, nil
}
