package dto

import (
	"time"

	"github.com/oguzk/teamhub-api/internal/models"
)

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID              uint64              `json:"id"`
	Title           string              `json:"title"`
	Description     string              `json:"description"`
	Status          models.TaskStatus   `json:"status"`
	Priority        models.TaskPriority `json:"priority"`
	DueDate         *time.Time          `json:"due_date"`
	Team            string              `json:"team"`
	CreatedBy       uint64              `json:"created_by"`
	CreatedByName   string              `json:"created_by_name"`
	AssignedToNames []string            `json:"assigned_to_names"`
	Assignees       []UserDTO           `json:"assignees,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// TaskListResponse is a paginated list of tasks.
type TaskListResponse struct {
	Tasks      []TaskDTO `json:"tasks"`
	Pagination Paging    `json:"pagination"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	dto := TaskDTO{
		ID:              task.ID,
		Title:           task.Title,
		Description:     task.Description,
		Status:          task.Status,
		Priority:        task.Priority,
		DueDate:         task.DueDate,
		Team:            task.Team,
		CreatedBy:       task.CreatedBy,
		CreatedByName:   task.CreatedByName,
		AssignedToNames: task.AssignedToNames,
		CreatedAt:       task.CreatedAt,
		UpdatedAt:       task.UpdatedAt,
	}
	if dto.AssignedToNames == nil {
		dto.AssignedToNames = []string{}
	}

	// Include assignees if preloaded
	if len(task.Assignees) > 0 {
		dto.Assignees = ToUserDTOs(task.Assignees)
	}

	return dto
}

// ToTaskDTOs converts a slice of tasks.
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	out := make([]TaskDTO, len(tasks))
	for i, t := range tasks {
		out[i] = ToTaskDTO(t)
	}
	return out
}
