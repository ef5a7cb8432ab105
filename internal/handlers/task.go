package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oguzk/teamhub-api/internal/dto"
	"github.com/oguzk/teamhub-api/internal/middleware"
	"github.com/oguzk/teamhub-api/internal/models"
	"github.com/oguzk/teamhub-api/internal/repository"
	"github.com/oguzk/teamhub-api/internal/response"
	"github.com/oguzk/teamhub-api/internal/services"
	"github.com/oguzk/teamhub-api/internal/utils"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks returns tasks visible to the caller, with optional
// status/priority/team/assignee filters.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	params := utils.GetPaginationParams(c)
	filter := repository.TaskFilter{
		Team:     c.Query("team"),
		Page:     params.Page,
		PageSize: params.Limit,
	}

	if s := c.Query("status"); s != "" {
		status := models.TaskStatus(s)
		if !models.ValidTaskStatus(status) {
			response.BadRequest(c, "Invalid status filter")
			return
		}
		filter.Status = &status
	}
	if p := c.Query("priority"); p != "" {
		priority := models.TaskPriority(p)
		if !models.ValidTaskPriority(priority) {
			response.BadRequest(c, "Invalid priority filter")
			return
		}
		filter.Priority = &priority
	}
	if a := c.Query("assignee"); a != "" {
		assigneeID, err := strconv.ParseUint(a, 10, 64)
		if err != nil {
			response.BadRequest(c, "Invalid assignee filter")
			return
		}
		filter.AssigneeID = &assigneeID
	}

	tasks, total, err := h.taskService.List(filter, user)
	if err != nil {
		response.InternalError(c, "Failed to fetch tasks")
		return
	}

	response.OK(c, dto.TaskListResponse{
		Tasks: dto.ToTaskDTOs(tasks),
		Pagination: dto.Paging{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// MyTasks returns the caller's own tasks and their team's tasks.
func (h *TaskHandler) MyTasks(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	params := utils.GetPaginationParams(c)
	tasks, total, err := h.taskService.MyTasks(user, params.Page, params.Limit)
	if err != nil {
		response.InternalError(c, "Failed to fetch tasks")
		return
	}

	response.OK(c, dto.TaskListResponse{
		Tasks: dto.ToTaskDTOs(tasks),
		Pagination: dto.Paging{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// GetTask returns a task by ID, re-applying the visibility check.
func (h *TaskHandler) GetTask(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	task, err := h.taskService.Get(id, user)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	response.OK(c, dto.ToTaskDTO(*task))
}

// CreateTask creates a new task. Admin only (enforced by routing).
func (h *TaskHandler) CreateTask(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateTaskRequest struct {
		Title       string              `json:"title" binding:"required"`
		Description string              `json:"description"`
		Priority    models.TaskPriority `json:"priority"`
		DueDate     *time.Time          `json:"due_date"`
		Team        string              `json:"team"`
		AssigneeIDs []uint64            `json:"assignee_ids"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.Create(services.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		Team:        req.Team,
		AssigneeIDs: req.AssigneeIDs,
	}, user)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	response.Created(c, dto.ToTaskDTO(*task))
}

// UpdateTask applies a partial update. Non-admin callers may only change
// status; anything else they submit is ignored.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	// Parse raw JSON to detect which fields were sent
	var rawReq map[string]any
	if err := c.ShouldBindJSON(&rawReq); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := services.UpdateTaskInput{}
	if v, ok := rawReq["title"].(string); ok {
		input.Title = &v
	}
	if v, ok := rawReq["description"].(string); ok {
		input.Description = &v
	}
	if v, ok := rawReq["status"].(string); ok {
		status := models.TaskStatus(v)
		input.Status = &status
	}
	if v, ok := rawReq["priority"].(string); ok {
		priority := models.TaskPriority(v)
		input.Priority = &priority
	}
	if v, ok := rawReq["team"].(string); ok {
		input.Team = &v
	}
	if raw, ok := rawReq["due_date"]; ok {
		// due_date was provided (might be null)
		input.DueDateSet = true
		if s, ok := raw.(string); ok {
			parsed, err := time.Parse(time.RFC3339, s)
			if err != nil {
				response.BadRequest(c, "Invalid due_date")
				return
			}
			input.DueDate = &parsed
		}
	}
	if raw, ok := rawReq["assignee_ids"].([]any); ok {
		ids := make([]uint64, 0, len(raw))
		for _, v := range raw {
			f, ok := v.(float64)
			if !ok || f < 0 {
				response.BadRequest(c, "Invalid assignee_ids")
				return
			}
			ids = append(ids, uint64(f))
		}
		input.AssigneeIDs = ids
	}

	task, err := h.taskService.Update(id, input, user)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	response.OK(c, dto.ToTaskDTO(*task))
}

// DeleteTask removes a task. Admin only (enforced by routing).
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.taskService.Delete(id); err != nil {
		respondTaskError(c, err)
		return
	}

	response.Message(c, "Task deleted successfully")
}

func parseIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid ID")
		return 0, false
	}
	return id, true
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		response.NotFound(c, "Task not found")
	case errors.Is(err, services.ErrTaskForbidden):
		response.Forbidden(c, "You do not have access to this task")
	case errors.Is(err, services.ErrUnknownAssignee),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidPriority):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, "")
	}
}
