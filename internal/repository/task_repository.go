package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oguzk/teamhub-api/internal/database"
	"github.com/oguzk/teamhub-api/internal/models"
	"github.com/oguzk/teamhub-api/internal/utils"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task with its assignees
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a task by ID with creator and assignees preloaded
func (r *GormTaskRepository) FindByID(id uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.
		Preload("Creator").
		Preload("Assignees").
		First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// List retrieves tasks with filtering and pagination
func (r *GormTaskRepository) List(filter TaskFilter) ([]models.Task, int64, error) {
	query := r.db.Model(&models.Task{})

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", *filter.Priority)
	}
	if filter.Team != "" {
		query = query.Where("team = ?", filter.Team)
	}
	if filter.AssigneeID != nil {
		query = query.Where(
			"id IN (SELECT task_id FROM task_assignees WHERE user_id = ?)",
			*filter.AssigneeID,
		)
	}

	// Non-admin callers only see tasks assigned to them or labeled with
	// their department.
	if filter.VisibleTo != nil {
		query = query.Where(
			"id IN (SELECT task_id FROM task_assignees WHERE user_id = ?) OR (team <> '' AND team = ?)",
			filter.VisibleTo.ID,
			filter.VisibleTo.Department,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tasks []models.Task
	query = query.Preload("Creator").Preload("Assignees")
	if filter.PageSize > 0 {
		query = query.Scopes(database.Paginate(utils.PaginationParams{
			Offset: (filter.Page - 1) * filter.PageSize,
			Limit:  filter.PageSize,
		}))
	}
	if err := query.Order("created_at DESC").Find(&tasks).Error; err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

// Update persists changes to a task. Assignee changes go through
// ReplaceAssignees, so associations are left untouched here.
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Omit(clause.Associations).Save(task).Error
}

// ReplaceAssignees replaces the task's assignee set
func (r *GormTaskRepository) ReplaceAssignees(task *models.Task, users []models.User) error {
	return r.db.Model(task).Association("Assignees").Replace(users)
}

// Delete soft deletes a task
func (r *GormTaskRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Task{}, id).Error
}
