package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskboard/internal/model"
)

// TaskFilter holds optional exact-match filters. Zero values are ignored.
type TaskFilter struct {
	Status     model.TaskStatus
	Priority   model.TaskPriority
	AssigneeID *uuid.UUID
}

// TaskRepository defines task persistence operations.
// Methods with a managerID only see tasks of projects owned by that manager.
type TaskRepository interface {
	Create(ctx context.Context, task *model.Task) error
	UpdateForManager(ctx context.Context, task *model.Task, managerID uuid.UUID) error
	UpdateStatusForManager(ctx context.Context, id, managerID uuid.UUID, status model.TaskStatus) (*model.Task, error)
	DeleteForManager(ctx context.Context, id, managerID uuid.UUID) (*model.Task, error)
	FindForManager(ctx context.Context, id, managerID uuid.UUID) (*model.Task, error)
	ListForManager(ctx context.Context, managerID uuid.UUID, filter TaskFilter) ([]model.Task, error)
	ListAll(ctx context.Context) ([]model.Task, error)
}

type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository.
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

// managedBy restricts a task query to projects owned by managerID.
func managedBy(db *gorm.DB, managerID uuid.UUID) *gorm.DB {
	owned := db.Session(&gorm.Session{NewDB: true}).
		Model(&model.Project{}).
		Select("id").
		Where("manager_id = ?", managerID)
	return db.Where("project_id IN (?)", owned)
}

// Create creates a new task.
func (r *taskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// UpdateForManager replaces the editable fields of a task. A blank status keeps the stored one.
// On success task carries the stored project id, status and timestamps.
func (r *taskRepository) UpdateForManager(ctx context.Context, task *model.Task, managerID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Task
		if err := managedBy(tx, managerID).Where("id = ?", task.ID).First(&existing).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{
			"title":       task.Title,
			"description": task.Description,
			"due_date":    task.DueDate,
			"priority":    task.Priority,
			"assignee_id": nil,
		}
		if task.AssigneeID != nil {
			updates["assignee_id"] = *task.AssigneeID
		}
		if task.Status != "" {
			updates["status"] = task.Status
		}
		if err := tx.Model(&existing).Updates(updates).Error; err != nil {
			return err
		}

		task.ProjectID = existing.ProjectID
		task.Status = existing.Status
		task.CreatedAt = existing.CreatedAt
		task.UpdatedAt = existing.UpdatedAt
		return nil
	})
}

// UpdateStatusForManager changes only the status column and returns the updated task.
func (r *taskRepository) UpdateStatusForManager(ctx context.Context, id, managerID uuid.UUID, status model.TaskStatus) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := managedBy(tx, managerID).Where("id = ?", id).First(&task).Error; err != nil {
			return err
		}
		return tx.Model(&task).Update("status", status).Error
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteForManager deletes a task and returns the deleted record.
func (r *taskRepository) DeleteForManager(ctx context.Context, id, managerID uuid.UUID) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := managedBy(tx, managerID).Where("id = ?", id).First(&task).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Task{}, "id = ?", task.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// FindForManager loads a task with project and assignee names.
func (r *taskRepository) FindForManager(ctx context.Context, id, managerID uuid.UUID) (*model.Task, error) {
	var task model.Task
	if err := managedBy(r.db.WithContext(ctx), managerID).
		Preload("Project", selectIDName).
		Preload("Assignee", selectIDName).
		Where("id = ?", id).
		First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// ListForManager lists matching tasks of the manager's projects by ascending due date.
func (r *taskRepository) ListForManager(ctx context.Context, managerID uuid.UUID, filter TaskFilter) ([]model.Task, error) {
	query := managedBy(r.db.WithContext(ctx), managerID)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}
	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}

	var tasks []model.Task
	if err := query.
		Preload("Project", selectIDName).
		Preload("Assignee", selectIDName).
		Order("due_date asc").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListAll lists every task with project and assignee names by ascending due date.
func (r *taskRepository) ListAll(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).
		Preload("Project", selectIDName).
		Preload("Assignee", selectIDName).
		Order("due_date asc").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}
