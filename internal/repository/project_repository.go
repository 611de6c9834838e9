package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskboard/internal/model"
)

// ProjectRepository defines project persistence operations.
// Methods with a managerID only see projects owned by that manager.
type ProjectRepository interface {
	Create(ctx context.Context, project *model.Project) error
	UpdateForManager(ctx context.Context, project *model.Project) error
	FindForManager(ctx context.Context, id, managerID uuid.UUID) (*model.Project, error)
	FindForManagerWithTasks(ctx context.Context, id, managerID uuid.UUID) (*model.Project, error)
	ListByManager(ctx context.Context, managerID uuid.UUID) ([]model.Project, error)
	DeleteWithTasks(ctx context.Context, id, managerID uuid.UUID) error
	// Unscoped reads for the public pages
	ListAll(ctx context.Context) ([]model.Project, error)
	FindWithDetails(ctx context.Context, id uuid.UUID) (*model.Project, error)
}

type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository.
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

// selectIDName narrows a preloaded relation to its display columns.
func selectIDName(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name")
}

// Create creates a new project.
func (r *projectRepository) Create(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// UpdateForManager replaces the editable fields of a project owned by project.ManagerID.
// It returns gorm.ErrRecordNotFound when no such project exists.
func (r *projectRepository) UpdateForManager(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Project
		if err := tx.Where("id = ? AND manager_id = ?", project.ID, project.ManagerID).First(&existing).Error; err != nil {
			return err
		}
		if err := tx.Model(&existing).Updates(map[string]interface{}{
			"name":        project.Name,
			"description": project.Description,
			"start_date":  project.StartDate,
			"end_date":    project.EndDate,
		}).Error; err != nil {
			return err
		}
		project.CreatedAt = existing.CreatedAt
		project.UpdatedAt = existing.UpdatedAt
		return nil
	})
}

// FindForManager finds a project by ID owned by managerID.
func (r *projectRepository) FindForManager(ctx context.Context, id, managerID uuid.UUID) (*model.Project, error) {
	var project model.Project
	if err := r.db.WithContext(ctx).
		Where("id = ? AND manager_id = ?", id, managerID).
		First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// FindForManagerWithTasks loads an owned project with its tasks (newest first) and their assignees.
func (r *projectRepository) FindForManagerWithTasks(ctx context.Context, id, managerID uuid.UUID) (*model.Project, error) {
	var project model.Project
	if err := r.db.WithContext(ctx).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at desc")
		}).
		Preload("Tasks.Assignee").
		Where("id = ? AND manager_id = ?", id, managerID).
		First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// ListByManager lists the manager's projects with their tasks, newest first.
func (r *projectRepository) ListByManager(ctx context.Context, managerID uuid.UUID) ([]model.Project, error) {
	var projects []model.Project
	if err := r.db.WithContext(ctx).
		Preload("Tasks").
		Where("manager_id = ?", managerID).
		Order("created_at desc").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// DeleteWithTasks deletes an owned project and all of its tasks in one transaction.
// Nothing is deleted when the project does not exist or belongs to someone else.
func (r *projectRepository) DeleteWithTasks(ctx context.Context, id, managerID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var project model.Project
		if err := tx.Select("id").Where("id = ? AND manager_id = ?", id, managerID).First(&project).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&model.Task{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ? AND manager_id = ?", id, managerID).Delete(&model.Project{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// ListAll lists every project with manager and task assignee names, newest first.
func (r *projectRepository) ListAll(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	if err := r.db.WithContext(ctx).
		Preload("Manager", selectIDName).
		Preload("Tasks.Assignee", selectIDName).
		Order("created_at desc").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// FindWithDetails loads any project with manager name and tasks ordered by due date.
func (r *projectRepository) FindWithDetails(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	var project model.Project
	if err := r.db.WithContext(ctx).
		Preload("Manager", selectIDName).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("due_date asc")
		}).
		Preload("Tasks.Assignee", selectIDName).
		Where("id = ?", id).
		First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}
