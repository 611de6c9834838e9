package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperr "taskboard/internal/errors"
	"taskboard/internal/model"
	"taskboard/internal/repository"
)

// ProjectInput carries the editable fields of a project as submitted.
// Dates are calendar dates in DateLayout.
type ProjectInput struct {
	Name        string
	Description string
	StartDate   string
	EndDate     string
}

// ProjectService manages a manager's own projects.
type ProjectService interface {
	List(ctx context.Context, managerID uuid.UUID) ([]model.Project, error)
	Get(ctx context.Context, id, managerID uuid.UUID) (*model.Project, error)
	GetForEdit(ctx context.Context, id, managerID uuid.UUID) (*model.Project, error)
	Create(ctx context.Context, managerID uuid.UUID, in ProjectInput) (*model.Project, error)
	Update(ctx context.Context, id, managerID uuid.UUID, in ProjectInput) (*model.Project, error)
	Delete(ctx context.Context, id, managerID uuid.UUID) error
}

type projectService struct {
	projectRepo repository.ProjectRepository
}

// NewProjectService creates a new project service.
func NewProjectService(projectRepo repository.ProjectRepository) ProjectService {
	return &projectService{projectRepo: projectRepo}
}

func (s *projectService) List(ctx context.Context, managerID uuid.UUID) ([]model.Project, error) {
	projects, err := s.projectRepo.ListByManager(ctx, managerID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// Get returns an owned project with its tasks, newest first.
func (s *projectService) Get(ctx context.Context, id, managerID uuid.UUID) (*model.Project, error) {
	project, err := s.projectRepo.FindForManagerWithTasks(ctx, id, managerID)
	if err != nil {
		return nil, projectError("get project", err)
	}
	return project, nil
}

func (s *projectService) GetForEdit(ctx context.Context, id, managerID uuid.UUID) (*model.Project, error) {
	project, err := s.projectRepo.FindForManager(ctx, id, managerID)
	if err != nil {
		return nil, projectError("get project", err)
	}
	return project, nil
}

func (s *projectService) Create(ctx context.Context, managerID uuid.UUID, in ProjectInput) (*model.Project, error) {
	project, err := buildProject(in)
	if err != nil {
		return nil, err
	}
	project.ManagerID = managerID

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return project, nil
}

func (s *projectService) Update(ctx context.Context, id, managerID uuid.UUID, in ProjectInput) (*model.Project, error) {
	project, err := buildProject(in)
	if err != nil {
		return nil, err
	}
	project.ID = id
	project.ManagerID = managerID

	if err := s.projectRepo.UpdateForManager(ctx, project); err != nil {
		return nil, projectError("update project", err)
	}
	return project, nil
}

// Delete removes an owned project together with all of its tasks.
func (s *projectService) Delete(ctx context.Context, id, managerID uuid.UUID) error {
	if err := s.projectRepo.DeleteWithTasks(ctx, id, managerID); err != nil {
		return projectError("delete project", err)
	}
	return nil
}

// buildProject normalises dates: start at 00:00:00.000 UTC, end at 23:59:59.999 UTC.
func buildProject(in ProjectInput) (*model.Project, error) {
	start, err := StartOfDay(in.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := EndOfDay(in.EndDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, apperr.ErrInvalidDateRange
	}

	return &model.Project{
		Name:        in.Name,
		Description: in.Description,
		StartDate:   start,
		EndDate:     end,
	}, nil
}

func projectError(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.ErrProjectNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
