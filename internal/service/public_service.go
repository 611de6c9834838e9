package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"taskboard/internal/model"
	"taskboard/internal/repository"
)

// PublicService serves the unauthenticated read-only pages.
type PublicService interface {
	ListProjects(ctx context.Context) ([]model.Project, error)
	GetProject(ctx context.Context, id uuid.UUID) (*model.Project, error)
	ListTasks(ctx context.Context) ([]model.Task, error)
}

type publicService struct {
	projectRepo repository.ProjectRepository
	taskRepo    repository.TaskRepository
}

// NewPublicService creates a new public read service.
func NewPublicService(projectRepo repository.ProjectRepository, taskRepo repository.TaskRepository) PublicService {
	return &publicService{projectRepo: projectRepo, taskRepo: taskRepo}
}

func (s *publicService) ListProjects(ctx context.Context) ([]model.Project, error) {
	projects, err := s.projectRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list public projects: %w", err)
	}
	return projects, nil
}

func (s *publicService) GetProject(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	project, err := s.projectRepo.FindWithDetails(ctx, id)
	if err != nil {
		return nil, projectError("get public project", err)
	}
	return project, nil
}

func (s *publicService) ListTasks(ctx context.Context) ([]model.Task, error) {
	tasks, err := s.taskRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list public tasks: %w", err)
	}
	return tasks, nil
}
