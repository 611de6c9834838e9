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

// TaskInput carries the editable fields of a task as submitted.
// DueDate is a calendar date in DateLayout. A nil AssigneeID leaves the task unassigned.
type TaskInput struct {
	Title       string
	Description string
	DueDate     string
	Priority    model.TaskPriority
	Status      model.TaskStatus
	AssigneeID  *uuid.UUID
	ProjectID   uuid.UUID
}

// TaskService manages tasks of the projects a manager owns.
type TaskService interface {
	Create(ctx context.Context, managerID uuid.UUID, in TaskInput) (*model.Task, error)
	Update(ctx context.Context, id, managerID uuid.UUID, in TaskInput) (*model.Task, error)
	UpdateStatus(ctx context.Context, id, managerID uuid.UUID, status model.TaskStatus) (*model.Task, error)
	Delete(ctx context.Context, id, managerID uuid.UUID) (*model.Task, error)
	List(ctx context.Context, managerID uuid.UUID, filter repository.TaskFilter) ([]model.Task, error)
	Get(ctx context.Context, id, managerID uuid.UUID) (*model.Task, error)
}

type taskService struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
}

// NewTaskService creates a new task service.
func NewTaskService(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository, userRepo repository.UserRepository) TaskService {
	return &taskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

// Create adds a TODO task to an owned project.
func (s *taskService) Create(ctx context.Context, managerID uuid.UUID, in TaskInput) (*model.Task, error) {
	if _, err := s.projectRepo.FindForManager(ctx, in.ProjectID, managerID); err != nil {
		return nil, projectError("find project", err)
	}

	task, err := s.buildTask(ctx, in)
	if err != nil {
		return nil, err
	}
	task.ProjectID = in.ProjectID
	task.Status = model.TaskStatusTodo

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

// Update replaces a task's fields. A nil AssigneeID clears the assignee; a blank status keeps the current one.
func (s *taskService) Update(ctx context.Context, id, managerID uuid.UUID, in TaskInput) (*model.Task, error) {
	task, err := s.buildTask(ctx, in)
	if err != nil {
		return nil, err
	}
	task.ID = id
	task.Status = in.Status

	if err := s.taskRepo.UpdateForManager(ctx, task, managerID); err != nil {
		return nil, taskError("update task", err)
	}
	return task, nil
}

func (s *taskService) UpdateStatus(ctx context.Context, id, managerID uuid.UUID, status model.TaskStatus) (*model.Task, error) {
	task, err := s.taskRepo.UpdateStatusForManager(ctx, id, managerID, status)
	if err != nil {
		return nil, taskError("update task status", err)
	}
	return task, nil
}

// Delete removes a task and returns it so callers know which project it belonged to.
func (s *taskService) Delete(ctx context.Context, id, managerID uuid.UUID) (*model.Task, error) {
	task, err := s.taskRepo.DeleteForManager(ctx, id, managerID)
	if err != nil {
		return nil, taskError("delete task", err)
	}
	return task, nil
}

func (s *taskService) List(ctx context.Context, managerID uuid.UUID, filter repository.TaskFilter) ([]model.Task, error) {
	tasks, err := s.taskRepo.ListForManager(ctx, managerID, filter)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (s *taskService) Get(ctx context.Context, id, managerID uuid.UUID) (*model.Task, error) {
	task, err := s.taskRepo.FindForManager(ctx, id, managerID)
	if err != nil {
		return nil, taskError("get task", err)
	}
	return task, nil
}

// buildTask validates the assignee and normalises the due date to 23:59:59.999 UTC.
func (s *taskService) buildTask(ctx context.Context, in TaskInput) (*model.Task, error) {
	due, err := EndOfDay(in.DueDate)
	if err != nil {
		return nil, err
	}

	if in.AssigneeID != nil {
		if _, err := s.userRepo.FindByID(ctx, *in.AssigneeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.ErrAssigneeNotFound
			}
			return nil, fmt.Errorf("find assignee: %w", err)
		}
	}

	priority := in.Priority
	if priority == "" {
		priority = model.TaskPriorityMedium
	}

	return &model.Task{
		Title:       in.Title,
		Description: in.Description,
		DueDate:     due,
		Priority:    priority,
		AssigneeID:  in.AssigneeID,
	}, nil
}

func taskError(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.ErrTaskNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
