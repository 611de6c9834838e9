package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	apperr "taskboard/internal/errors"
	"taskboard/internal/model"
	"taskboard/internal/repository"
	"taskboard/internal/service"
	"taskboard/internal/session"
)

// TaskHandler handles tasks of the logged-in user's projects.
type TaskHandler struct {
	taskService service.TaskService
	userService service.UserService
	log         logrus.FieldLogger
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(taskService service.TaskService, userService service.UserService, log logrus.FieldLogger) *TaskHandler {
	return &TaskHandler{taskService: taskService, userService: userService, log: log}
}

// TaskForm represents a task create or update submission.
type TaskForm struct {
	Title       string `form:"title" validate:"required"`
	Description string `form:"description"`
	DueDate     string `form:"dueDate" validate:"required,datetime=2006-01-02"`
	Priority    string `form:"priority" validate:"max=32"`
	Status      string `form:"status" validate:"max=32"`
	AssigneeID  string `form:"assigneeId" validate:"omitempty,uuid"`
	ProjectID   string `form:"projectId" validate:"omitempty,uuid"`
}

func (f TaskForm) input() service.TaskInput {
	assigneeID, _ := parseOptionalID(f.AssigneeID)
	projectID, _ := uuid.Parse(f.ProjectID)
	return service.TaskInput{
		Title:       f.Title,
		Description: f.Description,
		DueDate:     f.DueDate,
		Priority:    model.TaskPriority(f.Priority),
		Status:      model.TaskStatus(f.Status),
		AssigneeID:  assigneeID,
		ProjectID:   projectID,
	}
}

// StatusForm represents a task status change.
type StatusForm struct {
	Status string `form:"status" validate:"required,max=32"`
}

// TaskFilterQuery holds the optional task list filters.
type TaskFilterQuery struct {
	Status     string `query:"status"`
	Priority   string `query:"priority"`
	AssigneeID string `query:"assigneeId"`
}

func (q TaskFilterQuery) filter() repository.TaskFilter {
	filter := repository.TaskFilter{
		Status:   model.TaskStatus(q.Status),
		Priority: model.TaskPriority(q.Priority),
	}
	if q.AssigneeID != "" {
		// A malformed id matches no task.
		id, err := uuid.Parse(q.AssigneeID)
		if err != nil {
			id = uuid.Nil
		}
		filter.AssigneeID = &id
	}
	return filter
}

// Create godoc
// @Summary Add a task to one of my projects
// @Tags tasks
// @Accept x-www-form-urlencoded
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param dueDate formData string true "Due date (YYYY-MM-DD)"
// @Param priority formData string false "LOW, MEDIUM or HIGH"
// @Param assigneeId formData string false "Assignee user ID"
// @Param projectId formData string true "Project ID"
// @Success 302 "Redirect to the project page"
// @Router /tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	var form TaskForm
	if err := bindForm(c, &form); err != nil || form.ProjectID == "" {
		return redirect(c, session.FlashError, "Error creating task", projectPath(form.ProjectID))
	}

	if _, err := h.taskService.Create(c.Request().Context(), currentUserID(c), form.input()); err != nil {
		h.logUnexpected(c, "task.create", err)
		return redirect(c, session.FlashError, "Error creating task", projectPath(form.ProjectID))
	}
	return redirect(c, session.FlashSuccess, "Task created successfully", projectPath(form.ProjectID))
}

// Update godoc
// @Summary Replace a task's fields
// @Tags tasks
// @Accept x-www-form-urlencoded
// @Param id path string true "Task ID"
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param dueDate formData string true "Due date (YYYY-MM-DD)"
// @Param priority formData string false "LOW, MEDIUM or HIGH"
// @Param status formData string false "TODO, IN_PROGRESS or DONE; blank keeps the current status"
// @Param assigneeId formData string false "Assignee user ID; blank clears the assignee"
// @Param projectId formData string false "Project to return to"
// @Success 302 "Redirect to the project page"
// @Router /tasks/{id} [put]
func (h *TaskHandler) Update(c echo.Context) error {
	var form TaskForm
	bindErr := bindForm(c, &form)
	target := projectPath(form.ProjectID)

	id, ok := parseID(c)
	if !ok || bindErr != nil {
		return redirect(c, session.FlashError, "Error updating task", target)
	}

	if _, err := h.taskService.Update(c.Request().Context(), id, currentUserID(c), form.input()); err != nil {
		h.logUnexpected(c, "task.update", err)
		return redirect(c, session.FlashError, "Error updating task", target)
	}
	return redirect(c, session.FlashSuccess, "Task updated successfully", target)
}

// UpdateStatus godoc
// @Summary Change a task's status
// @Tags tasks
// @Accept x-www-form-urlencoded
// @Param id path string true "Task ID"
// @Param status formData string true "TODO, IN_PROGRESS or DONE"
// @Success 302 "Redirect to the task's project page"
// @Router /tasks/{id}/status [patch]
func (h *TaskHandler) UpdateStatus(c echo.Context) error {
	id, ok := parseID(c)
	var form StatusForm
	if !ok || bindForm(c, &form) != nil {
		return redirect(c, session.FlashError, "Error updating task status", "/projects")
	}

	task, err := h.taskService.UpdateStatus(c.Request().Context(), id, currentUserID(c), model.TaskStatus(form.Status))
	if err != nil {
		h.logUnexpected(c, "task.status", err)
		return redirect(c, session.FlashError, "Error updating task status", "/projects")
	}
	return redirect(c, session.FlashSuccess, "Task status updated successfully", "/projects/"+task.ProjectID.String())
}

// Delete godoc
// @Summary Delete a task
// @Tags tasks
// @Param id path string true "Task ID"
// @Success 302 "Redirect to the task's project page, or /tasks on failure"
// @Router /tasks/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return redirect(c, session.FlashError, "Error deleting task", "/tasks")
	}

	task, err := h.taskService.Delete(c.Request().Context(), id, currentUserID(c))
	if err != nil {
		h.logUnexpected(c, "task.delete", err)
		return redirect(c, session.FlashError, "Error deleting task", "/tasks")
	}
	return redirect(c, session.FlashSuccess, "Task deleted successfully", "/projects/"+task.ProjectID.String())
}

// List godoc
// @Summary List tasks of my projects
// @Tags tasks
// @Produce html
// @Param status query string false "Exact status"
// @Param priority query string false "Exact priority"
// @Param assigneeId query string false "Assignee user ID"
// @Success 200 "Task list page"
// @Router /tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	var query TaskFilterQuery
	if err := c.Bind(&query); err != nil {
		return redirect(c, session.FlashError, "Error fetching tasks", "/projects")
	}

	ctx := c.Request().Context()
	tasks, err := h.taskService.List(ctx, currentUserID(c), query.filter())
	if err != nil {
		requestLogger(h.log, c, "task.list").WithError(err).Error("list tasks failed")
		return redirect(c, session.FlashError, "Error fetching tasks", "/projects")
	}
	users, err := h.userService.List(ctx)
	if err != nil {
		requestLogger(h.log, c, "task.list").WithError(err).Error("list users failed")
		return redirect(c, session.FlashError, "Error fetching tasks", "/projects")
	}

	return render(c, http.StatusOK, "tasks/list", echo.Map{
		"Tasks":  tasks,
		"Users":  users,
		"Filter": query,
	})
}

// Show godoc
// @Summary Show a task of one of my projects
// @Tags tasks
// @Produce html
// @Param id path string true "Task ID"
// @Success 200 "Task page"
// @Router /tasks/{id} [get]
func (h *TaskHandler) Show(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return redirect(c, session.FlashError, "Task not found", "/tasks")
	}

	ctx := c.Request().Context()
	task, err := h.taskService.Get(ctx, id, currentUserID(c))
	if err != nil {
		if errors.Is(err, apperr.ErrTaskNotFound) {
			return redirect(c, session.FlashError, "Task not found", "/tasks")
		}
		requestLogger(h.log, c, "task.show").WithError(err).Error("get task failed")
		return redirect(c, session.FlashError, "Error fetching task", "/tasks")
	}
	users, err := h.userService.List(ctx)
	if err != nil {
		requestLogger(h.log, c, "task.show").WithError(err).Error("list users failed")
		return redirect(c, session.FlashError, "Error fetching task", "/tasks")
	}

	return render(c, http.StatusOK, "tasks/show", echo.Map{
		"Task":  task,
		"Users": users,
	})
}

// logUnexpected logs failures that are not ordinary domain outcomes.
func (h *TaskHandler) logUnexpected(c echo.Context, op string, err error) {
	logger := requestLogger(h.log, c, op).WithError(err)
	if apperr.IsNotFound(err) || errors.Is(err, apperr.ErrInvalidDate) {
		logger.Warn("task request rejected")
		return
	}
	logger.Error("task request failed")
}
