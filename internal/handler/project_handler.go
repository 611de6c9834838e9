package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	apperr "taskboard/internal/errors"
	"taskboard/internal/service"
	"taskboard/internal/session"
)

// ProjectHandler handles the logged-in user's project pages.
type ProjectHandler struct {
	projectService service.ProjectService
	userService    service.UserService
	log            logrus.FieldLogger
}

// NewProjectHandler creates a new project handler.
func NewProjectHandler(projectService service.ProjectService, userService service.UserService, log logrus.FieldLogger) *ProjectHandler {
	return &ProjectHandler{projectService: projectService, userService: userService, log: log}
}

// ProjectForm represents a project create or update submission.
type ProjectForm struct {
	Name        string `form:"name" validate:"required"`
	Description string `form:"description"`
	StartDate   string `form:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate     string `form:"endDate" validate:"required,datetime=2006-01-02"`
}

func (f ProjectForm) input() service.ProjectInput {
	return service.ProjectInput{
		Name:        f.Name,
		Description: f.Description,
		StartDate:   f.StartDate,
		EndDate:     f.EndDate,
	}
}

// List godoc
// @Summary List my projects
// @Tags projects
// @Produce html
// @Success 200 "Project list page"
// @Router /projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := h.projectService.List(c.Request().Context(), currentUserID(c))
	if err != nil {
		requestLogger(h.log, c, "project.list").WithError(err).Error("list projects failed")
		return redirect(c, session.FlashError, "Error fetching projects", "/")
	}
	return render(c, http.StatusOK, "projects/list", echo.Map{"Projects": projects})
}

// Show godoc
// @Summary Show one of my projects with its tasks
// @Tags projects
// @Produce html
// @Param id path string true "Project ID"
// @Success 200 "Project page"
// @Success 302 "Redirect to /projects when the project is not found"
// @Router /projects/{id} [get]
func (h *ProjectHandler) Show(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return redirect(c, session.FlashError, "Project not found", "/projects")
	}

	ctx := c.Request().Context()
	project, err := h.projectService.Get(ctx, id, currentUserID(c))
	if err != nil {
		if errors.Is(err, apperr.ErrProjectNotFound) {
			return redirect(c, session.FlashError, "Project not found", "/projects")
		}
		requestLogger(h.log, c, "project.show").WithError(err).Error("get project failed")
		return redirect(c, session.FlashError, "Error fetching project", "/projects")
	}

	users, err := h.userService.List(ctx)
	if err != nil {
		requestLogger(h.log, c, "project.show").WithError(err).Error("list users failed")
		return redirect(c, session.FlashError, "Error fetching project", "/projects")
	}

	return render(c, http.StatusOK, "projects/show", echo.Map{
		"Project": project,
		"Users":   users,
	})
}

// Edit godoc
// @Summary Project edit form
// @Tags projects
// @Produce html
// @Param id path string true "Project ID"
// @Success 200 "Edit form"
// @Router /projects/{id}/edit [get]
func (h *ProjectHandler) Edit(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return redirect(c, session.FlashError, "Project not found", "/projects")
	}

	project, err := h.projectService.GetForEdit(c.Request().Context(), id, currentUserID(c))
	if err != nil {
		if errors.Is(err, apperr.ErrProjectNotFound) {
			return redirect(c, session.FlashError, "Project not found", "/projects")
		}
		requestLogger(h.log, c, "project.edit").WithError(err).Error("get project failed")
		return redirect(c, session.FlashError, "Error loading project for edit", "/projects")
	}
	return render(c, http.StatusOK, "projects/edit", echo.Map{"Project": project})
}

// Create godoc
// @Summary Create a project
// @Tags projects
// @Accept x-www-form-urlencoded
// @Param name formData string true "Name"
// @Param description formData string false "Description"
// @Param startDate formData string true "Start date (YYYY-MM-DD)"
// @Param endDate formData string true "End date (YYYY-MM-DD)"
// @Success 302 "Redirect to /projects"
// @Router /projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	var form ProjectForm
	if err := bindForm(c, &form); err != nil {
		return redirect(c, session.FlashError, "Error creating project", "/projects")
	}

	if _, err := h.projectService.Create(c.Request().Context(), currentUserID(c), form.input()); err != nil {
		if errors.Is(err, apperr.ErrInvalidDateRange) {
			return redirect(c, session.FlashError, "End date cannot be before start date", "/projects")
		}
		requestLogger(h.log, c, "project.create").WithError(err).Error("create project failed")
		return redirect(c, session.FlashError, "Error creating project", "/projects")
	}
	return redirect(c, session.FlashSuccess, "Project created successfully", "/projects")
}

// Update godoc
// @Summary Update a project
// @Tags projects
// @Accept x-www-form-urlencoded
// @Param id path string true "Project ID"
// @Param name formData string true "Name"
// @Param description formData string false "Description"
// @Param startDate formData string true "Start date (YYYY-MM-DD)"
// @Param endDate formData string true "End date (YYYY-MM-DD)"
// @Success 302 "Redirect to /projects"
// @Router /projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return redirect(c, session.FlashError, "Project not found", "/projects")
	}

	var form ProjectForm
	if err := bindForm(c, &form); err != nil {
		return redirect(c, session.FlashError, "Error updating project", "/projects")
	}

	if _, err := h.projectService.Update(c.Request().Context(), id, currentUserID(c), form.input()); err != nil {
		switch {
		case errors.Is(err, apperr.ErrProjectNotFound):
			return redirect(c, session.FlashError, "Project not found", "/projects")
		case errors.Is(err, apperr.ErrInvalidDateRange):
			return redirect(c, session.FlashError, "End date cannot be before start date", "/projects")
		}
		requestLogger(h.log, c, "project.update").WithError(err).Error("update project failed")
		return redirect(c, session.FlashError, "Error updating project", "/projects")
	}
	return redirect(c, session.FlashSuccess, "Project updated successfully", "/projects")
}

// Delete godoc
// @Summary Delete a project and all of its tasks
// @Tags projects
// @Param id path string true "Project ID"
// @Success 302 "Redirect to /projects"
// @Router /projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return redirect(c, session.FlashError, "Project not found", "/projects")
	}

	if err := h.projectService.Delete(c.Request().Context(), id, currentUserID(c)); err != nil {
		if errors.Is(err, apperr.ErrProjectNotFound) {
			return redirect(c, session.FlashError, "Project not found", "/projects")
		}
		requestLogger(h.log, c, "project.delete").WithError(err).Error("delete project failed")
		return redirect(c, session.FlashError, "Error deleting project", "/projects")
	}
	return redirect(c, session.FlashSuccess, "Project deleted successfully", "/projects")
}
