package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	apperr "taskboard/internal/errors"
	"taskboard/internal/service"
)

// PublicHandler serves the read-only pages visible without logging in.
type PublicHandler struct {
	publicService service.PublicService
	log           logrus.FieldLogger
}

// NewPublicHandler creates a new public handler.
func NewPublicHandler(publicService service.PublicService, log logrus.FieldLogger) *PublicHandler {
	return &PublicHandler{publicService: publicService, log: log}
}

// Projects godoc
// @Summary All projects
// @Tags public
// @Produce html
// @Success 200 "Project list page"
// @Failure 500 "Error page"
// @Router /public/projects [get]
func (h *PublicHandler) Projects(c echo.Context) error {
	projects, err := h.publicService.ListProjects(c.Request().Context())
	if err != nil {
		requestLogger(h.log, c, "public.projects").WithError(err).Error("list projects failed")
		return renderError(c, http.StatusInternalServerError, "Error loading projects")
	}
	return render(c, http.StatusOK, "public/projects", echo.Map{"Projects": projects})
}

// Project godoc
// @Summary One project with its tasks
// @Tags public
// @Produce html
// @Param id path string true "Project ID"
// @Success 200 "Project page"
// @Failure 404 "Error page"
// @Failure 500 "Error page"
// @Router /public/projects/{id} [get]
func (h *PublicHandler) Project(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return renderError(c, http.StatusNotFound, "Project not found")
	}

	project, err := h.publicService.GetProject(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, apperr.ErrProjectNotFound) {
			return renderError(c, http.StatusNotFound, "Project not found")
		}
		requestLogger(h.log, c, "public.project").WithError(err).Error("get project failed")
		return renderError(c, http.StatusInternalServerError, "Error loading project")
	}
	return render(c, http.StatusOK, "public/project_detail", echo.Map{"Project": project})
}

// Tasks godoc
// @Summary All tasks
// @Tags public
// @Produce html
// @Success 200 "Task list page"
// @Failure 500 "Error page"
// @Router /public/tasks [get]
func (h *PublicHandler) Tasks(c echo.Context) error {
	tasks, err := h.publicService.ListTasks(c.Request().Context())
	if err != nil {
		requestLogger(h.log, c, "public.tasks").WithError(err).Error("list tasks failed")
		return renderError(c, http.StatusInternalServerError, "Error loading tasks")
	}
	return render(c, http.StatusOK, "public/tasks", echo.Map{"Tasks": tasks})
}
