package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// PageHandler serves the static pages.
type PageHandler struct{}

// NewPageHandler creates a new page handler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) Index(c echo.Context) error {
	return render(c, http.StatusOK, "index", nil)
}

func (h *PageHandler) Login(c echo.Context) error {
	return render(c, http.StatusOK, "login", nil)
}

func (h *PageHandler) Register(c echo.Context) error {
	return render(c, http.StatusOK, "register", nil)
}
