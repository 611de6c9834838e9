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

// SessionDestroyer ends the current request's session.
type SessionDestroyer interface {
	Destroy(c echo.Context) error
}

// AuthHandler handles login, registration and logout.
type AuthHandler struct {
	authService service.AuthService
	sessions    SessionDestroyer
	log         logrus.FieldLogger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, sessions SessionDestroyer, log logrus.FieldLogger) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions, log: log}
}

// RegisterForm represents a registration form submission.
type RegisterForm struct {
	Name     string `form:"name" validate:"required"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=6"`
}

// LoginForm represents a login form submission.
type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// Login godoc
// @Summary Log in
// @Tags auth
// @Accept x-www-form-urlencoded
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Success 302 "Redirect to /projects, or back to /login with an error notice"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var form LoginForm
	if err := bindForm(c, &form); err != nil {
		return redirect(c, session.FlashError, "Invalid email or password", "/login")
	}

	user, err := h.authService.Login(c.Request().Context(), form.Email, form.Password)
	if err != nil {
		if errors.Is(err, apperr.ErrInvalidCredentials) {
			return redirect(c, session.FlashError, "Invalid email or password", "/login")
		}
		requestLogger(h.log, c, "auth.login").WithError(err).Error("login failed")
		return redirect(c, session.FlashError, "An error occurred during login", "/login")
	}

	session.FromContext(c).SetUser(user.ID, user.Name)
	return redirect(c, session.FlashSuccess, "Login successful", "/projects")
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept x-www-form-urlencoded
// @Param name formData string true "Display name"
// @Param email formData string true "Email"
// @Param password formData string true "Password, at least 6 characters"
// @Success 302 "Redirect to /login, or back to /register with an error notice"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var form RegisterForm
	if err := bindForm(c, &form); err != nil {
		return redirect(c, session.FlashError, "Please provide a name, a valid email and a password of at least 6 characters", "/register")
	}

	if _, err := h.authService.Register(c.Request().Context(), form.Name, form.Email, form.Password); err != nil {
		if errors.Is(err, apperr.ErrUserAlreadyExists) {
			return redirect(c, session.FlashError, "User already exists with this email", "/register")
		}
		requestLogger(h.log, c, "auth.register").WithError(err).Error("registration failed")
		return redirect(c, session.FlashError, "An error occurred during registration", "/register")
	}

	return redirect(c, session.FlashSuccess, "Registration successful. Please login.", "/login")
}

// Logout godoc
// @Summary Log out
// @Tags auth
// @Success 302 "Redirect to /login; to /projects when the session could not be destroyed"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessions.Destroy(c); err != nil {
		requestLogger(h.log, c, "auth.logout").WithError(err).Error("logout failed")
		return c.Redirect(http.StatusFound, "/projects")
	}
	return c.Redirect(http.StatusFound, "/login")
}
