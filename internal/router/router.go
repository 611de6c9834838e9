package router

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	"taskboard/internal/config"
	"taskboard/internal/handler"
	"taskboard/internal/middleware"
	"taskboard/internal/render"
	"taskboard/internal/session"
)

// Handlers groups the HTTP handlers mounted by Register.
type Handlers struct {
	Page    *handler.PageHandler
	Auth    *handler.AuthHandler
	Project *handler.ProjectHandler
	Task    *handler.TaskHandler
	Public  *handler.PublicHandler
}

type route struct {
	method  string
	path    string
	gate    middleware.Gate
	limited bool
	handler echo.HandlerFunc
}

func routes(cfg *config.Config, h Handlers) []route {
	registerGate := middleware.GateAuth
	if cfg.OpenRegistration {
		registerGate = middleware.GateGuest
	}

	return []route{
		{method: http.MethodGet, path: "/", gate: middleware.GateNone, handler: h.Page.Index},
		{method: http.MethodGet, path: "/login", gate: middleware.GateNone, handler: h.Page.Login},
		{method: http.MethodGet, path: "/register", gate: middleware.GateNone, handler: h.Page.Register},

		{method: http.MethodPost, path: "/auth/login", gate: middleware.GateGuest, limited: true, handler: h.Auth.Login},
		{method: http.MethodPost, path: "/auth/register", gate: registerGate, limited: true, handler: h.Auth.Register},
		{method: http.MethodPost, path: "/auth/logout", gate: middleware.GateNone, limited: true, handler: h.Auth.Logout},

		{method: http.MethodGet, path: "/projects", gate: middleware.GateAuth, handler: h.Project.List},
		{method: http.MethodPost, path: "/projects", gate: middleware.GateAuth, handler: h.Project.Create},
		{method: http.MethodGet, path: "/projects/:id", gate: middleware.GateAuth, handler: h.Project.Show},
		{method: http.MethodGet, path: "/projects/:id/edit", gate: middleware.GateAuth, handler: h.Project.Edit},
		{method: http.MethodPost, path: "/projects/:id", gate: middleware.GateAuth, handler: h.Project.Update},
		{method: http.MethodPut, path: "/projects/:id", gate: middleware.GateAuth, handler: h.Project.Update},
		{method: http.MethodPost, path: "/projects/delete/:id", gate: middleware.GateAuth, handler: h.Project.Delete},
		{method: http.MethodDelete, path: "/projects/:id", gate: middleware.GateAuth, handler: h.Project.Delete},

		{method: http.MethodGet, path: "/tasks", gate: middleware.GateAuth, handler: h.Task.List},
		{method: http.MethodPost, path: "/tasks", gate: middleware.GateAuth, handler: h.Task.Create},
		{method: http.MethodGet, path: "/tasks/:id", gate: middleware.GateAuth, handler: h.Task.Show},
		{method: http.MethodPost, path: "/tasks/:id", gate: middleware.GateAuth, handler: h.Task.Update},
		{method: http.MethodPut, path: "/tasks/:id", gate: middleware.GateAuth, handler: h.Task.Update},
		{method: http.MethodPatch, path: "/tasks/:id/status", gate: middleware.GateAuth, handler: h.Task.UpdateStatus},
		{method: http.MethodDelete, path: "/tasks/:id", gate: middleware.GateAuth, handler: h.Task.Delete},

		{method: http.MethodGet, path: "/public/projects", gate: middleware.GateNone, handler: h.Public.Projects},
		{method: http.MethodGet, path: "/public/projects/:id", gate: middleware.GateNone, handler: h.Public.Project},
		{method: http.MethodGet, path: "/public/tasks", gate: middleware.GateNone, handler: h.Public.Tasks},

		{method: http.MethodGet, path: "/healthz", gate: middleware.GateNone, handler: func(c echo.Context) error {
			return c.String(http.StatusOK, "ok")
		}},
		{method: http.MethodGet, path: "/swagger/*", gate: middleware.GateNone, handler: echoSwagger.WrapHandler},
	}
}

// Register wires middleware, the renderer and every route.
func Register(e *echo.Echo, cfg *config.Config, log logrus.FieldLogger, sessions *session.Manager, h Handlers) error {
	renderer, err := render.New()
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}
	e.Renderer = renderer
	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = handler.ErrorHandler(log)

	e.Pre(middleware.MethodOverride())
	e.Use(echomw.RequestID())
	e.Use(requestLogger(log))
	e.Use(echomw.Recover())
	e.Use(sessions.TokenMiddleware())
	e.Use(sessions.Middleware())

	limiter := authRateLimiter(cfg)
	for _, rt := range routes(cfg, h) {
		var mws []echo.MiddlewareFunc
		if rt.limited && limiter != nil {
			mws = append(mws, limiter)
		}
		mws = append(mws, middleware.Guard(rt.gate))
		e.Add(rt.method, rt.path, rt.handler, mws...)
	}
	return nil
}

// authRateLimiter limits credential endpoints per client IP. A zero rate disables it.
func authRateLimiter(cfg *config.Config) echo.MiddlewareFunc {
	if cfg.AuthRateLimit <= 0 {
		return nil
	}
	store := echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.AuthRateLimit),
		Burst:     cfg.AuthRateBurst,
		ExpiresIn: 3 * time.Minute,
	})
	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: store,
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, "Too many attempts. Please wait a moment and try again.")
		},
	})
}

func requestLogger(log logrus.FieldLogger) echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			entry := log.WithFields(logrus.Fields{
				"request_id": v.RequestID,
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency.String(),
			})
			if v.Error != nil {
				entry.WithError(v.Error).Warn("request")
				return nil
			}
			entry.Info("request")
			return nil
		},
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
