package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"taskboard/docs"
	"taskboard/internal/config"
	"taskboard/internal/db"
	"taskboard/internal/handler"
	"taskboard/internal/logging"
	"taskboard/internal/repository"
	"taskboard/internal/router"
	"taskboard/internal/service"
	"taskboard/internal/session"
)

// @title Taskboard
// @version 1.0
// @description Server-rendered project and task management. Pages and form actions use a session cookie.
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}

	log := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if cfg.ResetDB {
		log.Warn("RESET_DB=true detected, dropping all tables")
		if err := db.Reset(gormDB); err != nil {
			log.Fatalf("reset database: %v", err)
		}
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	store, closeStore := newSessionStore(cfg, log)
	defer closeStore()

	sessions := session.NewManager(store, session.Options{
		Secret: cfg.SessionSecret,
		TTL:    cfg.SessionTTL,
		Secure: cfg.CookieSecure,
	}, log)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	projectRepo := repository.NewProjectRepository(gormDB)
	taskRepo := repository.NewTaskRepository(gormDB)

	// Initialize services
	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)
	projectService := service.NewProjectService(projectRepo)
	taskService := service.NewTaskService(taskRepo, projectRepo, userRepo)
	publicService := service.NewPublicService(projectRepo, taskRepo)

	e := echo.New()
	e.HideBanner = true

	err = router.Register(e, cfg, log, sessions, router.Handlers{
		Page:    handler.NewPageHandler(),
		Auth:    handler.NewAuthHandler(authService, sessions, log),
		Project: handler.NewProjectHandler(projectService, userService, log),
		Task:    handler.NewTaskHandler(taskService, userService, log),
		Public:  handler.NewPublicHandler(publicService, log),
	})
	if err != nil {
		log.Fatalf("router: %v", err)
	}

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "http://"), "https://")
	}
	log.Infof("Swagger documentation available at: http://%s/swagger/index.html", docs.SwaggerInfo.Host)

	go func() {
		addr := ":" + cfg.ServerPort
		log.WithField("addr", addr).Info("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.WithError(err).Error("server shutdown")
	}
}

func newSessionStore(cfg *config.Config, log *logrus.Logger) (session.Store, func()) {
	if cfg.SessionStore == "memory" {
		log.Warn("using in-memory sessions; logins do not survive a restart")
		return session.NewMemoryStore(), func() {}
	}

	client := session.NewRedisClient(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("redis: %v", err)
	}
	return session.NewRedisStore(client), func() {
		if err := client.Close(); err != nil {
			log.WithError(err).Warn("close redis")
		}
	}
}
