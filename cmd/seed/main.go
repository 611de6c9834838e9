package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"taskboard/internal/config"
	"taskboard/internal/db"
	apperr "taskboard/internal/errors"
	"taskboard/internal/logging"
	"taskboard/internal/model"
	"taskboard/internal/repository"
	"taskboard/internal/service"
)

const (
	adminName     = "Admin User"
	adminEmail    = "admin@example.com"
	adminPassword = "password123"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}
	log := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile})
	log.Info("Starting seed script...")

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Info("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	user, created, err := seedAdmin(context.Background(), service.NewAuthService(userRepo), userRepo)
	if err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	log.WithFields(logrus.Fields{
		"id":      user.ID,
		"email":   user.Email,
		"created": created,
	}).Info("Seed completed successfully")
}

// seedAdmin creates the admin user unless one with the same email exists. An existing user is left untouched.
func seedAdmin(ctx context.Context, auth service.AuthService, users repository.UserRepository) (*model.User, bool, error) {
	user, err := auth.Register(ctx, adminName, adminEmail, adminPassword)
	if err == nil {
		return user, true, nil
	}
	if !errors.Is(err, apperr.ErrUserAlreadyExists) {
		return nil, false, err
	}

	existing, err := users.FindByEmail(ctx, adminEmail)
	if err != nil {
		return nil, false, fmt.Errorf("load existing admin: %w", err)
	}
	return existing, false, nil
}
