package service

import (
	"context"
	"fmt"

	"taskboard/internal/model"
	"taskboard/internal/repository"
)

// UserService exposes user lookups for assignee pickers and filters.
type UserService interface {
	List(ctx context.Context) ([]model.User, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService builds a UserService with repository.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
