package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"taskboard/internal/db"
	"taskboard/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.Open("sqlite", "file::memory:?_foreign_keys=on")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}

func seedUser(t *testing.T, gdb *gorm.DB, name string) *model.User {
	t.Helper()
	user := &model.User{Name: name, Email: name + "@example.com", Password: "hash"}
	require.NoError(t, NewUserRepository(gdb).Create(context.Background(), user))
	return user
}

func seedProject(t *testing.T, gdb *gorm.DB, managerID uuid.UUID, name string, createdAt time.Time) *model.Project {
	t.Helper()
	project := &model.Project{
		Name:        name,
		Description: name + " description",
		StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
		ManagerID:   managerID,
		CreatedAt:   createdAt,
	}
	require.NoError(t, NewProjectRepository(gdb).Create(context.Background(), project))
	return project
}

func seedTask(t *testing.T, gdb *gorm.DB, projectID uuid.UUID, title string, due time.Time, mutate ...func(*model.Task)) *model.Task {
	t.Helper()
	task := &model.Task{
		Title:     title,
		DueDate:   due,
		Priority:  model.TaskPriorityMedium,
		Status:    model.TaskStatusTodo,
		ProjectID: projectID,
	}
	for _, m := range mutate {
		m(task)
	}
	require.NoError(t, NewTaskRepository(gdb).Create(context.Background(), task))
	return task
}

func day(d int) time.Time {
	return time.Date(2024, 3, d, 23, 59, 59, 0, time.UTC)
}
