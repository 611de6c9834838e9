package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"taskboard/internal/model"
)

func TestProjectRepository_FindForManager_Scoped(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewProjectRepository(gdb)
	ctx := context.Background()

	owner := seedUser(t, gdb, "owner")
	other := seedUser(t, gdb, "other")
	project := seedProject(t, gdb, owner.ID, "Apollo", time.Now())

	found, err := repo.FindForManager(ctx, project.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Apollo", found.Name)

	_, err = repo.FindForManager(ctx, project.ID, other.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestProjectRepository_UpdateForManager(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewProjectRepository(gdb)
	ctx := context.Background()

	owner := seedUser(t, gdb, "owner")
	other := seedUser(t, gdb, "other")
	project := seedProject(t, gdb, owner.ID, "Apollo", time.Now())

	update := &model.Project{
		ID:          project.ID,
		ManagerID:   owner.ID,
		Name:        "Gemini",
		Description: "",
		StartDate:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.UpdateForManager(ctx, update))

	stored, err := repo.FindForManager(ctx, project.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gemini", stored.Name)
	assert.Equal(t, "", stored.Description)
	assert.True(t, stored.StartDate.Equal(update.StartDate))

	hijack := &model.Project{ID: project.ID, ManagerID: other.ID, Name: "Hijacked"}
	err = repo.UpdateForManager(ctx, hijack)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	stored, err = repo.FindForManager(ctx, project.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gemini", stored.Name)
}

func TestProjectRepository_UpdateForManager_UnchangedValues(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewProjectRepository(gdb)
	owner := seedUser(t, gdb, "owner")
	project := seedProject(t, gdb, owner.ID, "Apollo", time.Now())

	same := *project
	same.Tasks = nil
	assert.NoError(t, repo.UpdateForManager(context.Background(), &same))
}

func TestProjectRepository_ListByManager(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewProjectRepository(gdb)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	owner := seedUser(t, gdb, "owner")
	other := seedUser(t, gdb, "other")
	older := seedProject(t, gdb, owner.ID, "Older", base)
	newer := seedProject(t, gdb, owner.ID, "Newer", base.Add(time.Hour))
	seedProject(t, gdb, other.ID, "Foreign", base.Add(2*time.Hour))
	seedTask(t, gdb, older.ID, "t1", day(1))

	projects, err := repo.ListByManager(context.Background(), owner.ID)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, newer.ID, projects[0].ID)
	assert.Equal(t, older.ID, projects[1].ID)
	assert.Len(t, projects[1].Tasks, 1)
	assert.Empty(t, projects[0].Tasks)
}

func TestProjectRepository_FindForManagerWithTasks_NewestTaskFirst(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewProjectRepository(gdb)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	owner := seedUser(t, gdb, "owner")
	assignee := seedUser(t, gdb, "dev")
	project := seedProject(t, gdb, owner.ID, "Apollo", base)
	first := seedTask(t, gdb, project.ID, "first", day(1), func(task *model.Task) { task.CreatedAt = base })
	second := seedTask(t, gdb, project.ID, "second", day(2), func(task *model.Task) {
		task.CreatedAt = base.Add(time.Minute)
		task.AssigneeID = &assignee.ID
	})

	found, err := repo.FindForManagerWithTasks(context.Background(), project.ID, owner.ID)
	require.NoError(t, err)
	require.Len(t, found.Tasks, 2)
	assert.Equal(t, second.ID, found.Tasks[0].ID)
	assert.Equal(t, first.ID, found.Tasks[1].ID)
	require.NotNil(t, found.Tasks[0].Assignee)
	assert.Equal(t, "dev", found.Tasks[0].Assignee.Name)
	assert.Nil(t, found.Tasks[1].Assignee)
}

func TestProjectRepository_DeleteWithTasks(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewProjectRepository(gdb)
	ctx := context.Background()

	owner := seedUser(t, gdb, "owner")
	other := seedUser(t, gdb, "other")
	project := seedProject(t, gdb, owner.ID, "Apollo", time.Now())
	kept := seedProject(t, gdb, owner.ID, "Kept", time.Now())
	seedTask(t, gdb, project.ID, "a", day(1))
	seedTask(t, gdb, project.ID, "b", day(2))
	seedTask(t, gdb, kept.ID, "c", day(3))

	err := repo.DeleteWithTasks(ctx, project.ID, other.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	var count int64
	require.NoError(t, gdb.Model(&model.Task{}).Where("project_id = ?", project.ID).Count(&count).Error)
	assert.Equal(t, int64(2), count)

	require.NoError(t, repo.DeleteWithTasks(ctx, project.ID, owner.ID))

	_, err = repo.FindForManager(ctx, project.ID, owner.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	require.NoError(t, gdb.Model(&model.Task{}).Where("project_id = ?", project.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
	require.NoError(t, gdb.Model(&model.Task{}).Where("project_id = ?", kept.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestProjectRepository_DeleteWithTasks_RollsBackTaskDeletes(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewProjectRepository(gdb)

	owner := seedUser(t, gdb, "owner")
	project := seedProject(t, gdb, owner.ID, "Apollo", time.Now())
	seedTask(t, gdb, project.ID, "a", day(1))

	require.NoError(t, gdb.Callback().Delete().Before("gorm:delete").Register("test:fail_project_delete", func(tx *gorm.DB) {
		if tx.Statement.Table == "projects" {
			_ = tx.AddError(errors.New("disk full"))
		}
	}))

	err := repo.DeleteWithTasks(context.Background(), project.ID, owner.ID)
	require.Error(t, err)

	var count int64
	require.NoError(t, gdb.Model(&model.Task{}).Where("project_id = ?", project.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestProjectRepository_DeleteWithTasks_RollbackOnMySQL(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	gdb, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	projectID := uuid.New()
	managerID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT `id` FROM `projects`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(projectID.String()))
	mock.ExpectExec("DELETE FROM `tasks`").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM `projects`").
		WillReturnError(errors.New("lock wait timeout exceeded"))
	mock.ExpectRollback()

	err = NewProjectRepository(gdb).DeleteWithTasks(context.Background(), projectID, managerID)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_PublicReads(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewProjectRepository(gdb)
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	alice := seedUser(t, gdb, "alice")
	bob := seedUser(t, gdb, "bob")
	first := seedProject(t, gdb, alice.ID, "First", base)
	second := seedProject(t, gdb, bob.ID, "Second", base.Add(time.Hour))
	late := seedTask(t, gdb, first.ID, "late", day(20), func(task *model.Task) { task.AssigneeID = &bob.ID })
	early := seedTask(t, gdb, first.ID, "early", day(5))

	projects, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, second.ID, projects[0].ID)
	require.NotNil(t, projects[0].Manager)
	assert.Equal(t, "bob", projects[0].Manager.Name)
	assert.Empty(t, projects[0].Manager.Email)
	assert.Len(t, projects[1].Tasks, 2)

	detail, err := repo.FindWithDetails(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", detail.Manager.Name)
	require.Len(t, detail.Tasks, 2)
	assert.Equal(t, early.ID, detail.Tasks[0].ID)
	assert.Equal(t, late.ID, detail.Tasks[1].ID)
	require.NotNil(t, detail.Tasks[1].Assignee)
	assert.Equal(t, "bob", detail.Tasks[1].Assignee.Name)

	_, err = repo.FindWithDetails(ctx, uuid.New())
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
