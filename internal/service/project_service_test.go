package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperr "taskboard/internal/errors"
	"taskboard/internal/model"
)

func TestStartAndEndOfDay(t *testing.T) {
	start, err := StartOfDay("2024-03-15")
	require.NoError(t, err)
	assert.True(t, start.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)))

	end, err := EndOfDay("2024-03-15")
	require.NoError(t, err)
	assert.True(t, end.Equal(time.Date(2024, 3, 15, 23, 59, 59, int(999*time.Millisecond), time.UTC)))

	for _, bad := range []string{"", "15/03/2024", "2024-02-30", "tomorrow"} {
		_, err := StartOfDay(bad)
		assert.ErrorIs(t, err, apperr.ErrInvalidDate, bad)
	}
}

func TestProjectService_Create(t *testing.T) {
	managerID := uuid.New()
	mockRepo := new(MockProjectRepository)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Project) bool {
		return p.ManagerID == managerID &&
			p.Name == "Apollo" &&
			p.Description == "" &&
			p.StartDate.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) &&
			p.EndDate.Equal(time.Date(2024, 1, 31, 23, 59, 59, int(999*time.Millisecond), time.UTC))
	})).Return(nil)

	project, err := NewProjectService(mockRepo).Create(context.Background(), managerID, ProjectInput{
		Name:      "Apollo",
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
	})
	require.NoError(t, err)
	assert.Equal(t, "Apollo", project.Name)
	mockRepo.AssertExpectations(t)
}

func TestProjectService_Create_SameDay(t *testing.T) {
	mockRepo := new(MockProjectRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Project")).Return(nil)

	_, err := NewProjectService(mockRepo).Create(context.Background(), uuid.New(), ProjectInput{
		Name: "Sprint", StartDate: "2024-05-05", EndDate: "2024-05-05",
	})
	assert.NoError(t, err)
}

func TestProjectService_Create_RejectsBadDates(t *testing.T) {
	tests := []struct {
		name string
		in   ProjectInput
		want error
	}{
		{"end before start", ProjectInput{Name: "x", StartDate: "2024-02-01", EndDate: "2024-01-31"}, apperr.ErrInvalidDateRange},
		{"unparseable start", ProjectInput{Name: "x", StartDate: "soon", EndDate: "2024-01-31"}, apperr.ErrInvalidDate},
		{"missing end", ProjectInput{Name: "x", StartDate: "2024-01-01"}, apperr.ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProjectRepository)
			_, err := NewProjectService(mockRepo).Create(context.Background(), uuid.New(), tt.in)
			assert.ErrorIs(t, err, tt.want)
			mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestProjectService_Update(t *testing.T) {
	id, managerID := uuid.New(), uuid.New()
	in := ProjectInput{Name: "Renamed", Description: "d", StartDate: "2024-01-01", EndDate: "2024-01-02"}

	t.Run("scoped to manager", func(t *testing.T) {
		mockRepo := new(MockProjectRepository)
		mockRepo.On("UpdateForManager", mock.Anything, mock.MatchedBy(func(p *model.Project) bool {
			return p.ID == id && p.ManagerID == managerID && p.Name == "Renamed"
		})).Return(nil)

		_, err := NewProjectService(mockRepo).Update(context.Background(), id, managerID, in)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockProjectRepository)
		mockRepo.On("UpdateForManager", mock.Anything, mock.Anything).Return(gorm.ErrRecordNotFound)

		_, err := NewProjectService(mockRepo).Update(context.Background(), id, managerID, in)
		assert.Equal(t, apperr.ErrProjectNotFound, err)
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		boom := errors.New("deadlock")
		mockRepo := new(MockProjectRepository)
		mockRepo.On("UpdateForManager", mock.Anything, mock.Anything).Return(boom)

		_, err := NewProjectService(mockRepo).Update(context.Background(), id, managerID, in)
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, apperr.ErrProjectNotFound)
	})
}

func TestProjectService_Get(t *testing.T) {
	id, managerID := uuid.New(), uuid.New()
	mockRepo := new(MockProjectRepository)
	mockRepo.On("FindForManagerWithTasks", mock.Anything, id, managerID).Return(&model.Project{ID: id}, nil)
	mockRepo.On("FindForManager", mock.Anything, id, managerID).Return(nil, gorm.ErrRecordNotFound)

	svc := NewProjectService(mockRepo)
	project, err := svc.Get(context.Background(), id, managerID)
	require.NoError(t, err)
	assert.Equal(t, id, project.ID)

	_, err = svc.GetForEdit(context.Background(), id, managerID)
	assert.Equal(t, apperr.ErrProjectNotFound, err)
}

func TestProjectService_Delete(t *testing.T) {
	id, managerID := uuid.New(), uuid.New()

	mockRepo := new(MockProjectRepository)
	mockRepo.On("DeleteWithTasks", mock.Anything, id, managerID).Return(nil).Once()
	mockRepo.On("DeleteWithTasks", mock.Anything, id, managerID).Return(gorm.ErrRecordNotFound).Once()

	svc := NewProjectService(mockRepo)
	assert.NoError(t, svc.Delete(context.Background(), id, managerID))
	assert.Equal(t, apperr.ErrProjectNotFound, svc.Delete(context.Background(), id, managerID))
	mockRepo.AssertExpectations(t)
}

func TestPublicService_GetProject(t *testing.T) {
	mockProjects := new(MockProjectRepository)
	mockTasks := new(MockTaskRepository)
	missing := uuid.New()
	mockProjects.On("FindWithDetails", mock.Anything, missing).Return(nil, gorm.ErrRecordNotFound)
	mockProjects.On("ListAll", mock.Anything).Return(nil, errors.New("timeout"))
	mockTasks.On("ListAll", mock.Anything).Return([]model.Task{{Title: "a"}}, nil)

	svc := NewPublicService(mockProjects, mockTasks)

	_, err := svc.GetProject(context.Background(), missing)
	assert.Equal(t, apperr.ErrProjectNotFound, err)

	_, err = svc.ListProjects(context.Background())
	assert.Error(t, err)

	tasks, err := svc.ListTasks(context.Background())
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}
