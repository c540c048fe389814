package mocks

import (
	"context"

	"github.com/Gio-ZA/task-manager-project/internal/models"
	"github.com/stretchr/testify/mock"
)

// TaskRepository is a mock implementation of interfaces.TaskRepository.
type TaskRepository struct {
	mock.Mock
}

func (m *TaskRepository) Load(ctx context.Context) ([]models.Task, error) {
	args := m.Called(ctx)
	var tasks []models.Task
	if args.Get(0) != nil {
		tasks = args.Get(0).([]models.Task)
	}
	return tasks, args.Error(1)
}

func (m *TaskRepository) Append(ctx context.Context, task models.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *TaskRepository) Update(ctx context.Context, index int, task models.Task) error {
	args := m.Called(ctx, index, task)
	return args.Error(0)
}

func (m *TaskRepository) Delete(ctx context.Context, index int) error {
	args := m.Called(ctx, index)
	return args.Error(0)
}
