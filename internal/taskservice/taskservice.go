package taskservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Gio-ZA/task-manager-project/internal/interfaces"
	"github.com/Gio-ZA/task-manager-project/internal/models"
	"github.com/Gio-ZA/task-manager-project/internal/models/dto"
	"github.com/Gio-ZA/task-manager-project/pkg/helper"

	structValidator "github.com/go-playground/validator/v10"
)

// TaskService exposes the task mutators. Every operation re-reads the
// persisted store, mutates in memory and re-persists; no task state is
// held between calls. Tasks are addressed by their true store index,
// which callers obtain through a DisplayMap.
type TaskService struct {
	Tasks     interfaces.TaskRepository
	Users     interfaces.UserService
	Logger    interfaces.Logger
	validator *structValidator.Validate
	now       func() time.Time
}

// NewTaskService creates a new TaskService instance.
func NewTaskService(tasks interfaces.TaskRepository, users interfaces.UserService,
	logger interfaces.Logger, validator *structValidator.Validate,
) *TaskService {
	return &TaskService{
		Tasks:     tasks,
		Users:     users,
		Logger:    logger,
		validator: validator,
		now:       time.Now,
	}
}

// List returns all tasks in store order.
func (s *TaskService) List(ctx context.Context) ([]models.Task, error) {
	return s.Tasks.Load(ctx)
}

// Get returns the task at the given true store index.
func (s *TaskService) Get(ctx context.Context, index int) (models.Task, error) {
	tasks, err := s.Tasks.Load(ctx)
	if err != nil {
		return models.Task{}, err
	}
	if index < 0 || index >= len(tasks) {
		return models.Task{}, interfaces.ErrIndexOutOfRange
	}
	return tasks[index], nil
}

// Add validates the request and appends a new incomplete task assigned
// today. The assigned user must hold a credential record.
func (s *TaskService) Add(ctx context.Context, req dto.AddTaskRequest) (models.Task, error) {
	funcName := helper.GetFuncName()

	if err := s.validator.Struct(req); err != nil {
		return models.Task{}, ErrBlankField
	}

	assignedUser := strings.ToLower(strings.TrimSpace(req.AssignedUser))
	exists, err := s.Users.Exists(ctx, assignedUser)
	if err != nil {
		return models.Task{}, err
	}
	if !exists {
		return models.Task{}, ErrUnknownUser
	}

	dueDate, err := models.ParseDate(req.DueDate)
	if err != nil {
		return models.Task{}, err
	}

	task := models.NewTask(assignedUser, req.Title, req.Description, s.now(), dueDate)
	if err := s.Tasks.Append(ctx, *task); err != nil {
		s.Logger.Error(ErrFailedToAddTask, "func", funcName, "user", assignedUser, "error", err)
		return models.Task{}, fmt.Errorf("%s: %w", ErrFailedToAddTask, err)
	}

	s.Logger.Info("Task added", "func", funcName, "user", assignedUser, "title", req.Title)
	return *task, nil
}

// MarkComplete marks the task at index complete. A task that is already
// complete is reported with ErrAlreadyComplete and nothing is written.
func (s *TaskService) MarkComplete(ctx context.Context, index int) error {
	task, err := s.Get(ctx, index)
	if err != nil {
		return err
	}
	if task.Completed {
		return ErrAlreadyComplete
	}

	task.Completed = true
	if err := s.Tasks.Update(ctx, index, task); err != nil {
		return fmt.Errorf("%s: %w", ErrFailedToUpdateTask, err)
	}

	s.Logger.Info("Task marked complete", "index", index, "user", task.AssignedUser)
	return nil
}

// Reassign moves the task at index to another existing user. Completed
// tasks are immutable; reassigning to the current assignee is reported
// with ErrSameAssignee and nothing is written.
func (s *TaskService) Reassign(ctx context.Context, index int, newUser string) error {
	task, err := s.Get(ctx, index)
	if err != nil {
		return err
	}
	if task.Completed {
		return ErrTaskImmutable
	}

	newUser = strings.ToLower(strings.TrimSpace(newUser))
	exists, err := s.Users.Exists(ctx, newUser)
	if err != nil {
		return err
	}
	if !exists {
		return ErrUnknownUser
	}
	if strings.EqualFold(task.AssignedUser, newUser) {
		return ErrSameAssignee
	}

	task.AssignedUser = newUser
	if err := s.Tasks.Update(ctx, index, task); err != nil {
		return fmt.Errorf("%s: %w", ErrFailedToUpdateTask, err)
	}

	s.Logger.Info("Task reassigned", "index", index, "user", newUser)
	return nil
}

// Redate changes the due date of the task at index. Completed tasks are
// immutable.
func (s *TaskService) Redate(ctx context.Context, index int, dueDate time.Time) error {
	task, err := s.Get(ctx, index)
	if err != nil {
		return err
	}
	if task.Completed {
		return ErrTaskImmutable
	}

	task.DueDate = dueDate
	if err := s.Tasks.Update(ctx, index, task); err != nil {
		return fmt.Errorf("%s: %w", ErrFailedToUpdateTask, err)
	}

	s.Logger.Info("Task due date updated", "index", index, "due", dueDate.Format(models.DateLayout))
	return nil
}

// Delete removes the task at index. Records after it renumber down.
func (s *TaskService) Delete(ctx context.Context, index int) error {
	if err := s.Tasks.Delete(ctx, index); err != nil {
		return fmt.Errorf("%s: %w", ErrFailedToDeleteTask, err)
	}

	s.Logger.Info("Task deleted", "index", index)
	return nil
}
