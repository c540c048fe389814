package taskservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Gio-ZA/task-manager-project/internal/interfaces/mocks"
	"github.com/Gio-ZA/task-manager-project/internal/models"
	"github.com/Gio-ZA/task-manager-project/internal/models/dto"

	structValidator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/mock"
)

func newTestService(tasks *mocks.TaskRepository, users *mocks.UserService) *TaskService {
	service := NewTaskService(tasks, users, &mocks.Logger{}, structValidator.New())
	service.now = func() time.Time {
		return time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	}
	return service
}

func storedTasks() []models.Task {
	assigned := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	due := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	return []models.Task{
		{AssignedUser: "alice", Title: "Write report", Description: "Q3 summary",
			DateAssigned: assigned, DueDate: due, Completed: false},
		{AssignedUser: "bob", Title: "Fix bug", Description: "login crash",
			DateAssigned: assigned, DueDate: due, Completed: true},
	}
}

func TestAdd(t *testing.T) {
	type args struct {
		req        dto.AddTaskRequest
		userExists bool
	}
	tests := []struct {
		name    string
		args    args
		wantErr error
	}{
		{
			name: "valid request",
			args: args{
				req: dto.AddTaskRequest{
					AssignedUser: "alice",
					Title:        "Write report",
					Description:  "Q3 summary",
					DueDate:      "06 Oct 2025",
				},
				userExists: true,
			},
		},
		{
			name: "blank title",
			args: args{
				req: dto.AddTaskRequest{
					AssignedUser: "alice",
					Title:        "",
					Description:  "Q3 summary",
					DueDate:      "06 Oct 2025",
				},
				userExists: true,
			},
			wantErr: ErrBlankField,
		},
		{
			name: "unknown assignee",
			args: args{
				req: dto.AddTaskRequest{
					AssignedUser: "mallory",
					Title:        "Write report",
					Description:  "Q3 summary",
					DueDate:      "06 Oct 2025",
				},
				userExists: false,
			},
			wantErr: ErrUnknownUser,
		},
		{
			name: "unparseable due date",
			args: args{
				req: dto.AddTaskRequest{
					AssignedUser: "alice",
					Title:        "Write report",
					Description:  "Q3 summary",
					DueDate:      "2025-10-06",
				},
				userExists: true,
			},
			wantErr: models.ErrInvalidDate,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks := &mocks.TaskRepository{}
			tasks.On("Append", mock.Anything, mock.Anything).Return(nil)
			users := &mocks.UserService{}
			users.On("Exists", mock.Anything, mock.Anything).Return(tt.args.userExists, nil)

			got, err := newTestService(tasks, users).Add(context.Background(), tt.args.req)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Add() error = %v, want %v", err, tt.wantErr)
				}
				tasks.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
				return
			}
			if err != nil {
				t.Fatalf("Add() error = %v", err)
			}
			if got.Completed {
				t.Errorf("Add() created a completed task")
			}
			if got.DateAssigned.Format(models.DateLayout) != "01 Jun 2025" {
				t.Errorf("Add() DateAssigned = %s, want today", got.DateAssigned.Format(models.DateLayout))
			}
			tasks.AssertCalled(t, "Append", mock.Anything, got)
		})
	}
}

func TestMarkComplete(t *testing.T) {
	tasks := &mocks.TaskRepository{}
	tasks.On("Load", mock.Anything).Return(storedTasks(), nil)
	tasks.On("Update", mock.Anything, 0, mock.Anything).Return(nil)

	if err := newTestService(tasks, &mocks.UserService{}).MarkComplete(context.Background(), 0); err != nil {
		t.Fatalf("MarkComplete() error = %v", err)
	}

	want := storedTasks()[0]
	want.Completed = true
	tasks.AssertCalled(t, "Update", mock.Anything, 0, want)
}

func TestMarkCompleteAlreadyComplete(t *testing.T) {
	tasks := &mocks.TaskRepository{}
	tasks.On("Load", mock.Anything).Return(storedTasks(), nil)

	err := newTestService(tasks, &mocks.UserService{}).MarkComplete(context.Background(), 1)
	if !errors.Is(err, ErrAlreadyComplete) {
		t.Fatalf("MarkComplete() error = %v, want ErrAlreadyComplete", err)
	}
	// A no-op must not rewrite the store.
	tasks.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestReassign(t *testing.T) {
	type args struct {
		index      int
		newUser    string
		userExists bool
	}
	tests := []struct {
		name       string
		args       args
		wantErr    error
		wantUpdate bool
	}{
		{
			name:       "valid reassignment",
			args:       args{index: 0, newUser: "Bob", userExists: true},
			wantUpdate: true,
		},
		{
			name:    "completed task is immutable",
			args:    args{index: 1, newUser: "alice", userExists: true},
			wantErr: ErrTaskImmutable,
		},
		{
			name:    "unknown user",
			args:    args{index: 0, newUser: "mallory", userExists: false},
			wantErr: ErrUnknownUser,
		},
		{
			name:    "same assignee regardless of case",
			args:    args{index: 0, newUser: "ALICE", userExists: true},
			wantErr: ErrSameAssignee,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks := &mocks.TaskRepository{}
			tasks.On("Load", mock.Anything).Return(storedTasks(), nil)
			tasks.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(nil)
			users := &mocks.UserService{}
			users.On("Exists", mock.Anything, mock.Anything).Return(tt.args.userExists, nil)

			err := newTestService(tasks, users).Reassign(context.Background(), tt.args.index, tt.args.newUser)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Reassign() error = %v, want %v", err, tt.wantErr)
				}
				tasks.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
				return
			}
			if err != nil {
				t.Fatalf("Reassign() error = %v", err)
			}
			want := storedTasks()[tt.args.index]
			want.AssignedUser = "bob"
			tasks.AssertCalled(t, "Update", mock.Anything, tt.args.index, want)
		})
	}
}

func TestRedate(t *testing.T) {
	newDue := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	tasks := &mocks.TaskRepository{}
	tasks.On("Load", mock.Anything).Return(storedTasks(), nil)
	tasks.On("Update", mock.Anything, 0, mock.Anything).Return(nil)

	if err := newTestService(tasks, &mocks.UserService{}).Redate(context.Background(), 0, newDue); err != nil {
		t.Fatalf("Redate() error = %v", err)
	}

	want := storedTasks()[0]
	want.DueDate = newDue
	tasks.AssertCalled(t, "Update", mock.Anything, 0, want)
}

func TestRedateCompletedTask(t *testing.T) {
	tasks := &mocks.TaskRepository{}
	tasks.On("Load", mock.Anything).Return(storedTasks(), nil)

	err := newTestService(tasks, &mocks.UserService{}).Redate(context.Background(), 1, time.Now())
	if !errors.Is(err, ErrTaskImmutable) {
		t.Fatalf("Redate() error = %v, want ErrTaskImmutable", err)
	}
	tasks.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestDelete(t *testing.T) {
	tasks := &mocks.TaskRepository{}
	tasks.On("Delete", mock.Anything, 1).Return(nil)

	if err := newTestService(tasks, &mocks.UserService{}).Delete(context.Background(), 1); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	tasks.AssertCalled(t, "Delete", mock.Anything, 1)
}
