package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/Gio-ZA/task-manager-project/internal/interfaces"
	"github.com/Gio-ZA/task-manager-project/internal/models"
)

// TaskRepository implements interfaces.TaskRepository on a flat text
// file, one task record per line. A record is addressed by its position
// in the file; Update and Delete rewrite the whole file, which is the
// store's persistence contract at this scale.
type TaskRepository struct {
	path   string
	logger interfaces.Logger
}

// NewTaskRepository creates a repository backed by the file at path.
func NewTaskRepository(path string, logger interfaces.Logger) *TaskRepository {
	return &TaskRepository{path: path, logger: logger}
}

// Load returns all task records in store order.
func (r *TaskRepository) Load(ctx context.Context) ([]models.Task, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, interfaces.ErrStoreNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrReadStore, err)
	}

	var tasks []models.Task
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		task, err := models.ParseTaskLine(line)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrParseStore, err)
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// Append adds one task record at the end of the store, creating the
// store if it does not exist yet. The write is flushed before Append
// returns.
func (r *TaskRepository) Append(ctx context.Context, task models.Task) error {
	entry := task.Line() + "\n"

	// Repair a missing trailing newline so the new record starts on
	// its own line.
	data, err := os.ReadFile(r.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", ErrReadStore, err)
	}
	if len(data) > 0 && !strings.HasSuffix(string(data), "\n") {
		entry = "\n" + entry
	}

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrOpenStore, err)
	}
	defer f.Close()

	if _, err := f.WriteString(entry); err != nil {
		return fmt.Errorf("%s: %w", ErrWriteStore, err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("%s: %w", ErrWriteStore, err)
	}

	r.logger.Debug("Task appended", "user", task.AssignedUser, "path", r.path)
	return nil
}

// Update replaces the record at index and rewrites the store.
func (r *TaskRepository) Update(ctx context.Context, index int, task models.Task) error {
	tasks, err := r.Load(ctx)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(tasks) {
		return interfaces.ErrIndexOutOfRange
	}

	tasks[index] = task
	return r.writeAll(tasks)
}

// Delete removes the record at index and rewrites the store. Records
// after it shift down one position.
func (r *TaskRepository) Delete(ctx context.Context, index int) error {
	tasks, err := r.Load(ctx)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(tasks) {
		return interfaces.ErrIndexOutOfRange
	}

	tasks = append(tasks[:index], tasks[index+1:]...)
	return r.writeAll(tasks)
}

func (r *TaskRepository) writeAll(tasks []models.Task) error {
	var b strings.Builder
	for _, task := range tasks {
		b.WriteString(task.Line())
		b.WriteString("\n")
	}

	if err := os.WriteFile(r.path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("%s: %w", ErrWriteStore, err)
	}

	r.logger.Debug("Task store rewritten", "records", len(tasks), "path", r.path)
	return nil
}
