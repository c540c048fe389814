package interfaces

import (
	"context"

	"github.com/Gio-ZA/task-manager-project/internal/models"
)

// TaskRepository defines the contract for the task store. A task is
// addressed by its position in the ordered sequence; every mutation is
// a whole-store rewrite, durably flushed before it returns.
type TaskRepository interface {
	Load(ctx context.Context) ([]models.Task, error)
	Append(ctx context.Context, task models.Task) error
	Update(ctx context.Context, index int, task models.Task) error
	Delete(ctx context.Context, index int) error
}
