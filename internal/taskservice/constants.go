package taskservice

const (
	// Error messages for task service operations
	ErrFailedToAddTask    = "failed to add task"
	ErrFailedToUpdateTask = "failed to update task"
	ErrFailedToDeleteTask = "failed to delete task"
)
