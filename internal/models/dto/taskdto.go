package dto

// AddTaskRequest carries the collected inputs of an add-task operation.
type AddTaskRequest struct {
	AssignedUser string `validate:"required"`
	Title        string `validate:"required"`
	Description  string `validate:"required"`
	DueDate      string `validate:"required"`
}
