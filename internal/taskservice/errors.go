package taskservice

import "errors"

var (
	// ErrBlankField reports a required task field left blank.
	ErrBlankField = errors.New("input cannot be blank")

	// ErrUnknownUser reports an assignee with no credential record.
	ErrUnknownUser = errors.New("user does not exist")

	// ErrTaskImmutable reports an edit attempt on a completed task.
	ErrTaskImmutable = errors.New("completed tasks cannot be edited")

	// ErrAlreadyComplete reports marking a task that is already
	// complete. It is informational, not a failure; nothing is written.
	ErrAlreadyComplete = errors.New("task is already marked as complete")

	// ErrSameAssignee reports reassigning a task to its current
	// assignee. It is informational, not a failure; nothing is written.
	ErrSameAssignee = errors.New("task is already assigned to that user")

	// ErrInvalidSelection reports a displayed task number outside the
	// current view.
	ErrInvalidSelection = errors.New("invalid task number")
)
