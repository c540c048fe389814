package models

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout is the fixed date format used everywhere a date is stored
	// or displayed, e.g. "06 Oct 2025".
	DateLayout = "02 Jan 2006"

	// FieldDelimiter separates the fields of a stored record line. Field
	// values must not contain it; the store format does not escape.
	FieldDelimiter = ", "

	completedYes = "Yes"
	completedNo  = "No"

	userFieldCount = 2
	taskFieldCount = 6
)

// Task represents one task record. A task has no identifier of its own;
// its identity is its position in the task store.
type Task struct {
	AssignedUser string
	Title        string
	Description  string
	DateAssigned time.Time
	DueDate      time.Time
	Completed    bool
}

// NewTask creates an incomplete task assigned on the given date.
func NewTask(assignedUser, title, description string, dateAssigned, dueDate time.Time) *Task {
	return &Task{
		AssignedUser: assignedUser,
		Title:        title,
		Description:  description,
		DateAssigned: dateAssigned,
		DueDate:      dueDate,
		Completed:    false,
	}
}

// Line serializes the task as a single task-store line.
func (t Task) Line() string {
	completed := completedNo
	if t.Completed {
		completed = completedYes
	}
	fields := []string{
		t.AssignedUser,
		t.Title,
		t.Description,
		t.DateAssigned.Format(DateLayout),
		t.DueDate.Format(DateLayout),
		completed,
	}
	return strings.Join(fields, FieldDelimiter)
}

// ParseTaskLine parses one task-store line into a Task.
func ParseTaskLine(line string) (Task, error) {
	parts := strings.Split(strings.TrimSpace(line), FieldDelimiter)
	if len(parts) != taskFieldCount {
		return Task{}, fmt.Errorf("%s: %q", ErrMalformedTaskLine, line)
	}

	dateAssigned, err := ParseDate(parts[3])
	if err != nil {
		return Task{}, fmt.Errorf("%s: %w", ErrBadAssignedDate, err)
	}
	dueDate, err := ParseDate(parts[4])
	if err != nil {
		return Task{}, fmt.Errorf("%s: %w", ErrBadDueDate, err)
	}

	return Task{
		AssignedUser: parts[0],
		Title:        parts[1],
		Description:  parts[2],
		DateAssigned: dateAssigned,
		DueDate:      dueDate,
		Completed:    strings.EqualFold(parts[5], completedYes),
	}, nil
}

// ParseDate parses a date in the fixed DateLayout format.
func ParseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return parsed, nil
}

// Overdue reports whether the task is not completed and due strictly
// before today. The comparison is date-only; completed tasks are never
// overdue regardless of date.
func (t Task) Overdue(today time.Time) bool {
	if t.Completed {
		return false
	}
	return dateOnly(t.DueDate).Before(dateOnly(today))
}

func dateOnly(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
