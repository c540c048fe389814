package taskservice

import (
	"strings"

	"github.com/Gio-ZA/task-manager-project/internal/models"
)

// TaskFilter selects which tasks belong to a displayed view.
type TaskFilter func(models.Task) bool

// FilterAll admits every task.
func FilterAll(models.Task) bool { return true }

// FilterAssignedTo admits tasks assigned to the given user,
// compared case-insensitively.
func FilterAssignedTo(username string) TaskFilter {
	return func(task models.Task) bool {
		return strings.EqualFold(task.AssignedUser, username)
	}
}

// FilterCompleted admits completed tasks.
func FilterCompleted(task models.Task) bool { return task.Completed }

// DisplayMap maps the transient 1-based numbers shown to a user onto
// true store indices. The mapping is scoped to a filter and must be
// rebuilt from current store state every time the view is displayed;
// it is the only valid way to turn a typed number into a store index.
type DisplayMap struct {
	indices []int
}

// BuildDisplayMap enumerates the tasks matching the filter in store
// order, assigning displayed numbers 1..N.
func BuildDisplayMap(tasks []models.Task, filter TaskFilter) *DisplayMap {
	m := &DisplayMap{}
	for i, task := range tasks {
		if filter(task) {
			m.indices = append(m.indices, i)
		}
	}
	return m
}

// Len returns the number of displayed tasks.
func (m *DisplayMap) Len() int { return len(m.indices) }

// Resolve translates a displayed number into its true store index.
func (m *DisplayMap) Resolve(displayed int) (int, error) {
	if displayed < 1 || displayed > len(m.indices) {
		return 0, ErrInvalidSelection
	}
	return m.indices[displayed-1], nil
}

// TrueIndices returns the true store index of every displayed number,
// in display order.
func (m *DisplayMap) TrueIndices() []int {
	out := make([]int, len(m.indices))
	copy(out, m.indices)
	return out
}
