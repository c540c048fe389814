package session

import (
	"strings"

	"github.com/Gio-ZA/task-manager-project/internal/models"
)

const ruleWidth = 60

// renderTask prints one task record in the standard labeled layout.
func (s *Session) renderTask(task models.Task) {
	completed := "No"
	if task.Completed {
		completed = "Yes"
	}

	rule := strings.Repeat("─", ruleWidth)
	s.Console.Print(rule)
	s.Console.Printf("Task:\t\t  %s\n", task.Title)
	s.Console.Printf("Assigned to:\t  %s\n", task.AssignedUser)
	s.Console.Printf("Date assigned:\t  %s\n", task.DateAssigned.Format(models.DateLayout))
	s.Console.Printf("Due date:\t  %s\n", task.DueDate.Format(models.DateLayout))
	s.Console.Printf("Task Complete?\t  %s\n", completed)
	s.Console.Print("Task description:")
	s.Console.Printf("  %s\n", task.Description)
	s.Console.Print(rule)
}

// titleCase upper-cases the first letter of a lower-cased username for
// the welcome banner.
func titleCase(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
