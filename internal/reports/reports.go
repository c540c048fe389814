package reports

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/Gio-ZA/task-manager-project/internal/interfaces"
	"github.com/Gio-ZA/task-manager-project/internal/models"

	"github.com/google/uuid"
)

// Generator derives the task overview and user overview documents from
// the task and credential stores. Both documents are pure functions of
// store state and are treated as a cache: Display regenerates them when
// absent, and Generate overwrites them atomically.
type Generator struct {
	Tasks            interfaces.TaskRepository
	Credentials      interfaces.CredentialRepository
	Logger           interfaces.Logger
	TaskOverviewPath string
	UserOverviewPath string
	now              func() time.Time
}

// NewGenerator creates a new report Generator instance.
func NewGenerator(tasks interfaces.TaskRepository, credentials interfaces.CredentialRepository,
	logger interfaces.Logger, taskOverviewPath, userOverviewPath string,
) *Generator {
	return &Generator{
		Tasks:            tasks,
		Credentials:      credentials,
		Logger:           logger,
		TaskOverviewPath: taskOverviewPath,
		UserOverviewPath: userOverviewPath,
		now:              time.Now,
	}
}

// Generate computes both overview documents from current store state
// and writes them, atomically overwriting any prior documents. A
// missing task store aborts with ErrStoreNotFound and writes nothing.
func (g *Generator) Generate(ctx context.Context) error {
	tasks, err := g.Tasks.Load(ctx)
	if err != nil {
		return err
	}

	users, err := g.Credentials.List(ctx)
	if err != nil {
		return err
	}

	today := g.now()
	taskDoc := renderTaskOverview(computeTaskStats(tasks, today))
	userDoc := renderUserOverview(users, tasks, today)

	if err := writeAtomic(g.TaskOverviewPath, taskDoc); err != nil {
		return fmt.Errorf("%s: %w", ErrWriteReport, err)
	}
	if err := writeAtomic(g.UserOverviewPath, userDoc); err != nil {
		return fmt.Errorf("%s: %w", ErrWriteReport, err)
	}

	g.Logger.Info("Reports generated", "tasks", len(tasks), "users", len(users))
	return nil
}

// Display returns the contents of both overview documents verbatim,
// generating them first if either is absent.
func (g *Generator) Display(ctx context.Context) (taskDoc, userDoc string, err error) {
	if !fileExists(g.TaskOverviewPath) || !fileExists(g.UserOverviewPath) {
		if err := g.Generate(ctx); err != nil {
			return "", "", err
		}
	}

	taskBytes, err := os.ReadFile(g.TaskOverviewPath)
	if err != nil {
		return "", "", ErrReportUnavailable
	}
	userBytes, err := os.ReadFile(g.UserOverviewPath)
	if err != nil {
		return "", "", ErrReportUnavailable
	}
	return string(taskBytes), string(userBytes), nil
}

type taskStats struct {
	total       int
	completed   int
	uncompleted int
	overdue     int
}

func computeTaskStats(tasks []models.Task, today time.Time) taskStats {
	stats := taskStats{total: len(tasks)}
	for _, task := range tasks {
		if task.Completed {
			stats.completed++
			continue
		}
		stats.uncompleted++
		if task.Overdue(today) {
			stats.overdue++
		}
	}
	return stats
}

func renderTaskOverview(stats taskStats) string {
	var b strings.Builder
	b.WriteString("Task Overview Report\n")
	b.WriteString("====================\n")
	fmt.Fprintf(&b, "Total tasks: %d\n", stats.total)
	fmt.Fprintf(&b, "Completed tasks: %d\n", stats.completed)
	fmt.Fprintf(&b, "Uncompleted tasks: %d\n", stats.uncompleted)
	fmt.Fprintf(&b, "Overdue tasks: %d\n", stats.overdue)
	if stats.total > 0 {
		fmt.Fprintf(&b, "Percentage incomplete: %s\n", percent(stats.uncompleted, stats.total))
		fmt.Fprintf(&b, "Percentage overdue: %s\n", percent(stats.overdue, stats.total))
	}
	return b.String()
}

func renderUserOverview(users []models.User, tasks []models.Task, today time.Time) string {
	var b strings.Builder
	b.WriteString("User Overview Report\n")
	b.WriteString("====================\n")
	fmt.Fprintf(&b, "Total users: %d\n", len(users))
	fmt.Fprintf(&b, "Total tasks: %d\n\n", len(tasks))

	for _, user := range users {
		username := strings.ToLower(user.Username)
		stats := computeTaskStats(filterAssigned(tasks, username), today)

		fmt.Fprintf(&b, "User: %s\n", username)
		fmt.Fprintf(&b, "- Tasks assigned: %d\n", stats.total)

		if len(tasks) > 0 && stats.total > 0 {
			fmt.Fprintf(&b, "- %% of total tasks: %s\n", percent(stats.total, len(tasks)))
			fmt.Fprintf(&b, "- %% completed: %s\n", percent(stats.completed, stats.total))
			fmt.Fprintf(&b, "- %% uncompleted: %s\n", percent(stats.uncompleted, stats.total))
			fmt.Fprintf(&b, "- %% overdue: %s\n", percent(stats.overdue, stats.total))
		} else {
			b.WriteString("- No tasks assigned.\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func filterAssigned(tasks []models.Task, username string) []models.Task {
	var out []models.Task
	for _, task := range tasks {
		if strings.EqualFold(task.AssignedUser, username) {
			out = append(out, task)
		}
	}
	return out
}

func percent(part, whole int) string {
	return fmt.Sprintf("%.2f%%", float64(part)/float64(whole)*100)
}

// writeAtomic writes content to a uniquely named temp file in the
// target directory, then renames it over the destination.
func writeAtomic(path, content string) error {
	tmp := path + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}
