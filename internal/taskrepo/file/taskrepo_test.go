package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/Gio-ZA/task-manager-project/internal/interfaces"
	"github.com/Gio-ZA/task-manager-project/internal/interfaces/mocks"
	"github.com/Gio-ZA/task-manager-project/internal/models"
)

func newTestRepo(t *testing.T) (*TaskRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.txt")
	return NewTaskRepository(path, &mocks.Logger{}), path
}

func testTask(t *testing.T, user, title string, completed bool) models.Task {
	t.Helper()
	assigned, err := models.ParseDate("01 Jan 2025")
	if err != nil {
		t.Fatal(err)
	}
	due, err := models.ParseDate("01 Feb 2025")
	if err != nil {
		t.Fatal(err)
	}
	return models.Task{
		AssignedUser: user,
		Title:        title,
		Description:  "description of " + title,
		DateAssigned: assigned,
		DueDate:      due,
		Completed:    completed,
	}
}

func TestLoadMissingStore(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.Load(context.Background())
	if !errors.Is(err, interfaces.ErrStoreNotFound) {
		t.Errorf("Load() error = %v, want ErrStoreNotFound", err)
	}
}

func TestAppendAndLoadRoundTrip(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	want := []models.Task{
		testTask(t, "alice", "Write report", false),
		testTask(t, "bob", "Fix bug", true),
	}
	for _, task := range want {
		if err := repo.Append(ctx, task); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load() = %v, want %v", got, want)
	}
}

func TestAppendRepairsMissingTrailingNewline(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()

	// Seed a store whose last line is unterminated.
	seed := testTask(t, "alice", "Write report", false)
	if err := os.WriteFile(path, []byte(seed.Line()), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := repo.Append(ctx, testTask(t, "bob", "Fix bug", false)); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Load() returned %d records, want 2", len(got))
	}
	if got[0].AssignedUser != "alice" || got[1].AssignedUser != "bob" {
		t.Errorf("Load() = %v, want alice then bob", got)
	}
}

func TestUpdate(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Append(ctx, testTask(t, "alice", "Write report", false)); err != nil {
		t.Fatal(err)
	}

	updated := testTask(t, "alice", "Write report", true)
	if err := repo.Update(ctx, 0, updated); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !got[0].Completed {
		t.Errorf("Update() did not persist the completed flag")
	}
}

func TestUpdateOutOfRange(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Append(ctx, testTask(t, "alice", "Write report", false)); err != nil {
		t.Fatal(err)
	}

	err := repo.Update(ctx, 3, testTask(t, "alice", "Write report", true))
	if !errors.Is(err, interfaces.ErrIndexOutOfRange) {
		t.Errorf("Update() error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestDeleteRenumbers(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	first := testTask(t, "alice", "Write report", false)
	second := testTask(t, "bob", "Fix bug", false)
	third := testTask(t, "carol", "Ship release", false)
	for _, task := range []models.Task{first, second, third} {
		if err := repo.Append(ctx, task); err != nil {
			t.Fatal(err)
		}
	}

	// Removing the middle record keeps the remaining two in their
	// original relative order at positions 0 and 1.
	if err := repo.Delete(ctx, 1); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := []models.Task{first, third}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load() after delete = %v, want %v", got, want)
	}
}

func TestDeleteOutOfRange(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Append(ctx, testTask(t, "alice", "Write report", false)); err != nil {
		t.Fatal(err)
	}

	if err := repo.Delete(ctx, -1); !errors.Is(err, interfaces.ErrIndexOutOfRange) {
		t.Errorf("Delete(-1) error = %v, want ErrIndexOutOfRange", err)
	}
}
