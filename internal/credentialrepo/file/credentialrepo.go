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

// CredentialRepository implements interfaces.CredentialRepository on a
// flat text file, one "username, password" record per line.
type CredentialRepository struct {
	path   string
	logger interfaces.Logger
}

// NewCredentialRepository creates a repository backed by the file at path.
func NewCredentialRepository(path string, logger interfaces.Logger) *CredentialRepository {
	return &CredentialRepository{path: path, logger: logger}
}

// List returns all credential records in store order.
func (r *CredentialRepository) List(ctx context.Context) ([]models.User, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, interfaces.ErrStoreNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrReadStore, err)
	}

	var users []models.User
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		user, err := models.ParseUserLine(line)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrParseStore, err)
		}
		users = append(users, user)
	}
	return users, nil
}

// Append adds one credential record at the end of the store, creating
// the store if it does not exist yet. The write is flushed before
// Append returns.
func (r *CredentialRepository) Append(ctx context.Context, user models.User) error {
	entry := user.Line() + "\n"

	// An existing store may lack a trailing newline; repair it so the
	// new record starts on its own line.
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

	r.logger.Debug("Credential appended", "user", user.Username, "path", r.path)
	return nil
}
