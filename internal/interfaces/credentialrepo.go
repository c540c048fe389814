package interfaces

import (
	"context"

	"github.com/Gio-ZA/task-manager-project/internal/models"
)

// CredentialRepository defines the contract for the credential store.
// Records are ordered and append-only; nothing ever updates or removes
// a stored credential.
type CredentialRepository interface {
	List(ctx context.Context) ([]models.User, error)
	Append(ctx context.Context, user models.User) error
}
