package credentials

import (
	"context"

	"github.com/peopled/peopled/internal/server/models"
)

// Repository is the credential store. Credentials are written once at
// registration and read on every login; no update or delete operation exists.
type Repository interface {
	// Create inserts a credential referencing an existing user. A duplicate
	// email yields common.ErrEmailTaken.
	Create(ctx context.Context, cred *models.Credential) (*models.Credential, error)
	// GetByEmail returns the credential for the email with its owning user
	// attached, or common.ErrorNotFound.
	GetByEmail(ctx context.Context, email string) (*models.Credential, error)
}
