package admins

import (
	"context"

	"github.com/dmitrijs2005/coachdesk/internal/server/models"
)

type Repository interface {
	// Upsert stores the account, replacing the hash of an existing email.
	Upsert(ctx context.Context, a *models.AdminAccount) error
	// GetByEmail returns the account or common.ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*models.AdminAccount, error)
	// ListEmails returns every admin email, sorted.
	ListEmails(ctx context.Context) ([]string, error)
}
