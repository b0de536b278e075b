package sessions

import (
	"context"

	"github.com/dmitrijs2005/coachdesk/internal/models"
)

type Repository interface {
	Create(ctx context.Context, s *models.Session) error

	// ListByEmail returns the sessions of one account, oldest first.
	ListByEmail(ctx context.Context, email string) ([]models.Session, error)

	List(ctx context.Context) ([]models.Session, error)

	// DeleteByEmail removes every session of the account and reports how many
	// rows went away.
	DeleteByEmail(ctx context.Context, email string) (int64, error)

	Clear(ctx context.Context) error
}
