package facade

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/coachdesk/internal/models"
)

// CreateSession appends a new session for email. Existing sessions are left
// alone. A failed write is logged and the session is still returned.
// Times are cut to milliseconds, the precision they are stored with.
func (f *Facade) CreateSession(ctx context.Context, email string) *models.Session {
	s := models.NewSession(email, f.now().Truncate(time.Millisecond), f.sessionTTL)
	if err := f.sessionRepo(f.db).Create(ctx, &s); err != nil {
		f.log.Warn(ctx, "failed to store session", "email", email, "err", err)
	}
	return &s
}

// GetSession returns the first stored session of email that has not
// expired, or nil.
func (f *Facade) GetSession(ctx context.Context, email string) (*models.Session, error) {
	list, err := f.sessionRepo(f.db).ListByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return f.firstValid(list), nil
}

// CurrentSession returns the first stored unexpired session of any account,
// or nil. It identifies who is logged in on this installation.
func (f *Facade) CurrentSession(ctx context.Context) (*models.Session, error) {
	list, err := f.sessionRepo(f.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("current session: %w", err)
	}
	return f.firstValid(list), nil
}

// ClearSession removes every session of email.
func (f *Facade) ClearSession(ctx context.Context, email string) error {
	if _, err := f.sessionRepo(f.db).DeleteByEmail(ctx, email); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (f *Facade) firstValid(list []models.Session) *models.Session {
	now := f.now()
	for i := range list {
		if list[i].ValidAt(now) {
			return &list[i]
		}
	}
	return nil
}
