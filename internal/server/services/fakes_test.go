package services

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/coachdesk/internal/common"
	"github.com/dmitrijs2005/coachdesk/internal/dbx"
	"github.com/dmitrijs2005/coachdesk/internal/models"
	"github.com/dmitrijs2005/coachdesk/internal/server/config"
	srvmodels "github.com/dmitrijs2005/coachdesk/internal/server/models"
	"github.com/dmitrijs2005/coachdesk/internal/server/repositories/admins"
	"github.com/dmitrijs2005/coachdesk/internal/server/repositories/enrollments"
	"github.com/dmitrijs2005/coachdesk/internal/server/repositories/users"
)

var errBoom = errors.New("boom")

var fixedTime = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return fixedTime }

// memStore is an in-memory stand-in for the Postgres repositories.
type memStore struct {
	mu          sync.Mutex
	users       []models.User
	enrollments []models.Enrollment
	admins      map[string]string

	failUsers bool
	failClear bool
}

type fakeManager struct{ s *memStore }

func newFakeManager() *fakeManager {
	return &fakeManager{s: &memStore{admins: map[string]string{}}}
}

func (m *fakeManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeManager) Users(dbx.DBTX) users.Repository                { return (*fakeUsers)(m.s) }
func (m *fakeManager) Enrollments(dbx.DBTX) enrollments.Repository    { return (*fakeEnrollments)(m.s) }
func (m *fakeManager) Admins(dbx.DBTX) admins.Repository              { return (*fakeAdmins)(m.s) }

type fakeUsers memStore

func (f *fakeUsers) Create(_ context.Context, u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUsers {
		return errBoom
	}
	for _, x := range f.users {
		if x.Email == u.Email {
			return common.ErrDuplicateEmail
		}
	}
	f.users = append(f.users, *u)
	return nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUsers {
		return nil, errBoom
	}
	for _, x := range f.users {
		if x.Email == email {
			u := x
			return &u, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeUsers) List(context.Context) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUsers {
		return nil, errBoom
	}
	return append([]models.User{}, f.users...), nil
}

func (f *fakeUsers) RecordLogin(_ context.Context, email string, at time.Time) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.users {
		if f.users[i].Email == email {
			f.users[i].LastLogin = &at
			f.users[i].LoginCount++
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeUsers) Clear(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failClear {
		return errBoom
	}
	f.users = nil
	return nil
}

type fakeEnrollments memStore

func (f *fakeEnrollments) Create(_ context.Context, e *models.Enrollment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enrollments = append(f.enrollments, *e)
	return nil
}

func (f *fakeEnrollments) List(context.Context) ([]models.Enrollment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Enrollment{}, f.enrollments...), nil
}

func (f *fakeEnrollments) ListByEmail(_ context.Context, email string) ([]models.Enrollment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Enrollment{}
	for _, e := range f.enrollments {
		if e.Email == email {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEnrollments) Clear(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enrollments = nil
	return nil
}

type fakeAdmins memStore

func (f *fakeAdmins) Upsert(_ context.Context, a *srvmodels.AdminAccount) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.admins[a.Email] = a.PasswordHash
	return nil
}

func (f *fakeAdmins) GetByEmail(_ context.Context, email string) (*srvmodels.AdminAccount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	h, ok := f.admins[email]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &srvmodels.AdminAccount{Email: email, PasswordHash: h}, nil
}

func (f *fakeAdmins) ListEmails(context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.admins))
	for e := range f.admins {
		out = append(out, e)
	}
	sort.Strings(out)
	return out, nil
}

// newTxDB returns a sqlmock database for services that open transactions.
func newTxDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func testConfig() *config.Config {
	return &config.Config{SecretKey: "test-secret", AdminTokenTTL: time.Hour}
}
