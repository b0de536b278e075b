package services

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/coachdesk/internal/client/client"
	"github.com/dmitrijs2005/coachdesk/internal/client/facade"
)

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func newClock() *clock {
	return &clock{t: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)}
}

func (c *clock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

// newStore returns a local-only facade over a fresh database.
func newStore(t *testing.T, c *clock) *facade.Facade {
	t.Helper()
	ctx := context.Background()
	db, err := client.InitDatabase(ctx, filepath.Join(t.TempDir(), "coachdesk.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return facade.New(ctx, nil, db, facade.Options{
		Now:           c.now,
		AdminEmail:    "admin@gmail.com",
		AdminPassword: "Admin@123",
	})
}
