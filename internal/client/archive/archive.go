// Package archive writes export documents somewhere durable: a local
// directory or an S3-compatible bucket.
package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/coachdesk/internal/models"
)

// Sink stores one named document and returns where it went.
type Sink interface {
	Put(ctx context.Context, name string, data []byte) (string, error)
}

type Archiver struct {
	sink Sink
	now  func() time.Time
}

// New returns an Archiver writing to sink. A nil now uses time.Now.
func New(sink Sink, now func() time.Time) *Archiver {
	if now == nil {
		now = time.Now
	}
	return &Archiver{sink: sink, now: now}
}

// SaveDatabase stores a full dataset export as ncc_database_<unix ms>.json.
func (a *Archiver) SaveDatabase(ctx context.Context, doc string) (string, error) {
	name := fmt.Sprintf("ncc_database_%d.json", a.now().UnixMilli())
	return a.sink.Put(ctx, name, []byte(doc))
}

// SaveUsers stores the user list as ncc_registered_users_<unix ms>.json.
// Password hashes are left out.
func (a *Archiver) SaveUsers(ctx context.Context, users []models.User) (string, error) {
	out := make([]models.User, len(users))
	for i, u := range users {
		u.Password = ""
		out[i] = u
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode users: %w", err)
	}
	name := fmt.Sprintf("ncc_registered_users_%d.json", a.now().UnixMilli())
	return a.sink.Put(ctx, name, data)
}
