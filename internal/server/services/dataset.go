package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/coachdesk/internal/dbx"
	"github.com/dmitrijs2005/coachdesk/internal/models"
	"github.com/dmitrijs2005/coachdesk/internal/server/repositories/repomanager"
)

// DatasetService works on the whole dataset at once.
type DatasetService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewDatasetService(db *sql.DB, m repomanager.RepositoryManager, now func() time.Time) *DatasetService {
	if now == nil {
		now = time.Now
	}
	return &DatasetService{db: db, repomanager: m, now: now}
}

// Export returns every user (without password hashes), every enrollment
// and the admin emails.
func (s *DatasetService) Export(ctx context.Context) (*models.Dataset, error) {
	users, err := s.repomanager.Users(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	for i := range users {
		users[i].Password = ""
	}
	enrollments, err := s.repomanager.Enrollments(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing enrollments: %w", err)
	}
	emails, err := s.repomanager.Admins(s.db).ListEmails(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing admins: %w", err)
	}
	admins := make([]models.Admin, len(emails))
	for i, e := range emails {
		admins[i] = models.Admin{Email: e}
	}

	return &models.Dataset{
		Users:       users,
		Enrollments: enrollments,
		Admins:      admins,
		ExportDate:  s.now().UTC(),
	}, nil
}

// Clear deletes all users and enrollments in one transaction. Admin
// accounts are kept.
func (s *DatasetService) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Enrollments(tx).Clear(ctx); err != nil {
			return err
		}
		return s.repomanager.Users(tx).Clear(ctx)
	})
}
