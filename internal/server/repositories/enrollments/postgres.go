// Package enrollments stores course applications in PostgreSQL.
package enrollments

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/coachdesk/internal/dbx"
	"github.com/dmitrijs2005/coachdesk/internal/models"
)

const enrollmentColumns = `id, full_name, email, mobile, compact_mobile, course, created_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, e *models.Enrollment) error {
	query :=
		`INSERT INTO enrollments (` + enrollmentColumns + `)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		e.ID.String(), e.FullName, e.Email, e.Mobile, e.CompactMobile, e.Course, e.Timestamp)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Enrollment, error) {
	return r.query(ctx, `SELECT `+enrollmentColumns+` FROM enrollments ORDER BY seq`)
}

func (r *PostgresRepository) ListByEmail(ctx context.Context, email string) ([]models.Enrollment, error) {
	return r.query(ctx, `SELECT `+enrollmentColumns+` FROM enrollments WHERE email = $1 ORDER BY seq`, email)
}

func (r *PostgresRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM enrollments`); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) query(ctx context.Context, query string, args ...any) ([]models.Enrollment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Enrollment, 0)
	for rows.Next() {
		var (
			e  models.Enrollment
			id string
		)
		if err := rows.Scan(&id, &e.FullName, &e.Email, &e.Mobile, &e.CompactMobile, &e.Course, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		e.ID = models.ID(id)
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
