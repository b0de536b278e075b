package sessions

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/coachdesk/internal/dbx"
	"github.com/dmitrijs2005/coachdesk/internal/models"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, s *models.Session) error {
	query := `INSERT INTO sessions (id, email, created_at, expires_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, s.ID, s.Email, dbx.ToMillis(s.CreatedAt), dbx.ToMillis(s.ExpiresAt))
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) ListByEmail(ctx context.Context, email string) ([]models.Session, error) {
	return r.query(ctx, `SELECT id, email, created_at, expires_at FROM sessions WHERE email = ? ORDER BY rowid`, email)
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.Session, error) {
	return r.query(ctx, `SELECT id, email, created_at, expires_at FROM sessions ORDER BY rowid`)
}

func (r *SQLiteRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE email = ?`, email)
	if err != nil {
		return 0, fmt.Errorf("failed to delete sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sessions`); err != nil {
		return fmt.Errorf("failed to clear sessions: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) query(ctx context.Context, query string, args ...any) ([]models.Session, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select sessions: %w", err)
	}
	defer rows.Close()

	result := make([]models.Session, 0)
	for rows.Next() {
		var (
			s                    models.Session
			createdAt, expiresAt int64
		)
		if err := rows.Scan(&s.ID, &s.Email, &createdAt, &expiresAt); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		s.CreatedAt = dbx.FromMillis(createdAt)
		s.ExpiresAt = dbx.FromMillis(expiresAt)
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sessions: %w", err)
	}
	return result, nil
}
