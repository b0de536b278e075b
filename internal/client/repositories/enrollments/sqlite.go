package enrollments

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/coachdesk/internal/dbx"
	"github.com/dmitrijs2005/coachdesk/internal/models"
)

const enrollmentColumns = `id, full_name, email, mobile, compact_mobile, course, timestamp`

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, e *models.Enrollment) error {
	return r.insert(ctx, `INSERT INTO enrollments`, e)
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.Enrollment, error) {
	return r.query(ctx, `SELECT `+enrollmentColumns+` FROM enrollments ORDER BY rowid`)
}

func (r *SQLiteRepository) ListByEmail(ctx context.Context, email string) ([]models.Enrollment, error) {
	return r.query(ctx, `SELECT `+enrollmentColumns+` FROM enrollments WHERE email = ? ORDER BY rowid`, email)
}

func (r *SQLiteRepository) ReplaceAll(ctx context.Context, list []models.Enrollment) error {
	if err := r.Clear(ctx); err != nil {
		return err
	}
	for i := range list {
		e := list[i]
		if e.ID == "" {
			e.ID = models.NewID()
		}
		if err := r.insert(ctx, `INSERT OR REPLACE INTO enrollments`, &e); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM enrollments`); err != nil {
		return fmt.Errorf("failed to clear enrollments: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) insert(ctx context.Context, verb string, e *models.Enrollment) error {
	query := verb + ` (` + enrollmentColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.FullName, e.Email, e.Mobile, e.CompactMobile, e.Course, dbx.ToMillis(e.Timestamp))
	if err != nil {
		return fmt.Errorf("failed to insert enrollment: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) query(ctx context.Context, query string, args ...any) ([]models.Enrollment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select enrollments: %w", err)
	}
	defer rows.Close()

	result := make([]models.Enrollment, 0)
	for rows.Next() {
		var (
			e  models.Enrollment
			ts int64
		)
		if err := rows.Scan(&e.ID, &e.FullName, &e.Email, &e.Mobile, &e.CompactMobile, &e.Course, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan enrollment: %w", err)
		}
		e.Timestamp = dbx.FromMillis(ts)
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate enrollments: %w", err)
	}
	return result, nil
}
