package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/coachdesk/internal/common"
	"github.com/dmitrijs2005/coachdesk/internal/dbx"
	"github.com/dmitrijs2005/coachdesk/internal/models"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const userColumns = `id, name, email, password, compact_mobile, created_at, last_login, login_count`

// SQLiteRepository implements Repository over a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, u *models.User) error {
	query := `INSERT INTO users (` + userColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		u.ID, u.Name, u.Email, u.Password, u.CompactMobile,
		dbx.ToMillis(u.CreatedAt), dbx.NullMillis(u.LastLogin), u.LoginCount)
	if err != nil {
		if isUniqueViolation(err) {
			return common.ErrDuplicateEmail
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ?`

	u, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY rowid`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select users: %w", err)
	}
	defer rows.Close()

	result := make([]models.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		result = append(result, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) RecordLogin(ctx context.Context, email string, at time.Time) (*models.User, error) {
	query := `UPDATE users SET last_login = ?, login_count = login_count + 1 WHERE email = ?`

	res, err := r.db.ExecContext(ctx, query, dbx.ToMillis(at), email)
	if err != nil {
		return nil, fmt.Errorf("failed to update login: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return nil, common.ErrNotFound
	}
	return r.GetByEmail(ctx, email)
}

// ReplaceAll should run inside a transaction; on its own a failure halfway
// leaves a partial table.
func (r *SQLiteRepository) ReplaceAll(ctx context.Context, list []models.User) error {
	if err := r.Clear(ctx); err != nil {
		return err
	}

	// Imported data is trusted as a whole: a later row with the same id or
	// email replaces the earlier one instead of failing the import.
	query := `INSERT OR REPLACE INTO users (` + userColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	for _, u := range list {
		if u.ID == "" {
			u.ID = models.NewID()
		}
		_, err := r.db.ExecContext(ctx, query,
			u.ID, u.Name, u.Email, u.Password, u.CompactMobile,
			dbx.ToMillis(u.CreatedAt), dbx.NullMillis(u.LastLogin), u.LoginCount)
		if err != nil {
			return fmt.Errorf("failed to insert user %s: %w", u.Email, err)
		}
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM users`); err != nil {
		return fmt.Errorf("failed to clear users: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (*models.User, error) {
	var (
		u         models.User
		createdAt int64
		lastLogin sql.NullInt64
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.CompactMobile,
		&createdAt, &lastLogin, &u.LoginCount); err != nil {
		return nil, err
	}
	u.CreatedAt = dbx.FromMillis(createdAt)
	u.LastLogin = dbx.FromNullMillis(lastLogin)
	return &u, nil
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE || se.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
}
