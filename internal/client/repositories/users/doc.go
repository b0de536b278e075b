// Package users is the local (SQLite) persistence of registered users.
//
// Email is the unique key: the users table carries a UNIQUE constraint on it
// and Create maps the constraint violation to common.ErrDuplicateEmail, so the
// duplicate check holds even when two writers race.
//
// Rows are returned in insertion order (rowid), matching the order in which
// the facade stored them.
//
//	repo := users.NewSQLiteRepository(db)
//	err := repo.Create(ctx, &u)
//	u, err := repo.GetByEmail(ctx, "asha@example.com")
package users
