// Package enrollments provides the local persistence of course enrollments.
//
// # Overview
//
// Enrollments are append-only: the Repository can insert, list and replace
// the whole set during an import, but never edits a stored record. A
// SQLite-backed implementation (SQLiteRepository) persists data using a
// dbx.DBTX (either *sql.DB or *sql.Tx).
//
// # Ordering
//
// Lists come back in insertion order. Callers that want newest first sort
// by Timestamp themselves.
//
// Typical Usage
//
//	repo := enrollments.NewSQLiteRepository(db)
//	_ = repo.Create(ctx, &e)
//	mine, _ := repo.ListByEmail(ctx, "asha@example.com")
//	all, _ := repo.List(ctx)
package enrollments
