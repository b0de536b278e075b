package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/coachdesk/internal/dbx"
	"github.com/dmitrijs2005/coachdesk/internal/server/repositories/admins"
	"github.com/dmitrijs2005/coachdesk/internal/server/repositories/enrollments"
	"github.com/dmitrijs2005/coachdesk/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so services can run
// them against the pool or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Enrollments(db dbx.DBTX) enrollments.Repository
	Admins(db dbx.DBTX) admins.Repository
}
