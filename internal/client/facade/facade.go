package facade

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/dmitrijs2005/coachdesk/internal/client/client"
	"github.com/dmitrijs2005/coachdesk/internal/client/repositories/enrollments"
	"github.com/dmitrijs2005/coachdesk/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/coachdesk/internal/client/repositories/sessions"
	"github.com/dmitrijs2005/coachdesk/internal/client/repositories/users"
	"github.com/dmitrijs2005/coachdesk/internal/dbx"
	"github.com/dmitrijs2005/coachdesk/internal/logging"
	"github.com/dmitrijs2005/coachdesk/internal/models"
)

// DefaultProbeTimeout bounds the reachability probe done by New.
const DefaultProbeTimeout = 5 * time.Second

// Options tune a Facade. Zero values select the defaults.
type Options struct {
	ProbeTimeout time.Duration
	SessionTTL   time.Duration

	// AdminEmail and AdminPassword form the credential VerifyAdmin accepts
	// while local. An empty AdminEmail disables local admin login.
	AdminEmail    string
	AdminPassword string

	Logger logging.Logger
	Now    func() time.Time
}

type Facade struct {
	remote client.Client
	db     *sql.DB
	log    logging.Logger
	now    func() time.Time

	sessionTTL    time.Duration
	adminEmail    string
	adminPassword string

	mu   sync.RWMutex
	mode Mode
}

// New builds a facade over the local database db and, when remote is not
// nil, probes the remote API to pick the initial mode.
func New(ctx context.Context, remote client.Client, db *sql.DB, opts Options) *Facade {
	f := &Facade{
		remote:        remote,
		db:            db,
		log:           opts.Logger,
		now:           opts.Now,
		sessionTTL:    opts.SessionTTL,
		adminEmail:    opts.AdminEmail,
		adminPassword: opts.AdminPassword,
		mode:          ModeLocal,
	}
	if f.log == nil {
		f.log = logging.Discard()
	}
	f.log = f.log.With("module", "facade")
	if f.now == nil {
		f.now = time.Now
	}
	if f.sessionTTL <= 0 {
		f.sessionTTL = models.DefaultSessionTTL
	}

	if remote == nil {
		f.log.Info(ctx, "no remote configured, using local storage")
		return f
	}

	timeout := opts.ProbeTimeout
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	probeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := remote.Ping(probeCtx); err != nil {
		f.log.Warn(ctx, "remote unreachable, using local storage", "err", err)
		return f
	}
	f.mode = ModeRemote
	f.log.Info(ctx, "connected to remote")
	return f
}

// Mode reports the backend currently in use.
func (f *Facade) Mode() Mode {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.mode
}

func (f *Facade) useRemote() bool {
	return f.Mode() == ModeRemote
}

// degrade is the only mode transition. It is idempotent.
func (f *Facade) degrade(ctx context.Context, op string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mode == ModeLocal {
		return
	}
	f.mode = ModeLocal
	f.log.Warn(ctx, "remote call failed, switching to local storage", "op", op, "err", err)
}

func (f *Facade) userRepo(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

func (f *Facade) enrollmentRepo(db dbx.DBTX) enrollments.Repository {
	return enrollments.NewSQLiteRepository(db)
}

func (f *Facade) sessionRepo(db dbx.DBTX) sessions.Repository {
	return sessions.NewSQLiteRepository(db)
}

func (f *Facade) metadataRepo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}
