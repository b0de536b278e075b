package facade

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/coachdesk/internal/client/client"
	"github.com/dmitrijs2005/coachdesk/internal/common"
	"github.com/dmitrijs2005/coachdesk/internal/cryptox"
	"github.com/dmitrijs2005/coachdesk/internal/dbx"
	"github.com/dmitrijs2005/coachdesk/internal/models"
)

// AddUser registers a user. in.Password must already be hashed. A taken
// email yields common.ErrDuplicateEmail; while local only the local store
// is consulted.
func (f *Facade) AddUser(ctx context.Context, in models.NewUser) (*models.User, error) {
	if f.useRemote() {
		u, err := f.remote.Register(ctx, in)
		if err == nil {
			return u, nil
		}
		if errors.Is(err, common.ErrDuplicateEmail) {
			return nil, common.ErrDuplicateEmail
		}
		f.degrade(ctx, "add_user", err)
	}

	u := models.User{
		ID:            models.NewID(),
		Name:          in.Name,
		Email:         in.Email,
		Password:      in.Password,
		CompactMobile: in.CompactMobile,
		CreatedAt:     f.now(),
	}
	err := dbx.WithTx(ctx, f.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := f.userRepo(tx)
		_, err := repo.GetByEmail(ctx, u.Email)
		switch {
		case err == nil:
			return common.ErrDuplicateEmail
		case !errors.Is(err, common.ErrNotFound):
			return err
		}
		return repo.Create(ctx, &u)
	})
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			return nil, common.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("add user: %w", err)
	}
	return &u, nil
}

// GetUserByEmail returns the user or nil when there is none.
func (f *Facade) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.useRemote() {
		u, err := f.remote.GetUser(ctx, email)
		if err == nil {
			return u, nil
		}
		if errors.Is(err, client.ErrNotFound) {
			return nil, nil
		}
		f.degrade(ctx, "get_user", err)
	}

	u, err := f.userRepo(f.db).GetByEmail(ctx, email)
	if errors.Is(err, common.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// UpdateUserLogin records a successful login. The server does this itself
// during /login, so while remote it returns (nil, nil).
func (f *Facade) UpdateUserLogin(ctx context.Context, email string) (*models.User, error) {
	if f.useRemote() {
		return nil, nil
	}

	u, err := f.userRepo(f.db).RecordLogin(ctx, email, f.now())
	if errors.Is(err, common.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update user login: %w", err)
	}
	return u, nil
}

// GetAllUsers returns every user in insertion order.
func (f *Facade) GetAllUsers(ctx context.Context) ([]models.User, error) {
	if f.useRemote() {
		list, err := f.remote.ListUsers(ctx)
		if err == nil {
			return list, nil
		}
		f.degrade(ctx, "get_all_users", err)
	}

	list, err := f.userRepo(f.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return list, nil
}

// VerifyUser checks an email/password pair and returns the user on success
// or nil when the pair is wrong. While remote the server verifies the
// password (and records the login); while local the stored hash is checked
// and the caller records the login with UpdateUserLogin.
func (f *Facade) VerifyUser(ctx context.Context, email, password string) (*models.User, error) {
	if f.useRemote() {
		u, err := f.remote.Login(ctx, email, password)
		if err == nil {
			return u, nil
		}
		f.degrade(ctx, "verify_user", err)
	}

	u, err := f.GetUserByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, err
	}
	ok, err := cryptox.VerifyPassword([]byte(password), u.Password)
	if err != nil {
		// Users imported from a remote export carry no hash.
		f.log.Warn(ctx, "stored password hash unusable", "email", email, "err", err)
		return nil, nil
	}
	if !ok {
		return nil, nil
	}
	return u, nil
}
