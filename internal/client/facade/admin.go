package facade

import (
	"context"
	"crypto/subtle"

	"github.com/dmitrijs2005/coachdesk/internal/models"
)

// VerifyAdmin returns the admin on a matching credential and nil otherwise.
// While remote the server decides; while local only the configured fallback
// credential is accepted.
func (f *Facade) VerifyAdmin(ctx context.Context, email, password string) (*models.Admin, error) {
	if f.useRemote() {
		ok, _, err := f.remote.AdminLogin(ctx, email, password)
		if err == nil {
			if !ok {
				return nil, nil
			}
			return &models.Admin{Email: email}, nil
		}
		f.degrade(ctx, "verify_admin", err)
	}

	if f.adminEmail == "" {
		return nil, nil
	}
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(f.adminEmail)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(f.adminPassword)) == 1
	if !emailOK || !passOK {
		return nil, nil
	}
	return &models.Admin{Email: email}, nil
}
