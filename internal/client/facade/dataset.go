package facade

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/coachdesk/internal/client/client"
	"github.com/dmitrijs2005/coachdesk/internal/common"
	"github.com/dmitrijs2005/coachdesk/internal/dbx"
	"github.com/dmitrijs2005/coachdesk/internal/models"
)

// ExportDatabase returns the dataset document as indented JSON text.
func (f *Facade) ExportDatabase(ctx context.Context) (string, error) {
	if f.useRemote() {
		raw, err := f.remote.Export(ctx)
		if err == nil {
			var buf bytes.Buffer
			if err := json.Indent(&buf, raw, "", "  "); err == nil {
				return buf.String(), nil
			}
			return string(raw), nil
		}
		f.degrade(ctx, "export_database", err)
	}

	userList, err := f.userRepo(f.db).List(ctx)
	if err != nil {
		return "", fmt.Errorf("export users: %w", err)
	}
	enrollmentList, err := f.enrollmentRepo(f.db).List(ctx)
	if err != nil {
		return "", fmt.Errorf("export enrollments: %w", err)
	}

	admins := []models.Admin{}
	if f.adminEmail != "" {
		admins = append(admins, models.Admin{Email: f.adminEmail})
	}

	data, err := json.MarshalIndent(models.Dataset{
		Users:       userList,
		Enrollments: enrollmentList,
		Admins:      admins,
		ExportDate:  f.now(),
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	return string(data), nil
}

type importDocument struct {
	Users       json.RawMessage `json:"users"`
	Enrollments json.RawMessage `json:"enrollments"`
}

// ImportDatabase replaces local users and enrollments with the ones in text.
// Each collection is replaced only when present as a JSON array; anything
// else leaves it untouched. Import is always local, whatever the mode.
// Malformed JSON yields common.ErrParse wrapping the decoder error. Valid
// JSON that is not an object imports nothing and succeeds.
func (f *Facade) ImportDatabase(ctx context.Context, text string) error {
	data := bytes.TrimSpace([]byte(text))
	var doc importDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		if json.Valid(data) && data[0] != '{' {
			return nil
		}
		return fmt.Errorf("%w: %w", common.ErrParse, err)
	}

	var (
		userList       []models.User
		enrollmentList []models.Enrollment
	)
	replaceUsers := isArray(doc.Users)
	if replaceUsers {
		if err := json.Unmarshal(doc.Users, &userList); err != nil {
			return fmt.Errorf("%w: users: %w", common.ErrParse, err)
		}
	}
	replaceEnrollments := isArray(doc.Enrollments)
	if replaceEnrollments {
		if err := json.Unmarshal(doc.Enrollments, &enrollmentList); err != nil {
			return fmt.Errorf("%w: enrollments: %w", common.ErrParse, err)
		}
	}

	err := dbx.WithTx(ctx, f.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if replaceUsers {
			if err := f.userRepo(tx).ReplaceAll(ctx, userList); err != nil {
				return err
			}
		}
		if replaceEnrollments {
			if err := f.enrollmentRepo(tx).ReplaceAll(ctx, enrollmentList); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	f.log.Info(ctx, "database imported", "users", len(userList), "enrollments", len(enrollmentList))
	return nil
}

// ClearDatabase deletes all users, enrollments and sessions. A remote that
// declines the clear keeps the facade remote and leaves local data alone.
func (f *Facade) ClearDatabase(ctx context.Context) error {
	if f.useRemote() {
		err := f.remote.Clear(ctx)
		if err == nil {
			return nil
		}
		if errors.Is(err, client.ErrNotAcknowledged) {
			return err
		}
		f.degrade(ctx, "clear_database", err)
	}

	err := dbx.WithTx(ctx, f.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := f.userRepo(tx).Clear(ctx); err != nil {
			return err
		}
		if err := f.enrollmentRepo(tx).Clear(ctx); err != nil {
			return err
		}
		return f.sessionRepo(tx).Clear(ctx)
	})
	if err != nil {
		return fmt.Errorf("clear database: %w", err)
	}
	return nil
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}
