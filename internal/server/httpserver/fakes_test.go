package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrijs2005/coachdesk/internal/common"
	"github.com/dmitrijs2005/coachdesk/internal/logging"
	"github.com/dmitrijs2005/coachdesk/internal/models"
)

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

var errBoom = errors.New("boom")

type fakeUsers struct {
	users []models.User
	fail  error
}

func (f *fakeUsers) Register(_ context.Context, in models.NewUser) (*models.User, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, common.ErrValidation
	}
	for _, u := range f.users {
		if u.Email == in.Email {
			return nil, common.ErrDuplicateEmail
		}
	}
	u := models.User{
		ID:            models.NewID(),
		Name:          in.Name,
		Email:         in.Email,
		Password:      "$argon2id$stored",
		CompactMobile: models.CompactMobile(in.CompactMobile),
		CreatedAt:     fixedNow,
	}
	f.users = append(f.users, u)
	return &u, nil
}

func (f *fakeUsers) Login(_ context.Context, email, password string) (*models.User, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	for i, u := range f.users {
		if u.Email == email && password == "secret" {
			f.users[i].LoginCount++
			f.users[i].LastLogin = &fixedNow
			out := f.users[i]
			return &out, nil
		}
	}
	return nil, common.ErrInvalidCredentials
}

func (f *fakeUsers) Get(_ context.Context, email string) (*models.User, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	for _, u := range f.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeUsers) List(context.Context) ([]models.User, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	return append([]models.User(nil), f.users...), nil
}

type fakeEnrollments struct {
	items []models.Enrollment
}

func (f *fakeEnrollments) Enroll(_ context.Context, in models.NewEnrollment) (*models.Enrollment, error) {
	if in.FullName == "" || in.Email == "" || in.Course == "" {
		return nil, common.ErrValidation
	}
	e := models.Enrollment{
		ID:            models.NewID(),
		FullName:      in.FullName,
		Email:         in.Email,
		Mobile:        in.Mobile,
		CompactMobile: models.CompactMobile(in.Mobile),
		Course:        in.Course,
		Timestamp:     fixedNow,
	}
	f.items = append(f.items, e)
	return &e, nil
}

func (f *fakeEnrollments) ListByEmail(_ context.Context, email string) ([]models.Enrollment, error) {
	out := []models.Enrollment{}
	for _, e := range f.items {
		if e.Email == email {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEnrollments) List(context.Context) ([]models.Enrollment, error) {
	return append([]models.Enrollment{}, f.items...), nil
}

type fakeAdmins struct{}

func (fakeAdmins) Login(_ context.Context, email, password string) (string, error) {
	if email == "admin@gmail.com" && password == "Admin@123" {
		return "token-1", nil
	}
	return "", common.ErrInvalidCredentials
}

func (fakeAdmins) Authorize(token string) (string, error) {
	if token == "token-1" {
		return "admin@gmail.com", nil
	}
	return "", common.ErrInvalidToken
}

type fakeDataset struct {
	users       *fakeUsers
	enrollments *fakeEnrollments
	cleared     bool
}

func (f *fakeDataset) Export(context.Context) (*models.Dataset, error) {
	users := make([]models.User, len(f.users.users))
	for i, u := range f.users.users {
		u.Password = ""
		users[i] = u
	}
	return &models.Dataset{
		Users:       users,
		Enrollments: append([]models.Enrollment{}, f.enrollments.items...),
		Admins:      []models.Admin{{Email: "admin@gmail.com"}},
		ExportDate:  fixedNow,
	}, nil
}

func (f *fakeDataset) Clear(context.Context) error {
	f.users.users = nil
	f.enrollments.items = nil
	f.cleared = true
	return nil
}

type testEnv struct {
	users       *fakeUsers
	enrollments *fakeEnrollments
	dataset     *fakeDataset
	metrics     *Metrics
	router      http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	us := &fakeUsers{}
	es := &fakeEnrollments{}
	ds := &fakeDataset{users: us, enrollments: es}
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	h := NewHandler(us, es, fakeAdmins{}, ds, m, logging.Discard())
	return &testEnv{
		users:       us,
		enrollments: es,
		dataset:     ds,
		metrics:     m,
		router:      NewRouter(h, []string{"*"}, reg),
	}
}

func (e *testEnv) do(method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}
