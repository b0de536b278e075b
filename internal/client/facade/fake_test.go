package facade

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/coachdesk/internal/client/client"
	"github.com/dmitrijs2005/coachdesk/internal/models"
)

// fakeRemote is an in-memory client.Client. Setting down makes every call
// fail with client.ErrUnavailable.
type fakeRemote struct {
	mu    sync.Mutex
	down  bool
	calls map[string]int

	users        []models.User
	enrollments  []models.Enrollment
	exportDoc    []byte
	adminOK      bool
	clearRefused bool
	loginUser    *models.User
}

var _ client.Client = (*fakeRemote)(nil)

func newFakeRemote() *fakeRemote {
	return &fakeRemote{calls: map[string]int{}}
}

func (r *fakeRemote) hit(op string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls[op]++
	if r.down {
		return client.ErrUnavailable
	}
	return nil
}

func (r *fakeRemote) count(op string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[op]
}

func (r *fakeRemote) setDown(down bool) {
	r.mu.Lock()
	r.down = down
	r.mu.Unlock()
}

func (r *fakeRemote) Ping(ctx context.Context) error { return r.hit("ping") }

func (r *fakeRemote) Register(ctx context.Context, u models.NewUser) (*models.User, error) {
	if err := r.hit("register"); err != nil {
		return nil, err
	}
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return nil, &client.HTTPError{Status: 409, Message: "Email already registered"}
		}
	}
	created := models.User{ID: models.NewID(), Name: u.Name, Email: u.Email, CompactMobile: u.CompactMobile}
	r.users = append(r.users, created)
	return &created, nil
}

func (r *fakeRemote) Login(ctx context.Context, email, password string) (*models.User, error) {
	if err := r.hit("login"); err != nil {
		return nil, err
	}
	return r.loginUser, nil
}

func (r *fakeRemote) GetUser(ctx context.Context, email string) (*models.User, error) {
	if err := r.hit("get_user"); err != nil {
		return nil, err
	}
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, &client.HTTPError{Status: 404, Message: "User not found"}
}

func (r *fakeRemote) ListUsers(ctx context.Context) ([]models.User, error) {
	if err := r.hit("list_users"); err != nil {
		return nil, err
	}
	return append([]models.User{}, r.users...), nil
}

func (r *fakeRemote) Enroll(ctx context.Context, e models.NewEnrollment) (*models.Enrollment, error) {
	if err := r.hit("enroll"); err != nil {
		return nil, err
	}
	created := models.Enrollment{ID: models.NewID(), FullName: e.FullName, Email: e.Email, Mobile: e.Mobile, Course: e.Course}
	r.enrollments = append(r.enrollments, created)
	return &created, nil
}

func (r *fakeRemote) ListEnrollmentsByEmail(ctx context.Context, email string) ([]models.Enrollment, error) {
	if err := r.hit("list_enrollments_by_email"); err != nil {
		return nil, err
	}
	out := []models.Enrollment{}
	for _, e := range r.enrollments {
		if e.Email == email {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeRemote) ListEnrollments(ctx context.Context) ([]models.Enrollment, error) {
	if err := r.hit("list_enrollments"); err != nil {
		return nil, err
	}
	return append([]models.Enrollment{}, r.enrollments...), nil
}

func (r *fakeRemote) AdminLogin(ctx context.Context, email, password string) (bool, string, error) {
	if err := r.hit("admin_login"); err != nil {
		return false, "", err
	}
	return r.adminOK, "token", nil
}

func (r *fakeRemote) Export(ctx context.Context) ([]byte, error) {
	if err := r.hit("export"); err != nil {
		return nil, err
	}
	return r.exportDoc, nil
}

func (r *fakeRemote) Clear(ctx context.Context) error {
	if err := r.hit("clear"); err != nil {
		return err
	}
	if r.clearRefused {
		return client.ErrNotAcknowledged
	}
	r.users, r.enrollments = nil, nil
	return nil
}
