package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/coachdesk/internal/common"
	"github.com/dmitrijs2005/coachdesk/internal/logging"
	"github.com/dmitrijs2005/coachdesk/internal/models"
)

type UserService interface {
	Register(ctx context.Context, in models.NewUser) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	Get(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

type EnrollmentService interface {
	Enroll(ctx context.Context, in models.NewEnrollment) (*models.Enrollment, error)
	ListByEmail(ctx context.Context, email string) ([]models.Enrollment, error)
	List(ctx context.Context) ([]models.Enrollment, error)
}

type AdminService interface {
	Login(ctx context.Context, email, password string) (string, error)
	Authorize(token string) (string, error)
}

type DatasetService interface {
	Export(ctx context.Context) (*models.Dataset, error)
	Clear(ctx context.Context) error
}

// Handler serves the JSON API.
type Handler struct {
	users       UserService
	enrollments EnrollmentService
	admins      AdminService
	dataset     DatasetService
	metrics     *Metrics
	logger      logging.Logger
}

func NewHandler(us UserService, es EnrollmentService, as AdminService, ds DatasetService, m *Metrics, l logging.Logger) *Handler {
	return &Handler{users: us, enrollments: es, admins: as, dataset: ds, metrics: m, logger: l}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// publicUser drops the password hash before a user leaves the server.
func publicUser(u models.User) models.User {
	u.Password = ""
	return u
}

func emailParam(r *http.Request) string {
	raw := chi.URLParam(r, "email")
	if email, err := url.PathUnescape(raw); err == nil {
		return email
	}
	return raw
}

func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.logger.Error(r.Context(), msg, "err", err, "path", r.URL.Path)
	respondError(w, http.StatusInternalServerError, msg)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	list, err := h.users.List(r.Context())
	if err != nil {
		h.internalError(w, r, "failed to list users", err)
		return
	}
	for i := range list {
		list[i] = publicUser(list[i])
	}
	h.respondJSON(w, r, http.StatusOK, map[string]any{"users": list})
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.users.Get(r.Context(), emailParam(r))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			respondError(w, http.StatusNotFound, "user not found")
			return
		}
		h.internalError(w, r, "failed to fetch user", err)
		return
	}
	h.respondJSON(w, r, http.StatusOK, map[string]any{"user": publicUser(*u)})
}

func (h *Handler) userEnrollments(w http.ResponseWriter, r *http.Request) {
	list, err := h.enrollments.ListByEmail(r.Context(), emailParam(r))
	if err != nil {
		h.internalError(w, r, "failed to list enrollments", err)
		return
	}
	h.respondJSON(w, r, http.StatusOK, map[string]any{"enrollments": list})
}

func (h *Handler) listEnrollments(w http.ResponseWriter, r *http.Request) {
	list, err := h.enrollments.List(r.Context())
	if err != nil {
		h.internalError(w, r, "failed to list enrollments", err)
		return
	}
	h.respondJSON(w, r, http.StatusOK, map[string]any{"enrollments": list})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var in models.NewUser
	if !decode(w, r, &in) {
		return
	}
	u, err := h.users.Register(r.Context(), in)
	switch {
	case errors.Is(err, common.ErrValidation):
		respondError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, common.ErrDuplicateEmail):
		respondError(w, http.StatusConflict, "email already registered")
		return
	case err != nil:
		h.internalError(w, r, "failed to create user", err)
		return
	}
	h.metrics.registrations.Inc()
	h.respondJSON(w, r, http.StatusCreated, publicUser(*u))
}

// login answers 200 either way; bad credentials are {"success":false} so
// the client does not mistake them for an outage.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var in credentials
	if !decode(w, r, &in) {
		return
	}
	u, err := h.users.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			h.metrics.recordLogin("user", false)
			h.respondJSON(w, r, http.StatusOK, map[string]any{"success": false})
			return
		}
		h.internalError(w, r, "failed to log in", err)
		return
	}
	h.metrics.recordLogin("user", true)
	h.respondJSON(w, r, http.StatusOK, map[string]any{"success": true, "user": publicUser(*u)})
}

func (h *Handler) enroll(w http.ResponseWriter, r *http.Request) {
	var in models.NewEnrollment
	if !decode(w, r, &in) {
		return
	}
	e, err := h.enrollments.Enroll(r.Context(), in)
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.internalError(w, r, "failed to save enrollment", err)
		return
	}
	h.metrics.enrollments.Inc()
	h.respondJSON(w, r, http.StatusCreated, e)
}

func (h *Handler) adminLogin(w http.ResponseWriter, r *http.Request) {
	var in credentials
	if !decode(w, r, &in) {
		return
	}
	token, err := h.admins.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			h.metrics.recordLogin("admin", false)
			h.respondJSON(w, r, http.StatusOK, map[string]any{"success": false})
			return
		}
		h.internalError(w, r, "failed to log in", err)
		return
	}
	h.metrics.recordLogin("admin", true)
	h.respondJSON(w, r, http.StatusOK, map[string]any{"success": true, "token": token})
}

// authorize checks an Authorization header of the form "Bearer <jwt>" and
// answers 401 itself when it does not hold an admin token.
func (h *Handler) authorize(w http.ResponseWriter, header string) (string, bool) {
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		respondError(w, http.StatusUnauthorized, "missing bearer token")
		return "", false
	}
	email, err := h.admins.Authorize(token)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "invalid token")
		return "", false
	}
	return email, true
}

// adminSession reports who a bearer token belongs to.
func (h *Handler) adminSession(w http.ResponseWriter, r *http.Request) {
	email, ok := h.authorize(w, r.Header.Get("Authorization"))
	if !ok {
		return
	}
	h.respondJSON(w, r, http.StatusOK, map[string]any{"email": email})
}

// checkBearer rejects requests carrying an Authorization header that is not
// a valid admin token. Requests without the header pass, as the CLI sends
// none.
func (h *Handler) checkBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			next.ServeHTTP(w, r)
			return
		}
		email, ok := h.authorize(w, header)
		if !ok {
			h.logger.Warn(r.Context(), "rejected admin request", "path", r.URL.Path)
			return
		}
		h.logger.Debug(r.Context(), "admin request", "path", r.URL.Path, "admin", email)
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	doc, err := h.dataset.Export(r.Context())
	if err != nil {
		h.internalError(w, r, "failed to export", err)
		return
	}
	h.respondJSON(w, r, http.StatusOK, doc)
}

func (h *Handler) clear(w http.ResponseWriter, r *http.Request) {
	if err := h.dataset.Clear(r.Context()); err != nil {
		h.internalError(w, r, "failed to clear", err)
		return
	}
	h.logger.Info(r.Context(), "dataset cleared")
	h.respondJSON(w, r, http.StatusOK, map[string]any{"success": true})
}
