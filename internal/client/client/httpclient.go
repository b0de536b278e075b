package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/coachdesk/internal/models"
)

// DefaultTimeout bounds every remote call unless NewHTTPClient is given
// another value.
const DefaultTimeout = 5 * time.Second

// maxErrorBody caps how much of a failed response is kept as the message.
const maxErrorBody = 4 << 10

// HTTPClient talks to the JSON API rooted at baseURL.
type HTTPClient struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
}

// NewHTTPClient returns a client for baseURL (e.g. http://localhost:5000/api).
// A non-positive timeout selects DefaultTimeout.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		http:    &http.Client{},
	}
}

type usersResponse struct {
	Users []models.User `json:"users"`
}

type userResponse struct {
	User *models.User `json:"user"`
}

type enrollmentsResponse struct {
	Enrollments []models.Enrollment `json:"enrollments"`
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool         `json:"success"`
	User    *models.User `json:"user"`
}

type adminLoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

type successResponse struct {
	Success bool `json:"success"`
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, "/users", nil)
	return err
}

func (c *HTTPClient) Register(ctx context.Context, u models.NewUser) (*models.User, error) {
	var out models.User
	if err := c.call(ctx, http.MethodPost, "/register", u, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.User, error) {
	var out loginResponse
	if err := c.call(ctx, http.MethodPost, "/login", credentials{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	if !out.Success || out.User == nil {
		return nil, nil
	}
	return out.User, nil
}

func (c *HTTPClient) GetUser(ctx context.Context, email string) (*models.User, error) {
	var out userResponse
	if err := c.call(ctx, http.MethodGet, "/user/"+url.PathEscape(email), nil, &out); err != nil {
		return nil, err
	}
	if out.User == nil {
		return nil, ErrNotFound
	}
	return out.User, nil
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var out usersResponse
	if err := c.call(ctx, http.MethodGet, "/users", nil, &out); err != nil {
		return nil, err
	}
	if out.Users == nil {
		return []models.User{}, nil
	}
	return out.Users, nil
}

func (c *HTTPClient) Enroll(ctx context.Context, e models.NewEnrollment) (*models.Enrollment, error) {
	var out models.Enrollment
	if err := c.call(ctx, http.MethodPost, "/enroll", e, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListEnrollmentsByEmail(ctx context.Context, email string) ([]models.Enrollment, error) {
	return c.listEnrollments(ctx, "/user/"+url.PathEscape(email)+"/enrollments")
}

func (c *HTTPClient) ListEnrollments(ctx context.Context) ([]models.Enrollment, error) {
	return c.listEnrollments(ctx, "/enrollments")
}

func (c *HTTPClient) listEnrollments(ctx context.Context, path string) ([]models.Enrollment, error) {
	var out enrollmentsResponse
	if err := c.call(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	if out.Enrollments == nil {
		return []models.Enrollment{}, nil
	}
	return out.Enrollments, nil
}

func (c *HTTPClient) AdminLogin(ctx context.Context, email, password string) (bool, string, error) {
	var out adminLoginResponse
	if err := c.call(ctx, http.MethodPost, "/admin/login", credentials{Email: email, Password: password}, &out); err != nil {
		return false, "", err
	}
	return out.Success, out.Token, nil
}

func (c *HTTPClient) Export(ctx context.Context) ([]byte, error) {
	body, err := c.do(ctx, http.MethodGet, "/export", nil)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: export is not valid JSON", ErrUnavailable)
	}
	return body, nil
}

func (c *HTTPClient) Clear(ctx context.Context) error {
	var out successResponse
	if err := c.call(ctx, http.MethodPost, "/clear", nil, &out); err != nil {
		return err
	}
	if !out.Success {
		return fmt.Errorf("%w: clear", ErrNotAcknowledged)
	}
	return nil
}

// call sends in as JSON (when non-nil) and decodes the response into out.
func (c *HTTPClient) call(ctx context.Context, method, path string, in, out any) error {
	var payload []byte
	if in != nil {
		var err error
		if payload, err = json.Marshal(in); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	body, err := c.do(ctx, method, path, payload)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrUnavailable, path, err)
	}
	return nil
}

// do performs one bounded request. Transport failures and timeouts are
// reported as ErrUnavailable, non-2xx answers as *HTTPError.
func (c *HTTPClient) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		text := strings.TrimSpace(string(msg))
		if text == "" {
			text = fmt.Sprintf("HTTP %d", resp.StatusCode)
		}
		return nil, &HTTPError{Status: resp.StatusCode, Message: text}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrUnavailable, path, err)
	}
	return data, nil
}
