package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/coachdesk/internal/common"
	"github.com/dmitrijs2005/coachdesk/internal/models"
)

func newServer(t *testing.T, h http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL+"/api/", time.Second)
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestPing_OK(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/users", r.URL.Path)
		writeJSON(t, w, map[string]any{"users": []any{}})
	})

	require.NoError(t, c.Ping(context.Background()))
}

func TestPing_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)
	c := NewHTTPClient(srv.URL, 50*time.Millisecond)

	start := time.Now()
	err := c.Ping(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
	assert.Less(t, time.Since(start), time.Second)
}

func TestPing_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	err := NewHTTPClient(url, time.Second).Ping(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestNewHTTPClient_DefaultTimeout(t *testing.T) {
	c := NewHTTPClient("http://localhost:5000/api", 0)
	assert.Equal(t, DefaultTimeout, c.timeout)
	assert.Equal(t, "http://localhost:5000/api", c.baseURL)
}

func TestRegister_SendsPayload(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/register", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, map[string]string{
			"name": "Asha", "email": "asha@example.com", "password": "h", "mobile": "9876543210",
		}, in)

		writeJSON(t, w, models.User{ID: "u1", Name: in["name"], Email: in["email"], CompactMobile: in["mobile"]})
	})

	u, err := c.Register(context.Background(), models.NewUser{
		Name: "Asha", Email: "asha@example.com", Password: "h", CompactMobile: "9876543210",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ID("u1"), u.ID)
	assert.Equal(t, "9876543210", u.CompactMobile)
}

func TestRegister_Conflict(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Email already registered", http.StatusConflict)
	})

	_, err := c.Register(context.Background(), models.NewUser{Email: "dup@example.com"})
	require.ErrorIs(t, err, common.ErrDuplicateEmail)
	require.ErrorIs(t, err, ErrUnavailable)

	var he *HTTPError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, http.StatusConflict, he.Status)
	assert.Equal(t, "Email already registered", he.Message)
}

func TestHTTPError_EmptyBodyUsesStatus(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.ListUsers(context.Background())
	var he *HTTPError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, "HTTP 502", he.Message)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestGetUser_EscapesEmailAndMaps404(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/user/a+b@x.io" {
			writeJSON(t, w, map[string]any{"user": models.User{Email: "a+b@x.io"}})
			return
		}
		http.Error(w, "User not found", http.StatusNotFound)
	})
	ctx := context.Background()

	u, err := c.GetUser(ctx, "a+b@x.io")
	require.NoError(t, err)
	assert.Equal(t, "a+b@x.io", u.Email)

	_, err = c.GetUser(ctx, "ghost@x.io")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetUser_NullUserIsNotFound(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{"user": nil})
	})

	_, err := c.GetUser(context.Background(), "a@x.io")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListEnrollments_MissingArrayIsEmpty(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{})
	})
	ctx := context.Background()

	all, err := c.ListEnrollments(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	mine, err := c.ListEnrollmentsByEmail(ctx, "a@x.io")
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestLogin(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		var in credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		if in.Password != "secret" {
			writeJSON(t, w, loginResponse{Success: false})
			return
		}
		writeJSON(t, w, loginResponse{Success: true, User: &models.User{Email: in.Email, LoginCount: 3}})
	})
	ctx := context.Background()

	u, err := c.Login(ctx, "a@x.io", "secret")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, 3, u.LoginCount)

	u, err = c.Login(ctx, "a@x.io", "wrong")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestAdminLogin(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/login", r.URL.Path)
		writeJSON(t, w, adminLoginResponse{Success: true, Token: "jwt"})
	})

	ok, token, err := c.AdminLogin(context.Background(), "admin@x.io", "pw")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "jwt", token)
}

func TestExport_ReturnsRawBody(t *testing.T) {
	const doc = `{"users":[],"enrollments":[],"admins":[{"email":"admin@x.io"}],"export_date":"2025-01-01T00:00:00Z"}`
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, doc)
	})

	got, err := c.Export(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, doc, string(got))
}

func TestExport_InvalidJSON(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "<html>")
	})

	_, err := c.Export(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestClear(t *testing.T) {
	var called bool
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, http.MethodPost, r.Method)
		writeJSON(t, w, successResponse{Success: true})
	})

	require.NoError(t, c.Clear(context.Background()))
	assert.True(t, called)
}

func TestClear_NotAcknowledged(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, successResponse{Success: false})
	})

	err := c.Clear(context.Background())
	require.ErrorIs(t, err, ErrNotAcknowledged)
	assert.NotErrorIs(t, err, ErrUnavailable)
}

func TestDecodeFailureIsUnavailable(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "not json")
	})

	_, err := c.ListUsers(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}
