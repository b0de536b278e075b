package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/coachdesk/internal/models"
)

const aliceJSON = `{"name":"Alice","email":"alice@example.com","password":"secret","mobile":"+91 98765-43210"}`

func TestRegister(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/register", aliceJSON)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var u models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &u))
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, "+91-9876543210", u.CompactMobile)
	assert.Empty(t, u.Password)
	assert.NotContains(t, rec.Body.String(), "argon2")
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		text   string
	}{
		{"invalid json", `{`, http.StatusBadRequest, "invalid JSON payload"},
		{"missing fields", `{"email":"bob@example.com"}`, http.StatusBadRequest, "validation"},
		{"duplicate", aliceJSON, http.StatusConflict, "email already registered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			require.Equal(t, http.StatusCreated, env.do(http.MethodPost, "/api/register", aliceJSON).Code)

			rec := env.do(http.MethodPost, "/api/register", tt.body)
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, strings.ToLower(rec.Body.String()), tt.text)
		})
	}
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	env.do(http.MethodPost, "/api/register", aliceJSON)

	t.Run("success", func(t *testing.T) {
		rec := env.do(http.MethodPost, "/api/login", `{"email":"alice@example.com","password":"secret"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var out struct {
			Success bool         `json:"success"`
			User    *models.User `json:"user"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		assert.True(t, out.Success)
		require.NotNil(t, out.User)
		assert.Equal(t, 1, out.User.LoginCount)
		assert.Empty(t, out.User.Password)
	})

	t.Run("bad credentials answer 200", func(t *testing.T) {
		rec := env.do(http.MethodPost, "/api/login", `{"email":"alice@example.com","password":"nope"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":false}`, rec.Body.String())
	})
}

func TestGetUser(t *testing.T) {
	env := newTestEnv(t)
	env.do(http.MethodPost, "/api/register", aliceJSON)

	rec := env.do(http.MethodGet, "/api/user/alice@example.com", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user":`)
	assert.NotContains(t, rec.Body.String(), "password")

	rec = env.do(http.MethodGet, "/api/user/alice%40example.com", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodGet, "/api/user/ghost@example.com", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "user not found\n", rec.Body.String())
}

func TestListUsers_InternalError(t *testing.T) {
	env := newTestEnv(t)
	env.users.fail = errBoom

	rec := env.do(http.MethodGet, "/api/users", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestEnrollAndList(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/enroll", `{"fullName":"Alice","email":"alice@example.com","mobile":"9876543210","course":"Go"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var e models.Enrollment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	assert.Equal(t, "Go", e.Course)

	rec = env.do(http.MethodPost, "/api/enroll", `{"fullName":"Bob"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(http.MethodGet, "/api/user/alice@example.com/enrollments", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var out struct {
		Enrollments []models.Enrollment `json:"enrollments"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Len(t, out.Enrollments, 1)

	rec = env.do(http.MethodGet, "/api/user/bob@example.com/enrollments", "")
	assert.JSONEq(t, `{"enrollments":[]}`, rec.Body.String())

	rec = env.do(http.MethodGet, "/api/enrollments", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Len(t, out.Enrollments, 1)
}

func TestAdminLoginAndSession(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/admin/login", `{"email":"admin@gmail.com","password":"Admin@123"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"token":"token-1"}`, rec.Body.String())

	rec = env.do(http.MethodPost, "/api/admin/login", `{"email":"admin@gmail.com","password":"wrong"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":false}`, rec.Body.String())

	rec = env.do(http.MethodGet, "/api/admin/session", "", "Authorization", "Bearer token-1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"email":"admin@gmail.com"}`, rec.Body.String())

	assert.Equal(t, http.StatusUnauthorized, env.do(http.MethodGet, "/api/admin/session", "").Code)
	assert.Equal(t, http.StatusUnauthorized,
		env.do(http.MethodGet, "/api/admin/session", "", "Authorization", "Bearer other").Code)
}

func TestExportAndClear(t *testing.T) {
	env := newTestEnv(t)
	env.do(http.MethodPost, "/api/register", aliceJSON)

	rec := env.do(http.MethodGet, "/api/export", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var ds models.Dataset
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ds))
	assert.Len(t, ds.Users, 1)
	assert.Equal(t, []models.Admin{{Email: "admin@gmail.com"}}, ds.Admins)
	assert.NotContains(t, rec.Body.String(), "password")

	rec = env.do(http.MethodPost, "/api/clear", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	assert.True(t, env.dataset.cleared)
	assert.Empty(t, env.users.users)
}

func TestHealthAndCORS(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	rec = env.do(http.MethodOptions, "/api/register", "",
		"Origin", "http://localhost:3000",
		"Access-Control-Request-Method", http.MethodPost)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestExportAndClear_CheckBearerWhenPresent(t *testing.T) {
	tests := []struct {
		name   string
		header []string
		status int
	}{
		{"no header", nil, http.StatusOK},
		{"valid token", []string{"Authorization", "Bearer token-1"}, http.StatusOK},
		{"invalid token", []string{"Authorization", "Bearer other"}, http.StatusUnauthorized},
		{"not bearer", []string{"Authorization", "Basic abc"}, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.do(http.MethodPost, "/api/register", aliceJSON)

			rec := env.do(http.MethodGet, "/api/export", "", tt.header...)
			assert.Equal(t, tt.status, rec.Code)

			rec = env.do(http.MethodPost, "/api/clear", "", tt.header...)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.status == http.StatusOK, env.dataset.cleared)
		})
	}
}
