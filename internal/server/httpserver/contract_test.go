package httpserver

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/coachdesk/internal/client/client"
	"github.com/dmitrijs2005/coachdesk/internal/common"
	"github.com/dmitrijs2005/coachdesk/internal/models"
)

// The CLI's HTTP client must understand every answer this router gives.
func TestRouter_ServesHTTPClient(t *testing.T) {
	env := newTestEnv(t)
	srv := httptest.NewServer(env.router)
	t.Cleanup(srv.Close)

	ctx := context.Background()
	c := client.NewHTTPClient(srv.URL+"/api", time.Second)

	require.NoError(t, c.Ping(ctx))

	u, err := c.Register(ctx, models.NewUser{Name: "Alice", Email: "alice@example.com", Password: "secret", CompactMobile: "9876543210"})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)

	_, err = c.Register(ctx, models.NewUser{Name: "Alice", Email: "alice@example.com", Password: "secret"})
	require.ErrorIs(t, err, common.ErrDuplicateEmail)

	got, err := c.Login(ctx, "alice@example.com", "secret")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 1, got.LoginCount)

	got, err = c.Login(ctx, "alice@example.com", "wrong")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = c.GetUser(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)

	_, err = c.GetUser(ctx, "ghost@example.com")
	require.ErrorIs(t, err, client.ErrNotFound)

	e, err := c.Enroll(ctx, models.NewEnrollment{FullName: "Alice", Email: "alice@example.com", Mobile: "9876543210", Course: "Go"})
	require.NoError(t, err)
	assert.Equal(t, "Go", e.Course)

	mine, err := c.ListEnrollmentsByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	all, err := c.ListEnrollments(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	users, err := c.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	ok, token, err := c.AdminLogin(ctx, "admin@gmail.com", "Admin@123")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotEmpty(t, token)

	ok, _, err = c.AdminLogin(ctx, "admin@gmail.com", "nope")
	require.NoError(t, err)
	assert.False(t, ok)

	raw, err := c.Export(ctx)
	require.NoError(t, err)
	var ds models.Dataset
	require.NoError(t, json.Unmarshal(raw, &ds))
	assert.Len(t, ds.Users, 1)
	assert.Len(t, ds.Enrollments, 1)

	require.NoError(t, c.Clear(ctx))
	users, err = c.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}
