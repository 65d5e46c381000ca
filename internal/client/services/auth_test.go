package services

import (
	"context"
	"testing"

	"github.com/pranayk/reflections/internal/client/api"
	"github.com/pranayk/reflections/internal/client/models"
	"github.com/pranayk/reflections/internal/client/session"
	"github.com/stretchr/testify/require"
)

func TestAuthService_VerifyStartup_ValidSession(t *testing.T) {
	f := newFixture(t)
	f.client.VerifyRet = true

	require.True(t, f.auth.VerifyStartup(context.Background()))
	require.Equal(t, session.StateAuthenticated, f.guard.State())
}

func TestAuthService_VerifyStartup_NoSession(t *testing.T) {
	f := newFixture(t)
	f.client.VerifyRet = false

	require.False(t, f.auth.VerifyStartup(context.Background()))
	require.Equal(t, session.StateAnonymous, f.guard.State())
}

func TestAuthService_VerifyStartup_UnreachableServerIsAnonymous(t *testing.T) {
	f := newFixture(t)
	f.client.VerifyErr = &api.Error{Kind: api.ErrUnavailable, Message: "cannot reach server"}

	require.False(t, f.auth.VerifyStartup(context.Background()))
	require.Equal(t, session.StateAnonymous, f.guard.State())
}

func TestAuthService_Login(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.auth.Login(context.Background(), "admin", "secret"))
	require.True(t, f.guard.LoggedIn())
}

func TestAuthService_Login_BadCredentials(t *testing.T) {
	f := newFixture(t)
	f.client.LoginErr = authRequired("Invalid credentials")

	err := f.auth.Login(context.Background(), "admin", "wrong")
	require.ErrorIs(t, err, api.ErrAuthRequired)
	require.False(t, f.guard.LoggedIn())
}

func TestAuthService_Logout_ClearsAdminCache(t *testing.T) {
	f := newFixture(t).loggedIn(t)
	f.admin.ReplaceAll([]models.Reflection{{ID: "r1"}, {ID: "r2"}})

	require.NoError(t, f.auth.Logout(context.Background()))
	require.Equal(t, session.StateAnonymous, f.guard.State())
	require.Zero(t, f.admin.Len())
}

func TestAuthService_Logout_ServerErrorStillDropsLocalState(t *testing.T) {
	f := newFixture(t).loggedIn(t)
	f.admin.ReplaceAll([]models.Reflection{{ID: "r1"}})
	f.client.LogoutErr = &api.Error{Kind: api.ErrUnavailable, Message: "cannot reach server"}

	err := f.auth.Logout(context.Background())
	require.ErrorIs(t, err, api.ErrUnavailable)
	require.Equal(t, session.StateAnonymous, f.guard.State())
	require.Zero(t, f.admin.Len())
}
