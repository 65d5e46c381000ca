package services

import (
	"context"

	"github.com/pranayk/reflections/internal/client/api"
	"github.com/pranayk/reflections/internal/client/session"
	"github.com/pranayk/reflections/internal/client/store"
	"github.com/pranayk/reflections/internal/logging"
)

// AuthService drives the session guard.
//
// Contract:
//   - VerifyStartup: one verification round-trip at application start;
//     any failure resolves to anonymous.
//   - Login: authenticate; the session credential is carried by the gateway's
//     cookie jar, never by this service.
//   - Logout: end the session and clear admin-scoped cached data so no draft
//     content survives into an anonymous session.
type AuthService interface {
	VerifyStartup(ctx context.Context) bool
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client api.Client
	guard  *session.Guard
	admin  *store.Store
	log    logging.Logger
}

func NewAuthService(client api.Client, guard *session.Guard, admin *store.Store, log logging.Logger) AuthService {
	return &authService{client: client, guard: guard, admin: admin, log: log}
}

// VerifyStartup resolves Unknown into Authenticated or Anonymous. A server
// that cannot be reached counts as anonymous; the error is logged, not
// surfaced, since the public site works without a session.
func (a *authService) VerifyStartup(ctx context.Context) bool {
	a.guard.BeginVerify()
	ok, err := a.client.Verify(ctx)
	if err != nil {
		a.log.Warn(ctx, "session verification failed", "error", err)
		ok = false
	}
	a.guard.FinishVerify(ok)
	return ok
}

func (a *authService) Login(ctx context.Context, username, password string) error {
	if err := a.client.Login(ctx, username, password); err != nil {
		a.log.Warn(ctx, "login failed", "error", err)
		return err
	}
	a.guard.MarkAuthenticated()
	a.log.Info(ctx, "login successful", "username", username)
	return nil
}

// Logout always drops the local session state and admin cache, even when the
// server call fails: a client that cannot reach the server must still stop
// showing privileged content.
func (a *authService) Logout(ctx context.Context) error {
	err := a.client.Logout(ctx)
	if err != nil {
		a.log.Warn(ctx, "logout call failed", "error", err)
	}
	a.guard.MarkAnonymous()
	a.admin.Clear()
	return err
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
