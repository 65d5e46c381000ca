package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/pranayk/reflections/internal/client/api"
	"github.com/pranayk/reflections/internal/client/models"
	"github.com/pranayk/reflections/internal/client/session"
	"github.com/pranayk/reflections/internal/client/store"
	"github.com/pranayk/reflections/internal/logging"
	"github.com/stretchr/testify/require"
)

// fakeClient implements api.Client for unit tests. Behavior is configured
// through the Ret/Err fields; Last* fields capture arguments, Calls counts
// invocations per method.
type fakeClient struct {
	Calls map[string]int

	ListRet *models.ReflectionList
	ListErr error

	GetRet *models.Reflection
	GetErr error

	ListAdminRet *models.ReflectionList
	ListAdminErr error

	CreateRet *models.Reflection
	CreateErr error

	UpdateRet *models.Reflection
	UpdateErr error

	DeleteErr error

	SubmitContactRet *models.ContactAck
	SubmitContactErr error

	SubmissionsRet []models.ContactSubmission
	SubmissionsErr error

	LoginErr  error
	VerifyRet bool
	VerifyErr error
	LogoutErr error

	LastListCategory models.Category
	LastCreateDraft  models.Draft
	LastUpdateID     string
	LastUpdateDraft  models.Draft
	LastDeleteID     string
	LastContactReq   models.ContactRequest
}

func newFakeClient() *fakeClient {
	return &fakeClient{Calls: map[string]int{}}
}

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) List(ctx context.Context, category models.Category) (*models.ReflectionList, error) {
	f.Calls["list"]++
	f.LastListCategory = category
	return f.ListRet, f.ListErr
}

func (f *fakeClient) Get(ctx context.Context, id string) (*models.Reflection, error) {
	f.Calls["get"]++
	return f.GetRet, f.GetErr
}

func (f *fakeClient) ListAdmin(ctx context.Context) (*models.ReflectionList, error) {
	f.Calls["listAdmin"]++
	return f.ListAdminRet, f.ListAdminErr
}

func (f *fakeClient) Create(ctx context.Context, draft models.Draft) (*models.Reflection, error) {
	f.Calls["create"]++
	f.LastCreateDraft = draft
	return f.CreateRet, f.CreateErr
}

func (f *fakeClient) Update(ctx context.Context, id string, draft models.Draft) (*models.Reflection, error) {
	f.Calls["update"]++
	f.LastUpdateID = id
	f.LastUpdateDraft = draft
	return f.UpdateRet, f.UpdateErr
}

func (f *fakeClient) Delete(ctx context.Context, id string) error {
	f.Calls["delete"]++
	f.LastDeleteID = id
	return f.DeleteErr
}

func (f *fakeClient) SubmitContact(ctx context.Context, req models.ContactRequest) (*models.ContactAck, error) {
	f.Calls["submitContact"]++
	f.LastContactReq = req
	return f.SubmitContactRet, f.SubmitContactErr
}

func (f *fakeClient) ContactSubmissions(ctx context.Context) ([]models.ContactSubmission, error) {
	f.Calls["submissions"]++
	return f.SubmissionsRet, f.SubmissionsErr
}

func (f *fakeClient) Login(ctx context.Context, username, password string) error {
	f.Calls["login"]++
	return f.LoginErr
}

func (f *fakeClient) Verify(ctx context.Context) (bool, error) {
	f.Calls["verify"]++
	return f.VerifyRet, f.VerifyErr
}

func (f *fakeClient) Logout(ctx context.Context) error {
	f.Calls["logout"]++
	return f.LogoutErr
}

// ---- shared helpers ----

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, slog.LevelDebug)
}

func authRequired(msg string) error {
	return &api.Error{Kind: api.ErrAuthRequired, Message: msg}
}

type fixture struct {
	client *fakeClient
	guard  *session.Guard
	public *store.Store
	admin  *store.Store

	reflections ReflectionService
	auth        AuthService
	contact     ContactService
	dashboard   DashboardService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		client: newFakeClient(),
		guard:  session.NewGuard(),
		public: store.New(),
		admin:  store.New(),
	}
	log := testLogger()
	f.reflections = NewReflectionService(f.client, f.guard, f.public, f.admin, log)
	f.auth = NewAuthService(f.client, f.guard, f.admin, log)
	f.contact = NewContactService(f.client, f.guard, log)
	f.dashboard = NewDashboardService(f.client, f.guard, log)
	return f
}

func (f *fixture) loggedIn(t *testing.T) *fixture {
	t.Helper()
	f.guard.MarkAuthenticated()
	require.True(t, f.guard.LoggedIn())
	return f
}
