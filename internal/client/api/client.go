package api

import (
	"context"

	"github.com/pranayk/reflections/internal/client/models"
)

// Client is the transport gateway: it translates CRUD intents into calls
// against the portfolio backend and normalizes every failure into one of the
// four kinds in errors.go.
//
// Mutating and admin-listing operations require an authenticated session;
// they fail with ErrAuthRequired when the credential is absent or expired.
// Create and Update return the canonical server-confirmed record so callers
// pick up server-assigned fields (id, date, read_time) instead of client
// guesses.
type Client interface {
	Close() error

	List(ctx context.Context, category models.Category) (*models.ReflectionList, error)
	Get(ctx context.Context, id string) (*models.Reflection, error)
	ListAdmin(ctx context.Context) (*models.ReflectionList, error)
	Create(ctx context.Context, draft models.Draft) (*models.Reflection, error)
	Update(ctx context.Context, id string, draft models.Draft) (*models.Reflection, error)
	Delete(ctx context.Context, id string) error

	SubmitContact(ctx context.Context, req models.ContactRequest) (*models.ContactAck, error)
	ContactSubmissions(ctx context.Context) ([]models.ContactSubmission, error)

	Login(ctx context.Context, username, password string) error
	Verify(ctx context.Context) (bool, error)
	Logout(ctx context.Context) error
}
