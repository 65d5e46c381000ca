package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/pranayk/reflections/internal/client/api"
	"github.com/pranayk/reflections/internal/client/forms"
	"github.com/pranayk/reflections/internal/client/models"
	"github.com/pranayk/reflections/internal/client/session"
	"github.com/pranayk/reflections/internal/client/store"
	"github.com/pranayk/reflections/internal/logging"
)

// FilterAll is the implicit pseudo-category shown before the server's
// distinct category set in filter controls.
const FilterAll = "all"

// ReflectionService owns the reflection record lifecycle. Listing loads go
// through generation tokens so a superseded fetch never overwrites a newer
// one; mutations re-seed the store from the canonical server record.
type ReflectionService interface {
	// LoadPublished fetches the public view (optionally filtered by
	// category) into the public store and returns the filter categories,
	// "all" first.
	LoadPublished(ctx context.Context, category models.Category) ([]string, error)

	// LoadAdmin fetches the full set including drafts into the admin store.
	// Requires an authenticated session.
	LoadAdmin(ctx context.Context) error

	// Get fetches a single published reflection.
	Get(ctx context.Context, id string) (*models.Reflection, error)

	Create(ctx context.Context, in forms.Input) (*models.Reflection, error)
	Update(ctx context.Context, id string, in forms.Input) (*models.Reflection, error)

	// Delete removes a reflection. Deleting a record the server no longer
	// has is treated as already done, keeping the operation idempotent from
	// the client's view.
	Delete(ctx context.Context, id string) error

	Public() *store.Store
	Admin() *store.Store
}

type reflectionService struct {
	client api.Client
	guard  *session.Guard
	public *store.Store
	admin  *store.Store
	log    logging.Logger
}

func NewReflectionService(client api.Client, guard *session.Guard, public, admin *store.Store, log logging.Logger) ReflectionService {
	return &reflectionService{client: client, guard: guard, public: public, admin: admin, log: log}
}

func (s *reflectionService) Public() *store.Store { return s.public }
func (s *reflectionService) Admin() *store.Store  { return s.admin }

// observe drops the guard to anonymous whenever the server rejects a session
// mid-flight, so later admin actions re-prompt for login instead of failing
// silently again.
func (s *reflectionService) observe(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, api.ErrAuthRequired) {
		s.guard.MarkAnonymous()
	}
	s.log.Error(ctx, "reflection operation failed", "error", err)
	return err
}

func (s *reflectionService) LoadPublished(ctx context.Context, category models.Category) ([]string, error) {
	token := s.public.BeginFetch()

	list, err := s.client.List(ctx, category)
	if err != nil {
		return nil, s.observe(ctx, err)
	}

	if !s.public.ReplaceAllIf(token, list.Reflections) {
		s.log.Debug(ctx, "discarded superseded fetch", "category", category)
	}

	categories := make([]string, 0, len(list.Categories)+1)
	categories = append(categories, FilterAll)
	categories = append(categories, list.Categories...)
	return categories, nil
}

func (s *reflectionService) LoadAdmin(ctx context.Context) error {
	if !s.guard.LoggedIn() {
		return &api.Error{Kind: api.ErrAuthRequired, Message: "please log in first"}
	}

	token := s.admin.BeginFetch()

	list, err := s.client.ListAdmin(ctx)
	if err != nil {
		return s.observe(ctx, err)
	}

	s.admin.ReplaceAllIf(token, list.Reflections)
	return nil
}

func (s *reflectionService) Get(ctx context.Context, id string) (*models.Reflection, error) {
	r, err := s.client.Get(ctx, id)
	if err != nil {
		return nil, s.observe(ctx, err)
	}
	return r, nil
}

// Create submits the normalized draft and caches the server-confirmed record
// at the head of the admin view. Server-assigned fields (id, date,
// read_time) come back from the server; no client guess survives.
func (s *reflectionService) Create(ctx context.Context, in forms.Input) (*models.Reflection, error) {
	if !s.guard.LoggedIn() {
		return nil, &api.Error{Kind: api.ErrAuthRequired, Message: "please log in first"}
	}

	created, err := s.client.Create(ctx, forms.Draft(in))
	if err != nil {
		return nil, s.observe(ctx, err)
	}

	s.admin.Upsert(*created)
	s.log.Info(ctx, "reflection created", "id", created.ID, "title", created.Title)
	return created, nil
}

func (s *reflectionService) Update(ctx context.Context, id string, in forms.Input) (*models.Reflection, error) {
	if !s.guard.LoggedIn() {
		return nil, &api.Error{Kind: api.ErrAuthRequired, Message: "please log in first"}
	}
	if id == "" {
		return nil, fmt.Errorf("reflection id is required")
	}

	updated, err := s.client.Update(ctx, id, forms.Draft(in))
	if err != nil {
		return nil, s.observe(ctx, err)
	}

	s.admin.Upsert(*updated)
	// keep the public view coherent without ever inserting drafts into it
	if !updated.Published {
		s.public.Remove(updated.ID)
	} else if _, ok := s.public.Get(updated.ID); ok {
		s.public.Upsert(*updated)
	}
	s.log.Info(ctx, "reflection updated", "id", updated.ID)
	return updated, nil
}

func (s *reflectionService) Delete(ctx context.Context, id string) error {
	if !s.guard.LoggedIn() {
		return &api.Error{Kind: api.ErrAuthRequired, Message: "please log in first"}
	}

	err := s.client.Delete(ctx, id)
	switch {
	case err == nil:
	case errors.Is(err, api.ErrValidation):
		// already gone on the server; deletion is idempotent client-side
		s.log.Warn(ctx, "delete of missing reflection treated as done", "id", id)
	default:
		return s.observe(ctx, err)
	}

	s.admin.Remove(id)
	s.public.Remove(id)
	s.log.Info(ctx, "reflection deleted", "id", id)
	return nil
}
