package services

import (
	"context"
	"errors"

	"github.com/pranayk/reflections/internal/client/api"
	"github.com/pranayk/reflections/internal/client/models"
	"github.com/pranayk/reflections/internal/client/session"
	"github.com/pranayk/reflections/internal/logging"
	"golang.org/x/sync/errgroup"
)

// Stats is the admin dashboard summary: per-category record counts plus the
// inbox size.
type Stats struct {
	Total   int
	Blog    int
	Journal int
	Artwork int
	Drafts  int
	Inbox   int
}

// DashboardService assembles the admin overview in one shot.
type DashboardService interface {
	Stats(ctx context.Context) (*Stats, error)
}

type dashboardService struct {
	client api.Client
	guard  *session.Guard
	log    logging.Logger
}

func NewDashboardService(client api.Client, guard *session.Guard, log logging.Logger) DashboardService {
	return &dashboardService{client: client, guard: guard, log: log}
}

// Stats fetches the full admin listing and the contact inbox concurrently;
// both calls share the session credential and either failure fails the whole
// overview.
func (d *dashboardService) Stats(ctx context.Context) (*Stats, error) {
	if !d.guard.LoggedIn() {
		return nil, &api.Error{Kind: api.ErrAuthRequired, Message: "please log in first"}
	}

	var (
		list *models.ReflectionList
		subs []models.ContactSubmission
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		list, err = d.client.ListAdmin(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		subs, err = d.client.ContactSubmissions(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, api.ErrAuthRequired) {
			d.guard.MarkAnonymous()
		}
		d.log.Error(ctx, "dashboard stats failed", "error", err)
		return nil, err
	}

	stats := &Stats{Total: len(list.Reflections), Inbox: len(subs)}
	for _, r := range list.Reflections {
		switch r.Category {
		case models.CategoryBlog:
			stats.Blog++
		case models.CategoryJournal:
			stats.Journal++
		case models.CategoryArtwork:
			stats.Artwork++
		}
		if !r.Published {
			stats.Drafts++
		}
	}
	return stats, nil
}
