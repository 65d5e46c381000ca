package services

import (
	"context"
	"testing"
	"time"

	"github.com/pranayk/reflections/internal/client/api"
	"github.com/pranayk/reflections/internal/client/forms"
	"github.com/pranayk/reflections/internal/client/models"
	"github.com/pranayk/reflections/internal/client/session"
	"github.com/stretchr/testify/require"
)

func sampleReflections() []models.Reflection {
	return []models.Reflection{
		{ID: "r1", Title: "Morning pages", Category: models.CategoryJournal, Published: true},
		{ID: "r2", Title: "On compounding", Category: models.CategoryBlog, Published: true},
		{ID: "r3", Title: "Ink study", Category: models.CategoryArtwork, Published: true},
	}
}

func TestReflectionService_LoadPublished(t *testing.T) {
	f := newFixture(t)
	f.client.ListRet = &models.ReflectionList{
		Reflections: sampleReflections(),
		Total:       3,
		Categories:  []string{"blog", "journal", "artwork"},
	}

	categories, err := f.reflections.LoadPublished(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, []string{"all", "blog", "journal", "artwork"}, categories)
	require.Equal(t, models.Category(""), f.client.LastListCategory)
	require.Equal(t, 3, f.public.Len())

	got := f.public.All()
	require.Equal(t, "r1", got[0].ID)
	require.Equal(t, "r3", got[2].ID)
}

func TestReflectionService_LoadPublished_FilterPassedThrough(t *testing.T) {
	f := newFixture(t)
	f.client.ListRet = &models.ReflectionList{
		Reflections: sampleReflections()[:1],
		Total:       1,
		Categories:  []string{"journal"},
	}

	_, err := f.reflections.LoadPublished(context.Background(), models.CategoryJournal)
	require.NoError(t, err)
	require.Equal(t, models.CategoryJournal, f.client.LastListCategory)
}

func TestReflectionService_LoadPublished_ErrorLeavesStoreUntouched(t *testing.T) {
	f := newFixture(t)
	f.public.ReplaceAll(sampleReflections())
	f.client.ListErr = &api.Error{Kind: api.ErrUnavailable, Message: "cannot reach server"}

	_, err := f.reflections.LoadPublished(context.Background(), "")
	require.ErrorIs(t, err, api.ErrUnavailable)
	require.Equal(t, 3, f.public.Len())
}

func TestReflectionService_LoadAdmin_AnonymousBlockedLocally(t *testing.T) {
	f := newFixture(t)
	f.guard.MarkAnonymous()
	f.admin.ReplaceAll(sampleReflections())

	err := f.reflections.LoadAdmin(context.Background())
	require.ErrorIs(t, err, api.ErrAuthRequired)

	// no network call was made and the cache is unchanged
	require.Zero(t, f.client.Calls["listAdmin"])
	require.Equal(t, 3, f.admin.Len())
}

func TestReflectionService_LoadAdmin_ExpiredSessionDropsGuard(t *testing.T) {
	f := newFixture(t).loggedIn(t)
	f.admin.ReplaceAll(sampleReflections())
	f.client.ListAdminErr = authRequired("admin authentication required")

	err := f.reflections.LoadAdmin(context.Background())
	require.ErrorIs(t, err, api.ErrAuthRequired)
	require.Equal(t, session.StateAnonymous, f.guard.State())
	require.Equal(t, 3, f.admin.Len())
}

func TestReflectionService_LoadAdmin(t *testing.T) {
	f := newFixture(t).loggedIn(t)
	all := append(sampleReflections(), models.Reflection{ID: "r4", Title: "Unfinished", Published: false})
	f.client.ListAdminRet = &models.ReflectionList{Reflections: all, Total: 4}

	require.NoError(t, f.reflections.LoadAdmin(context.Background()))
	require.Equal(t, 4, f.admin.Len())
	_, ok := f.admin.Get("r4")
	require.True(t, ok)
}

func TestReflectionService_Create(t *testing.T) {
	f := newFixture(t).loggedIn(t)
	f.admin.ReplaceAll(sampleReflections())
	f.client.CreateRet = &models.Reflection{
		ID:        "r9",
		Title:     "Fresh thoughts",
		Category:  models.CategoryBlog,
		Tags:      []string{"go", "notes"},
		Published: true,
		Date:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		ReadTime:  "2 min read",
	}

	created, err := f.reflections.Create(context.Background(), forms.Input{
		Title:     "  Fresh thoughts  ",
		Content:   "body",
		Category:  models.CategoryBlog,
		Tags:      "go, notes",
		Published: true,
	})
	require.NoError(t, err)

	// normalized draft goes out, server record comes back at the head
	require.Equal(t, "Fresh thoughts", f.client.LastCreateDraft.Title)
	require.Equal(t, []string{"go", "notes"}, f.client.LastCreateDraft.Tags)
	require.Equal(t, "2 min read", created.ReadTime)

	got := f.admin.All()
	require.Len(t, got, 4)
	require.Equal(t, "r9", got[0].ID)
}

func TestReflectionService_Create_AnonymousBlocked(t *testing.T) {
	f := newFixture(t)
	f.guard.MarkAnonymous()

	_, err := f.reflections.Create(context.Background(), forms.Input{Title: "x"})
	require.ErrorIs(t, err, api.ErrAuthRequired)
	require.Zero(t, f.client.Calls["create"])
	require.Zero(t, f.admin.Len())
}

func TestReflectionService_Update_KeepsPosition(t *testing.T) {
	f := newFixture(t).loggedIn(t)
	f.admin.ReplaceAll(sampleReflections())
	f.client.UpdateRet = &models.Reflection{ID: "r2", Title: "On compounding, revised", Category: models.CategoryBlog, Published: true}

	updated, err := f.reflections.Update(context.Background(), "r2", forms.Input{
		Title:     "On compounding, revised",
		Category:  models.CategoryBlog,
		Published: true,
	})
	require.NoError(t, err)
	require.Equal(t, "r2", f.client.LastUpdateID)

	got := f.admin.All()
	require.Len(t, got, 3)
	require.Equal(t, "r2", got[1].ID)
	require.Equal(t, updated.Title, got[1].Title)
}

func TestReflectionService_Update_UnpublishRemovesFromPublicView(t *testing.T) {
	f := newFixture(t).loggedIn(t)
	f.public.ReplaceAll(sampleReflections())
	f.admin.ReplaceAll(sampleReflections())
	f.client.UpdateRet = &models.Reflection{ID: "r1", Title: "Morning pages", Category: models.CategoryJournal, Published: false}

	_, err := f.reflections.Update(context.Background(), "r1", forms.Input{Title: "Morning pages", Category: models.CategoryJournal})
	require.NoError(t, err)

	_, ok := f.public.Get("r1")
	require.False(t, ok)
	got, ok := f.admin.Get("r1")
	require.True(t, ok)
	require.False(t, got.Published)
}

func TestReflectionService_Update_DraftNeverEntersPublicView(t *testing.T) {
	f := newFixture(t).loggedIn(t)
	f.admin.ReplaceAll([]models.Reflection{{ID: "d1", Title: "Draft", Published: false}})
	f.client.UpdateRet = &models.Reflection{ID: "d1", Title: "Draft v2", Published: false}

	_, err := f.reflections.Update(context.Background(), "d1", forms.Input{Title: "Draft v2"})
	require.NoError(t, err)
	require.Zero(t, f.public.Len())
}

func TestReflectionService_Update_RequiresID(t *testing.T) {
	f := newFixture(t).loggedIn(t)

	_, err := f.reflections.Update(context.Background(), "", forms.Input{Title: "x"})
	require.Error(t, err)
	require.Zero(t, f.client.Calls["update"])
}

func TestReflectionService_Delete(t *testing.T) {
	f := newFixture(t).loggedIn(t)
	f.public.ReplaceAll(sampleReflections())
	f.admin.ReplaceAll(sampleReflections())

	require.NoError(t, f.reflections.Delete(context.Background(), "r2"))
	require.Equal(t, "r2", f.client.LastDeleteID)
	_, ok := f.public.Get("r2")
	require.False(t, ok)
	_, ok = f.admin.Get("r2")
	require.False(t, ok)
}

func TestReflectionService_Delete_MissingOnServerIsDone(t *testing.T) {
	f := newFixture(t).loggedIn(t)
	f.admin.ReplaceAll(sampleReflections())
	f.client.DeleteErr = &api.Error{Kind: api.ErrValidation, Message: "Reflection not found"}

	require.NoError(t, f.reflections.Delete(context.Background(), "r1"))
	_, ok := f.admin.Get("r1")
	require.False(t, ok)
}

func TestReflectionService_Delete_ServerFaultKeepsRecord(t *testing.T) {
	f := newFixture(t).loggedIn(t)
	f.admin.ReplaceAll(sampleReflections())
	f.client.DeleteErr = &api.Error{Kind: api.ErrServerFault, Message: "something went wrong on our end"}

	err := f.reflections.Delete(context.Background(), "r1")
	require.ErrorIs(t, err, api.ErrServerFault)
	_, ok := f.admin.Get("r1")
	require.True(t, ok)
}

func TestReflectionService_Get(t *testing.T) {
	f := newFixture(t)
	f.client.GetRet = &models.Reflection{ID: "r1", Title: "Morning pages"}

	got, err := f.reflections.Get(context.Background(), "r1")
	require.NoError(t, err)
	require.Equal(t, "Morning pages", got.Title)
}
