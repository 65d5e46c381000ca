package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pranayk/reflections/internal/client/api"
	"github.com/pranayk/reflections/internal/client/forms"
	"github.com/pranayk/reflections/internal/client/models"
	"github.com/pranayk/reflections/internal/client/services"
)

func categoryOptions() []string {
	cats := models.Categories()
	opts := make([]string, 0, len(cats))
	for _, c := range cats {
		opts = append(opts, string(c))
	}
	return opts
}

// List loads published reflections, optionally filtered by category, and
// prints them. The available filters are shown after the listing.
func (a *App) List(ctx context.Context, args []string) error {
	var category models.Category
	if len(args) > 0 && args[0] != services.FilterAll {
		category = models.Category(args[0])
		if !category.Valid() {
			printlnFn(fmt.Sprintf("Unknown category %q. Usage: list [%s]", args[0], strings.Join(categoryOptions(), "|")))
			return nil
		}
	}

	categories, err := a.reflections.LoadPublished(ctx, category)
	if err != nil {
		printlnFn("Error:", api.Message(err))
		return err
	}

	printlnFn(renderReflections(a.reflections.Public().All(), false))
	printlnFn("Filters:", strings.Join(categories, ", "))
	return nil
}

// Show fetches and displays a single reflection, body rendered as markdown.
func (a *App) Show(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter reflection id", os.Stdout)
	if err != nil {
		return err
	}

	r, err := a.reflections.Get(ctx, id)
	if err != nil {
		printlnFn("Error:", api.Message(err))
		return err
	}

	printlnFn(renderReflection(r))
	return nil
}

// Admin loads the full listing, drafts included, into the admin view.
func (a *App) Admin(ctx context.Context) error {
	if err := a.reflections.LoadAdmin(ctx); err != nil {
		printlnFn("Error:", api.Message(err))
		return err
	}

	printlnFn(renderReflections(a.reflections.Admin().All(), true))
	return nil
}

// New collects reflection fields interactively and creates the record.
// Server-assigned fields are reported back from the confirmed record.
func (a *App) New(ctx context.Context) error {
	in, err := a.inputReflection(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	created, err := a.reflections.Create(ctx, in)
	if err != nil {
		printlnFn("Error:", api.Message(err))
		return err
	}

	printlnFn(fmt.Sprintf("Created %s (%s)", created.ID, created.ReadTime))
	return nil
}

// Edit prompts for an ID and replacement fields, then updates the record.
// Every field is re-entered; updates replace the whole record.
func (a *App) Edit(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter reflection id to edit", os.Stdout)
	if err != nil {
		return err
	}

	if current, ok := a.reflections.Admin().Get(id); ok {
		printlnFn("Editing:", current.Title)
	}

	in, err := a.inputReflection(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	updated, err := a.reflections.Update(ctx, id, in)
	if err != nil {
		printlnFn("Error:", api.Message(err))
		return err
	}

	printlnFn(fmt.Sprintf("Updated %s (%s)", updated.ID, updated.ReadTime))
	return nil
}

// Delete removes a reflection after an explicit confirmation.
func (a *App) Delete(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter reflection id to delete", os.Stdout)
	if err != nil {
		return err
	}

	ok, err := getConfirmation(a.reader, fmt.Sprintf("Delete %s?", id), os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		printlnFn("Cancelled")
		return nil
	}

	if err := a.reflections.Delete(ctx, id); err != nil {
		printlnFn("Error:", api.Message(err))
		return err
	}

	printlnFn("Deleted", id)
	return nil
}

// inputReflection collects the editable reflection fields. Title is required;
// everything else may be left empty. The local read-time estimate is shown
// for orientation only, the server assigns the real value.
func (a *App) inputReflection(ctx context.Context) (forms.Input, error) {
	var zero forms.Input

	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return zero, fmt.Errorf("get title: %w", err)
	}
	if strings.TrimSpace(title) == "" {
		return zero, fmt.Errorf("title is required")
	}
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	excerpt, err := getSimpleText(a.reader, "Enter excerpt", os.Stdout)
	if err != nil {
		return zero, err
	}

	content, err := getMultiline(a.reader, "Enter content (markdown):", os.Stdout)
	if err != nil {
		return zero, err
	}
	printlnFn("Estimated:", models.EstimateReadTime(content))

	category, err := getChoice(a.reader, "Category", categoryOptions(), os.Stdout)
	if err != nil {
		return zero, err
	}

	tags, err := getSimpleText(a.reader, "Enter tags (comma-separated)", os.Stdout)
	if err != nil {
		return zero, err
	}

	published, err := getConfirmation(a.reader, "Publish now?", os.Stdout)
	if err != nil {
		return zero, err
	}

	return forms.Input{
		Title:     title,
		Excerpt:   excerpt,
		Content:   content,
		Category:  models.Category(category),
		Tags:      tags,
		Published: published,
	}, nil
}
