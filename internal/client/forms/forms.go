// Package forms converts raw form input into submit-ready record payloads.
// Everything here is pure: no I/O, no clock, no network.
package forms

import (
	"strings"

	"github.com/pranayk/reflections/internal/client/models"
)

// Input mirrors the create/edit form fields as the user typed them.
// Tags is the raw comma-separated string.
type Input struct {
	Title     string
	Excerpt   string
	Content   string
	Category  models.Category
	Tags      string
	Published bool
}

// ParseTags splits a comma-separated tag string, trims each piece and drops
// empty ones. Order is preserved as typed; duplicates are permitted.
// The transform is idempotent: running it over an already-normalized list
// joined with ", " yields the same list.
func ParseTags(s string) []string {
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		tags = append(tags, p)
	}
	return tags
}

// Draft builds the submit payload from form input. Server-assigned fields
// (id, date, read_time) are intentionally absent: the server computes them
// on create and updates never attempt to override them. Category validity is
// the caller's contract; a closed selection control constrains it upstream.
func Draft(in Input) models.Draft {
	return models.Draft{
		Title:     strings.TrimSpace(in.Title),
		Excerpt:   strings.TrimSpace(in.Excerpt),
		Content:   in.Content,
		Category:  in.Category,
		Tags:      ParseTags(in.Tags),
		Published: in.Published,
	}
}
