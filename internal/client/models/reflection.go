// Package models defines the reflection and contact record types exchanged
// with the portfolio backend.
package models

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Category classifies a reflection. The set is closed; anything else is a
// caller's-contract violation and renders with the default treatment.
type Category string

const (
	CategoryBlog    Category = "blog"
	CategoryJournal Category = "journal"
	CategoryArtwork Category = "artwork"
)

// Categories returns the closed category set in display order.
func Categories() []Category {
	return []Category{CategoryBlog, CategoryJournal, CategoryArtwork}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryBlog, CategoryJournal, CategoryArtwork:
		return true
	}
	return false
}

// Label returns the capitalized display name for the category.
// Unrecognized values degrade to the raw string, never to a failure.
func (c Category) Label() string {
	switch c {
	case CategoryBlog:
		return "Blog"
	case CategoryJournal:
		return "Journal"
	case CategoryArtwork:
		return "Artwork"
	default:
		return string(c)
	}
}

// Reflection is a blog/journal/artwork post as the server returns it.
// ID, Date and ReadTime are server-assigned; the client never submits them.
type Reflection struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content"`
	Category  Category  `json:"category"`
	Tags      []string  `json:"tags"`
	Published bool      `json:"published"`
	Date      time.Time `json:"date"`
	ReadTime  string    `json:"read_time"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Draft carries the editable fields sent on create and full-replacement
// update. Server-computed fields (id, date, read_time) are absent on purpose.
type Draft struct {
	Title     string   `json:"title"`
	Excerpt   string   `json:"excerpt"`
	Content   string   `json:"content"`
	Category  Category `json:"category"`
	Tags      []string `json:"tags"`
	Published bool     `json:"published"`
}

// EstimateReadTime derives the display read time for a body of text:
// max(1, round(words/200)) minutes at the assumed 200 words-per-minute pace.
// The server assigns the authoritative value; this is for local preview only.
func EstimateReadTime(content string) string {
	words := len(strings.Fields(content))
	minutes := int(math.Round(float64(words) / 200.0))
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}
