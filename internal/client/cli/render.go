package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/pranayk/reflections/internal/client/models"
	"github.com/pranayk/reflections/internal/client/services"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	metaStyle  = lipgloss.NewStyle().Faint(true)
	draftStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	badgeBlog    = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4")).Padding(0, 1)
	badgeJournal = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("2")).Padding(0, 1)
	badgeArtwork = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("5")).Padding(0, 1)
	badgeOther   = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("7")).Padding(0, 1)
)

// categoryBadge renders the colored category label. Unknown categories get
// the neutral badge rather than an error.
func categoryBadge(c models.Category) string {
	switch c {
	case models.CategoryBlog:
		return badgeBlog.Render(c.Label())
	case models.CategoryJournal:
		return badgeJournal.Render(c.Label())
	case models.CategoryArtwork:
		return badgeArtwork.Render(c.Label())
	default:
		return badgeOther.Render(c.Label())
	}
}

// renderReflections prints one line per record in store order. With drafts
// enabled, unpublished records carry a marker.
func renderReflections(records []models.Reflection, drafts bool) string {
	if len(records) == 0 {
		return "No reflections."
	}

	var b strings.Builder
	for _, r := range records {
		line := fmt.Sprintf("%s  %s %s  %s",
			metaStyle.Render(r.ID),
			categoryBadge(r.Category),
			titleStyle.Render(r.Title),
			metaStyle.Render(r.ReadTime),
		)
		if drafts && !r.Published {
			line += "  " + draftStyle.Render("[draft]")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderReflection renders a single record: header lines, then the body as
// terminal markdown.
func renderReflection(r *models.Reflection) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(r.Title))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  %s  %s\n", categoryBadge(r.Category), r.Date.Format("2006-01-02"), r.ReadTime))
	if len(r.Tags) > 0 {
		b.WriteString(metaStyle.Render("tags: "+strings.Join(r.Tags, ", ")) + "\n")
	}
	if r.Excerpt != "" {
		b.WriteString(metaStyle.Render(r.Excerpt) + "\n")
	}
	b.WriteString(renderMarkdown(r.Content))
	return b.String()
}

// renderMarkdown renders markdown for the terminal, degrading to the raw
// text when the renderer cannot be built.
func renderMarkdown(content string) string {
	tr, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return content
	}
	out, err := tr.Render(content)
	if err != nil {
		return content
	}
	return out
}

func renderSubmissions(subs []models.ContactSubmission) string {
	if len(subs) == 0 {
		return "Inbox is empty."
	}

	var b strings.Builder
	for _, s := range subs {
		b.WriteString(fmt.Sprintf("%s  %s <%s>  %s  %s\n",
			metaStyle.Render(s.SubmittedAt.Format("2006-01-02 15:04")),
			titleStyle.Render(s.Name),
			s.Email,
			badgeOther.Render(string(s.Reason)),
			string(s.Status),
		))
		b.WriteString("  " + s.Message + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderStats(s *services.Stats) string {
	return strings.Join([]string{
		fmt.Sprintf("Reflections: %d (blog %d, journal %d, artwork %d)", s.Total, s.Blog, s.Journal, s.Artwork),
		fmt.Sprintf("Drafts: %d", s.Drafts),
		fmt.Sprintf("Inbox: %d", s.Inbox),
	}, "\n")
}
