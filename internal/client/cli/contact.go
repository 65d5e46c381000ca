package cli

import (
	"context"
	"os"

	"github.com/pranayk/reflections/internal/client/api"
	"github.com/pranayk/reflections/internal/client/models"
)

func reasonOptions() []string {
	reasons := models.ContactReasons()
	opts := make([]string, 0, len(reasons))
	for _, r := range reasons {
		opts = append(opts, string(r))
	}
	return opts
}

// Contact collects the contact-form fields and submits them. Nothing is kept
// locally after a successful submission.
func (a *App) Contact(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter your email", os.Stdout)
	if err != nil {
		return err
	}
	reason, err := getChoice(a.reader, "Reason", reasonOptions(), os.Stdout)
	if err != nil {
		return err
	}
	message, err := getMultiline(a.reader, "Enter your message:", os.Stdout)
	if err != nil {
		return err
	}

	ack, err := a.contact.Submit(ctx, models.ContactRequest{
		Name:    name,
		Email:   email,
		Reason:  models.ContactReason(reason),
		Message: message,
	})
	if err != nil {
		printlnFn("Error:", api.Message(err))
		return err
	}

	printlnFn(ack.Message)
	return nil
}

// Inbox lists contact submissions for the admin.
func (a *App) Inbox(ctx context.Context) error {
	subs, err := a.contact.Submissions(ctx)
	if err != nil {
		printlnFn("Error:", api.Message(err))
		return err
	}

	printlnFn(renderSubmissions(subs))
	return nil
}

// Stats prints the admin dashboard summary.
func (a *App) Stats(ctx context.Context) error {
	stats, err := a.dashboard.Stats(ctx)
	if err != nil {
		printlnFn("Error:", api.Message(err))
		return err
	}

	printlnFn(renderStats(stats))
	return nil
}
