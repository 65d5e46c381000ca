package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/pranayk/reflections/internal/client/api"
	"github.com/pranayk/reflections/internal/client/models"
	"github.com/pranayk/reflections/internal/client/session"
	"github.com/pranayk/reflections/internal/logging"
)

// ContactService submits contact-form messages and, for admins, reads the
// inbox. Submissions are fire-and-forget: nothing is cached client-side.
type ContactService interface {
	Submit(ctx context.Context, req models.ContactRequest) (*models.ContactAck, error)
	Submissions(ctx context.Context) ([]models.ContactSubmission, error)
}

type contactService struct {
	client api.Client
	guard  *session.Guard
	log    logging.Logger
}

func NewContactService(client api.Client, guard *session.Guard, log logging.Logger) ContactService {
	return &contactService{client: client, guard: guard, log: log}
}

// Submit pre-checks that all fields are filled before going to the network,
// mirroring the form's required-field validation.
func (c *contactService) Submit(ctx context.Context, req models.ContactRequest) (*models.ContactAck, error) {
	if req.Name == "" || req.Email == "" || req.Reason == "" || req.Message == "" {
		return nil, &api.Error{Kind: api.ErrValidation, Message: "please fill in all required fields"}
	}
	if !req.Reason.Valid() {
		return nil, &api.Error{Kind: api.ErrValidation, Message: fmt.Sprintf("unknown reason %q", req.Reason)}
	}

	ack, err := c.client.SubmitContact(ctx, req)
	if err != nil {
		c.log.Error(ctx, "contact submission failed", "error", err)
		return nil, err
	}
	c.log.Info(ctx, "contact form submitted", "email", req.Email, "reason", req.Reason)
	return ack, nil
}

func (c *contactService) Submissions(ctx context.Context) ([]models.ContactSubmission, error) {
	if !c.guard.LoggedIn() {
		return nil, &api.Error{Kind: api.ErrAuthRequired, Message: "please log in first"}
	}

	subs, err := c.client.ContactSubmissions(ctx)
	if err != nil {
		if errors.Is(err, api.ErrAuthRequired) {
			c.guard.MarkAnonymous()
		}
		c.log.Error(ctx, "loading contact submissions failed", "error", err)
		return nil, err
	}
	return subs, nil
}
