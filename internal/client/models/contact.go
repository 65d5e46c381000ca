package models

import "time"

// ContactReason classifies why a visitor is reaching out.
type ContactReason string

const (
	ReasonYoga          ContactReason = "yoga"
	ReasonInvestment    ContactReason = "investment"
	ReasonCollaboration ContactReason = "collaboration"
	ReasonOther         ContactReason = "other"
)

func ContactReasons() []ContactReason {
	return []ContactReason{ReasonYoga, ReasonInvestment, ReasonCollaboration, ReasonOther}
}

func (r ContactReason) Valid() bool {
	switch r {
	case ReasonYoga, ReasonInvestment, ReasonCollaboration, ReasonOther:
		return true
	}
	return false
}

// ContactStatus tracks triage of a submission in the admin inbox.
type ContactStatus string

const (
	ContactStatusNew     ContactStatus = "new"
	ContactStatusRead    ContactStatus = "read"
	ContactStatusReplied ContactStatus = "replied"
)

// ContactRequest is the contact-form payload. Write-only: the client keeps
// no copy after a successful submission.
type ContactRequest struct {
	Name    string        `json:"name"`
	Email   string        `json:"email"`
	Reason  ContactReason `json:"reason"`
	Message string        `json:"message"`
}

// ContactSubmission is a stored submission as the admin inbox returns it.
type ContactSubmission struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Reason      ContactReason `json:"reason"`
	Message     string        `json:"message"`
	Status      ContactStatus `json:"status"`
	SubmittedAt time.Time     `json:"submitted_at"`
}
