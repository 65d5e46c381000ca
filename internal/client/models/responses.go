package models

// ReflectionList is the listing envelope: the records plus the distinct
// category set the server knows about (for building filter controls).
type ReflectionList struct {
	Reflections []Reflection `json:"reflections"`
	Total       int          `json:"total"`
	Categories  []string     `json:"categories"`
}

// ContactAck acknowledges a contact-form submission.
type ContactAck struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// LoginResult is the login response. Success false with HTTP 200 means the
// credentials were rejected. The session credential itself travels as an
// opaque cookie; SessionID is informational only and never stored.
type LoginResult struct {
	Success   bool   `json:"success"`
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// VerifyResult reports whether the current session credential is valid.
type VerifyResult struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// MessageResponse is the generic one-field acknowledgment (delete, logout).
type MessageResponse struct {
	Message string `json:"message"`
}
