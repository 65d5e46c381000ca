// Package session tracks the admin authentication state of the client.
//
// The guard is a small state machine:
//
//	Unknown → Verifying → Authenticated | Anonymous
//
// Verification failure and "no session" are treated uniformly as Anonymous.
// The guard is a client-side convenience only; the gateway's AuthRequired
// classification remains the authoritative enforcement boundary, and any
// AuthRequired outcome mid-session drops the guard back to Anonymous.
package session

import "sync"

type State int

const (
	StateUnknown State = iota
	StateVerifying
	StateAuthenticated
	StateAnonymous
)

func (s State) String() string {
	switch s {
	case StateUnknown:
		return "unknown"
	case StateVerifying:
		return "verifying"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return "invalid"
	}
}

type Guard struct {
	mu    sync.Mutex
	state State
}

func NewGuard() *Guard {
	return &Guard{state: StateUnknown}
}

func (g *Guard) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// LoggedIn reports whether admin-gated actions may be attempted.
func (g *Guard) LoggedIn() bool {
	return g.State() == StateAuthenticated
}

// Verifying reports whether the startup verification round-trip is in flight.
func (g *Guard) Verifying() bool {
	return g.State() == StateVerifying
}

// BeginVerify marks the start of the session-verification round-trip.
func (g *Guard) BeginVerify() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = StateVerifying
}

// FinishVerify resolves the verification round-trip.
func (g *Guard) FinishVerify(ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if ok {
		g.state = StateAuthenticated
	} else {
		g.state = StateAnonymous
	}
}

// MarkAuthenticated records a successful login.
func (g *Guard) MarkAuthenticated() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = StateAuthenticated
}

// MarkAnonymous records logout or a session that the server rejected.
func (g *Guard) MarkAnonymous() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = StateAnonymous
}
