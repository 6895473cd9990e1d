package domain

import "time"

// Session is the explicit session context passed to the core's entry points.
// The core never reads ambient global state to decide whether a caller is
// allowed in; whoever constructs the service decides by handing it a session.
type Session struct {
	// User is a display label for the operator, informational only.
	User string

	// Authenticated gates the service entry points.
	Authenticated bool

	// StartedAt is when the session began.
	StartedAt time.Time
}

// NewSession returns an authenticated session for the given user.
func NewSession(user string) Session {
	return Session{
		User:          user,
		Authenticated: true,
		StartedAt:     time.Now().UTC(),
	}
}
