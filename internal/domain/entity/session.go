package entity

// SessionState is derived from a Session and drives route decisions.
type SessionState int

const (
	// SessionInitializing means the first auth-state report has not arrived yet.
	SessionInitializing SessionState = iota
	// SessionAnonymous means no identity is signed in.
	SessionAnonymous
	// SessionAuthenticated means an identity is signed in.
	SessionAuthenticated
)

// String returns the string representation of the SessionState.
func (s SessionState) String() string {
	switch s {
	case SessionInitializing:
		return "initializing"
	case SessionAnonymous:
		return "anonymous"
	case SessionAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Session is the per-client authentication view.
// IsAdmin is only ever true while Identity is set.
type Session struct {
	ID       string    `json:"id"`                 // Opaque client session id.
	Identity *Identity `json:"identity,omitempty"` // Signed-in identity, nil when anonymous.
	IsAdmin  bool      `json:"isAdmin"`            // Whether the identity holds the admin role.
	Loading  bool      `json:"loading"`            // True until the first auth-state report resolves.
}

// NewSession returns a session in the initializing state.
func NewSession(id string) Session {
	return Session{ID: id, Loading: true}
}

// State derives the lifecycle state.
func (s Session) State() SessionState {
	switch {
	case s.Loading:
		return SessionInitializing
	case s.Identity == nil:
		return SessionAnonymous
	default:
		return SessionAuthenticated
	}
}

// UID returns the signed-in uid or an empty string.
func (s Session) UID() string {
	if s.Identity == nil {
		return ""
	}

	return s.Identity.UID
}
