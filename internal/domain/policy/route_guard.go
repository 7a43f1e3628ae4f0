// Package policy holds pure access decisions.
package policy

import "aiclub/internal/domain/entity"

// Decision is the outcome of guarding a route.
type Decision int

const (
	// DecisionPending means the session is still loading and nothing should render yet.
	DecisionPending Decision = iota
	// DecisionRedirect means the caller must be sent to the fallback location.
	DecisionRedirect
	// DecisionRender means the protected content may be shown.
	DecisionRender
)

// FallbackLocation is where denied callers are redirected.
const FallbackLocation = "/"

// String returns the string representation of the Decision.
func (d Decision) String() string {
	switch d {
	case DecisionPending:
		return "pending"
	case DecisionRedirect:
		return "redirect"
	case DecisionRender:
		return "render"
	default:
		return "unknown"
	}
}

// Requirement describes what a route needs.
type Requirement struct {
	RequireAuth  bool
	RequireAdmin bool
}

// Decide evaluates a requirement against the session. It has no side effects.
// An admin requirement is enforced even when RequireAuth is false.
func Decide(session entity.Session, req Requirement) Decision {
	if session.Loading {
		return DecisionPending
	}
	if req.RequireAuth && session.Identity == nil {
		return DecisionRedirect
	}
	if req.RequireAdmin && !session.IsAdmin {
		return DecisionRedirect
	}

	return DecisionRender
}
