package auth

import "github.com/dmitrymomot/hrassist/pkg/backend"

// State is the authentication state for one request.
// Loading means the state has not been resolved yet; once resolved,
// a non-nil User means authenticated and nil means anonymous.
type State struct {
	User    *backend.User
	Loading bool
}

// Initializing returns the unresolved state.
func Initializing() State {
	return State{Loading: true}
}

// Authenticated returns the resolved state for the given user.
func Authenticated(u *backend.User) State {
	return State{User: u}
}

// Anonymous returns the resolved signed-out state.
func Anonymous() State {
	return State{}
}

// IsAuthenticated reports whether a user is attached to the state.
func (s State) IsAuthenticated() bool {
	return !s.Loading && s.User != nil
}

// Decision is the outcome of the route guard.
type Decision int

const (
	// DecisionWait defers rendering until the state resolves.
	DecisionWait Decision = iota
	// DecisionAllow renders the protected content.
	DecisionAllow
	// DecisionRedirect sends the visitor to the sign-in page.
	DecisionRedirect
)

// Decide maps an authentication state to a guard decision. Loading always
// wins over the user field so a stale user from a previous resolution can
// never leak protected content during re-resolution.
func Decide(s State) Decision {
	switch {
	case s.Loading:
		return DecisionWait
	case s.User != nil:
		return DecisionAllow
	default:
		return DecisionRedirect
	}
}
