// Package guard decides whether a navigation into a protected area may
// proceed. Decisions are plain values free of any UI or transport type, so
// the same logic gates CLI commands today and could gate HTTP routes or TUI
// views unchanged. The guard is re-evaluated on every navigation and never
// caches: the session may have expired since the last check.
package guard

import "github.com/movaro/console/internal/core/session"

// Destination is where a denied navigation is redirected.
type Destination string

const (
	// DestinationLogin is the login entry point for unauthenticated visitors.
	DestinationLogin Destination = "/login"
	// DestinationHome is the generic landing area for authenticated users
	// lacking the required role.
	DestinationHome Destination = "/"
)

// Decision is the tagged outcome of a guard check: either the navigation is
// allowed, or the visitor is redirected to Redirect.
type Decision struct {
	Allowed  bool
	Redirect Destination
}

var allow = Decision{Allowed: true}

// Protected gates an area any authenticated user may enter.
func Protected(s session.Session) Decision {
	if !s.Authenticated {
		return Decision{Redirect: DestinationLogin}
	}
	return allow
}

// AdminOnly gates an area reserved for the admin role. Unauthenticated
// visitors go to the login entry point; authenticated non-admins are sent
// home rather than shown an error.
func AdminOnly(s session.Session) Decision {
	if !s.Authenticated {
		return Decision{Redirect: DestinationLogin}
	}
	if !s.IsAdmin() {
		return Decision{Redirect: DestinationHome}
	}
	return allow
}
