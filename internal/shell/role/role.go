// Package role derives the effective role the shell renders for.
package role

import (
	"github.com/bookhaven/lms-backend/model"
)

// Resolve computes the effective role from the session user, the fetched
// profile and the initialization flag. A freshly fetched profile wins over
// a possibly stale session user. Until the session store has initialized,
// ok is false and nothing role-dependent should render; afterwards the
// absence of any identity resolves to guest.
func Resolve(contextUser *model.User, profile *model.Profile, authInitialized bool) (model.Role, bool) {
	if profile != nil && profile.Role != "" {
		return model.ParseRole(string(profile.Role)), true
	}
	if contextUser != nil && contextUser.Role != "" {
		return model.ParseRole(string(contextUser.Role)), true
	}
	if authInitialized {
		return model.RoleGuest, true
	}
	return model.RoleGuest, false
}
