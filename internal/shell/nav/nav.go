// Package nav holds the role navigation tables and the view-state math the
// navbar and sidebar share. Both shells derive their geometry from the same
// predicates here so they cannot drift apart visually.
package nav

import (
	"strings"

	"github.com/bookhaven/lms-backend/model"
)

// Item is one navigation entry
type Item struct {
	Label string `json:"label" yaml:"label"`
	Path  string `json:"path" yaml:"path"`
	Icon  string `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// DashboardPath returns the dashboard-home route for a role
func DashboardPath(role model.Role) string {
	switch role {
	case model.RoleAdmin:
		return "/admin"
	case model.RoleLibrarian:
		return "/librarian"
	case model.RoleUser:
		return "/user"
	default:
		return "/"
	}
}

// Role-specific entries, dashboard home excluded. The switch is exhaustive
// over the closed role enum; ParseRole guarantees no other values exist.
func roleItems(role model.Role) []Item {
	switch role {
	case model.RoleAdmin:
		return []Item{
			{Label: "Users", Path: "/admin/users", Icon: "users"},
			{Label: "Catalog", Path: "/admin/catalog", Icon: "library"},
			{Label: "Reports", Path: "/admin/reports", Icon: "chart"},
			{Label: "Settings", Path: "/admin/settings", Icon: "gear"},
		}
	case model.RoleLibrarian:
		return []Item{
			{Label: "Catalog", Path: "/librarian/catalog", Icon: "library"},
			{Label: "Circulation", Path: "/librarian/circulation", Icon: "swap"},
			{Label: "Members", Path: "/librarian/members", Icon: "users"},
		}
	case model.RoleUser:
		return []Item{
			{Label: "Browse Books", Path: "/user/books", Icon: "book"},
			{Label: "My Loans", Path: "/user/history", Icon: "clock"},
			{Label: "Profile", Path: "/user/profile", Icon: "person"},
		}
	default:
		return []Item{
			{Label: "Browse Books", Path: "/books", Icon: "book"},
			{Label: "FAQs", Path: "/faqs", Icon: "question"},
			{Label: "About", Path: "/about", Icon: "info"},
			{Label: "Contact", Path: "/contact", Icon: "mail"},
		}
	}
}

// ItemsFor returns the ordered navigation list for a role. The first entry
// is always the dashboard-home item and the list is never empty; unknown
// roles get the guest list.
func ItemsFor(role model.Role) []Item {
	role = model.ParseRole(string(role))
	items := []Item{{Label: "Dashboard", Path: DashboardPath(role), Icon: "home"}}
	return append(items, roleItems(role)...)
}

// IsActive reports whether an item should be highlighted for the current
// path. Dashboard-home entries match exactly; everything else matches by
// prefix so nested routes keep their section lit.
func IsActive(item Item, role model.Role, currentPath string) bool {
	if item.Path == DashboardPath(model.ParseRole(string(role))) {
		return currentPath == item.Path
	}
	return strings.HasPrefix(currentPath, item.Path)
}
