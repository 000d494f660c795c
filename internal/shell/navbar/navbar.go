// Package navbar is the headless model behind the top navigation bar:
// role-conditional links, the user dropdown and mobile menu, scroll-driven
// styling and the logout flow.
package navbar

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/bookhaven/lms-backend/internal/shell/dom"
	"github.com/bookhaven/lms-backend/internal/shell/nav"
	"github.com/bookhaven/lms-backend/internal/shell/profile"
	"github.com/bookhaven/lms-backend/internal/shell/role"
	"github.com/bookhaven/lms-backend/internal/shell/session"
	"github.com/bookhaven/lms-backend/model"
	"github.com/bookhaven/lms-backend/util"
)

// Container ids used for outside-click hit testing
const (
	UserMenuContainer   = "navbar-user-menu"
	MobileMenuContainer = "navbar-mobile-menu"
)

// Navigator performs route changes on behalf of the shell
type Navigator interface {
	Navigate(path string)
	// ForceNavigate replaces the whole view, discarding in-memory state.
	ForceNavigate(path string)
}

// Navbar is the navigation bar model. Create with New, then Mount to
// attach document listeners and Unmount to release them.
type Navbar struct {
	mu sync.Mutex

	session   *session.Store
	profiles  *profile.Loader
	doc       *dom.Document
	navigator Navigator

	path           string
	userMenuOpen   bool
	mobileMenuOpen bool
	loggingOut     bool
	scroll         nav.ScrollTracker

	cancels []func()
	mounted bool
}

// New creates an unmounted navbar model
func New(sess *session.Store, profiles *profile.Loader, doc *dom.Document, navigator Navigator) *Navbar {
	return &Navbar{
		session:   sess,
		profiles:  profiles,
		doc:       doc,
		navigator: navigator,
		path:      "/",
	}
}

// Mount attaches the document-level listeners. Mounting twice is a no-op.
func (n *Navbar) Mount() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.mounted {
		return
	}
	n.mounted = true

	n.cancels = append(n.cancels,
		n.doc.OnClick(n.handleDocumentClick),
		n.doc.OnScroll(n.handleScroll),
		n.doc.OnNavigate(n.handleNavigate),
	)
}

// Unmount releases every listener Mount acquired
func (n *Navbar) Unmount() {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, cancel := range n.cancels {
		cancel()
	}
	n.cancels = nil
	n.mounted = false
}

// ToggleUserMenu flips the user dropdown; the mobile menu is unaffected
func (n *Navbar) ToggleUserMenu() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.userMenuOpen = !n.userMenuOpen
}

// ToggleMobileMenu flips the mobile menu; the user dropdown is unaffected
func (n *Navbar) ToggleMobileMenu() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.mobileMenuOpen = !n.mobileMenuOpen
}

// UserMenuOpen reports the dropdown state
func (n *Navbar) UserMenuOpen() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.userMenuOpen
}

// MobileMenuOpen reports the mobile menu state
func (n *Navbar) MobileMenuOpen() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.mobileMenuOpen
}

// IsHomePage reports whether the current route is the landing page
func (n *Navbar) IsHomePage() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.path == "/"
}

// IsScrolled reports whether the page has scrolled past the threshold
func (n *Navbar) IsScrolled() bool {
	return n.scroll.IsScrolled()
}

// Style computes the current appearance bundle
func (n *Navbar) Style() nav.StyleBundle {
	return nav.Style(n.IsHomePage(), n.scroll.IsScrolled())
}

// Role resolves the effective role for link rendering
func (n *Navbar) Role() (model.Role, bool) {
	snap := n.session.Snapshot()
	p, _ := n.profiles.Snapshot()
	return role.Resolve(snap.User, p, snap.AuthInitialized)
}

// Links returns the navigation items for the effective role, or nil while
// the session is still initializing.
func (n *Navbar) Links() []nav.Item {
	r, ok := n.Role()
	if !ok {
		return nil
	}
	return nav.ItemsFor(r)
}

// HandleLogout performs logout once, no matter how fast it is re-triggered.
// The profile is cleared optimistically; on success the whole view is
// replaced with the landing page. Failures unlock the guard and are only
// logged.
func (n *Navbar) HandleLogout(ctx context.Context) {
	n.mu.Lock()
	if n.loggingOut {
		n.mu.Unlock()
		return
	}
	n.loggingOut = true
	n.userMenuOpen = false
	n.mu.Unlock()

	n.profiles.Deactivate()

	if err := n.session.Logout(ctx); err != nil {
		util.Logger.Warn("navbar logout failed", zap.Error(err))
		n.mu.Lock()
		n.loggingOut = false
		n.mu.Unlock()
		return
	}

	n.mu.Lock()
	n.loggingOut = false
	n.mu.Unlock()
	n.navigator.ForceNavigate("/")
}

// IsLoggingOut reports whether a logout is in flight
func (n *Navbar) IsLoggingOut() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.loggingOut
}

// A click outside an open menu's container closes that menu; clicks
// inside leave it alone. The two menus are judged independently.
func (n *Navbar) handleDocumentClick(ev dom.ClickEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.userMenuOpen && !ev.Inside(UserMenuContainer) {
		n.userMenuOpen = false
	}
	if n.mobileMenuOpen && !ev.Inside(MobileMenuContainer) {
		n.mobileMenuOpen = false
	}
}

func (n *Navbar) handleScroll(offset int) {
	if n.scroll.Track(offset) {
		// One flush per scheduled frame; intermediate offsets collapse.
		n.scroll.Flush()
	}
}

func (n *Navbar) handleNavigate(path string) {
	n.mu.Lock()
	n.path = path
	n.mobileMenuOpen = false
	n.userMenuOpen = false
	n.mu.Unlock()
}
