// Package sidebar is the headless model behind the dashboard side
// navigation: role-specific items, active-route tracking and the
// overlay/docked responsive behavior.
package sidebar

import (
	"sync"

	"github.com/bookhaven/lms-backend/internal/shell/dom"
	"github.com/bookhaven/lms-backend/internal/shell/nav"
	"github.com/bookhaven/lms-backend/model"
)

// Container id used for outside-click hit testing
const Container = "sidebar"

// DockBreakpoint is the viewport width, in pixels, at and above which the
// sidebar is permanently docked.
const DockBreakpoint = 1024

// Sidebar is the side navigation model for one role's dashboard
type Sidebar struct {
	mu sync.Mutex

	role model.Role
	doc  *dom.Document

	path          string
	open          bool
	viewportWidth int
	isHomePage    bool
	isScrolled    bool

	cancels []func()
	mounted bool
}

// New creates an unmounted sidebar for a role
func New(role model.Role, doc *dom.Document) *Sidebar {
	return &Sidebar{
		role:          model.ParseRole(string(role)),
		doc:           doc,
		path:          nav.DashboardPath(role),
		viewportWidth: DockBreakpoint,
	}
}

// Mount attaches document listeners; Unmount must be called when the
// owning layout goes away.
func (s *Sidebar) Mount() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mounted {
		return
	}
	s.mounted = true

	s.cancels = append(s.cancels,
		s.doc.OnClick(s.handleDocumentClick),
		s.doc.OnResize(s.handleResize),
		s.doc.OnNavigate(s.handleNavigate),
	)
}

// Unmount releases every listener Mount acquired
func (s *Sidebar) Unmount() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cancel := range s.cancels {
		cancel()
	}
	s.cancels = nil
	s.mounted = false
}

// Items returns the ordered navigation list for the sidebar's role
func (s *Sidebar) Items() []nav.Item {
	return nav.ItemsFor(s.role)
}

// IsActive reports whether an item matches the current route
func (s *Sidebar) IsActive(item nav.Item) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return nav.IsActive(item, s.role, s.path)
}

// SetOpen sets the overlay flag. Ignored while docked.
func (s *Sidebar) SetOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.docked() {
		return
	}
	s.open = open
}

// Toggle flips the overlay flag. Ignored while docked.
func (s *Sidebar) Toggle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.docked() {
		return
	}
	s.open = !s.open
}

// Visible reports whether the sidebar should render: always when docked,
// only while open when it is an overlay.
func (s *Sidebar) Visible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.docked() || s.open
}

// Docked reports whether the viewport is wide enough to pin the sidebar
func (s *Sidebar) Docked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.docked()
}

func (s *Sidebar) docked() bool {
	return s.viewportWidth >= DockBreakpoint
}

// SetScrollState mirrors the navbar's scroll/home predicates so the two
// components compute the same offsets.
func (s *Sidebar) SetScrollState(isHomePage, isScrolled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isHomePage = isHomePage
	s.isScrolled = isScrolled
}

// TopOffset returns the y position the sidebar must start at to sit flush
// under the navbar.
func (s *Sidebar) TopOffset() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return nav.Style(s.isHomePage, s.isScrolled).Height
}

// An outside click dismisses the overlay; docked sidebars ignore clicks
func (s *Sidebar) handleDocumentClick(ev dom.ClickEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.docked() {
		return
	}
	if s.open && !ev.Inside(Container) {
		s.open = false
	}
}

func (s *Sidebar) handleResize(width int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewportWidth = width
	if s.docked() {
		s.open = false
	}
}

// Navigation closes the overlay and records the new active path
func (s *Sidebar) handleNavigate(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.path = path
	if !s.docked() {
		s.open = false
	}
}
