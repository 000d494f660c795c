// Package layout composes the shell: one Shell per app instance wires the
// session store, profile loader, navbar and auth modal together, and role
// layouts add the matching sidebar.
package layout

import (
	"context"
	"sync"

	"github.com/bookhaven/lms-backend/internal/shell/authform"
	"github.com/bookhaven/lms-backend/internal/shell/dom"
	"github.com/bookhaven/lms-backend/internal/shell/nav"
	"github.com/bookhaven/lms-backend/internal/shell/navbar"
	"github.com/bookhaven/lms-backend/internal/shell/profile"
	"github.com/bookhaven/lms-backend/internal/shell/role"
	"github.com/bookhaven/lms-backend/internal/shell/session"
	"github.com/bookhaven/lms-backend/internal/shell/sidebar"
	"github.com/bookhaven/lms-backend/model"
)

// Shell owns the cross-page chrome and the auth wiring
type Shell struct {
	Session  *session.Store
	Profiles *profile.Loader
	Doc      *dom.Document
	Navbar   *navbar.Navbar
	AuthForm *authform.Form

	navigator navbar.Navigator

	mu            sync.Mutex
	wasAuth       bool
	cancelSession func()
}

// NewShell wires the shell together. The session store and profile loader
// are injected at this composition root and passed down by reference;
// nothing below reads ambient globals.
func NewShell(svc session.Service, fetcher profile.Fetcher, navigator navbar.Navigator) *Shell {
	doc := dom.NewDocument()
	sess := session.NewStore(svc)
	loader := profile.NewLoader(fetcher)

	s := &Shell{
		Session:   sess,
		Profiles:  loader,
		Doc:       doc,
		Navbar:    navbar.New(sess, loader, doc, navigator),
		AuthForm:  authform.New(sess, navigator),
		navigator: navigator,
	}
	return s
}

// Start initializes the session and begins reacting to auth changes. The
// profile is (re)fetched on every transition into the authenticated state
// and dropped on logout.
func (s *Shell) Start(ctx context.Context) {
	s.cancelSession = s.Session.Subscribe(func(snap session.Snapshot) {
		s.onAuthChange(ctx, snap)
	})
	s.Navbar.Mount()
	s.Session.Init(ctx)
}

// Stop releases everything Start acquired
func (s *Shell) Stop() {
	if s.cancelSession != nil {
		s.cancelSession()
		s.cancelSession = nil
	}
	s.Navbar.Unmount()
	s.Profiles.Deactivate()
}

func (s *Shell) onAuthChange(ctx context.Context, snap session.Snapshot) {
	s.mu.Lock()
	was := s.wasAuth
	s.wasAuth = snap.IsAuthenticated
	s.mu.Unlock()

	switch {
	case snap.IsAuthenticated && !was:
		if r, ok := role.Resolve(snap.User, nil, snap.AuthInitialized); ok {
			s.Profiles.Activate(ctx, r)
		}
	case !snap.IsAuthenticated && was:
		s.Profiles.Deactivate()
	}
}

// Role resolves the effective role from session and fetched profile
func (s *Shell) Role() (model.Role, bool) {
	snap := s.Session.Snapshot()
	p, _ := s.Profiles.Snapshot()
	return role.Resolve(snap.User, p, snap.AuthInitialized)
}

// ============================================================================
// ROLE LAYOUTS
// ============================================================================

// Layout is one page frame: navbar chrome plus an optional sidebar
type Layout struct {
	shell   *Shell
	Sidebar *sidebar.Sidebar
}

// RenderState is everything a page template needs from the chrome
type RenderState struct {
	Role           model.Role
	RoleKnown      bool
	NavStyle       nav.StyleBundle
	NavLinks       []nav.Item
	SidebarItems   []nav.Item
	SidebarVisible bool
	SidebarTop     int
	ModalOpen      bool
}

// MainLayout is the public frame: navbar only, no sidebar
func (s *Shell) MainLayout() *Layout {
	return &Layout{shell: s}
}

// UserLayout frames the member dashboard
func (s *Shell) UserLayout() *Layout {
	return s.roleLayout(model.RoleUser)
}

// LibrarianLayout frames the librarian dashboard
func (s *Shell) LibrarianLayout() *Layout {
	return s.roleLayout(model.RoleLibrarian)
}

// AdminLayout frames the admin dashboard
func (s *Shell) AdminLayout() *Layout {
	return s.roleLayout(model.RoleAdmin)
}

func (s *Shell) roleLayout(r model.Role) *Layout {
	sb := sidebar.New(r, s.Doc)
	return &Layout{shell: s, Sidebar: sb}
}

// Mount attaches the layout's sidebar listeners, if it has one
func (l *Layout) Mount() {
	if l.Sidebar != nil {
		l.Sidebar.Mount()
	}
}

// Unmount releases the sidebar listeners
func (l *Layout) Unmount() {
	if l.Sidebar != nil {
		l.Sidebar.Unmount()
	}
}

// Snapshot computes the current chrome state. The sidebar is fed the same
// home/scroll predicates the navbar used so their offsets always agree.
func (l *Layout) Snapshot() RenderState {
	s := l.shell
	r, known := s.Role()

	state := RenderState{
		Role:      r,
		RoleKnown: known,
		NavStyle:  s.Navbar.Style(),
		NavLinks:  s.Navbar.Links(),
		ModalOpen: s.AuthForm.IsOpen(),
	}

	if l.Sidebar != nil {
		l.Sidebar.SetScrollState(s.Navbar.IsHomePage(), s.Navbar.IsScrolled())
		state.SidebarItems = l.Sidebar.Items()
		state.SidebarVisible = l.Sidebar.Visible()
		state.SidebarTop = l.Sidebar.TopOffset()
	}
	return state
}
