package layout

import (
	"context"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookhaven/lms-backend/internal/shell/profile"
	"github.com/bookhaven/lms-backend/internal/shell/session"
	"github.com/bookhaven/lms-backend/model"
)

type fakeBackend struct {
	mu sync.Mutex

	sessionUser *model.User
	loginUser   *model.User
	loginPath   string

	fetchCalls []model.Role
	profile    *model.Profile
}

func (f *fakeBackend) Login(ctx context.Context, creds session.Credentials) (*model.User, string, error) {
	return f.loginUser, f.loginPath, nil
}

func (f *fakeBackend) Register(ctx context.Context, fields session.RegisterFields) error { return nil }

func (f *fakeBackend) Logout(ctx context.Context) error { return nil }

func (f *fakeBackend) ForgotPassword(ctx context.Context, email string) error { return nil }

func (f *fakeBackend) CurrentUser(ctx context.Context) (*model.User, error) {
	return f.sessionUser, nil
}

func (f *fakeBackend) FetchProfile(ctx context.Context, role model.Role) (*model.Profile, error) {
	f.mu.Lock()
	f.fetchCalls = append(f.fetchCalls, role)
	f.mu.Unlock()
	return f.profile, nil
}

func (f *fakeBackend) calls() []model.Role {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.Role(nil), f.fetchCalls...)
}

type nopNavigator struct{}

func (nopNavigator) Navigate(string) {}

func (nopNavigator) ForceNavigate(string) {}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition never became true")
		}
		runtime.Gosched()
	}
}

func TestStartWithExistingSessionFetchesProfile(t *testing.T) {
	backend := &fakeBackend{
		sessionUser: &model.User{Username: "lisa.shelver", Role: model.RoleLibrarian},
		profile:     &model.Profile{Name: "Lisa Shelver", Role: model.RoleLibrarian},
	}
	shell := NewShell(backend, backend, nopNavigator{})

	shell.Start(context.Background())
	defer shell.Stop()

	waitFor(t, func() bool { return shell.Profiles.State() == profile.Loaded })
	assert.Equal(t, []model.Role{model.RoleLibrarian}, backend.calls())

	r, known := shell.Role()
	assert.True(t, known)
	assert.Equal(t, model.RoleLibrarian, r)
}

func TestGuestStartNeverFetches(t *testing.T) {
	backend := &fakeBackend{}
	shell := NewShell(backend, backend, nopNavigator{})

	shell.Start(context.Background())
	defer shell.Stop()

	r, known := shell.Role()
	assert.True(t, known)
	assert.Equal(t, model.RoleGuest, r)
	assert.Empty(t, backend.calls())
	assert.Equal(t, profile.Idle, shell.Profiles.State())
}

func TestLoginTransitionActivatesProfileAndLogoutClearsIt(t *testing.T) {
	backend := &fakeBackend{
		loginUser: &model.User{Username: "reader1", Role: model.RoleUser},
		loginPath: "/user",
		profile:   &model.Profile{Name: "Rowan Page", Role: model.RoleUser},
	}
	shell := NewShell(backend, backend, nopNavigator{})

	shell.Start(context.Background())
	defer shell.Stop()

	result := shell.Session.Login(context.Background(), session.Credentials{
		Username: "reader1",
		Password: "turnpage",
	})
	require.True(t, result.Success)

	waitFor(t, func() bool { return shell.Profiles.State() == profile.Loaded })
	assert.Equal(t, []model.Role{model.RoleUser}, backend.calls())

	require.NoError(t, shell.Session.Logout(context.Background()))

	assert.Equal(t, profile.Idle, shell.Profiles.State())
	p, _ := shell.Profiles.Snapshot()
	assert.Nil(t, p)

	r, known := shell.Role()
	assert.True(t, known)
	assert.Equal(t, model.RoleGuest, r)
}

func TestRoleLayoutSnapshot(t *testing.T) {
	backend := &fakeBackend{
		sessionUser: &model.User{Username: "admin", Role: model.RoleAdmin},
		profile:     &model.Profile{Name: "Ada Marsh", Role: model.RoleAdmin},
	}
	shell := NewShell(backend, backend, nopNavigator{})

	shell.Start(context.Background())
	defer shell.Stop()
	waitFor(t, func() bool { return shell.Profiles.State() == profile.Loaded })

	layout := shell.AdminLayout()
	layout.Mount()
	defer layout.Unmount()

	shell.Doc.Navigate("/admin/users")
	state := layout.Snapshot()

	assert.Equal(t, model.RoleAdmin, state.Role)
	assert.True(t, state.RoleKnown)
	require.NotEmpty(t, state.SidebarItems)
	assert.Equal(t, "Dashboard", state.SidebarItems[0].Label)
	assert.True(t, state.SidebarVisible, "default viewport is docked")
	assert.NotEmpty(t, state.NavLinks)
	assert.False(t, state.ModalOpen)
}

func TestMainLayoutHasNoSidebar(t *testing.T) {
	backend := &fakeBackend{}
	shell := NewShell(backend, backend, nopNavigator{})

	shell.Start(context.Background())
	defer shell.Stop()

	state := shell.MainLayout().Snapshot()
	assert.Empty(t, state.SidebarItems)
	assert.False(t, state.SidebarVisible)
	assert.Zero(t, state.SidebarTop)
}
