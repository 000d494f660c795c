// Package profile drives the fetch-on-auth-change flow for role profiles.
//
// The loader is a small state machine: Idle until a session becomes
// authenticated, Loading while a fetch is in flight, then Loaded or
// Errored. Logout returns it to Idle. Every fetch carries a generation
// number; a response whose generation is no longer current is discarded,
// so a slow stale fetch can never overwrite fresher state.
package profile

import (
	"context"
	"sync"

	"github.com/cenkalti/backoff"
	"go.uber.org/zap"

	"github.com/bookhaven/lms-backend/model"
	"github.com/bookhaven/lms-backend/util"
)

// State names the loader phases
type State int

// Loader phases
const (
	Idle State = iota
	Loading
	Loaded
	Errored
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Errored:
		return "errored"
	default:
		return "idle"
	}
}

// Fetcher retrieves the profile for a role from the backend
type Fetcher interface {
	FetchProfile(ctx context.Context, role model.Role) (*model.Profile, error)
}

// Loader owns the fetched profile for the current authenticated session
type Loader struct {
	mu         sync.Mutex
	fetcher    Fetcher
	retries    uint64
	state      State
	profile    *model.Profile
	generation uint64
	cancel     context.CancelFunc
}

// NewLoader creates a loader; transient fetch failures are retried up to
// three times with exponential backoff before the loader reports Errored.
func NewLoader(fetcher Fetcher) *Loader {
	return &Loader{fetcher: fetcher, retries: 3}
}

// Snapshot returns the current profile and loading flag. The stale profile
// is intentionally kept visible while a refresh is in flight.
func (l *Loader) Snapshot() (*model.Profile, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var p *model.Profile
	if l.profile != nil {
		cp := *l.profile
		p = &cp
	}
	return p, l.state == Loading
}

// State returns the current loader phase
func (l *Loader) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Activate starts a fetch for the given role. Any earlier in-flight fetch
// is cancelled and its eventual result discarded. The stale profile stays
// in place until the new fetch resolves.
func (l *Loader) Activate(ctx context.Context, role model.Role) {
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.generation++
	gen := l.generation
	l.state = Loading

	fetchCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.mu.Unlock()

	go l.fetch(fetchCtx, role, gen)
}

// Deactivate clears the profile on logout and invalidates any in-flight
// fetch.
func (l *Loader) Deactivate() {
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.generation++
	l.state = Idle
	l.profile = nil
	l.mu.Unlock()
}

func (l *Loader) fetch(ctx context.Context, role model.Role, gen uint64) {
	var fetched *model.Profile

	op := func() error {
		p, err := l.fetcher.FetchProfile(ctx, role)
		if err != nil {
			return err
		}
		fetched = p
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), l.retries), ctx)
	err := backoff.Retry(op, policy)

	l.apply(gen, fetched, err)
}

// apply installs a fetch result if its generation is still current
func (l *Loader) apply(gen uint64, p *model.Profile, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if gen != l.generation {
		// A newer auth transition superseded this fetch.
		return
	}
	l.cancel = nil

	if err != nil {
		// Degrade silently: the UI falls back to session data.
		util.Logger.Warn("profile fetch failed", zap.Error(err))
		l.state = Errored
		l.profile = nil
		return
	}

	l.state = Loaded
	l.profile = p
}
