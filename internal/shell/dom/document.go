// Package dom is the in-process stand-in for document-level browser
// events. Shell components acquire listeners scoped to their lifetime:
// every subscription returns a cancel function the owner must call on
// unmount, so listeners cannot leak across mount cycles.
package dom

import (
	"sync"

	"github.com/google/uuid"
)

// ClickEvent describes where a click landed. Containers holds the ids of
// every registered container the click point falls inside.
type ClickEvent struct {
	Containers map[string]bool
}

// Inside reports whether the click landed within the named container
func (e ClickEvent) Inside(container string) bool {
	return e.Containers[container]
}

// Document fans document events out to subscribed listeners
type Document struct {
	mu       sync.RWMutex
	clicks   map[uuid.UUID]func(ClickEvent)
	scrolls  map[uuid.UUID]func(offset int)
	resizes  map[uuid.UUID]func(width int)
	navigate map[uuid.UUID]func(path string)
}

// NewDocument creates an empty event bus
func NewDocument() *Document {
	return &Document{
		clicks:   make(map[uuid.UUID]func(ClickEvent)),
		scrolls:  make(map[uuid.UUID]func(int)),
		resizes:  make(map[uuid.UUID]func(int)),
		navigate: make(map[uuid.UUID]func(string)),
	}
}

// OnClick subscribes to click events
func (d *Document) OnClick(fn func(ClickEvent)) (cancel func()) {
	id := uuid.New()
	d.mu.Lock()
	d.clicks[id] = fn
	d.mu.Unlock()
	return func() {
		d.mu.Lock()
		delete(d.clicks, id)
		d.mu.Unlock()
	}
}

// OnScroll subscribes to scroll offset updates
func (d *Document) OnScroll(fn func(offset int)) (cancel func()) {
	id := uuid.New()
	d.mu.Lock()
	d.scrolls[id] = fn
	d.mu.Unlock()
	return func() {
		d.mu.Lock()
		delete(d.scrolls, id)
		d.mu.Unlock()
	}
}

// OnResize subscribes to viewport width changes
func (d *Document) OnResize(fn func(width int)) (cancel func()) {
	id := uuid.New()
	d.mu.Lock()
	d.resizes[id] = fn
	d.mu.Unlock()
	return func() {
		d.mu.Lock()
		delete(d.resizes, id)
		d.mu.Unlock()
	}
}

// OnNavigate subscribes to route changes
func (d *Document) OnNavigate(fn func(path string)) (cancel func()) {
	id := uuid.New()
	d.mu.Lock()
	d.navigate[id] = fn
	d.mu.Unlock()
	return func() {
		d.mu.Lock()
		delete(d.navigate, id)
		d.mu.Unlock()
	}
}

// ListenerCount returns the number of live subscriptions, all kinds
func (d *Document) ListenerCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.clicks) + len(d.scrolls) + len(d.resizes) + len(d.navigate)
}

// Click dispatches a click that landed inside the named containers
func (d *Document) Click(containers ...string) {
	set := make(map[string]bool, len(containers))
	for _, c := range containers {
		set[c] = true
	}
	ev := ClickEvent{Containers: set}

	for _, fn := range d.clickListeners() {
		fn(ev)
	}
}

// Scroll dispatches a scroll offset update
func (d *Document) Scroll(offset int) {
	d.mu.RLock()
	fns := make([]func(int), 0, len(d.scrolls))
	for _, fn := range d.scrolls {
		fns = append(fns, fn)
	}
	d.mu.RUnlock()
	for _, fn := range fns {
		fn(offset)
	}
}

// Resize dispatches a viewport width change
func (d *Document) Resize(width int) {
	d.mu.RLock()
	fns := make([]func(int), 0, len(d.resizes))
	for _, fn := range d.resizes {
		fns = append(fns, fn)
	}
	d.mu.RUnlock()
	for _, fn := range fns {
		fn(width)
	}
}

// Navigate dispatches a route change
func (d *Document) Navigate(path string) {
	d.mu.RLock()
	fns := make([]func(string), 0, len(d.navigate))
	for _, fn := range d.navigate {
		fns = append(fns, fn)
	}
	d.mu.RUnlock()
	for _, fn := range fns {
		fn(path)
	}
}

func (d *Document) clickListeners() []func(ClickEvent) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	fns := make([]func(ClickEvent), 0, len(d.clicks))
	for _, fn := range d.clicks {
		fns = append(fns, fn)
	}
	return fns
}
