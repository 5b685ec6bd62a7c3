package router

import (
	"sync"

	"github.com/devforge/buildlog/internal/logging"
	"github.com/devforge/buildlog/pkg/interfaces"
)

// History is the publish side of the address representation: the router
// writes a fragment per state change and never reads it back. Keeping the
// two directions as independent flows (publish here, HandleFragment for the
// subscribe side) avoids the re-entrancy hazard of a single shared variable.
type History interface {
	// Push records a new fragment as a distinct history entry so back and
	// forward navigation has granular steps per view change.
	Push(fragment string)
}

// Listener observes state changes in registration order.
type Listener func(ViewState)

// Router owns the single view-state value and keeps it synchronized with an
// address fragment. Mutation happens exclusively through Set (navigation
// handlers) or HandleFragment (external fragment changes); there is no
// terminal state.
type Router struct {
	mu            sync.Mutex
	state         ViewState
	history       History
	listeners     []Listener
	lastPublished string
	logger        interfaces.Logger
}

// New parses the initial fragment exactly once and returns a router rooted
// at the resulting state. history may be nil when no address representation
// exists (static builds, tests).
func New(initialFragment string, history History, logger interfaces.Logger) *Router {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Router{
		state:   ParseFragment(initialFragment),
		history: history,
		logger:  logger,
	}
}

// Current returns the active view state.
func (r *Router) Current() ViewState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Set replaces the current state unconditionally and publishes the matching
// fragment. No guard validates that a post slug exists; existence is
// resolved lazily at render time.
func (r *Router) Set(state ViewState) {
	r.mu.Lock()
	r.state = state
	fragment := state.Fragment()
	r.lastPublished = fragment
	history := r.history
	listeners := append([]Listener(nil), r.listeners...)
	r.mu.Unlock()

	if history != nil {
		history.Push(fragment)
	}
	r.logger.Debug("view state set", "fragment", fragment)

	for _, fn := range listeners {
		fn(state)
	}
}

// HandleFragment is the subscribe side: external fragment changes (back and
// forward navigation) re-derive the state with the same parse used at
// startup. A notification matching the router's own last publish is the echo
// of Set and is ignored, so a state-driven write is never misread as an
// external change.
func (r *Router) HandleFragment(fragment string) {
	r.mu.Lock()
	if r.lastPublished != "" && fragment == r.lastPublished {
		r.lastPublished = ""
		r.mu.Unlock()
		return
	}
	r.lastPublished = ""
	state := ParseFragment(fragment)
	r.state = state
	listeners := append([]Listener(nil), r.listeners...)
	r.mu.Unlock()

	r.logger.Debug("view state derived from fragment", "fragment", fragment)

	for _, fn := range listeners {
		fn(state)
	}
}

// Subscribe registers a listener invoked after every state change.
func (r *Router) Subscribe(fn Listener) {
	if fn == nil {
		return
	}
	r.mu.Lock()
	r.listeners = append(r.listeners, fn)
	r.mu.Unlock()
}

// MemoryHistory is an in-memory History used by tests and the preview
// server. It records every pushed fragment and can walk backwards the way a
// browser would.
type MemoryHistory struct {
	mu      sync.Mutex
	entries []string
	cursor  int
}

// NewMemoryHistory returns an empty history.
func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{cursor: -1}
}

// Push appends a fragment, discarding any forward entries past the cursor.
func (h *MemoryHistory) Push(fragment string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries[:h.cursor+1], fragment)
	h.cursor = len(h.entries) - 1
}

// Current returns the fragment at the cursor, or "" when empty.
func (h *MemoryHistory) Current() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cursor < 0 || h.cursor >= len(h.entries) {
		return ""
	}
	return h.entries[h.cursor]
}

// Back moves the cursor one entry back and returns the fragment there. The
// boolean is false when there is nothing to go back to.
func (h *MemoryHistory) Back() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cursor <= 0 {
		return "", false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Forward moves the cursor one entry forward and returns the fragment there.
func (h *MemoryHistory) Forward() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cursor+1 >= len(h.entries) {
		return "", false
	}
	h.cursor++
	return h.entries[h.cursor], true
}

// Len reports how many entries the history holds.
func (h *MemoryHistory) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}
