package service

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/target/salonbook-ui/internal/domain/auth"
	"github.com/target/salonbook-ui/internal/domain/dashboard"
	"github.com/target/salonbook-ui/internal/domain/messages"
)

const (
	defaultWorkspaceSessions = 10000
	defaultWorkspaceTTL      = 8 * time.Hour
)

// Workspace is the per-session dashboard state: the active section, the salon
// sub-tab, and the local messaging simulation. It survives tab switches but
// not a server restart.
type Workspace struct {
	mu     sync.Mutex
	tab    dashboard.Tab
	subTab dashboard.SalonSubTab
	inbox  *messages.Inbox
	typing messages.TypingIndicator
}

// Tab returns the active dashboard section.
func (w *Workspace) Tab() dashboard.Tab {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.tab
}

// SetTab switches the active section. Unknown values are kept verbatim so the
// content router can show its fallback.
func (w *Workspace) SetTab(t dashboard.Tab) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.tab = t
}

// SubTab returns the selected salon-details sub-tab.
func (w *Workspace) SubTab() dashboard.SalonSubTab {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.subTab
}

// SetSubTab selects a salon-details sub-tab.
func (w *Workspace) SetSubTab(s dashboard.SalonSubTab) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.subTab = s
}

// withInbox runs fn with the inbox locked. The inbox is seeded the first time
// it is touched with a known role; before that fn receives nil.
func (w *Workspace) withInbox(role auth.Role, now time.Time, fn func(*messages.Inbox, *messages.TypingIndicator)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.inbox == nil && role.IsKnown() {
		w.inbox = messages.SeedFor(role, now)
	}
	fn(w.inbox, &w.typing)
}

// WorkspaceStoreOptions configures the workspace cache.
type WorkspaceStoreOptions struct {
	MaxSessions int
	TTL         time.Duration
}

// WorkspaceStore keeps one Workspace per session id in a bounded cache. A
// workspace left untouched for TTL is dropped.
type WorkspaceStore struct {
	mu    sync.Mutex
	cache *expirable.LRU[string, *Workspace]
}

// NewWorkspaceStore constructs a WorkspaceStore.
func NewWorkspaceStore(opts WorkspaceStoreOptions) *WorkspaceStore {
	size := opts.MaxSessions
	if size <= 0 {
		size = defaultWorkspaceSessions
	}
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = defaultWorkspaceTTL
	}
	return &WorkspaceStore{cache: expirable.NewLRU[string, *Workspace](size, nil, ttl)}
}

// Get returns the workspace for sessionID, creating a fresh one on first use.
// Every call restarts the idle TTL; expirable entries otherwise expire a fixed
// time after they were added.
func (s *WorkspaceStore) Get(sessionID string) *Workspace {
	s.mu.Lock()
	defer s.mu.Unlock()
	ws, ok := s.cache.Get(sessionID)
	if !ok {
		ws = &Workspace{tab: dashboard.DefaultTab, subTab: dashboard.SubTabDetails}
	}
	s.cache.Add(sessionID, ws)
	return ws
}

// Drop forgets the workspace for sessionID.
func (s *WorkspaceStore) Drop(sessionID string) {
	s.cache.Remove(sessionID)
}

// Len reports the number of live workspaces.
func (s *WorkspaceStore) Len() int { return s.cache.Len() }
