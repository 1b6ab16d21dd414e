// Package session keeps one widget per browser session for the page lifetime.
package session

import (
	"context"
	"sync"
	"time"

	"shopwidget/internal/widget"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Factory builds the widget of a new session.
type Factory func() *widget.Widget

type entry struct {
	widget   *widget.Widget
	lastSeen time.Time
}

// Registry maps session ids to widgets. Idle sessions expire after ttl;
// a zero ttl keeps sessions forever.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*entry
	ttl     time.Duration
	factory Factory
	logger  *zap.Logger
	now     func() time.Time
}

func NewRegistry(factory Factory, ttl time.Duration, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		entries: make(map[string]*entry),
		ttl:     ttl,
		factory: factory,
		logger:  logger,
		now:     time.Now,
	}
}

// Open returns the widget for id, creating a fresh session when id is unknown,
// malformed or expired. The returned id is the one the client must keep.
func (r *Registry) Open(id string) (string, *widget.Widget, bool) {
	if w, ok := r.Lookup(id); ok {
		return id, w, false
	}

	newID := uuid.NewString()
	w := r.factory()
	r.mu.Lock()
	r.entries[newID] = &entry{widget: w, lastSeen: r.now()}
	r.mu.Unlock()
	r.logger.Debug("session opened", zap.String("session_id", newID))
	return newID, w, true
}

// Lookup returns the live widget for id and refreshes its idle timer.
func (r *Registry) Lookup(id string) (*widget.Widget, bool) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return nil, false
	}
	now := r.now()
	if r.expired(e, now) {
		delete(r.entries, id)
		return nil, false
	}
	e.lastSeen = now
	return e.widget, true
}

// Sweep drops expired sessions and returns how many were removed.
func (r *Registry) Sweep() int {
	if r.ttl <= 0 {
		return 0
	}
	now := r.now()
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, e := range r.entries {
		if r.expired(e, now) {
			delete(r.entries, id)
			removed++
		}
	}
	return removed
}

// Run sweeps every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	if r.ttl <= 0 || interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				r.logger.Info("expired sessions swept", zap.Int("count", n))
			}
		}
	}
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

func (r *Registry) expired(e *entry, now time.Time) bool {
	return r.ttl > 0 && now.Sub(e.lastSeen) > r.ttl
}
