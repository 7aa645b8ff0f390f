package main

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Registry holds one Controller per contact form in use. The first submit from a page
// mounts an instance; an explicit unmount, the idle sweep or eviction at the size
// limit tears it down.
type Registry struct {
	relay   Relay
	opts    []Option
	ttl     time.Duration
	limit   int
	logger  *slog.Logger
	metrics *ContactMetrics
	now     func() time.Time

	mu    sync.Mutex
	forms map[string]*Controller
}

func NewRegistry(relay Relay, ttl time.Duration, logger *slog.Logger, metrics *ContactMetrics, opts ...Option) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		relay:   relay,
		opts:    opts,
		ttl:     ttl,
		logger:  logger,
		metrics: metrics,
		now:     time.Now,
		forms:   make(map[string]*Controller),
	}
}

// SetLimit caps the number of mounted instances. Mounting past the cap evicts the
// least recently used instance that has no relay call in flight. n <= 0 removes the cap.
func (r *Registry) SetLimit(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.limit = n
}

// Mount creates a fresh Idle controller and returns its instance ID.
func (r *Registry) Mount() (string, *Controller) {
	id := uuid.NewString()
	opts := append([]Option{}, r.opts...)
	opts = append(opts,
		WithClock(func() time.Time { return r.now() }),
		WithObserver(transitionLogger(r.logger, id)),
		WithObserver(r.metrics.Observer()),
	)
	c := NewController(r.relay, opts...)

	r.mu.Lock()
	var evict string
	limit := r.limit
	if limit > 0 && len(r.forms) >= limit {
		evict = r.oldestLocked()
	}
	r.forms[id] = c
	n := len(r.forms)
	r.mu.Unlock()

	r.metrics.SetInstances(n)
	r.logger.Debug("form instance mounted", "form_id", id)
	if evict != "" && r.Unmount(evict) {
		r.logger.Info("form instance evicted at limit", "form_id", evict, "limit", limit)
	}
	return id, c
}

// oldestLocked returns the least recently used instance not currently submitting.
func (r *Registry) oldestLocked() string {
	var (
		oldest string
		since  time.Time
	)
	for id, c := range r.forms {
		if c.Status() == StatusSubmitting {
			continue
		}
		if t := c.IdleSince(); oldest == "" || t.Before(since) {
			oldest, since = id, t
		}
	}
	return oldest
}

func (r *Registry) Get(id string) (*Controller, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.forms[id]
	return c, ok
}

// Unmount closes and forgets the instance. It reports whether id was mounted.
func (r *Registry) Unmount(id string) bool {
	r.mu.Lock()
	c, ok := r.forms[id]
	if ok {
		delete(r.forms, id)
	}
	n := len(r.forms)
	r.mu.Unlock()

	if !ok {
		return false
	}
	c.Close()
	r.metrics.SetInstances(n)
	r.logger.Debug("form instance unmounted", "form_id", id)
	return true
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.forms)
}

// Sweep unmounts instances that have been untouched for longer than the TTL.
// Instances with a relay call in flight are kept.
func (r *Registry) Sweep(now time.Time) int {
	if r.ttl <= 0 {
		return 0
	}

	var expired []string
	r.mu.Lock()
	for id, c := range r.forms {
		if c.Status() == StatusSubmitting {
			continue
		}
		if now.Sub(c.IdleSince()) > r.ttl {
			expired = append(expired, id)
		}
	}
	r.mu.Unlock()

	for _, id := range expired {
		r.Unmount(id)
	}
	if len(expired) > 0 {
		r.logger.Info("swept idle form instances", "count", len(expired))
	}
	return len(expired)
}

// Run sweeps on every interval tick until ctx is cancelled.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep(r.now())
		}
	}
}

// Close unmounts every instance.
func (r *Registry) Close() {
	r.mu.Lock()
	ids := make([]string, 0, len(r.forms))
	for id := range r.forms {
		ids = append(ids, id)
	}
	r.mu.Unlock()

	for _, id := range ids {
		r.Unmount(id)
	}
}
