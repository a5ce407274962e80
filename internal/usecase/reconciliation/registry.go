package reconciliation

import (
	"context"
	"io"
	"log"
	"strings"
	"sync"
	"time"

	"mecanica_xpto_quotes/internal/domain/quoting"
	"mecanica_xpto_quotes/internal/usecase"
)

// Registry runs one Loop per watched session. Loops are released once their
// session settles; the next Watch starts a fresh one.
type Registry struct {
	ctx      context.Context
	fetcher  SnapshotFetcher
	interval time.Duration
	logger   *log.Logger

	mu    sync.Mutex
	loops map[string]*Loop

	newLoop func(sessionID string) *Loop
}

var _ usecase.IQuoteMonitor = (*Registry)(nil)

// NewRegistry builds a registry whose loops live until ctx is done or
// StopAll is called.
func NewRegistry(ctx context.Context, fetcher SnapshotFetcher, interval time.Duration, logger *log.Logger) *Registry {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	r := &Registry{
		ctx:      ctx,
		fetcher:  fetcher,
		interval: interval,
		logger:   logger,
		loops:    make(map[string]*Loop),
	}
	r.newLoop = func(sessionID string) *Loop {
		return NewLoop(sessionID, r.fetcher, r.interval, r.logger)
	}
	return r
}

func (r *Registry) Watch(ctx context.Context, sessionID string) (quoting.Projection, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return quoting.Projection{}, usecase.ErrInvalidSessionID
	}

	l, created, err := r.loopFor(sessionID)
	if err != nil {
		return quoting.Projection{}, err
	}
	if !created {
		if p, ok := l.Latest(); ok {
			return p, nil
		}
	}
	return r.refresh(ctx, l)
}

func (r *Registry) Refresh(ctx context.Context, sessionID string) (quoting.Projection, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return quoting.Projection{}, usecase.ErrInvalidSessionID
	}

	l, _, err := r.loopFor(sessionID)
	if err != nil {
		return quoting.Projection{}, err
	}
	return r.refresh(ctx, l)
}

func (r *Registry) Forget(sessionID string) {
	r.mu.Lock()
	l, ok := r.loops[sessionID]
	delete(r.loops, sessionID)
	r.mu.Unlock()

	if ok {
		l.Stop()
	}
}

func (r *Registry) StopAll() {
	r.mu.Lock()
	loops := make([]*Loop, 0, len(r.loops))
	for id, l := range r.loops {
		loops = append(loops, l)
		delete(r.loops, id)
	}
	r.mu.Unlock()

	for _, l := range loops {
		l.Stop()
	}
	r.logger.Printf("[quote][monitor] stopped loops=%d", len(loops))
}

// Watching reports how many sessions currently have a running loop.
func (r *Registry) Watching() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.loops)
}

func (r *Registry) loopFor(sessionID string) (*Loop, bool, error) {
	r.mu.Lock()
	if l, ok := r.loops[sessionID]; ok {
		r.mu.Unlock()
		return l, false, nil
	}
	l := r.newLoop(sessionID)
	r.loops[sessionID] = l
	r.mu.Unlock()

	l.Subscribe(func(p quoting.Projection) {
		if p.IsTerminal() {
			go r.release(l)
		}
	})
	if err := l.Start(r.ctx); err != nil {
		r.release(l)
		return nil, false, err
	}
	r.logger.Printf("[quote][monitor] watch session_id=%s", sessionID)
	return l, true, nil
}

// refresh falls back to the last applied projection when the session was
// read before (stale on fetch failure, final when the loop settled
// meanwhile). A session that was never read successfully is released.
func (r *Registry) refresh(ctx context.Context, l *Loop) (quoting.Projection, error) {
	p, err := l.Refresh(ctx)
	if err == nil || p.SessionID != "" {
		return p, nil
	}
	if latest, ok := l.Latest(); ok {
		return latest, nil
	}
	r.release(l)
	return quoting.Projection{}, err
}

// release drops l only if it is still the registered loop of its session.
func (r *Registry) release(l *Loop) {
	r.mu.Lock()
	if current, ok := r.loops[l.SessionID()]; ok && current == l {
		delete(r.loops, l.SessionID())
	}
	r.mu.Unlock()
	l.Stop()
}
