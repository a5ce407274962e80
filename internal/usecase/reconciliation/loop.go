package reconciliation

import (
	"context"
	"errors"
	"io"
	"log"
	"slices"
	"sync"
	"time"

	"mecanica_xpto_quotes/internal/domain/quoting"
)

const DefaultPollInterval = 5 * time.Second

var (
	ErrLoopAlreadyStarted = errors.New("reconciliation loop already started")
	ErrLoopStopped        = errors.New("reconciliation loop stopped")
)

// SnapshotFetcher reads a session and all of its response slots at once.
type SnapshotFetcher interface {
	Snapshot(ctx context.Context, sessionID string) (quoting.Snapshot, error)
}

// Loop polls one session and keeps the latest projection of it.
//
// Each successful fetch replaces the whole projection. A fetch that started
// before an already applied one is dropped. Once the session is seen in a
// terminal status, ticks stop fetching; Refresh still forces a read.
type Loop struct {
	sessionID string
	fetcher   SnapshotFetcher
	interval  time.Duration
	logger    *log.Logger

	mu          sync.Mutex
	latest      quoting.Projection
	hasLatest   bool
	idle        bool
	running     bool
	stopped     bool
	nextSeq     uint64
	appliedSeq  uint64
	subscribers []func(quoting.Projection)
	cancel      context.CancelFunc
	stopCh      chan struct{}
	doneCh      chan struct{}

	now           func() time.Time
	tickerFactory func(interval time.Duration) loopTicker
}

func NewLoop(sessionID string, fetcher SnapshotFetcher, interval time.Duration, logger *log.Logger) *Loop {
	if fetcher == nil {
		panic("reconciliation: fetcher is required")
	}
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Loop{
		sessionID: sessionID,
		fetcher:   fetcher,
		interval:  interval,
		logger:    logger,
		now: func() time.Time {
			return time.Now().UTC()
		},
		tickerFactory: func(interval time.Duration) loopTicker {
			return newRealTicker(interval)
		},
	}
}

func (l *Loop) SessionID() string {
	return l.sessionID
}

// Subscribe registers fn to be called with every applied projection. fn runs
// outside the loop lock and must not call Stop.
func (l *Loop) Subscribe(fn func(quoting.Projection)) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	l.subscribers = append(l.subscribers, fn)
	l.mu.Unlock()
}

// Start fetches immediately and then once per interval until Stop or until
// ctx is done.
func (l *Loop) Start(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return ErrLoopStopped
	}
	if l.running {
		l.mu.Unlock()
		return ErrLoopAlreadyStarted
	}
	runCtx, cancel := context.WithCancel(ctx)
	stopCh := make(chan struct{})
	doneCh := make(chan struct{})
	ticker := l.tickerFactory(l.interval)
	l.running = true
	l.cancel = cancel
	l.stopCh = stopCh
	l.doneCh = doneCh
	l.mu.Unlock()

	l.logger.Printf("[quote][reconcile] loop start session_id=%s interval=%s", l.sessionID, l.interval)
	go l.run(runCtx, ticker, stopCh, doneCh)
	return nil
}

// Stop is final. Once it returns no fetch is started and results of fetches
// still in flight are dropped.
func (l *Loop) Stop() {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return
	}
	l.stopped = true
	running := l.running
	cancel := l.cancel
	stopCh := l.stopCh
	doneCh := l.doneCh
	l.running = false
	l.cancel = nil
	l.stopCh = nil
	l.doneCh = nil
	l.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if running {
		close(stopCh)
		<-doneCh
	}
	l.logger.Printf("[quote][reconcile] loop stop session_id=%s", l.sessionID)
}

// Refresh forces one fetch. On failure it returns the previous projection
// flagged stale (zero if there is none) along with the error.
func (l *Loop) Refresh(ctx context.Context) (quoting.Projection, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	return l.fetch(ctx)
}

func (l *Loop) Latest() (quoting.Projection, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.latest, l.hasLatest
}

// Idle reports whether the last applied projection was terminal.
func (l *Loop) Idle() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.idle
}

func (l *Loop) run(ctx context.Context, ticker loopTicker, stopCh <-chan struct{}, doneCh chan<- struct{}) {
	defer close(doneCh)
	defer ticker.Stop()

	l.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-stopCh:
			return
		case <-ticker.Chan():
			l.tick(ctx)
		}
	}
}

func (l *Loop) tick(ctx context.Context) {
	if l.Idle() {
		return
	}
	_, _ = l.fetch(ctx)
}

func (l *Loop) fetch(ctx context.Context) (quoting.Projection, error) {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return quoting.Projection{}, ErrLoopStopped
	}
	l.nextSeq++
	seq := l.nextSeq
	l.mu.Unlock()

	snap, err := l.fetcher.Snapshot(ctx, l.sessionID)
	now := l.now()

	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return quoting.Projection{}, ErrLoopStopped
	}
	if seq < l.appliedSeq {
		current := l.latest
		l.mu.Unlock()
		l.logger.Printf("[quote][reconcile] fetch discarded session_id=%s seq=%d", l.sessionID, seq)
		return current, err
	}
	if err != nil {
		if l.hasLatest {
			l.latest.Stale = true
		}
		stale := l.latest
		l.mu.Unlock()
		l.logger.Printf("[quote][reconcile] fetch failed session_id=%s seq=%d err=%v", l.sessionID, seq, err)
		return stale, err
	}

	p := quoting.Project(snap, now)
	wasIdle := l.idle
	l.appliedSeq = seq
	l.latest = p
	l.hasLatest = true
	l.idle = p.IsTerminal()
	subs := slices.Clone(l.subscribers)
	l.mu.Unlock()

	if l.idle && !wasIdle {
		l.logger.Printf("[quote][reconcile] loop idle session_id=%s status=%s winner_supplier_id=%s", l.sessionID, p.Status, p.WinnerSupplierID)
	}
	for _, fn := range subs {
		fn(p)
	}
	return p, nil
}

type loopTicker interface {
	Chan() <-chan time.Time
	Stop()
}

type realTicker struct {
	ticker *time.Ticker
}

func newRealTicker(interval time.Duration) *realTicker {
	return &realTicker{ticker: time.NewTicker(interval)}
}

func (t *realTicker) Chan() <-chan time.Time {
	return t.ticker.C
}

func (t *realTicker) Stop() {
	t.ticker.Stop()
}
