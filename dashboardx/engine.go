package dashboardx

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/topicboard/topicboard/loggerx"
	"github.com/topicboard/topicboard/remotex"
	"github.com/topicboard/topicboard/slogx"
	"github.com/topicboard/topicboard/timerx"
)

const defaultPollInterval = time.Second

// Engine keeps the store eventually consistent with the remote topic service.
// It polls on a fixed interval and accepts out-of-band refresh triggers after
// local mutations. Triggers arriving while a poll is in flight collapse into
// at most one extra poll.
//
// Responses are applied in issue order: every fetch gets a monotonic sequence
// number when it is issued, and a response only lands if no response of a
// later-issued fetch has been applied already. A slow stale response can
// therefore never overwrite fresher data.
type Engine struct {
	svc      remotex.Service
	store    *Store
	l        *loggerx.Logger
	interval time.Duration

	trigger chan struct{}
	issued  atomic.Uint64

	mu      sync.Mutex
	applied uint64

	polls  sync.WaitGroup
	loops  sync.WaitGroup
	cancel context.CancelFunc
}

type EngineOption func(*Engine)

func WithPollInterval(d time.Duration) EngineOption {
	return func(e *Engine) {
		if d > 0 {
			e.interval = d
		}
	}
}

func WithEngineLogger(l *loggerx.Logger) EngineOption {
	return func(e *Engine) {
		e.l = l
	}
}

func NewEngine(svc remotex.Service, store *Store, opts ...EngineOption) *Engine {
	e := &Engine{
		svc:      svc,
		store:    store,
		l:        loggerx.New("dashboardx.engine"),
		interval: defaultPollInterval,
		trigger:  make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start launches the poll loops, beginning with an immediate fetch. They stop
// when ctx is cancelled or Close is called.
func (e *Engine) Start(ctx context.Context) {
	ctx, e.cancel = context.WithCancel(ctx)
	e.loops.Add(2)
	go e.timerLoop(ctx)
	go e.triggerLoop(ctx)
}

// Close stops the poll loops and waits for them and any in-flight fetches to
// finish. No timer survives a Close.
func (e *Engine) Close() {
	if e.cancel == nil {
		return
	}
	e.cancel()
	e.loops.Wait()
	e.polls.Wait()
}

// TriggerRefresh schedules one out-of-band poll as soon as possible. Triggers
// arriving while a triggered poll is still in flight collapse into a single
// trailing re-poll; nothing queues unboundedly and no trigger is lost.
func (e *Engine) TriggerRefresh() {
	select {
	case e.trigger <- struct{}{}:
	default:
		// a refresh is already pending
	}
}

func (e *Engine) timerLoop(ctx context.Context) {
	defer e.loops.Done()

	e.spawnPoll(ctx)

	timer := time.NewTimer(e.interval)
	defer timerx.StopTimer(timer)

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			e.spawnPoll(ctx)
			timer.Reset(e.interval)
		}
	}
}

// triggerLoop serves out-of-band refreshes one at a time. Polling
// synchronously here is what makes the capacity-1 trigger channel behave as a
// pending-refresh flag with a trailing re-poll.
func (e *Engine) triggerLoop(ctx context.Context) {
	defer e.loops.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case <-e.trigger:
			e.poll(context.WithoutCancel(ctx), e.issued.Add(1))
		}
	}
}

func (e *Engine) spawnPoll(ctx context.Context) {
	// Fetches overlap in flight while the loop stays responsive. They are
	// never cancelled individually; superseded results are dropped on arrival.
	seq := e.issued.Add(1)
	e.polls.Add(1)
	go func() {
		defer e.polls.Done()
		e.poll(context.WithoutCancel(ctx), seq)
	}()
}

func (e *Engine) poll(ctx context.Context, seq uint64) {
	snap, err := e.svc.FetchDashboard(ctx)

	// The store write happens under the ordering lock so that two responses
	// passing the sequence check cannot land out of order.
	e.mu.Lock()
	defer e.mu.Unlock()

	if seq <= e.applied {
		e.l.Debug(ctx, "dropping superseded poll response", slogx.PollSeqAttr(seq))
		return
	}

	if err != nil {
		// Keep whatever was displayed before: stale data beats a blank page.
		e.l.WithError(err).Warn(ctx, "dashboard poll failed", slogx.PollSeqAttr(seq))
		e.store.SetMessages(Message{Text: msgLoadFailed, Severity: SeverityError})
		return
	}

	e.applied = seq
	e.store.Replace(*snap)
}
