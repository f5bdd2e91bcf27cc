package feedback

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ErrStale is returned when asking about an instance that is no longer the
// one being displayed.
var ErrStale = errors.New("feedback is for a replaced instance")

// Tracker runs one feedback request at a time in the background and keeps
// only the result for the current instance. Results that arrive after a
// newer instance was begun are dropped.
type Tracker struct {
	client  Client
	logger  *zap.Logger
	timeout time.Duration
	running sync.WaitGroup

	mu       sync.Mutex
	current  string
	inflight bool
	pending  int
	req      Request
	result   *Result
	done     chan struct{}
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithRequestTimeout bounds every dispatched request. Zero leaves requests
// bounded only by the client.
func WithRequestTimeout(d time.Duration) TrackerOption {
	return func(t *Tracker) { t.timeout = d }
}

// NewTracker creates a Tracker. client should already be wrapped with
// WithFallback; any error it returns is replaced with Fallback anyway.
func NewTracker(client Client, logger *zap.Logger, opts ...TrackerOption) *Tracker {
	if logger == nil {
		logger = zap.L()
	}
	t := &Tracker{client: client, logger: logger, done: make(chan struct{})}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Begin makes instanceID current and drops any pending result.
func (t *Tracker) Begin(instanceID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = instanceID
	t.inflight = false
	t.req = Request{}
	t.result = nil
	t.done = make(chan struct{})
}

// Current returns the instance feedback is being tracked for.
func (t *Tracker) Current() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// Dispatch starts a feedback request for instanceID. It reports false and
// does nothing if instanceID is not current or already dispatched. The
// request is detached from ctx cancellation and bounded by the request
// timeout.
func (t *Tracker) Dispatch(ctx context.Context, instanceID string, req Request) bool {
	t.mu.Lock()
	if instanceID != t.current || t.inflight {
		t.mu.Unlock()
		return false
	}
	t.inflight = true
	t.pending++
	t.req = req
	done := t.done
	t.mu.Unlock()

	ctx = context.WithoutCancel(ctx)
	cancel := context.CancelFunc(func() {})
	if t.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
	}
	t.running.Add(1)
	go func() {
		defer t.running.Done()
		defer cancel()

		res, err := t.client.RequestFeedback(ctx, req)
		if err != nil || res == nil {
			res = Fallback(req)
		}

		t.mu.Lock()
		defer t.mu.Unlock()
		t.pending--
		if instanceID != t.current || t.done != done {
			t.logger.Debug("discarding stale feedback", zap.String("instance", instanceID), zap.String("current", t.current))
			return
		}
		t.result = res
		close(done)
	}()
	return true
}

// Busy reports whether any dispatched request is still running.
func (t *Tracker) Busy() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending > 0
}

// Result returns the feedback for instanceID if it has arrived.
func (t *Tracker) Result(instanceID string) (*Result, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if instanceID != t.current || t.result == nil {
		return nil, false
	}
	return t.result, true
}

// Wait blocks until feedback for instanceID arrives or ctx is done. When
// ctx ends while a dispatched request is still running, Wait returns the
// Fallback result for it instead of an error.
func (t *Tracker) Wait(ctx context.Context, instanceID string) (*Result, error) {
	t.mu.Lock()
	if instanceID != t.current {
		t.mu.Unlock()
		return nil, ErrStale
	}
	done := t.done
	t.mu.Unlock()

	select {
	case <-done:
	case <-ctx.Done():
		t.mu.Lock()
		defer t.mu.Unlock()
		if instanceID == t.current && t.inflight {
			if t.result != nil {
				return t.result, nil
			}
			t.logger.Debug("feedback wait expired, using fallback", zap.String("instance", instanceID), zap.Error(ctx.Err()))
			return Fallback(t.req), nil
		}
		return nil, ctx.Err()
	}

	if res, ok := t.Result(instanceID); ok {
		return res, nil
	}
	return nil, ErrStale
}

// Drain waits for every dispatched request to finish, or for ctx to end.
func (t *Tracker) Drain(ctx context.Context) error {
	finished := make(chan struct{})
	go func() {
		t.running.Wait()
		close(finished)
	}()
	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
