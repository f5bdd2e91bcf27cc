// Package selector picks the next template to render for a session,
// skipping templates the session has already seen.
package selector

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/cyberrange/internal/content"
	"github.com/abhisek/cyberrange/internal/dedup"
)

// Candidate is a template that can be filtered by difficulty and tracked by ID.
type Candidate interface {
	TemplateID() string
	Level() content.Difficulty
}

// RenderFunc turns a template into a concrete instance with the given ID.
type RenderFunc[T Candidate, I any] func(tmpl T, id string) I

// EmptyPoolError is returned when no template matches the requested
// difficulty. It is not recoverable by resetting the seen-set.
type EmptyPoolError struct {
	Difficulty content.Difficulty
}

func (e *EmptyPoolError) Error() string {
	return fmt.Sprintf("no templates for difficulty %q", e.Difficulty)
}

// IsEmptyPool reports whether err is, or wraps, an *EmptyPoolError.
func IsEmptyPool(err error) bool {
	var target *EmptyPoolError
	return errors.As(err, &target)
}

// Option configures a Selector.
type Option func(*options)

type options struct {
	rng    *rand.Rand
	now    func() time.Time
	logger *zap.Logger
}

// WithRand sets the random source used for shuffling.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rng = r }
}

// WithClock sets the clock that seeds instance sequence numbers.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Selector draws templates from a fixed pool. Each call to Next filters by
// difficulty, drops templates the policy rejects, shuffles the rest and
// renders the first one. When every matching template is exhausted the
// seen-set is reset and the full filtered pool is used again.
type Selector[T Candidate, I any] struct {
	pool    []T
	render  RenderFunc[T, I]
	tracker *dedup.Tracker
	policy  dedup.Policy
	rng     *rand.Rand
	now     func() time.Time
	logger  *zap.Logger

	mu      sync.Mutex
	lastSeq int64
}

// New creates a Selector over pool.
func New[T Candidate, I any](pool []T, render RenderFunc[T, I], tracker *dedup.Tracker, policy dedup.Policy, opts ...Option) *Selector[T, I] {
	o := options{now: time.Now, logger: zap.L()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Selector[T, I]{
		pool:    pool,
		render:  render,
		tracker: tracker,
		policy:  policy,
		rng:     o.rng,
		now:     o.now,
		logger:  o.logger,
	}
}

// Next renders one instance. An empty difficulty matches every template.
func (s *Selector[T, I]) Next(ctx context.Context, difficulty content.Difficulty) (I, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next(ctx, difficulty)
}

// Batch renders n instances, each selected as by Next.
func (s *Selector[T, I]) Batch(ctx context.Context, n int, difficulty content.Difficulty) ([]I, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]I, 0, max(n, 0))
	for range n {
		inst, err := s.next(ctx, difficulty)
		if err != nil {
			return nil, err
		}
		out = append(out, inst)
	}
	return out, nil
}

// Size returns the number of templates matching difficulty.
func (s *Selector[T, I]) Size(difficulty content.Difficulty) int {
	return len(s.filter(difficulty))
}

func (s *Selector[T, I]) next(ctx context.Context, difficulty content.Difficulty) (I, error) {
	var zero I

	matching := s.filter(difficulty)
	if len(matching) == 0 {
		return zero, &EmptyPoolError{Difficulty: difficulty}
	}

	counts := s.tracker.Counts(ctx)
	candidates := make([]T, 0, len(matching))
	for _, t := range matching {
		if s.policy.Allow(counts[t.TemplateID()]) {
			candidates = append(candidates, t)
		}
	}
	if len(candidates) == 0 {
		s.logger.Info("all templates seen, resetting", zap.String("difficulty", string(difficulty)), zap.Int("pool", len(matching)))
		s.tracker.Reset(ctx)
		candidates = matching
	}

	s.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	tmpl := candidates[0]

	id := dedup.InstanceID(tmpl.TemplateID(), s.nextSeq())
	inst := s.render(tmpl, id)
	s.tracker.MarkShown(ctx, id)
	return inst, nil
}

func (s *Selector[T, I]) filter(difficulty content.Difficulty) []T {
	out := make([]T, 0, len(s.pool))
	for _, t := range s.pool {
		if difficulty == "" || t.Level() == difficulty {
			out = append(out, t)
		}
	}
	return out
}

// nextSeq returns a clock-derived sequence that never repeats within this
// Selector, even when the clock stalls.
func (s *Selector[T, I]) nextSeq() int64 {
	seq := s.now().UnixNano()
	if seq <= s.lastSeq {
		seq = s.lastSeq + 1
	}
	s.lastSeq = seq
	return seq
}
