// Package trainer runs training sessions: it hands out scenarios and
// emails, grades answers, keeps score and dispatches feedback.
package trainer

import (
	"context"
	"errors"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/cyberrange/internal/feedback"
	"github.com/abhisek/cyberrange/internal/store"
)

var (
	// ErrNoActiveInstance is returned when answering an instance that was
	// never issued, was already answered or was cleared by a reset.
	ErrNoActiveInstance = errors.New("no active instance")

	// ErrUnknownModule is returned for module IDs not in the catalog.
	ErrUnknownModule = errors.New("unknown module")
)

// EmailReuseCap is how many instances of one email template a session
// sees before the template is skipped.
const EmailReuseCap = 3

// Limits on the live sessions a Trainer keeps in memory. Evicted sessions
// are rebuilt from Deps.State on their next use.
const (
	DefaultMaxSessions = 10000
	DefaultSessionTTL  = time.Hour
)

// StateFunc returns the durable key/value state of one session.
type StateFunc func(sessionID string) store.SessionStore

// Deps are the collaborators shared by every session.
type Deps struct {
	State    StateFunc
	Attempts store.AttemptRepo // optional
	Modules  store.ModuleRepo  // optional
	Feedback feedback.Client   // wrapped with feedback.WithFallback by New
}

// Option configures a Trainer.
type Option func(*Trainer)

// WithSeed makes every session's random source deterministic. Zero means
// randomly seeded.
func WithSeed(seed uint64) Option {
	return func(t *Trainer) { t.seed = seed }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(t *Trainer) { t.now = now }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(t *Trainer) { t.logger = l }
}

// WithEmailCap overrides EmailReuseCap.
func WithEmailCap(n int) Option {
	return func(t *Trainer) { t.emailCap = n }
}

// WithFeedbackTimeout bounds every feedback request. Requests that run
// longer get the fallback feedback.
func WithFeedbackTimeout(d time.Duration) Option {
	return func(t *Trainer) { t.feedbackTimeout = d }
}

// WithMaxSessions caps the live sessions kept in memory. The least
// recently used session is evicted first.
func WithMaxSessions(n int) Option {
	return func(t *Trainer) { t.maxSessions = n }
}

// WithSessionTTL evicts sessions idle for longer than d.
func WithSessionTTL(d time.Duration) Option {
	return func(t *Trainer) { t.sessionTTL = d }
}

// Trainer owns the live sessions of a process.
type Trainer struct {
	deps            Deps
	seed            uint64
	now             func() time.Time
	logger          *zap.Logger
	emailCap        int
	feedbackTimeout time.Duration
	maxSessions     int
	sessionTTL      time.Duration

	mu        sync.Mutex
	sessions  map[string]*liveSession
	lastSweep time.Time
	evicted   []*Session // waiting for their feedback to finish
}

type liveSession struct {
	*Session
	lastUsed time.Time
}

// New creates a Trainer. Deps.State is required.
func New(deps Deps, opts ...Option) *Trainer {
	t := &Trainer{
		deps:        deps,
		now:         time.Now,
		logger:      zap.L(),
		emailCap:    EmailReuseCap,
		maxSessions: DefaultMaxSessions,
		sessionTTL:  DefaultSessionTTL,
		sessions:    make(map[string]*liveSession),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.deps.Feedback = feedback.WithFallback(deps.Feedback, t.logger)
	return t
}

// Session returns the session with id, creating it on first use. State
// persisted by an earlier process or before an eviction is picked up from
// Deps.State.
func (t *Trainer) Session(id string) *Session {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	if ls, ok := t.sessions[id]; ok {
		ls.lastUsed = now
		return ls.Session
	}

	t.evict(now)
	s := newSession(id, t.deps, t.rand(), t.now, t.emailCap, t.feedbackTimeout, t.logger.With(zap.String("session", id)))
	t.sessions[id] = &liveSession{Session: s, lastUsed: now}
	return s
}

// Len reports the number of live sessions.
func (t *Trainer) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.sessions)
}

// evict drops idle sessions, at most once per quarter TTL, and then the
// least recently used ones until a new session fits. Callers hold t.mu.
func (t *Trainer) evict(now time.Time) {
	t.evicted = slices.DeleteFunc(t.evicted, func(s *Session) bool { return !s.feedback.Busy() })

	if t.sessionTTL > 0 && now.Sub(t.lastSweep) >= t.sessionTTL/4 {
		t.lastSweep = now
		for id, ls := range t.sessions {
			if now.Sub(ls.lastUsed) > t.sessionTTL {
				t.drop(id, ls)
			}
		}
	}

	for t.maxSessions > 0 && len(t.sessions) >= t.maxSessions {
		var oldestID string
		var oldest *liveSession
		for id, ls := range t.sessions {
			if oldest == nil || ls.lastUsed.Before(oldest.lastUsed) {
				oldestID, oldest = id, ls
			}
		}
		t.drop(oldestID, oldest)
	}
}

func (t *Trainer) drop(id string, ls *liveSession) {
	delete(t.sessions, id)
	if ls.feedback.Busy() {
		t.evicted = append(t.evicted, ls.Session)
	}
	t.logger.Debug("session evicted", zap.String("session", id))
}

// Drain waits for the feedback requests of every session to finish, or
// for ctx to end.
func (t *Trainer) Drain(ctx context.Context) error {
	t.mu.Lock()
	pending := make([]*Session, 0, len(t.sessions)+len(t.evicted))
	for _, ls := range t.sessions {
		pending = append(pending, ls.Session)
	}
	pending = append(pending, t.evicted...)
	t.mu.Unlock()

	for _, s := range pending {
		if err := s.feedback.Drain(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (t *Trainer) rand() *rand.Rand {
	if t.seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(t.seed, t.seed^0x9e3779b97f4a7c15))
}
