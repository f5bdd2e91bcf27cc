package trainer

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/cyberrange/internal/content"
	"github.com/abhisek/cyberrange/internal/dedup"
	"github.com/abhisek/cyberrange/internal/feedback"
	"github.com/abhisek/cyberrange/internal/render"
	"github.com/abhisek/cyberrange/internal/selector"
	"github.com/abhisek/cyberrange/internal/session"
	"github.com/abhisek/cyberrange/internal/store"
)

// Kind distinguishes the two exercise types.
type Kind string

const (
	KindScenario Kind = "scenario"
	KindEmail    Kind = "email"
)

// maxIssued bounds the unanswered instances a session remembers. The
// oldest are forgotten first and can no longer be answered.
const maxIssued = 256

// issued is what a session remembers about a handed-out instance until
// it is answered.
type issued struct {
	id         string
	templateID string
	kind       Kind
	title      string
	channel    content.Channel
	difficulty content.Difficulty
	label      content.Label
	shownAt    time.Time
}

// Session is one user's training context. All methods are safe for
// concurrent use; calls are serialized.
type Session struct {
	id       string
	attempts store.AttemptRepo
	modules  store.ModuleRepo
	now      func() time.Time
	logger   *zap.Logger

	scenarios     *selector.Selector[content.ScenarioTemplate, content.Scenario]
	emails        *selector.Selector[content.EmailTemplate, content.Email]
	scenarioSeen  *dedup.Tracker
	emailSeen     *dedup.Tracker
	scenarioStats *session.Aggregator
	emailStats    *session.Aggregator
	feedback      *feedback.Tracker

	mu     sync.Mutex
	issued map[string]issued
	last   string
}

func newSession(id string, deps Deps, rng *rand.Rand, now func() time.Time, emailCap int, feedbackTimeout time.Duration, logger *zap.Logger) *Session {
	state := deps.State(id)
	r := render.New(rng, render.WithClock(now))

	scenarioSeen := dedup.NewTracker(state, store.KeyScenarioSeen, dedup.WithLogger(logger))
	emailSeen := dedup.NewTracker(state, store.KeyEmailSeen, dedup.WithLogger(logger))
	selOpts := []selector.Option{
		selector.WithRand(r.Rand()),
		selector.WithClock(now),
		selector.WithLogger(logger),
	}

	return &Session{
		id:            id,
		attempts:      deps.Attempts,
		modules:       deps.Modules,
		now:           now,
		logger:        logger,
		scenarios:     selector.New(content.Scenarios(), r.Scenario, scenarioSeen, dedup.Once(), selOpts...),
		emails:        selector.New(content.EmailTemplates(), r.Email, emailSeen, dedup.Cap(emailCap), selOpts...),
		scenarioSeen:  scenarioSeen,
		emailSeen:     emailSeen,
		scenarioStats: session.NewAggregator(state, store.KeyScenarioStats, logger),
		emailStats:    session.NewAggregator(state, store.KeyEmailProgress, logger),
		feedback:      feedback.NewTracker(deps.Feedback, logger, feedback.WithRequestTimeout(feedbackTimeout)),
		issued:        make(map[string]issued),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// NextScenario selects and renders the next scenario. An empty difficulty
// draws from every difficulty.
func (s *Session) NextScenario(ctx context.Context, d content.Difficulty) (content.Scenario, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sc, err := s.scenarios.Next(ctx, d)
	if err != nil {
		return content.Scenario{}, err
	}
	s.issue(issued{
		id:         sc.ID,
		templateID: sc.TemplateID,
		kind:       KindScenario,
		title:      sc.Title,
		channel:    sc.Channel(),
		difficulty: sc.Difficulty,
		label:      sc.Label,
	})
	return sc, nil
}

// NextEmail selects and renders the next phishing email.
func (s *Session) NextEmail(ctx context.Context, d content.Difficulty) (content.Email, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.emails.Next(ctx, d)
	if err != nil {
		return content.Email{}, err
	}
	s.issue(emailIssued(e))
	return e, nil
}

// Emails renders n emails at once. Each can be answered by ID; none of
// them becomes the displayed instance until answered.
func (s *Session) Emails(ctx context.Context, n int, d content.Difficulty) ([]content.Email, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	batch, err := s.emails.Batch(ctx, n, d)
	if err != nil {
		return nil, err
	}
	for _, e := range batch {
		iss := emailIssued(e)
		iss.shownAt = s.now()
		s.remember(iss)
	}
	return batch, nil
}

func emailIssued(e content.Email) issued {
	return issued{
		id:         e.ID,
		templateID: e.TemplateID,
		kind:       KindEmail,
		title:      e.Subject,
		channel:    content.ChannelEmail,
		difficulty: e.Difficulty,
		label:      e.Label,
	}
}

// issue records iss as the displayed instance. Pending feedback for the
// previous instance is discarded.
func (s *Session) issue(iss issued) {
	iss.shownAt = s.now()
	s.remember(iss)
	s.last = iss.id
	s.feedback.Begin(iss.id)
}

// remember stores iss, forgetting the oldest unanswered instances beyond
// maxIssued. The displayed instance is never forgotten.
func (s *Session) remember(iss issued) {
	for len(s.issued) >= maxIssued {
		var oldest *issued
		for id := range s.issued {
			cand := s.issued[id]
			if id == s.last {
				continue
			}
			if oldest == nil || cand.shownAt.Before(oldest.shownAt) {
				oldest = &cand
			}
		}
		if oldest == nil {
			break
		}
		delete(s.issued, oldest.id)
	}
	s.issued[iss.id] = iss
}

// Answer is a user's classification of an instance.
type Answer struct {
	// InstanceID defaults to the most recently displayed instance.
	InstanceID string
	Choice     content.Label
	// TimeTaken defaults to the time since the instance was issued.
	TimeTaken time.Duration
}

// Outcome is the graded result of an Answer.
type Outcome struct {
	InstanceID     string        `json:"instance_id"`
	Kind           Kind          `json:"kind"`
	Correct        bool          `json:"correct"`
	CorrectAnswer  content.Label `json:"correct_answer"`
	SelectedAction string        `json:"selected_action"`
	CorrectAction  string        `json:"correct_action"`
	ScoreChange    int           `json:"score_change"`
	TimeTaken      float64       `json:"time_taken"`
	Stats          session.Stats `json:"stats"`
}

// Answer grades a, updates the session counters, stores the attempt and
// starts a feedback request. Storage failures are logged; grading always
// completes.
func (s *Session) Answer(ctx context.Context, a Answer) (*Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := a.InstanceID
	if id == "" {
		id = s.last
	}
	inst, ok := s.issued[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoActiveInstance, id)
	}
	delete(s.issued, id)

	taken := a.TimeTaken
	if taken <= 0 {
		taken = s.now().Sub(inst.shownAt)
	}
	secs := math.Round(taken.Seconds()*10) / 10

	correct := a.Choice == inst.label
	out := &Outcome{
		InstanceID:     id,
		Kind:           inst.kind,
		Correct:        correct,
		CorrectAnswer:  inst.label,
		SelectedAction: a.Choice.UserAction(),
		CorrectAction:  inst.label.CorrectAction(),
		ScoreChange:    session.Score(inst.difficulty, correct),
		TimeTaken:      secs,
	}
	if inst.kind == KindEmail {
		out.Stats = s.emailStats.RecordOutcome(ctx, correct)
	} else {
		out.Stats = s.scenarioStats.RecordOutcome(ctx, correct)
	}

	if s.attempts != nil {
		err := s.attempts.Append(ctx, &store.Attempt{
			SessionID:      s.id,
			InstanceID:     id,
			TemplateID:     inst.templateID,
			Kind:           string(inst.kind),
			Difficulty:     string(inst.difficulty),
			SelectedAction: out.SelectedAction,
			Correct:        correct,
			ScoreChange:    out.ScoreChange,
			TimeTakenSecs:  secs,
		})
		if err != nil {
			s.logger.Warn("record attempt", zap.String("instance", id), zap.Error(err))
		}
	}

	if s.feedback.Current() != id {
		s.feedback.Begin(id)
	}
	s.feedback.Dispatch(ctx, id, feedback.Request{
		Scenario: feedback.ScenarioSummary{
			Title:      inst.title,
			Type:       string(inst.channel),
			Difficulty: inst.difficulty,
		},
		UserAction:    out.SelectedAction,
		CorrectAction: out.CorrectAction,
		IsCorrect:     correct,
		TimeTaken:     math.Round(taken.Seconds()),
	})

	return out, nil
}

// Feedback returns the feedback for instanceID if it has arrived.
func (s *Session) Feedback(instanceID string) (*feedback.Result, bool) {
	return s.feedback.Result(instanceID)
}

// WaitFeedback blocks until feedback for instanceID arrives. It returns
// feedback.ErrStale once a newer instance has been displayed.
func (s *Session) WaitFeedback(ctx context.Context, instanceID string) (*feedback.Result, error) {
	return s.feedback.Wait(ctx, instanceID)
}

// Stats returns the session summary. Ledger and module totals are
// omitted when their repos are not configured.
func (s *Session) Stats(ctx context.Context) (*session.Summary, error) {
	var totals store.Totals
	if s.attempts != nil {
		t, err := s.attempts.Totals(ctx, s.id)
		if err != nil {
			return nil, fmt.Errorf("attempt totals: %w", err)
		}
		totals = t
	}

	var done []string
	if s.modules != nil {
		m, err := s.modules.Completed(ctx, s.id)
		if err != nil {
			return nil, fmt.Errorf("completed modules: %w", err)
		}
		done = m
	}

	return session.BuildSummary(
		s.scenarioStats.Current(ctx),
		s.emailStats.Current(ctx),
		totals,
		done,
	), nil
}

// RecentAttempts returns up to limit ledger entries, newest first. It is
// empty when no attempts repo is configured.
func (s *Session) RecentAttempts(ctx context.Context, limit int) ([]store.Attempt, error) {
	if s.attempts == nil {
		return []store.Attempt{}, nil
	}
	list, err := s.attempts.Recent(ctx, s.id, store.QueryOpts{Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("recent attempts: %w", err)
	}
	if list == nil {
		list = []store.Attempt{}
	}
	return list, nil
}

// Reset clears both seen-sets and both counters and forgets unanswered
// instances. The attempts ledger and module progress are kept.
func (s *Session) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scenarioSeen.Reset(ctx)
	s.emailSeen.Reset(ctx)
	s.scenarioStats.Reset(ctx)
	s.emailStats.Reset(ctx)
	clear(s.issued)
	s.last = ""
	s.feedback.Begin("")
	s.logger.Info("session reset")
}

// ModuleStatus is a catalog module with its completion state.
type ModuleStatus struct {
	content.Module
	Completed bool `json:"completed"`
}

// Modules lists the learning modules in reading order.
func (s *Session) Modules(ctx context.Context) ([]ModuleStatus, error) {
	done := map[string]bool{}
	if s.modules != nil {
		ids, err := s.modules.Completed(ctx, s.id)
		if err != nil {
			return nil, fmt.Errorf("completed modules: %w", err)
		}
		for _, id := range ids {
			done[id] = true
		}
	}

	all := content.Modules()
	out := make([]ModuleStatus, len(all))
	for i, m := range all {
		out[i] = ModuleStatus{Module: m, Completed: done[m.ID]}
	}
	return out, nil
}

// CompleteModule marks moduleID done and reports the XP awarded, which is
// zero when it was already complete.
func (s *Session) CompleteModule(ctx context.Context, moduleID string) (int, error) {
	if _, ok := content.ModuleByID(moduleID); !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownModule, moduleID)
	}
	if s.modules == nil {
		return 0, nil
	}
	first, err := s.modules.Complete(ctx, s.id, moduleID)
	if err != nil {
		return 0, fmt.Errorf("complete module: %w", err)
	}
	if !first {
		return 0, nil
	}
	return content.ModuleXP, nil
}
