// Package session keeps the running correct/total counters of a training
// session and the scoring table applied to each answer.
package session

import (
	"context"
	"encoding/json"
	"math"
	"sync"

	"go.uber.org/zap"

	"github.com/abhisek/cyberrange/internal/content"
	"github.com/abhisek/cyberrange/internal/store"
)

// Stats is a snapshot of a session's answer counters.
type Stats struct {
	Correct  int `json:"correct"`
	Total    int `json:"total"`
	Accuracy int `json:"accuracy"` // percent, 0..100
}

func newStats(correct, total int) Stats {
	return Stats{Correct: correct, Total: total, Accuracy: accuracy(correct, total)}
}

// accuracy is correct/total as a rounded percentage, 0 when total is 0.
func accuracy(correct, total int) int {
	if total <= 0 {
		return 0
	}
	pct := int(math.Round(float64(correct) / float64(total) * 100))
	return min(max(pct, 0), 100)
}

func (s Stats) valid() bool {
	return s.Total >= 0 && s.Correct >= 0 && s.Correct <= s.Total
}

// Aggregator persists Stats under a fixed key. Storage failures and
// corrupt records read as zero stats and are logged, never returned.
type Aggregator struct {
	store  store.SessionStore
	key    string
	logger *zap.Logger

	mu sync.Mutex
}

// NewAggregator creates an Aggregator persisting under key in s.
func NewAggregator(s store.SessionStore, key string, logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.L()
	}
	return &Aggregator{store: s, key: key, logger: logger}
}

// Current returns the persisted stats.
func (a *Aggregator) Current(ctx context.Context) Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.load(ctx)
}

// RecordOutcome counts one answer and returns the updated stats.
func (a *Aggregator) RecordOutcome(ctx context.Context, correct bool) Stats {
	a.mu.Lock()
	defer a.mu.Unlock()

	cur := a.load(ctx)
	next := cur.Correct
	if correct {
		next++
	}
	s := newStats(next, cur.Total+1)
	a.save(ctx, s)
	return s
}

// Reset clears the counters and returns the zero stats.
func (a *Aggregator) Reset(ctx context.Context) Stats {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.store.Delete(ctx, a.key); err != nil {
		a.logger.Warn("reset stats", zap.String("key", a.key), zap.Error(err))
	}
	return Stats{}
}

func (a *Aggregator) load(ctx context.Context) Stats {
	data, err := a.store.Get(ctx, a.key)
	if err != nil {
		a.logger.Warn("load stats", zap.String("key", a.key), zap.Error(err))
		return Stats{}
	}
	if len(data) == 0 {
		return Stats{}
	}

	var s Stats
	if err := json.Unmarshal(data, &s); err != nil || !s.valid() {
		a.logger.Warn("corrupt stats, using zero", zap.String("key", a.key), zap.Error(err))
		return Stats{}
	}
	return newStats(s.Correct, s.Total)
}

func (a *Aggregator) save(ctx context.Context, s Stats) {
	data, err := json.Marshal(s)
	if err != nil {
		a.logger.Warn("encode stats", zap.String("key", a.key), zap.Error(err))
		return
	}
	if err := a.store.Set(ctx, a.key, data); err != nil {
		a.logger.Warn("save stats", zap.String("key", a.key), zap.Error(err))
	}
}

// WrongPenalty is the score change for an incorrect answer.
const WrongPenalty = -5

// Score returns the score change for an answer at difficulty d.
func Score(d content.Difficulty, correct bool) int {
	if !correct {
		return WrongPenalty
	}
	switch d {
	case content.DifficultyHard:
		return 30
	case content.DifficultyMedium:
		return 20
	default:
		return 10
	}
}
