// Package dedup records which generated instances a session has already
// been shown, so selection can avoid immediate repeats.
//
// The record is an ordered JSON array of instance IDs held in a
// store.SessionStore under a fixed key. Every read and write fails open:
// a missing, unreadable or corrupt record is treated as empty and the
// failure is only logged.
package dedup

import (
	"context"
	"encoding/json"
		"slices"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/abhisek/cyberrange/internal/store"
)

// Tracker is a session's seen-set for one kind of content.
type Tracker struct {
	store  store.SessionStore
	key    string
	logger *zap.Logger

	mu sync.Mutex
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithLogger sets the logger used for recovered storage failures.
func WithLogger(l *zap.Logger) Option {
	return func(t *Tracker) { t.logger = l }
}

// NewTracker creates a Tracker persisting under key in s.
func NewTracker(s store.SessionStore, key string, opts ...Option) *Tracker {
	t := &Tracker{store: s, key: key, logger: zap.L()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Seen returns the shown instance IDs in the order they were marked.
func (t *Tracker) Seen(ctx context.Context) []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.load(ctx)
}

// WasShown reports whether id has been marked since the last reset.
func (t *Tracker) WasShown(ctx context.Context, id string) bool {
	return slices.Contains(t.Seen(ctx), id)
}

// MarkShown appends id to the seen-set. Marking an id twice is a no-op.
func (t *Tracker) MarkShown(ctx context.Context, id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	seen := t.load(ctx)
	if slices.Contains(seen, id) {
		return
	}
	seen = append(seen, id)

	data, err := json.Marshal(seen)
	if err != nil {
		t.logger.Warn("encode seen-set", zap.String("key", t.key), zap.Error(err))
		return
	}
	if err := t.store.Set(ctx, t.key, data); err != nil {
		t.logger.Warn("save seen-set", zap.String("key", t.key), zap.String("id", id), zap.Error(err))
	}
}

// Reset clears the seen-set.
func (t *Tracker) Reset(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.store.Delete(ctx, t.key); err != nil {
		t.logger.Warn("reset seen-set", zap.String("key", t.key), zap.Error(err))
	}
}

// Counts returns how many seen instances each template has produced.
func (t *Tracker) Counts(ctx context.Context) map[string]int {
	counts := make(map[string]int)
	for _, id := range t.Seen(ctx) {
		counts[TemplateOf(id)]++
	}
	return counts
}

// UseCount returns how many seen instances came from templateID.
func (t *Tracker) UseCount(ctx context.Context, templateID string) int {
	return t.Counts(ctx)[templateID]
}

func (t *Tracker) load(ctx context.Context) []string {
	data, err := t.store.Get(ctx, t.key)
	if err != nil {
		t.logger.Warn("load seen-set", zap.String("key", t.key), zap.Error(err))
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	var seen []string
	if err := json.Unmarshal(data, &seen); err != nil {
		t.logger.Warn("corrupt seen-set, treating as empty", zap.String("key", t.key), zap.Error(err))
		return nil
	}
	return seen
}

// InstanceID builds the identifier of the seq-th instance of a template.
func InstanceID(templateID string, seq int64) string {
	return templateID + ":" + strconv.FormatInt(seq, 10)
}

// TemplateOf returns the template part of an instance ID. An ID without a
// sequence suffix is its own template.
func TemplateOf(id string) string {
	if i := strings.LastIndexByte(id, ':'); i >= 0 {
		return id[:i]
	}
	return id
}
