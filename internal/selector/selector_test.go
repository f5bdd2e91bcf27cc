package selector

import (
	"context"
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/cyberrange/internal/content"
	"github.com/abhisek/cyberrange/internal/dedup"
	"github.com/abhisek/cyberrange/internal/render"
	"github.com/abhisek/cyberrange/internal/store"
)

type tmpl struct {
	id    string
	level content.Difficulty
}

func (t tmpl) TemplateID() string        { return t.id }
func (t tmpl) Level() content.Difficulty { return t.level }

type instance struct {
	ID       string
	Template string
}

func renderInstance(t tmpl, id string) instance {
	return instance{ID: id, Template: t.id}
}

var fixedNow = time.Date(2026, 10, 19, 15, 30, 0, 0, time.UTC)

func newSelector(pool []tmpl, tr *dedup.Tracker, p dedup.Policy) *Selector[tmpl, instance] {
	return New(pool, renderInstance, tr, p,
		WithRand(rand.New(rand.NewPCG(1, 2))),
		WithClock(func() time.Time { return fixedNow }),
	)
}

func mixedPool() []tmpl {
	var pool []tmpl
	for i := range 5 {
		pool = append(pool, tmpl{id: fmt.Sprintf("hard-%d", i), level: content.DifficultyHard})
	}
	for i := range 10 {
		level := content.DifficultyEasy
		if i%2 == 1 {
			level = content.DifficultyMedium
		}
		pool = append(pool, tmpl{id: fmt.Sprintf("other-%d", i), level: level})
	}
	return pool
}

func TestNextFiltersByDifficultyWithoutRepeats(t *testing.T) {
	ctx := context.Background()
	tr := dedup.NewTracker(store.NewMemoryStore(), store.KeyScenarioSeen)
	sel := newSelector(mixedPool(), tr, dedup.Once())

	seen := make(map[string]bool)
	for range 5 {
		inst, err := sel.Next(ctx, content.DifficultyHard)
		require.NoError(t, err)
		assert.Regexp(t, `^hard-\d$`, inst.Template)
		assert.False(t, seen[inst.Template], "template %s repeated", inst.Template)
		seen[inst.Template] = true
	}
	assert.Len(t, seen, 5)
}

func TestNextResetsAfterExhaustion(t *testing.T) {
	ctx := context.Background()
	tr := dedup.NewTracker(store.NewMemoryStore(), store.KeyScenarioSeen)
	pool := mixedPool()
	sel := newSelector(pool, tr, dedup.Once())

	seen := make(map[string]bool)
	for range len(pool) {
		inst, err := sel.Next(ctx, "")
		require.NoError(t, err)
		seen[inst.Template] = true
	}
	assert.Len(t, seen, len(pool), "first cycle covers the whole pool")
	assert.Len(t, tr.Seen(ctx), len(pool))

	inst, err := sel.Next(ctx, "")
	require.NoError(t, err)
	assert.NotEmpty(t, inst.ID)
	assert.Equal(t, []string{inst.ID}, tr.Seen(ctx), "seen-set restarts with the new instance")
}

func TestCapSkipsExhaustedTemplate(t *testing.T) {
	ctx := context.Background()
	tr := dedup.NewTracker(store.NewMemoryStore(), store.KeyEmailSeen)
	for i := range 3 {
		tr.MarkShown(ctx, dedup.InstanceID("ceo-wire", int64(i+1)))
	}
	pool := []tmpl{{id: "ceo-wire", level: content.DifficultyHard}, {id: "bank-alert", level: content.DifficultyHard}}
	sel := newSelector(pool, tr, dedup.Cap(3))

	for range 3 {
		inst, err := sel.Next(ctx, content.DifficultyHard)
		require.NoError(t, err)
		assert.Equal(t, "bank-alert", inst.Template)
	}
	assert.Equal(t, 3, tr.UseCount(ctx, "bank-alert"))

	inst, err := sel.Next(ctx, content.DifficultyHard)
	require.NoError(t, err)
	assert.Len(t, tr.Seen(ctx), 1, "both templates at cap triggers a reset")
	assert.Equal(t, 1, tr.UseCount(ctx, inst.Template))
}

func TestCapAllowsRepeatsUpToLimit(t *testing.T) {
	ctx := context.Background()
	tr := dedup.NewTracker(store.NewMemoryStore(), store.KeyEmailSeen)
	sel := newSelector([]tmpl{{id: "only", level: content.DifficultyEasy}}, tr, dedup.Cap(3))

	var ids []string
	for range 3 {
		inst, err := sel.Next(ctx, content.DifficultyEasy)
		require.NoError(t, err)
		ids = append(ids, inst.ID)
	}
	assert.Equal(t, 3, tr.UseCount(ctx, "only"))
	assert.Len(t, tr.Seen(ctx), 3)
	assert.NotEqual(t, ids[0], ids[1])
}

func TestEmptyPool(t *testing.T) {
	ctx := context.Background()
	tr := dedup.NewTracker(store.NewMemoryStore(), "k")
	sel := newSelector([]tmpl{{id: "a", level: content.DifficultyEasy}}, tr, dedup.Once())

	_, err := sel.Next(ctx, content.DifficultyHard)
	require.Error(t, err)
	assert.True(t, IsEmptyPool(err))
	assert.True(t, IsEmptyPool(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsEmptyPool(context.Canceled))

	var epe *EmptyPoolError
	require.ErrorAs(t, err, &epe)
	assert.Equal(t, content.DifficultyHard, epe.Difficulty)
	assert.Empty(t, tr.Seen(ctx), "empty pool must not touch the seen-set")
}

func TestInstanceIDsIncreaseWithStalledClock(t *testing.T) {
	ctx := context.Background()
	tr := dedup.NewTracker(store.NewMemoryStore(), "k")
	sel := newSelector([]tmpl{{id: "a", level: content.DifficultyEasy}}, tr, dedup.Cap(10))

	first, err := sel.Next(ctx, "")
	require.NoError(t, err)
	second, err := sel.Next(ctx, "")
	require.NoError(t, err)

	assert.Equal(t, dedup.InstanceID("a", fixedNow.UnixNano()), first.ID)
	assert.Equal(t, dedup.InstanceID("a", fixedNow.UnixNano()+1), second.ID)
}

func TestBatch(t *testing.T) {
	ctx := context.Background()
	tr := dedup.NewTracker(store.NewMemoryStore(), "k")
	sel := newSelector(mixedPool(), tr, dedup.Cap(3))

	got, err := sel.Batch(ctx, 4, content.DifficultyHard)
	require.NoError(t, err)
	require.Len(t, got, 4)
	for _, inst := range got {
		assert.Regexp(t, `^hard-`, inst.Template)
	}
	assert.Len(t, tr.Seen(ctx), 4)

	none, err := sel.Batch(ctx, 0, "")
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = newSelector(nil, tr, dedup.Once()).Batch(ctx, 2, "")
	assert.True(t, IsEmptyPool(err))
}

func TestSize(t *testing.T) {
	sel := newSelector(mixedPool(), dedup.NewTracker(store.NewMemoryStore(), "k"), dedup.Once())
	assert.Equal(t, 15, sel.Size(""))
	assert.Equal(t, 5, sel.Size(content.DifficultyHard))
	assert.Equal(t, 5, sel.Size(content.DifficultyMedium))
}

func TestWithRealContent(t *testing.T) {
	ctx := context.Background()
	r := render.New(rand.New(rand.NewPCG(3, 4)), render.WithClock(func() time.Time { return fixedNow }))
	tr := dedup.NewTracker(store.NewMemoryStore(), store.KeyEmailSeen)
	sel := New(content.EmailTemplates(), r.Email, tr, dedup.Cap(3), WithRand(r.Rand()))

	for range 10 {
		email, err := sel.Next(ctx, content.DifficultyMedium)
		require.NoError(t, err)
		assert.Equal(t, content.DifficultyMedium, email.Difficulty)
		assert.Equal(t, email.TemplateID, dedup.TemplateOf(email.ID))
		assert.True(t, tr.WasShown(ctx, email.ID))
	}
}
