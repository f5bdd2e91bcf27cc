package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"math"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/cyberrange/internal/content"
	"github.com/abhisek/cyberrange/internal/feedback"
	"github.com/abhisek/cyberrange/internal/llm"
	"github.com/abhisek/cyberrange/internal/store"
	"github.com/abhisek/cyberrange/internal/trainer"
)

func quiet() *zap.Logger { return zap.NewNop() }

func newTestServer(t *testing.T, analyzer feedback.Client) http.Handler {
	t.Helper()
	mem := store.NewMemoryStore()
	tr := trainer.New(trainer.Deps{
		State: func(id string) store.SessionStore { return store.Namespace(mem, id) },
	}, trainer.WithSeed(1), trainer.WithLogger(quiet()))
	return New(tr, analyzer, quiet())
}

// newLedgerServer backs the trainer with a SQLite store so the attempts
// ledger is recorded.
func newLedgerServer(t *testing.T, opts ...trainer.Option) (http.Handler, *trainer.Trainer) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "server.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	tr := trainer.New(trainer.Deps{
		State:    st.SessionState,
		Attempts: st.AttemptRepo(),
		Modules:  st.ModuleRepo(),
	}, append([]trainer.Option{trainer.WithSeed(1), trainer.WithLogger(quiet())}, opts...)...)
	return New(tr, nil, quiet()), tr
}

func do(t *testing.T, h http.Handler, method, path, session string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if session != "" {
		req.Header.Set(SessionHeader, session)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	rr := do(t, newTestServer(t, nil), http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestSessionHeaderCreated(t *testing.T) {
	h := newTestServer(t, nil)

	rr := do(t, h, http.MethodGet, "/api/v1/stats", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(SessionHeader))

	rr = do(t, h, http.MethodGet, "/api/v1/stats", "mine", nil)
	assert.Equal(t, "mine", rr.Header().Get(SessionHeader))
}

func TestScenarioAnswerFlow(t *testing.T) {
	h := newTestServer(t, nil)

	rr := do(t, h, http.MethodGet, "/api/v1/scenarios/next?difficulty=hard", "s1", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	sc := decode[map[string]any](t, rr)
	assert.Equal(t, "hard", sc["difficulty"])
	assert.NotEmpty(t, sc["type"])
	assert.NotNil(t, sc["content"])

	rr = do(t, h, http.MethodPost, "/api/v1/answers", "s1", map[string]any{
		"instance_id": sc["id"],
		"answer":      sc["correct_answer"],
		"time_taken":  4.5,
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	out := decode[trainer.Outcome](t, rr)
	assert.True(t, out.Correct)
	assert.Equal(t, 30, out.ScoreChange)
	assert.Equal(t, 4.5, out.TimeTaken)
	assert.Equal(t, 100, out.Stats.Accuracy)

	rr = do(t, h, http.MethodGet, "/api/v1/feedback/"+out.InstanceID+"?wait=true", "s1", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	fb := decode[feedback.Result](t, rr)
	assert.Len(t, fb.Tips, 3)
	assert.Equal(t, feedback.ThreatCritical, fb.ThreatLevel)

	rr = do(t, h, http.MethodGet, "/api/v1/stats", "s1", nil)
	stats := decode[map[string]any](t, rr)
	assert.Equal(t, float64(1), stats["scenarios"].(map[string]any)["correct"])

	// Other sessions are isolated.
	rr = do(t, h, http.MethodGet, "/api/v1/stats", "s2", nil)
	stats = decode[map[string]any](t, rr)
	assert.Equal(t, float64(0), stats["scenarios"].(map[string]any)["total"])
}

func TestErrorMapping(t *testing.T) {
	h := newTestServer(t, nil)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
	}{
		{"bad difficulty", http.MethodGet, "/api/v1/scenarios/next?difficulty=extreme", nil, http.StatusBadRequest},
		{"bad count", http.MethodGet, "/api/v1/emails/batch?count=0", nil, http.StatusBadRequest},
		{"bad answer", http.MethodPost, "/api/v1/answers", map[string]any{"answer": "maybe"}, http.StatusBadRequest},
		{"no active instance", http.MethodPost, "/api/v1/answers", map[string]any{"answer": "phishing"}, http.StatusConflict},
		{"unknown module", http.MethodPost, "/api/v1/modules/nope/complete", nil, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, h, tt.method, tt.path, "err", tt.body)
			assert.Equal(t, tt.status, rr.Code)
			assert.Contains(t, decode[map[string]string](t, rr), "error")
		})
	}
}

func TestEmailsAndCategories(t *testing.T) {
	h := newTestServer(t, nil)

	rr := do(t, h, http.MethodGet, "/api/v1/emails/batch?count=4&difficulty=easy", "s1", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	batch := decode[struct {
		Emails []content.Email `json:"emails"`
	}](t, rr)
	require.Len(t, batch.Emails, 4)
	for _, e := range batch.Emails {
		assert.Equal(t, content.DifficultyEasy, e.Difficulty)
	}

	rr = do(t, h, http.MethodGet, "/api/v1/emails/next", "s1", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	e := decode[content.Email](t, rr)
	assert.Equal(t, content.LabelPhishing, e.Label)

	rr = do(t, h, http.MethodGet, "/api/v1/emails/categories", "s1", nil)
	cats := decode[struct {
		Categories []string `json:"categories"`
		Templates  int      `json:"templates"`
	}](t, rr)
	assert.Equal(t, content.EmailCategories(), cats.Categories)
	assert.Equal(t, len(content.EmailTemplates()), cats.Templates)
}

func TestResetAndModules(t *testing.T) {
	h := newTestServer(t, nil)

	rr := do(t, h, http.MethodGet, "/api/v1/scenarios/next", "s1", nil)
	sc := decode[map[string]any](t, rr)
	do(t, h, http.MethodPost, "/api/v1/answers", "s1", map[string]any{"answer": sc["correct_answer"]})

	rr = do(t, h, http.MethodPost, "/api/v1/reset", "s1", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	stats := decode[map[string]any](t, rr)
	assert.Equal(t, float64(0), stats["scenarios"].(map[string]any)["total"])

	rr = do(t, h, http.MethodGet, "/api/v1/modules", "s1", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	mods := decode[struct {
		Modules []trainer.ModuleStatus `json:"modules"`
	}](t, rr)
	assert.Len(t, mods.Modules, len(content.Modules()))

	rr = do(t, h, http.MethodPost, "/api/v1/modules/phishing-identification/complete", "s1", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"xp_awarded":0}`, rr.Body.String(), "no module repo configured")
}

func TestFeedbackPending(t *testing.T) {
	rr := do(t, newTestServer(t, nil), http.MethodGet, "/api/v1/feedback/unknown:1", "s1", nil)
	assert.Equal(t, http.StatusAccepted, rr.Code)
}

func TestAnalyzeScenario(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockJSON(map[string]any{
		"feedback":          "Well spotted.",
		"tips":              []string{"one", "two", "three"},
		"threat_level":      "low",
		"real_world_impact": "Minor.",
	}))
	h := newTestServer(t, feedback.NewLLMClient(mock, feedback.DefaultLLMConfig()).WithPurpose(llm.PurposeAnalyze))

	body := feedback.Request{
		Scenario:      feedback.ScenarioSummary{Title: "Fake invoice", Type: "email", Difficulty: content.DifficultyMedium},
		UserAction:    "Reported as Phishing",
		CorrectAction: "Report as Phishing",
		IsCorrect:     true,
		TimeTaken:     9,
	}

	rr := do(t, h, http.MethodPost, "/api/analyze-scenario", "", body)
	require.Equal(t, http.StatusOK, rr.Code)
	res := decode[feedback.Result](t, rr)
	assert.Equal(t, "Well spotted.", res.Feedback)
	assert.Equal(t, feedback.ThreatLow, res.ThreatLevel)

	// The mock queue is empty now, so the fallback is served.
	rr = do(t, h, http.MethodPost, "/api/analyze-scenario", "", body)
	require.Equal(t, http.StatusOK, rr.Code)
	res = decode[feedback.Result](t, rr)
	assert.Equal(t, feedback.ThreatHigh, res.ThreatLevel)
	assert.Len(t, res.Tips, 3)

	raw, err := json.Marshal(res)
	require.NoError(t, err)
	assert.NoError(t, llm.Validate(feedback.Schema, raw))

	rr = do(t, h, http.MethodPost, "/api/analyze-scenario", "", map[string]any{"scenario": map[string]any{}})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestFeedbackEndpointServesHTTPClient(t *testing.T) {
	srv := httptest.NewServer(newTestServer(t, nil))
	defer srv.Close()

	c := feedback.NewHTTPClient(srv.URL + "/api/analyze-scenario")
	res, err := c.RequestFeedback(context.Background(), feedback.Request{
		Scenario: feedback.ScenarioSummary{Title: "x", Type: "sms", Difficulty: content.DifficultyEasy},
	})
	require.NoError(t, err)
	assert.Equal(t, feedback.ThreatMedium, res.ThreatLevel)
}

func TestAnalyzeScenario_FractionalTimeTaken(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockJSON(map[string]any{
		"feedback":          "Good.",
		"tips":              []string{"one", "two", "three"},
		"threat_level":      "medium",
		"real_world_impact": "Some.",
	}))
	h := newTestServer(t, feedback.NewLLMClient(mock, feedback.DefaultLLMConfig()))

	rr := do(t, h, http.MethodPost, "/api/analyze-scenario", "", map[string]any{
		"scenario":      map[string]any{"title": "Gift card request", "type": "sms", "difficulty": "easy"},
		"userAction":    "Marked as Safe",
		"correctAction": "Report as Phishing",
		"isCorrect":     false,
		"timeTaken":     12.5,
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "Good.", decode[feedback.Result](t, rr).Feedback)

	calls := mock.Calls()
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].Messages[0].Content, "Time taken: 12 seconds")
}

func answerOne(t *testing.T, h http.Handler, session string) trainer.Outcome {
	t.Helper()
	rr := do(t, h, http.MethodGet, "/api/v1/scenarios/next?difficulty=easy", session, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	sc := decode[map[string]any](t, rr)

	rr = do(t, h, http.MethodPost, "/api/v1/answers", session, map[string]any{
		"instance_id": sc["id"],
		"answer":      sc["correct_answer"],
		"time_taken":  3,
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	return decode[trainer.Outcome](t, rr)
}

func TestAttempts(t *testing.T) {
	h, _ := newLedgerServer(t)
	first := answerOne(t, h, "s1")
	second := answerOne(t, h, "s1")

	rr := do(t, h, http.MethodGet, "/api/v1/attempts?limit=5", "s1", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	got := decode[struct {
		Attempts []store.Attempt `json:"attempts"`
	}](t, rr)
	require.Len(t, got.Attempts, 2)
	assert.Equal(t, second.InstanceID, got.Attempts[0].InstanceID)
	assert.Equal(t, first.InstanceID, got.Attempts[1].InstanceID)
	assert.True(t, got.Attempts[0].Correct)
	assert.Equal(t, 10, got.Attempts[0].ScoreChange)

	rr = do(t, h, http.MethodGet, "/api/v1/attempts?limit=1", "s1", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[map[string][]any](t, rr)["attempts"], 1)

	rr = do(t, h, http.MethodGet, "/api/v1/attempts", "other", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, decode[map[string][]any](t, rr)["attempts"])

	for _, bad := range []string{"0", "101", "many"} {
		rr = do(t, h, http.MethodGet, "/api/v1/attempts?limit="+bad, "s1", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code, bad)
	}
}

func TestAttemptsWithoutLedger(t *testing.T) {
	rr := do(t, newTestServer(t, nil), http.MethodGet, "/api/v1/attempts", "s1", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"attempts":[]}`, rr.Body.String())
}

func TestStatsIncludesRank(t *testing.T) {
	h, _ := newLedgerServer(t)

	rr := do(t, h, http.MethodGet, "/api/v1/stats", "s1", nil)
	stats := decode[map[string]any](t, rr)
	assert.Equal(t, "UNRANKED", stats["rank"])

	answerOne(t, h, "s1")
	rr = do(t, h, http.MethodGet, "/api/v1/stats", "s1", nil)
	stats = decode[map[string]any](t, rr)
	assert.Equal(t, "ROOKIE", stats["rank"])
	assert.Equal(t, float64(10), stats["avg_score"])
	assert.Equal(t, float64(100), stats["accuracy"])
	assert.Equal(t, true, stats["target_met"])
}

func TestHeaderlessRequestsAreBounded(t *testing.T) {
	h, tr := newLedgerServer(t, trainer.WithMaxSessions(50))

	for range 200 {
		rr := do(t, h, http.MethodGet, "/api/v1/stats", "", nil)
		require.Equal(t, http.StatusOK, rr.Code)
	}
	assert.LessOrEqual(t, tr.Len(), 50)
}

func TestWriteJSONLogsEncodeFailure(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	s := &Server{logger: zap.New(core)}

	rr := httptest.NewRecorder()
	s.writeJSON(rr, http.StatusOK, map[string]float64{"score": math.Inf(1)})

	assert.Equal(t, http.StatusOK, rr.Code)
	entries := logs.FilterMessage("encode response").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(http.StatusOK), entries[0].ContextMap()["status"])
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	mem := store.NewMemoryStore()
	tr := trainer.New(trainer.Deps{
		State: func(id string) store.SessionStore { return store.Namespace(mem, id) },
	}, trainer.WithLogger(quiet()))
	h := New(tr, nil, zap.New(core))

	do(t, h, http.MethodGet, "/health", "", nil)

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/health", fields["path"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
	assert.NotEmpty(t, fields["request_id"])
}
