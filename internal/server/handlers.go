package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"

	"github.com/abhisek/cyberrange/internal/content"
	"github.com/abhisek/cyberrange/internal/feedback"
	"github.com/abhisek/cyberrange/internal/selector"
	"github.com/abhisek/cyberrange/internal/trainer"
)

const (
	defaultBatch = 5
	maxBatch     = 50

	defaultAttempts = 20
	maxAttempts     = 100
)

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Debug("encode response", zap.Int("status", status), zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

// fail maps a trainer error to a status code.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case selector.IsEmptyPool(err):
		s.writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, content.ErrUnknownDifficulty):
		s.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, trainer.ErrNoActiveInstance):
		s.writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, trainer.ErrUnknownModule):
		s.writeError(w, http.StatusNotFound, err.Error())
	default:
		s.logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func (s *Server) nextScenario(w http.ResponseWriter, r *http.Request) {
	d, err := content.ParseDifficulty(r.URL.Query().Get("difficulty"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	sc, err := sessionFrom(r.Context()).NextScenario(r.Context(), d)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, sc)
}

func (s *Server) nextEmail(w http.ResponseWriter, r *http.Request) {
	d, err := content.ParseDifficulty(r.URL.Query().Get("difficulty"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	e, err := sessionFrom(r.Context()).NextEmail(r.Context(), d)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, e)
}

func (s *Server) emailBatch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	d, err := content.ParseDifficulty(q.Get("difficulty"))
	if err != nil {
		s.fail(w, r, err)
		return
	}

	n := defaultBatch
	if raw := q.Get("count"); raw != "" {
		n, err = strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxBatch {
			s.writeError(w, http.StatusBadRequest, "count must be between 1 and 50")
			return
		}
	}

	batch, err := sessionFrom(r.Context()).Emails(r.Context(), n, d)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"emails": batch})
}

func (s *Server) emailCategories(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"categories": content.EmailCategories(),
		"templates":  len(content.EmailTemplates()),
	})
}

type answerRequest struct {
	InstanceID string  `json:"instance_id"`
	Answer     string  `json:"answer"`
	TimeTaken  float64 `json:"time_taken"` // seconds
}

func (s *Server) answer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	choice, err := content.ParseLabel(req.Answer)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	out, err := sessionFrom(r.Context()).Answer(r.Context(), trainer.Answer{
		InstanceID: req.InstanceID,
		Choice:     choice,
		TimeTaken:  time.Duration(max(req.TimeTaken, 0) * float64(time.Second)),
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, out)
}

// getFeedback returns 200 with the result or 202 until it arrives. With
// ?wait=true it blocks instead, and answers 404 for a replaced instance.
func (s *Server) getFeedback(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "instanceID")
	sess := sessionFrom(r.Context())

	if wait, _ := strconv.ParseBool(r.URL.Query().Get("wait")); wait {
		res, err := sess.WaitFeedback(r.Context(), id)
		if err != nil {
			if errors.Is(err, feedback.ErrStale) {
				s.writeError(w, http.StatusNotFound, err.Error())
				return
			}
			s.writeError(w, http.StatusGatewayTimeout, err.Error())
			return
		}
		s.writeJSON(w, http.StatusOK, res)
		return
	}

	if res, ok := sess.Feedback(id); ok {
		s.writeJSON(w, http.StatusOK, res)
		return
	}
	s.writeJSON(w, http.StatusAccepted, map[string]string{"status": "pending"})
}

func (s *Server) stats(w http.ResponseWriter, r *http.Request) {
	sum, err := sessionFrom(r.Context()).Stats(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, sum)
}

func (s *Server) attempts(w http.ResponseWriter, r *http.Request) {
	n := defaultAttempts
	if raw := r.URL.Query().Get("limit"); raw != "" {
		var err error
		n, err = strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxAttempts {
			s.writeError(w, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
	}
	list, err := sessionFrom(r.Context()).RecentAttempts(r.Context(), n)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"attempts": list})
}

func (s *Server) reset(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	sess.Reset(r.Context())
	sum, err := sess.Stats(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, sum)
}

func (s *Server) modules(w http.ResponseWriter, r *http.Request) {
	list, err := sessionFrom(r.Context()).Modules(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"modules": list})
}

func (s *Server) completeModule(w http.ResponseWriter, r *http.Request) {
	xp, err := sessionFrom(r.Context()).CompleteModule(r.Context(), chi.URLParam(r, "moduleID"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]int{"xp_awarded": xp})
}

// analyzeScenario serves the feedback contract. Generation failures are
// answered with the fallback result, never an error status.
func (s *Server) analyzeScenario(w http.ResponseWriter, r *http.Request) {
	var req feedback.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Scenario.Title == "" {
		s.writeError(w, http.StatusBadRequest, "scenario.title is required")
		return
	}

	res, _ := s.analyzer.RequestFeedback(r.Context(), req)
	s.writeJSON(w, http.StatusOK, res)
}
