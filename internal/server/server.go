// Package server exposes the trainer over HTTP and hosts the feedback
// endpoint the trainer's HTTP feedback client talks to.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/cyberrange/internal/feedback"
	"github.com/abhisek/cyberrange/internal/trainer"
)

// SessionHeader carries the session identifier on requests and responses.
const SessionHeader = "X-Session-ID"

const maxSessionIDLen = 128

// Server holds the handler dependencies.
type Server struct {
	trainer  *trainer.Trainer
	analyzer feedback.Client
	logger   *zap.Logger
}

// New builds the router. analyzer backs POST /api/analyze-scenario and is
// wrapped with feedback.WithFallback.
func New(tr *trainer.Trainer, analyzer feedback.Client, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.L()
	}
	s := &Server{
		trainer:  tr,
		analyzer: feedback.WithFallback(analyzer, logger),
		logger:   logger,
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(chimiddleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/api/analyze-scenario", s.analyzeScenario)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(s.session)

		r.Get("/scenarios/next", s.nextScenario)

		r.Route("/emails", func(r chi.Router) {
			r.Get("/next", s.nextEmail)
			r.Get("/batch", s.emailBatch)
			r.Get("/categories", s.emailCategories)
		})

		r.Post("/answers", s.answer)
		r.Get("/feedback/{instanceID}", s.getFeedback)
		r.Get("/stats", s.stats)
		r.Get("/attempts", s.attempts)
		r.Post("/reset", s.reset)

		r.Route("/modules", func(r chi.Router) {
			r.Get("/", s.modules)
			r.Post("/{moduleID}/complete", s.completeModule)
		})
	})

	return r
}

// requestLogger logs one line per request once it completes.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			s.logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", chimiddleware.GetReqID(r.Context())),
			)
		}()
		next.ServeHTTP(ww, r)
	})
}

type sessionKey struct{}

// session resolves the caller's session from SessionHeader, creating a
// new one when absent, and echoes the ID back.
func (s *Server) session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(SessionHeader)
		if len(id) > maxSessionIDLen {
			s.writeError(w, http.StatusBadRequest, "session id too long")
			return
		}
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(SessionHeader, id)

		ctx := context.WithValue(r.Context(), sessionKey{}, s.trainer.Session(id))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionFrom(ctx context.Context) *trainer.Session {
	return ctx.Value(sessionKey{}).(*trainer.Session)
}
