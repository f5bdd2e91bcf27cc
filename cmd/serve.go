package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/abhisek/cyberrange/internal/feedback"
	"github.com/abhisek/cyberrange/internal/llm"
	"github.com/abhisek/cyberrange/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the training HTTP API",
	Long: "Serve the training API under /api/v1 and the feedback endpoint at\n" +
		"POST /api/analyze-scenario. Sessions are keyed by the X-Session-ID header.",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd, appOptions{jsonLogs: true})
		if err != nil {
			return err
		}
		defer a.Close()

		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			a.cfg.Server.Addr = addr
		}

		// The feedback endpoint always uses the local model, whatever the
		// trainer's feedback mode is.
		var analyzer feedback.Client
		if p, err := a.llmProvider(cmd.Context()); err == nil {
			analyzer = feedback.NewLLMClient(p, a.feedbackLLMConfig()).WithPurpose(llm.PurposeAnalyze)
		} else {
			a.logger.Warn("analyze-scenario will serve fallback feedback", zap.Error(err))
		}

		srv := &http.Server{
			Addr:         a.cfg.Server.Addr,
			Handler:      server.New(a.trainer, analyzer, a.logger),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: a.cfg.Feedback.Timeout + 15*time.Second,
			IdleTimeout:  60 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			a.logger.Info("listening",
				zap.String("addr", srv.Addr),
				zap.String("backend", a.cfg.Backend),
				zap.String("feedback", a.cfg.Feedback.Mode),
			)
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("serve: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		a.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		// Feedback requests outlive their HTTP requests. Let them finish
		// before the store is closed.
		if err := a.trainer.Drain(shutdownCtx); err != nil {
			a.logger.Warn("feedback still running at shutdown", zap.Error(err))
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides [server] addr and CYBERRANGE_ADDR)")
}
