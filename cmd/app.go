package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/abhisek/cyberrange/internal/config"
	"github.com/abhisek/cyberrange/internal/feedback"
	"github.com/abhisek/cyberrange/internal/llm"
	"github.com/abhisek/cyberrange/internal/store"
	"github.com/abhisek/cyberrange/internal/trainer"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app is the set of dependencies a command runs against.
type app struct {
	cfg      config.Config
	logger   *zap.Logger
	store    *store.Store
	provider llm.Provider // nil when no LLM is configured
	trainer  *trainer.Trainer
	closers  []func() error
}

type appOptions struct {
	jsonLogs bool
	logOut   io.Writer
}

// openApp loads configuration, opens storage and builds the trainer.
func openApp(cmd *cobra.Command, opts appOptions) (*app, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	a := &app{cfg: cfg, logger: newLogger(cfg, opts)}
	zap.ReplaceGlobals(a.logger)
	a.closers = append(a.closers, func() error {
		_ = a.logger.Sync() // stderr cannot always be synced
		return nil
	})

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	a.store, err = store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	a.closers = append(a.closers, a.store.Close)

	state, err := a.stateFunc(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	fb, err := a.feedbackClient(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.trainer = trainer.New(trainer.Deps{
		State:    state,
		Attempts: a.store.AttemptRepo(),
		Modules:  a.store.ModuleRepo(),
		Feedback: fb,
	},
		trainer.WithSeed(cfg.Seed),
		trainer.WithLogger(a.logger),
		trainer.WithFeedbackTimeout(cfg.Feedback.Timeout),
		trainer.WithMaxSessions(cfg.Server.MaxSessions),
		trainer.WithSessionTTL(cfg.Server.SessionTTL),
	)

	return a, nil
}

// Session returns the session of the configured profile.
func (a *app) Session() *trainer.Session {
	return a.trainer.Session(a.cfg.Profile)
}

// Close releases resources in reverse order of acquisition.
func (a *app) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}

// newLogger builds a production JSON logger for serve and a development
// console logger for interactive commands.
func newLogger(cfg config.Config, opts appOptions) *zap.Logger {
	lvl, err := cfg.Level()
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	out := opts.logOut
	if out == nil {
		out = os.Stderr
	}

	var enc zapcore.Encoder
	var zopts []zap.Option
	if opts.jsonLogs {
		ec := zap.NewProductionEncoderConfig()
		ec.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewJSONEncoder(ec)
		zopts = append(zopts, zap.AddCaller())
	} else {
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}
	core := zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(out)), zap.NewAtomicLevelAt(lvl))
	return zap.New(core, zopts...)
}

// stateFunc picks the session-state backend. Shared backends are split per
// session with store.Namespace.
func (a *app) stateFunc(ctx context.Context) (trainer.StateFunc, error) {
	switch a.cfg.Backend {
	case config.BackendMemory:
		mem := store.NewMemoryStore()
		return func(id string) store.SessionStore { return store.Namespace(mem, id) }, nil
	case config.BackendRedis:
		rs, err := store.NewRedisStore(ctx, a.cfg.RedisURL, a.cfg.RedisTTL)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		a.closers = append(a.closers, rs.Close)
		return func(id string) store.SessionStore { return store.Namespace(rs, id) }, nil
	default:
		return a.store.SessionState, nil
	}
}

// feedbackClient builds the configured feedback client. A missing LLM key
// is not fatal: answers then get the built-in fallback feedback.
func (a *app) feedbackClient(ctx context.Context) (feedback.Client, error) {
	switch a.cfg.Feedback.Mode {
	case config.FeedbackOff:
		return nil, nil
	case config.FeedbackHTTP:
		return feedback.NewHTTPClient(a.cfg.Feedback.Endpoint,
			feedback.WithAPIKey(a.cfg.Feedback.APIKey),
			feedback.WithTimeout(a.cfg.Feedback.Timeout),
		), nil
	}

	provider, err := a.llmProvider(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "warning: answers will get built-in feedback.")
		return nil, nil
	}
	return feedback.NewLLMClient(provider, a.feedbackLLMConfig()), nil
}

// llmProvider builds the provider once.
func (a *app) llmProvider(ctx context.Context) (llm.Provider, error) {
	if a.provider != nil {
		return a.provider, nil
	}
	p, err := llm.NewProvider(ctx, a.cfg.LLMProviderConfig(), a.store.EventRepo(), a.logger)
	if err != nil {
		return nil, err
	}
	a.provider = p
	return p, nil
}

func (a *app) feedbackLLMConfig() feedback.LLMConfig {
	fc := feedback.DefaultLLMConfig()
	lc := a.cfg.LLMProviderConfig()
	if lc.MaxTokens > 0 {
		fc.MaxTokens = lc.MaxTokens
	}
	fc.Temperature = lc.Temperature
	return fc
}

// withApp opens the app for the duration of fn.
func withApp(cmd *cobra.Command, fn func(a *app) error) error {
	a, err := openApp(cmd, appOptions{})
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}
