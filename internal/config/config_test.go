package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap/zapcore"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

// isolate clears variables that would leak in from the host.
func isolate(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir()) // no stray .env
	for _, k := range []string{
		"CYBERRANGE_DB", "CYBERRANGE_PROFILE", "CYBERRANGE_BACKEND", "CYBERRANGE_REDIS_URL",
		"CYBERRANGE_LOG_LEVEL", "CYBERRANGE_SEED", "CYBERRANGE_ADDR", "CYBERRANGE_FEEDBACK_MODE",
		"CYBERRANGE_FEEDBACK_ENDPOINT", "CYBERRANGE_FEEDBACK_TIMEOUT", "CYBERRANGE_CONFIG",
		"CYBERRANGE_LLM_PROVIDER", "CYBERRANGE_OPENROUTER_MODEL", "CYBERRANGE_GEMINI_MODEL",
		"CYBERRANGE_REDIS_TTL", "CYBERRANGE_FEEDBACK_API_KEY", "CYBERRANGE_LLM_MAX_TOKENS",
		"CYBERRANGE_LLM_TEMPERATURE", "CYBERRANGE_ANTHROPIC_API_KEY", "CYBERRANGE_GEMINI_API_KEY",
		"CYBERRANGE_OPENROUTER_API_KEY", "CYBERRANGE_OPENAI_API_KEY",
		"OPENROUTER_API_KEY", "GEMINI_API_KEY", "ANTHROPIC_API_KEY", "OPENAI_API_KEY",
		"CYBERRANGE_MAX_SESSIONS", "CYBERRANGE_SESSION_TTL",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Default()
	if cfg.Backend != want.Backend || cfg.Profile != want.Profile || cfg.Server.Addr != want.Server.Addr {
		t.Errorf("got %+v, want defaults %+v", cfg, want)
	}
	if cfg.Feedback.Mode != FeedbackLLM {
		t.Errorf("feedback mode = %q", cfg.Feedback.Mode)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	isolate(t)
	path := writeConfig(t, `
profile = "alice"
backend = "memory"
log_level = "debug"
seed = 99

[server]
addr = "127.0.0.1:9000"
max_sessions = 500
session_ttl = "10m"

[feedback]
mode = "http"
endpoint = "http://localhost:9000/api/analyze-scenario"
timeout = "5s"

[llm]
provider = "gemini"
model = "gemini-pro"
max_tokens = 512
temperature = 0.2
`)
	t.Setenv("CYBERRANGE_PROFILE", "bob")
	t.Setenv("CYBERRANGE_FEEDBACK_TIMEOUT", "2s")
	t.Setenv("CYBERRANGE_SESSION_TTL", "5m")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Profile != "bob" {
		t.Errorf("profile = %q, env should win", cfg.Profile)
	}
	if cfg.Backend != BackendMemory || cfg.Seed != 99 || cfg.Server.Addr != "127.0.0.1:9000" {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Feedback.Timeout != 2*time.Second {
		t.Errorf("feedback timeout = %v", cfg.Feedback.Timeout)
	}
	if cfg.Server.MaxSessions != 500 || cfg.Server.SessionTTL != 5*time.Minute {
		t.Errorf("session limits = %d / %v", cfg.Server.MaxSessions, cfg.Server.SessionTTL)
	}
	lvl, err := cfg.Level()
	if err != nil || lvl != zapcore.DebugLevel {
		t.Errorf("Level() = %v, %v", lvl, err)
	}

	lc := cfg.LLMProviderConfig()
	if lc.Provider != "gemini" || lc.Gemini.Model != "gemini-pro" {
		t.Errorf("llm config = %+v", lc)
	}
	if lc.MaxTokens != 512 || lc.Temperature != 0.2 {
		t.Errorf("generation settings = %d / %v", lc.MaxTokens, lc.Temperature)
	}
}

func TestLoad_ConfigPathFromEnv(t *testing.T) {
	isolate(t)
	t.Setenv("CYBERRANGE_CONFIG", writeConfig(t, `profile = "from-env-path"`))

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Profile != "from-env-path" {
		t.Errorf("profile = %q", cfg.Profile)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown backend", `backend = "postgres"`},
		{"redis without url", `backend = "redis"`},
		{"http without endpoint", "[feedback]\nmode = \"http\""},
		{"unknown feedback mode", "[feedback]\nmode = \"carrier-pigeon\""},
		{"bad log level", `log_level = "chatty"`},
		{"negative max sessions", "[server]\nmax_sessions = -1"},
		{"malformed toml", `backend = `},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			if _, err := Load(writeConfig(t, tt.body)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoad_DotEnv(t *testing.T) {
	isolate(t)
	os.Unsetenv("CYBERRANGE_BACKEND")
	if err := os.WriteFile(".env", []byte("CYBERRANGE_BACKEND=memory\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("CYBERRANGE_BACKEND") })

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend != BackendMemory {
		t.Errorf("backend = %q, want value from .env", cfg.Backend)
	}
}

func TestLLMProviderConfig_Discovery(t *testing.T) {
	isolate(t)
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")

	lc := Default().LLMProviderConfig()
	if lc.Provider != "anthropic" || lc.Anthropic.APIKey != "sk-ant" {
		t.Errorf("discovered %+v", lc)
	}

	c := Default()
	c.LLM = LLMConfig{Provider: "OpenRouter", APIKey: "sk-or"}
	lc = c.LLMProviderConfig()
	if lc.Provider != "openrouter" || lc.OpenRouter.APIKey != "sk-or" {
		t.Errorf("file override = %+v", lc)
	}
	if err := lc.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("CR_TEST_UINT", "42")
	t.Setenv("CR_TEST_BAD", "abc")
	t.Setenv("CR_TEST_DUR", "90s")

	if got := getEnvAsUintOrDefault("CR_TEST_UINT", 1); got != 42 {
		t.Errorf("uint = %d", got)
	}
	if got := getEnvAsUintOrDefault("CR_TEST_BAD", 1); got != 1 {
		t.Errorf("bad uint = %d", got)
	}
	if got := getEnvAsIntOrDefault("CR_TEST_UINT", 1); got != 42 {
		t.Errorf("int = %d", got)
	}
	if got := getEnvAsIntOrDefault("CR_TEST_BAD", 7); got != 7 {
		t.Errorf("bad int = %d", got)
	}
	if got := getEnvAsDurationOrDefault("CR_TEST_DUR", time.Second); got != 90*time.Second {
		t.Errorf("duration = %v", got)
	}
	if got := getEnvOrDefault("CR_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("default = %q", got)
	}
}
