// Package config loads cyberrange settings from .env, a TOML file and
// CYBERRANGE_* environment variables, in increasing priority.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/cyberrange/internal/llm"
)

// Session-state backends.
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Feedback modes.
const (
	FeedbackLLM  = "llm"
	FeedbackHTTP = "http"
	FeedbackOff  = "off"
)

// Config is the merged configuration.
type Config struct {
	DBPath   string `toml:"db_path"`
	Profile  string `toml:"profile"`
	Backend  string `toml:"backend"`
	RedisURL string `toml:"redis_url"`
	// RedisTTL expires idle session keys; 0 keeps them forever.
	RedisTTL time.Duration `toml:"redis_ttl"`
	LogLevel string        `toml:"log_level"`
	Seed     uint64        `toml:"seed"`

	Server   ServerConfig   `toml:"server"`
	Feedback FeedbackConfig `toml:"feedback"`
	LLM      LLMConfig      `toml:"llm"`
}

type ServerConfig struct {
	Addr        string        `toml:"addr"`
	MaxSessions int           `toml:"max_sessions"`
	SessionTTL  time.Duration `toml:"session_ttl"`
}

type FeedbackConfig struct {
	Mode     string        `toml:"mode"`
	Endpoint string        `toml:"endpoint"`
	Timeout  time.Duration `toml:"timeout"`
	APIKey   string        `toml:"api_key"`
}

// LLMConfig overrides the provider's defaults. Zero values keep them.
type LLMConfig struct {
	Provider    string   `toml:"provider"`
	Model       string   `toml:"model"`
	APIKey      string   `toml:"api_key"`
	MaxTokens   int      `toml:"max_tokens"`
	Temperature *float64 `toml:"temperature"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Profile:  "default",
		Backend:  BackendSQLite,
		RedisTTL: 30 * 24 * time.Hour,
		LogLevel: "info",
		Server:   ServerConfig{Addr: ":8080", MaxSessions: 10000, SessionTTL: time.Hour},
		Feedback: FeedbackConfig{Mode: FeedbackLLM, Timeout: 30 * time.Second},
	}
}

// Load builds the configuration. path may be empty, in which case
// CYBERRANGE_CONFIG and then DefaultConfigPath are tried. A missing file is
// not an error.
func Load(path string) (Config, error) {
	// .env is optional.
	_ = godotenv.Load()

	if path == "" {
		path = getEnvOrDefault("CYBERRANGE_CONFIG", DefaultConfigPath())
	}

	cfg := Default()
	if err := decodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("stat config: %w", err)
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.DBPath = getEnvOrDefault("CYBERRANGE_DB", c.DBPath)
	c.Profile = getEnvOrDefault("CYBERRANGE_PROFILE", c.Profile)
	c.Backend = getEnvOrDefault("CYBERRANGE_BACKEND", c.Backend)
	c.RedisURL = getEnvOrDefault("CYBERRANGE_REDIS_URL", c.RedisURL)
	c.RedisTTL = getEnvAsDurationOrDefault("CYBERRANGE_REDIS_TTL", c.RedisTTL)
	c.LogLevel = getEnvOrDefault("CYBERRANGE_LOG_LEVEL", c.LogLevel)
	c.Seed = getEnvAsUintOrDefault("CYBERRANGE_SEED", c.Seed)

	c.Server.Addr = getEnvOrDefault("CYBERRANGE_ADDR", c.Server.Addr)
	c.Server.MaxSessions = getEnvAsIntOrDefault("CYBERRANGE_MAX_SESSIONS", c.Server.MaxSessions)
	c.Server.SessionTTL = getEnvAsDurationOrDefault("CYBERRANGE_SESSION_TTL", c.Server.SessionTTL)

	c.Feedback.Mode = getEnvOrDefault("CYBERRANGE_FEEDBACK_MODE", c.Feedback.Mode)
	c.Feedback.Endpoint = getEnvOrDefault("CYBERRANGE_FEEDBACK_ENDPOINT", c.Feedback.Endpoint)
	c.Feedback.Timeout = getEnvAsDurationOrDefault("CYBERRANGE_FEEDBACK_TIMEOUT", c.Feedback.Timeout)
	c.Feedback.APIKey = getEnvOrDefault("CYBERRANGE_FEEDBACK_API_KEY", c.Feedback.APIKey)
}

// Validate rejects unknown enum values and incomplete backends.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendSQLite, BackendMemory:
	case BackendRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("backend %q needs redis_url (CYBERRANGE_REDIS_URL)", c.Backend)
		}
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}

	switch c.Feedback.Mode {
	case FeedbackLLM, FeedbackOff:
	case FeedbackHTTP:
		if c.Feedback.Endpoint == "" {
			return fmt.Errorf("feedback mode %q needs an endpoint (CYBERRANGE_FEEDBACK_ENDPOINT)", c.Feedback.Mode)
		}
	default:
		return fmt.Errorf("unknown feedback mode %q", c.Feedback.Mode)
	}

	if c.Server.MaxSessions < 0 || c.Server.SessionTTL < 0 {
		return fmt.Errorf("server session limits must not be negative")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Profile == "" {
		return fmt.Errorf("profile must not be empty")
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// LLMProviderConfig merges the [llm] table over provider discovery. The
// CYBERRANGE_LLM_* and CYBERRANGE_<PROVIDER>_* variables still win.
func (c Config) LLMProviderConfig() llm.Config {
	cfg, ok := llm.DiscoverConfig()
	if !ok {
		cfg = llm.DefaultConfig()
	}

	if c.LLM.Provider != "" {
		cfg.Provider = strings.ToLower(c.LLM.Provider)
	}
	if c.LLM.Model != "" || c.LLM.APIKey != "" {
		model, key := providerFields(&cfg)
		if model != nil && c.LLM.Model != "" {
			*model = c.LLM.Model
		}
		if key != nil && c.LLM.APIKey != "" {
			*key = c.LLM.APIKey
		}
	}
	if c.LLM.MaxTokens > 0 {
		cfg.MaxTokens = c.LLM.MaxTokens
	}
	if c.LLM.Temperature != nil {
		cfg.Temperature = *c.LLM.Temperature
	}

	cfg.ApplyEnv()
	return cfg
}

func providerFields(cfg *llm.Config) (model, key *string) {
	switch cfg.Provider {
	case "anthropic":
		return &cfg.Anthropic.Model, &cfg.Anthropic.APIKey
	case "openai":
		return &cfg.OpenAI.Model, &cfg.OpenAI.APIKey
	case "gemini":
		return &cfg.Gemini.Model, &cfg.Gemini.APIKey
	case "openrouter":
		return &cfg.OpenRouter.Model, &cfg.OpenRouter.APIKey
	}
	return nil, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvAsUintOrDefault(key string, defaultVal uint64) uint64 {
	n, err := strconv.ParseUint(os.Getenv(key), 10, 64)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvAsDurationOrDefault(key string, defaultVal time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultVal
	}
	return d
}
