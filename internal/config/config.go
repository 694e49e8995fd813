package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	ProviderHuggingFace = "huggingface"
	ProviderOpenAI      = "openai"
)

// Bounds mirrors the summarizer length bounds so it can be set from YAML.
type Bounds struct {
	MinLength int `yaml:"min_length"`
	MaxLength int `yaml:"max_length"`
}

type Config struct {
	Server struct {
		Port              int           `yaml:"port"`
		ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
		ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`

	// Pacing and CallTimeout default to 500ms and 60s. Zero disables them.
	Pipeline struct {
		MaxWords    int           `yaml:"max_words"`
		Pacing      time.Duration `yaml:"pacing"`
		CallTimeout time.Duration `yaml:"call_timeout"`
		Chunk       Bounds        `yaml:"chunk"`
		Final       Bounds        `yaml:"final"`
	} `yaml:"pipeline"`

	Summarizer struct {
		Provider string `yaml:"provider"`
		Model    string `yaml:"model"`
		BaseURL  string `yaml:"base_url"`
		// APIToken is only ever read from the environment.
		APIToken string `yaml:"-"`
	} `yaml:"summarizer"`

	Transcript struct {
		Language string        `yaml:"language"`
		Timeout  time.Duration `yaml:"timeout"`
	} `yaml:"transcript"`

	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

// Load builds the configuration from defaults, an optional YAML file and the
// environment, in that order. An empty path falls back to SUMMARIZER_CONFIG
// and then to config.yaml in the working directory.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("SUMMARIZER_CONFIG")
	}
	if path == "" {
		for _, loc := range []string{"config.yaml", "config.yml"} {
			if _, err := os.Stat(loc); err == nil {
				path = loc
				break
			}
		}
	}

	cfg := newConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}

	mergeWithEnv(cfg)
	applyDefaults(cfg)

	return cfg, nil
}

// newConfig seeds the settings where zero is a meaningful value, so only an
// explicit "0s" in the file turns pacing or the call timeout off.
func newConfig() *Config {
	cfg := &Config{}
	cfg.Pipeline.Pacing = 500 * time.Millisecond
	cfg.Pipeline.CallTimeout = 60 * time.Second
	return cfg
}

// applyDefaults fills settings left at their zero value.
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5001
	}
	if cfg.Server.ReadHeaderTimeout == 0 {
		cfg.Server.ReadHeaderTimeout = 10 * time.Second
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 15 * time.Second
	}

	if cfg.Pipeline.MaxWords == 0 {
		cfg.Pipeline.MaxWords = 300
	}
	if cfg.Pipeline.Chunk == (Bounds{}) {
		cfg.Pipeline.Chunk = Bounds{MinLength: 50, MaxLength: 150}
	}
	if cfg.Pipeline.Final == (Bounds{}) {
		cfg.Pipeline.Final = Bounds{MinLength: 100, MaxLength: 200}
	}

	if cfg.Summarizer.Provider == "" {
		cfg.Summarizer.Provider = ProviderHuggingFace
	}
	if cfg.Summarizer.Model == "" {
		switch cfg.Summarizer.Provider {
		case ProviderOpenAI:
			cfg.Summarizer.Model = "gpt-4o-mini"
		default:
			cfg.Summarizer.Model = "facebook/bart-large-cnn"
		}
	}

	if cfg.Transcript.Language == "" {
		cfg.Transcript.Language = "en"
	}
	if cfg.Transcript.Timeout == 0 {
		cfg.Transcript.Timeout = 30 * time.Second
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}

func mergeWithEnv(cfg *Config) {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		} else {
			slog.Warn("ignoring invalid PORT", slog.String("value", port))
		}
	}
	if provider := os.Getenv("SUMMARIZER_PROVIDER"); provider != "" {
		cfg.Summarizer.Provider = strings.ToLower(provider)
	}
	if model := os.Getenv("SUMMARIZER_MODEL"); model != "" {
		cfg.Summarizer.Model = model
	}
	if baseURL := os.Getenv("SUMMARIZER_BASE_URL"); baseURL != "" {
		cfg.Summarizer.BaseURL = baseURL
	}

	switch cfg.Summarizer.Provider {
	case ProviderOpenAI:
		cfg.Summarizer.APIToken = os.Getenv("OPENAI_API_KEY")
	default:
		cfg.Summarizer.APIToken = os.Getenv("HUGGING_FACE_API_TOKEN")
	}

	if lang := os.Getenv("TRANSCRIPT_LANGUAGE"); lang != "" {
		cfg.Transcript.Language = lang
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		cfg.Log.Format = format
	}
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// SlogLevel maps the configured level name onto slog.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
