package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "TOKENBUDGET_"

// Config is the full module configuration.
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Tokenizer TokenizerConfig `yaml:"tokenizer"`
	Budget    BudgetConfig    `yaml:"budget"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	// Level is a zap level name: debug, info, warn, error.
	Level string `yaml:"level"`
	// Format is "json" or "console".
	Format string `yaml:"format"`
}

// TokenizerConfig extends encoding inference.
type TokenizerConfig struct {
	// ExtraO200kPatterns are appended to the built-in o200k_base model
	// pattern list, for model families shipped after this module.
	ExtraO200kPatterns []string `yaml:"extra_o200k_patterns"`
}

// BudgetConfig configures the budget tracker.
type BudgetConfig struct {
	// Ceiling pins the token ceiling. Zero means derive it from the model.
	Ceiling int `yaml:"ceiling"`
	// AlertThreshold is the utilization fraction past which alerts fire.
	AlertThreshold float64 `yaml:"alert_threshold"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Budget: BudgetConfig{
			AlertThreshold: 0.8,
		},
	}
}

// Load builds a Config from defaults, then the YAML file at path (skipped
// when path is empty), then environment overrides.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Budget.AlertThreshold < 0 || c.Budget.AlertThreshold > 1 {
		return fmt.Errorf("budget alert_threshold must be in [0, 1], got %v", c.Budget.AlertThreshold)
	}
	if c.Budget.Ceiling < 0 {
		return fmt.Errorf("budget ceiling must not be negative, got %d", c.Budget.Ceiling)
	}
	return nil
}

// BuildLogger constructs a zap logger from the log configuration.
func (c LogConfig) BuildLogger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", c.Level, err)
	}

	var zc zap.Config
	if c.Format == "console" {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	zc.Level = level

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvPrefix + "LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvPrefix + "LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv(EnvPrefix + "TOKENIZER_EXTRA_O200K_PATTERNS"); v != "" {
		parts := strings.Split(v, ",")
		patterns := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				patterns = append(patterns, p)
			}
		}
		cfg.Tokenizer.ExtraO200kPatterns = patterns
	}
	if v := os.Getenv(EnvPrefix + "BUDGET_CEILING"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Budget.Ceiling = n
		}
	}
	if v := os.Getenv(EnvPrefix + "BUDGET_ALERT_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Budget.AlertThreshold = f
		}
	}
}
