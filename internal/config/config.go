package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. VOCABQUIZ_SOURCE.
const EnvPrefix = "VOCABQUIZ"

// Config holds application configuration loaded from defaults, an optional
// config file, the environment and command-line flags.
type Config struct {
	Env     string `mapstructure:"env"`     // local or production; picks the log encoder
	Source  string `mapstructure:"source"`  // word bank DSN (JSON path, sqlite://, postgres://)
	Catalog string `mapstructure:"catalog"` // optional YAML catalog of image questions
	Seed    uint64 `mapstructure:"seed"`    // shuffle seed; 0 means random
	Log     Log    `mapstructure:"log"`
}

// Log configures the file logger. The terminal belongs to the UI, so logs
// never go to stdout or stderr while a session is running.
type Log struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Load reads configuration. The .env file in the working directory is
// loaded first if present; a config.yaml is searched in ./ and the user
// config dir. Flags bound by the caller take precedence over both.
func Load(flags ...FlagBinding) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "vocabquiz"))
	}

	defaultLog, err := DefaultLogPath()
	if err != nil {
		return nil, err
	}
	v.SetDefault("env", "local")
	v.SetDefault("source", "final_word.json")
	v.SetDefault("catalog", "")
	v.SetDefault("seed", 0)
	v.SetDefault("log.file", defaultLog)
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	for _, f := range flags {
		if f.Flag == nil || !f.Flag.Changed {
			continue
		}
		v.Set(f.Key, f.Flag.Value.String())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	return &cfg, nil
}

// DefaultLogPath resolves the log file path:
// 1. $XDG_STATE_HOME/vocabquiz/vocabquiz.log
// 2. ~/.local/state/vocabquiz/vocabquiz.log
func DefaultLogPath() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "vocabquiz", "vocabquiz.log"), nil
}
