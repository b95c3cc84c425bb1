package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alnah/go-outline/internal/config"
)

// envPrefix marks the environment variables read by the CLI.
const envPrefix = "DOCOUTLINE_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // DOCOUTLINE_CONFIG: config file name or path
	Style      string // DOCOUTLINE_STYLE: Markdown page style name or path
	InputDir   string // DOCOUTLINE_INPUT_DIR: default input directory
	OutputDir  string // DOCOUTLINE_OUTPUT_DIR: default output directory
	LogLevel   string // DOCOUTLINE_LOG_LEVEL: debug, info, warn, error
	LogFormat  string // DOCOUTLINE_LOG_FORMAT: text, json
	Workers    int    // DOCOUTLINE_WORKERS: parallel workers
}

// knownEnvVars lists valid DOCOUTLINE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"DOCOUTLINE_CONFIG":     true,
	"DOCOUTLINE_STYLE":      true,
	"DOCOUTLINE_INPUT_DIR":  true,
	"DOCOUTLINE_OUTPUT_DIR": true,
	"DOCOUTLINE_LOG_LEVEL":  true,
	"DOCOUTLINE_LOG_FORMAT": true,
	"DOCOUTLINE_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("DOCOUTLINE_CONFIG"),
		Style:      getenv("DOCOUTLINE_STYLE"),
		InputDir:   getenv("DOCOUTLINE_INPUT_DIR"),
		OutputDir:  getenv("DOCOUTLINE_OUTPUT_DIR"),
		LogLevel:   getenv("DOCOUTLINE_LOG_LEVEL"),
		LogFormat:  getenv("DOCOUTLINE_LOG_FORMAT"),
	}

	if workers := getenv("DOCOUTLINE_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars writes a warning for each unrecognized DOCOUTLINE_*
// variable, catching typos like DOCOUTLINE_WORKER.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig applies environment values to cfg where the config file
// left the default. Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Style != "" && cfg.Markdown.Style == "" {
		cfg.Markdown.Style = env.Style
	}
	if env.InputDir != "" && cfg.Input.DefaultDir == "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.LogLevel != "" && cfg.Log.Level == config.DefaultLogLevel {
		cfg.Log.Level = env.LogLevel
	}
	if env.LogFormat != "" && cfg.Log.Format == config.DefaultLogFormat {
		cfg.Log.Format = env.LogFormat
	}
}
