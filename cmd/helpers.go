package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/GayathriPCh/LoLCode-AI/internal/chat"
	"github.com/GayathriPCh/LoLCode-AI/internal/config"
	"github.com/GayathriPCh/LoLCode-AI/internal/db"
	"github.com/GayathriPCh/LoLCode-AI/internal/llm"
	"github.com/GayathriPCh/LoLCode-AI/internal/logging"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `lolcode init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// setupLogger configures slog from cfg and the --verbose flag.
func setupLogger(cfg *config.Config) *slog.Logger {
	logger, err := logging.Init(cfg.Log, verbose)
	if err != nil {
		logger.Warn("could not open log file, logging to stderr", "file", cfg.Log.File, "error", err)
	}
	return logger
}

// createProxyFromConfig builds the provider and the completion proxy.
func createProxyFromConfig(cfg *config.Config, logger *slog.Logger) (*chat.Proxy, error) {
	provider, err := llm.NewProvider(cfg.LLMOptions())
	if err != nil {
		return nil, fmt.Errorf("creating LLM provider: %w", err)
	}
	return chat.NewProxy(provider,
		chat.WithModel(cfg.Model),
		chat.WithMaxTokens(cfg.MaxTokens),
		chat.WithLogger(logger),
	), nil
}

// warnMissingAPIKey logs when the provider key is not set yet. The key is
// read again on every request, so this is not fatal.
func warnMissingAPIKey(cfg *config.Config, logger *slog.Logger) {
	if env := cfg.APIKeyEnvVar(); env != "" && os.Getenv(env) == "" {
		logger.Warn("API key not set; chat requests will fail until it is", "env", env)
	}
}

// openDatabase opens the account database under the configured data dir.
func openDatabase(cfg *config.Config) (*db.DB, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	database, err := db.Open(filepath.Join(cfg.DataDir, "lolcode.db"))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return database, nil
}
