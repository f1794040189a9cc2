package config

import (
	"github.com/GayathriPCh/LoLCode-AI/internal/auth"
	"github.com/GayathriPCh/LoLCode-AI/internal/chat"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = ".lolcode.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Provider:       "nebius",
		Model:          chat.DefaultModel,
		Temperature:    chat.Temperature,
		Port:           3000,
		DataDir:        ".lolcode",
		AllowedOrigins: []string{"*"},
		SessionTTL:     auth.DefaultSessionTTL,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
