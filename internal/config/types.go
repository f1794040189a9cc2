package config

import "time"

// Config is the top-level lolcode configuration, corresponding to .lolcode.yml.
type Config struct {
	Provider       string        `yaml:"provider" koanf:"provider"`
	Model          string        `yaml:"model" koanf:"model"`
	BaseURL        string        `yaml:"base_url,omitempty" koanf:"base_url"`
	APIKeyEnv      string        `yaml:"api_key_env,omitempty" koanf:"api_key_env"`
	Temperature    float64       `yaml:"temperature" koanf:"temperature"`
	MaxTokens      int           `yaml:"max_tokens,omitempty" koanf:"max_tokens"`
	Port           int           `yaml:"port" koanf:"port"`
	DataDir        string        `yaml:"data_dir" koanf:"data_dir"`
	AllowedOrigins []string      `yaml:"allowed_origins" koanf:"allowed_origins"`
	SessionTTL     time.Duration `yaml:"session_ttl" koanf:"session_ttl"`
	Log            LogConfig     `yaml:"log" koanf:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level" koanf:"level"`
	Format string `yaml:"format" koanf:"format"`
	File   string `yaml:"file,omitempty" koanf:"file"`
}
