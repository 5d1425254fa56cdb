package config

import "time"

// Config holds server configuration values.
type Config struct {
	Addr              string        `mapstructure:"addr" yaml:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	LogLevel          string        `mapstructure:"log_level" yaml:"log_level"`
	CORSOrigin        string        `mapstructure:"cors_origin" yaml:"cors_origin"`
	MaxMessageBytes   int64         `mapstructure:"max_message_bytes" yaml:"max_message_bytes"`
	RateLimit         int           `mapstructure:"rate_limit" yaml:"rate_limit"`
	RateWindow        time.Duration `mapstructure:"rate_window" yaml:"rate_window"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		Addr:              ":3001",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   5 * time.Second,
		LogLevel:          "info",
		CORSOrigin:        "http://localhost:3000",
		MaxMessageBytes:   1 << 20,
		RateLimit:         100,
		RateWindow:        15 * time.Minute,
	}
}
