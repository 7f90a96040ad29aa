// Package config loads the runtime knobs that sit outside the on-disk file
// formats spec.md defines: logging verbosity and format. It is adapted
// from the teacher's pkg/config.LoadConfig — same getEnv/getEnvAsInt
// pattern, trimmed to the handful of settings this tool actually has, since
// there is no service URL, worker pool, or queue to configure.
package config

import "os"

// Config holds the environment-sourced settings every id3 subcommand reads
// at startup.
type Config struct {
	LogLevel  string
	LogFormat string
}

// Load reads configuration from the environment, defaulting to a quiet,
// text-formatted logger so a bare invocation produces no log noise on
// stderr.
func Load() *Config {
	return &Config{
		LogLevel:  getEnv("ID3_LOG_LEVEL", "warn"),
		LogFormat: getEnv("ID3_LOG_FORMAT", "text"),
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
