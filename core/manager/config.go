package manager

import "time"

// Config holds configuration for the external server manager CLI.
type Config struct {
	// Binary is the manager executable, resolved through PATH.
	Binary string `mapstructure:"binary" default:"msm"`
	// TimeoutSeconds bounds list, worlds and config queries.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
	// ActionTimeoutSeconds bounds start, stop and restart.
	ActionTimeoutSeconds int `mapstructure:"action_timeout_seconds" default:"120"`
	// JarPathKey is the config key naming the jar storage root.
	JarPathKey string `mapstructure:"jar_path_key" default:"JAR_STORAGE_PATH"`
}

// QueryTimeout returns the timeout for read-only queries.
func (c Config) QueryTimeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ActionTimeout returns the timeout for lifecycle actions.
func (c Config) ActionTimeout() time.Duration {
	if c.ActionTimeoutSeconds <= 0 {
		return 2 * time.Minute
	}
	return time.Duration(c.ActionTimeoutSeconds) * time.Second
}
