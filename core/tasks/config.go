package tasks

// Config holds configuration for lifecycle task tracking.
type Config struct {
	// History is how many finished tasks are kept for polling.
	History int `mapstructure:"history" default:"50"`
}
