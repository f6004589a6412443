package tasks

import (
	"errors"
	"time"

	"mc-panel/core/manager"
)

// ErrTaskNotFound is returned for unknown or evicted task ids.
var ErrTaskNotFound = errors.New("task not found")

// ErrShuttingDown is returned by Submit once Shutdown has begun.
var ErrShuttingDown = errors.New("task tracker is shutting down")

// State is the lifecycle of a task.
type State string

const (
	StatePending   State = "pending"
	StateRunning   State = "running"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
)

// Task is one submitted lifecycle command.
type Task struct {
	ID         string         `json:"id"`
	Server     string         `json:"server"`
	Action     manager.Action `json:"action"`
	State      State          `json:"state"`
	ExitStatus int            `json:"exit_status"`
	Output     string         `json:"output,omitempty"`
	Error      string         `json:"error,omitempty"`
	Created    time.Time      `json:"created"`
	Started    *time.Time     `json:"started,omitempty"`
	Finished   *time.Time     `json:"finished,omitempty"`
}

// Done reports whether the task reached a final state.
func (t Task) Done() bool {
	return t.State == StateSucceeded || t.State == StateFailed
}
