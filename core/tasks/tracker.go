package tasks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"mc-panel/core/manager"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Executor runs one lifecycle command.
type Executor interface {
	Lifecycle(ctx context.Context, server string, action manager.Action) (manager.Result, error)
}

type entry struct {
	task Task
	done chan struct{}
}

// Tracker runs lifecycle commands in the background and keeps their status.
type Tracker struct {
	exec    Executor
	logger  *zap.Logger
	history int

	mu      sync.Mutex
	entries map[string]*entry
	order   []string
	closed  bool
	wg      sync.WaitGroup
}

// NewTracker creates a tracker that runs commands through exec.
func NewTracker(exec Executor, cfg Config, logger *zap.Logger) *Tracker {
	history := cfg.History
	if history <= 0 {
		history = 50
	}
	return &Tracker{
		exec:    exec,
		logger:  logger,
		history: history,
		entries: make(map[string]*entry),
	}
}

// Submit queues action for server and returns the pending task.
// The command outlives the caller's request.
func (t *Tracker) Submit(server string, action manager.Action) (Task, error) {
	e := &entry{
		task: Task{
			ID:      uuid.NewString(),
			Server:  server,
			Action:  action,
			State:   StatePending,
			Created: time.Now(),
		},
		done: make(chan struct{}),
	}

	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return Task{}, ErrShuttingDown
	}
	t.entries[e.task.ID] = e
	t.order = append(t.order, e.task.ID)
	t.evictLocked()
	snapshot := e.task
	// Add under mu so it cannot race the Wait in Shutdown.
	t.wg.Add(1)
	t.mu.Unlock()

	go t.run(e)

	return snapshot, nil
}

func (t *Tracker) run(e *entry) {
	defer t.wg.Done()
	defer close(e.done)

	t.mu.Lock()
	now := time.Now()
	e.task.State = StateRunning
	e.task.Started = &now
	server, action := e.task.Server, e.task.Action
	t.mu.Unlock()

	res, err := t.exec.Lifecycle(context.Background(), server, action)

	t.mu.Lock()
	defer t.mu.Unlock()

	finished := time.Now()
	e.task.Finished = &finished
	e.task.ExitStatus = res.ExitStatus
	e.task.Output = res.Stdout
	switch {
	case err != nil:
		e.task.State = StateFailed
		e.task.Error = err.Error()
	case res.ExitStatus != 0:
		e.task.State = StateFailed
		e.task.Error = fmt.Sprintf("exit status %d", res.ExitStatus)
	default:
		e.task.State = StateSucceeded
	}

	t.logger.Info("Task finished",
		zap.String("task_id", e.task.ID),
		zap.String("server", server),
		zap.String("action", string(action)),
		zap.String("state", string(e.task.State)),
	)
}

// evictLocked drops the oldest finished tasks beyond the history limit.
func (t *Tracker) evictLocked() {
	excess := len(t.order) - t.history
	if excess <= 0 {
		return
	}
	kept := t.order[:0]
	for _, id := range t.order {
		if excess > 0 && t.entries[id].task.Done() {
			delete(t.entries, id)
			excess--
			continue
		}
		kept = append(kept, id)
	}
	t.order = kept
}

// Get returns a copy of the task with the given id.
func (t *Tracker) Get(id string) (Task, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.entries[id]
	if !ok {
		return Task{}, ErrTaskNotFound
	}
	return e.task, nil
}

// List returns all tracked tasks, oldest first.
func (t *Tracker) List() []Task {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Task, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.entries[id].task)
	}
	return out
}

// ForServer returns the tracked tasks of one server, oldest first.
func (t *Tracker) ForServer(server string) []Task {
	var out []Task
	for _, task := range t.List() {
		if task.Server == server {
			out = append(out, task)
		}
	}
	return out
}

// Wait blocks until the task finishes or ctx ends.
func (t *Tracker) Wait(ctx context.Context, id string) (Task, error) {
	t.mu.Lock()
	e, ok := t.entries[id]
	t.mu.Unlock()
	if !ok {
		return Task{}, ErrTaskNotFound
	}

	select {
	case <-e.done:
	case <-ctx.Done():
		return Task{}, ctx.Err()
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	return e.task, nil
}

// Shutdown stops accepting tasks and waits for running commands until ctx
// ends.
func (t *Tracker) Shutdown(ctx context.Context) error {
	t.mu.Lock()
	t.closed = true
	t.mu.Unlock()

	done := make(chan struct{})
	go func() {
		t.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
