package manager_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"mc-panel/core/manager"
	"mc-panel/core/manager/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newClient(r manager.Runner) *manager.Client {
	return manager.NewClient(r, manager.Config{Binary: "msm", TimeoutSeconds: 1, ActionTimeoutSeconds: 1}, zap.NewNop())
}

func TestClient_ListServers(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		runner := new(mocks.Runner)
		runner.On("Run", mock.Anything, "server", "list").
			Return(manager.Result{Stdout: "[ ACTIVE ] \"minerva\" is running.\n"}, nil)

		reg, err := newClient(runner).ListServers(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"minerva"}, reg.Names())
		runner.AssertExpectations(t)
	})

	t.Run("Non-zero Exit Aborts", func(t *testing.T) {
		runner := new(mocks.Runner)
		runner.On("Run", mock.Anything, "server", "list").
			Return(manager.Result{ExitStatus: 2, Stderr: "boom"}, nil)

		_, err := newClient(runner).ListServers(context.Background())
		assert.ErrorIs(t, err, manager.ErrToolFailure)
		assert.Contains(t, err.Error(), "boom")
	})

	t.Run("Runner Error", func(t *testing.T) {
		runner := new(mocks.Runner)
		runner.On("Run", mock.Anything, "server", "list").
			Return(manager.Result{}, assert.AnError)

		_, err := newClient(runner).ListServers(context.Background())
		assert.ErrorIs(t, err, assert.AnError)
	})
}

// blockingRunner holds `server list` until release is closed.
type blockingRunner struct {
	calls   atomic.Int32
	entered chan struct{}
	release chan struct{}
}

func (r *blockingRunner) Run(ctx context.Context, args ...string) (manager.Result, error) {
	if r.calls.Add(1) == 1 {
		close(r.entered)
	}
	<-r.release
	return manager.Result{Stdout: "[ INACTIVE ] \"a\" is stopped.\n"}, nil
}

func TestClient_ListServersShared(t *testing.T) {
	runner := &blockingRunner{entered: make(chan struct{}), release: make(chan struct{})}
	client := newClient(runner)

	var wg sync.WaitGroup
	results := make([]manager.Registry, 3)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			reg, err := client.ListServers(context.Background())
			assert.NoError(t, err)
			results[i] = reg
		}(i)
		if i == 0 {
			<-runner.entered
		}
	}

	time.Sleep(50 * time.Millisecond)
	close(runner.release)
	wg.Wait()

	assert.Equal(t, int32(1), runner.calls.Load())
	for _, reg := range results {
		assert.Equal(t, []string{"a"}, reg.Names())
	}
}

func TestClient_Worlds(t *testing.T) {
	runner := new(mocks.Runner)
	runner.On("Run", mock.Anything, "minerva", "worlds", "list").
		Return(manager.Result{Stdout: "[ ACTIVE ] \"world\" is in RAM.\n"}, nil)
	runner.On("Run", mock.Anything, "ghost", "worlds", "list").
		Return(manager.Result{ExitStatus: 1}, nil)

	client := newClient(runner)

	worlds, err := client.Worlds(context.Background(), "minerva")
	require.NoError(t, err)
	assert.Equal(t, []manager.World{{Name: "world", Active: true}}, worlds)

	_, err = client.Worlds(context.Background(), "ghost")
	assert.True(t, errors.Is(err, manager.ErrToolFailure))
}

func TestClient_LoadConfig(t *testing.T) {
	runner := new(mocks.Runner)
	runner.On("Run", mock.Anything, "config").
		Return(manager.Result{Stdout: "JAR_STORAGE_PATH=\"/jars\"\n"}, nil).Once()
	runner.On("Run", mock.Anything, "config").
		Return(manager.Result{ExitStatus: 1}, nil).Once()

	client := newClient(runner)

	cfg, err := client.LoadConfig(context.Background())
	require.NoError(t, err)
	p, ok := cfg.JarStoragePath("JAR_STORAGE_PATH")
	assert.True(t, ok)
	assert.Equal(t, "/jars", p)

	_, err = client.LoadConfig(context.Background())
	assert.ErrorIs(t, err, manager.ErrToolFailure)
}

func TestClient_LifecycleIgnoresExitStatus(t *testing.T) {
	runner := new(mocks.Runner)
	runner.On("Run", mock.Anything, "minerva", "restart").
		Return(manager.Result{ExitStatus: 1, Stdout: "failed"}, nil)

	res, err := newClient(runner).Lifecycle(context.Background(), "minerva", manager.ActionRestart)
	assert.NoError(t, err)
	assert.Equal(t, 1, res.ExitStatus)
}

func TestParseAction(t *testing.T) {
	for _, s := range []string{"start", "stop", "restart"} {
		a, ok := manager.ParseAction(s)
		assert.True(t, ok)
		assert.Equal(t, manager.Action(s), a)
	}
	_, ok := manager.ParseAction("delete")
	assert.False(t, ok)
}
