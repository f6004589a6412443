package manager

import (
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecRunner(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	r := NewExecRunner("sh")

	t.Run("Captures Output And Exit Status", func(t *testing.T) {
		res, err := r.Run(context.Background(), "-c", "echo hello; echo oops >&2; exit 3")
		require.NoError(t, err)
		assert.Equal(t, 3, res.ExitStatus)
		assert.Equal(t, "hello\n", res.Stdout)
		assert.Equal(t, "oops\n", res.Stderr)
	})

	t.Run("Success", func(t *testing.T) {
		res, err := r.Run(context.Background(), "-c", "true")
		require.NoError(t, err)
		assert.Equal(t, 0, res.ExitStatus)
	})

	t.Run("Timeout", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := r.Run(ctx, "-c", "sleep 5")
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
	})
}

func TestExecRunner_MissingBinary(t *testing.T) {
	r := NewExecRunner("mc-panel-no-such-binary")
	_, err := r.Run(context.Background(), "server", "list")
	assert.Error(t, err)
}
