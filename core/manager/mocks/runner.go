package mocks

import (
	"context"

	"mc-panel/core/manager"

	"github.com/stretchr/testify/mock"
)

// Runner is a mock implementation of manager.Runner
type Runner struct {
	mock.Mock
}

func (m *Runner) Run(ctx context.Context, args ...string) (manager.Result, error) {
	callArgs := []any{ctx}
	for _, a := range args {
		callArgs = append(callArgs, a)
	}
	ret := m.Called(callArgs...)
	return ret.Get(0).(manager.Result), ret.Error(1)
}
