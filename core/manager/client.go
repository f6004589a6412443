package manager

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Client issues typed commands against the manager CLI.
type Client struct {
	runner Runner
	cfg    Config
	logger *zap.Logger
	group  singleflight.Group
}

// NewClient creates a client over runner.
func NewClient(runner Runner, cfg Config, logger *zap.Logger) *Client {
	return &Client{
		runner: runner,
		cfg:    cfg,
		logger: logger,
	}
}

// Config returns the manager configuration used by the client.
func (c *Client) Config() Config {
	return c.cfg
}

// ListServers runs `server list` and parses the result.
// Overlapping calls share one invocation; nothing is kept once it returns.
func (c *Client) ListServers(ctx context.Context) (Registry, error) {
	v, err, shared := c.group.Do("server list", func() (any, error) {
		// Detached so one caller giving up does not fail the others.
		res, err := c.query(context.WithoutCancel(ctx), "server", "list")
		if err != nil {
			return Registry{}, err
		}
		return ParseStatus(res.Stdout), nil
	})
	if shared {
		c.logger.Debug("Shared server list invocation")
	}
	if err != nil {
		return Registry{}, err
	}
	return v.(Registry), nil
}

// Worlds runs `<server> worlds list` and parses the result.
func (c *Client) Worlds(ctx context.Context, server string) ([]World, error) {
	res, err := c.query(ctx, server, "worlds", "list")
	if err != nil {
		return nil, err
	}
	return ParseWorlds(res.Stdout), nil
}

// LoadConfig runs `config` and parses the result.
func (c *Client) LoadConfig(ctx context.Context) (ConfigMap, error) {
	res, err := c.query(ctx, "config")
	if err != nil {
		return nil, err
	}
	return ParseConfig(res.Stdout), nil
}

// Lifecycle runs `<server> <action>`. The exit status is returned to the
// caller but never turned into an error.
func (c *Client) Lifecycle(ctx context.Context, server string, action Action) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.ActionTimeout())
	defer cancel()

	start := time.Now()
	res, err := c.runner.Run(ctx, server, string(action))
	c.logger.Info("Lifecycle command finished",
		zap.String("server", server),
		zap.String("action", string(action)),
		zap.Int("exit_status", res.ExitStatus),
		zap.Duration("took", time.Since(start)),
		zap.Error(err),
	)
	return res, err
}

func (c *Client) query(ctx context.Context, args ...string) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.QueryTimeout())
	defer cancel()

	res, err := c.runner.Run(ctx, args...)
	if err != nil {
		return res, err
	}
	if res.ExitStatus != 0 {
		return res, fmt.Errorf("%w: %s %s exited with status %d: %s",
			ErrToolFailure, c.cfg.Binary, strings.Join(args, " "), res.ExitStatus, strings.TrimSpace(res.Stderr))
	}
	return res, nil
}
