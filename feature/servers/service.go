package servers

import (
	"context"
	"errors"
	"fmt"

	"mc-panel/core/jars"
	"mc-panel/core/manager"
	"mc-panel/core/tasks"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrServerNotFound is returned for a name missing from the registry.
var ErrServerNotFound = errors.New("server not found")

// Detail is everything shown for one server.
type Detail struct {
	Server  manager.Server   `json:"server"`
	Servers []manager.Server `json:"servers"`
	Worlds  []manager.World  `json:"worlds"`
	Jars    []string         `json:"jars"`
	Tasks   []tasks.Task     `json:"tasks"`
}

// Service answers server queries through the manager CLI and submits
// lifecycle commands to the tracker.
type Service struct {
	client   *manager.Client
	resolver *jars.Resolver
	tracker  *tasks.Tracker
	logger   *zap.Logger
}

// NewService creates a new servers service.
func NewService(client *manager.Client, resolver *jars.Resolver, tracker *tasks.Tracker, logger *zap.Logger) *Service {
	return &Service{
		client:   client,
		resolver: resolver,
		tracker:  tracker,
		logger:   logger,
	}
}

// Registry returns a fresh snapshot of the known servers.
func (s *Service) Registry(ctx context.Context) (manager.Registry, error) {
	return s.client.ListServers(ctx)
}

// Jars lists the jar catalog.
func (s *Service) Jars(ctx context.Context) ([]string, error) {
	var cfg manager.ConfigMap
	if s.resolver.NeedsManagerConfig() {
		var err error
		if cfg, err = s.client.LoadConfig(ctx); err != nil {
			return nil, err
		}
	}

	src, err := s.resolver.Source(cfg)
	if err != nil {
		return nil, err
	}
	list, err := src.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list jars: %w", err)
	}
	if list == nil {
		list = []string{}
	}
	return list, nil
}

// Detail gathers the registry, the server's worlds and the jar catalog.
// Worlds and jars are fetched concurrently once the server is known.
func (s *Service) Detail(ctx context.Context, name string) (*Detail, error) {
	reg, err := s.Registry(ctx)
	if err != nil {
		return nil, err
	}
	server, ok := reg.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrServerNotFound, name)
	}

	detail := &Detail{
		Server:  server,
		Servers: reg.Servers(),
		Tasks:   s.tracker.ForServer(name),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		worlds, err := s.client.Worlds(gctx, name)
		if err != nil {
			return err
		}
		detail.Worlds = worlds
		return nil
	})
	g.Go(func() error {
		list, err := s.Jars(gctx)
		if err != nil {
			return err
		}
		detail.Jars = list
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if detail.Worlds == nil {
		detail.Worlds = []manager.World{}
	}
	if detail.Tasks == nil {
		detail.Tasks = []tasks.Task{}
	}
	return detail, nil
}

// Submit queues a lifecycle action for a known server.
func (s *Service) Submit(ctx context.Context, name string, action manager.Action) (tasks.Task, error) {
	reg, err := s.Registry(ctx)
	if err != nil {
		return tasks.Task{}, err
	}
	if _, ok := reg.Get(name); !ok {
		return tasks.Task{}, fmt.Errorf("%w: %s", ErrServerNotFound, name)
	}
	return s.tracker.Submit(name, action)
}

// Task returns a submitted task.
func (s *Service) Task(id string) (tasks.Task, error) {
	return s.tracker.Get(id)
}
