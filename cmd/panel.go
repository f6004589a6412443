package cmd

import (
	"context"
	"fmt"

	"mc-panel/core/config"
	"mc-panel/core/database"
	"mc-panel/core/jars"
	"mc-panel/core/logger"
	"mc-panel/core/manager"
	"mc-panel/core/storage"
	"mc-panel/core/tasks"
	"mc-panel/feature/admins"
	"mc-panel/feature/servers"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// panel bundles the long-lived collaborators shared by every command.
type panel struct {
	cfg     *config.Config
	logger  *zap.Logger
	client  *manager.Client
	tracker *tasks.Tracker
	servers *servers.Service
}

// loadRuntime reads the configuration and builds the logger.
func loadRuntime() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return cfg, logg, nil
}

// newPanel wires the manager client, the jar catalog and the task tracker.
// Debug mode swaps the CLI for canned output.
func newPanel(cfg *config.Config, logg *zap.Logger) (*panel, error) {
	var (
		runner   manager.Runner
		resolver *jars.Resolver
	)

	if cfg.Server.Debug {
		logg.Warn("Debug mode: serving canned manager output")
		runner = manager.NewCannedRunner()
		resolver = jars.NewStaticResolver(jars.StaticSource(manager.CannedJars))
	} else {
		runner = manager.NewExecRunner(cfg.Manager.Binary)

		var store storage.Client
		if cfg.Jars.Source == jars.SourceS3 {
			client, err := storage.NewClient(cfg.Storage)
			if err != nil {
				return nil, fmt.Errorf("failed to create storage client: %w", err)
			}
			store = client
		}
		resolver = jars.NewResolver(cfg.Jars, cfg.Manager.JarPathKey, store, cfg.Storage.Bucket)
	}

	client := manager.NewClient(runner, cfg.Manager, logg)
	tracker := tasks.NewTracker(client, cfg.Tasks, logg)

	return &panel{
		cfg:     cfg,
		logger:  logg,
		client:  client,
		tracker: tracker,
		servers: servers.NewService(client, resolver, tracker, logg),
	}, nil
}

// openCredentials connects the credential database and ensures its schema.
func openCredentials(ctx context.Context, cfg *config.Config, logg *zap.Logger) (*gorm.DB, error) {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := admins.Migrate(db); err != nil {
		return nil, err
	}
	logg.Info("Credential database ready",
		zap.String("driver", cfg.Database.Driver),
		zap.String("name", cfg.Database.Name),
	)

	created, err := admins.NewStore(db).Bootstrap(ctx, cfg.Admin)
	if err != nil {
		return nil, fmt.Errorf("bootstrap admin: %w", err)
	}
	if created {
		logg.Info("Bootstrap admin created", zap.String("username", cfg.Admin.BootstrapUser))
	}
	return db, nil
}
