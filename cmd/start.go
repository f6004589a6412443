package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title mc-panel API
// @version 1.0
// @description Control panel for Minecraft servers run by a manager CLI.
// @host localhost:8080
// @BasePath /

const shutdownTimeout = 30 * time.Second

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the panel HTTP server",
	Long:  `Starts the HTTP server and initializes all features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadRuntime()
		if err != nil {
			return err
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		p, err := newPanel(cfg, logg)
		if err != nil {
			return err
		}

		db, err := openCredentials(commandContext(cmd), cfg, logg)
		if err != nil {
			return err
		}

		app, err := newApp(p, db)
		if err != nil {
			return err
		}

		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			errCh <- app.Listen(cfg.Server.Address())
		}()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		select {
		case err := <-errCh:
			return err
		case <-sig:
		}

		logg.Info("Shutting down server...")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			logg.Warn("HTTP shutdown incomplete", zap.Error(err))
		}

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := p.tracker.Shutdown(ctx); err != nil {
			logg.Warn("Lifecycle tasks still running at exit", zap.Error(err))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
