package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"logistics/cmd"
	httpin "logistics/internal/adapters/in/http"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the REST API and the scheduled jobs",
		Args:  cobra.NoArgs,
		RunE:  serve,
	}
}

func serve(c *cobra.Command, _ []string) error {
	config, logger, err := setup()
	if err != nil {
		return err
	}

	backend, err := cmd.OpenBackend(config, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := backend.Close(); err != nil {
			log.Errorf("close backend: %v", err)
		}
	}()

	app := cmd.NewCompositionRoot(config, backend.UoWFactory, logger)

	e, err := httpin.NewEcho(app.CreateHTTPServer(), logger)
	if err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return fmt.Errorf("start jobs: %w", err)
	}
	defer jobManager.StopAll()

	ctx, stop := signal.NotifyContext(c.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "port", config.HTTPPort)
		serverErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort))
	}()

	select {
	case err = <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return e.Shutdown(shutdownCtx)
}
