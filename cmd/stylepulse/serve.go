// cmd/stylepulse/serve.go

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"stylepulse/internal/config"
	"stylepulse/internal/server"
)

// serveCmd runs the pipeline and serves the results over HTTP
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the pipeline, then serve the results over HTTP",
	Long: `Runs the pipeline once and exposes the computed weekly summary,
rising tags and per-tag series as a read-only JSON API, plus the
generated artifacts under /outputs/.`,
	RunE: servePipeline,
}

func servePipeline(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	p, err := buildPipeline(cfg)
	if err != nil {
		return err
	}

	snapshot, err := p.Run()
	if err != nil {
		return err
	}

	resolvedOutputDir := cfg.Pipeline.OutputDir
	if outputDir != "" {
		resolvedOutputDir = outputDir
	}

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	httpServer := server.NewServer(cfg.Server, snapshot, resolvedOutputDir)

	// Start HTTP server
	errs := make(chan error, 1)
	go func() {
		log.Printf("Starting HTTP server on %s:%d", cfg.Server.Host, cfg.Server.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errs <- err
		}
	}()

	// Wait for shutdown signal or server failure
	select {
	case err := <-errs:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-shutdown:
		log.Println("Shutdown signal received")
	}

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown error: %w", err)
	}

	log.Println("Shutdown complete")
	return nil
}
