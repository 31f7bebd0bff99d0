package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	rainbetapi "github.com/gambizardonkick/aetricrewardsdata/adapters/rainbet"
	raw365api "github.com/gambizardonkick/aetricrewardsdata/adapters/raw365"
	"github.com/gambizardonkick/aetricrewardsdata/internal/config"
	"github.com/gambizardonkick/aetricrewardsdata/internal/logger"
	"github.com/gambizardonkick/aetricrewardsdata/internal/metrics"
	"github.com/gambizardonkick/aetricrewardsdata/internal/registry"
	"github.com/gambizardonkick/aetricrewardsdata/internal/server"
	"github.com/gambizardonkick/aetricrewardsdata/pkg/contracts"
	"github.com/gambizardonkick/aetricrewardsdata/programs/rainbet"
	"github.com/gambizardonkick/aetricrewardsdata/programs/raw365"
	"github.com/gambizardonkick/aetricrewardsdata/programs/raw365monthly"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config: %v", err)
		os.Exit(1)
	}

	// Initialize affiliate API adapters
	rainbetClient := rainbetapi.NewClient(cfg.Rainbet.APIKey, cfg.Rainbet.BaseURL)
	raw365Client := raw365api.NewClient(cfg.Raw365.APIKey, cfg.Raw365.BaseURL)

	logger.Success("Initialized affiliate adapters")

	// Register programs. The weekly and monthly Raw365 races share one
	// upstream client.
	programRegistry := registry.NewProgramRegistry()
	modules := []contracts.ProgramModule{
		rainbet.NewModule(rainbetClient),
		raw365.NewModule(raw365Client),
		raw365monthly.NewModule(raw365Client),
	}
	for _, module := range modules {
		if err := programRegistry.Register(module); err != nil {
			logger.Error("failed to register %s: %v", module.GetProgramKey(), err)
			os.Exit(1)
		}
	}

	logger.Success("Registered %d program(s)", programRegistry.Count())
	for _, program := range programRegistry.GetAll() {
		logger.Info("  [%s] %s", program.GetProgramKey(), program.GetDisplayName())
	}

	// Expose Prometheus metrics on a separate listener
	metrics.NewServer(cfg.Server.MetricsPort).Start()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: server.NewRouter(server.NewServer(programRegistry)),
	}

	go func() {
		logger.Success("Server listening on port %d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown: %v", err)
		os.Exit(1)
	}

	logger.Success("Server stopped")
}
