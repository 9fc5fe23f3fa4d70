package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"match-pairs-api/internal/config"
	"match-pairs-api/internal/domain"
	"match-pairs-api/internal/handler"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	cfg := config.NewConfig()
	if err := cfg.Validate(); err != nil {
		printSetupHelp(cfg, err)
		os.Exit(1)
	}

	// Wiring
	ctx := context.Background()
	container, err := config.NewContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer container.Close()

	// Handlers
	matchHandler := handler.NewMatchHandler(
		container.MatchService,
		container.Logger,
		cfg.GetMaxFileSize(),
	)

	// Router
	router := handler.NewRouter(matchHandler, container.Logger)

	server := &http.Server{
		Addr:              ":" + cfg.GetServerPort(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Run server
	go func() {
		container.Logger.Info("Server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			container.Logger.Error("Server failed to start", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	container.Logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		container.Logger.Error("Graceful shutdown failed", err)
		_ = server.Close()
	}

	container.Logger.Info("Server exited")
}

// printSetupHelp explains how to fix the configuration problems in err
func printSetupHelp(cfg *config.AppConfig, err error) {
	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow)

	line := "============================================================"
	fmt.Fprintln(os.Stderr, line)
	red.Fprintln(os.Stderr, "ERROR: invalid configuration")
	fmt.Fprintln(os.Stderr, line)
	fmt.Fprintln(os.Stderr, err)
	fmt.Fprintln(os.Stderr)

	switch cfg.GetGenerationProvider() {
	case domain.ProviderGroq:
		if cfg.GetGroqAPIKey() == "" {
			yellow.Fprintln(os.Stderr, "GROQ_API_KEY environment variable is not set.")
			fmt.Fprintln(os.Stderr, "Set it in your shell or in a .env file:")
			fmt.Fprintln(os.Stderr, "  export GROQ_API_KEY='your-api-key-here'")
			fmt.Fprintln(os.Stderr)
			fmt.Fprintln(os.Stderr, "Get your API key from: https://console.groq.com/keys")
		}
	case domain.ProviderVertex:
		if cfg.GetGCPProjectID() == "" {
			yellow.Fprintln(os.Stderr, "GCP_PROJECT_ID environment variable is not set.")
			fmt.Fprintln(os.Stderr, "Set it and authenticate with Application Default Credentials:")
			fmt.Fprintln(os.Stderr, "  export GCP_PROJECT_ID='your-project-id'")
			fmt.Fprintln(os.Stderr, "  gcloud auth application-default login")
		}
	}
	fmt.Fprintln(os.Stderr, line)
}
