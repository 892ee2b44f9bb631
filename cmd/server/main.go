package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/cvtwin/internal/api"
	"github.com/dgallion1/cvtwin/internal/config"
	"github.com/dgallion1/cvtwin/internal/docstore"
	"github.com/dgallion1/cvtwin/internal/extract"
	"github.com/dgallion1/cvtwin/internal/mcptool"
	"github.com/dgallion1/cvtwin/internal/openai"
	"github.com/dgallion1/cvtwin/internal/respond"
)

const version = "0.2.0"

func main() {
	httpMode := flag.Bool("http", false, "serve the HTTP API instead of the stdio MCP transport")
	flag.Parse()

	// In stdio mode stdout belongs to the MCP transport.
	log := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	config.LoadDotEnv(".env")
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	store := docstore.NewStore()
	extractor := extract.New(log, extract.DefaultBackends()...)
	loader := docstore.NewLoader(store, extractor, cfg.DocsDir, docstore.Mode(cfg.DiscoveryMode), log)

	factory := func() (respond.Completer, error) {
		if cfg.OpenAIAPIKey == "" {
			return nil, errors.New("OPENAI_API_KEY environment variable not set. Please set it with: export OPENAI_API_KEY='your-api-key'")
		}
		return openai.New(cfg.OpenAIAPIKey, cfg.OpenAIModel), nil
	}
	responder := respond.New(loader, store, factory, respond.Persona(cfg.Persona), log)

	if *httpMode {
		runHTTP(cfg, responder, log)
		return
	}

	log.Info("starting mcp server",
		"version", version,
		"docs_dir", cfg.DocsDir,
		"discovery_mode", cfg.DiscoveryMode,
		"persona", cfg.Persona,
	)
	if err := mcptool.ServeStdio(mcptool.NewServer(responder, version)); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}

func runHTTP(cfg config.Config, responder *respond.Responder, log *slog.Logger) {
	srv := api.NewServer(responder, log, cfg.APIKey)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 180 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting http server", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
