package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/martinnorin/iris-api/internal/config"
	"github.com/martinnorin/iris-api/internal/handlers"
	"github.com/martinnorin/iris-api/internal/model"
	"github.com/martinnorin/iris-api/internal/server"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	loader := model.NewLoader(cfg.ModelPath, cfg.MetadataPath)

	// The artifact is read per request, so a missing file only warns here.
	if meta, err := loader.Metadata(); err != nil {
		log.Warn("model metadata not readable, predictions will fail until the artifact exists",
			"path", cfg.MetadataPath, "error", err)
	} else {
		log.Info("model ready", "path", cfg.ModelPath,
			"classes", meta.Classes, "input_width", meta.InputWidth, "neighbors", meta.Neighbors)
	}

	handler := handlers.NewHandler(loader, log)
	srv := server.New(cfg, handler, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown failed", "error", err)
			os.Exit(1)
		}
	}
}
