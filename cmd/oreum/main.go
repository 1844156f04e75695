// Command oreum serves the Oreum wellness companion API.
//
// Usage:
//
//	GEMINI_API_KEY=... oreum [flags]
//
// Flags:
//
//	-config string   Path to the YAML config file (default: oreum.yaml)
//
// Environment variables (also read from a .env file) override the config
// file: OREUM_ADDR, OREUM_MODEL, OREUM_STORAGE, OREUM_DATA_DIR,
// OREUM_ALLOWED_ORIGINS. GEMINI_API_KEY is used until a key is saved
// through the settings endpoint.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/oreum-app/oreum"
	"github.com/oreum-app/oreum/gateway"
	"github.com/oreum-app/oreum/gemini"
	oreumhttp "github.com/oreum-app/oreum/http"
	oreumjson "github.com/oreum-app/oreum/json"
	"github.com/oreum-app/oreum/secret"
	"github.com/oreum-app/oreum/sqlite"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "oreum: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", defaultConfigPath, "Path to the YAML config file")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, using environment variables")
	}

	cfg, err := loadConfig(*configPath, flagSet("config"), os.Getenv)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	db, err := sqlite.Open(filepath.Join(cfg.DataDir, "oreum.db"))
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("close database", "error", err)
		}
	}()
	if err := db.Ping(ctx); err != nil {
		return fmt.Errorf("database health check: %w", err)
	}

	var storage oreum.Storage = db
	if cfg.Storage == StorageJSON {
		storage = oreumjson.New(filepath.Join(cfg.DataDir, "storage.json"))
	}
	secrets := secret.New(storage, secret.WithLogger(logger))

	var geminiOpts []gemini.Option
	if cfg.Model != "" {
		geminiOpts = append(geminiOpts, gemini.WithModel(cfg.Model))
	}
	gw := gateway.New(gemini.Connector(geminiOpts...), gateway.WithLogger(logger))
	gw.Initialize(initialCredential(secrets, cfg.APIKey))

	srv := oreumhttp.NewServer(gw, secrets, db,
		oreumhttp.WithLogger(logger),
		oreumhttp.WithAllowedOrigins(cfg.AllowedOrigins),
	)
	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      2 * time.Minute, // model calls can be slow
		IdleTimeout:       120 * time.Second,
	}

	logger.Info("starting server",
		"addr", cfg.Addr,
		"storage", cfg.Storage,
		"data_dir", cfg.DataDir,
		"configured", gw.Configured(),
	)

	errc := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}
	stop()

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// initialCredential prefers the saved key over the environment fallback.
func initialCredential(secrets *secret.Store, envKey string) string {
	if key, ok := secrets.Load(); ok {
		return key
	}
	return envKey
}

// flagSet reports whether the named flag was given on the command line.
func flagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
