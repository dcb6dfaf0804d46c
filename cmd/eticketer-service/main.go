// Copyright 2026 The Eticketer Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/foryouflowerai/eticketer/lib/clock"
	"github.com/foryouflowerai/eticketer/lib/config"
	"github.com/foryouflowerai/eticketer/lib/service"
	"github.com/foryouflowerai/eticketer/lib/sqlitepool"
	"github.com/foryouflowerai/eticketer/lib/ticketing"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to eticketer.yaml (default: $"+config.EnvVar+", then built-in defaults)")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if err := cfg.EnsurePaths(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := sqlitepool.Open(sqlitepool.Config{
		Path:     cfg.DatabasePath(),
		PoolSize: cfg.Storage.PoolSize,
		Logger:   logger,
		OnConnect: func(conn *sqlite.Conn) error {
			return sqlitex.ExecuteScript(conn, ticketing.Schema(), nil)
		},
	})
	if err != nil {
		return err
	}
	defer pool.Close()

	systemClock := clock.Real()
	records := newRecordService(ticketing.New(pool, systemClock, logger), systemClock)

	server := service.NewServer(cfg.SocketPath(), logger)
	records.registerActions(server)

	logger.Info("eticketer service starting",
		"environment", cfg.Environment,
		"database", cfg.DatabasePath(),
		"socket", cfg.SocketPath(),
	)
	return server.Serve(ctx)
}

// loadConfig resolves the configuration source: explicit flag, then
// the environment variable, then built-in development defaults.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	if os.Getenv(config.EnvVar) != "" {
		return config.Load()
	}
	return config.Default(), nil
}
