// Copyright 2026 The Eticketer Authors
// SPDX-License-Identifier: Apache-2.0

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/foryouflowerai/eticketer/lib/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "eticketer.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()

	if cfg.Environment != config.Development {
		t.Errorf("Environment: got %q, want %q", cfg.Environment, config.Development)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
	if !strings.HasSuffix(cfg.DatabasePath(), "records.db") {
		t.Errorf("DatabasePath: got %q", cfg.DatabasePath())
	}
	if !strings.HasSuffix(cfg.SocketPath(), "eticketer.sock") {
		t.Errorf("SocketPath: got %q", cfg.SocketPath())
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
environment: production
paths:
  data: /srv/eticketer/data
  run: /srv/eticketer/run
storage:
  pool_size: 8
`)

	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Environment != config.Production {
		t.Errorf("Environment: got %q, want %q", cfg.Environment, config.Production)
	}
	if cfg.Paths.Data != "/srv/eticketer/data" {
		t.Errorf("Paths.Data: got %q", cfg.Paths.Data)
	}
	if cfg.Storage.PoolSize != 8 {
		t.Errorf("PoolSize: got %d, want 8", cfg.Storage.PoolSize)
	}
	if cfg.DatabasePath() != "/srv/eticketer/data/records.db" {
		t.Errorf("DatabasePath: got %q", cfg.DatabasePath())
	}
}

func TestLoadFilePartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
storage:
  pool_size: 2
`)

	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Environment != config.Development {
		t.Errorf("Environment: got %q, want %q", cfg.Environment, config.Development)
	}
	if cfg.Paths.Data == "" || cfg.Paths.Run == "" {
		t.Errorf("default paths not kept: %+v", cfg.Paths)
	}
	if cfg.Storage.PoolSize != 2 {
		t.Errorf("PoolSize: got %d, want 2", cfg.Storage.PoolSize)
	}
}

func TestEnvironmentOverridesApply(t *testing.T) {
	path := writeConfig(t, `
environment: staging
paths:
  data: /base/data
  run: /base/run
staging:
  paths:
    data: /staging/data
    run: /staging/run
  storage:
    pool_size: 16
production:
  storage:
    pool_size: 64
`)

	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Paths.Data != "/staging/data" {
		t.Errorf("Paths.Data: got %q, want /staging/data", cfg.Paths.Data)
	}
	if cfg.Storage.PoolSize != 16 {
		t.Errorf("PoolSize: got %d, want 16 (production section must not apply)", cfg.Storage.PoolSize)
	}
}

func TestLoadFileRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown environment", "environment: qa\n"},
		{"empty data path", "paths:\n  data: \"\"\n  run: /run\n"},
		{"negative pool size", "storage:\n  pool_size: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			if _, err := config.LoadFile(path); err == nil {
				t.Error("LoadFile succeeded, want error")
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := config.LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadFile succeeded, want error")
	}
}

func TestLoadRequiresEnvVar(t *testing.T) {
	t.Setenv(config.EnvVar, "")
	if _, err := config.Load(); err == nil {
		t.Error("Load succeeded with empty env var, want error")
	}
}

func TestLoadUsesEnvVar(t *testing.T) {
	path := writeConfig(t, `
paths:
  data: /env/data
  run: /env/run
`)
	t.Setenv(config.EnvVar, path)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Paths.Data != "/env/data" {
		t.Errorf("Paths.Data: got %q, want /env/data", cfg.Paths.Data)
	}
}

func TestEnsurePaths(t *testing.T) {
	root := t.TempDir()
	cfg := config.Default()
	cfg.Paths.Data = filepath.Join(root, "data")
	cfg.Paths.Run = filepath.Join(root, "run")

	if err := cfg.EnsurePaths(); err != nil {
		t.Fatalf("EnsurePaths: %v", err)
	}
	for _, dir := range []string{cfg.Paths.Data, cfg.Paths.Run} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("Stat %s: %v", dir, err)
		}
		if !info.IsDir() {
			t.Errorf("%s is not a directory", dir)
		}
	}
}
