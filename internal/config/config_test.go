// Copyright (c) 2025 ToeiRei
// Passgate - password strength validation toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func testCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("database.type", "", "")
	cmd.Flags().String("database.dsn", "", "")
	cmd.Flags().String("language", "", "")
	return cmd
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	defaults := map[string]any{
		"database.type":   "sqlite",
		"database.dsn":    "./passgate.db",
		"language":        "en",
		"generate.length": 16,
	}

	c, err := LoadConfig[Config](testCmd(), defaults, nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if c.Database.Type != "sqlite" || c.Database.Dsn != "./passgate.db" {
		t.Fatalf("unexpected database config: %+v", c.Database)
	}
	if c.Language != "en" {
		t.Fatalf("language = %q, want en", c.Language)
	}
	if c.Generate.Length != 16 {
		t.Fatalf("generate.length = %d, want 16", c.Generate.Length)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(dir, "custom.yaml")
	content := "database:\n  type: postgres\n  dsn: postgres://localhost/passgate\nlanguage: de\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	c, err := LoadConfig[Config](testCmd(), map[string]any{"language": "en"}, &path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if c.Database.Type != "postgres" {
		t.Fatalf("database.type = %q, want postgres", c.Database.Type)
	}
	if c.Language != "de" {
		t.Fatalf("language = %q, want de (file should beat defaults)", c.Language)
	}
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("language: de\n"), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("PASSGATE_LANGUAGE", "en")

	c, err := LoadConfig[Config](testCmd(), nil, &path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if c.Language != "en" {
		t.Fatalf("language = %q, want en (env should beat file)", c.Language)
	}
}

func TestLoadConfigFlagsWin(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PASSGATE_DATABASE_TYPE", "mysql")

	cmd := testCmd()
	if err := cmd.Flags().Set("database.type", "sqlite"); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	c, err := LoadConfig[Config](cmd, nil, nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if c.Database.Type != "sqlite" {
		t.Fatalf("database.type = %q, want sqlite (flag should beat env)", c.Database.Type)
	}
}
