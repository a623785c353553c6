package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("valid config loads", func(t *testing.T) {
		path := writeTempConfig(t, "project: test-campaign\nversion: 1\ndatabase:\n  dsn: sqlite://chronicler.db\n")
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cfg.Project != "test-campaign" {
			t.Fatalf("expected project name, got %q", cfg.Project)
		}
		if cfg.Database.DSN != "sqlite://chronicler.db" {
			t.Fatalf("unexpected dsn: %q", cfg.Database.DSN)
		}
	})

	t.Run("defaults applied", func(t *testing.T) {
		path := writeTempConfig(t, "project: test\nversion: 1\ndatabase:\n  dsn: sqlite://chronicler.db\n")
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cfg.HTTP.Addr != ":8080" {
			t.Fatalf("expected default addr, got %q", cfg.HTTP.Addr)
		}
		if cfg.Auth.JWTSecret != "dev-secret" {
			t.Fatalf("expected default jwt secret, got %q", cfg.Auth.JWTSecret)
		}
	})

	t.Run("environment overrides file", func(t *testing.T) {
		path := writeTempConfig(t, "project: test\nversion: 1\ndatabase:\n  dsn: sqlite://file.db\nhttp:\n  addr: \":8080\"\n")
		t.Setenv("CHRONICLER_DATABASE_DSN", "postgres://localhost/chronicler")
		t.Setenv("CHRONICLER_HTTP_ADDR", ":9999")
		t.Setenv("CHRONICLER_JWT_SECRET", "from-env")

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cfg.Database.DSN != "postgres://localhost/chronicler" {
			t.Fatalf("dsn override not applied: %q", cfg.Database.DSN)
		}
		if cfg.HTTP.Addr != ":9999" {
			t.Fatalf("addr override not applied: %q", cfg.HTTP.Addr)
		}
		if cfg.Auth.JWTSecret != "from-env" {
			t.Fatalf("secret override not applied: %q", cfg.Auth.JWTSecret)
		}
	})

	t.Run("missing project name", func(t *testing.T) {
		path := writeTempConfig(t, "version: 1\ndatabase:\n  dsn: sqlite://chronicler.db\n")
		if _, err := Load(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("unsupported version", func(t *testing.T) {
		path := writeTempConfig(t, "project: test\nversion: 2\ndatabase:\n  dsn: sqlite://chronicler.db\n")
		if _, err := Load(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("missing dsn", func(t *testing.T) {
		path := writeTempConfig(t, "project: test\nversion: 1\n")
		if _, err := Load(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("file not found", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeTempConfig(t, "project: [\n")
		if _, err := Load(path); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chronicler.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}
	return path
}
