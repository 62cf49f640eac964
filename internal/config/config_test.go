package config

import (
	"testing"
	"time"
)

func TestRuntimeConfigDefaults(t *testing.T) {
	cfg := Default()
	if cfg.APIURL != "http://localhost:3000/api" || cfg.ListenAddr != ":3000" {
		t.Fatalf("unexpected endpoint defaults: %+v", cfg)
	}
	if cfg.RequestTimeout != 10*time.Second || cfg.DBPath != "weekplan.db" || cfg.UIDensity != 1 {
		t.Fatalf("unexpected runtime defaults: %+v", cfg)
	}
}

func TestRuntimeConfigFromEnv(t *testing.T) {
	t.Setenv("WEEKPLAN_API_URL", "http://store.local:8080/api")
	t.Setenv("WEEKPLAN_REQUEST_TIMEOUT_SECONDS", "3")
	t.Setenv("WEEKPLAN_LISTEN_ADDR", "127.0.0.1:4000")
	t.Setenv("WEEKPLAN_DB_PATH", "data/tasks.db")
	t.Setenv("WEEKPLAN_UI_DENSITY", "2")

	cfg := FromEnv(Default())
	if cfg.APIURL != "http://store.local:8080/api" || cfg.ListenAddr != "127.0.0.1:4000" {
		t.Fatalf("unexpected endpoint overrides: %+v", cfg)
	}
	if cfg.RequestTimeout != 3*time.Second || cfg.DBPath != "data/tasks.db" || cfg.UIDensity != 2 {
		t.Fatalf("unexpected config overrides: %+v", cfg)
	}
}

func TestRuntimeConfigIgnoresBadValues(t *testing.T) {
	t.Setenv("WEEKPLAN_REQUEST_TIMEOUT_SECONDS", "soon")
	t.Setenv("WEEKPLAN_UI_DENSITY", "9")
	t.Setenv("WEEKPLAN_API_URL", "   ")

	cfg := FromEnv(Default())
	if cfg != Default() {
		t.Fatalf("expected defaults to survive bad env values, got %+v", cfg)
	}
}
