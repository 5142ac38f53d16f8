package core

import (
	"context"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestConfigValidateLiveRequiresProduct(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = string(ModeLive)
	if err := cfg.Validate(); err == nil {
		t.Fatalf("live mode without product must fail")
	}
	cfg.Product = "M3"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("live mode with product: %v", err)
	}
}

func TestConfigValidateRejectsUnknownEngine(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = string(ModeLive)
	cfg.Product = "LN"
	cfg.DB.Engine = "mysql"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("unsupported engine must fail validation")
	}
}

func TestEnvRawConfigLoader(t *testing.T) {
	env := map[string]string{
		"PRODUCT":   "LAWSON",
		"MODE":      "live",
		"DATA_AREA": "PROD",
		"DB_TYPE":   "db2",
		"DB_PORT":   "50000",
	}
	loader := &EnvRawConfigLoader{
		Lookup: func(key string) (string, bool) {
			value, ok := env[key]
			return value, ok
		},
	}
	raw, err := loader.LoadRaw(context.Background())
	if err != nil {
		t.Fatalf("load raw: %v", err)
	}
	if raw["product"] != "LAWSON" || raw["mode"] != "live" || raw["data_area"] != "PROD" {
		t.Fatalf("unexpected raw config: %v", raw)
	}
	db, ok := raw["db"].(map[string]any)
	if !ok {
		t.Fatalf("expected nested db map, got %v", raw["db"])
	}
	if db["engine"] != "db2" || db["port"] != 50000 {
		t.Fatalf("unexpected db config: %v", db)
	}
}

func TestGoOptionsResolverLayering(t *testing.T) {
	defaults := DefaultConfig()
	loaded := Config{Product: "LN", Mode: "mock"}
	runtime := Config{Product: "M3"}

	resolved, err := GoOptionsResolver{}.Resolve(defaults, loaded, runtime)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.Product != "M3" {
		t.Fatalf("runtime layer must win, got product %q", resolved.Product)
	}
	if resolved.Scheduler.MaxParallel != defaults.Scheduler.MaxParallel {
		t.Fatalf("defaults must fill unset values, got %d", resolved.Scheduler.MaxParallel)
	}
}

func TestParseMode(t *testing.T) {
	if mode, err := ParseMode(""); err != nil || mode != ModeMock {
		t.Fatalf("empty mode must default to mock, got %v %v", mode, err)
	}
	if mode, err := ParseMode("LIVE"); err != nil || mode != ModeLive {
		t.Fatalf("mode parsing must be case-insensitive, got %v %v", mode, err)
	}
	if _, err := ParseMode("dryrun"); err == nil {
		t.Fatalf("unknown mode must fail")
	}
}
