package main

import (
	"os"
	"testing"
)

func TestSetupOTelEnvDefaultsToHoneycomb(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")
	t.Setenv("HONEYCOMB_GRIDGEN_API_KEY", "key")
	t.Setenv("HONEYCOMB_GRIDGEN_DATASET", "")

	setupOTelEnv()

	if got := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); got != honeycombEndpoint {
		t.Errorf("endpoint = %q, want %q", got, honeycombEndpoint)
	}
	want := "x-honeycomb-team=key,x-honeycomb-dataset=gridgen"
	if got := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"); got != want {
		t.Errorf("headers = %q, want %q", got, want)
	}
}

func TestSetupOTelEnvKeepsConfiguredEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4318")
	t.Setenv("HONEYCOMB_GRIDGEN_API_KEY", "")

	setupOTelEnv()

	if got := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); got != "http://localhost:4318" {
		t.Errorf("endpoint = %q, want the preset collector", got)
	}
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		seed string
		want int64
	}{
		{"", 0},
		{"42", 42},
		{"not-a-number", 0},
	}

	for _, tt := range tests {
		t.Setenv("GRIDGEN_SEED", tt.seed)
		t.Setenv("GRIDGEN_SETTINGS", "override.yaml")

		cfg := loadConfig()
		if cfg.Seed != tt.want {
			t.Errorf("GRIDGEN_SEED=%q: Seed = %d, want %d", tt.seed, cfg.Seed, tt.want)
		}
		if cfg.SettingsPath != "override.yaml" {
			t.Errorf("SettingsPath = %q, want override.yaml", cfg.SettingsPath)
		}
	}
}
