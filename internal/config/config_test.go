package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load with missing file: %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %q", cfg.Server.Addr)
	}
	if cfg.Database.Path != "loancam.db" {
		t.Errorf("expected default db path, got %q", cfg.Database.Path)
	}
	if cfg.Model.Provider != ProviderNone {
		t.Errorf("expected default provider none, got %q", cfg.Model.Provider)
	}
	if cfg.Model.Timeout != 30*time.Second {
		t.Errorf("expected default model timeout 30s, got %v", cfg.Model.Timeout)
	}
	if cfg.ModelConfigured() {
		t.Error("expected model to be unconfigured by default")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":9090"
database:
  path: "test.db"
model:
  provider: huggingface
  token: "secret"
  endpoint: "https://api-inference.example.com/models/foo"
  timeout: 10s
log:
  level: debug
  json: false
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Addr != ":9090" {
		t.Errorf("expected addr :9090, got %q", cfg.Server.Addr)
	}
	if cfg.Model.Timeout != 10*time.Second {
		t.Errorf("expected timeout 10s, got %v", cfg.Model.Timeout)
	}
	if !cfg.ModelConfigured() {
		t.Error("expected model to be configured")
	}
	if cfg.Log.Level != "debug" || cfg.Log.JSON {
		t.Errorf("unexpected log config: %+v", cfg.Log)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "bad provider",
			content: `
model:
  provider: skynet
`,
		},
		{
			name: "bad log level",
			content: `
log:
  level: loud
`,
		},
		{
			name: "huggingface without endpoint",
			content: `
model:
  provider: huggingface
  token: "secret"
`,
		},
		{
			name: "timeout out of range",
			content: `
model:
  timeout: 1h
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			if _, err := Load(path); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("LOANCAM_SERVER_ADDR", ":7070")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":7070" {
		t.Errorf("expected env override :7070, got %q", cfg.Server.Addr)
	}
}

func TestEnvCredential(t *testing.T) {
	// The credential is typically supplied only through the environment,
	// with no yaml file present at all.
	t.Setenv("LOANCAM_MODEL_PROVIDER", "gemini")
	t.Setenv("LOANCAM_MODEL_TOKEN", "env-secret")
	t.Setenv("LOANCAM_MODEL_MODEL", "gemini-2.0-flash")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Model.Provider != ProviderGemini {
		t.Errorf("expected provider gemini, got %q", cfg.Model.Provider)
	}
	if cfg.Model.Token != "env-secret" {
		t.Errorf("expected token from environment, got %q", cfg.Model.Token)
	}
	if cfg.Model.Model != "gemini-2.0-flash" {
		t.Errorf("expected model name from environment, got %q", cfg.Model.Model)
	}
	if !cfg.ModelConfigured() {
		t.Error("expected model to be configured from environment variables")
	}
}

func TestEnvCredentialHuggingFace(t *testing.T) {
	t.Setenv("LOANCAM_MODEL_PROVIDER", "huggingface")
	t.Setenv("LOANCAM_MODEL_TOKEN", "env-secret")
	t.Setenv("LOANCAM_MODEL_ENDPOINT", "https://api-inference.example.com/models/foo")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.ModelConfigured() {
		t.Error("expected model to be configured from environment variables")
	}
	if cfg.Model.Endpoint != "https://api-inference.example.com/models/foo" {
		t.Errorf("expected endpoint from environment, got %q", cfg.Model.Endpoint)
	}
}
