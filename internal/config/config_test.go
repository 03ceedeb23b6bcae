package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.Toolset != ToolsetFull {
		t.Fatalf("expected full toolset by default, got %q", cfg.Toolset)
	}
	if cfg.OwnerPhone != DefaultOwnerPhone {
		t.Fatalf("expected default owner phone, got %q", cfg.OwnerPhone)
	}
}

func TestValidate_RejectsUnknownTransport(t *testing.T) {
	t.Parallel()
	cfg := Default()
	cfg.Transport = "websocket"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown transport")
	}
}

func TestValidate_RejectsUnknownToolset(t *testing.T) {
	t.Parallel()
	cfg := Default()
	cfg.Toolset = "mega"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown toolset")
	}
}

func TestLoad_YamlThenEnvOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shubh-mcp.yaml")
	body := strings.Join([]string{
		"owner_phone: \"911111111111\"",
		"toolset: lite",
		"openai:",
		"  model: gpt-4o",
	}, "\n")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("OWNER_PHONE", "912222222222")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("MCP_TRANSPORT", "")
	t.Setenv("PORT", "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.OwnerPhone != "912222222222" {
		t.Fatalf("env should win over yaml, got %q", cfg.OwnerPhone)
	}
	if cfg.Toolset != ToolsetLite {
		t.Fatalf("yaml toolset not applied, got %q", cfg.Toolset)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Fatalf("yaml openai model not applied, got %q", cfg.OpenAI.Model)
	}
	if cfg.OpenAI.APIKey != "sk-test" {
		t.Fatalf("env openai key not applied, got %q", cfg.OpenAI.APIKey)
	}
}

func TestLoad_PortEnvSetsListen(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("OWNER_PHONE", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("MCP_TRANSPORT", "http")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Listen != ":9090" {
		t.Fatalf("expected listen :9090, got %q", cfg.Listen)
	}
	if cfg.Transport != TransportHTTP {
		t.Fatalf("expected http transport, got %q", cfg.Transport)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("MCP_TRANSPORT", "")
	t.Setenv("PORT", "")
	t.Setenv("OWNER_PHONE", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ServerName != "shubh-mcp" {
		t.Fatalf("expected default server name, got %q", cfg.ServerName)
	}
}

func TestExpandPath(t *testing.T) {
	t.Parallel()
	got := ExpandPath("~/requests.db")
	if got == "~/requests.db" {
		t.Fatalf("expected home-expanded path, got %q", got)
	}
	if !strings.Contains(got, "requests.db") {
		t.Fatalf("expected expanded path to contain file name, got %q", got)
	}
}
