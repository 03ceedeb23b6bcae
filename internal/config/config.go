package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Transport modes for serving MCP.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Toolset profiles. The lite profile exposes a reduced tool set for
// deployments that only need wishes and shayari.
const (
	ToolsetFull = "full"
	ToolsetLite = "lite"
)

// DefaultOwnerPhone is returned by the validate tool when OWNER_PHONE is unset.
const DefaultOwnerPhone = "919999999999"

// OpenAIConfig configures the chat-completions remote backend.
type OpenAIConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

// HFConfig configures the Hugging Face text-generation remote backend.
type HFConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

// Config contains runtime configuration for shubh-mcp.
type Config struct {
	ServerName   string       `yaml:"server_name"`
	LogLevel     string       `yaml:"log_level"`
	Transport    string       `yaml:"transport"`
	Listen       string       `yaml:"listen"`
	MCPPath      string       `yaml:"mcp_path"`
	OwnerPhone   string       `yaml:"owner_phone"`
	Toolset      string       `yaml:"toolset"`
	RequestLogDB string       `yaml:"request_log_db"`
	OpenAI       OpenAIConfig `yaml:"openai"`
	HF           HFConfig     `yaml:"hf"`
}

// Default returns a Config populated with safe defaults.
func Default() Config {
	return Config{
		ServerName: "shubh-mcp",
		LogLevel:   "info",
		Transport:  TransportStdio,
		Listen:     ":8080",
		MCPPath:    "/mcp",
		OwnerPhone: DefaultOwnerPhone,
		Toolset:    ToolsetFull,
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		HF: HFConfig{
			Model:   "mistralai/Mistral-7B-Instruct-v0.2",
			BaseURL: "https://api-inference.huggingface.co",
		},
	}
}

// Load builds config with precedence: defaults -> yaml file -> environment.
// Dotenv files are loaded first so a local .env can stand in for real env vars;
// explicit environment always wins over .env.local which wins over .env.
func Load(path string) (Config, error) {
	cfg := Default()

	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return cfg, fmt.Errorf("read config: %w", err)
			}
		} else if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config yaml: %w", err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("OPENAI_API_KEY")); v != "" {
		cfg.OpenAI.APIKey = v
	}
	if v := strings.TrimSpace(os.Getenv("OPENAI_MODEL")); v != "" {
		cfg.OpenAI.Model = v
	}
	if v := strings.TrimSpace(os.Getenv("HF_TOKEN")); v != "" {
		cfg.HF.APIKey = v
	}
	if v := strings.TrimSpace(os.Getenv("HF_MODEL")); v != "" {
		cfg.HF.Model = v
	}
	if v := strings.TrimSpace(os.Getenv("OWNER_PHONE")); v != "" {
		cfg.OwnerPhone = v
	}
	if v := strings.TrimSpace(os.Getenv("MCP_TRANSPORT")); v != "" {
		cfg.Transport = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		if _, err := strconv.Atoi(v); err == nil {
			cfg.Listen = ":" + v
		}
	}
}

// Validate checks configuration sanity.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ServerName) == "" {
		return errors.New("server_name must not be empty")
	}
	switch c.Transport {
	case TransportStdio, TransportHTTP:
	default:
		return fmt.Errorf("invalid transport %q (expected stdio or http)", c.Transport)
	}
	switch c.Toolset {
	case ToolsetFull, ToolsetLite:
	default:
		return fmt.Errorf("invalid toolset %q (expected full or lite)", c.Toolset)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	if c.Transport == TransportHTTP {
		if strings.TrimSpace(c.Listen) == "" {
			return errors.New("listen must not be empty for http transport")
		}
		if !strings.HasPrefix(c.MCPPath, "/") {
			return fmt.Errorf("mcp_path %q must start with /", c.MCPPath)
		}
	}
	if strings.TrimSpace(c.OwnerPhone) == "" {
		return errors.New("owner_phone must not be empty")
	}
	return nil
}

// EnsurePaths expands and creates parent directories for config-managed paths.
func (c *Config) EnsurePaths() error {
	if c.RequestLogDB == "" {
		return nil
	}
	c.RequestLogDB = ExpandPath(c.RequestLogDB)
	parent := filepath.Dir(c.RequestLogDB)
	if parent == "." {
		return nil
	}
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return fmt.Errorf("create request log dir: %w", err)
	}
	return nil
}

// ExpandPath expands "~/" to the current user's home directory.
func ExpandPath(p string) string {
	if p == "" {
		return p
	}
	if p == "~" {
		return userHomeDir()
	}
	if strings.HasPrefix(p, "~/") {
		return filepath.Join(userHomeDir(), p[2:])
	}
	return p
}

func userHomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
