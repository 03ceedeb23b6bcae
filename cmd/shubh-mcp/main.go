package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/shubhlabs/shubh-mcp/internal/admin"
	"github.com/shubhlabs/shubh-mcp/internal/bootstrap"
	"github.com/shubhlabs/shubh-mcp/internal/config"
	"github.com/shubhlabs/shubh-mcp/internal/greet"
	"github.com/shubhlabs/shubh-mcp/internal/mcp"
	"github.com/shubhlabs/shubh-mcp/internal/notes"
	"github.com/shubhlabs/shubh-mcp/internal/remote"
	"github.com/shubhlabs/shubh-mcp/internal/store"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	sub := os.Args[1]
	switch sub {
	case "serve":
		if err := runServe(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
	case "bootstrap-clis":
		if err := runBootstrap(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
	case "admin":
		if err := runAdmin(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
	case "version", "--version", "-v":
		fmt.Println("shubh-mcp v" + mcp.ServerVersion)
	default:
		usage()
		os.Exit(2)
	}
}

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to config file (optional)")
	transport := fs.String("transport", "", "Transport override: stdio or http")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *transport != "" {
		cfg.Transport = *transport
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if err := cfg.EnsurePaths(); err != nil {
		return err
	}

	// Stdout is the wire in stdio mode, so logs always go to stderr.
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportCaller: false, Prefix: cfg.ServerName})
	setLogLevel(logger, cfg.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var sink mcp.RequestLogSink
	if cfg.RequestLogDB != "" {
		st, err := store.OpenSQLite(ctx, cfg.RequestLogDB, logger)
		if err != nil {
			return err
		}
		defer st.Close()
		sink = st
	}

	chain := buildChain(cfg, logger)
	svc := greet.NewService(chain, logger)
	server := mcp.NewServer(svc, notes.NewStore(), cfg, logger, sink)

	switch cfg.Transport {
	case config.TransportHTTP:
		logger.Info("starting MCP HTTP server", "listen", cfg.Listen, "path", cfg.MCPPath, "toolset", cfg.Toolset)
		if err := server.ServeHTTP(ctx, cfg.Listen); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	default:
		logger.Info("starting MCP stdio server", "toolset", cfg.Toolset)
		if err := server.Serve(ctx, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	}
	return nil
}

// buildChain assembles the remote generation chain from whichever
// backends have credentials. No credentials means an empty chain and
// pure template output.
func buildChain(cfg config.Config, logger *log.Logger) *remote.Chain {
	var backends []remote.Generator
	if cfg.OpenAI.APIKey != "" {
		oc, err := remote.NewOpenAIClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
		if err != nil {
			logger.Warn("openai backend disabled", "error", err)
		} else {
			backends = append(backends, oc)
		}
	}
	if cfg.HF.APIKey != "" {
		backends = append(backends, remote.NewHFClient(cfg.HF.APIKey, cfg.HF.Model, cfg.HF.BaseURL))
	}
	if len(backends) == 0 {
		logger.Info("no remote credentials configured; using template generation only")
	}
	return remote.NewChain(logger, backends...)
}

func runBootstrap(args []string) error {
	fs := flag.NewFlagSet("bootstrap-clis", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to config file passed to serve (optional)")
	scope := fs.String("scope", "user", "Config scope: user or project")
	serverName := fs.String("server-name", "shubh-mcp", "MCP server registration name")
	serveCmd := fs.String("serve-command", "shubh-mcp serve", "Command used by MCP clients to launch the stdio server")
	all := fs.Bool("all", false, "Configure all available CLIs")
	codex := fs.Bool("codex", false, "Configure Codex CLI")
	claude := fs.Bool("claude", false, "Configure Claude CLI")
	gemini := fs.Bool("gemini", false, "Configure Gemini CLI")
	dryRun := fs.Bool("dry-run", false, "Print intended commands without executing")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := log.New(os.Stderr)
	return bootstrap.Bootstrap(logger, bootstrap.Options{
		ConfigPath: *configPath,
		Scope:      *scope,
		ServerName: *serverName,
		ServeCmd:   *serveCmd,
		All:        *all,
		Codex:      *codex,
		Claude:     *claude,
		Gemini:     *gemini,
		DryRun:     *dryRun,
	}, nil)
}

func runAdmin(args []string) error {
	fs := flag.NewFlagSet("admin", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to config file (optional)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if cfg.RequestLogDB == "" {
		return errors.New("admin requires request_log_db to be configured")
	}
	if err := cfg.EnsurePaths(); err != nil {
		return err
	}

	logger := log.New(os.Stderr)
	st, err := store.OpenSQLite(context.Background(), cfg.RequestLogDB, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return admin.Run(ctx, st)
}

func setLogLevel(logger *log.Logger, level string) {
	switch level {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
}

func usage() {
	fmt.Print(`shubh-mcp

Usage:
  shubh-mcp serve [--config path] [--transport stdio|http]
  shubh-mcp bootstrap-clis [--config path] [--all|--codex --claude --gemini] [--scope user|project]
  shubh-mcp admin [--config path]
  shubh-mcp version
`)
}
