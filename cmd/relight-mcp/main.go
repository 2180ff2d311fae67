package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ironsheep/relight-mcp/internal/relight"
	"github.com/ironsheep/relight-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("relight-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printUsage()
			return
		}
	}

	cfg, err := server.LoadConfig(os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(2)
	}

	// stdout is for MCP protocol
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	relight.SetLogger(logger)

	if len(os.Args) > 1 && os.Args[1] == "render" {
		if err := runRender(os.Args[2:], cfg, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "render: %v\n", err)
			os.Exit(1)
		}
		return
	}

	logger.Debug("starting relight-mcp", "version", Version, "built", BuildTime, "commit", GitCommit)

	srv := server.New(cfg, server.WithVersion(Version), server.WithLogger(logger))
	if err := srv.Run(); err != nil {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("relight-mcp - MCP server for re-tinting multi-layer renders")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  relight-mcp [options]")
	fmt.Println("  relight-mcp render -dir DIR -out FILE [-tints \"h,s,v;h,s,v\"] [-gamma G] [-level L]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  RELIGHT_MCP_LOG_LEVEL=debug  Log level (debug, info, warn, error)")
	fmt.Println("  RELIGHT_MCP_GAMMA=2.2        Default output gamma")
	fmt.Println("  RELIGHT_MCP_LEVEL=1.0        Default exposure level")
	fmt.Println()
	fmt.Println("Without a subcommand the server communicates via MCP protocol over stdin/stdout.")
}
