package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/nmtri/rolecoach/internal/config"
	"github.com/nmtri/rolecoach/internal/mcp"
	"github.com/nmtri/rolecoach/internal/store"
)

// Version is set via -ldflags at build time.
var Version = "dev"

// cliCommands contains known CLI subcommands.
var cliCommands = map[string]bool{
	"advisor": true, "persona": true, "prompt": true, "key": true,
	"session": true, "review": true, "flows": true, "web": true,
	"help": true,
}

// isCLIMode determines if we should run CLI vs MCP server.
func isCLIMode() bool {
	if len(os.Args) < 2 {
		return false // No args → MCP server
	}
	arg := os.Args[1]
	// Known subcommand → CLI
	if cliCommands[arg] {
		return true
	}
	// --help or --version → CLI
	if arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" {
		return true
	}
	return false // Default → MCP server
}

// isHelpOrVersion returns true if the user is requesting help or version info.
func isHelpOrVersion() bool {
	if len(os.Args) < 2 {
		return false
	}
	arg := os.Args[1]
	return arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" || arg == "help"
}

// isTerminal returns true if stdin is a terminal (not piped).
func isTerminal() bool {
	stat, _ := os.Stdin.Stat()
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// printBanner displays a friendly banner when run interactively without args.
func printBanner() {
	fmt.Println(`
   ___  ___  _    ___ ___ ___   _   ___ _  _
  | _ \/ _ \| |  | __/ __/ _ \ /_\ / __| || |
  |   / (_) | |__| _| (_| (_) / _ \ (__| __ |
  |_|_\\___/|____|___\___\___/_/ \_\___|_||_|

  Insurance sales roleplay coach

  Usage: rolecoach <command> [options]
         rolecoach --help

  MCP server mode requires piped input.`)
}

func main() {
	// No args + interactive terminal → show banner and exit
	if len(os.Args) < 2 && isTerminal() {
		printBanner()
		return
	}

	// Handle --help/--version before store init (no store needed)
	if isHelpOrVersion() {
		app := newCLIApp(nil, nil, "")
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	baseDir, err := config.BaseDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: could not determine home directory: %v\n", err)
		os.Exit(1)
	}

	db, err := store.Init(baseDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to initialize database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	cfg, err := config.Load(baseDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to load config: %v\n", err)
		os.Exit(1)
	}
	store.ConfigurePool(db, cfg)
	st := store.New(db)

	// CLI mode: known subcommand
	if isCLIMode() {
		app := newCLIApp(st, cfg, baseDir)
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Unknown argument + terminal → show error (don't start MCP server)
	if len(os.Args) >= 2 && isTerminal() {
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "Run 'rolecoach --help' for usage.\n")
		os.Exit(1)
	}

	// MCP server mode (default)
	if unknown := mcp.ValidateDisabledTools(cfg.DisabledTools); len(unknown) > 0 {
		fmt.Fprintf(os.Stderr, "warning: unknown disabled tools: %s\n", strings.Join(unknown, ", "))
	}
	if err := mcp.Run(st, cfg, Version); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
