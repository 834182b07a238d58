// Package cmd is the CLI entry point for the Solvr MCP server.
package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/solvr-dev/solvr-mcp/internal/config"
	"github.com/solvr-dev/solvr-mcp/internal/logger"
	"github.com/solvr-dev/solvr-mcp/internal/mcp"
	"github.com/solvr-dev/solvr-mcp/internal/solvr"
	"github.com/solvr-dev/solvr-mcp/internal/tools"
)

var (
	configFile  string
	envFile     string
	apiURL      string
	callTimeout time.Duration
	debugLog    = logger.New("cmd:root")
	version     = "dev" // Default version, overridden by SetVersion
)

var rootCmd = &cobra.Command{
	Use:     "solvr-mcp",
	Short:   "Solvr MCP tool server",
	Version: version,
	Long: `solvr-mcp exposes the Solvr knowledge base as Model Context Protocol tools
over stdin/stdout, for use by LLM clients. It advertises five tools (search,
get, post, answer, claim) and proxies each call to the Solvr REST API.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&configFile, "config", "c", config.DefaultPath(), "Path to config file")
	rootCmd.Flags().StringVar(&envFile, "env", "", "Path to .env file to load environment variables")
	rootCmd.Flags().StringVar(&apiURL, "api-url", "", "Solvr API base URL (overrides config)")
	rootCmd.Flags().DurationVar(&callTimeout, "call-timeout", 0, "Per-tool-call deadline (overrides config)")
}

func run(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if envFile != "" {
		debugLog.Printf("loading environment from %s", envFile)
		if err := loadEnvFile(envFile); err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if apiURL != "" {
		cfg.APIURL = strings.TrimRight(apiURL, "/")
	}
	if callTimeout > 0 {
		cfg.CallTimeout = callTimeout
	}

	debugLog.Printf("configured for %s with key %s", cfg.APIURL, config.MaskAPIKey(cfg.APIKey))

	// The protocol runs over stdin/stdout. An interactive terminal on stdin
	// almost always means the binary was started by hand instead of by an
	// MCP client.
	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "solvr-mcp speaks MCP over stdin/stdout; it is meant to be launched by an MCP client, not interactively.")
	}

	client := solvr.NewClient(cfg.APIKey, solvr.WithBaseURL(cfg.APIURL))
	registry := tools.NewRegistry(client)
	server := mcp.NewServer("solvr-mcp", version, registry, os.Stdin, os.Stdout, cfg.CallTimeout)

	if err := server.Run(ctx); err != nil && err != context.Canceled {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// loadEnvFile reads a .env file and sets environment variables
func loadEnvFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse KEY=VALUE
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Expand $VAR references in value
		value = os.ExpandEnv(value)

		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
		debugLog.Printf("loaded %s from %s", key, path)
	}

	return scanner.Err()
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
