// Package cmd implements the agent-hooks command line interface. Each
// subcommand is one independent hook: it reads a payload or arguments,
// applies its checks, and reports the outcome through its exit code.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"agent-hooks/internal/infrastructure/config"
)

// cfg is the loaded configuration shared between commands.
var cfg *config.Config

// log reports diagnostics on stderr; hook stdout is reserved for output the
// agent runtime consumes.
var log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

// rootCmd represents the base command when called without any subcommands.
//
//nolint:gochecknoglobals // cobra command pattern requires global variable
var rootCmd = &cobra.Command{
	Use:   "agent-hooks",
	Short: "Guard hooks and utilities for AI coding-agent workflows",
	Long: `agent-hooks is a set of independent command hooks for AI coding-agent
workflows: vetting shell commands before execution, protecting sensitive
files, formatting edited files, scanning for leftover debug logging,
sending completion notifications, trashing files recoverably, and running
a session startup health check.

Hook subcommands read one JSON payload from standard input and signal
their decision through the exit code: 0 allows the action, 2 blocks it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.LoadConfig()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	// Handle graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootCmd.SetContext(ctx)
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("root", "r", ".", "Project root directory")
	rootCmd.PersistentFlags().String("log-dir", filepath.Join(".claude", "logs"), "Audit log directory, relative to the project root")

	bindFlag("root", "root")
	bindFlag("logDir", "log-dir")
}

// bindFlag wires a persistent flag into viper under the given key.
func bindFlag(key, flag string) {
	if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to bind %s flag: %v\n", flag, err)
	}
}
