package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/broadside/internal/factory"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	envErr := LoadEnvFile(defaultEnvFile())
	cfg := DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "broadside",
		Short: "Battleship opponent engine",
		Long: `broadside drives the computer opponent of a 10x10 Battleship game.

It can lay out a fleet for any difficulty and pit two computer opponents
against each other to compare their strategies.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil {
				return fmt.Errorf("loading env file: %w", envErr)
			}
			if cfg.Output != "text" && cfg.Output != "json" {
				return fmt.Errorf("invalid output format %q: must be text or json", cfg.Output)
			}
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json (env: BROADSIDE_OUTPUT)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: text, json (env: BROADSIDE_LOG_FORMAT)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose logging (env: BROADSIDE_VERBOSE)")
	rootCmd.PersistentFlags().Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed for reproducible runs, 0 for a random seed (env: BROADSIDE_SEED)")

	// Add subcommands
	rootCmd.AddCommand(newPlaceCmd(cfg))
	rootCmd.AddCommand(newSimulateCmd(cfg))

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the structured logger for a command; logs go to stderr
// so they never mix with command output
func newLogger(cmd *cobra.Command, cfg *Config) *slog.Logger {
	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), opts))
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
}

// newApp wires the application for a command
func newApp(cmd *cobra.Command, cfg *Config, fc factory.Config) (*factory.App, error) {
	fc.Seed = cfg.Seed
	fc.Logger = newLogger(cmd, cfg)
	return factory.New(fc)
}
