package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "puzzles",
		Short: "CLI tool for the puzzle solver API",
		Long: `puzzles is a CLI tool for interacting with the puzzle solver JSON API.

It submits tower boards, sudoku grids, letter sequences, and letter columns to
the server's solvers, and manages saved puzzles and their recorded results.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			client = NewClient(cfg.ServerURL)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: PUZZLES_SERVER)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newSolveCmd())
	rootCmd.AddCommand(newWordsCmd())
	rootCmd.AddCommand(newStrategiesCmd())
	rootCmd.AddCommand(newSudokuCmd())
	rootCmd.AddCommand(newWordgenCmd())
	rootCmd.AddCommand(newColumnsCmd())
	rootCmd.AddCommand(newPuzzleCmd())
	rootCmd.AddCommand(newHealthCmd())
	rootCmd.AddCommand(newLexiconCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
