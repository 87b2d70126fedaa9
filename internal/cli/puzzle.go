package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPuzzleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "puzzle",
		Short: "Manage saved puzzles",
	}

	cmd.AddCommand(newPuzzleCreateCmd())
	cmd.AddCommand(newPuzzleGetCmd())
	cmd.AddCommand(newPuzzleListCmd())
	cmd.AddCommand(newPuzzleDeleteCmd())
	cmd.AddCommand(newPuzzleSolveCmd())
	cmd.AddCommand(newPuzzleResultsCmd())

	return cmd
}

func newPuzzleCreateCmd() *cobra.Command {
	var kind string
	var boardFile string
	var gridFile string
	var columns []string

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Save a puzzle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{
				"name": args[0],
				"kind": kind,
			}

			switch kind {
			case "tower":
				board, err := readBoardFile(boardFile)
				if err != nil {
					return err
				}
				body["board"] = board
			case "sudoku":
				grid, err := readGridFile(gridFile)
				if err != nil {
					return err
				}
				body["grid"] = grid
			case "columns":
				if len(columns) == 0 {
					return fmt.Errorf("--columns is required for columns puzzles")
				}
				body["columns"] = columns
			default:
				return fmt.Errorf("unknown kind %q: must be tower, sudoku, or columns", kind)
			}

			var result PuzzleInfo
			if err := client.Post("/api/v1/puzzles", body, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "tower", "Puzzle kind: tower, sudoku, columns")
	cmd.Flags().StringVarP(&boardFile, "board", "b", "-", "Board file for tower puzzles ('-' for stdin)")
	cmd.Flags().StringVarP(&gridFile, "grid", "g", "-", "Grid file for sudoku puzzles ('-' for stdin)")
	cmd.Flags().StringSliceVar(&columns, "columns", nil, "Columns for columns puzzles")
	return cmd
}

func newPuzzleGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show a saved puzzle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result PuzzleInfo
			if err := client.Get("/api/v1/puzzles/"+args[0], &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newPuzzleListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved puzzles",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []PuzzleInfo
			if err := client.Get("/api/v1/puzzles", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newPuzzleDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a saved puzzle and its results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/puzzles/" + args[0]); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("Puzzle deleted")
			return nil
		},
	}
}

func newPuzzleSolveCmd() *cobra.Command {
	var strategy string

	cmd := &cobra.Command{
		Use:   "solve ID",
		Short: "Solve a saved tower puzzle and record the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{}
			if strategy != "" {
				body["strategy"] = strategy
			}

			var result SolveRecord
			if err := client.Post("/api/v1/puzzles/"+args[0]+"/solve", body, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&strategy, "strategy", "s", "", "Selection strategy (see 'puzzles strategies')")
	return cmd
}

func newPuzzleResultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "results ID",
		Short: "List recorded solve results for a puzzle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []SolveRecord
			if err := client.Get("/api/v1/puzzles/"+args[0]+"/results", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}
