package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// readGridFile reads a sudoku grid from a file, or stdin when path is "-":
// nine lines of nine characters, digits 1-9 with '0' or '.' for empty cells
func readGridFile(path string) ([9][9]int, error) {
	var grid [9][9]int

	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return grid, fmt.Errorf("failed to read grid: %w", err)
	}

	var rows []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) != 9 {
		return grid, fmt.Errorf("grid must have 9 rows, got %d", len(rows))
	}

	for i, row := range rows {
		cells := []rune(row)
		if len(cells) != 9 {
			return grid, fmt.Errorf("row %d must have 9 cells, got %d", i+1, len(cells))
		}
		for j, r := range cells {
			switch {
			case r == '.' || r == '0':
			case r >= '1' && r <= '9':
				grid[i][j] = int(r - '0')
			default:
				return grid, fmt.Errorf("invalid cell %q at row %d col %d", r, i+1, j+1)
			}
		}
	}

	return grid, nil
}

func newSudokuCmd() *cobra.Command {
	var gridFile string

	cmd := &cobra.Command{
		Use:   "sudoku",
		Short: "Solve a sudoku grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := readGridFile(gridFile)
			if err != nil {
				return err
			}

			var result SudokuResult
			if err := client.Post("/api/v1/sudoku/solve", map[string]any{"grid": grid}, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&gridFile, "grid", "g", "-", "Grid file ('-' for stdin)")
	return cmd
}
