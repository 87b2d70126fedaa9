package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// boardPayload is the request representation of a board
type boardPayload struct {
	Rows  []string `json:"rows"`
	Kinds []string `json:"kinds,omitempty"`
}

// readBoardFile reads a board from a file, or stdin when path is "-".
// Letter rows come first; an optional "---" line separates them from kind
// rows ('.', 'n', 'r', 's').
func readBoardFile(path string) (boardPayload, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return boardPayload{}, fmt.Errorf("failed to read board: %w", err)
	}

	var payload boardPayload
	inKinds := false
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "---" {
			inKinds = true
			continue
		}
		if line == "" {
			continue
		}
		if inKinds {
			payload.Kinds = append(payload.Kinds, line)
		} else {
			payload.Rows = append(payload.Rows, line)
		}
	}

	if len(payload.Rows) == 0 {
		return boardPayload{}, fmt.Errorf("board file %s contains no rows", path)
	}
	return payload, nil
}

func newSolveCmd() *cobra.Command {
	var boardFile string
	var strategy string

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a tower board",
		Long: `Solve a tower board: repeatedly finds words, plays one per the chosen
strategy, and applies clears and gravity until the board is exhausted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := readBoardFile(boardFile)
			if err != nil {
				return err
			}

			body := map[string]any{"board": board}
			if strategy != "" {
				body["strategy"] = strategy
			}

			var result SolveResult
			if err := client.Post("/api/v1/spelltower/solve", body, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&boardFile, "board", "b", "-", "Board file ('-' for stdin)")
	cmd.Flags().StringVarP(&strategy, "strategy", "s", "", "Selection strategy (see 'puzzles strategies')")
	return cmd
}

func newWordsCmd() *cobra.Command {
	var boardFile string
	var limit int

	cmd := &cobra.Command{
		Use:   "words",
		Short: "List every word findable on a tower board",
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := readBoardFile(boardFile)
			if err != nil {
				return err
			}

			var result WordsResult
			if err := client.Post("/api/v1/spelltower/words", map[string]any{"board": board}, &result); err != nil {
				return err
			}

			if limit > 0 && len(result.Words) > limit {
				result.Words = result.Words[:limit]
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&boardFile, "board", "b", "-", "Board file ('-' for stdin)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show only the top N words")
	return cmd
}

func newStrategiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List available solver strategies",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result StrategiesResult
			if err := client.Get("/api/v1/spelltower/strategies", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}
