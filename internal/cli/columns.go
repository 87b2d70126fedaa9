package cli

import (
	"github.com/spf13/cobra"
)

func newColumnsCmd() *cobra.Command {
	var core bool

	cmd := &cobra.Command{
		Use:   "columns COL1 COL2 ...",
		Short: "Find words formed by picking one letter from each column in order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/columns"
			if core {
				path = "/api/v1/columns/core"
			}

			var result WordListResult
			if err := client.Post(path, map[string]any{"columns": args}, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&core, "core", false, "Select a small word set covering every column letter")
	return cmd
}
