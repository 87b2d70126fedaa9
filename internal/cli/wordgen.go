package cli

import (
	"github.com/spf13/cobra"
)

func newWordgenCmd() *cobra.Command {
	var doubles bool

	cmd := &cobra.Command{
		Use:   "wordgen LETTERS",
		Short: "Find words spellable as an ordered subsequence of LETTERS",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{
				"letters": args[0],
				"doubles": doubles,
			}

			var result WordListResult
			if err := client.Post("/api/v1/wordgen", body, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&doubles, "doubles", "d", false, "Allow each letter to spell two consecutive identical letters")
	return cmd
}
