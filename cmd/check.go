package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/vocabquiz/internal/wordbank"
)

var checkCmd = &cobra.Command{
	Use:   "check [file.json]",
	Short: "Validate a word bank and report what would be loaded",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if len(args) == 1 {
			raw, err := wordbank.NewJSONFile(args[0]).Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("check %s: %w", args[0], err)
			}
			entries, skipped := 0, 0
			for _, c := range raw {
				for _, e := range c.Entries {
					entries++
					if e.Definition == "" || e.Answer == "" {
						skipped++
					}
				}
			}
			fmt.Fprintf(out, "%s: %d categories, %d entries, %d skipped\n", args[0], len(raw), entries, skipped)
			return nil
		}

		pool, cfg, err := loadPool(cmd)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: %d questions in %d categories\n", cfg.Source, pool.Len(), len(pool.Categories()))
		return nil
	},
}
