package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/vocabquiz/internal/quiz"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories and their question counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		pool, _, err := loadPool(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-24s %d\n", quiz.AllCategoriesLabel, pool.Len())
		for _, c := range pool.Categories() {
			fmt.Fprintf(out, "%-24s %d\n", c, pool.Count(c))
		}
		return nil
	},
}
