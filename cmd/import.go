package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/vocabquiz/internal/wordbank"
)

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Copy a JSON word file into a SQLite or PostgreSQL word bank",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		to, _ := cmd.Flags().GetString("to")
		if to == "" {
			return errors.New("--to is required")
		}

		raw, err := wordbank.NewJSONFile(args[0]).Load(cmd.Context())
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

		dst, err := wordbank.Open(to)
		if err != nil {
			return fmt.Errorf("open destination: %w", err)
		}
		imp, ok := dst.(wordbank.Importer)
		if !ok {
			return fmt.Errorf("%s does not accept imports", dst)
		}
		if err := imp.Import(cmd.Context(), raw); err != nil {
			return fmt.Errorf("import into %s: %w", dst, err)
		}

		words := 0
		for _, c := range raw {
			words += len(c.Entries)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d words in %d categories into %s\n", words, len(raw), dst)
		return nil
	},
}

func init() {
	importCmd.Flags().String("to", "", "Destination DSN, e.g. sqlite:///path/words.db or postgres://...")
}
