package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/vocabquiz/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "vocabquiz",
	Short: "Terminal vocabulary quiz",
	Long:  "vocabquiz serves definitions and picture blanks from a word bank and checks the words you type.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("source", "", "Word bank: JSON file, sqlite:///path or postgres:// DSN (overrides VOCABQUIZ_SOURCE)")
	pf.String("catalog", "", "YAML catalog of picture questions (overrides VOCABQUIZ_CATALOG)")
	pf.String("log-file", "", "Log file path (overrides VOCABQUIZ_LOG_FILE)")
	pf.String("log-level", "", "Log level: debug, info, warn, error (overrides VOCABQUIZ_LOG_LEVEL)")
	rootCmd.Flags().Uint64("seed", 0, "Shuffle seed for a reproducible question order (0 = random)")

	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves configuration with flags set on cmd taking priority
// over the environment, .env, config.yaml and defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	fs := cmd.Flags()
	return config.Load(
		config.Bind(fs, "source", "source"),
		config.Bind(fs, "catalog", "catalog"),
		config.Bind(fs, "seed", "seed"),
		config.Bind(fs, "log.file", "log-file"),
		config.Bind(fs, "log.level", "log-level"),
	)
}
