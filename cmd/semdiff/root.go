package main

import (
	"github.com/spf13/cobra"

	"semdiff/internal/config"
	"semdiff/internal/logging"
	"semdiff/internal/version"
)

var (
	// verboseFlag enables debug logging
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "semdiff",
	Short: "semdiff - semantic document comparison",
	Long: `semdiff compares two structured documents (JSON, YAML, or TOML) for
semantic equivalence and reports the first point of divergence as a
slash-delimited address. Comparison is order-insensitive for mappings,
order-sensitive for sequences (multiset semantics for sequences under the
keys "items" and "entries"), tolerant of trailing line whitespace in
strings, and supports numeric tolerance and subtree suppression.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.SetVersionTemplate("semdiff version {{.Version}}\n")
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false,
		"Enable debug logging")
}

// newLogger builds the command logger from config plus the --verbose flag.
func newLogger(cfg *config.Config) *logging.Logger {
	level := logging.LogLevel(cfg.Logging.Level)
	if verboseFlag {
		level = logging.DebugLevel
	}
	return logging.NewLogger(logging.Config{
		Format: logging.Format(cfg.Logging.Format),
		Level:  level,
	})
}
