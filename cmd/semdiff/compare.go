package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"semdiff/internal/compare"
	"semdiff/internal/config"
	"semdiff/internal/decode"
	"semdiff/internal/envelope"
	"semdiff/internal/fingerprint"
	"semdiff/internal/history"
	"semdiff/internal/logging"
	"semdiff/internal/output"
	"semdiff/internal/pointer"
)

var (
	compareExpectedPath string
	compareActualPath   string
	compareTolerance    float64
	compareIgnore       []string
	compareRulesPath    string
	compareFormat       string
	compareNoHistory    bool
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare two documents and report the first divergence",
	Long: `Compare two documents for semantic equivalence.

Prints EQUAL and exits 0 when the documents are equivalent. Otherwise
prints NOT_EQUAL, the address of the first divergence, and the expected
and actual values at that address, and exits 2. I/O, decode, and usage
failures exit 1.

Examples:
  # Exact comparison
  semdiff compare --expected want.json --actual got.json

  # Numeric tolerance and suppressed subtrees
  semdiff compare --expected want.json --actual got.json \
    --tolerance 0.001 --ignore /meta/generated_at --ignore /meta/host

  # Rules file plus machine-readable output
  semdiff compare --expected want.yaml --actual got.yaml \
    --rules rules.toml --format json`,
	Run: runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&compareExpectedPath, "expected", "", "Path to the expected document (required)")
	compareCmd.Flags().StringVar(&compareActualPath, "actual", "", "Path to the actual document (required)")
	compareCmd.Flags().Float64Var(&compareTolerance, "tolerance", 0, "Maximum absolute difference for numeric equality")
	compareCmd.Flags().StringArrayVar(&compareIgnore, "ignore", nil, "Address to suppress, repeatable (e.g. /meta/generated_at)")
	compareCmd.Flags().StringVar(&compareRulesPath, "rules", "", "Path to a TOML rules file")
	compareCmd.Flags().StringVar(&compareFormat, "format", "", "Output format: json or human")
	compareCmd.Flags().BoolVar(&compareNoHistory, "no-history", false, "Skip recording this run in the history database")
	_ = compareCmd.MarkFlagRequired("expected")
	_ = compareCmd.MarkFlagRequired("actual")

	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) {
	start := time.Now()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger := newLogger(cfg)

	format, err := parseFormat(compareFormat, cfg.Output.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	tolerance, ignore, err := resolveRules(cmd, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	expected, err := decode.File(compareExpectedPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	actual, err := decode.File(compareActualPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := compare.Options{
		Tolerance: tolerance,
		Suppress:  pointer.NewSet(ignore),
	}

	logger.Debug("Comparing documents", map[string]interface{}{
		"expected":  compareExpectedPath,
		"actual":    compareActualPath,
		"tolerance": tolerance,
		"ignored":   len(ignore),
	})

	result := compare.Run(expected, actual, opts)

	expectedDigest := fingerprint.Document(output.Serialize(expected))
	actualDigest := fingerprint.Document(output.Serialize(actual))
	runDigest := fingerprint.Run(expectedDigest, actualDigest, tolerance, ignore)

	run, historyWarning := recordRun(cfg, logger, history.Run{
		ExpectedPath:   compareExpectedPath,
		ActualPath:     compareActualPath,
		ExpectedDigest: expectedDigest,
		ActualDigest:   actualDigest,
		Digest:         runDigest,
		Tolerance:      tolerance,
		Ignore:         ignore,
		Equal:          result.Equal,
		Pointer:        divergencePointer(result),
	})

	switch format {
	case FormatJSON:
		resp := envelope.New(result).WithMeta(&envelope.Meta{
			DurationMs:     time.Since(start).Milliseconds(),
			Tolerance:      tolerance,
			Ignored:        ignore,
			ExpectedDigest: expectedDigest,
			ActualDigest:   actualDigest,
			RunDigest:      runDigest,
			RunID:          run.ID,
		})
		if historyWarning != "" {
			resp.AddWarning("HISTORY_UNAVAILABLE", historyWarning)
		}
		text, err := formatJSON(resp)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(text)
	default:
		fmt.Print(result.RenderText())
	}

	if !result.Equal {
		os.Exit(2)
	}
}

// resolveRules merges tolerance and ignore addresses from the three layers:
// flags beat the rules file, the rules file beats the global config.
func resolveRules(cmd *cobra.Command, cfg *config.Config) (float64, []string, error) {
	tolerance := cfg.Tolerance
	ignore := append([]string{}, cfg.Ignore...)

	if compareRulesPath != "" {
		rules, err := config.LoadRules(compareRulesPath)
		if err != nil {
			return 0, nil, err
		}
		if rules.Tolerance != nil {
			tolerance = *rules.Tolerance
		}
		ignore = append(ignore, rules.Ignore...)
	}

	if cmd.Flags().Changed("tolerance") {
		tolerance = compareTolerance
	}
	ignore = append(ignore, compareIgnore...)

	if tolerance < 0 {
		return 0, nil, fmt.Errorf("tolerance must be non-negative, got %v", tolerance)
	}

	return tolerance, ignore, nil
}

// recordRun persists the run when history is enabled. Failures downgrade to
// a warning; they never change the comparison outcome.
func recordRun(cfg *config.Config, logger *logging.Logger, run history.Run) (history.Run, string) {
	if compareNoHistory || !cfg.History.Enabled {
		return run, ""
	}

	store, err := history.OpenStore(cfg.History.Dir, logger)
	if err != nil {
		logger.Warn("History unavailable", map[string]interface{}{"error": err.Error()})
		return run, err.Error()
	}
	defer func() { _ = store.Close() }()

	stored, err := store.Record(run)
	if err != nil {
		logger.Warn("History record failed", map[string]interface{}{"error": err.Error()})
		return run, err.Error()
	}
	if err := store.Prune(cfg.History.MaxRuns); err != nil {
		logger.Warn("History prune failed", map[string]interface{}{"error": err.Error()})
	}

	return stored, ""
}

func divergencePointer(result compare.Result) string {
	if result.Divergence == nil {
		return ""
	}
	return result.Divergence.Pointer
}
