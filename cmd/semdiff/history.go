package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"semdiff/internal/config"
	"semdiff/internal/envelope"
	"semdiff/internal/history"
)

var (
	historyLimit  int
	historyFormat string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent comparison runs",
	Long: `List recent comparison runs recorded in the history database,
newest first.

Examples:
  semdiff history
  semdiff history --limit 5 --format json`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of runs to list")
	historyCmd.Flags().StringVar(&historyFormat, "format", "", "Output format: json or human")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger := newLogger(cfg)

	format, err := parseFormat(historyFormat, cfg.Output.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := history.OpenStore(cfg.History.Dir, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = store.Close() }()

	runs, err := store.List(historyLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	switch format {
	case FormatJSON:
		text, err := formatJSON(envelope.New(runs))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(text)
	default:
		fmt.Print(formatHistoryHuman(runs))
	}
}

func formatHistoryHuman(runs []history.Run) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Comparison History (%d runs)\n", len(runs)))
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	if len(runs) == 0 {
		b.WriteString("No recorded runs.\n")
		return b.String()
	}

	for _, run := range runs {
		outcome := "EQUAL"
		if !run.Equal {
			outcome = "NOT_EQUAL at " + run.Pointer
		}
		id := run.ID
		if len(id) > 8 {
			id = id[:8]
		}
		b.WriteString(fmt.Sprintf("%s  %s  %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"), id, outcome))
		b.WriteString(fmt.Sprintf("  expected: %s\n", run.ExpectedPath))
		b.WriteString(fmt.Sprintf("  actual:   %s\n", run.ActualPath))
		if run.Tolerance != 0 {
			b.WriteString(fmt.Sprintf("  tolerance: %v\n", run.Tolerance))
		}
		if len(run.Ignore) > 0 {
			b.WriteString(fmt.Sprintf("  ignored: %s\n", strings.Join(run.Ignore, ", ")))
		}
		b.WriteString("\n")
	}

	return b.String()
}
