package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/Flyrell/hydromind/internal/ledger"
	"github.com/Flyrell/hydromind/internal/report"
	"github.com/spf13/cobra"
)

var exportCmd = LeafCommand{
	Use:     "export",
	Short:   "Export a monthly hydration report",
	Example: "  hydromind export --month 2026-03\n  hydromind export --format yaml --output march.yaml",
	Args:    cobra.NoArgs,
	StrFlags: []StringFlag{
		{Name: "month", Usage: "month to export (YYYY-MM, default: current month)"},
		{Name: "format", Shorthand: "f", Usage: "pdf, json or yaml", Default: "pdf"},
		{Name: "output", Shorthand: "o", Usage: "output file (default: hydromind-YYYY-MM.pdf, stdout for json/yaml)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		monthFlag, _ := cmd.Flags().GetString("month")
		formatFlag, _ := cmd.Flags().GetString("format")
		outputFlag, _ := cmd.Flags().GetString("output")
		return withLedger(cmd, time.Now, func(l *ledger.Ledger) error {
			return runExport(cmd, l, monthFlag, formatFlag, outputFlag, time.Now)
		})
	},
}.Build()

func runExport(cmd *cobra.Command, l *ledger.Ledger, monthFlag, formatFlag, outputFlag string, nowFn func() time.Time) error {
	now := nowFn()
	year, month, err := report.ParseMonth(monthFlag, now)
	if err != nil {
		return err
	}

	data := report.BuildMonth(l.Entries(), year, month, now.Location(), l.DailyGoal(), l.Unit())
	w := cmd.OutOrStdout()

	format := strings.ToLower(strings.TrimSpace(formatFlag))
	switch format {
	case "pdf":
		if len(data.Days) == 0 {
			_, _ = fmt.Fprintf(w, "No drinks logged in %s.\n", data.Title())
			return nil
		}
		outputPath := outputFlag
		if outputPath == "" {
			outputPath = fmt.Sprintf("hydromind-%s.pdf", data.Period)
		}
		if err := report.RenderPDF(data, outputPath); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(w, "Exported report to %s\n", Primary(outputPath))
		return nil

	case "json", "yaml", "yml":
		encode := report.WriteJSON
		if format != "json" {
			encode = report.WriteYAML
		}
		if outputFlag == "" {
			return encode(w, data)
		}
		return writeFile(outputFlag, func(f io.Writer) error { return encode(f, data) })
	}

	return fmt.Errorf("unsupported export format %q (supported: pdf, json, yaml)", formatFlag)
}

func writeFile(path string, fn func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
