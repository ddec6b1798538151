package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/giraffe-kg/giraffe-cli/internal/adapters/driven/report"
	"github.com/giraffe-kg/giraffe-cli/internal/core/domain"
	"github.com/giraffe-kg/giraffe-cli/internal/core/ports/driven"
	"github.com/giraffe-kg/giraffe-cli/internal/core/services"
)

var (
	batchInput    string
	batchDiseases string
	batchOutput   string
	batchFormat   string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Resolve a list of disease names",
	Long: `Resolves a list of disease names one query at a time and writes a
report with one entry per name, in input order. A name that fails to
resolve is recorded as not found and never aborts the run.

Input is either a file of newline-delimited names (blank lines and
lines starting with "#" are skipped) or a comma-separated list.`,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchInput, "input", "i", "", "file with one disease name per line")
	batchCmd.Flags().StringVarP(&batchDiseases, "diseases", "d", "", "comma-separated disease names")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "report destination file (required)")
	batchCmd.Flags().StringVarP(&batchFormat, "format", "f", "json", "report format: json, csv or sqlite")
	batchCmd.MarkFlagRequired("output") //nolint:errcheck
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	if batchService == nil {
		return errors.New("batch service not configured")
	}

	switch batchFormat {
	case "json", "csv", "sqlite":
	default:
		return fmt.Errorf("%w: unknown report format %q", domain.ErrInvalidInput, batchFormat)
	}

	names, err := batchNames()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return fmt.Errorf("%w: no disease names to process", domain.ErrInvalidInput)
	}

	rep := batchService.Process(cmd.Context(), names, domain.DefaultLookupOptions())

	if err := writeBatchReport(cmd, rep); err != nil {
		return err
	}

	for i := range rep.Items {
		mark := "✓"
		detail := ""
		if rep.Items[i].Status == domain.StatusFound {
			detail = rep.Items[i].Match.CURIE.String()
		} else {
			mark = "✗"
			detail = string(rep.Items[i].Status)
		}
		cmd.Printf("  %s %s  %s\n", mark, rep.Items[i].Name, detail)
	}
	cmd.Printf("Resolved %d/%d names, report written to %s\n", rep.Found(), len(rep.Items), batchOutput)

	return nil
}

// batchNames collects the input names from exactly one of the two
// input flags.
func batchNames() ([]string, error) {
	if (batchInput == "") == (batchDiseases == "") {
		return nil, fmt.Errorf("%w: exactly one of --input or --diseases is required", domain.ErrInvalidInput)
	}

	if batchDiseases != "" {
		var names []string
		for _, name := range strings.Split(batchDiseases, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
		return names, nil
	}

	f, err := os.Open(batchInput)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", batchInput, err)
	}
	defer f.Close()
	return services.ReadNames(f)
}

func writeBatchReport(cmd *cobra.Command, rep *domain.BatchReport) error {
	var writer driven.BatchReportWriter

	switch batchFormat {
	case "sqlite":
		writer = report.NewSQLiteWriter(batchOutput)
	default:
		f, err := os.Create(batchOutput)
		if err != nil {
			return fmt.Errorf("creating %s: %w", batchOutput, err)
		}
		defer f.Close()
		if batchFormat == "json" {
			writer = report.NewJSONWriter(f)
		} else {
			writer = report.NewCSVWriter(f)
		}
	}

	if err := writer.Write(cmd.Context(), rep); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
