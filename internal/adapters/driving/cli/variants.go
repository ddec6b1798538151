package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/giraffe-kg/giraffe-cli/internal/core/domain"
	"github.com/giraffe-kg/giraffe-cli/internal/logger"
)

var (
	variantsMondo         string
	variantsDisease       string
	variantsLimit         int
	variantsJSON          bool
	variantsIDsOnly       bool
	variantsPositionsOnly bool
	variantsFASTA         bool
	variantsPadding       int
	variantsOutput        string
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List sequence variants linked to a disease",
	Long: `Queries the knowledge graph for the sequence variants linked to a
disease, given either its ontology identifier or its name. With --fasta
the flanking reference sequence of each variant is fetched and written
as FASTA; variants without a genomic position are skipped.`,
	RunE: runVariants,
}

func init() {
	variantsCmd.Flags().StringVar(&variantsMondo, "mondo", "", "ontology identifier, e.g. MONDO:0011382")
	variantsCmd.Flags().StringVar(&variantsDisease, "disease", "", "disease name, resolved first")
	variantsCmd.Flags().IntVarP(&variantsLimit, "limit", "n", 0, "maximum number of variants (0 = all)")
	variantsCmd.Flags().BoolVar(&variantsJSON, "json", false, "output variants as JSON")
	variantsCmd.Flags().BoolVar(&variantsIDsOnly, "ids-only", false, "print only variant identifiers")
	variantsCmd.Flags().BoolVar(&variantsPositionsOnly, "positions-only", false, "print only positional identifiers")
	variantsCmd.Flags().BoolVar(&variantsFASTA, "fasta", false, "fetch and emit flanking sequence as FASTA")
	variantsCmd.Flags().IntVar(&variantsPadding, "padding", -1, "flanking margin in bases (default from settings)")
	variantsCmd.Flags().StringVarP(&variantsOutput, "output", "o", "", "write FASTA to file instead of stdout")
	rootCmd.AddCommand(variantsCmd)
}

func runVariants(cmd *cobra.Command, _ []string) error {
	if variantService == nil {
		return errors.New("variant service not configured")
	}
	if (variantsMondo == "") == (variantsDisease == "") {
		return fmt.Errorf("%w: exactly one of --mondo or --disease is required", domain.ErrInvalidInput)
	}

	var variants []domain.VariantRecord
	var err error
	if variantsMondo != "" {
		variants, err = variantService.VariantsForDisease(cmd.Context(), domain.CURIE(variantsMondo))
	} else {
		variants, err = variantService.VariantsForDiseaseName(cmd.Context(), variantsDisease)
	}
	if err != nil {
		return err
	}
	if variantsLimit > 0 && len(variants) > variantsLimit {
		variants = variants[:variantsLimit]
	}

	if variantsFASTA {
		return outputVariantsFASTA(cmd, variants)
	}

	switch {
	case variantsIDsOnly:
		for i := range variants {
			cmd.Println(variants[i].ID)
		}
		return nil
	case variantsPositionsOnly:
		for i := range variants {
			if pos, ok := variants[i].PositionalIdentifier(); ok {
				cmd.Println(pos)
			}
		}
		return nil
	case variantsJSON:
		return outputVariantsJSON(cmd, variants)
	default:
		return outputVariantsTable(cmd, variants)
	}
}

func outputVariantsJSON(cmd *cobra.Command, variants []domain.VariantRecord) error {
	data, err := json.MarshalIndent(variants, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling variants: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputVariantsTable(cmd *cobra.Command, variants []domain.VariantRecord) error {
	cmd.Printf("%d sequence variants:\n", len(variants))
	for i := range variants {
		line := string(variants[i].ID)
		if variants[i].Name != "" {
			line += "  " + variants[i].Name
		}
		if pos, ok := variants[i].PositionalIdentifier(); ok {
			line += "  " + pos
		}
		cmd.Printf("  %s\n", line)
	}
	return nil
}

// outputVariantsFASTA fetches the padded sequence of each variant and
// writes the records as FASTA. Variants without a position, and fetch
// failures, are logged and skipped so one variant never loses the rest.
func outputVariantsFASTA(cmd *cobra.Command, variants []domain.VariantRecord) error {
	out := cmd.OutOrStdout()
	if variantsOutput != "" {
		f, err := os.Create(variantsOutput)
		if err != nil {
			return fmt.Errorf("creating %s: %w", variantsOutput, err)
		}
		defer f.Close()
		out = f
	}

	padding := variantsPadding
	if padding < 0 {
		padding = configuredPadding
	}

	fetched := 0
	for i := range variants {
		rec, err := variantService.FetchSequence(cmd.Context(), variants[i], padding)
		if err != nil {
			logger.Warn("Skipping %s: %v", variants[i].ID, err)
			continue
		}
		if _, err := io.WriteString(out, rec.FASTA()); err != nil {
			return fmt.Errorf("writing FASTA: %w", err)
		}
		fetched++
	}

	if fetched == 0 {
		return fmt.Errorf("%w: no variant had a fetchable genomic position", domain.ErrNotFound)
	}
	if variantsOutput != "" {
		cmd.Printf("Wrote %d sequences to %s\n", fetched, variantsOutput)
	}
	return nil
}
