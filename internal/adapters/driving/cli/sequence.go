package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	sequencePadding int
	sequenceJSON    bool
)

var sequenceCmd = &cobra.Command{
	Use:   "sequence [positional identifier]",
	Short: "Fetch reference sequence around a genomic position",
	Long: `Fetches padded reference sequence around a positional variant
identifier and prints it as FASTA.

The identifier encodes assembly, chromosome, position and optionally
the allele change, pipe-separated:

  ROBO_VARIANT:HG38|11|5008472|5008473|C|T`,
	Args: cobra.ExactArgs(1),
	RunE: runSequence,
}

func init() {
	sequenceCmd.Flags().IntVar(&sequencePadding, "padding", -1, "flanking margin in bases (default from settings)")
	sequenceCmd.Flags().BoolVar(&sequenceJSON, "json", false, "output the record as JSON")
	rootCmd.AddCommand(sequenceCmd)
}

func runSequence(cmd *cobra.Command, args []string) error {
	if variantService == nil {
		return errors.New("variant service not configured")
	}

	padding := sequencePadding
	if padding < 0 {
		padding = configuredPadding
	}

	rec, err := variantService.FetchRegion(cmd.Context(), args[0], padding)
	if err != nil {
		return err
	}

	if sequenceJSON {
		data, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling record: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Print(rec.FASTA())
	return nil
}
