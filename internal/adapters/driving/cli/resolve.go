package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/giraffe-kg/giraffe-cli/internal/core/domain"
)

var (
	resolveLimit          int
	resolveOffset         int
	resolveNoAutocomplete bool
	resolveHighlighting   bool
	resolveJSON           bool
	resolveCURIEOnly      bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [disease name]",
	Short: "Resolve a disease name to its ontology identifier",
	Long: `Resolves a free-text disease name against the name-resolution
service and prints the best match in the MONDO namespace: the candidate
with the highest score. An exact score tie keeps the first candidate.`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().IntVarP(&resolveLimit, "limit", "n", 10, "maximum number of candidates to consider")
	resolveCmd.Flags().IntVar(&resolveOffset, "offset", 0, "candidate offset for paging")
	resolveCmd.Flags().BoolVar(&resolveNoAutocomplete, "no-autocomplete", false, "disable partial-name matching")
	resolveCmd.Flags().BoolVar(&resolveHighlighting, "highlighting", false, "request match highlighting")
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "output the match as JSON")
	resolveCmd.Flags().BoolVar(&resolveCURIEOnly, "curie-only", false, "print only the identifier")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	if resolverService == nil {
		return errors.New("resolver service not configured")
	}

	opts := domain.LookupOptions{
		Limit:        resolveLimit,
		Offset:       resolveOffset,
		Autocomplete: !resolveNoAutocomplete,
		Highlighting: resolveHighlighting,
	}

	match, err := resolverService.Resolve(cmd.Context(), args[0], opts)
	if err != nil {
		return err
	}

	switch {
	case resolveCURIEOnly:
		cmd.Println(match.CURIE)
		return nil
	case resolveJSON:
		return outputMatchJSON(cmd, match)
	default:
		return outputMatchHuman(cmd, match)
	}
}

func outputMatchJSON(cmd *cobra.Command, match *domain.OntologyMatch) error {
	data, err := json.MarshalIndent(match, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling match: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputMatchHuman(cmd *cobra.Command, match *domain.OntologyMatch) error {
	cmd.Printf("%s  %s (score %.2f)\n", match.CURIE, match.Label, match.Score)
	if len(match.Synonyms) > 0 {
		cmd.Printf("  Synonyms: %s\n", strings.Join(match.Synonyms, "; "))
	}
	if len(match.Types) > 0 {
		cmd.Printf("  Types: %s\n", strings.Join(match.Types, "; "))
	}
	return nil
}
