package cli

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

// LexiconResult is the lexicon command's JSON output.
type LexiconResult struct {
	Version string         `json:"version"`
	Total   int            `json:"total"`
	Tables  map[string]int `json:"tables"`
}

// NewLexiconCommand creates the lexicon command.
func NewLexiconCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lexicon",
		Short: "Show the lexicon version and table sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := loadPipeline(rootOpts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			result := LexiconResult{Version: p.lex.Version, Total: p.lex.Total(), Tables: p.lex.Counts()}
			out := cmd.OutOrStdout()

			if rootOpts.Format == "json" {
				return json.NewEncoder(out).Encode(result)
			}

			fmt.Fprintf(out, "version: %s\nterms: %d\n", result.Version, result.Total)

			names := make([]string, 0, len(result.Tables))
			for name := range result.Tables {
				names = append(names, name)
			}

			sort.Strings(names)

			for _, name := range names {
				fmt.Fprintf(out, "  %-20s %d\n", name, result.Tables[name])
			}

			return nil
		},
	}
}
