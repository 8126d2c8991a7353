package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newTagCommand creates the "tag" subcommand, which processes a note XML
// file into taxonomy-tagged output.
func newTagCommand() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "tag <input.xml>",
		Short: "Tag a disclosure note XML file",
		Long:  "Reads a note XML file, extracts financial entities from every paragraph,\nresolves overlaps, and writes the taxonomy-tagged XML.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			inputPath := args[0]
			if outputPath == "" {
				outputPath = inputPath + ".tagged.xml"
			}

			result, err := cliCtx.Service.ProcessFile(cmd.Context(), inputPath, outputPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Run:        %s\n", result.RunID)
			fmt.Fprintf(out, "Mode:       %s\n", result.Mode)
			fmt.Fprintf(out, "Paragraphs: %d (%d skipped)\n",
				result.Stats.Paragraphs, result.Stats.SkippedParagraphs)
			fmt.Fprintf(out, "Candidates: %d\n", result.Stats.Candidates)
			fmt.Fprintf(out, "Resolved:   %d (%d discarded)\n",
				result.Stats.Resolved, result.Stats.Discarded)
			for source, n := range result.Stats.CandidatesBySource {
				fmt.Fprintf(out, "  %-20s %d\n", source, n)
			}
			fmt.Fprintf(out, "Output:     %s\n", outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file path (default: <input>.tagged.xml)")
	return cmd
}
