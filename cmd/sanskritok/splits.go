package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/example/go-sanskrit-tokenizer/internal/sandhi"
	"github.com/example/go-sanskrit-tokenizer/internal/text"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func newSplitsCmd() *cobra.Command {
	var minPartLen int
	var strip bool

	cmd := &cobra.Command{
		Use:   "splits TOKEN",
		Short: "Show all ranked sandhi split candidates for one word token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("min-part-len") {
				minPartLen = cfg.Pipeline.MinPartLen
			}

			token := text.Normalize(args[0])
			if strip {
				token = text.StripDiacritics(token)
			}

			candidates := sandhi.Splits(token, minPartLen)
			if len(candidates) == 0 {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "no split candidates for %q\n", token)
				return err
			}

			if isatty.IsTerminal(os.Stdout.Fd()) {
				rows := make([][]string, 0, len(candidates))
				for i, c := range candidates {
					rows = append(rows, []string{
						strconv.Itoa(i + 1),
						c.Left,
						c.Right,
						c.Reason.String(),
					})
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(),
					renderTable(
						[]string{"Rank", "Left", "Right", "Rule"},
						rows,
						[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
					))
				return err
			}

			for _, c := range candidates {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", c.Left, c.Right, c.Reason); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&minPartLen, "min-part-len", sandhi.DefaultMinPartLen, "Minimum rune length of each fragment")
	cmd.Flags().BoolVar(&strip, "strip-diacritics", false, "Strip diacritics before splitting")

	return cmd
}
