package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newTokenizeCmd() *cobra.Command {
	var text string
	var sep string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "tokenize",
		Short: "Tokenize text into words, numbers, and punctuation",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			pipe, opts, err := buildPipeline(cfg)
			if err != nil {
				return err
			}

			input, err := readInputText(text, os.Stdin)
			if err != nil {
				return err
			}

			tokens := pipe.Run(input, opts)

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				return enc.Encode(tokens)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(tokens, sep))
			return err
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Text to tokenize (if empty, read from stdin)")
	cmd.Flags().StringVar(&sep, "sep", " ", "Separator between tokens in plain output")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit tokens as a JSON array")

	return cmd
}
