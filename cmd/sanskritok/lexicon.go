package main

import (
	"fmt"

	"github.com/example/go-sanskrit-tokenizer/internal/sentiment"
	"github.com/spf13/cobra"
)

func newLexiconCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lexicon",
		Short: "Sentiment lexicon acquisition commands",
	}

	cmd.AddCommand(newLexiconDownloadCmd())
	return cmd
}

func newLexiconDownloadCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "download",
		Short: "Download the sentiment lexicon to the configured path",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			opts := sentiment.FetchOptions{
				Path:   cfg.Sentiment.LexiconPath,
				URL:    cfg.Sentiment.LexiconURL,
				SHA256: cfg.Sentiment.LexiconSHA256,
				Stdout: cmd.OutOrStdout(),
			}

			if force {
				return sentiment.Fetch(opts)
			}
			if err := sentiment.Ensure(opts); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "lexicon ready: %s\n", cfg.Sentiment.LexiconPath)
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Re-download even when the file is present")

	return cmd
}
