package main

import (
	"fmt"
	"os"

	"github.com/example/go-sanskrit-tokenizer/internal/config"
	"github.com/example/go-sanskrit-tokenizer/internal/sentiment"
	"github.com/spf13/cobra"
)

func newSentimentCmd() *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:   "sentiment",
		Short: "Tokenize text and score its polarity against the lexicon",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			pipe, opts, err := buildPipeline(cfg)
			if err != nil {
				return err
			}

			analyzer, err := loadAnalyzer(cfg, false)
			if err != nil {
				return err
			}

			input, err := readInputText(text, os.Stdin)
			if err != nil {
				return err
			}

			result := analyzer.Score(pipe.Run(input, opts))
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s (compound %.4f, %d lexicon hits)\n",
				result.Label, result.Compound, result.Hits)
			return err
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Text to score (if empty, read from stdin)")

	return cmd
}

// loadAnalyzer constructs the sentiment analyzer, provisioning the lexicon
// first when a download URL is configured. With quiet set, provisioning
// progress is suppressed.
func loadAnalyzer(cfg config.Config, quiet bool) (*sentiment.Analyzer, error) {
	if cfg.Sentiment.LexiconURL != "" {
		fetch := sentiment.FetchOptions{
			Path:   cfg.Sentiment.LexiconPath,
			URL:    cfg.Sentiment.LexiconURL,
			SHA256: cfg.Sentiment.LexiconSHA256,
		}
		if !quiet {
			fetch.Stdout = os.Stderr
		}
		if err := sentiment.Ensure(fetch); err != nil {
			return nil, err
		}
	}

	return sentiment.New(cfg.Sentiment.LexiconPath)
}
