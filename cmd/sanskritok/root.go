package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/example/go-sanskrit-tokenizer/internal/config"
	"github.com/example/go-sanskrit-tokenizer/internal/pipeline"
	"github.com/example/go-sanskrit-tokenizer/internal/server"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	activeCfg config.Config
	cfgLoaded bool
)

func NewRootCmd() *cobra.Command {
	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "sanskritok",
		Short: "Mixed English/Sanskrit (IAST) tokenizer with heuristic sandhi splitting",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(config.LoadOptions{
				Cmd:        cmd,
				ConfigFile: cfgFile,
				Defaults:   defaults,
			})
			if err != nil {
				return err
			}
			activeCfg = loaded
			cfgLoaded = true
			setupLogger(loaded.LogLevel)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Optional config file (yaml|toml|json)")
	config.RegisterFlags(cmd.PersistentFlags(), defaults)

	cmd.AddCommand(newTokenizeCmd())
	cmd.AddCommand(newSplitsCmd())
	cmd.AddCommand(newSentimentCmd())
	cmd.AddCommand(newLexiconCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newExamplesCmd())

	return cmd
}

// setupLogger configures the process-wide slog default logger.
func setupLogger(levelStr string) {
	lvl, err := server.ParseLogLevel(levelStr)
	if err != nil {
		lvl = slog.LevelInfo
	}
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(h))
}

func requireConfig() (config.Config, error) {
	if !cfgLoaded {
		return config.Config{}, fmt.Errorf("configuration not loaded")
	}
	return activeCfg, nil
}

// buildPipeline turns the loaded configuration into a pipeline and its
// default run options.
func buildPipeline(cfg config.Config) (pipeline.Pipeline, pipeline.Options, error) {
	policy, err := config.ParsePolicy(cfg.Scanner.Policy)
	if err != nil {
		return pipeline.Pipeline{}, pipeline.Options{}, err
	}

	opts := pipeline.Options{
		Normalize:       cfg.Pipeline.Normalize,
		StripDiacritics: cfg.Pipeline.StripDiacritics,
		ASCIIMap:        cfg.Pipeline.ASCIIMap,
		SandhiSplit:     cfg.Pipeline.SandhiSplit,
		MinPartLen:      cfg.Pipeline.MinPartLen,
	}
	return pipeline.New(policy), opts, nil
}

// readInputText returns the --text value, or the full stdin contents when
// the flag is empty.
func readInputText(text string, stdin io.Reader) (string, error) {
	if strings.TrimSpace(text) != "" {
		return text, nil
	}

	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	input := strings.TrimSpace(string(b))
	if input == "" {
		return "", fmt.Errorf("either provide --text or pipe text on stdin")
	}
	return input, nil
}
