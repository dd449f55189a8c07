package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/go-sanskrit-tokenizer/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the tokenizer HTTP server",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			pipe, opts, err := buildPipeline(cfg)
			if err != nil {
				return err
			}

			// The analyzer is optional at startup: without it /sentiment
			// reports the dependency as unavailable while /tokenize keeps
			// serving.
			analyzer, err := loadAnalyzer(cfg, true)
			if err != nil {
				slog.Warn("sentiment analyzer unavailable", slog.String("error", err.Error()))
				analyzer = nil
			}

			h := server.NewHandler(pipe, analyzer,
				server.WithDefaultOptions(opts),
				server.WithMaxTextBytes(cfg.Server.MaxTextBytes),
			)

			srv := server.New(cfg.Server.ListenAddr, h).
				WithShutdownTimeout(time.Duration(cfg.Server.ShutdownTimeout) * time.Second)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			slog.Info("http server starting", slog.String("addr", cfg.Server.ListenAddr))
			return srv.Start(ctx)
		},
	}

	return cmd
}
