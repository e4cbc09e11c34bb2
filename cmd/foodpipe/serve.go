package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"foodpipe/internal/config"
	"foodpipe/internal/pipeline"
	"foodpipe/internal/server"
)

const shutdownTimeout = 10 * time.Second

type serveFlags struct {
	addr string
}

// NewCmdServe returns the command that builds the dataset once and serves
// it over HTTP until interrupted.
func NewCmdServe(root *rootFlags, log *logrus.Logger) *cobra.Command {
	flags := &serveFlags{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Build the dataset once and serve it over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, root)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = flags.addr
			}
			return runServe(cmd.Context(), cfg, log)
		},
	}

	cmd.Flags().StringVar(&flags.addr, "addr", "", "listen address (overrides FOODPIPE_ADDR)")
	return cmd
}

func runServe(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	res, err := pipeline.Run(ctx, cfg, log)
	if err != nil {
		return err
	}

	e := server.New(server.NewHandler(res, log))
	log.WithField("addr", cfg.Addr).Info("http server listening")

	errCh := make(chan error, 1)
	go func() { errCh <- e.Start(cfg.Addr) }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info("shutting down http server")
		return e.Shutdown(shutdownCtx)
	}
}
