package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"foodpipe/internal/config"
	"foodpipe/internal/pipeline"
	"foodpipe/internal/sink"
)

const postgresTimeout = 30 * time.Second

type mergeFlags struct {
	out        string
	toPostgres bool
}

// NewCmdMerge returns the command that builds the final dataset and writes
// it to the output CSV, optionally loading it into Postgres as well.
func NewCmdMerge(root *rootFlags, log *logrus.Logger) *cobra.Command {
	flags := &mergeFlags{}

	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Build the final dataset from orders, users, and restaurants",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, root)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("out") {
				cfg.OutFile = flags.out
			}
			return runMerge(cmd.Context(), cfg, flags, log, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "output csv path (overrides FOODPIPE_OUT)")
	cmd.Flags().BoolVar(&flags.toPostgres, "to-postgres", false, "also load the dataset into Postgres (needs FOODPIPE_PG_DSN)")
	return cmd
}

func runMerge(ctx context.Context, cfg *config.Config, flags *mergeFlags, log *logrus.Logger, out io.Writer) error {
	res, err := pipeline.Run(ctx, cfg, log)
	if err != nil {
		return err
	}

	if err := (&sink.CSV{Path: cfg.OutFile}).Write(ctx, res.Dataset); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote final dataset to %s (%d rows, %d columns)\n", cfg.OutFile, res.Dataset.Len(), res.Dataset.Width())

	if flags.toPostgres {
		if cfg.PostgresDSN == "" {
			return fmt.Errorf("postgres load requested but FOODPIPE_PG_DSN is not set")
		}
		pgCtx, cancel := context.WithTimeout(ctx, postgresTimeout)
		defer cancel()

		pg, err := sink.NewPostgres(pgCtx, cfg.PostgresDSN, cfg.PostgresTable)
		if err != nil {
			return err
		}
		defer pg.Close()
		if err := pg.Write(pgCtx, res.Dataset); err != nil {
			return err
		}
		log.WithFields(logrus.Fields{"table": cfg.PostgresTable, "rows": res.Dataset.Len()}).Info("dataset loaded into postgres")
	}
	return nil
}
