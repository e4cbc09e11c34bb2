package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"foodpipe/internal/config"
)

// rootFlags are shared by every subcommand.
type rootFlags struct {
	dataDir string
	envFile string
	verbose bool
}

// NewCmdRoot wires the foodpipe command tree: merge builds the dataset,
// report prints the summaries, serve exposes both over HTTP.
func NewCmdRoot() *cobra.Command {
	flags := &rootFlags{}
	log := logrus.New()

	cmd := &cobra.Command{
		Use:   "foodpipe",
		Short: "Build and query the food delivery dataset",
		Long: `foodpipe merges the order CSV, user JSON, and restaurant SQL dump
into one denormalized dataset and computes revenue reports over it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}

	cmd.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "directory holding the source files (overrides FOODPIPE_DATA_DIR)")
	cmd.PersistentFlags().StringVar(&flags.envFile, "env-file", "", "env file to load before reading configuration")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(NewCmdMerge(flags, log))
	cmd.AddCommand(NewCmdReport(flags, log))
	cmd.AddCommand(NewCmdServe(flags, log))
	return cmd
}

// loadConfig reads configuration from the environment and applies any flag
// overrides. Flags win over env vars only when actually set.
func loadConfig(cmd *cobra.Command, flags *rootFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.envFile)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("data-dir") {
		cfg.DataDir = flags.dataDir
	}
	return cfg, nil
}
