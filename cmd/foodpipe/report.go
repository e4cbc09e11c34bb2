package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"foodpipe/internal/config"
	"foodpipe/internal/load"
	"foodpipe/internal/report"
)

type reportFlags struct {
	in string
}

// NewCmdReport returns the command that prints the revenue reports from a
// previously built dataset CSV. With no argument both reports print; naming
// one prints just that report.
func NewCmdReport(root *rootFlags, log *logrus.Logger) *cobra.Command {
	flags := &reportFlags{}

	cmd := &cobra.Command{
		Use:       "report [gold-cities|cuisines]",
		Short:     "Print the revenue reports from a built dataset",
		ValidArgs: []string{"gold-cities", "cuisines"},
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, root)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("in") {
				cfg.OutFile = flags.in
			}
			which := ""
			if len(args) == 1 {
				which = args[0]
			}
			return runReport(cfg, which, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&flags.in, "in", "", "dataset csv to read (defaults to the merge output)")
	return cmd
}

func runReport(cfg *config.Config, which string, out io.Writer) error {
	t, err := load.CSVFile(cfg.OutFile)
	if err != nil {
		return fmt.Errorf("read dataset (run merge first): %w", err)
	}

	if which == "" || which == "gold-cities" {
		report.Print(out, report.GoldCityTitle, report.GoldCityRevenue(t))
	}
	if which == "" {
		fmt.Fprintln(out)
	}
	if which == "" || which == "cuisines" {
		report.Print(out, report.CuisineTitle, report.CuisineAverage(t))
	}
	return nil
}
