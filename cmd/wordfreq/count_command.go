package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wordfreq/internal/config"
	"wordfreq/internal/logging"
)

func newCountCommand(ctx *commandContext) *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "count <file>",
		Short: "Report the most frequent words in one file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.services(cmd)
			if err != nil {
				return err
			}
			defer svc.Close()

			path, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}
			requested := svc.config.Report.DefaultTopN
			if cmd.Flags().Changed("top") {
				requested = top
			}

			table, err := svc.counter.CountFile(path)
			if err != nil {
				svc.logger.Info("count failed", logging.String("path", path), logging.Error(err))
				return fmt.Errorf("count %s: %w", path, err)
			}
			return svc.reporter.Report(table, table.Total(), requested)
		},
	}

	cmd.Flags().IntVarP(&top, "top", "n", 0, "Number of top words to display (defaults to report.default_top_n)")
	return cmd
}
