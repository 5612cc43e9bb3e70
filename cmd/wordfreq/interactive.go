package main

import (
	"github.com/spf13/cobra"

	"wordfreq/internal/logging"
	"wordfreq/internal/session"
)

func runInteractive(cmd *cobra.Command, ctx *commandContext) error {
	svc, err := ctx.services(cmd)
	if err != nil {
		return err
	}
	defer svc.Close()

	svc.logger.Debug("interactive session starting",
		logging.Int("min_word_length", svc.counter.MinLength()),
		logging.Int("stop_words", svc.counter.StopWords().Len()),
		logging.String("format", string(svc.reporter.Format())),
	)
	return session.New(cmd.InOrStdin(), cmd.OutOrStdout(), svc.counter, svc.reporter, svc.logger).Run(cmd.Context())
}
