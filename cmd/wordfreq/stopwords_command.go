package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wordfreq/internal/report"
)

func newStopWordsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stopwords",
		Short: "List the words excluded from counting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.services(cmd)
			if err != nil {
				return err
			}
			defer svc.Close()

			words := svc.counter.StopWords().Words()
			if svc.reporter.Format() == report.FormatJSON {
				return writeJSON(cmd, words)
			}
			out := cmd.OutOrStdout()
			for _, word := range words {
				fmt.Fprintln(out, word)
			}
			fmt.Fprintf(out, "\n%d stop words; words shorter than %d characters are also ignored\n", len(words), svc.counter.MinLength())
			return nil
		},
	}
}
