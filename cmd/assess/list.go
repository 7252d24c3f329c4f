package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newListCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available assessments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			usecase, log, err := newAssessmentUsecase(f)
			if err != nil {
				return err
			}
			defer log.Sync()

			summaries, err := usecase.FindAll(context.Background())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tQUESTIONS")
			for _, s := range summaries {
				fmt.Fprintf(tw, "%s\t%s\t%d\n", s.ID, s.Name, s.QuestionCount)
			}
			return tw.Flush()
		},
	}
}
