package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/gapcheck/internal/diagnosis"
	"github.com/abhisek/gapcheck/internal/questionbank"
	"github.com/abhisek/gapcheck/internal/report"
)

func newBankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bank",
		Short: "Inspect question banks",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list [FILE]",
		Short: "List the questions, options and gap types of a bank",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				b   *questionbank.Bank
				err error
			)
			if len(args) == 1 {
				b, err = questionbank.LoadFile(args[0])
			} else {
				b, err = resolveBank(cmd)
			}
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return report.Bank(out, b, report.Options{Color: report.ColorEnabled(out, noColor(cmd))})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "validate FILE",
		Short: "Validate a bank file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := questionbank.LoadFile(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: ok (%d questions, %d gap types)\n", b.Name(), b.Len(), len(b.GapTypes()))
			for _, t := range b.GapTypes() {
				if !diagnosis.IsKnownGap(t) {
					fmt.Fprintf(out, "warning: gap type %q has no description, generic text will be used\n", t)
				}
			}
			return nil
		},
	})
	return cmd
}
