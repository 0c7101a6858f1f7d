package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/gapcheck/internal/report"
	"github.com/abhisek/gapcheck/internal/store"
)

func newHistoryCmd() *cobra.Command {
	var (
		limit     int
		sessionID string
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show stored diagnostic results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cmd, logger)
			if err != nil {
				return err
			}
			defer st.Close()

			ctx := cmd.Context()
			repo := st.EventRepo()
			out := cmd.OutOrStdout()

			if sessionID != "" {
				rec, err := repo.ResultBySession(ctx, sessionID)
				if err != nil {
					return fmt.Errorf("load session: %w", err)
				}
				if rec == nil {
					return fmt.Errorf("no result for session %q", sessionID)
				}
				fmt.Fprintf(out, "Sessão %s · %s · %s\n\n",
					rec.SessionID, rec.BankName, rec.Timestamp.Local().Format("02/01/2006 15:04"))
				return report.Text(out, rec.Result, report.Options{
					Color:           report.ColorEnabled(out, noColor(cmd)),
					Recommendations: true,
				})
			}

			recs, err := repo.QueryResults(ctx, store.QueryOpts{Limit: limit})
			if err != nil {
				return fmt.Errorf("query results: %w", err)
			}
			return report.History(out, recs)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of results (0 = all)")
	cmd.Flags().StringVar(&sessionID, "session", "", "Show the full report of one session")
	return cmd
}
