package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/gapcheck/internal/app"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the interactive questionnaire",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd)
		},
	}
}

// runApp opens the store, builds dependencies, and launches the TUI.
// The alt screen owns the terminal, so the TUI only logs when --verbose
// is set and then to a file next to the database.
func runApp(cmd *cobra.Command) error {
	bank, err := resolveBank(cmd)
	if err != nil {
		return fmt.Errorf("resolve bank: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}

	tuiLogger := zap.NewNop()
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		l, err := newLogger(true, dbPath+".log")
		if err != nil {
			return fmt.Errorf("initialize TUI logger: %w", err)
		}
		defer l.Sync()
		tuiLogger = l
	}

	st, err := openStore(cmd, tuiLogger)
	if err != nil {
		return err
	}
	defer st.Close()

	return app.Run(app.Options{
		Bank:      bank,
		EventRepo: st.EventRepo(),
		Logger:    tuiLogger,
	})
}
