package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/gapcheck/internal/questionbank"
	"github.com/abhisek/gapcheck/internal/store"
)

// logger is built in PersistentPreRunE and shared by the subcommands.
var logger = zap.NewNop()

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gapcheck",
		Short: "Marketing operations gap diagnostic",
		Long: `gapcheck walks a marketing-operations questionnaire, scores the answers
and ranks the gaps that most likely hold the business back.

Run without arguments to start the interactive questionnaire.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			l, err := newLogger(verbose)
			if err != nil {
				return fmt.Errorf("initialize logger: %w", err)
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd)
		},
	}

	cmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides GAPCHECK_DB env var)")
	cmd.PersistentFlags().String("bank", "", "Path to a question bank file (overrides GAPCHECK_BANK env var)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newScoreCmd())
	cmd.AddCommand(newBankCmd())
	cmd.AddCommand(newHistoryCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func Execute() error {
	return rootCmd.Execute()
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then GAPCHECK_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveBank loads the bank named by the --bank flag, then GAPCHECK_BANK,
// and falls back to the built-in questionnaire.
func resolveBank(cmd *cobra.Command) (*questionbank.Bank, error) {
	p, _ := cmd.Flags().GetString("bank")
	if p == "" {
		p = os.Getenv("GAPCHECK_BANK")
	}
	if p == "" {
		return questionbank.Default(), nil
	}
	b, err := questionbank.LoadFile(p)
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded question bank",
		zap.String("path", p),
		zap.String("name", b.Name()),
		zap.Int("questions", b.Len()))
	return b, nil
}

// openStore opens the result database resolved for cmd.
func openStore(cmd *cobra.Command, l *zap.Logger) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath, l)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

func noColor(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("no-color")
	return v
}
