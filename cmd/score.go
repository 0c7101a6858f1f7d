package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/gapcheck/internal/diagnosis"
	"github.com/abhisek/gapcheck/internal/report"
	"github.com/abhisek/gapcheck/internal/session"
	"github.com/abhisek/gapcheck/internal/store"
)

// errIncompleteSave is returned when --save is combined with a partial run
// that did not reach the last question.
var errIncompleteSave = errors.New("only completed diagnostics can be saved")

type scoreOptions struct {
	answersPath string
	asJSON      bool
	save        bool
	partial     bool
}

func newScoreCmd() *cobra.Command {
	var opts scoreOptions
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score an answers file without the TUI",
		Long: `Score replays an answers file through the questionnaire in bank order and
prints the diagnostic. The file is a YAML or JSON map of question ID to
option ID; "-" reads it from stdin.

Every question must be answered unless --partial is given, in which case the
answers must form a prefix of the bank.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.answersPath, "answers", "a", "", "Answers file (YAML or JSON), - for stdin")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print the result as JSON")
	cmd.Flags().BoolVar(&opts.save, "save", false, "Store the result in the database")
	cmd.Flags().BoolVar(&opts.partial, "partial", false, "Score an answered prefix of the bank")
	_ = cmd.MarkFlagRequired("answers")
	return cmd
}

func runScore(cmd *cobra.Command, opts scoreOptions) error {
	bank, err := resolveBank(cmd)
	if err != nil {
		return fmt.Errorf("resolve bank: %w", err)
	}

	answers, err := readAnswers(cmd.InOrStdin(), opts.answersPath)
	if err != nil {
		return err
	}

	s, err := session.Replay(bank, "", answers, opts.partial)
	if err != nil {
		return fmt.Errorf("replay answers: %w", err)
	}
	res := s.Score()
	logger.Debug("Scored answers",
		zap.String("session", s.ID()),
		zap.Int("answered", s.Answers().Len()),
		zap.Int("score", res.OverallScore))

	if opts.save {
		if err := saveResult(cmd, s, res); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if opts.asJSON {
		return report.JSON(out, res)
	}
	return report.Text(out, res, report.Options{
		Color:           report.ColorEnabled(out, noColor(cmd)),
		Recommendations: true,
	})
}

func saveResult(cmd *cobra.Command, s *session.Session, res diagnosis.Result) error {
	if s.Phase() != session.PhaseCompleted {
		return errIncompleteSave
	}
	st, err := openStore(cmd, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := cmd.Context()
	err = st.EventRepo().AppendResult(ctx, store.ResultData{
		SessionID:    s.ID(),
		BankName:     s.Bank().Name(),
		Result:       res,
		Answers:      s.Answers().Pairs(),
		DurationSecs: int(s.CompletedAt().Sub(s.StartedAt()).Seconds()),
	})
	if err != nil {
		return fmt.Errorf("save result: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "saved session %s\n", s.ID())
	return nil
}

// readAnswers decodes a question ID to option ID map. YAML is a superset
// of JSON so both formats go through the YAML decoder.
func readAnswers(stdin io.Reader, path string) (*diagnosis.AnswerMap, error) {
	var raw []byte
	var err error
	if path == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read answers: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode answers: %w", err)
	}
	answers := diagnosis.NewAnswerMap()
	if len(doc.Content) == 0 {
		return answers, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("decode answers: line %d: expected a map of question to option", root.Line)
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		k, v := root.Content[i], root.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("decode answers: line %d: option for %q must be a scalar", v.Line, k.Value)
		}
		if _, dup := answers.Get(k.Value); dup {
			return nil, fmt.Errorf("decode answers: line %d: duplicate question %q", k.Line, k.Value)
		}
		answers.Set(k.Value, v.Value)
	}
	return answers, nil
}
