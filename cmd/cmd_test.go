package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/gapcheck/internal/diagnosis"
	"github.com/abhisek/gapcheck/internal/questionbank"
	"github.com/abhisek/gapcheck/internal/session"
)

const sampleBank = `
name: amostra
questions:
  - id: processo
    text: Existe um processo documentado?
    options:
      - {id: sim, text: Sim, weight: 1}
      - {id: nao, text: Não, weight: 0, gap_types: [processo]}
  - id: dados
    text: Vocês medem resultados?
    options:
      - {id: sim, text: Sim, weight: 1}
      - {id: parcial, text: Parcialmente, weight: 0.5, gap_types: [dados, automação]}
`

const healthyAnswers = `
objetivos: okr
persona: validadas
funil: completo
rotina: semanal
automacao: nutricao
integracao: total
metricas: cac-ltv
atribuicao: multitoque
conteudo: calendario
canais: varios
conversao: testes-ab
equipe: dedicado
`

type cliResult struct {
	stdout string
	stderr string
}

// runCLI executes a fresh command tree against a temporary database.
func runCLI(t *testing.T, dbPath string, args ...string) (cliResult, error) {
	t.Helper()
	t.Setenv("GAPCHECK_BANK", "")
	t.Setenv("GAPCHECK_LOG_LEVEL", "")

	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(""))
	root.SetArgs(append([]string{"--db", dbPath, "--no-color"}, args...))
	err := root.Execute()
	return cliResult{stdout: stdout.String(), stderr: stderr.String()}, err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func tempDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "gapcheck.db")
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, tempDB(t), "version")
	require.NoError(t, err)
	assert.Equal(t, "gapcheck (devel)\n", out.stdout)
}

func TestScore_JSON(t *testing.T) {
	answers := writeFile(t, "answers.yaml", healthyAnswers)
	out, err := runCLI(t, tempDB(t), "score", "--answers", answers, "--json")
	require.NoError(t, err)

	var res diagnosis.Result
	require.NoError(t, json.Unmarshal([]byte(out.stdout), &res))
	assert.Equal(t, 100, res.OverallScore)
	assert.False(t, res.NeedsConsultation)
	assert.Empty(t, res.Gaps)
	assert.Contains(t, out.stdout, `"gaps": []`)
}

func TestScore_CustomBankText(t *testing.T) {
	bank := writeFile(t, "bank.yaml", sampleBank)
	answers := writeFile(t, "answers.json", `{"processo": "nao", "dados": "parcial"}`)

	out, err := runCLI(t, tempDB(t), "--bank", bank, "score", "-a", answers)
	require.NoError(t, err)
	assert.Contains(t, out.stdout, "Pontuação geral: 20/100")
	assert.Contains(t, out.stdout, "Consultoria recomendada")

	processo := strings.Index(out.stdout, "[Alto]")
	automacao := strings.Index(out.stdout, "Automação")
	require.GreaterOrEqual(t, processo, 0)
	require.GreaterOrEqual(t, automacao, 0)
	assert.Less(t, processo, automacao, "high impact gap should be listed first")
}

func TestScore_Incomplete(t *testing.T) {
	answers := writeFile(t, "answers.yaml", "objetivos: okr\n")
	_, err := runCLI(t, tempDB(t), "score", "--answers", answers)
	require.Error(t, err)
	assert.True(t, errors.Is(err, session.ErrIncomplete), "got %v", err)
}

func TestScore_Partial(t *testing.T) {
	answers := writeFile(t, "answers.yaml", "objetivos: nenhum\npersona: nao\n")
	out, err := runCLI(t, tempDB(t), "score", "--answers", answers, "--partial", "--json")
	require.NoError(t, err)

	var res diagnosis.Result
	require.NoError(t, json.Unmarshal([]byte(out.stdout), &res))
	assert.Equal(t, 0, res.OverallScore)
	assert.True(t, res.NeedsConsultation)
	require.Len(t, res.Gaps, 3)
	types := make([]questionbank.GapType, len(res.Gaps))
	for i, g := range res.Gaps {
		types[i] = g.Type
		assert.Equal(t, diagnosis.ImpactHigh, g.Impact)
	}
	assert.Contains(t, types, questionbank.GapStrategy)
}

func TestScore_PartialCannotSave(t *testing.T) {
	answers := writeFile(t, "answers.yaml", "objetivos: okr\n")
	_, err := runCLI(t, tempDB(t), "score", "--answers", answers, "--partial", "--save")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errIncompleteSave), "got %v", err)
}

func TestScore_UnknownOption(t *testing.T) {
	bank := writeFile(t, "bank.yaml", sampleBank)
	answers := writeFile(t, "answers.yaml", "processo: talvez\ndados: sim\n")
	_, err := runCLI(t, tempDB(t), "--bank", bank, "score", "--answers", answers)
	require.Error(t, err)
	assert.True(t, errors.Is(err, session.ErrUnknownOption), "got %v", err)
}

func TestScore_RequiresAnswersFlag(t *testing.T) {
	_, err := runCLI(t, tempDB(t), "score")
	require.Error(t, err)
}

func TestScoreSaveThenHistory(t *testing.T) {
	db := tempDB(t)
	answers := writeFile(t, "answers.yaml", healthyAnswers)

	out, err := runCLI(t, db, "score", "--answers", answers, "--save")
	require.NoError(t, err)
	line := strings.TrimSpace(out.stderr)
	require.True(t, strings.HasPrefix(line, "saved session "), "stderr = %q", out.stderr)
	id := strings.TrimPrefix(line, "saved session ")

	out, err = runCLI(t, db, "history")
	require.NoError(t, err)
	assert.Contains(t, out.stdout, "PONTUAÇÃO")
	assert.Contains(t, out.stdout, id[:8])
	assert.Contains(t, out.stdout, "100")

	out, err = runCLI(t, db, "history", "--session", id)
	require.NoError(t, err)
	assert.Contains(t, out.stdout, id)
	assert.Contains(t, out.stdout, "Nenhuma consultoria necessária")
}

func TestHistory_Empty(t *testing.T) {
	out, err := runCLI(t, tempDB(t), "history")
	require.NoError(t, err)
	assert.Equal(t, "Nenhum diagnóstico salvo.\n", out.stdout)
}

func TestHistory_UnknownSession(t *testing.T) {
	_, err := runCLI(t, tempDB(t), "history", "--session", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"nope"`)
}

func TestBankList_Default(t *testing.T) {
	out, err := runCLI(t, tempDB(t), "bank", "list")
	require.NoError(t, err)
	assert.Contains(t, out.stdout, "[objetivos]")
	assert.Contains(t, out.stdout, "Tipos de lacuna:")
}

func TestBankList_File(t *testing.T) {
	bank := writeFile(t, "bank.yaml", sampleBank)
	out, err := runCLI(t, tempDB(t), "bank", "list", bank)
	require.NoError(t, err)
	assert.Contains(t, out.stdout, "amostra (2 perguntas)")
}

func TestBankValidate(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		wantErr  bool
		wantOut  string
		wantWarn bool
	}{
		{name: "valid", doc: sampleBank, wantOut: "amostra: ok (2 questions, 3 gap types)"},
		{
			name:     "unknown gap type",
			doc:      "questions:\n  - id: q\n    text: Q\n    options:\n      - {id: a, text: A, weight: 0, gap_types: [marca]}\n",
			wantOut:  "ok (1 questions, 1 gap types)",
			wantWarn: true,
		},
		{
			name:    "duplicate question",
			doc:     "questions:\n  - id: q\n    text: Q\n    options: [{id: a, text: A, weight: 1}]\n  - id: q\n    text: Q\n    options: [{id: a, text: A, weight: 1}]\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "bank.yaml", tt.doc)
			out, err := runCLI(t, tempDB(t), "bank", "validate", path)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out.stdout, tt.wantOut)
			assert.Equal(t, tt.wantWarn, strings.Contains(out.stdout, `warning: gap type "marca"`))
		})
	}
}

func TestReadAnswers(t *testing.T) {
	t.Run("stdin", func(t *testing.T) {
		m, err := readAnswers(strings.NewReader("b: x\na: y\n"), "-")
		require.NoError(t, err)
		assert.Equal(t, []diagnosis.Answer{{QuestionID: "b", OptionID: "x"}, {QuestionID: "a", OptionID: "y"}}, m.Pairs())
	})
	t.Run("empty", func(t *testing.T) {
		m, err := readAnswers(strings.NewReader(""), "-")
		require.NoError(t, err)
		assert.Equal(t, 0, m.Len())
	})
	t.Run("not a map", func(t *testing.T) {
		_, err := readAnswers(strings.NewReader("- a\n- b\n"), "-")
		require.Error(t, err)
	})
	t.Run("nested value", func(t *testing.T) {
		_, err := readAnswers(strings.NewReader("a:\n  b: c\n"), "-")
		require.Error(t, err)
	})
	t.Run("duplicate", func(t *testing.T) {
		_, err := readAnswers(strings.NewReader("a: x\na: y\n"), "-")
		require.Error(t, err)
	})
	t.Run("missing file", func(t *testing.T) {
		_, err := readAnswers(nil, filepath.Join(t.TempDir(), "none.yaml"))
		require.Error(t, err)
	})
}

func TestNewLogger(t *testing.T) {
	t.Setenv("GAPCHECK_LOG_LEVEL", "")
	l, err := newLogger(false)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))

	l, err = newLogger(true)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))

	t.Setenv("GAPCHECK_LOG_LEVEL", "info")
	l, err = newLogger(false)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))

	t.Setenv("GAPCHECK_LOG_LEVEL", "loud")
	_, err = newLogger(false)
	require.Error(t, err)
}

func TestNewLogger_FileOutput(t *testing.T) {
	t.Setenv("GAPCHECK_LOG_LEVEL", "")
	path := filepath.Join(t.TempDir(), "gapcheck.log")
	l, err := newLogger(true, path)
	require.NoError(t, err)
	l.Debug("hello")
	require.NoError(t, l.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}

func TestResolveBank_Env(t *testing.T) {
	bank := writeFile(t, "bank.yaml", sampleBank)
	root := newRootCmd()
	t.Setenv("GAPCHECK_BANK", bank)
	b, err := resolveBank(root)
	require.NoError(t, err)
	assert.Equal(t, "amostra", b.Name())

	require.NoError(t, root.ParseFlags([]string{"--bank", filepath.Join(t.TempDir(), "missing.yaml")}))
	_, err = resolveBank(root)
	require.Error(t, err)
}
