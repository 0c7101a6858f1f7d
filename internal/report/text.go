package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/gapcheck/internal/diagnosis"
)

// ConsultationText is the human-readable explanation of each consultation
// reason.
var ConsultationText = map[string]string{
	diagnosis.ReasonNoAnswers: "nenhuma pergunta respondida",
	"low-score":               "pontuação geral abaixo de 70",
	"high-impact-gaps":        "três ou mais lacunas de alto impacto",
	"critical-gap":            "lacuna crítica com probabilidade acima de 80%",
}

// Percent formats a [0,1] quantity as a whole percentage.
func Percent(v float64) string {
	return fmt.Sprintf("%.0f%%", v*100)
}

// ReasonText returns the explanation for a consultation reason, falling
// back to the reason itself.
func ReasonText(reason string) string {
	if s, ok := ConsultationText[reason]; ok {
		return s
	}
	return reason
}

// Text writes a terminal report of r to w.
func Text(w io.Writer, r diagnosis.Result, opts Options) error {
	p := newPalette(opts.Color)
	var b strings.Builder

	b.WriteString(p.bold.Sprint("Diagnóstico de marketing"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Pontuação geral: %s\n", p.score(r.OverallScore).Sprintf("%d/100", r.OverallScore))

	if r.NeedsConsultation {
		fmt.Fprintf(&b, "%s (%s)\n", p.red.Sprint("Consultoria recomendada"), ReasonText(r.ConsultationReason))
	} else {
		fmt.Fprintf(&b, "%s\n", p.green.Sprint("Nenhuma consultoria necessária"))
	}

	if len(r.Gaps) == 0 {
		b.WriteString("\nNenhuma lacuna identificada.\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	fmt.Fprintf(&b, "\nLacunas (%d alto, %d médio, %d baixo):\n",
		r.CountByImpact(diagnosis.ImpactHigh),
		r.CountByImpact(diagnosis.ImpactMedium),
		r.CountByImpact(diagnosis.ImpactLow))

	for i, g := range r.Gaps {
		label := diagnosis.Describe(g.Type).Label
		fmt.Fprintf(&b, "\n%2d. %s %s  probabilidade %s, impacto %s\n",
			i+1,
			p.impact(g.Impact.Severity()).Sprintf("[%s]", g.Impact),
			p.bold.Sprint(label),
			Percent(g.Probability),
			Percent(g.ImpactScore))
		if g.Description != "" {
			fmt.Fprintf(&b, "    %s\n", p.faint.Sprint(g.Description))
		}
		if opts.Recommendations {
			for _, rec := range g.Recommendations {
				fmt.Fprintf(&b, "    %s %s\n", p.cyan.Sprint("-"), rec)
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
