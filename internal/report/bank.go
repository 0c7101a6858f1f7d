package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/gapcheck/internal/diagnosis"
	"github.com/abhisek/gapcheck/internal/questionbank"
)

// Bank writes the questions of b and the gap types they reference to w.
func Bank(w io.Writer, b *questionbank.Bank, opts Options) error {
	p := newPalette(opts.Color)
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s (%d perguntas)\n", p.bold.Sprint(b.Name()), b.Len())
	for i, q := range b.Questions() {
		fmt.Fprintf(&sb, "\n%2d. %s %s\n", i+1, p.cyan.Sprintf("[%s]", q.ID), q.Text)
		for _, o := range q.Options {
			tags := "-"
			if len(o.GapTypes) > 0 {
				names := make([]string, len(o.GapTypes))
				for j, t := range o.GapTypes {
					names[j] = string(t)
				}
				tags = strings.Join(names, ", ")
			}
			fmt.Fprintf(&sb, "    %-20s %.2f  %s  %s\n", o.ID, o.Weight, p.faint.Sprint(tags), o.Text)
		}
	}

	sb.WriteString("\nTipos de lacuna:\n")
	for _, t := range b.GapTypes() {
		marker := ""
		if !diagnosis.IsKnownGap(t) {
			marker = p.yellow.Sprint(" (sem descrição específica)")
		}
		fmt.Fprintf(&sb, "  %s%s\n", t, marker)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
