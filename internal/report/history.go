package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/abhisek/gapcheck/internal/store"
)

// History writes a table of stored results to w, in the order given.
func History(w io.Writer, recs []store.ResultRecord) error {
	if len(recs) == 0 {
		_, err := fmt.Fprintln(w, "Nenhum diagnóstico salvo.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATA\tSESSÃO\tPONTUAÇÃO\tCONSULTORIA\tPRINCIPAL LACUNA")
	for _, rec := range recs {
		consult := "não"
		if rec.Result.NeedsConsultation {
			consult = "sim"
		}
		top := "-"
		if len(rec.Result.Gaps) > 0 {
			g := rec.Result.Gaps[0]
			top = fmt.Sprintf("%s (%s)", g.Type, g.Impact)
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n",
			rec.Timestamp.Local().Format(time.DateTime),
			shortID(rec.SessionID),
			rec.Result.OverallScore,
			consult,
			top)
	}
	return tw.Flush()
}

// shortID truncates a UUID to its first block for table display.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
