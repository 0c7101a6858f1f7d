package report

import (
	"encoding/json"
	"io"

	"github.com/abhisek/gapcheck/internal/diagnosis"
)

// JSON writes r to w as indented JSON.
func JSON(w io.Writer, r diagnosis.Result) error {
	if r.Gaps == nil {
		r.Gaps = []diagnosis.Gap{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
