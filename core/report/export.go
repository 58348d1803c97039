package report

import (
	"encoding/csv"
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// WriteCSV renders the report as CSV: summary lines, a blank separator,
// then the table header and rows.
func (r Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{r.Title, r.Scope.Label(), r.GeneratedAt.Format("2006-01-02")}); err != nil {
		return errors.Wrap(err, "writing report heading")
	}
	for _, stat := range r.Summary {
		if err := cw.Write([]string{stat.Label, stat.Value}); err != nil {
			return errors.Wrap(err, "writing report summary")
		}
	}
	if err := cw.Write([]string{}); err != nil {
		return errors.Wrap(err, "writing report separator")
	}
	if err := cw.Write(r.Header); err != nil {
		return errors.Wrap(err, "writing report header")
	}
	for _, row := range r.Rows {
		if err := cw.Write(row); err != nil {
			return errors.Wrap(err, "writing report row")
		}
	}

	cw.Flush()
	return errors.Wrap(cw.Error(), "flushing report")
}

// WriteJSON renders the report as indented JSON.
func (r Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(r), "encoding report")
}
