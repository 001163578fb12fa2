package report

import (
	"encoding/csv"
	"io"

	"github.com/Kaan0029/jabref/internal/consistency"
)

// WriteCSV writes the result table as RFC 4180 CSV with a header row. An
// empty result produces the header row alone.
func WriteCSV(w io.Writer, result consistency.Result) error {
	table := BuildTable(result)

	cw := csv.NewWriter(w)
	if err := cw.Write(table.Header()); err != nil {
		return err
	}

	record := make([]string, 0, len(table.Fields)+2)
	for _, row := range table.Rows {
		record = append(record[:0], row.EntryType.String(), row.CitationKey)
		record = append(record, row.Cells...)
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
