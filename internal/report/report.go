// Package report renders consistency check results as CSV, aligned text or
// JSON.
//
// CSV and text share one table layout: a row per deviating entry with the
// entry type, the citation key and one column per field that is unique to
// some entry type anywhere in the result. Each field cell holds a symbol:
//
//	x  present and required by the entry type
//	o  present and optional for the entry type
//	?  present but not declared by the entry type, or the type is non-standard
//	-  absent
package report

import (
	"io"
	"slices"
	"strings"

	"github.com/Kaan0029/jabref/internal/bib"
	"github.com/Kaan0029/jabref/internal/consistency"
	"github.com/Kaan0029/jabref/internal/errors"
	"github.com/Kaan0029/jabref/internal/logger"
)

// Format identifies an output format
type Format string

const (
	FormatTXT  Format = "txt"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// Formats lists the supported formats in display order
var Formats = []Format{FormatTXT, FormatCSV, FormatJSON}

// Cell symbols
const (
	SymbolRequired = "x"
	SymbolOptional = "o"
	SymbolUnknown  = "?"
	SymbolAbsent   = "-"
)

// Column headers preceding the field columns
const (
	HeaderEntryType   = "entry type"
	HeaderCitationKey = "citation key"
)

// ParseFormat resolves a format name case-insensitively.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	if slices.Contains(Formats, f) {
		return f, nil
	}
	return "", errors.Newf("unsupported report format %q, expected one of txt, csv, json", name).
		Component("report").
		Category(errors.CategoryValidation).
		Context("format", name).
		Build()
}

// Write renders result to w in the given format.
func Write(w io.Writer, format Format, result consistency.Result) error {
	var err error
	switch format {
	case FormatTXT:
		err = WriteTXT(w, result)
	case FormatCSV:
		err = WriteCSV(w, result)
	case FormatJSON:
		err = WriteJSON(w, result)
	default:
		_, err = ParseFormat(string(format))
		return err
	}
	if err != nil {
		return errors.New(err).
			Component("report").
			Category(errors.CategoryExport).
			Context("format", string(format)).
			Build()
	}

	GetLogger().Debug("report written",
		logger.String("format", string(format)),
		logger.Int("entry_types", len(result.EntryTypeToResult)),
		logger.Int("deviating_entries", result.DeviatingEntries()))
	return nil
}

// Table is the row-oriented view of a result shared by the CSV and text writers
type Table struct {
	Fields []bib.Field
	Rows   []Row
}

// Row is one deviating entry
type Row struct {
	EntryType   bib.EntryType
	CitationKey string
	Cells       []string // one symbol per Table.Fields column
}

// Header returns the column titles of the table
func (t Table) Header() []string {
	header := make([]string, 0, len(t.Fields)+2)
	header = append(header, HeaderEntryType, HeaderCitationKey)
	for _, f := range t.Fields {
		header = append(header, f.String())
	}
	return header
}

// BuildTable lays out result as rows ordered by entry type and then by the
// order of SortedEntries.
func BuildTable(result consistency.Result) Table {
	fields := result.UniqueFields()
	table := Table{Fields: fields}

	for _, entryType := range result.EntryTypes() {
		for _, e := range result.EntryTypeToResult[entryType].SortedEntries {
			cells := make([]string, len(fields))
			for i, f := range fields {
				cells[i] = Symbol(entryType, e, f)
			}
			table.Rows = append(table.Rows, Row{
				EntryType:   entryType,
				CitationKey: e.CitationKey,
				Cells:       cells,
			})
		}
	}
	return table
}

// Symbol returns the cell symbol for field on an entry of entryType.
func Symbol(entryType bib.EntryType, e *bib.Entry, field bib.Field) string {
	if !e.HasField(field) {
		return SymbolAbsent
	}
	switch bib.FieldUsageFor(entryType, field) {
	case bib.UsageRequired:
		return SymbolRequired
	case bib.UsageOptional:
		return SymbolOptional
	default:
		return SymbolUnknown
	}
}
