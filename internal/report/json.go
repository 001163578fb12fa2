package report

import (
	"encoding/json"
	"io"

	"github.com/Kaan0029/jabref/internal/bib"
	"github.com/Kaan0029/jabref/internal/consistency"
)

// jsonEntryType is the JSON shape of one inconsistent entry type
type jsonEntryType struct {
	Fields  []string `json:"fields"`
	Entries []string `json:"entries"`
}

// WriteJSON writes an object keyed by entry type, listing the unique fields
// and the citation keys of the deviating entries. Entries without a key are
// listed as empty strings.
func WriteJSON(w io.Writer, result consistency.Result) error {
	out := make(map[bib.EntryType]jsonEntryType, len(result.EntryTypeToResult))
	for entryType, res := range result.EntryTypeToResult {
		fields := make([]string, 0, len(res.Fields))
		for _, f := range res.Fields {
			fields = append(fields, f.String())
		}
		keys := make([]string, 0, len(res.SortedEntries))
		for _, e := range res.SortedEntries {
			keys = append(keys, e.CitationKey)
		}
		out[entryType] = jsonEntryType{Fields: fields, Entries: keys}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
