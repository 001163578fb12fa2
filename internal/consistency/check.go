// Package consistency detects structural inconsistency in a bibliography.
//
// For entries sharing the same type, Check finds fields that appear on some
// but not all of them and reports which entries deviate from the fields the
// type has in common. It does not check whether required fields are present
// or whether a field is legal for its type.
package consistency

import (
	"maps"
	"slices"

	"github.com/Kaan0029/jabref/internal/bib"
)

// ProgressFunc is called once per entry type, before that type is resolved,
// with the zero-based index of the type and the number of distinct types.
type ProgressFunc func(index, total int)

// EntryTypeResult describes the inconsistencies found for one entry type.
type EntryTypeResult struct {
	// Fields present on some but not all entries of the type, sorted by name
	Fields []bib.Field
	// SortedEntries are the entries whose comparable fields differ from the
	// fields common to the type, in citation key order
	SortedEntries []*bib.Entry
}

// Result maps every inconsistent entry type to its findings. Consistent
// types are absent.
type Result struct {
	EntryTypeToResult map[bib.EntryType]EntryTypeResult
}

// IsEmpty reports whether no inconsistency was found.
func (r Result) IsEmpty() bool {
	return len(r.EntryTypeToResult) == 0
}

// EntryTypes returns the inconsistent entry types in lexical order.
func (r Result) EntryTypes() []bib.EntryType {
	return slices.Sorted(maps.Keys(r.EntryTypeToResult))
}

// UniqueFields returns the union of the unique fields of all entry types,
// sorted by name.
func (r Result) UniqueFields() []bib.Field {
	all := make(FieldSet)
	for _, res := range r.EntryTypeToResult {
		for _, f := range res.Fields {
			all[f] = struct{}{}
		}
	}
	return all.Sorted()
}

// DeviatingEntries returns the total number of deviating entries.
func (r Result) DeviatingEntries() int {
	n := 0
	for _, res := range r.EntryTypeToResult {
		n += len(res.SortedEntries)
	}
	return n
}

// Check groups entries by type and reports, per type, the fields present on
// only some entries together with the entries that deviate from the common
// field set. Entries are only read. onProgress may be nil.
func Check(entries []*bib.Entry, onProgress ProgressFunc) Result {
	if onProgress == nil {
		onProgress = func(int, int) {}
	}

	groups := aggregate(entries)
	types := slices.Sorted(maps.Keys(groups))
	result := Result{EntryTypeToResult: make(map[bib.EntryType]EntryTypeResult)}

	for i, t := range types {
		onProgress(i, len(types))

		if res, ok := resolve(groups[t]); ok {
			result.EntryTypeToResult[t] = res
		}
	}

	return result
}

// resolve computes the findings of one type. It reports false when all
// entries of the type share the same comparable fields.
func resolve(g group) (EntryTypeResult, bool) {
	if g.common == nil {
		panic("consistency: entry type aggregated without a common field set")
	}

	unique := g.union.Difference(g.common)
	if len(unique) == 0 {
		return EntryTypeResult{}, false
	}

	deviating := make([]*bib.Entry, 0, len(g.entries))
	for _, e := range g.entries {
		if !NormalizedFields(e).Equal(g.common) {
			deviating = append(deviating, e)
		}
	}
	SortEntries(deviating)

	return EntryTypeResult{
		Fields:        unique.Sorted(),
		SortedEntries: deviating,
	}, true
}
