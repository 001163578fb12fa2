package consistency

import (
	"cmp"
	"slices"
	"strings"

	"github.com/Kaan0029/jabref/internal/bib"
)

// Comparator orders two values, returning a negative number when a sorts
// before b, zero when they tie and a positive number otherwise.
type Comparator[T any] func(a, b T) int

// ComparatorStack evaluates comparators left to right and stops at the
// first one that does not report a tie.
type ComparatorStack[T any] []Comparator[T]

// Compare implements Comparator over the whole stack.
func (s ComparatorStack[T]) Compare(a, b T) int {
	for _, c := range s {
		if r := c(a, b); r != 0 {
			return r
		}
	}
	return 0
}

// CompareByCitationKey orders entries by citation key in lexical order.
// Entries without a key sort after all entries that have one.
func CompareByCitationKey(a, b *bib.Entry) int {
	switch {
	case a.HasCitationKey() && b.HasCitationKey():
		return strings.Compare(a.CitationKey, b.CitationKey)
	case a.HasCitationKey():
		return -1
	case b.HasCitationKey():
		return 1
	default:
		return 0
	}
}

// CompareByFields orders entries by their whole content: entry type first,
// then every field in lexical field-name order. For each field an entry that
// has it sorts before one that lacks it, and two present values compare
// lexically.
func CompareByFields(a, b *bib.Entry) int {
	if r := cmp.Compare(a.Type, b.Type); r != 0 {
		return r
	}

	names := append(a.FieldNames(), b.FieldNames()...)
	slices.Sort(names)
	names = slices.Compact(names)

	for _, f := range names {
		va, okA := a.Field(f)
		vb, okB := b.Field(f)
		switch {
		case okA && !okB:
			return -1
		case !okA && okB:
			return 1
		}
		if r := strings.Compare(va, vb); r != 0 {
			return r
		}
	}
	return 0
}

// deviationOrder is the ordering used for deviating entries in a result.
var deviationOrder = ComparatorStack[*bib.Entry]{
	CompareByCitationKey,
	CompareByFields,
}

// SortEntries sorts entries in place in report order: citation key first,
// whole-entry content as tie-breaker.
func SortEntries(entries []*bib.Entry) {
	slices.SortStableFunc(entries, deviationOrder.Compare)
}
