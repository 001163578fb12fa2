package consistency

import (
	"maps"
	"slices"

	"github.com/Kaan0029/jabref/internal/bib"
)

// explicitlyExcludedFields are fields that never count as structural
// differences between entries of the same type.
var explicitlyExcludedFields = map[bib.Field]struct{}{
	bib.FieldComment:  {},
	bib.FieldCrossref: {},
	bib.FieldGroups:   {},
	bib.FieldCites:    {},
	bib.FieldPDF:      {},
	bib.FieldReview:   {},
	bib.FieldSortKey:  {},
	bib.FieldSortName: {},
	bib.FieldType:     {},
	bib.FieldXRef:     {},
}

// FieldSet is an unordered set of fields.
type FieldSet map[bib.Field]struct{}

// NewFieldSet builds a set from the given fields.
func NewFieldSet(fields ...bib.Field) FieldSet {
	s := make(FieldSet, len(fields))
	for _, f := range fields {
		s[f] = struct{}{}
	}
	return s
}

// Contains reports whether f is in the set.
func (s FieldSet) Contains(f bib.Field) bool {
	_, ok := s[f]
	return ok
}

// Equal reports whether both sets hold exactly the same fields.
func (s FieldSet) Equal(other FieldSet) bool {
	if len(s) != len(other) {
		return false
	}
	for f := range s {
		if !other.Contains(f) {
			return false
		}
	}
	return true
}

// Union returns a new set with the fields of s and other.
func (s FieldSet) Union(other FieldSet) FieldSet {
	out := maps.Clone(s)
	if out == nil {
		out = make(FieldSet, len(other))
	}
	maps.Copy(out, other)
	return out
}

// Intersect returns a new set with the fields present in both s and other.
func (s FieldSet) Intersect(other FieldSet) FieldSet {
	out := make(FieldSet)
	for f := range s {
		if other.Contains(f) {
			out[f] = struct{}{}
		}
	}
	return out
}

// Difference returns a new set with the fields of s that are not in other.
func (s FieldSet) Difference(other FieldSet) FieldSet {
	out := make(FieldSet)
	for f := range s {
		if !other.Contains(f) {
			out[f] = struct{}{}
		}
	}
	return out
}

// Sorted returns the fields in lexical order.
func (s FieldSet) Sorted() []bib.Field {
	return slices.Sorted(maps.Keys(s))
}

// IsComparable reports whether a field takes part in the consistency
// comparison. Explicitly excluded, automatic, special and user-specific
// comment fields do not.
func IsComparable(f bib.Field) bool {
	if _, excluded := explicitlyExcludedFields[f]; excluded {
		return false
	}
	return !f.IsAutomatic() && !f.IsSpecial() && !f.IsUserSpecificComment()
}

// NormalizedFields returns the comparable subset of an entry's field set.
// Every comparison of field sets goes through this function.
func NormalizedFields(e *bib.Entry) FieldSet {
	out := make(FieldSet, len(e.Fields))
	for f, value := range e.Fields {
		if value == "" || !IsComparable(f) {
			continue
		}
		out[f] = struct{}{}
	}
	return out
}
