package consistency

import (
	"maps"

	"github.com/Kaan0029/jabref/internal/bib"
)

// group is the per-type outcome of the aggregation fold. It is read-only
// once aggregate returns.
type group struct {
	// union holds fields present on at least one entry of the type
	union FieldSet
	// common holds fields present on every entry of the type. It is seeded
	// by the first entry observed and only shrinks afterwards.
	common FieldSet
	// entries in first-seen order, without identity duplicates
	entries []*bib.Entry
}

// accumulator folds entries of one type into a group.
type accumulator struct {
	union  FieldSet
	common FieldSet
	seeded bool
	seen   map[*bib.Entry]struct{}
	order  []*bib.Entry
}

func newAccumulator() *accumulator {
	return &accumulator{
		union: make(FieldSet),
		seen:  make(map[*bib.Entry]struct{}),
	}
}

// add folds one entry's normalized field set into the accumulator.
func (a *accumulator) add(e *bib.Entry, fields FieldSet) {
	maps.Copy(a.union, fields)

	if !a.seeded {
		a.common = maps.Clone(fields)
		a.seeded = true
	} else {
		maps.DeleteFunc(a.common, func(f bib.Field, _ struct{}) bool {
			return !fields.Contains(f)
		})
	}

	if _, dup := a.seen[e]; !dup {
		a.seen[e] = struct{}{}
		a.order = append(a.order, e)
	}
}

func (a *accumulator) freeze() group {
	return group{
		union:   a.union,
		common:  a.common,
		entries: a.order,
	}
}

// aggregate groups entries by type in a single pass. Each entry is
// normalized exactly once here. Nil entries are skipped.
func aggregate(entries []*bib.Entry) map[bib.EntryType]group {
	accs := make(map[bib.EntryType]*accumulator)
	for _, e := range entries {
		if e == nil {
			continue
		}
		acc, ok := accs[e.Type]
		if !ok {
			acc = newAccumulator()
			accs[e.Type] = acc
		}
		acc.add(e, NormalizedFields(e))
	}

	groups := make(map[bib.EntryType]group, len(accs))
	for t, acc := range accs {
		groups[t] = acc.freeze()
	}
	return groups
}
