package consistency

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Kaan0029/jabref/internal/bib"
)

func TestCompareByCitationKey(t *testing.T) {
	t.Parallel()

	a := bib.NewEntry(bib.TypeArticle, "Alpha")
	b := bib.NewEntry(bib.TypeArticle, "Beta")
	none := bib.NewEntry(bib.TypeArticle, "")
	none2 := bib.NewEntry(bib.TypeArticle, "")

	assert.Negative(t, CompareByCitationKey(a, b))
	assert.Positive(t, CompareByCitationKey(b, a))
	assert.Zero(t, CompareByCitationKey(a, a))
	assert.Negative(t, CompareByCitationKey(a, none), "present keys sort before missing ones")
	assert.Positive(t, CompareByCitationKey(none, b))
	assert.Zero(t, CompareByCitationKey(none, none2))
}

func TestCompareByFields(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		a, b *bib.Entry
		want int
	}{
		{
			name: "type decides first",
			a:    bib.NewEntry(bib.TypeArticle, "").WithField(bib.FieldTitle, "Z"),
			b:    bib.NewEntry(bib.TypeBook, "").WithField(bib.FieldTitle, "A"),
			want: -1,
		},
		{
			name: "present field sorts before absent field",
			a:    bib.NewEntry(bib.TypeArticle, "").WithField(bib.FieldAuthor, "X"),
			b:    bib.NewEntry(bib.TypeArticle, "").WithField(bib.FieldTitle, "X"),
			want: -1,
		},
		{
			name: "values compare lexically",
			a:    bib.NewEntry(bib.TypeArticle, "").WithField(bib.FieldTitle, "B"),
			b:    bib.NewEntry(bib.TypeArticle, "").WithField(bib.FieldTitle, "A"),
			want: 1,
		},
		{
			name: "identical content ties",
			a:    bib.NewEntry(bib.TypeArticle, "").WithField(bib.FieldTitle, "A"),
			b:    bib.NewEntry(bib.TypeArticle, "").WithField(bib.FieldTitle, "A"),
			want: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := CompareByFields(tc.a, tc.b)
			switch {
			case tc.want < 0:
				assert.Negative(t, got)
			case tc.want > 0:
				assert.Positive(t, got)
			default:
				assert.Zero(t, got)
			}
		})
	}
}

func TestComparatorStackStopsAtFirstDifference(t *testing.T) {
	t.Parallel()

	calls := 0
	counting := func(a, b int) int {
		calls++
		return 0
	}
	stack := ComparatorStack[int]{
		func(a, b int) int { return a - b },
		counting,
	}

	assert.Negative(t, stack.Compare(1, 2))
	assert.Equal(t, 0, calls, "second comparator must not run when the first decides")

	assert.Zero(t, stack.Compare(3, 3))
	assert.Equal(t, 1, calls)
}

func TestSortEntriesIsDeterministic(t *testing.T) {
	t.Parallel()

	noKeyB := bib.NewEntry(bib.TypeArticle, "").WithField(bib.FieldTitle, "B")
	noKeyA := bib.NewEntry(bib.TypeArticle, "").WithField(bib.FieldTitle, "A")
	dupKey2 := bib.NewEntry(bib.TypeArticle, "Dup").WithField(bib.FieldYear, "2001")
	dupKey1 := bib.NewEntry(bib.TypeArticle, "Dup").WithField(bib.FieldYear, "2000")
	first := bib.NewEntry(bib.TypeArticle, "Aardvark")

	entries := []*bib.Entry{noKeyB, dupKey2, noKeyA, first, dupKey1}
	SortEntries(entries)

	want := []*bib.Entry{first, dupKey1, dupKey2, noKeyA, noKeyB}
	assert.Equal(t, want, entries)

	// Re-sorting an already sorted slice is a no-op
	again := slices.Clone(entries)
	SortEntries(again)
	assert.Equal(t, entries, again)

	// Any input permutation yields the same order
	reversed := slices.Clone(want)
	slices.Reverse(reversed)
	SortEntries(reversed)
	assert.Equal(t, want, reversed)
}
