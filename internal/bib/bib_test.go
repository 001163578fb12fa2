package bib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseField(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input string
		want  Field
	}{
		{"lower case", "title", FieldTitle},
		{"upper case", "TITLE", FieldTitle},
		{"mixed case with spaces", "  JournalTitle ", Field("journaltitle")},
		{"decomposed umlaut is composed", "u\u0308bersetzer", Field("\u00fcbersetzer")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ParseField(tc.input))
		})
	}
}

func TestFieldCategories(t *testing.T) {
	t.Parallel()

	assert.True(t, FieldOwner.IsAutomatic())
	assert.True(t, FieldTimestamp.IsAutomatic())
	assert.False(t, FieldTitle.IsAutomatic())

	assert.True(t, FieldRanking.IsSpecial())
	assert.True(t, FieldPrinted.IsSpecial())
	assert.False(t, FieldAuthor.IsSpecial())

	assert.True(t, UserSpecificCommentField("alice").IsUserSpecificComment())
	assert.True(t, Field("comment-bob").IsUserSpecificComment())
	assert.False(t, Field("comment-").IsUserSpecificComment(), "prefix without user name")
	assert.False(t, FieldComment.IsUserSpecificComment())
}

func TestEntrySetField(t *testing.T) {
	t.Parallel()

	e := NewEntry(TypeArticle, "Smith2020").
		WithField(FieldTitle, "A title").
		WithField(FieldYear, "2020")

	assert.True(t, e.HasField(FieldTitle))
	assert.Equal(t, []Field{FieldTitle, FieldYear}, e.FieldNames())

	// Empty values clear the field
	e.SetField(FieldYear, "")
	assert.False(t, e.HasField(FieldYear))
	assert.Equal(t, []Field{FieldTitle}, e.FieldNames())

	value, ok := e.Field(FieldTitle)
	require.True(t, ok)
	assert.Equal(t, "A title", value)
}

func TestEntryZeroValueSetField(t *testing.T) {
	t.Parallel()

	var e Entry
	e.SetField(FieldNote, "n")
	assert.True(t, e.HasField(FieldNote))
	assert.False(t, e.HasCitationKey())
}

func TestEntryClone(t *testing.T) {
	t.Parallel()

	original := NewEntry(TypeBook, "b1").WithField(FieldTitle, "T")
	clone := original.Clone()
	clone.SetField(FieldNote, "only on clone")

	assert.False(t, original.HasField(FieldNote))
	assert.Equal(t, original.CitationKey, clone.CitationKey)
}

func TestFieldUsageFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, UsageRequired, FieldUsageFor(TypeArticle, FieldJournal))
	assert.Equal(t, UsageOptional, FieldUsageFor(TypeArticle, FieldNote))
	assert.Equal(t, UsageUnknown, FieldUsageFor(TypeArticle, FieldSchool))
	assert.Equal(t, UsageUnknown, FieldUsageFor(EntryType("dataset"), FieldTitle))
	assert.Equal(t, TypeMisc, ParseEntryType(" MISC "))
}
