package bib

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Field identifies a named attribute slot on an entry. Names are stored in
// lower case, as BibTeX field names are case-insensitive.
type Field string

// Standard fields referenced by the checker and the type definitions.
const (
	FieldAbstract     Field = "abstract"
	FieldAddress      Field = "address"
	FieldAuthor       Field = "author"
	FieldBooktitle    Field = "booktitle"
	FieldChapter      Field = "chapter"
	FieldCites        Field = "cites"
	FieldComment      Field = "comment"
	FieldCrossref     Field = "crossref"
	FieldDOI          Field = "doi"
	FieldEdition      Field = "edition"
	FieldEditor       Field = "editor"
	FieldGroups       Field = "groups"
	FieldHowPublished Field = "howpublished"
	FieldInstitution  Field = "institution"
	FieldJournal      Field = "journal"
	FieldKey          Field = "key"
	FieldKeywords     Field = "keywords"
	FieldMonth        Field = "month"
	FieldNote         Field = "note"
	FieldNumber       Field = "number"
	FieldOrganization Field = "organization"
	FieldPages        Field = "pages"
	FieldPDF          Field = "pdf"
	FieldPublisher    Field = "publisher"
	FieldReview       Field = "review"
	FieldSchool       Field = "school"
	FieldSeries       Field = "series"
	FieldSortKey      Field = "sortkey"
	FieldSortName     Field = "sortname"
	FieldTitle        Field = "title"
	FieldType         Field = "type"
	FieldURL          Field = "url"
	FieldVolume       Field = "volume"
	FieldXRef         Field = "xref"
	FieldYear         Field = "year"

	// Automatic fields are maintained by tooling, not authored.
	FieldOwner            Field = "owner"
	FieldTimestamp        Field = "timestamp"
	FieldCreationDate     Field = "creationdate"
	FieldModificationDate Field = "modificationdate"

	// Special fields mark workflow state in reference managers.
	FieldRanking        Field = "ranking"
	FieldPriority       Field = "priority"
	FieldRelevance      Field = "relevance"
	FieldQualityAssured Field = "qualityassured"
	FieldReadStatus     Field = "readstatus"
	FieldPrinted        Field = "printed"
)

// userCommentPrefix starts every per-user comment field, e.g. "comment-alice".
const userCommentPrefix = "comment-"

var automaticFields = map[Field]struct{}{
	FieldOwner:            {},
	FieldTimestamp:        {},
	FieldCreationDate:     {},
	FieldModificationDate: {},
}

var specialFields = map[Field]struct{}{
	FieldRanking:        {},
	FieldPriority:       {},
	FieldRelevance:      {},
	FieldQualityAssured: {},
	FieldReadStatus:     {},
	FieldPrinted:        {},
}

// ParseField converts a raw field name into a Field: surrounding space is
// trimmed, the name is NFC-normalized and lower-cased.
func ParseField(name string) Field {
	return Field(strings.ToLower(norm.NFC.String(strings.TrimSpace(name))))
}

// String returns the field name.
func (f Field) String() string {
	return string(f)
}

// IsAutomatic reports whether the field is derived by tooling (owner, timestamps).
func (f Field) IsAutomatic() bool {
	_, ok := automaticFields[f]
	return ok
}

// IsSpecial reports whether the field is a reference-manager workflow marker.
func (f Field) IsSpecial() bool {
	_, ok := specialFields[f]
	return ok
}

// IsUserSpecificComment reports whether the field is a per-user annotation
// of the form "comment-<username>".
func (f Field) IsUserSpecificComment() bool {
	name := string(f)
	return strings.HasPrefix(name, userCommentPrefix) && len(name) > len(userCommentPrefix)
}

// UserSpecificCommentField returns the comment field owned by the given user.
func UserSpecificCommentField(username string) Field {
	return ParseField(userCommentPrefix + username)
}
