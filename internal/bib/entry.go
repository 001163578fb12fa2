// Package bib holds the bibliographic record model shared by the loader,
// the consistency checker and the report writers.
package bib

import (
	"maps"
	"slices"
	"strings"
)

// EntryType identifies the schema category of an entry, e.g. "article".
type EntryType string

// ParseEntryType lower-cases and trims a raw entry type name.
func ParseEntryType(name string) EntryType {
	return EntryType(strings.ToLower(strings.TrimSpace(name)))
}

// String returns the entry type name.
func (t EntryType) String() string {
	return string(t)
}

// Entry is a single bibliographic record. Only field presence matters to the
// checker; values are kept for reporting and deterministic ordering.
type Entry struct {
	Type        EntryType
	CitationKey string // empty when the entry has no key
	Fields      map[Field]string
}

// NewEntry creates an entry of the given type with no fields.
func NewEntry(entryType EntryType, citationKey string) *Entry {
	return &Entry{
		Type:        entryType,
		CitationKey: citationKey,
		Fields:      make(map[Field]string),
	}
}

// WithField sets a field and returns the entry for chaining.
func (e *Entry) WithField(field Field, value string) *Entry {
	e.SetField(field, value)
	return e
}

// SetField sets the value of a field. An empty value clears the field, so
// the field set always holds exactly the fields that carry a value.
func (e *Entry) SetField(field Field, value string) {
	if e.Fields == nil {
		e.Fields = make(map[Field]string)
	}
	if value == "" {
		delete(e.Fields, field)
		return
	}
	e.Fields[field] = value
}

// Field returns the value of a field and whether it is set.
func (e *Entry) Field(field Field) (string, bool) {
	value, ok := e.Fields[field]
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// HasField reports whether the field carries a value.
func (e *Entry) HasField(field Field) bool {
	_, ok := e.Field(field)
	return ok
}

// HasCitationKey reports whether the entry has a non-empty citation key.
func (e *Entry) HasCitationKey() bool {
	return e.CitationKey != ""
}

// FieldNames returns the names of all set fields in lexical order.
func (e *Entry) FieldNames() []Field {
	names := make([]Field, 0, len(e.Fields))
	for field, value := range e.Fields {
		if value != "" {
			names = append(names, field)
		}
	}
	slices.Sort(names)
	return names
}

// Clone returns a deep copy of the entry.
func (e *Entry) Clone() *Entry {
	return &Entry{
		Type:        e.Type,
		CitationKey: e.CitationKey,
		Fields:      maps.Clone(e.Fields),
	}
}
