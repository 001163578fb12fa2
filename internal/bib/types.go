package bib

// FieldUsage describes how an entry type declares a field.
type FieldUsage int

const (
	// UsageUnknown means the type does not declare the field, or the type
	// itself is not a standard one.
	UsageUnknown FieldUsage = iota
	UsageRequired
	UsageOptional
)

// Standard BibTeX entry types.
const (
	TypeArticle       EntryType = "article"
	TypeBook          EntryType = "book"
	TypeBooklet       EntryType = "booklet"
	TypeInBook        EntryType = "inbook"
	TypeInCollection  EntryType = "incollection"
	TypeInProceedings EntryType = "inproceedings"
	TypeManual        EntryType = "manual"
	TypeMastersThesis EntryType = "mastersthesis"
	TypeMisc          EntryType = "misc"
	TypePhdThesis     EntryType = "phdthesis"
	TypeProceedings   EntryType = "proceedings"
	TypeTechReport    EntryType = "techreport"
	TypeUnpublished   EntryType = "unpublished"
)

// TypeDefinition lists the fields a standard entry type declares.
// Alternatives such as "author or editor" are both listed as required.
type TypeDefinition struct {
	Type     EntryType
	Required []Field
	Optional []Field
}

var standardTypes = map[EntryType]TypeDefinition{
	TypeArticle: {
		Type:     TypeArticle,
		Required: []Field{FieldAuthor, FieldTitle, FieldJournal, FieldYear},
		Optional: []Field{FieldVolume, FieldNumber, FieldPages, FieldMonth, FieldNote, FieldDOI, FieldURL},
	},
	TypeBook: {
		Type:     TypeBook,
		Required: []Field{FieldAuthor, FieldEditor, FieldTitle, FieldPublisher, FieldYear},
		Optional: []Field{FieldVolume, FieldNumber, FieldSeries, FieldAddress, FieldEdition, FieldMonth, FieldNote, FieldDOI, FieldURL},
	},
	TypeBooklet: {
		Type:     TypeBooklet,
		Required: []Field{FieldTitle},
		Optional: []Field{FieldAuthor, FieldHowPublished, FieldAddress, FieldMonth, FieldYear, FieldNote, FieldURL},
	},
	TypeInBook: {
		Type:     TypeInBook,
		Required: []Field{FieldAuthor, FieldEditor, FieldTitle, FieldChapter, FieldPages, FieldPublisher, FieldYear},
		Optional: []Field{FieldVolume, FieldNumber, FieldSeries, FieldType, FieldAddress, FieldEdition, FieldMonth, FieldNote, FieldDOI, FieldURL},
	},
	TypeInCollection: {
		Type:     TypeInCollection,
		Required: []Field{FieldAuthor, FieldTitle, FieldBooktitle, FieldPublisher, FieldYear},
		Optional: []Field{FieldEditor, FieldVolume, FieldNumber, FieldSeries, FieldType, FieldChapter, FieldPages, FieldAddress, FieldEdition, FieldMonth, FieldNote, FieldDOI, FieldURL},
	},
	TypeInProceedings: {
		Type:     TypeInProceedings,
		Required: []Field{FieldAuthor, FieldTitle, FieldBooktitle, FieldYear},
		Optional: []Field{FieldEditor, FieldVolume, FieldNumber, FieldSeries, FieldPages, FieldAddress, FieldMonth, FieldOrganization, FieldPublisher, FieldNote, FieldDOI, FieldURL},
	},
	TypeManual: {
		Type:     TypeManual,
		Required: []Field{FieldTitle},
		Optional: []Field{FieldAuthor, FieldOrganization, FieldAddress, FieldEdition, FieldMonth, FieldYear, FieldNote, FieldURL},
	},
	TypeMastersThesis: {
		Type:     TypeMastersThesis,
		Required: []Field{FieldAuthor, FieldTitle, FieldSchool, FieldYear},
		Optional: []Field{FieldType, FieldAddress, FieldMonth, FieldNote, FieldURL},
	},
	TypeMisc: {
		Type:     TypeMisc,
		Optional: []Field{FieldAuthor, FieldTitle, FieldHowPublished, FieldMonth, FieldYear, FieldNote, FieldDOI, FieldURL},
	},
	TypePhdThesis: {
		Type:     TypePhdThesis,
		Required: []Field{FieldAuthor, FieldTitle, FieldSchool, FieldYear},
		Optional: []Field{FieldType, FieldAddress, FieldMonth, FieldNote, FieldURL},
	},
	TypeProceedings: {
		Type:     TypeProceedings,
		Required: []Field{FieldTitle, FieldYear},
		Optional: []Field{FieldEditor, FieldVolume, FieldNumber, FieldSeries, FieldAddress, FieldMonth, FieldOrganization, FieldPublisher, FieldNote, FieldDOI, FieldURL},
	},
	TypeTechReport: {
		Type:     TypeTechReport,
		Required: []Field{FieldAuthor, FieldTitle, FieldInstitution, FieldYear},
		Optional: []Field{FieldType, FieldNumber, FieldAddress, FieldMonth, FieldNote, FieldURL},
	},
	TypeUnpublished: {
		Type:     TypeUnpublished,
		Required: []Field{FieldAuthor, FieldTitle, FieldNote},
		Optional: []Field{FieldMonth, FieldYear, FieldURL},
	},
}

// LookupType returns the standard definition of an entry type.
func LookupType(t EntryType) (TypeDefinition, bool) {
	def, ok := standardTypes[t]
	return def, ok
}

// Usage reports how the definition declares a field.
func (d TypeDefinition) Usage(field Field) FieldUsage {
	for _, f := range d.Required {
		if f == field {
			return UsageRequired
		}
	}
	for _, f := range d.Optional {
		if f == field {
			return UsageOptional
		}
	}
	return UsageUnknown
}

// FieldUsageFor reports how the given entry type declares a field;
// non-standard types always yield UsageUnknown.
func FieldUsageFor(t EntryType, field Field) FieldUsage {
	def, ok := LookupType(t)
	if !ok {
		return UsageUnknown
	}
	return def.Usage(field)
}
