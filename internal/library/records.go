package library

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Kaan0029/jabref/internal/bib"
)

// recordFile is the on-disk layout of .yaml and .json record files:
//
//	entries:
//	  - type: article
//	    key: Knuth1984
//	    fields:
//	      author: Donald E. Knuth
//	      year: 1984
type recordFile struct {
	Entries []record `yaml:"entries"`
}

type record struct {
	Type   string            `yaml:"type"`
	Key    string            `yaml:"key"`
	Fields map[string]string `yaml:"fields"`
}

// ParseRecords decodes a YAML record file.
func ParseRecords(r io.Reader) ([]*bib.Entry, error) {
	var doc recordFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty document
			return []*bib.Entry{}, nil
		}
		return nil, err
	}

	return recordsToEntries(doc.Entries)
}

func recordsToEntries(records []record) ([]*bib.Entry, error) {
	entries := make([]*bib.Entry, 0, len(records))
	for i, rec := range records {
		entryType := bib.ParseEntryType(rec.Type)
		if entryType == "" {
			return nil, fmt.Errorf("entry %d has no type", i+1)
		}
		e := bib.NewEntry(entryType, strings.TrimSpace(rec.Key))
		given := make(map[bib.Field]string, len(rec.Fields))
		for _, name := range slices.Sorted(maps.Keys(rec.Fields)) {
			field := bib.ParseField(name)
			if first, dup := given[field]; dup {
				return nil, fmt.Errorf("entry %d: fields %q and %q name the same field", i+1, first, name)
			}
			given[field] = name
			e.SetField(field, strings.TrimSpace(rec.Fields[name]))
		}
		entries = append(entries, e)
	}
	return entries, nil
}
