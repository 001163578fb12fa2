package library

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/antonholmquist/jason"

	"github.com/Kaan0029/jabref/internal/bib"
)

var (
	jsonDocumentKeys = []string{"entries"}
	jsonRecordKeys   = []string{"type", "key", "fields"}
)

// ParseJSONRecords decodes a JSON record file. The layout matches the YAML
// record file. Field values may be strings, numbers or booleans; null
// values are treated as absent.
func ParseJSONRecords(r io.Reader) ([]*bib.Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []*bib.Entry{}, nil
	}

	doc, err := jason.NewObjectFromBytes(data)
	if err != nil {
		return nil, err
	}
	if err := checkKeys(doc, jsonDocumentKeys, "document"); err != nil {
		return nil, err
	}
	if _, ok := doc.Map()["entries"]; !ok {
		return []*bib.Entry{}, nil
	}

	objects, err := doc.GetObjectArray("entries")
	if err != nil {
		return nil, fmt.Errorf("entries must be an array of objects: %w", err)
	}

	records := make([]record, 0, len(objects))
	for i, obj := range objects {
		rec, err := jsonRecord(obj)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		records = append(records, rec)
	}
	return recordsToEntries(records)
}

func jsonRecord(obj *jason.Object) (record, error) {
	var rec record
	if err := checkKeys(obj, jsonRecordKeys, "entry"); err != nil {
		return rec, err
	}

	values := obj.Map()
	if v, ok := values["type"]; ok {
		s, err := v.String()
		if err != nil {
			return rec, fmt.Errorf("type must be a string")
		}
		rec.Type = s
	}
	if v, ok := values["key"]; ok && v.Null() != nil {
		s, err := v.String()
		if err != nil {
			return rec, fmt.Errorf("key must be a string")
		}
		rec.Key = s
	}

	if _, ok := values["fields"]; !ok {
		return rec, nil
	}
	fields, err := obj.GetObject("fields")
	if err != nil {
		return rec, fmt.Errorf("fields must be an object")
	}
	rec.Fields = make(map[string]string, len(fields.Map()))
	for name, v := range fields.Map() {
		value, present, err := scalarString(v)
		if err != nil {
			return rec, fmt.Errorf("field %s: %w", name, err)
		}
		if present {
			rec.Fields[name] = value
		}
	}
	return rec, nil
}

// scalarString renders a JSON scalar as field text
func scalarString(v *jason.Value) (string, bool, error) {
	if v.Null() == nil {
		return "", false, nil
	}
	if s, err := v.String(); err == nil {
		return s, true, nil
	}
	if n, err := v.Number(); err == nil {
		return n.String(), true, nil
	}
	if b, err := v.Boolean(); err == nil {
		return strconv.FormatBool(b), true, nil
	}
	return "", false, fmt.Errorf("value must be a string, number or boolean")
}

// checkKeys rejects unknown keys so typos do not silently drop data
func checkKeys(obj *jason.Object, allowed []string, what string) error {
	for key := range obj.Map() {
		if !slices.Contains(allowed, key) {
			return fmt.Errorf("unknown %s key %q", what, key)
		}
	}
	return nil
}
