package library

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"sync"

	"github.com/nickng/bibtex"

	"github.com/Kaan0029/jabref/internal/bib"
)

// parseMu serializes bibtex.Parse, which keeps its state in package globals.
var parseMu sync.Mutex

// ParseBibTeX parses a BibTeX database. @string, @preamble and @comment
// blocks are not entries and are skipped by the parser.
func ParseBibTeX(r io.Reader) ([]*bib.Entry, error) {
	src, err := stripLineComments(r)
	if err != nil {
		return nil, err
	}

	parseMu.Lock()
	parsed, err := bibtex.Parse(src)
	parseMu.Unlock()
	if err != nil {
		return nil, err
	}

	records := make([]record, 0, len(parsed.Entries))
	for _, be := range parsed.Entries {
		if be == nil {
			continue
		}
		rec := record{Type: be.Type, Key: be.CiteName, Fields: make(map[string]string, len(be.Fields))}
		for name, value := range be.Fields {
			if value != nil {
				rec.Fields[name] = value.String()
			}
		}
		records = append(records, rec)
	}
	return recordsToEntries(records)
}

// stripLineComments drops lines starting with % that sit between blocks,
// such as the "% Encoding: UTF-8" header JabRef writes. The parser would
// otherwise treat the comment as running to the end of the input.
// Lines inside a braced block are kept as they are.
func stripLineComments(r io.Reader) (io.Reader, error) {
	var out bytes.Buffer
	depth := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxFileSize)
	for scanner.Scan() {
		line := scanner.Text()
		if depth == 0 && strings.HasPrefix(strings.TrimLeft(line, " \t"), "%") {
			continue
		}
		depth = max(0, depth+strings.Count(line, "{")-strings.Count(line, "}"))
		out.WriteString(line)
		out.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return &out, nil
}
