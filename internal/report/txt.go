package report

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Kaan0029/jabref/internal/consistency"
)

// EmptyResultNotice is printed by the text writer when nothing deviates
const EmptyResultNotice = "No field inconsistencies found."

const columnSeparator = " | "

// WriteTXT writes the result table with aligned columns, a title-cased
// header and a separator line below it.
func WriteTXT(w io.Writer, result consistency.Result) error {
	bw := bufio.NewWriter(w)

	if result.IsEmpty() {
		if _, err := bw.WriteString(EmptyResultNotice + "\n"); err != nil {
			return err
		}
		return bw.Flush()
	}

	table := BuildTable(result)
	caser := cases.Title(language.English)

	header := table.Header()
	header[0] = caser.String(header[0])
	header[1] = caser.String(header[1])

	lines := make([][]string, 0, len(table.Rows)+1)
	lines = append(lines, header)
	for _, row := range table.Rows {
		line := make([]string, 0, len(header))
		line = append(line, caser.String(row.EntryType.String()), row.CitationKey)
		line = append(line, row.Cells...)
		lines = append(lines, line)
	}

	widths := columnWidths(lines)

	if err := writeLine(bw, lines[0], widths); err != nil {
		return err
	}
	if err := writeSeparator(bw, widths); err != nil {
		return err
	}
	for _, line := range lines[1:] {
		if err := writeLine(bw, line, widths); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func columnWidths(lines [][]string) []int {
	widths := make([]int, len(lines[0]))
	for _, line := range lines {
		for i, cell := range line {
			widths[i] = max(widths[i], utf8.RuneCountInString(cell))
		}
	}
	return widths
}

func writeLine(w *bufio.Writer, cells []string, widths []int) error {
	var sb strings.Builder
	for i, cell := range cells {
		if i > 0 {
			sb.WriteString(columnSeparator)
		}
		sb.WriteString(cell)
		// The last column is not padded so lines carry no trailing blanks
		if i < len(cells)-1 {
			sb.WriteString(strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell)))
		}
	}
	sb.WriteByte('\n')
	_, err := w.WriteString(sb.String())
	return err
}

func writeSeparator(w *bufio.Writer, widths []int) error {
	var sb strings.Builder
	for i, width := range widths {
		if i > 0 {
			sb.WriteString("-+-")
		}
		sb.WriteString(strings.Repeat("-", width))
	}
	sb.WriteByte('\n')
	_, err := w.WriteString(sb.String())
	return err
}
