// File: services/extraction/table.go
package extraction

import "strings"

// Table is a line-oriented view over the semi-structured state table the
// chat model produces. Row location is a best-effort keyword heuristic: the
// upstream text is model-generated, not a strict format, so matching
// tolerates numbering, extra whitespace and drifting punctuation.
type Table struct {
	lines []string
}

// ParseTable splits the raw table text into lines for keyword lookup.
func ParseTable(text string) *Table {
	return &Table{lines: strings.Split(text, "\n")}
}

// FindRow returns the value segment of the first line containing all of the
// given lowercase keywords, case-insensitively. Rows use a pipe separator;
// both `label | value` and `# | label | value` layouts are accepted, the
// last pipe-delimited segment being the value. The second result is false
// when no line matches.
func (t *Table) FindRow(keywords []string) (string, bool) {
	for _, line := range t.lines {
		if !containsAll(strings.ToLower(line), keywords) {
			continue
		}
		parts := strings.Split(line, "|")
		return strings.TrimSpace(parts[len(parts)-1]), true
	}
	return "", false
}

func containsAll(line string, keywords []string) bool {
	for _, kw := range keywords {
		if !strings.Contains(line, kw) {
			return false
		}
	}
	return true
}
