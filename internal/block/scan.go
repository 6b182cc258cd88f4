package block

import "strings"

// Match is a line whose text contains the diagnostic needle.
type Match struct {
	Line int
	Text string
}

// Scan reports lines containing needle, compared case-insensitively, among
// the first limit lines of source. It backs the "block not found" diagnostic:
// a loose substring match over the head of the document, bounded so a large
// file cannot flood the terminal.
func Scan(source []byte, needle string, limit int) []Match {
	needle = strings.ToLower(needle)

	var matches []Match

	for i, line := range splitLines(source) {
		if i >= limit {
			break
		}

		text := trimEOL(line)

		if strings.Contains(strings.ToLower(text), needle) {
			matches = append(matches, Match{Line: i + 1, Text: text})
		}
	}

	return matches
}
