// Package block removes marker-delimited runs of lines from text documents.
package block

import (
	"bytes"
	"errors"
	"strings"
)

// Block is the 1-based inclusive line range of a removed run.
type Block struct {
	StartLine int
	EndLine   int
}

// Range is a 1-based inclusive line range.
type Range struct {
	Start int
	End   int
}

// Options control how Strip scans the document.
type Options struct {
	// All removes every matching block instead of only the first.
	All bool

	// Truncate permits a block whose end marker never appears: the run from
	// the start marker to end of input is removed. Without it such input is
	// rejected with ErrUnterminated.
	Truncate bool

	// Within restricts start-marker matching to the given line ranges.
	// A nil slice places no restriction; an empty non-nil slice permits
	// no matches at all.
	Within []Range
}

// ErrUnterminated is returned by [Strip] when a start marker is matched but
// no end marker follows before end of input.
var ErrUnterminated = errors.New("unterminated block")

type scanState int

const (
	outside scanState = iota
	inside
)

// Strip removes the first run of lines opened by a line matching the
// profile's start pattern and closed by the first subsequent line matching
// its end pattern, both lines inclusive. With Options.All every such run is
// removed. All other lines, including their terminators, are emitted
// byte-for-byte in their original order. When no block is found the returned
// output is nil and the block slice is empty; the input is never modified.
func Strip(source []byte, p *Profile, opts Options) ([]byte, []Block, error) {
	lines := splitLines(source)

	var (
		out    []byte
		blocks []Block
		cur    Block
	)

	state := outside
	done := false

	for i, line := range lines {
		n := i + 1

		switch state {
		case outside:
			if !done && within(opts.Within, n) && p.matchStart(trimEOL(line)) {
				state = inside
				cur = Block{StartLine: n}

				continue
			}

			out = append(out, line...)
		case inside:
			if p.matchEnd(trimEOL(line)) {
				state = outside
				cur.EndLine = n
				blocks = append(blocks, cur)

				if !opts.All {
					done = true
				}
			}
		}
	}

	if state == inside {
		if !opts.Truncate {
			return nil, nil, ErrUnterminated
		}

		cur.EndLine = len(lines)
		blocks = append(blocks, cur)
	}

	if len(blocks) == 0 {
		return nil, nil, nil
	}

	return out, blocks, nil
}

func within(ranges []Range, line int) bool {
	if ranges == nil {
		return true
	}

	for _, r := range ranges {
		if line >= r.Start && line <= r.End {
			return true
		}
	}

	return false
}

func trimEOL(line []byte) string {
	return strings.TrimRight(string(line), "\r\n")
}

func splitLines(source []byte) [][]byte {
	var lines [][]byte

	for len(source) > 0 {
		idx := bytes.IndexByte(source, '\n')
		if idx < 0 {
			lines = append(lines, source)

			break
		}

		lines = append(lines, source[:idx+1])
		source = source[idx+1:]
	}

	return lines
}
