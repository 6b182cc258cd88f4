package block

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/gobwas/glob"
	"github.com/google/shlex"
)

// Defaults reproduce the inline SVG brand block this tool was written to
// remove. Every value can be overridden per invocation.
const (
	DefaultStart   = `*<svg viewBox="0 0 24 24"*`
	DefaultEnd     = `*</svg>*`
	DefaultExclude = "auth-header-brand"
	DefaultNeedle  = "svg"
)

// Profile describes how block boundaries are recognized. Start and End are
// glob patterns matched against whole lines (without their terminators);
// Exclude is a substring that disqualifies a candidate start line; Needle
// drives the not-found diagnostic scan.
type Profile struct {
	Start   string
	End     string
	Exclude string
	Needle  string

	start glob.Glob
	end   glob.Glob
}

// New compiles a profile from the given patterns. Empty values fall back to
// the defaults.
func New(start, end, exclude, needle string) (*Profile, error) {
	if len(start) == 0 {
		start = DefaultStart
	}

	if len(end) == 0 {
		end = DefaultEnd
	}

	if len(needle) == 0 {
		needle = DefaultNeedle
	}

	p := &Profile{Start: start, End: end, Exclude: exclude, Needle: needle}

	var err error

	if p.start, err = glob.Compile(start); err != nil {
		return nil, err
	}

	if p.end, err = glob.Compile(end); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Profile) matchStart(line string) bool {
	if len(p.Exclude) != 0 && strings.Contains(line, p.Exclude) {
		return false
	}

	return p.start.Match(line)
}

func (p *Profile) matchEnd(line string) bool {
	return p.end.Match(line)
}

var reJSON = regexp.MustCompile(`^\s*{\s*["}]`)

// ParseProfile builds a profile from a marker spec string: either a JSON
// object or a list of key=value words with shell quoting. Recognized keys
// are start, end, exclude and needle.
func ParseProfile(input string) (*Profile, error) {
	fields, err := parseFields(input)
	if err != nil {
		return nil, err
	}

	return New(fields["start"], fields["end"], fields["exclude"], fields["needle"])
}

func parseFields(input string) (map[string]string, error) {
	if reJSON.MatchString(input) {
		var fields map[string]string

		if err := json.Unmarshal([]byte(input), &fields); err != nil {
			return nil, err
		}

		return fields, nil
	}

	words, err := shlex.Split(input)
	if err != nil {
		return nil, err
	}

	dict := make(map[string]string)

	for _, word := range words {
		idx := strings.IndexRune(word, '=')
		if idx >= 0 && idx < len(word) {
			dict[word[:idx]] = word[idx+1:]
		}
	}

	return dict, nil
}
