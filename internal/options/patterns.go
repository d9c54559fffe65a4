package options

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// PatternMapping pairs a compiled regular expression with the value that
// applies when the pattern matches.
type PatternMapping struct {
	Pattern *regexp.Regexp
	Value   string
}

// PatternList is an ordered sequence of pattern/value pairs. Order is
// significant: resolution scans the list front to back and the first
// matching pattern wins, so lists must preserve configuration order.
type PatternList []PatternMapping

// Resolve returns the value of the first pattern matching input. The
// second result distinguishes "no pattern matched" from "matched with an
// empty value"; on a miss the caller falls back to its own default.
func (pl PatternList) Resolve(input string) (string, bool) {
	for _, m := range pl {
		if m.Pattern.MatchString(input) {
			return m.Value, true
		}
	}
	return "", false
}

// Matches reports whether any pattern in the list matches input.
func (pl PatternList) Matches(input string) bool {
	_, ok := pl.Resolve(input)
	return ok
}

// CompilePatterns compiles ordered (pattern, value) string pairs into a
// PatternList, preserving order. It is the only fallible step of record
// construction; a malformed pattern aborts with the offending source.
func CompilePatterns(pairs [][2]string) (PatternList, error) {
	list := make(PatternList, 0, len(pairs))
	for _, p := range pairs {
		re, err := regexp.Compile(p[0])
		if err != nil {
			return nil, fmt.Errorf("compile pattern %q: %w", p[0], err)
		}
		list = append(list, PatternMapping{Pattern: re, Value: p[1]})
	}
	return list, nil
}

// PathPrefixList is an ordered list of path prefixes used for
// inclusion filtering.
type PathPrefixList []string

// Matches reports whether path starts with any configured prefix after
// normalizing directory separators for the host platform.
//
// The comparison is a raw, case-sensitive string-prefix test, not a
// path-segment-boundary test: a configured prefix of "src/foo" also
// matches "src/foobar/x.js". This is long-standing behavior that callers
// depend on; do not tighten it to segment-aware matching.
func (pp PathPrefixList) Matches(path string) bool {
	p := filepath.FromSlash(path)
	for _, prefix := range pp {
		if strings.HasPrefix(p, filepath.FromSlash(prefix)) {
			return true
		}
	}
	return false
}
