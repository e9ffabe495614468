package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// segmentSeparators become underscores before filtering.
var segmentSeparators = strings.NewReplacer(
	" ", "_",
	".", "_",
	"-", "_",
)

// CleanSegment reduces a folder name to letters, digits and underscores.
// Spaces, periods and hyphens become underscores first; every other rune that
// is not a letter, digit or underscore is dropped. Runs of underscores collapse
// to one, so "Trip - 2024" becomes "Trip_2024" while "_Private" keeps its
// leading underscore. The input is NFC-normalized so decomposed names (as stored by
// some filesystems) keep their accented letters instead of losing the
// combining marks. The result may be empty.
func CleanSegment(segment string) string {
	segment = segmentSeparators.Replace(norm.NFC.String(segment))
	var b strings.Builder
	b.Grow(len(segment))
	lastUnderscore := false
	for _, r := range segment {
		switch {
		case r == '_':
			if !lastUnderscore {
				b.WriteRune(r)
				lastUnderscore = true
			}
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastUnderscore = false
		}
	}
	return b.String()
}

// SplitPath splits a relative path on both '/' and '\\'. Empty and "."
// components are dropped.
func SplitPath(rel string) []string {
	fields := strings.FieldsFunc(rel, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	out := fields[:0]
	for _, f := range fields {
		if f == "." {
			continue
		}
		out = append(out, f)
	}
	return out
}
