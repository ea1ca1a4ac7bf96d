package pipeline

import (
	"regexp"

	"longoptgen/internal"
)

// Four-field tuple: quoted name, two fields we ignore, then everything after
// the third comma up to the tuple's closing brace. Interior commentary in the
// ignored fields is tolerated as long as it contains no comma or brace that
// breaks the shape.
var entryPattern = regexp.MustCompile(`\{\s*"(?P<name>[^"]+)"\s*,\s*[^,]+,\s*[^,]+,\s*(?P<value>[^}]+)\}`)

// ParseEntries scans the table body for option tuples in source order.
// Rows that do not match the four-field shape are skipped without error;
// a malformed row must never abort a run.
func ParseEntries(tableBody string) []internal.RawEntry {
	matches := entryPattern.FindAllStringSubmatch(tableBody, -1)
	out := make([]internal.RawEntry, 0, len(matches))
	for _, m := range matches {
		out = append(out, internal.RawEntry{Name: m[1], Value: m[2]})
	}
	return out
}
