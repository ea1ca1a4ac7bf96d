package pipeline

import (
	"strings"

	"longoptgen/internal"
	"longoptgen/internal/util"
)

// ResolveEntries derives macro entries from raw rows and drops rows whose
// trimmed value text has already been seen. First occurrence wins; surviving
// entries keep their original relative order. Values are compared as exact
// strings, so two expressions that would evaluate equal both survive.
func ResolveEntries(prefix string, raw []internal.RawEntry) []internal.MacroEntry {
	seen := map[string]struct{}{}
	out := make([]internal.MacroEntry, 0, len(raw))
	for _, entry := range raw {
		value := strings.TrimSpace(entry.Value)
		if _, dup := seen[value]; dup {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, internal.MacroEntry{
			Name:  util.MacroName(prefix, entry.Name),
			Value: value,
		})
	}
	return out
}

// ReportRows is the dedupe pass again, but keeping the dropped rows and
// recording which macro first claimed each value. Feeds the xlsx review
// sheet; the emitted header never sees dropped rows.
func ReportRows(prefix string, raw []internal.RawEntry) []internal.ReportRow {
	firstByValue := map[string]string{}
	out := make([]internal.ReportRow, 0, len(raw))
	for i, entry := range raw {
		value := strings.TrimSpace(entry.Value)
		macro := util.MacroName(prefix, entry.Name)
		row := internal.ReportRow{
			Index:      i + 1,
			OptionName: entry.Name,
			MacroName:  macro,
			Value:      value,
		}
		if first, dup := firstByValue[value]; dup {
			row.DuplicateOf = first
		} else {
			row.Kept = true
			firstByValue[value] = macro
		}
		out = append(out, row)
	}
	return out
}
