package util

import "strings"

// MacroName derives a C macro identifier from a long-option name:
// uppercase, hyphens to underscores, prefix prepended. Total over any
// non-empty input.
func MacroName(prefix, name string) string {
	return prefix + strings.ReplaceAll(strings.ToUpper(name), "-", "_")
}
