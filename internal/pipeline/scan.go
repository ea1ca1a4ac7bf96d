package pipeline

import (
	"fmt"
	"regexp"
)

// SourceScanner locates the two structural regions the pipeline works on.
// The data flow downstream only sees the captured substrings, so the matching
// strategy can be swapped for a real tokenizer behind this interface.
type SourceScanner interface {
	LocateFunctionBody(sourceText, functionName string) (string, error)
	LocateArrayBody(bodyText, recordTypeName, tableName string) (string, error)
}

// RegexScanner matches the way the original build script did: shallow,
// line-oriented patterns, not a brace-balanced scan.
//
// Known limitation: the function body is taken to end at the first line whose
// only content apart from whitespace is a closing brace, and the array at the
// first "};". A nested block closed on its own line before the real end would
// truncate the capture. This is a deliberate scope boundary.
type RegexScanner struct{}

func (RegexScanner) LocateFunctionBody(sourceText, functionName string) (string, error) {
	re, err := regexp.Compile(`(?s)\b` + regexp.QuoteMeta(functionName) + `\s*\([^)]*\)\s*\{(.*?)\n[ \t]*\}[ \t]*(?:\r?\n|$)`)
	if err != nil {
		return "", fmt.Errorf("function pattern for %q: %w", functionName, err)
	}
	m := re.FindStringSubmatch(sourceText)
	if m == nil {
		return "", &StructureNotFoundError{Kind: StructureFunction, Name: functionName}
	}
	return m[1], nil
}

func (RegexScanner) LocateArrayBody(bodyText, recordTypeName, tableName string) (string, error) {
	re, err := regexp.Compile(`(?s)static\s+const\s+struct\s+` + regexp.QuoteMeta(recordTypeName) + `\s+` + regexp.QuoteMeta(tableName) + `\s*\[\]\s*=\s*\{(.*?)\};`)
	if err != nil {
		return "", fmt.Errorf("table pattern for %q: %w", tableName, err)
	}
	m := re.FindStringSubmatch(bodyText)
	if m == nil {
		return "", &StructureNotFoundError{Kind: StructureTable, Name: tableName}
	}
	return m[1], nil
}
