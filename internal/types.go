package internal

// RawEntry is one table row as written in the source: the quoted option name
// and the text of the tuple's last field as captured, whitespace before the
// closing brace intact.
type RawEntry struct {
	Name  string
	Value string
}

// MacroEntry is a row after normalization: the derived macro identifier and
// the trimmed value text. The value is compared and emitted as text, never
// evaluated.
type MacroEntry struct {
	Name  string
	Value string
}

// ReportRow describes one parsed tuple for the xlsx review sheet, including
// rows the dedupe filter dropped.
type ReportRow struct {
	Index       int
	OptionName  string
	MacroName   string
	Value       string
	Kept        bool
	DuplicateOf string
}

type RunRecord struct {
	ID         int
	SourcePath string
	SourceHash string
	OutputPath string
	EntryCount int
	Status     string
	Error      string
	CreatedAt  string
}
