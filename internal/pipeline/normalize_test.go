package pipeline

import (
	"testing"

	"longoptgen/internal"
)

func TestResolveEntriesDistinctValues(t *testing.T) {
	raw := []internal.RawEntry{
		{Name: "help", Value: "300"},
		{Name: "license", Value: "301"},
		{Name: "version", Value: "302"},
	}
	entries := ResolveEntries("LONGOPT_", raw)
	if len(entries) != 3 {
		t.Fatalf("len=%d", len(entries))
	}
	want := []internal.MacroEntry{
		{Name: "LONGOPT_HELP", Value: "300"},
		{Name: "LONGOPT_LICENSE", Value: "301"},
		{Name: "LONGOPT_VERSION", Value: "302"},
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Fatalf("entry %d: got %+v want %+v", i, entries[i], want[i])
		}
	}
}

func TestResolveEntriesFirstValueWins(t *testing.T) {
	raw := []internal.RawEntry{
		{Name: "help", Value: "300"},
		{Name: "version", Value: "301"},
		{Name: "help-long", Value: "300"},
	}
	entries := ResolveEntries("LONGOPT_", raw)
	if len(entries) != 2 {
		t.Fatalf("len=%d", len(entries))
	}
	if entries[0].Name != "LONGOPT_HELP" || entries[0].Value != "300" {
		t.Fatalf("entry0=%+v", entries[0])
	}
	if entries[1].Name != "LONGOPT_VERSION" || entries[1].Value != "301" {
		t.Fatalf("entry1=%+v", entries[1])
	}
}

func TestResolveEntriesTrimsBeforeComparing(t *testing.T) {
	raw := []internal.RawEntry{
		{Name: "quiet", Value: "'q' "},
		{Name: "silent", Value: "'q'"},
	}
	entries := ResolveEntries("LONGOPT_", raw)
	if len(entries) != 1 {
		t.Fatalf("len=%d", len(entries))
	}
	if entries[0].Name != "LONGOPT_QUIET" || entries[0].Value != "'q'" {
		t.Fatalf("entry0=%+v", entries[0])
	}
}

// Values are compared as text; expressions that would evaluate equal are
// still distinct.
func TestResolveEntriesNoNumericEvaluation(t *testing.T) {
	raw := []internal.RawEntry{
		{Name: "hex", Value: "0x10"},
		{Name: "dec", Value: "16"},
	}
	entries := ResolveEntries("LONGOPT_", raw)
	if len(entries) != 2 {
		t.Fatalf("len=%d", len(entries))
	}
}

func TestReportRowsMarksDuplicates(t *testing.T) {
	raw := []internal.RawEntry{
		{Name: "help", Value: "300"},
		{Name: "version", Value: "301"},
		{Name: "help-long", Value: "300"},
	}
	rows := ReportRows("LONGOPT_", raw)
	if len(rows) != 3 {
		t.Fatalf("len=%d", len(rows))
	}
	if !rows[0].Kept || !rows[1].Kept {
		t.Fatalf("first occurrences must be kept: %+v %+v", rows[0], rows[1])
	}
	if rows[2].Kept || rows[2].DuplicateOf != "LONGOPT_HELP" {
		t.Fatalf("row2=%+v", rows[2])
	}
	if rows[2].Index != 3 {
		t.Fatalf("index=%d", rows[2].Index)
	}
}
