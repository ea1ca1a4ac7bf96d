package util

import "testing"

func TestMacroName(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "help", want: "LONGOPT_HELP"},
		{name: "hyphen", input: "help-long", want: "LONGOPT_HELP_LONG"},
		{name: "multi hyphen", input: "no-color-output", want: "LONGOPT_NO_COLOR_OUTPUT"},
		{name: "already upper", input: "CRP-MS-DOS-EXE", want: "LONGOPT_CRP_MS_DOS_EXE"},
		{name: "digits", input: "best2", want: "LONGOPT_BEST2"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := MacroName("LONGOPT_", tc.input)
			if got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestMacroNameCustomPrefix(t *testing.T) {
	if got := MacroName("OPT_", "force-compress"); got != "OPT_FORCE_COMPRESS" {
		t.Fatalf("got %q", got)
	}
}
