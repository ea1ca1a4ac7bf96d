package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"longoptgen/internal"
)

func TestRenderHeader(t *testing.T) {
	entries := []internal.MacroEntry{
		{Name: "LONGOPT_HELP", Value: "300"},
		{Name: "LONGOPT_OUTPUT", Value: "'o'"},
	}
	got := string(RenderHeader("./src/main.cpp", entries))
	want := "// This file is auto-generated from main.cpp\n\n" +
		"#pragma once\n\n" +
		"#define LONGOPT_HELP 300\n" +
		"#define LONGOPT_OUTPUT 'o'\n"
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderHeaderEmptyTable(t *testing.T) {
	got := string(RenderHeader("main.cpp", nil))
	want := "// This file is auto-generated from main.cpp\n\n#pragma once\n\n"
	if got != want {
		t.Fatalf("got %q", got)
	}
}

func TestWriteFileAtomic(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "gen", "longopts.gen.h")

	if err := WriteFileAtomic(path, []byte("first\n")); err != nil {
		t.Fatal(err)
	}
	if err := WriteFileAtomic(path, []byte("second\n")); err != nil {
		t.Fatal(err)
	}

	blob, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(blob) != "second\n" {
		t.Fatalf("content=%q", blob)
	}

	dir, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(dir) != 1 {
		t.Fatalf("leftover temp files: %d entries", len(dir))
	}
}
