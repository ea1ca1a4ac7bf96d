package pipeline

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"longoptgen/internal"
)

// RenderHeader builds the generated header: do-not-edit notice, include
// guard, then one #define per entry in dedupe-surviving order. Values are
// emitted verbatim.
func RenderHeader(sourcePath string, entries []internal.MacroEntry) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "// This file is auto-generated from %s\n\n", filepath.Base(sourcePath))
	b.WriteString("#pragma once\n\n")
	for _, entry := range entries {
		fmt.Fprintf(&b, "#define %s %s\n", entry.Name, entry.Value)
	}
	return b.Bytes()
}

// WriteFileAtomic writes to a temp file next to the destination and renames
// it into place, so a failed run never leaves a partial output behind.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
