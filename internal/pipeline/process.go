package pipeline

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"

	"longoptgen/internal"
	"longoptgen/internal/config"
	"longoptgen/internal/storage"
)

// Generator runs the whole pipeline for one source/output pair. A run is a
// single pass: read everything, transform in memory, write once.
type Generator struct {
	cfg     config.Config
	scanner SourceScanner
	db      *storage.DB
}

// NewGenerator builds a Generator over the regex scanner. db may be nil;
// auditing is then skipped.
func NewGenerator(cfg config.Config, db *storage.DB) *Generator {
	return &Generator{cfg: cfg, scanner: RegexScanner{}, db: db}
}

type Result struct {
	OutputPath string
	Entries    int
	SourceHash string
}

// Run regenerates the output file. On any failure the destination is left
// untouched; the failure is still recorded in the audit log when one is
// configured.
func (g *Generator) Run() (Result, error) {
	rendered, entries, hash, err := g.render()
	if err != nil {
		g.audit(hash, 0, "error", err)
		return Result{}, err
	}

	if err := WriteFileAtomic(g.cfg.OutputPath, rendered); err != nil {
		g.audit(hash, 0, "error", err)
		return Result{}, err
	}

	g.audit(hash, len(entries), "ok", nil)
	return Result{OutputPath: g.cfg.OutputPath, Entries: len(entries), SourceHash: hash}, nil
}

// Check renders in memory and compares against the existing output file.
// It never writes.
func (g *Generator) Check() error {
	rendered, _, _, err := g.render()
	if err != nil {
		return err
	}
	existing, err := os.ReadFile(g.cfg.OutputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("output %s does not exist, run gen", g.cfg.OutputPath)
		}
		return err
	}
	if !bytes.Equal(rendered, existing) {
		return fmt.Errorf("output %s is stale, run gen", g.cfg.OutputPath)
	}
	return nil
}

// ParseRows reruns extraction and reports every tuple, kept or dropped.
func (g *Generator) ParseRows() ([]internal.ReportRow, error) {
	raw, err := g.extract()
	if err != nil {
		return nil, err
	}
	return ReportRows(g.cfg.MacroPrefix, raw), nil
}

func (g *Generator) extract() ([]internal.RawEntry, error) {
	source, err := os.ReadFile(g.cfg.SourcePath)
	if err != nil {
		return nil, err
	}
	body, err := g.scanner.LocateFunctionBody(string(source), g.cfg.FunctionName)
	if err != nil {
		return nil, err
	}
	table, err := g.scanner.LocateArrayBody(body, g.cfg.RecordTypeName, g.cfg.TableName)
	if err != nil {
		return nil, err
	}
	return ParseEntries(table), nil
}

func (g *Generator) render() ([]byte, []internal.MacroEntry, string, error) {
	source, err := os.ReadFile(g.cfg.SourcePath)
	if err != nil {
		return nil, nil, "", err
	}
	hash := sourceHash(source)

	body, err := g.scanner.LocateFunctionBody(string(source), g.cfg.FunctionName)
	if err != nil {
		return nil, nil, hash, err
	}
	table, err := g.scanner.LocateArrayBody(body, g.cfg.RecordTypeName, g.cfg.TableName)
	if err != nil {
		return nil, nil, hash, err
	}

	entries := ResolveEntries(g.cfg.MacroPrefix, ParseEntries(table))
	return RenderHeader(g.cfg.SourcePath, entries), entries, hash, nil
}

func (g *Generator) audit(hash string, count int, status string, runErr error) {
	if g.db == nil {
		return
	}
	message := ""
	if runErr != nil {
		message = runErr.Error()
	}
	_ = g.db.InsertRun(g.cfg.SourcePath, hash, g.cfg.OutputPath, count, status, message)
}

func sourceHash(blob []byte) string {
	sum := sha256.Sum256(blob)
	return hex.EncodeToString(sum[:])
}
