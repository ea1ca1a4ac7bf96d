package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"longoptgen/internal/config"
	"longoptgen/internal/pipeline"
	"longoptgen/internal/storage"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "gen":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		source := fs.String("source", cfg.SourcePath, "source file containing the longopts table")
		output := fs.String("output", cfg.OutputPath, "generated header destination")
		_ = fs.Parse(os.Args[2:])
		cfg.SourcePath = *source
		cfg.OutputPath = *output

		db := openAudit(cfg)
		if db != nil {
			defer db.Close()
		}
		gen := pipeline.NewGenerator(cfg, db)
		result, err := gen.Run()
		must(err)
		fmt.Printf("generate done entries=%d output=%s\n", result.Entries, result.OutputPath)
	case "check":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		source := fs.String("source", cfg.SourcePath, "source file containing the longopts table")
		output := fs.String("output", cfg.OutputPath, "generated header to verify")
		_ = fs.Parse(os.Args[2:])
		cfg.SourcePath = *source
		cfg.OutputPath = *output

		gen := pipeline.NewGenerator(cfg, nil)
		must(gen.Check())
		fmt.Printf("check ok output=%s\n", cfg.OutputPath)
	case "report:xlsx":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		source := fs.String("source", cfg.SourcePath, "source file containing the longopts table")
		out := fs.String("out", "", "output xlsx path")
		_ = fs.Parse(os.Args[2:])
		cfg.SourcePath = *source
		if strings.TrimSpace(*out) == "" {
			*out = filepath.Join(cfg.ReportDir, "longopts.xlsx")
		}

		gen := pipeline.NewGenerator(cfg, nil)
		rows, err := gen.ParseRows()
		must(err)
		if len(rows) == 0 {
			must(fmt.Errorf("no longopt rows found in %s", cfg.SourcePath))
		}
		must(pipeline.ExportRowsToXLSX(rows, *out))
		fmt.Printf("exported %d rows to %s\n", len(rows), *out)
	case "runs:list":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		limit := fs.Int("limit", 20, "max runs to list")
		_ = fs.Parse(os.Args[2:])
		must(cfg.Require("AUDIT_DB_PATH", cfg.AuditDBPath))
		db, err := storage.Open(cfg.AuditDBPath)
		must(err)
		defer db.Close()

		runs, err := db.ListRuns(*limit)
		must(err)
		for _, r := range runs {
			fmt.Printf("%d %s status=%s entries=%d source=%s output=%s hash=%.12s", r.ID, r.CreatedAt, r.Status, r.EntryCount, r.SourcePath, r.OutputPath, r.SourceHash)
			if r.Error != "" {
				fmt.Printf(" error=%q", r.Error)
			}
			fmt.Println()
		}
	default:
		usage()
		os.Exit(1)
	}
}

func openAudit(cfg config.Config) *storage.DB {
	if strings.TrimSpace(cfg.AuditDBPath) == "" {
		return nil
	}
	db, err := storage.Open(cfg.AuditDBPath)
	if err != nil {
		// Auditing is bookkeeping; a broken audit DB must not block generation.
		fmt.Fprintf(os.Stderr, "warning: audit db unavailable: %v\n", err)
		return nil
	}
	return db
}

func usage() {
	fmt.Println("usage: longoptgen <command>")
	fmt.Println("commands:")
	fmt.Println("  gen [--source=./src/main.cpp] [--output=./src/longopts.gen.h]")
	fmt.Println("  check [--source=...] [--output=...]")
	fmt.Println("  report:xlsx [--source=...] --out=./out/longopts.xlsx")
	fmt.Println("  runs:list [--limit=20]")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
