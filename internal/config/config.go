package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	SourcePath string
	OutputPath string

	FunctionName   string
	RecordTypeName string
	TableName      string
	MacroPrefix    string

	AuditDBPath string
	ReportDir   string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		SourcePath: getEnv("LONGOPT_SOURCE", "./src/main.cpp"),
		OutputPath: getEnv("LONGOPT_OUTPUT", "./src/longopts.gen.h"),

		FunctionName:   getEnv("LONGOPT_FUNCTION", "main_get_options"),
		RecordTypeName: getEnv("LONGOPT_RECORD_TYPE", "mfx_option"),
		TableName:      getEnv("LONGOPT_TABLE", "longopts"),
		MacroPrefix:    getEnv("LONGOPT_MACRO_PREFIX", "LONGOPT_"),

		AuditDBPath: getEnv("AUDIT_DB_PATH", ""),
		ReportDir:   getEnv("REPORT_DIR", "./out"),
	}

	return cfg, nil
}

func (c Config) Require(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("missing required env var: %s", name)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
