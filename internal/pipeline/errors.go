package pipeline

import "fmt"

type StructureKind string

const (
	StructureFunction StructureKind = "function"
	StructureTable    StructureKind = "table"
)

// StructureNotFoundError reports that the named function body or table
// declaration could not be located in the source text. It is fatal: nothing
// is written when it occurs.
type StructureNotFoundError struct {
	Kind StructureKind
	Name string
}

func (e *StructureNotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found in source", e.Kind, e.Name)
}
