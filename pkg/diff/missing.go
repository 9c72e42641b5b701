package diff

import (
	"github.com/agentstation/docgap/pkg/apidoc"
)

// MissingSet is the sparse result of a diff: every symbol documented
// by the extractor but absent or incomplete in the reference set. A
// class appears only when at least one of its slots is non-empty. It
// is built once per run and never mutated afterwards.
type MissingSet struct {
	Classes map[string]ClassMissing
}

// ClassMissing holds the gaps found for one class. Function entries
// are the unmatched extracted overloads, keyed by the extractor's
// original name; variable and constant entries are the extracted
// records whose descriptions the reference set lacks.
type ClassMissing struct {
	Functions map[string][]apidoc.DocEntry
	Variables map[string]apidoc.DocEntry
	Constants map[string]apidoc.DocEntry
}

// Empty reports whether the diff found no gaps at all.
func (m *MissingSet) Empty() bool {
	return len(m.Classes) == 0
}

// Empty reports whether all three slots are empty.
func (c ClassMissing) Empty() bool {
	return len(c.Functions) == 0 && len(c.Variables) == 0 && len(c.Constants) == 0
}

// Symbols returns the total number of missing symbols across all
// classes and slots, for run summaries.
func (m *MissingSet) Symbols() int {
	n := 0
	for _, class := range m.Classes {
		n += len(class.Functions) + len(class.Variables) + len(class.Constants)
	}
	return n
}
