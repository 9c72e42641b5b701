package diff

import (
	"github.com/agentstation/docgap/pkg/apidoc"
)

// findUnmatched reports which extracted entries have no corresponding
// reference description. Descriptions form a pool of single-use slots;
// each doc entry consumes, first-fit, the lowest-indexed still-available
// slot of equal arity. Only arity is compared — parameter names and
// types never participate, so this is not overload resolution by
// signature.
//
// The result preserves the input order of docs. A nil result means
// every entry matched (the symbol is fully described). With an empty
// pool every doc entry is unmatched; with no doc entries there is
// nothing to be missing.
func findUnmatched(descs []apidoc.Overload, docs []apidoc.DocEntry) []apidoc.DocEntry {
	if len(docs) == 0 {
		return nil
	}

	available := make([]bool, len(descs))
	for i := range available {
		available[i] = true
	}

	var unmatched []apidoc.DocEntry
	for _, doc := range docs {
		matched := false
		for i := range descs {
			if available[i] && descs[i].Arity() == doc.Arity() {
				available[i] = false
				matched = true
				break
			}
		}
		if !matched {
			unmatched = append(unmatched, doc)
		}
	}

	return unmatched
}
