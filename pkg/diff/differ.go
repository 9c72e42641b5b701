// Package diff computes the set-difference between a hand-maintained
// reference description set and extractor-produced documentation
// facts: every documented symbol, overload, or field the reference
// set is missing.
package diff

import (
	"github.com/agentstation/docgap/pkg/apidoc"
)

// Differ computes documentation gaps between the two sides.
type Differ interface {
	// Missing returns every extracted symbol the reference set fails
	// to describe. The extracted set drives the walk: classes known
	// only to the reference are never visited.
	Missing(ref *apidoc.Reference, docs apidoc.Extracted) *MissingSet
}

// differ is the default implementation of Differ.
type differ struct {
	translator *Translator
}

// New creates a Differ with default settings.
func New(opts ...Option) Differ {
	d := &differ{
		translator: DefaultTranslator,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Missing walks every class the extractor documented and collects its
// gaps. Per-class results are computed bottom-up as pure functions and
// assembled by insertion.
func (d *differ) Missing(ref *apidoc.Reference, docs apidoc.Extracted) *MissingSet {
	missing := &MissingSet{Classes: make(map[string]ClassMissing)}

	for name, docClass := range docs {
		var refClass apidoc.Class
		if ref != nil {
			refClass = ref.Classes[name]
		}

		if class := d.class(refClass, docClass); !class.Empty() {
			missing.Classes[name] = class
		}
	}

	return missing
}

// class combines the three slot diffs for one class.
func (d *differ) class(ref apidoc.Class, docs apidoc.DocClass) ClassMissing {
	return ClassMissing{
		Functions: d.functions(ref.Functions, docs.Functions),
		Variables: missingSymbols(ref.Variables, docs.Variables),
		Constants: missingSymbols(ref.Constants, docs.Constants),
	}
}

// functions matches every documented function against the reference
// overload pool for its translated name. Unmatched entries are
// recorded under the extractor's original name so the emitted diff
// lines up with the extracted source.
func (d *differ) functions(ref map[string]apidoc.Overloads, docs map[string][]apidoc.DocEntry) map[string][]apidoc.DocEntry {
	var missing map[string][]apidoc.DocEntry

	for docName, entries := range docs {
		refName := d.translator.Translate(docName)
		if d.translator.Ignored(refName) {
			continue
		}

		// A name the reference set lacks entirely is an empty pool.
		descs := ref[refName]

		if unmatched := findUnmatched(descs, entries); len(unmatched) > 0 {
			if missing == nil {
				missing = make(map[string][]apidoc.DocEntry)
			}
			missing[docName] = unmatched
		}
	}

	return missing
}

// missingSymbols applies the variable/constant gap rule: a symbol is
// missing its description when the reference has no entry at all, when
// the entry has no notes field, or when the notes are a blank
// placeholder and the extractor recovered real text to fill it. A
// blank placeholder paired with blank extracted text is not a gap —
// there is nothing to add.
func missingSymbols(ref map[string]apidoc.Symbol, docs map[string]apidoc.DocEntry) map[string]apidoc.DocEntry {
	var missing map[string]apidoc.DocEntry

	for name, doc := range docs {
		sym, ok := ref[name]

		gap := false
		switch {
		case !ok:
			gap = true
		case sym.Notes == nil:
			gap = true
		case *sym.Notes == "" && doc.Description != "":
			gap = true
		}

		if gap {
			if missing == nil {
				missing = make(map[string]apidoc.DocEntry)
			}
			missing[name] = doc
		}
	}

	return missing
}
