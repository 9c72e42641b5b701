package diff

// Translator maps names from the extractor's vocabulary to the
// reference set's vocabulary, and knows which reference names must
// never be reported missing. Unknown names translate to themselves.
type Translator struct {
	names   map[string]string
	ignored map[string]bool
}

// NewTranslator builds a Translator from a doc-name to reference-name
// table and a list of reference names to suppress entirely.
func NewTranslator(names map[string]string, ignored ...string) *Translator {
	t := &Translator{
		names:   make(map[string]string, len(names)),
		ignored: make(map[string]bool, len(ignored)),
	}
	for doc, ref := range names {
		t.names[doc] = ref
	}
	for _, name := range ignored {
		t.ignored[name] = true
	}
	return t
}

// DefaultTranslator covers the extractor's spelling of special members:
// it calls a constructor "new", and destructors are synthesized so the
// reference set never documents them.
var DefaultTranslator = NewTranslator(
	map[string]string{
		"new": "constructor",
	},
	"destructor",
)

// Translate returns the reference-set name for a doc name, falling
// back to the name itself when the table has no entry.
func (t *Translator) Translate(docName string) string {
	if ref, ok := t.names[docName]; ok {
		return ref
	}
	return docName
}

// Ignored reports whether a reference name is suppressed from diffs
// regardless of its documentation state.
func (t *Translator) Ignored(refName string) bool {
	return t.ignored[refName]
}
