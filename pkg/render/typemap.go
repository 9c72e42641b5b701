// Package render turns a computed MissingSet into the reference set's
// textual shape: deterministic YAML a maintainer can merge by hand.
package render

import (
	"strings"
)

// scopeSeparator splits an "Outer::member" scoped native spelling.
const scopeSeparator = "::"

// TypeMapper translates native type spellings into the documentation
// vocabulary and recognizes type names that refer to documented
// classes, which render as cross-reference link tokens. Unknown
// spellings map to themselves.
type TypeMapper struct {
	types   map[string]string
	classes map[string]bool
}

// NewTypeMapper builds a TypeMapper from a native-to-documentation
// spelling table and the set of class names known to have pages.
func NewTypeMapper(types map[string]string, classes []string) *TypeMapper {
	m := &TypeMapper{
		types:   make(map[string]string, len(types)),
		classes: make(map[string]bool, len(classes)),
	}
	for native, doc := range types {
		m.types[native] = doc
	}
	for _, class := range classes {
		m.classes[class] = true
	}
	return m
}

// DefaultTypes covers the native spellings the extractor emits for
// primitives.
var DefaultTypes = map[string]string{
	"int":          "number",
	"unsigned int": "number",
	"int32_t":      "number",
	"uint32_t":     "number",
	"size_t":       "number",
	"float":        "number",
	"double":       "number",
	"bool":         "boolean",
	"char*":        "string",
	"const char*":  "string",
	"void":         "nil",
}

// Map translates a native spelling, falling back to the spelling
// itself when the table has no entry.
func (m *TypeMapper) Map(native string) string {
	if doc, ok := m.types[native]; ok {
		return doc
	}
	return native
}

// Known reports whether a name refers to a documented class.
func (m *TypeMapper) Known(name string) bool {
	return m.classes[name]
}

// Token renders one parameter or return type for the emitted diff. A
// type naming a known class becomes a link token, carrying linkText
// when provided. A scoped "Outer::member" spelling becomes a same-page
// anchor link when the outer type is a known class; otherwise the
// spelling passes through untouched.
func (m *TypeMapper) Token(native, linkText string) string {
	if outer, member, ok := strings.Cut(native, scopeSeparator); ok {
		base := m.Map(outer)
		if m.Known(base) {
			return "@{" + base + "#" + member + "}"
		}
		return native
	}

	doc := m.Map(native)
	if m.Known(doc) {
		if linkText != "" {
			return "@{" + doc + "|" + linkText + "}"
		}
		return "@{" + doc + "}"
	}
	return doc
}
