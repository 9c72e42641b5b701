package render

import (
	"io"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/agentstation/docgap/pkg/apidoc"
	"github.com/agentstation/docgap/pkg/diff"
	"github.com/agentstation/docgap/pkg/errors"
)

// paramNamePrefix is the extractor's conventional argument-name prefix,
// stripped before a name is used as link text.
const paramNamePrefix = "p_"

// Emitter renders a MissingSet in the reference set's nested-table
// shape. Output is fully deterministic: class and symbol names are
// ordered case-insensitively, key order inside records is fixed, and
// identical inputs produce byte-identical artifacts.
type Emitter struct {
	mapper *TypeMapper
	coll   *collate.Collator
}

// NewEmitter creates an Emitter using the given type mapper.
func NewEmitter(mapper *TypeMapper) *Emitter {
	return &Emitter{
		mapper: mapper,
		coll:   collate.New(language.Und, collate.IgnoreCase),
	}
}

// Emit writes the missing set to w as YAML with the reference layout's
// 2-space indentation: class body one level, slot bodies two.
func (e *Emitter) Emit(w io.Writer, missing *diff.MissingSet) error {
	data, err := e.Bytes(missing)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return errors.WrapIO("write", "missing set", err)
	}
	return nil
}

// Bytes renders the missing set as YAML.
func (e *Emitter) Bytes(missing *diff.MissingSet) ([]byte, error) {
	root := yaml.MapSlice{}
	for _, className := range e.sorted(classNames(missing)) {
		root = append(root, yaml.MapItem{
			Key:   className,
			Value: e.class(missing.Classes[className]),
		})
	}

	data, err := yaml.MarshalWithOptions(root,
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
	if err != nil {
		return nil, errors.WrapParse("yaml", "missing set", err)
	}
	return data, nil
}

// class renders one class body with its non-empty slots.
func (e *Emitter) class(class diff.ClassMissing) yaml.MapSlice {
	body := yaml.MapSlice{}

	if len(class.Functions) > 0 {
		functions := yaml.MapSlice{}
		for _, name := range e.sorted(mapKeys(class.Functions)) {
			functions = append(functions, yaml.MapItem{
				Key:   name,
				Value: e.function(class.Functions[name]),
			})
		}
		body = append(body, yaml.MapItem{Key: "functions", Value: functions})
	}

	if len(class.Variables) > 0 {
		body = append(body, yaml.MapItem{Key: "variables", Value: e.symbols(class.Variables)})
	}

	if len(class.Constants) > 0 {
		body = append(body, yaml.MapItem{Key: "constants", Value: e.symbols(class.Constants)})
	}

	return body
}

// function renders one unmatched overload inline and two or more as an
// enumerated list, matching the reference set's compact convention.
func (e *Emitter) function(entries []apidoc.DocEntry) interface{} {
	if len(entries) == 1 {
		return e.overload(entries[0])
	}

	list := make([]yaml.MapSlice, 0, len(entries))
	for _, entry := range entries {
		list = append(list, e.overload(entry))
	}
	return list
}

// overload renders one extracted entry as a reference-shaped record.
func (e *Emitter) overload(entry apidoc.DocEntry) yaml.MapSlice {
	record := yaml.MapSlice{}

	if len(entry.Params) > 0 {
		tokens := make([]string, 0, len(entry.Params))
		for _, p := range entry.Params {
			tokens = append(tokens, e.mapper.Token(p.Type, strings.TrimPrefix(p.Name, paramNamePrefix)))
		}
		record = append(record, yaml.MapItem{Key: "params", Value: strings.Join(tokens, ", ")})
	}

	if len(entry.Returns) > 0 {
		tokens := make([]string, 0, len(entry.Returns))
		for _, r := range entry.Returns {
			tokens = append(tokens, e.mapper.Token(r.Type, strings.TrimPrefix(r.Name, paramNamePrefix)))
		}
		record = append(record, yaml.MapItem{Key: "return", Value: strings.Join(tokens, ", ")})
	}

	record = append(record, yaml.MapItem{Key: "notes", Value: normalizeDescription(entry.Description)})

	if entry.Static {
		record = append(record, yaml.MapItem{Key: "static", Value: true})
	}

	return record
}

// symbols renders a variable or constant slot.
func (e *Emitter) symbols(entries map[string]apidoc.DocEntry) yaml.MapSlice {
	slot := yaml.MapSlice{}
	for _, name := range e.sorted(mapKeys(entries)) {
		entry := entries[name]
		record := yaml.MapSlice{}
		if entry.Type != "" {
			record = append(record, yaml.MapItem{Key: "type", Value: e.mapper.Token(entry.Type, "")})
		}
		record = append(record, yaml.MapItem{Key: "notes", Value: normalizeDescription(entry.Description)})
		slot = append(slot, yaml.MapItem{Key: name, Value: record})
	}
	return slot
}

// sorted orders names case-insensitively, breaking collation ties by
// byte order so equal-modulo-case names still sort deterministically.
func (e *Emitter) sorted(names []string) []string {
	sort.Slice(names, func(i, j int) bool {
		if c := e.coll.CompareString(names[i], names[j]); c != 0 {
			return c < 0
		}
		return names[i] < names[j]
	})
	return names
}

// normalizeDescription collapses extracted description text to a
// single line: line breaks become spaces and whitespace runs collapse,
// so sentence-final breaks end up as ". ".
func normalizeDescription(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func classNames(missing *diff.MissingSet) []string {
	names := make([]string, 0, len(missing.Classes))
	for name := range missing.Classes {
		names = append(names, name)
	}
	return names
}

func mapKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
