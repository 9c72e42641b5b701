// Package apidoc defines the shared data model for both sides of a
// documentation diff: the hand-maintained reference description set and
// the machine-extracted documentation facts. It also provides the YAML
// loaders that assemble each side from disk.
package apidoc

import (
	"strings"

	"github.com/goccy/go-yaml"
)

// Overload is one reference description of a single function signature.
type Overload struct {
	// Params is the comma-delimited parameter list. Empty means the
	// signature takes no parameters.
	Params string `yaml:"params,omitempty"`

	// Return is the return type spelling, if any.
	Return string `yaml:"return,omitempty"`

	// Notes is the free-form description text.
	Notes string `yaml:"notes,omitempty"`

	// Static marks signatures that do not take a receiver.
	Static bool `yaml:"static,omitempty"`
}

// Arity returns the parameter count declared by the delimited Params
// string. An empty or blank string declares zero parameters.
func (o Overload) Arity() int {
	if strings.TrimSpace(o.Params) == "" {
		return 0
	}
	return strings.Count(o.Params, ",") + 1
}

// Overloads is the ordered sequence of reference descriptions for one
// function. The external YAML form is compact: a single description is
// written as a bare mapping, multiple descriptions as a sequence. The
// shape is normalized here at the boundary so everything downstream
// sees a uniform slice.
type Overloads []Overload

// UnmarshalYAML accepts either a bare mapping or a sequence of mappings.
func (o *Overloads) UnmarshalYAML(data []byte) error {
	var list []Overload
	if err := yaml.Unmarshal(data, &list); err == nil {
		*o = list
		return nil
	}

	var single Overload
	if err := yaml.Unmarshal(data, &single); err != nil {
		return err
	}
	*o = Overloads{single}
	return nil
}

// MarshalYAML writes a one-element sequence back as a bare mapping.
func (o Overloads) MarshalYAML() (interface{}, error) {
	if len(o) == 1 {
		return o[0], nil
	}
	return []Overload(o), nil
}

// Symbol is a reference description of a variable or constant.
type Symbol struct {
	// Notes distinguishes three states: absent (nil), present but
	// blank (placeholder awaiting text), and filled in.
	Notes *string `yaml:"notes,omitempty"`

	// Type is the optional documented type spelling.
	Type string `yaml:"type,omitempty"`
}

// Class is the reference entry for one documented class.
type Class struct {
	Functions map[string]Overloads `yaml:"functions,omitempty"`
	Variables map[string]Symbol    `yaml:"variables,omitempty"`
	Constants map[string]Symbol    `yaml:"constants,omitempty"`
}

// Reference is the authoritative description set: the hand-maintained
// source of truth for API documentation strings.
type Reference struct {
	Classes map[string]Class
}

// Param is one parameter descriptor parsed from source comments.
type Param struct {
	Type string `yaml:"type"`
	Name string `yaml:"name,omitempty"`
}

// Return is one return-value descriptor parsed from source comments.
type Return struct {
	Type string `yaml:"type"`
	Name string `yaml:"name,omitempty"`
}

// DocEntry is one documentation fact recovered by the extractor. For
// functions the extractor always enumerates overloads as a sequence,
// so entries arrive in lists even for single-overload symbols. For
// variables and constants a single entry carries the description and
// optional native type.
type DocEntry struct {
	Params      []Param  `yaml:"params,omitempty"`
	Returns     []Return `yaml:"returns,omitempty"`
	Description string   `yaml:"description,omitempty"`
	Type        string   `yaml:"type,omitempty"`
	Static      bool     `yaml:"static,omitempty"`
}

// Arity returns the parameter count of the extracted signature.
func (d DocEntry) Arity() int {
	return len(d.Params)
}

// DocClass holds the extracted documentation facts for one class.
type DocClass struct {
	Functions map[string][]DocEntry `yaml:"functions,omitempty"`
	Variables map[string]DocEntry   `yaml:"variables,omitempty"`
	Constants map[string]DocEntry   `yaml:"constants,omitempty"`
}

// Extracted is the machine-extracted documentation set, keyed by class.
type Extracted map[string]DocClass
