package apidoc

import (
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/docgap/pkg/errors"
)

// LoadReference assembles the reference description set from the
// configured filesystem: one base collection plus zero or more
// supplementary per-class collections. Supplements are applied in
// lexical filename order and overwrite the base (and each other) on
// class-name collision.
//
// A missing or malformed base file is fatal. A missing supplement
// directory is fine; zero supplements is a legal configuration.
func LoadReference(fsys fs.FS, basePath, supplementDir string) (*Reference, error) {
	ref := &Reference{Classes: make(map[string]Class)}

	data, err := fs.ReadFile(fsys, basePath)
	if err != nil {
		return nil, errors.WrapIO("read", basePath, err)
	}
	if err := mergeReferenceFile(ref, basePath, data); err != nil {
		return nil, err
	}

	paths, err := referenceSupplements(fsys, supplementDir)
	if err != nil {
		return nil, err
	}
	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, errors.WrapIO("read", path, err)
		}
		if err := mergeReferenceFile(ref, path, data); err != nil {
			return nil, err
		}
	}

	return ref, nil
}

// mergeReferenceFile parses one collection and overwrites ref's classes
// with its contents.
func mergeReferenceFile(ref *Reference, path string, data []byte) error {
	var classes map[string]Class
	if err := yaml.Unmarshal(data, &classes); err != nil {
		return errors.WrapParse("yaml", path, err)
	}
	for name, class := range classes {
		ref.Classes[name] = class
	}
	return nil
}

// referenceSupplements lists the supplementary collection files in
// lexical order. An absent directory yields no supplements.
func referenceSupplements(fsys fs.FS, dir string) ([]string, error) {
	if dir == "" {
		return nil, nil
	}

	var paths []string
	err := fs.WalkDir(fsys, dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.WrapIO("walk", dir, err)
	}

	sort.Strings(paths)
	return paths, nil
}
