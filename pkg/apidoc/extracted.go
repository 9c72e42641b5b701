package apidoc

import (
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/docgap/pkg/errors"
)

// LoadExtracted assembles the extracted documentation set by merging
// every fragment file under dir. Each fragment is a named source
// mapping class names to documentation facts; the merge happens at
// symbol granularity and asserts uniqueness — the same symbol
// documented by two fragments is a data-integrity bug, not a
// recoverable condition.
//
// A directory with no fragments is a fatal load error: with nothing
// documented there is nothing to diff.
func LoadExtracted(fsys fs.FS, dir string) (Extracted, error) {
	paths, err := fragmentPaths(fsys, dir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, errors.NewNotFoundError("extracted documentation fragments under", dir)
	}

	docs := make(Extracted)
	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, errors.WrapIO("read", path, err)
		}

		var fragment map[string]DocClass
		if err := yaml.Unmarshal(data, &fragment); err != nil {
			return nil, errors.WrapParse("yaml", path, err)
		}

		if err := mergeFragment(docs, path, fragment); err != nil {
			return nil, err
		}
	}

	return docs, nil
}

// mergeFragment folds one fragment into docs, failing on any symbol
// already claimed by an earlier fragment.
func mergeFragment(docs Extracted, path string, fragment map[string]DocClass) error {
	for className, class := range fragment {
		merged := docs[className]

		for name, entries := range class.Functions {
			if merged.Functions == nil {
				merged.Functions = make(map[string][]DocEntry)
			}
			if _, exists := merged.Functions[name]; exists {
				return errors.NewDuplicateError(className, "functions", name, path)
			}
			merged.Functions[name] = entries
		}

		for name, entry := range class.Variables {
			if merged.Variables == nil {
				merged.Variables = make(map[string]DocEntry)
			}
			if _, exists := merged.Variables[name]; exists {
				return errors.NewDuplicateError(className, "variables", name, path)
			}
			merged.Variables[name] = entry
		}

		for name, entry := range class.Constants {
			if merged.Constants == nil {
				merged.Constants = make(map[string]DocEntry)
			}
			if _, exists := merged.Constants[name]; exists {
				return errors.NewDuplicateError(className, "constants", name, path)
			}
			merged.Constants[name] = entry
		}

		docs[className] = merged
	}
	return nil
}

// fragmentPaths lists fragment files in lexical order so the merge is
// deterministic and duplicate reports always blame the same file.
func fragmentPaths(fsys fs.FS, dir string) ([]string, error) {
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
