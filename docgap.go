// Package docgap reconciles a hand-maintained reference description
// set against machine-extracted documentation facts and reports every
// documented symbol, overload, or field the reference set is missing,
// in the reference set's own shape so a maintainer can merge it in.
package docgap

import (
	"context"
	"os"

	"github.com/agentstation/docgap/pkg/apidoc"
	"github.com/agentstation/docgap/pkg/diff"
	"github.com/agentstation/docgap/pkg/errors"
	"github.com/agentstation/docgap/pkg/logging"
	"github.com/agentstation/docgap/pkg/render"
)

// Result summarizes one completed run.
type Result struct {
	// OutputPath is where the diff artifact was written.
	OutputPath string

	// Classes is the number of classes with at least one gap.
	Classes int

	// Symbols is the total number of missing symbols.
	Symbols int
}

// Run executes the whole pipeline: load both inputs, compute the
// missing set, and write the diff artifact. Either load failing is
// fatal and aborts before any output is produced.
func Run(ctx context.Context, opts ...Option) (*Result, error) {
	c := defaultConfig()
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ref, err := apidoc.LoadReference(c.fsys, c.referenceFile, c.referenceDir)
	if err != nil {
		return nil, err
	}
	logging.Debug().
		Int("classes", len(ref.Classes)).
		Str("base", c.referenceFile).
		Msg("Loaded reference descriptions")

	docs, err := apidoc.LoadExtracted(c.fsys, c.extractDir)
	if err != nil {
		return nil, err
	}
	logging.Debug().
		Int("classes", len(docs)).
		Str("dir", c.extractDir).
		Msg("Loaded extracted documentation")

	missing := diff.New(diff.WithTranslator(c.translator)).Missing(ref, docs)
	logging.Info().
		Int("classes", len(missing.Classes)).
		Int("symbols", missing.Symbols()).
		Msg("Computed missing descriptions")

	mapper := render.NewTypeMapper(c.types, knownClasses(ref, docs))
	if err := writeArtifact(c.outputPath, render.NewEmitter(mapper), missing); err != nil {
		return nil, err
	}

	return &Result{
		OutputPath: c.outputPath,
		Classes:    len(missing.Classes),
		Symbols:    missing.Symbols(),
	}, nil
}

// writeArtifact writes the rendered missing set, holding the file
// handle only for the duration of the write.
func writeArtifact(path string, emitter *render.Emitter, missing *diff.MissingSet) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}

	if err := emitter.Emit(file, missing); err != nil {
		_ = file.Close()
		return err
	}

	if err := file.Close(); err != nil {
		return errors.WrapIO("close", path, err)
	}
	return nil
}

// knownClasses collects every class name either side knows about, so
// cross-references resolve even for classes the reference set has not
// merged yet.
func knownClasses(ref *apidoc.Reference, docs apidoc.Extracted) []string {
	seen := make(map[string]bool, len(ref.Classes)+len(docs))
	var names []string
	for name := range ref.Classes {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for name := range docs {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}
