package docgap

import (
	"io/fs"
	"os"

	"github.com/agentstation/docgap/pkg/diff"
	"github.com/agentstation/docgap/pkg/errors"
	"github.com/agentstation/docgap/pkg/render"
)

// Default relative locations. A bare invocation diffs the working
// directory's reference set against its extracted fragments and writes
// the artifact next to them.
const (
	DefaultReferenceFile = "reference/classes.yaml"
	DefaultReferenceDir  = "reference/classes"
	DefaultExtractDir    = "extract"
	DefaultOutputPath    = "missing_descriptions.yaml"
)

// Option is a function that configures a run
type Option func(*config) error

// config holds the resolved settings for one run.
type config struct {
	fsys          fs.FS
	referenceFile string
	referenceDir  string
	extractDir    string
	outputPath    string
	translator    *diff.Translator
	types         map[string]string
}

func defaultConfig() *config {
	return &config{
		fsys:          os.DirFS("."),
		referenceFile: DefaultReferenceFile,
		referenceDir:  DefaultReferenceDir,
		extractDir:    DefaultExtractDir,
		outputPath:    DefaultOutputPath,
		translator:    diff.DefaultTranslator,
		types:         render.DefaultTypes,
	}
}

// WithFS sets the filesystem both inputs are read from. The output
// artifact is always written through the OS, relative to the working
// directory.
func WithFS(fsys fs.FS) Option {
	return func(c *config) error {
		if fsys == nil {
			return errors.NewConfigError("docgap", "nil filesystem", nil)
		}
		c.fsys = fsys
		return nil
	}
}

// WithReferenceFile sets the base reference collection path.
func WithReferenceFile(path string) Option {
	return func(c *config) error {
		if path != "" {
			c.referenceFile = path
		}
		return nil
	}
}

// WithReferenceDir sets the supplementary per-class collection directory.
func WithReferenceDir(dir string) Option {
	return func(c *config) error {
		c.referenceDir = dir
		return nil
	}
}

// WithExtractDir sets the extracted-fragment directory.
func WithExtractDir(dir string) Option {
	return func(c *config) error {
		if dir != "" {
			c.extractDir = dir
		}
		return nil
	}
}

// WithOutput sets the diff artifact path.
func WithOutput(path string) Option {
	return func(c *config) error {
		if path != "" {
			c.outputPath = path
		}
		return nil
	}
}

// WithTranslator sets the name translator used for function lookups.
func WithTranslator(t *diff.Translator) Option {
	return func(c *config) error {
		if t != nil {
			c.translator = t
		}
		return nil
	}
}

// WithTypes sets the native-to-documentation type table.
func WithTypes(types map[string]string) Option {
	return func(c *config) error {
		if types != nil {
			c.types = types
		}
		return nil
	}
}
