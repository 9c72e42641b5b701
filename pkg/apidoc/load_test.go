package apidoc

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/docgap/pkg/errors"
)

func TestLoadReference(t *testing.T) {
	t.Run("base plus supplements", func(t *testing.T) {
		fsys := fstest.MapFS{
			"reference/classes.yaml": &fstest.MapFile{Data: []byte(`
Sprite:
  functions:
    draw:
      params: "Image"
Image:
  functions:
    load:
      params: "string"
`)},
			"reference/classes/sprite.yaml": &fstest.MapFile{Data: []byte(`
Sprite:
  functions:
    draw:
    - params: "Image"
    - params: "Image, int"
`)},
		}

		ref, err := LoadReference(fsys, "reference/classes.yaml", "reference/classes")
		require.NoError(t, err)
		require.Len(t, ref.Classes, 2)

		// Supplement overwrites the base entry for the whole class.
		assert.Len(t, ref.Classes["Sprite"].Functions["draw"], 2)
		assert.Len(t, ref.Classes["Image"].Functions["load"], 1)
	})

	t.Run("no supplement directory", func(t *testing.T) {
		fsys := fstest.MapFS{
			"reference/classes.yaml": &fstest.MapFile{Data: []byte("Sprite:\n  functions:\n    draw:\n      params: Image\n")},
		}
		ref, err := LoadReference(fsys, "reference/classes.yaml", "reference/classes")
		require.NoError(t, err)
		assert.Len(t, ref.Classes, 1)
	})

	t.Run("missing base is fatal", func(t *testing.T) {
		_, err := LoadReference(fstest.MapFS{}, "reference/classes.yaml", "reference/classes")
		require.Error(t, err)
		var ioErr *errors.IOError
		assert.ErrorAs(t, err, &ioErr)
	})

	t.Run("malformed base is fatal", func(t *testing.T) {
		fsys := fstest.MapFS{
			"reference/classes.yaml": &fstest.MapFile{Data: []byte("{invalid")},
		}
		_, err := LoadReference(fsys, "reference/classes.yaml", "")
		require.Error(t, err)
		var parseErr *errors.ParseError
		assert.ErrorAs(t, err, &parseErr)
	})
}

func TestLoadExtracted(t *testing.T) {
	t.Run("merges fragments", func(t *testing.T) {
		fsys := fstest.MapFS{
			"extract/graphics.yaml": &fstest.MapFile{Data: []byte(`
Sprite:
  functions:
    draw:
    - params:
      - type: Image
`)},
			"extract/io.yaml": &fstest.MapFile{Data: []byte(`
Sprite:
  variables:
    width:
      description: Sprite width in pixels.
File:
  functions:
    open:
    - params:
      - type: const char*
        name: p_path
`)},
		}

		docs, err := LoadExtracted(fsys, "extract")
		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Len(t, docs["Sprite"].Functions["draw"], 1)
		assert.Equal(t, "Sprite width in pixels.", docs["Sprite"].Variables["width"].Description)
		assert.Equal(t, 1, docs["File"].Functions["open"][0].Arity())
	})

	t.Run("duplicate symbol across fragments is fatal", func(t *testing.T) {
		fsys := fstest.MapFS{
			"extract/a.yaml": &fstest.MapFile{Data: []byte("Sprite:\n  functions:\n    draw:\n    - description: one\n")},
			"extract/b.yaml": &fstest.MapFile{Data: []byte("Sprite:\n  functions:\n    draw:\n    - description: two\n")},
		}

		_, err := LoadExtracted(fsys, "extract")
		require.Error(t, err)
		assert.True(t, errors.IsDuplicateEntry(err))

		var dup *errors.DuplicateError
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, "Sprite", dup.Class)
		assert.Equal(t, "draw", dup.Symbol)
		assert.Equal(t, "extract/b.yaml", dup.Fragment)
	})

	t.Run("no fragments is fatal", func(t *testing.T) {
		_, err := LoadExtracted(fstest.MapFS{}, "extract")
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
	})
}
