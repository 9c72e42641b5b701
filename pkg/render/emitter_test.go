package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/docgap/pkg/apidoc"
	"github.com/agentstation/docgap/pkg/diff"
)

func testEmitter() *Emitter {
	return NewEmitter(NewTypeMapper(DefaultTypes, []string{"Image", "Sprite"}))
}

func sampleMissing() *diff.MissingSet {
	return &diff.MissingSet{Classes: map[string]diff.ClassMissing{
		"sound": {
			Functions: map[string][]apidoc.DocEntry{
				"play": {{Description: "Starts playback."}},
			},
		},
		"Sprite": {
			Functions: map[string][]apidoc.DocEntry{
				"draw": {
					{
						Params:      []apidoc.Param{{Type: "Image", Name: "p_image"}, {Type: "int", Name: "p_x"}},
						Description: "Draws an image.\nUses the current blend mode.",
					},
					{
						Params: []apidoc.Param{{Type: "Image", Name: "p_image"}},
						Static: true,
					},
				},
				"width": {{Returns: []apidoc.Return{{Type: "int"}}, Description: "Width in pixels."}},
			},
			Variables: map[string]apidoc.DocEntry{
				"flip": {Type: "Sprite::Flip", Description: "Current flip state."},
			},
			Constants: map[string]apidoc.DocEntry{
				"MAX_LAYERS": {Type: "int", Description: "Upper bound on layers."},
			},
		},
	}}
}

func TestEmitterDeterminism(t *testing.T) {
	e := testEmitter()

	first, err := e.Bytes(sampleMissing())
	require.NoError(t, err)
	second, err := e.Bytes(sampleMissing())
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical inputs must produce byte-identical artifacts")
}

func TestEmitterLayout(t *testing.T) {
	e := testEmitter()

	var buf bytes.Buffer
	require.NoError(t, e.Emit(&buf, sampleMissing()))
	out := buf.String()

	t.Run("classes ordered case-insensitively", func(t *testing.T) {
		assert.Less(t, strings.Index(out, "sound:"), strings.Index(out, "Sprite:"))
	})

	t.Run("single overload is inline", func(t *testing.T) {
		assert.Contains(t, out, "play:\n      notes: Starts playback.")
	})

	t.Run("multiple overloads are enumerated", func(t *testing.T) {
		assert.Contains(t, out, "draw:\n    - params:")
	})

	t.Run("params map types and carry link text", func(t *testing.T) {
		assert.Contains(t, out, `@{Image|image}, number`)
	})

	t.Run("returns are mapped", func(t *testing.T) {
		assert.Contains(t, out, "return: number")
	})

	t.Run("descriptions are single-line", func(t *testing.T) {
		assert.Contains(t, out, "Draws an image. Uses the current blend mode.")
	})

	t.Run("static flag is carried", func(t *testing.T) {
		assert.Contains(t, out, "static: true")
	})

	t.Run("scoped variable type becomes anchor link", func(t *testing.T) {
		assert.Contains(t, out, "@{Sprite#Flip}")
	})

	t.Run("constants keep their slot", func(t *testing.T) {
		assert.Contains(t, out, "constants:")
		assert.Contains(t, out, "MAX_LAYERS:")
	})
}

func TestEmitterRoundTrip(t *testing.T) {
	// The artifact must be loadable back as data in the reference shape.
	e := testEmitter()

	data, err := e.Bytes(sampleMissing())
	require.NoError(t, err)

	var classes map[string]apidoc.Class
	require.NoError(t, yaml.Unmarshal(data, &classes))

	require.Contains(t, classes, "Sprite")
	assert.Len(t, classes["Sprite"].Functions["draw"], 2)
	assert.Len(t, classes["Sprite"].Functions["width"], 1)
	require.NotNil(t, classes["Sprite"].Variables["flip"].Notes)
	assert.Equal(t, "Current flip state.", *classes["Sprite"].Variables["flip"].Notes)
}

func TestEmitterEmptySet(t *testing.T) {
	e := testEmitter()

	data, err := e.Bytes(&diff.MissingSet{Classes: map[string]diff.ClassMissing{}})
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(data))
}

func TestNormalizeDescription(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "One line.", "One line."},
		{"line break", "Two\nlines.", "Two lines."},
		{"sentence break", "First.\nSecond.", "First. Second."},
		{"whitespace runs", "a   b\t\tc", "a b c"},
		{"windows breaks", "a\r\nb", "a b"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeDescription(tt.in))
		})
	}
}
