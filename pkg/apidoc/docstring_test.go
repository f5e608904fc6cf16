package apidoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocContract(t *testing.T) {
	t.Run("full contract", func(t *testing.T) {
		text := `Resize changes the widget size.
Can be called repeatedly.

Parameters
----------
size: int = 10
    The new size.
    Must be positive.
label: string
    A display label.

Returns
-------
error
`
		contract := parseDocContract(text)
		assert.Equal(t, "Resize changes the widget size.\nCan be called repeatedly.", contract.Preamble)
		require.True(t, contract.HasParams)
		require.Len(t, contract.Params, 2)
		assert.Equal(t, Parameter{
			Name:        "size",
			Annotation:  "int",
			Default:     "10",
			Description: "The new size.\nMust be positive.",
		}, contract.Params[0])
		assert.Equal(t, Parameter{
			Name:        "label",
			Annotation:  "string",
			Description: "A display label.",
		}, contract.Params[1])
		assert.Equal(t, "error", contract.Return)
	})

	t.Run("no contract sections", func(t *testing.T) {
		contract := parseDocContract("Just a description.\n")
		assert.Equal(t, "Just a description.", contract.Preamble)
		assert.False(t, contract.HasParams)
		assert.Empty(t, contract.Params)
		assert.Empty(t, contract.Return)
	})

	t.Run("empty text", func(t *testing.T) {
		contract := parseDocContract("")
		assert.Empty(t, contract.Preamble)
		assert.False(t, contract.HasParams)
	})

	t.Run("returns without parameters", func(t *testing.T) {
		contract := parseDocContract("Doc.\n\nReturns\n-------\nint\n")
		assert.Equal(t, "Doc.", contract.Preamble)
		assert.False(t, contract.HasParams)
		assert.Equal(t, "int", contract.Return)
	})

	t.Run("empty parameter listing", func(t *testing.T) {
		contract := parseDocContract("Doc.\n\nParameters\n----------\n\nReturns\n-------\nint\n")
		assert.True(t, contract.HasParams)
		assert.Empty(t, contract.Params)
		assert.Equal(t, "int", contract.Return)
	})

	t.Run("heading requires underline", func(t *testing.T) {
		contract := parseDocContract("Parameters\nare documented elsewhere.\n")
		assert.False(t, contract.HasParams)
		assert.Equal(t, "Parameters\nare documented elsewhere.", contract.Preamble)
	})

	t.Run("common indentation is stripped", func(t *testing.T) {
		text := "\n    Indented doc.\n\n    Parameters\n    ----------\n    size: int\n        The size.\n"
		contract := parseDocContract(text)
		assert.Equal(t, "Indented doc.", contract.Preamble)
		require.True(t, contract.HasParams)
		require.Len(t, contract.Params, 1)
		assert.Equal(t, "size", contract.Params[0].Name)
		assert.Equal(t, "The size.", contract.Params[0].Description)
	})
}

func TestSplitNameAnnotationDefault(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		wantName   string
		wantAnnot  string
		wantDefalt string
	}{
		{name: "name only", line: "size", wantName: "size"},
		{name: "name and annotation", line: "size: int", wantName: "size", wantAnnot: "int"},
		{name: "name annotation default", line: "size: int = 10", wantName: "size", wantAnnot: "int", wantDefalt: "10"},
		{name: "name and default", line: "size = 10", wantName: "size", wantDefalt: "10"},
		{name: "quoted default", line: `label: string = "hi"`, wantName: "label", wantAnnot: "string", wantDefalt: "hi"},
		{name: "single quoted default", line: "label: string = 'hi'", wantName: "label", wantAnnot: "string", wantDefalt: "hi"},
		{name: "variadic annotation", line: "parts: ...string", wantName: "parts", wantAnnot: "...string"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			name, annotation, def := splitNameAnnotationDefault(tc.line)
			assert.Equal(t, tc.wantName, name)
			assert.Equal(t, tc.wantAnnot, annotation)
			assert.Equal(t, tc.wantDefalt, def)
		})
	}
}

func TestEscapeDocLines(t *testing.T) {
	t.Run("escapes stray pipes", func(t *testing.T) {
		out := escapeDocLines([]string{"either a | b"})
		assert.Equal(t, []string{`either a \| b`}, out)
	})

	t.Run("keeps table rows", func(t *testing.T) {
		lines := []string{"| a | b |", "| - | - |", "| 1 | 2 |"}
		assert.Equal(t, lines, escapeDocLines(lines))
	})

	t.Run("plain lines untouched", func(t *testing.T) {
		lines := []string{"no pipes here"}
		assert.Equal(t, lines, escapeDocLines(lines))
	})
}
