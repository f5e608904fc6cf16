package introspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyrjana/go-api-documenter/pkg/apidoc"
)

const testmodelsPath = "github.com/vyrjana/go-api-documenter/internal/testmodels"

func TestLoad(t *testing.T) {
	modules, err := Load(testmodelsPath)
	require.NoError(t, err)
	require.Len(t, modules, 1)
	module := modules[0]

	assert.Equal(t, "testmodels", module.Name)
	assert.Equal(t, "testmodels", module.QualifiedName)
	assert.Equal(t, apidoc.KindModule, module.Kind)
	assert.Contains(t, module.Doc, "small documented API surface")

	names := make([]string, 0, len(module.Children))
	for _, child := range module.Children {
		names = append(names, child.Name)
	}
	assert.Equal(t, []string{"Widget", "Describe", "Stale"}, names)

	widget := module.Children[0]
	assert.Equal(t, apidoc.KindClass, widget.Kind)
	memberNames := make([]string, 0, len(widget.Children))
	for _, member := range widget.Children {
		memberNames = append(memberNames, member.Name)
	}
	assert.Equal(t, []string{"NewWidget", "Resize", "Size"}, memberNames)

	constructor := widget.Children[0]
	assert.True(t, constructor.Constructor)
	require.Len(t, constructor.Signature.Params, 1)
	assert.Equal(t, apidoc.Parameter{Name: "size", Annotation: "int"}, constructor.Signature.Params[0])
	assert.Equal(t, "*Widget", constructor.Signature.Return)
	assert.Equal(t, constructor.Signature, widget.Signature)

	size := widget.Children[2]
	assert.Equal(t, "int", size.Signature.Return)

	describe := module.Children[1]
	assert.Equal(t, apidoc.KindFunction, describe.Kind)
	require.Len(t, describe.Signature.Params, 1)
	assert.Equal(t, "*Widget", describe.Signature.Params[0].Annotation)
}

func TestLoadUnexportedNamesAreAbsent(t *testing.T) {
	modules, err := Load(testmodelsPath)
	require.NoError(t, err)
	for _, child := range modules[0].Children {
		assert.NotEqual(t, "hidden", child.Name)
	}
}

func TestLoadSameNamedPackages(t *testing.T) {
	modules, err := Load(
		"github.com/vyrjana/go-api-documenter/internal/testmodels/alpha/util",
		"github.com/vyrjana/go-api-documenter/internal/testmodels/beta/util",
	)
	require.NoError(t, err)
	require.Len(t, modules, 2)
	assert.ElementsMatch(t,
		[]string{"alpha.util", "beta.util"},
		[]string{modules[0].QualifiedName, modules[1].QualifiedName},
	)

	result, err := apidoc.Generate(apidoc.Config{Title: "utils"}, modules...)
	require.NoError(t, err)
	assert.Empty(t, result.Discrepancies)
	assert.Contains(t, result.Markdown, "## **alpha.util**")
	assert.Contains(t, result.Markdown, "## **beta.util**")
	assert.Contains(t, result.Markdown, "Clamp(size: int, bound: int) -> int")
	assert.Contains(t, result.Markdown, "Join(parts: ...string) -> string")
}

func TestLoadNoMatch(t *testing.T) {
	_, err := Load("github.com/vyrjana/go-api-documenter/internal/doesnotexist")
	require.Error(t, err)
}

func TestLoadedModulesGenerate(t *testing.T) {
	modules, err := Load(testmodelsPath)
	require.NoError(t, err)

	cfg := apidoc.Config{Title: "testmodels API", TableOfContents: true}
	result, err := apidoc.Generate(cfg, modules...)
	require.NoError(t, err)

	assert.Contains(t, result.Markdown, "### **testmodels.Widget**")
	assert.Contains(t, result.Markdown, "#### **testmodels.Widget.NewWidget**")
	assert.Contains(t, result.Markdown, "Resize(size: int)")

	// The only stale documentation in the package belongs to Stale.
	require.Len(t, result.Discrepancies, 1)
	assert.Equal(t, "testmodels.Stale", result.Discrepancies[0].Object)
	assert.Equal(t, apidoc.ParamCountMismatch, result.Discrepancies[0].Kind)
}

func TestLoadedMinimalClass(t *testing.T) {
	modules, err := Load(testmodelsPath)
	require.NoError(t, err)

	cfg := apidoc.Config{
		Title:          "testmodels API",
		MinimalClasses: []string{"testmodels.Widget"},
	}
	result, err := apidoc.Generate(cfg, modules...)
	require.NoError(t, err)

	assert.Contains(t, result.Markdown, "#### **testmodels.Widget.NewWidget**")
	assert.NotContains(t, result.Markdown, "Resize")
	assert.NotContains(t, result.Markdown, "Size")
}
