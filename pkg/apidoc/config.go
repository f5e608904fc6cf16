package apidoc

import (
	"github.com/nobl9/govy/pkg/govy"
	"github.com/nobl9/govy/pkg/rules"
	"github.com/pkg/errors"
)

// Config controls a single documentation run. It is passed by value and
// never mutated; every run is a pure function of the configuration and
// the input trees.
type Config struct {
	// Title is the main heading of the generated document.
	Title string
	// Description is optional text inserted between the title and the
	// table of contents.
	Description string
	// TableOfContents toggles the linked table of contents.
	TableOfContents bool
	// MinimalClasses lists qualified names of classes for which only the
	// constructor is documented.
	MinimalClasses []string
	// ObjectsToIgnore lists qualified names excluded from traversal,
	// together with all of their members.
	ObjectsToIgnore []string
	// LatexPagebreak inserts a LaTeX-style page break before each module
	// section and after each class section, for Pandoc PDF conversion.
	LatexPagebreak bool
}

var configValidator = govy.New(
	govy.For(func(c Config) string { return c.Title }).
		WithName("title").
		Rules(rules.StringNotEmpty()),
).WithName("Config")

// Validate checks that the configuration is complete enough to generate
// a document.
func (c Config) Validate() error {
	if err := configValidator.Validate(c); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	return nil
}

// stringSet builds the lookup sets used by the collector. Markers which
// match nothing reachable from the roots are silently inert.
func stringSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}
