package apidoc

import (
	"github.com/pkg/errors"
)

// Result is the outcome of a documentation run: the rendered Markdown
// document plus every discrepancy found between written documentation
// and actual signatures. Discrepancies never prevent rendering; callers
// that want them to fail a build check the slice themselves.
type Result struct {
	Markdown      string
	Discrepancies []Discrepancy
}

// Generate documents the given root modules as a single Markdown string.
//
// Roots are traversed in the given order and their members in definition
// order, subject to the configuration's ignore set and minimal-class set.
// Every reachable object is emitted at most once; re-exported or circular
// references are dropped at their second occurrence. Each callable's
// documented parameter listing, when present, is checked against its
// actual signature and mismatches are reported in the result.
//
// The inputs are not mutated and no other state is touched; two calls
// with the same inputs produce byte-identical documents.
func Generate(cfg Config, roots ...*Documentable) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	collected := newCollector(cfg).Collect(roots)
	discrepancies := validateTree(collected)
	markdown := newRenderer(cfg).render(collected)
	return Result{Markdown: markdown, Discrepancies: discrepancies}, nil
}

// GenerateClasses documents a flat list of classes belonging to the named
// parent module, without a document title or module section. The
// configuration's Title and Description are ignored.
func GenerateClasses(cfg Config, moduleName string, classes ...*Documentable) (Result, error) {
	return generateFlat(cfg, moduleName, KindClass, classes)
}

// GenerateFunctions documents a flat list of functions belonging to the
// named parent module, without a document title or module section. The
// configuration's Title and Description are ignored.
func GenerateFunctions(cfg Config, moduleName string, functions ...*Documentable) (Result, error) {
	return generateFlat(cfg, moduleName, KindFunction, functions)
}

func generateFlat(cfg Config, moduleName string, kind Kind, members []*Documentable) (Result, error) {
	if moduleName == "" {
		return Result{}, errors.New("module name is required")
	}
	for _, member := range members {
		if member != nil && member.Kind != kind {
			return Result{}, errors.Errorf("%s is a %s, expected a %s", member.Name, member.Kind, kind)
		}
	}
	parent := &Documentable{
		Name:     moduleName,
		Kind:     KindModule,
		Children: members,
	}
	collected := newCollector(cfg).Collect([]*Documentable{parent})
	if len(collected) == 0 {
		return Result{}, nil
	}
	discrepancies := validateTree(collected)
	markdown := newRenderer(cfg).renderFlat(collected[0])
	return Result{Markdown: markdown, Discrepancies: discrepancies}, nil
}
