// Package apidoc renders the public API of a set of program modules as a
// single Markdown document, cross-checking written documentation against
// actual callable signatures along the way.
//
// The generator is a stateless, single-pass transformation. Each run
// collects an ordered tree of documentable objects, validates the
// documented contracts, and serializes the result; nothing persists
// between invocations and identical inputs produce byte-identical
// output.
//
// # Input
//
// The input is one [Documentable] tree per root module. Trees can be
// built by hand from pre-extracted metadata, or produced from live Go
// packages by the introspect loader in this repository. Children must be
// listed in definition order; the generator never reorders them.
//
// # Configuration
//
// A [Config] value controls a run:
//
//	cfg := apidoc.Config{
//	    Title:           "libwidget",
//	    TableOfContents: true,
//	    MinimalClasses:  []string{"widgets.Widget"},
//	    ObjectsToIgnore: []string{"widgets.internalHelper"},
//	}
//	result, err := apidoc.Generate(cfg, modules...)
//
// MinimalClasses suppresses everything but the constructor of the named
// classes, which keeps documents short when many subclasses would repeat
// the same members. ObjectsToIgnore removes the named objects and all of
// their members. Both sets are keyed by qualified name; markers that
// match nothing are silently inert.
//
// # Documentation contracts
//
// A callable's documentation may declare its parameters and return type:
//
//	Resize changes the widget size.
//
//	Parameters
//	----------
//	size: int
//	    The new size.
//
//	Returns
//	-------
//	error
//
// When such a listing is present it is compared positionally against the
// actual signature. Mismatched names, annotations or default values are
// reported as [Discrepancy] values in the [Result]; documentation without
// a listing is simply not validated. Discrepancies never abort a run.
//
// # Output
//
// The document consists of a title, an optional description, an optional
// table of contents linking to every section, and one section per object
// in traversal order: heading, documentation text, fenced signature
// block, parameter list and return annotation. With
// [Config.LatexPagebreak] set, LaTeX page-break markers are inserted for
// Pandoc PDF conversion.
package apidoc
