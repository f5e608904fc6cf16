package typeinfo

import (
	"regexp"
	"strings"
)

var qualifierRegex = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*\.`)

// Normalize reduces a type annotation to a canonical form so that an
// annotation written in documentation can be compared with one derived
// from an actual signature.
//
// Package qualifiers and pointer markers are dropped and interior
// whitespace is removed:
//
//	Normalize("*testmodels.Widget") == "Widget"
//	Normalize("[]apidoc.Parameter") == "[]Parameter"
//	Normalize("map[string] int")    == "map[string]int"
//
// A variadic "..." prefix is meaning-bearing and preserved.
func Normalize(annotation string) string {
	s := strings.ReplaceAll(annotation, " ", "")
	s = strings.ReplaceAll(s, "\t", "")
	variadic := strings.HasPrefix(s, "...")
	if variadic {
		s = strings.TrimPrefix(s, "...")
	}
	s = strings.ReplaceAll(s, "*", "")
	s = qualifierRegex.ReplaceAllString(s, "")
	if variadic {
		return "..." + s
	}
	return s
}

// Equal reports whether two annotations denote the same type once
// normalized. Two empty annotations are equal; an empty annotation never
// matches a non-empty one.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
