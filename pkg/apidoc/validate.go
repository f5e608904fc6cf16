package apidoc

import (
	"fmt"

	"github.com/vyrjana/go-api-documenter/internal/typeinfo"
)

// DiscrepancyKind enumerates the ways written documentation can drift
// from a callable's actual signature.
type DiscrepancyKind int

const (
	// ParamCountMismatch means the documented parameter listing has a
	// different number of entries than the actual signature.
	ParamCountMismatch DiscrepancyKind = iota
	// ParamNameMismatch means the documented name at some position
	// differs from the actual parameter name at that position.
	ParamNameMismatch
	// AnnotationMismatch means a documented type annotation differs
	// from the actual one.
	AnnotationMismatch
	// DefaultMismatch means a documented default value differs from the
	// actual one.
	DefaultMismatch
	// ReturnMismatch means the documented return annotation differs
	// from the actual one.
	ReturnMismatch
)

// String implements [fmt.Stringer].
func (k DiscrepancyKind) String() string {
	switch k {
	case ParamCountMismatch:
		return "parameter count mismatch"
	case ParamNameMismatch:
		return "parameter name mismatch"
	case AnnotationMismatch:
		return "annotation mismatch"
	case DefaultMismatch:
		return "default value mismatch"
	case ReturnMismatch:
		return "return annotation mismatch"
	}
	return "unknown"
}

// Discrepancy records one mismatch between an object's documentation and
// its actual signature. Discrepancies are collected, never fatal; the
// caller decides whether any of them should fail the build.
type Discrepancy struct {
	// Object is the qualified name of the offending callable.
	Object string
	Kind   DiscrepancyKind
	Detail string
}

// String implements [fmt.Stringer].
func (d Discrepancy) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Object, d.Kind, d.Detail)
}

// validateTree walks collected trees and checks every callable whose
// documentation carries a parameter listing or return annotation against
// its actual signature. Parameters are compared positionally. As a side
// effect, per-parameter descriptions from matching listings are attached
// to the signature so the renderer can emit them.
func validateTree(roots []*Documentable) []Discrepancy {
	var discrepancies []Discrepancy
	for _, root := range roots {
		walkTree(root, func(node *Documentable) {
			discrepancies = append(discrepancies, validateNode(node)...)
		})
	}
	return discrepancies
}

func walkTree(node *Documentable, fn func(*Documentable)) {
	fn(node)
	for _, child := range node.Children {
		walkTree(child, fn)
	}
}

// validateNode checks a single node. Modules carry no signature; classes
// are validated against their constructor signature, matching the way a
// class doc comment documents construction.
func validateNode(node *Documentable) []Discrepancy {
	if node.Kind == KindModule {
		return nil
	}
	contract := node.contract
	var discrepancies []Discrepancy
	if contract.HasParams {
		discrepancies = compareParams(node, contract.Params)
	}
	if contract.Return != "" && !typeinfo.Equal(contract.Return, node.Signature.Return) {
		discrepancies = append(discrepancies, Discrepancy{
			Object: node.QualifiedName,
			Kind:   ReturnMismatch,
			Detail: fmt.Sprintf("documented %q, actual %q", contract.Return, node.Signature.Return),
		})
	}
	return discrepancies
}

func compareParams(node *Documentable, documented []Parameter) []Discrepancy {
	actual := node.Signature.Params
	if len(documented) != len(actual) {
		// A single discrepancy per callable: once the shapes differ,
		// positional comparison would only produce noise.
		return []Discrepancy{{
			Object: node.QualifiedName,
			Kind:   ParamCountMismatch,
			Detail: fmt.Sprintf("documentation lists %d parameters, signature has %d", len(documented), len(actual)),
		}}
	}
	var discrepancies []Discrepancy
	for i, docParam := range documented {
		sigParam := actual[i]
		if docParam.Name != sigParam.Name {
			discrepancies = append(discrepancies, Discrepancy{
				Object: node.QualifiedName,
				Kind:   ParamNameMismatch,
				Detail: fmt.Sprintf("position %d documented as %q, actual %q", i+1, docParam.Name, sigParam.Name),
			})
			continue
		}
		if !typeinfo.Equal(docParam.Annotation, sigParam.Annotation) {
			discrepancies = append(discrepancies, Discrepancy{
				Object: node.QualifiedName,
				Kind:   AnnotationMismatch,
				Detail: fmt.Sprintf("parameter %q documented as %q, actual %q", docParam.Name, docParam.Annotation, sigParam.Annotation),
			})
		}
		if docParam.Default != sigParam.Default {
			discrepancies = append(discrepancies, Discrepancy{
				Object: node.QualifiedName,
				Kind:   DefaultMismatch,
				Detail: fmt.Sprintf("parameter %q documented default %q, actual %q", docParam.Name, docParam.Default, sigParam.Default),
			})
		}
		// The listing is the authoritative home of parameter prose.
		node.Signature.Params[i].Description = docParam.Description
	}
	return discrepancies
}
