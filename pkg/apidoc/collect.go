package apidoc

import (
	"strings"
)

// collector walks the supplied root trees and produces pruned copies
// ready for validation and rendering. The inputs are never mutated.
type collector struct {
	ignore  map[string]struct{}
	minimal map[string]struct{}
	// visited guards against cycles and duplicate emission. Keys are
	// qualified names, so the same object re-exported under two import
	// paths is emitted once, at its first position.
	visited map[string]struct{}
}

func newCollector(cfg Config) *collector {
	return &collector{
		ignore:  stringSet(cfg.ObjectsToIgnore),
		minimal: stringSet(cfg.MinimalClasses),
		visited: make(map[string]struct{}),
	}
}

// Collect returns one pruned tree per root, in the given order. Roots are
// always admitted, even when underscore-prefixed; only their members are
// subject to the privacy rule.
func (c *collector) Collect(roots []*Documentable) []*Documentable {
	collected := make([]*Documentable, 0, len(roots))
	for _, root := range roots {
		if root == nil {
			continue
		}
		if node := c.collect(root, ""); node != nil {
			collected = append(collected, node)
		}
	}
	return collected
}

func (c *collector) collect(node *Documentable, parent string) *Documentable {
	// A node's canonical key is its pre-set qualified name when the
	// builder provided one; this is what makes the same object reached
	// via two import paths, or a circular reference, collapse into a
	// single emission. Otherwise the key is derived from the traversal
	// path.
	qualified := node.QualifiedName
	if qualified == "" {
		qualified = node.Name
		if parent != "" {
			qualified = parent + "." + node.Name
		}
	}
	if _, ignored := c.ignore[qualified]; ignored {
		return nil
	}
	if _, seen := c.visited[qualified]; seen {
		return nil
	}
	c.visited[qualified] = struct{}{}

	clone := *node
	clone.QualifiedName = qualified
	clone.contract = parseDocContract(node.Doc)
	clone.Signature.Params = append([]Parameter(nil), node.Signature.Params...)
	clone.Children = nil

	_, minimal := c.minimal[qualified]
	constructorKept := false
	for _, child := range node.Children {
		if child == nil || strings.HasPrefix(child.Name, "_") {
			continue
		}
		if minimal {
			if !child.Constructor || constructorKept {
				continue
			}
		}
		kept := c.collect(child, qualified)
		if kept == nil {
			continue
		}
		clone.Children = append(clone.Children, kept)
		if child.Constructor {
			constructorKept = true
		}
	}
	return &clone
}
