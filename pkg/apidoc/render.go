package apidoc

import (
	"bytes"
	"fmt"
	"strings"
)

const pagebreakMarker = "\\pagebreak"

// renderer serializes collected, validated trees into a single Markdown
// document. Rendering is a pure function of the tree and configuration:
// identical input always yields byte-identical output.
type renderer struct {
	cfg Config
	buf bytes.Buffer
}

func newRenderer(cfg Config) *renderer {
	return &renderer{cfg: cfg}
}

func (r *renderer) render(roots []*Documentable) string {
	if r.cfg.Title != "" {
		fmt.Fprintf(&r.buf, "# %s\n\n", r.cfg.Title)
	}
	if r.cfg.Description != "" {
		fmt.Fprintf(&r.buf, "%s\n\n", r.cfg.Description)
	}
	if r.cfg.TableOfContents {
		r.renderTOC(roots)
	}
	for _, root := range roots {
		r.renderNode(root, 0)
	}
	return r.buf.String()
}

// renderFlat serializes the members of a synthetic parent module without
// emitting the module's own section, mirroring the classes-only and
// functions-only entry points.
func (r *renderer) renderFlat(module *Documentable) string {
	if r.cfg.TableOfContents {
		r.renderTOC(module.Children)
	}
	for _, child := range module.Children {
		r.renderNode(child, 1)
	}
	return r.buf.String()
}

// renderTOC emits one linked entry per documentable, indented to mirror
// the module/class hierarchy.
func (r *renderer) renderTOC(roots []*Documentable) {
	var entries bytes.Buffer
	for _, root := range roots {
		writeTOCEntry(&entries, root, 0)
	}
	if entries.Len() == 0 {
		return
	}
	r.buf.WriteString("**Table of Contents**\n\n")
	r.buf.Write(entries.Bytes())
	r.buf.WriteString("\n")
}

func writeTOCEntry(buf *bytes.Buffer, node *Documentable, indent int) {
	fmt.Fprintf(buf, "%s- [%s](#%s)\n", strings.Repeat("\t", indent), node.Name, anchor(node.QualifiedName))
	for _, child := range node.Children {
		writeTOCEntry(buf, child, indent+1)
	}
}

// renderNode emits the section for node and recurses into its children.
// depth is the nesting level below the document root; heading level is
// depth+2 so root modules render as "##".
func (r *renderer) renderNode(node *Documentable, depth int) {
	if node.Kind == KindModule && r.cfg.LatexPagebreak {
		fmt.Fprintf(&r.buf, "%s\n\n", pagebreakMarker)
	}
	fmt.Fprintf(&r.buf, "%s **%s**\n\n", heading(depth), node.QualifiedName)
	if preamble := node.contract.Preamble; preamble != "" {
		fmt.Fprintf(&r.buf, "%s\n\n", preamble)
	}
	switch node.Kind {
	case KindClass:
		r.writeFence(classLine(node))
	case KindFunction, KindMethod:
		r.writeFence(signatureLine(node))
		r.renderParameters(node.Signature.Params)
		r.renderReturn(node.Signature.Return)
	}
	for _, child := range node.Children {
		r.renderNode(child, depth+1)
	}
	if node.Kind == KindClass && r.cfg.LatexPagebreak {
		fmt.Fprintf(&r.buf, "%s\n\n", pagebreakMarker)
	}
}

func (r *renderer) renderParameters(params []Parameter) {
	if len(params) == 0 {
		return
	}
	r.buf.WriteString("_Parameters_\n\n")
	for _, param := range params {
		if param.Description != "" {
			fmt.Fprintf(&r.buf, "- `%s`: %s\n", param.Name, strings.ReplaceAll(param.Description, "\n", " "))
		} else {
			fmt.Fprintf(&r.buf, "- `%s`\n", param.Name)
		}
	}
	r.buf.WriteString("\n")
}

func (r *renderer) renderReturn(annotation string) {
	if annotation == "" {
		return
	}
	r.buf.WriteString("_Returns_\n\n")
	r.writeFence(annotation)
}

func (r *renderer) writeFence(content string) {
	fmt.Fprintf(&r.buf, "```\n%s\n```\n\n", content)
}

// signatureLine renders "name(a: int = 10, b: string) -> error".
func signatureLine(node *Documentable) string {
	var sb strings.Builder
	sb.WriteString(node.Name)
	sb.WriteString("(")
	sb.WriteString(formatParams(node.Signature.Params))
	sb.WriteString(")")
	if node.Signature.Return != "" {
		sb.WriteString(" -> ")
		sb.WriteString(node.Signature.Return)
	}
	return sb.String()
}

// classLine renders the class header with its parent types, followed by
// the constructor parameters on indented lines. The parameters stay
// visible on the class itself even when the constructor section is
// suppressed by the ignore set or a minimal-class marker.
func classLine(node *Documentable) string {
	var sb strings.Builder
	sb.WriteString(node.Name)
	if node.Parents != "" {
		fmt.Fprintf(&sb, "(%s)", node.Parents)
	}
	for _, param := range node.Signature.Params {
		sb.WriteString("\n\t")
		sb.WriteString(param.Name)
		if param.Annotation != "" {
			sb.WriteString(": " + param.Annotation)
		}
		if param.Default != "" {
			sb.WriteString(" = " + param.Default)
		}
	}
	return sb.String()
}

func formatParams(params []Parameter) string {
	parts := make([]string, 0, len(params))
	for _, param := range params {
		part := param.Name
		if param.Annotation != "" {
			part += ": " + param.Annotation
		}
		if param.Default != "" {
			part += " = " + param.Default
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, ", ")
}

func heading(depth int) string {
	level := depth + 2
	if level > 6 {
		level = 6
	}
	return strings.Repeat("#", level)
}

// anchor derives the in-document link target for a section heading.
// Dots are stripped and the name lowercased, matching the anchors
// generated for the emitted headings.
func anchor(qualified string) string {
	return strings.ReplaceAll(strings.ToLower(qualified), ".", "")
}
