package apidoc

import (
	"strings"
)

const (
	parametersHeading = "Parameters"
	returnsHeading    = "Returns"
)

// docContract is the machine-readable part of an object's documentation:
// the free-form preamble plus the optional parameter listing and return
// annotation that the validator checks against the actual signature.
type docContract struct {
	Preamble string
	// Params holds the documented parameter listing. HasParams
	// distinguishes "no listing present" from "empty listing".
	Params    []Parameter
	HasParams bool
	Return    string
}

// parseDocContract splits raw documentation text into preamble, parameter
// listing and return annotation. The expected layout mirrors numpydoc:
//
//	Free-form preamble.
//
//	Parameters
//	----------
//	name: annotation = default
//	    Description of the parameter.
//
//	Returns
//	-------
//	annotation
//
// Absent or malformed sections simply yield an empty contract; there is no
// documentation contract to validate in that case.
func parseDocContract(text string) docContract {
	lines := normalizeIndent(strings.Split(text, "\n"))
	var contract docContract
	contract.Preamble = extractPreamble(&lines)
	contract.Params, contract.HasParams = extractParameters(&lines)
	contract.Return = extractReturn(&lines)
	return contract
}

// normalizeIndent trims blank leading and trailing lines and removes the
// indentation shared with the first remaining line.
func normalizeIndent(lines []string) []string {
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return lines
	}
	indent := leadingWhitespace(lines[0])
	if indent == "" {
		return lines
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		if strings.HasPrefix(line, indent) {
			line = strings.TrimRight(line[len(indent):], " \t")
		}
		out[i] = line
	}
	return out
}

func isIndented(line string) bool {
	return strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")
}

func leadingWhitespace(line string) string {
	for i, r := range line {
		if r != ' ' && r != '\t' {
			return line[:i]
		}
	}
	return line
}

// extractPreamble consumes lines up to the first contract heading.
func extractPreamble(lines *[]string) string {
	var preamble []string
	for len(*lines) > 0 {
		line := (*lines)[0]
		if isHeading(line, *lines) {
			break
		}
		*lines = (*lines)[1:]
		preamble = append(preamble, line)
	}
	return strings.TrimSpace(strings.Join(escapeDocLines(preamble), "\n"))
}

// isHeading reports whether line starts a "Parameters" or "Returns"
// section, which requires the dashed underline on the following line.
func isHeading(line string, rest []string) bool {
	name := strings.TrimSpace(line)
	if name != parametersHeading && name != returnsHeading {
		return false
	}
	if len(rest) < 2 {
		return false
	}
	return strings.TrimSpace(rest[1]) == strings.Repeat("-", len(name))
}

func extractParameters(lines *[]string) ([]Parameter, bool) {
	if len(*lines) == 0 || strings.TrimSpace((*lines)[0]) != parametersHeading {
		return nil, false
	}
	if !isHeading((*lines)[0], *lines) {
		return nil, false
	}
	*lines = (*lines)[2:] // heading and underline
	var params []Parameter
	for len(*lines) > 0 {
		line := (*lines)[0]
		if isHeading(line, *lines) {
			break
		}
		*lines = (*lines)[1:]
		if strings.TrimSpace(line) == "" {
			continue
		}
		name, annotation, def := splitNameAnnotationDefault(line)
		if name == "" {
			continue
		}
		// Description lines are indented relative to their entry.
		var description []string
		for len(*lines) > 0 {
			line = (*lines)[0]
			if strings.TrimSpace(line) == "" || !isIndented(line) || isHeading(line, *lines) {
				break
			}
			*lines = (*lines)[1:]
			description = append(description, strings.TrimSpace(line))
		}
		params = append(params, Parameter{
			Name:        name,
			Annotation:  annotation,
			Default:     def,
			Description: strings.Join(escapeDocLines(description), "\n"),
		})
	}
	return params, true
}

func extractReturn(lines *[]string) string {
	for len(*lines) > 0 && strings.TrimSpace((*lines)[0]) == "" {
		*lines = (*lines)[1:]
	}
	if len(*lines) == 0 || strings.TrimSpace((*lines)[0]) != returnsHeading {
		return ""
	}
	if !isHeading((*lines)[0], *lines) {
		return ""
	}
	*lines = (*lines)[2:]
	for len(*lines) > 0 {
		line := strings.TrimSpace((*lines)[0])
		*lines = (*lines)[1:]
		if line != "" {
			return line
		}
	}
	return ""
}

// splitNameAnnotationDefault parses a "name: annotation = default" entry.
// Both annotation and default are optional; "name = default" is accepted.
// Quotes around the default value are stripped.
func splitNameAnnotationDefault(line string) (name, annotation, def string) {
	line = strings.TrimSpace(line)
	if name, rest, ok := strings.Cut(line, ":"); ok {
		annotation := strings.TrimSpace(rest)
		var def string
		if a, d, ok := strings.Cut(annotation, "="); ok {
			annotation = strings.TrimSpace(a)
			def = strings.TrimSpace(d)
		}
		return strings.TrimSpace(name), annotation, unquote(def)
	}
	if name, rest, ok := strings.Cut(line, "="); ok {
		return strings.TrimSpace(name), "", unquote(strings.TrimSpace(rest))
	}
	return line, "", ""
}

func unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' || first == '\'') && (last == '"' || last == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// escapeDocLines escapes pipe characters so stray pipes do not form
// Markdown tables. Lines that already belong to a table, delimited by
// pipes on both ends, are left alone.
func escapeDocLines(lines []string) []string {
	out := make([]string, len(lines))
	inTable := false
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case !strings.Contains(line, "|"):
			inTable = false
			out[i] = line
		case inTable:
			out[i] = line
		case strings.HasPrefix(trimmed, "|") && strings.HasSuffix(trimmed, "|"):
			inTable = true
			out[i] = line
		default:
			out[i] = strings.ReplaceAll(line, "|", `\|`)
		}
	}
	return out
}
