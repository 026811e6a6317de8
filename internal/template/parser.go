// Package template implements the small placeholder grammar used by resume
// templates: `{{path}}` variables, `{{#if path}}...{{/if}}` conditionals, and
// `{{#each path}}...{{/each}}` loops. Source is parsed once into a node tree
// and then evaluated against a data context, so nested blocks expand cleanly
// instead of relying on repeated global string replacement.
package template

import (
	"strings"
)

// node is a single element of a parsed template.
type node interface{}

// textNode is a literal run of template text.
type textNode string

// varNode substitutes the value at a dotted path; unresolvable paths render
// as the empty string.
type varNode struct {
	path string
}

// ifNode includes its body only when the path resolves to a truthy value.
type ifNode struct {
	path string
	body []node
}

// eachNode instantiates its body once per element of a list-valued path.
type eachNode struct {
	path string
	body []node
}

// Template is a parsed, immutable template ready for evaluation. A Template
// is safe for concurrent use.
type Template struct {
	nodes []node
}

const (
	openDelim  = "{{"
	closeDelim = "}}"
)

// Parse compiles template source into a Template. The only failure mode is
// malformed block structure (unterminated or mismatched {{#if}}/{{#each}}).
func Parse(src string) (*Template, error) {
	p := &parser{src: src}
	nodes, err := p.parseNodes("")
	if err != nil {
		return nil, err
	}
	return &Template{nodes: nodes}, nil
}

// MustParse parses trusted built-in template source and panics on error.
func MustParse(src string) *Template {
	t, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return t
}

type parser struct {
	src string
	pos int
}

// parseNodes consumes nodes until the closing tag named by until ("if" or
// "each") is found, or until end of input when until is empty.
func (p *parser) parseNodes(until string) ([]node, error) {
	var nodes []node

	for p.pos < len(p.src) {
		open := strings.Index(p.src[p.pos:], openDelim)
		if open < 0 {
			nodes = append(nodes, textNode(p.src[p.pos:]))
			p.pos = len(p.src)
			break
		}
		if open > 0 {
			nodes = append(nodes, textNode(p.src[p.pos:p.pos+open]))
			p.pos += open
		}

		tagStart := p.pos
		end := strings.Index(p.src[p.pos:], closeDelim)
		if end < 0 {
			// A stray "{{" with no closing delimiter is kept as literal text,
			// matching the lenient behavior of the legacy regex engine.
			nodes = append(nodes, textNode(p.src[p.pos:]))
			p.pos = len(p.src)
			break
		}
		tag := strings.TrimSpace(p.src[p.pos+len(openDelim) : p.pos+end])
		p.pos += end + len(closeDelim)

		switch {
		case strings.HasPrefix(tag, "#if"):
			path := strings.TrimSpace(strings.TrimPrefix(tag, "#if"))
			body, err := p.parseNodes("if")
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, ifNode{path: path, body: body})

		case strings.HasPrefix(tag, "#each"):
			path := strings.TrimSpace(strings.TrimPrefix(tag, "#each"))
			body, err := p.parseNodes("each")
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, eachNode{path: path, body: body})

		case strings.HasPrefix(tag, "/"):
			closing := strings.TrimSpace(strings.TrimPrefix(tag, "/"))
			if until == "" {
				return nil, &ParseError{Offset: tagStart, Message: "unexpected {{/" + closing + "}}"}
			}
			if closing != until {
				return nil, &ParseError{Offset: tagStart, Message: "expected {{/" + until + "}}, found {{/" + closing + "}}"}
			}
			return nodes, nil

		default:
			nodes = append(nodes, varNode{path: tag})
		}
	}

	if until != "" {
		return nil, &ParseError{Offset: len(p.src), Message: "unterminated {{#" + until + "}} block"}
	}
	return nodes, nil
}
