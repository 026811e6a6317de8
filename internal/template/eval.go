package template

import (
	"fmt"
	"strings"
)

// scope is the evaluation context for one nesting level. Inside an {{#each}}
// block the item becomes the innermost scope; bare field names and direct-field
// conditionals resolve against the item first and fall back to the enclosing
// data, which reproduces how the legacy engine substituted root paths before
// expanding loops.
type scope struct {
	data   map[string]any
	item   any
	parent *scope
}

// Execute evaluates the template against the given data tree and returns the
// rendered text. Unresolvable references render as empty strings; Execute
// never fails.
func (t *Template) Execute(data map[string]any) string {
	var sb strings.Builder
	evalNodes(&sb, t.nodes, &scope{data: data})
	return sb.String()
}

func evalNodes(sb *strings.Builder, nodes []node, sc *scope) {
	for _, n := range nodes {
		switch n := n.(type) {
		case textNode:
			sb.WriteString(string(n))
		case varNode:
			sb.WriteString(stringify(sc.resolve(n.path)))
		case ifNode:
			if truthy(sc.resolveCondition(n.path)) {
				evalNodes(sb, n.body, sc)
			}
		case eachNode:
			items, ok := sc.resolve(n.path).([]any)
			if !ok {
				continue
			}
			for _, item := range items {
				evalNodes(sb, n.body, &scope{data: sc.data, item: item, parent: sc})
			}
		}
	}
}

// resolve looks up a dotted path. "this" binds to the current loop item; bare
// names inside a loop try the item's fields before the enclosing data.
func (sc *scope) resolve(path string) any {
	if path == "this" {
		return sc.item
	}
	if sc.item != nil {
		if m, ok := sc.item.(map[string]any); ok && !strings.Contains(path, ".") {
			if v, ok := m[path]; ok {
				return v
			}
		}
	}
	return lookup(sc.data, path)
}

// resolveCondition resolves the path for an {{#if}} test. Inside a loop the
// field is read directly off the item, without dotted-path traversal.
func (sc *scope) resolveCondition(path string) any {
	if sc.item != nil {
		if m, ok := sc.item.(map[string]any); ok {
			if v, ok := m[path]; ok {
				return v
			}
		}
	}
	if path == "this" {
		return sc.item
	}
	return lookup(sc.data, path)
}

// lookup descends a dotted path through nested maps. Any miss yields nil.
func lookup(data map[string]any, path string) any {
	var current any = data
	for _, key := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current, ok = m[key]
		if !ok {
			return nil
		}
	}
	return current
}

// truthy implements the grammar's inclusion test: nil, empty strings, false,
// zero numbers, and empty lists are all falsy.
func truthy(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	default:
		return true
	}
}

// stringify renders a resolved value as template output. Missing values render
// blank; lists and maps have no scalar form and render blank as well.
func stringify(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case []any, map[string]any:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
