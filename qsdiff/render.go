package qsdiff

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/fatih/color"

	"github.com/queryforge/qs/node"
)

// Colors styles rendered diff lines. Nil funcs render plain.
type Colors struct {
	Insert  func(string, ...any) string
	Delete  func(string, ...any) string
	Replace func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Insert:  color.RGB(8, 196, 16).SprintfFunc(),
		Delete:  color.RGB(196, 32, 16).SprintfFunc(),
		Replace: color.RGB(198, 198, 46).SprintfFunc(),
	}
}

// Render flattens a diff document into one line per differing path:
// inserts prefixed '+', deletes '-', replacements '~'. A nil document
// renders empty.
func Render(doc map[string]any, colors *Colors) string {
	if colors == nil {
		colors = &Colors{}
	}
	if colors.Insert == nil {
		colors.Insert = plain
	}
	if colors.Delete == nil {
		colors.Delete = plain
	}
	if colors.Replace == nil {
		colors.Replace = plain
	}
	var b strings.Builder
	renderInto(&b, doc, "", colors)
	return b.String()
}

func plain(format string, a ...any) string {
	return fmt.Sprintf(format, a...)
}

func renderInto(b *strings.Builder, doc map[string]any, path string, c *Colors) {
	for _, k := range slices.Sorted(maps.Keys(doc)) {
		p := k
		if path != "" {
			p = path + "." + k
		}
		m, ok := doc[k].(map[string]any)
		if !ok {
			continue
		}
		if v, ok := marker(m, InsertKey); ok {
			b.WriteString(c.Insert("%s", fmt.Sprintf("+ %s: %s", p, node.StringForm(v))))
			b.WriteByte('\n')
			continue
		}
		if v, ok := marker(m, DeleteKey); ok {
			b.WriteString(c.Delete("%s", fmt.Sprintf("- %s: %s", p, node.StringForm(v))))
			b.WriteByte('\n')
			continue
		}
		if v, ok := marker(m, ReplaceKey); ok {
			body, _ := v.(map[string]any)
			line := fmt.Sprintf("~ %s: %s -> %s", p,
				node.StringForm(body["from"]), node.StringForm(body["to"]))
			if e, ok := body["edits"].(string); ok {
				line += " (" + e + ")"
			}
			b.WriteString(c.Replace("%s", line))
			b.WriteByte('\n')
			continue
		}
		renderInto(b, m, p, c)
	}
}

func marker(m map[string]any, key string) (any, bool) {
	if len(m) != 1 {
		return nil, false
	}
	v, ok := m[key]
	return v, ok
}
