package parse

import (
	"strconv"
	"strings"
)

// value applies the right-hand side transforms: a bracketed literal
// like [a, b] always becomes a list, comma splitting applies when
// enabled, and primitive coercion runs per element.
func (p *parser) value(raw string) any {
	if len(raw) >= 2 && raw[0] == '[' && raw[len(raw)-1] == ']' {
		inner := raw[1 : len(raw)-1]
		if strings.TrimSpace(inner) == "" {
			return []any{}
		}
		parts := strings.Split(inner, ",")
		vs := make([]any, len(parts))
		for i, part := range parts {
			vs[i] = p.scalar(strings.TrimSpace(part))
		}
		return vs
	}
	if p.opts.comma && strings.Contains(raw, ",") {
		parts := strings.Split(raw, ",")
		vs := make([]any, len(parts))
		for i, part := range parts {
			vs[i] = p.scalar(part)
		}
		return vs
	}
	return p.scalar(raw)
}

func (p *parser) scalar(raw string) any {
	if !p.opts.parsePrimitive {
		return raw
	}
	return coerce(raw, p.opts.primitiveStrict)
}

// coerce maps text to int64, float64, bool, or nil, leaving anything
// else a string. Strict mode accepts only the exact true/false/null/
// None spellings; loose mode matches them case-insensitively.
func coerce(raw string, strict bool) any {
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	if strict {
		switch raw {
		case "true":
			return true
		case "false":
			return false
		case "null", "None":
			return nil
		}
		return raw
	}
	switch strings.ToLower(raw) {
	case "true":
		return true
	case "false":
		return false
	case "null", "none":
		return nil
	}
	return raw
}
