package parse

import (
	"strings"

	"github.com/queryforge/qs/debug"
	"github.com/queryforge/qs/token"
)

// flat is the lenient whole-input reading: literal keys, lenient
// decoding, '+' as space, multi-valued in arrival order. It cannot
// fail on content and ignores the parameter limit.
func (p *parser) flat(pairs []string) map[string]any {
	res := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		rawKey, rawValue, ok := strings.Cut(pair, "=")
		if !ok {
			if debug.Fallback() {
				debug.Logf("skipping pair without separator: %q\n", pair)
			}
			continue
		}
		k := token.DecodeLenient(rawKey, p.cs)
		v := token.DecodeLenient(rawValue, p.cs)
		vs, _ := res[k].([]any)
		res[k] = append(vs, v)
	}
	return res
}
