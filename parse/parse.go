package parse

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/queryforge/qs/debug"
	"github.com/queryforge/qs/node"
	"github.com/queryforge/qs/token"
)

// Parse parses a query string into nested Go values.
//
// Structural problems in the input never surface as errors: when any
// pair's notation is malformed, the whole input re-parses with
// ParseFlat semantics instead. Only configuration problems, a bad
// delimiter pattern or an unknown charset name, return an error.
func Parse(input string, options ...ParseOption) (map[string]any, error) {
	o, cs, re, err := resolve(options)
	if err != nil {
		return nil, err
	}
	if o.fromURL {
		input = queryOf(input)
	}
	pairs := token.SplitPairs(input, o.delimiter, re)
	p := &parser{
		opts:        o,
		cs:          cs,
		roots:       map[string]*node.Node{},
		parseArrays: o.parseArrays,
	}
	res, err := p.run(pairs)
	if err != nil {
		if debug.Fallback() {
			debug.Logf("flat fallback: %v\n", err)
		}
		return p.flat(pairs), nil
	}
	return res, nil
}

// ParseFlat parses without notation: keys stay literal and every key
// maps to the list of its values in arrival order. Pairs without '='
// are dropped, escapes decode leniently, and '+' reads as space. This
// is also the shape structural parsing falls back to.
func ParseFlat(input string, options ...ParseOption) (map[string]any, error) {
	o, cs, re, err := resolve(options)
	if err != nil {
		return nil, err
	}
	if o.fromURL {
		input = queryOf(input)
	}
	p := &parser{opts: o, cs: cs}
	return p.flat(token.SplitPairs(input, o.delimiter, re)), nil
}

type parser struct {
	opts  *parseOpts
	cs    token.Charset
	keys  []string
	roots map[string]*node.Node

	// parseArrays starts from the option and drops to false for the
	// rest of the call once any key group breaks array grammar.
	parseArrays bool
}

func resolve(options []ParseOption) (*parseOpts, token.Charset, *regexp.Regexp, error) {
	o := defaultParseOpts()
	for _, f := range options {
		f(o)
	}
	re, err := o.pattern()
	if err != nil {
		return nil, 0, nil, err
	}
	cs, err := o.resolveCharset()
	if err != nil {
		return nil, 0, nil, err
	}
	return o, cs, re, nil
}

func (p *parser) run(pairs []string) (map[string]any, error) {
	work := pairs
	if p.opts.charsetSentinel {
		var err error
		work, err = p.sentinel(pairs)
		if err != nil {
			return nil, err
		}
	}
	for _, pair := range work {
		if err := p.pair(pair); err != nil {
			return nil, err
		}
	}
	res := make(map[string]any, len(p.keys))
	for _, k := range p.keys {
		res[k] = p.roots[k].Serialize(p.opts.allowSparse)
	}
	if debug.Parse() {
		debug.Logf("parsed %d pairs into %d keys: %v\n", len(work), len(p.keys), res)
	}
	return res, nil
}

// sentinel scans for a utf8= pair. A recognized checkmark switches the
// charset for every pair, wherever the sentinel sits, and the pair
// drops from the stream without counting against the parameter limit.
// An unrecognized value aborts structural parsing, so the fallback
// keeps the pair.
func (p *parser) sentinel(pairs []string) ([]string, error) {
	for i, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k != token.SentinelKey {
			continue
		}
		dec, err := token.Decode(v, token.UTF8)
		if err != nil {
			return nil, err
		}
		cs, ok := token.SentinelCharset(dec)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSentinel, dec)
		}
		if debug.Parse() {
			debug.Logf("charset sentinel: %v\n", cs)
		}
		p.cs = cs
		return slices.Delete(slices.Clone(pairs), i, i+1), nil
	}
	return pairs, nil
}

func (p *parser) pair(pair string) error {
	rawKey, rawValue, err := token.CutPair(pair)
	if err != nil {
		return err
	}
	key, err := token.Decode(rawKey, p.cs)
	if err != nil {
		return err
	}
	text, err := token.Decode(rawValue, p.cs)
	if err != nil {
		return err
	}
	if p.opts.numericEntities {
		key = token.UnescapeEntities(key)
		text = token.UnescapeEntities(text)
	}
	value := p.value(text)

	toks, err := token.SplitKey(key, p.opts.allowDots)
	if err != nil {
		return err
	}
	base, subs := toks[0], toks[1:]

	if p.parseArrays {
		if root, ok := p.arrayRoot(base, subs, value); ok {
			p.admit(base, root)
			return nil
		}
		p.demote(base)
	}
	spine, err := lhsParse(subs, value, p.opts.depth, p.opts.allowDots, p.opts.allowEmptyKeys)
	if err != nil {
		return err
	}
	p.admit(base, wrapSpine(base, spine, value))
	return nil
}

// arrayRoot translates one pair under array grammar. It reports false
// when the group cannot stay an array: a named sub-token on top, an
// index past the limit, or a pending index resolving past the limit.
func (p *parser) arrayRoot(base string, subs []string, value any) (*node.Node, bool) {
	spine, err := arrayParse(subs, value, p.opts.depth, p.opts.arrayLimit)
	if err != nil {
		return nil, false
	}
	if spine != nil && spine.Key.Kind == node.KeyNamed {
		return nil, false
	}
	root := wrapSpine(base, spine, value)
	if err := root.SetIndex(p.roots[base], p.opts.arrayLimit); err != nil {
		return nil, false
	}
	return root, true
}

// demote moves a key group out of array notation: integer keys already
// merged restringify to names, and array parsing switches off for the
// rest of the call.
func (p *parser) demote(base string) {
	if debug.Parse() {
		debug.Logf("array grammar broken at %q, demoting\n", base)
	}
	if root := p.roots[base]; root != nil {
		root.ToObjectNotation()
	}
	p.parseArrays = false
}

// admit merges a translated pair into the result set, enforcing the
// parameter limit on distinct top-level keys. Keys already admitted
// keep merging even once the limit is reached.
func (p *parser) admit(base string, root *node.Node) {
	if ex := p.roots[base]; ex != nil {
		ex.Update(root)
		return
	}
	if len(p.keys) >= p.opts.parameterLimit {
		if debug.Parse() {
			debug.Logf("parameter limit %d reached, dropping %q\n", p.opts.parameterLimit, base)
		}
		return
	}
	p.keys = append(p.keys, base)
	p.roots[base] = root
}

func wrapSpine(base string, spine *node.Node, value any) *node.Node {
	if spine == nil {
		return node.Leaf(node.Named(base), value)
	}
	return node.Wrap(node.Named(base), spine)
}

// queryOf cuts the query component out of a URL: between the first '?'
// and an eventual '#'. No '?' means no query.
func queryOf(url string) string {
	_, q, ok := strings.Cut(url, "?")
	if !ok {
		return ""
	}
	if f := strings.IndexByte(q, '#'); f >= 0 {
		q = q[:f]
	}
	return q
}
