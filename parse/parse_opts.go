package parse

import (
	"regexp"

	"github.com/queryforge/qs/token"
)

type parseOpts struct {
	depth          int
	parameterLimit int
	arrayLimit     int
	parseArrays    bool
	allowDots      bool
	allowEmptyKeys bool
	allowSparse    bool
	comma          bool

	delimiter        string
	delimiterRe      *regexp.Regexp
	delimiterPattern string

	fromURL bool

	charset         token.Charset
	charsetName     string
	charsetSentinel bool
	numericEntities bool

	parsePrimitive  bool
	primitiveStrict bool
}

func defaultParseOpts() *parseOpts {
	return &parseOpts{
		depth:           5,
		parameterLimit:  1000,
		arrayLimit:      20,
		delimiter:       "&",
		primitiveStrict: true,
	}
}

func (o *parseOpts) pattern() (*regexp.Regexp, error) {
	if o.delimiterRe != nil {
		return o.delimiterRe, nil
	}
	if o.delimiterPattern == "" {
		return nil, nil
	}
	return regexp.Compile(o.delimiterPattern)
}

func (o *parseOpts) resolveCharset() (token.Charset, error) {
	if o.charsetName != "" {
		return token.ParseCharset(o.charsetName)
	}
	return o.charset, nil
}

type ParseOption func(*parseOpts)

// Depth bounds how many nested levels a key may address before the
// rest of its notation folds into a single literal key.
func Depth(n int) ParseOption {
	return func(o *parseOpts) { o.depth = n }
}

// ParameterLimit caps how many distinct top-level keys are admitted.
// Pairs for keys beyond the cap are dropped; pairs for keys already
// admitted keep merging.
func ParameterLimit(n int) ParseOption {
	return func(o *parseOpts) { o.parameterLimit = n }
}

// ArrayLimit caps the largest index array notation may address.
// Beyond it the key group demotes to object notation.
func ArrayLimit(n int) ParseOption {
	return func(o *parseOpts) { o.arrayLimit = n }
}

// ParseArrays turns on array notation: a[]=x appends and a[0]=x
// indexes. Off, those brackets read as literal object keys.
func ParseArrays(v bool) ParseOption {
	return func(o *parseOpts) { o.parseArrays = v }
}

// AllowDots additionally splits the base segment on '.', so a.b[c]
// tokenizes like a[b][c].
func AllowDots(v bool) ParseOption {
	return func(o *parseOpts) { o.allowDots = v }
}

// AllowEmptyKeys admits empty notation tokens, as in a[]=b without
// array parsing, instead of treating them as malformed.
func AllowEmptyKeys(v bool) ParseOption {
	return func(o *parseOpts) { o.allowEmptyKeys = v }
}

// AllowSparse keeps holes in parsed arrays as nil entries instead of
// compacting them away.
func AllowSparse(v bool) ParseOption {
	return func(o *parseOpts) { o.allowSparse = v }
}

// Comma splits plain values on ',' into lists. A value with no comma
// stays scalar.
func Comma(v bool) ParseOption {
	return func(o *parseOpts) { o.comma = v }
}

// Delimiter sets the literal pair separator. Default "&".
func Delimiter(s string) ParseOption {
	return func(o *parseOpts) { o.delimiter = s }
}

// DelimiterPattern sets a regular expression pair separator. It
// compiles inside Parse; a bad expression is a configuration error.
func DelimiterPattern(expr string) ParseOption {
	return func(o *parseOpts) { o.delimiterPattern = expr }
}

// DelimiterRegexp sets a precompiled pair separator. It wins over both
// Delimiter and DelimiterPattern.
func DelimiterRegexp(re *regexp.Regexp) ParseOption {
	return func(o *parseOpts) { o.delimiterRe = re }
}

// FromURL treats the input as a whole URL: only the query component
// between '?' and an eventual '#' is parsed.
func FromURL(v bool) ParseOption {
	return func(o *parseOpts) { o.fromURL = v }
}

// Charset selects how percent-escaped bytes decode. Default UTF8.
func Charset(cs token.Charset) ParseOption {
	return func(o *parseOpts) { o.charset = cs }
}

// CharsetName selects the charset by name, as a command line would. An
// unknown name is a configuration error.
func CharsetName(name string) ParseOption {
	return func(o *parseOpts) { o.charsetName = name }
}

// CharsetSentinel scans for a utf8= pair before parsing and lets it
// override the configured charset.
func CharsetSentinel(v bool) ParseOption {
	return func(o *parseOpts) { o.charsetSentinel = v }
}

// InterpretNumericEntities rewrites decoded &#NNNN; references into
// their runes. Mostly useful together with the iso-8859-1 charset.
func InterpretNumericEntities(v bool) ParseOption {
	return func(o *parseOpts) { o.numericEntities = v }
}

// ParsePrimitive coerces values that read as numbers, booleans, or
// null into int64, float64, bool, or nil.
func ParsePrimitive(v bool) ParseOption {
	return func(o *parseOpts) { o.parsePrimitive = v }
}

// PrimitiveStrict keeps primitive coercion to the exact
// true/false/null/None spellings. Off, they match case-insensitively.
func PrimitiveStrict(v bool) ParseOption {
	return func(o *parseOpts) { o.primitiveStrict = v }
}
