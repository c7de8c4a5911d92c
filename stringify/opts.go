package stringify

import (
	"fmt"
	"strings"

	"github.com/queryforge/qs/token"
)

// ArrayFormat selects how array members render in keys.
type ArrayFormat int

const (
	// Indices renders explicit positions: a[0]=b&a[1]=c.
	Indices ArrayFormat = iota
	// Brackets renders append notation: a[]=b&a[]=c.
	Brackets
	// Repeat renders the bare key per member: a=b&a=c.
	Repeat
	// Comma joins members into a single pair: a=b,c.
	Comma
)

func (f ArrayFormat) String() string {
	switch f {
	case Indices:
		return "indices"
	case Brackets:
		return "brackets"
	case Repeat:
		return "repeat"
	case Comma:
		return "comma"
	}
	return fmt.Sprintf("array-format(%d)", int(f))
}

// ParseArrayFormat maps a format name to its ArrayFormat. An unknown
// name is ErrArrayFormat.
func ParseArrayFormat(v string) (ArrayFormat, error) {
	switch strings.ToLower(v) {
	case "", "indices":
		return Indices, nil
	case "brackets":
		return Brackets, nil
	case "repeat":
		return Repeat, nil
	case "comma":
		return Comma, nil
	}
	return Indices, fmt.Errorf("%w: %q", ErrArrayFormat, v)
}

type stringifyOpts struct {
	allowDots        bool
	encode           bool
	encodeValuesOnly bool
	sort             bool
	sortReverse      bool
	charsetSentinel  bool

	format     ArrayFormat
	formatName string

	delimiter string

	charset     token.Charset
	charsetName string

	filter []any
}

func defaultStringifyOpts() *stringifyOpts {
	return &stringifyOpts{
		encode:    true,
		delimiter: "&",
	}
}

func (o *stringifyOpts) resolveCharset() (token.Charset, error) {
	if o.charsetName != "" {
		return token.ParseCharset(o.charsetName)
	}
	return o.charset, nil
}

func (o *stringifyOpts) resolveFormat() (ArrayFormat, error) {
	if o.formatName != "" {
		return ParseArrayFormat(o.formatName)
	}
	if o.format < Indices || o.format > Comma {
		return Indices, fmt.Errorf("%w: %d", ErrArrayFormat, int(o.format))
	}
	return o.format, nil
}

type StringifyOption func(*stringifyOpts)

// AllowDots renders named sub-keys as .name instead of [name].
func AllowDots(v bool) StringifyOption {
	return func(o *stringifyOpts) { o.allowDots = v }
}

// Encode percent-escapes keys and values. Default on.
func Encode(v bool) StringifyOption {
	return func(o *stringifyOpts) { o.encode = v }
}

// EncodeValuesOnly leaves keys readable and escapes values alone.
func EncodeValuesOnly(v bool) StringifyOption {
	return func(o *stringifyOpts) { o.encodeValuesOnly = v }
}

// Format selects the array rendering. Default Indices.
func Format(f ArrayFormat) StringifyOption {
	return func(o *stringifyOpts) { o.format = f }
}

// FormatName selects the array rendering by name, as a command line
// would. An unknown name is a configuration error.
func FormatName(name string) StringifyOption {
	return func(o *stringifyOpts) { o.formatName = name }
}

// Sort orders pairs by rendered key.
func Sort(v bool) StringifyOption {
	return func(o *stringifyOpts) { o.sort = v }
}

// SortReverse orders pairs by rendered key, descending.
func SortReverse(v bool) StringifyOption {
	return func(o *stringifyOpts) { o.sortReverse = v }
}

// Delimiter sets the pair separator. Default "&".
func Delimiter(s string) StringifyOption {
	return func(o *stringifyOpts) { o.delimiter = s }
}

// Charset selects the escape encoding. Default UTF8.
func Charset(cs token.Charset) StringifyOption {
	return func(o *stringifyOpts) { o.charset = cs }
}

// CharsetName selects the escape encoding by name. An unknown name is
// a configuration error.
func CharsetName(name string) StringifyOption {
	return func(o *stringifyOpts) { o.charsetName = name }
}

// CharsetSentinel prepends the utf8=✓ pair announcing the charset.
func CharsetSentinel(v bool) StringifyOption {
	return func(o *stringifyOpts) { o.charsetSentinel = v }
}

// Filter keeps only the selected keys at every level: string selectors
// match object keys, int selectors match array indexes. Anything else
// in the set is a configuration error.
func Filter(selectors ...any) StringifyOption {
	return func(o *stringifyOpts) { o.filter = selectors }
}
