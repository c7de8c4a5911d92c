package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/queryforge/qs/token"
)

type (
	obj = map[string]any
	arr = []any
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  []ParseOption
		want  obj
	}{
		{
			name:  "plain pair",
			input: "a=b",
			want:  obj{"a": "b"},
		},
		{
			name:  "empty input",
			input: "",
			want:  obj{},
		},
		{
			name:  "empty value",
			input: "a=",
			want:  obj{"a": ""},
		},
		{
			name:  "nested pair",
			input: "a[b]=c",
			want:  obj{"a": obj{"b": "c"}},
		},
		{
			name:  "two levels",
			input: "a[b][c]=d",
			want:  obj{"a": obj{"b": obj{"c": "d"}}},
		},
		{
			name:  "two top keys",
			input: "a=b&c=d",
			want:  obj{"a": "b", "c": "d"},
		},
		{
			name:  "trailing delimiter",
			input: "a=b&",
			want:  obj{"a": "b"},
		},
		{
			name:  "plus stays literal",
			input: "a+b=c+d",
			want:  obj{"a+b": "c+d"},
		},
		{
			name:  "default depth folds the tail",
			input: "a[b][c][d][e][f][g][h][i]=j",
			want: obj{"a": obj{"b": obj{"c": obj{"d": obj{"e": obj{"f": obj{
				"[g][h][i]": "j",
			}}}}}}},
		},
		{
			name:  "depth one folds early",
			input: "a[b][c][d]=e",
			opts:  []ParseOption{Depth(1)},
			want:  obj{"a": obj{"b": obj{"[c][d]": "e"}}},
		},
		{
			name:  "final token is free",
			input: "a[b][c]=d",
			opts:  []ParseOption{Depth(1)},
			want:  obj{"a": obj{"b": obj{"c": "d"}}},
		},
		{
			name:  "dot notation",
			input: "a.b=c",
			opts:  []ParseOption{AllowDots(true)},
			want:  obj{"a": obj{"b": "c"}},
		},
		{
			name:  "dot notation folds with dots",
			input: "a.b.c.d=e",
			opts:  []ParseOption{AllowDots(true), Depth(1)},
			want:  obj{"a": obj{"b": obj{"c.d": "e"}}},
		},
		{
			name:  "dots stay literal by default",
			input: "a.b=c",
			want:  obj{"a.b": "c"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input, tt.opts...)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseMerge(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  obj
	}{
		{
			name:  "leaf then structure",
			input: "a[b]=c&a[b][d]=e",
			want:  obj{"a": obj{"b": obj{"c": true, "d": "e"}}},
		},
		{
			name:  "structure then leaf",
			input: "a[b][c]=d&a[b]=e",
			want:  obj{"a": obj{"b": obj{"c": "d", "e": true}}},
		},
		{
			name:  "repeated leaf collects a list",
			input: "a[b]=c&a[b]=d",
			want:  obj{"a": obj{"b": arr{"c", "d"}}},
		},
		{
			name:  "list then structure",
			input: "a[b]=c&a[b]=f&a[b][d]=e",
			want:  obj{"a": obj{"b": obj{"[c, f]": true, "d": "e"}}},
		},
		{
			name:  "marker key collides with new child",
			input: "a[b]=c&a[b][c]=d",
			want:  obj{"a": obj{"b": obj{"c": arr{true, "d"}}}},
		},
		{
			name:  "repeated top key",
			input: "a=b&a=c",
			want:  obj{"a": arr{"b", "c"}},
		},
		{
			name:  "disjoint branches",
			input: "a[b]=c&a[d]=e",
			want:  obj{"a": obj{"b": "c", "d": "e"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseParameterLimit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  []ParseOption
		want  obj
	}{
		{
			name:  "excess keys drop",
			input: "a=b&c=d",
			opts:  []ParseOption{ParameterLimit(1)},
			want:  obj{"a": "b"},
		},
		{
			name:  "admitted keys keep merging",
			input: "a=b&a=c",
			opts:  []ParseOption{ParameterLimit(1)},
			want:  obj{"a": arr{"b", "c"}},
		},
		{
			name:  "merging continues past dropped keys",
			input: "a=b&b=c&a=d",
			opts:  []ParseOption{ParameterLimit(1)},
			want:  obj{"a": arr{"b", "d"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input, tt.opts...)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseDelimiters(t *testing.T) {
	got, err := Parse("a=b;c=d", Delimiter(";"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := obj{"a": "b", "c": "d"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("literal delimiter mismatch (-want +got):\n%s", diff)
	}

	got, err = Parse("a=b;c=d,e=f", DelimiterPattern(`[;,]`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want = obj{"a": "b", "c": "d", "e": "f"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("pattern delimiter mismatch (-want +got):\n%s", diff)
	}
}

func TestParseArrayNotation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  []ParseOption
		want  obj
	}{
		{
			name:  "append notation",
			input: "a[]=b&a[]=c",
			want:  obj{"a": arr{"b", "c"}},
		},
		{
			name:  "explicit indexes sort",
			input: "a[1]=c&a[0]=b",
			want:  obj{"a": arr{"b", "c"}},
		},
		{
			name:  "holes compact",
			input: "a[1]=b&a[15]=c",
			want:  obj{"a": arr{"b", "c"}},
		},
		{
			name:  "holes survive with sparse",
			input: "a[0]=b&a[2]=c",
			opts:  []ParseOption{AllowSparse(true)},
			want:  obj{"a": arr{"b", nil, "c"}},
		},
		{
			name:  "index over the limit demotes",
			input: "a[100]=b",
			want:  obj{"a": obj{"100": "b"}},
		},
		{
			name:  "array limit zero demotes any index",
			input: "a[1]=b",
			opts:  []ParseOption{ArrayLimit(0)},
			want:  obj{"a": obj{"1": "b"}},
		},
		{
			name:  "named token demotes the group",
			input: "a[]=b&a[c]=d",
			want:  obj{"a": obj{"0": "b", "c": "d"}},
		},
		{
			name:  "object inside append",
			input: "a[][b]=c",
			want:  obj{"a": arr{obj{"b": "c"}}},
		},
		{
			name:  "index inside append passes through",
			input: "a[][1]=c",
			want:  obj{"a": arr{"c"}},
		},
		{
			name:  "index inside append with sparse",
			input: "a[][1]=c",
			opts:  []ParseOption{AllowSparse(true)},
			want:  obj{"a": arr{nil, "c"}},
		},
		{
			name:  "plain value stays scalar",
			input: "a=c",
			want:  obj{"a": "c"},
		},
		{
			name:  "pending continues after explicit indexes",
			input: "a[0]=b&a[]=c",
			want:  obj{"a": arr{"b", "c"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := append([]ParseOption{ParseArrays(true)}, tt.opts...)
			got, err := Parse(tt.input, opts...)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseArrayParameterLimit(t *testing.T) {
	got, err := Parse("a[0]=b&a[1]=c&b[]=x", ParseArrays(true), ParameterLimit(1))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := obj{"a": arr{"b", "c"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFallback(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  []ParseOption
		want  obj
	}{
		{
			name:  "no separator",
			input: "this_is_unparsable",
			want:  obj{},
		},
		{
			name:  "unterminated bracket",
			input: "a[b=c",
			want:  obj{"a[b": arr{"c"}},
		},
		{
			name:  "nested bracket",
			input: "a[b[c]]=d",
			want:  obj{"a[b[c]]": arr{"d"}},
		},
		{
			name:  "stray closers",
			input: "a[b]]]=d",
			want:  obj{"a[b]]]": arr{"d"}},
		},
		{
			name:  "text after groups",
			input: "a[b][c]d=e",
			want:  obj{"a[b][c]d": arr{"e"}},
		},
		{
			name:  "second separator",
			input: "a=b=c",
			want:  obj{"a": arr{"b=c"}},
		},
		{
			name:  "empty notation token",
			input: "a[]=b&a[]=c&",
			want:  obj{"a[]": arr{"b", "c"}},
		},
		{
			name:  "one bad pair flattens everything",
			input: "a[b]=c&a[b=d",
			want:  obj{"a[b]": arr{"c"}, "a[b": arr{"d"}},
		},
		{
			name:  "plus reads as space",
			input: "a+b=c+d&x[=1",
			want:  obj{"a b": arr{"c d"}, "x[": arr{"1"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input, tt.opts...)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseFlat(t *testing.T) {
	got, err := ParseFlat("a[b]=c&a[b]=d&x")
	if err != nil {
		t.Fatalf("ParseFlat: %v", err)
	}
	want := obj{"a[b]": arr{"c", "d"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseFlat mismatch (-want +got):\n%s", diff)
	}
}

func TestParseEmptyKeys(t *testing.T) {
	got, err := Parse("a[]=&b[]=", AllowEmptyKeys(true))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := obj{"a": obj{"": ""}, "b": obj{"": ""}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}

	got, err = Parse("a[]=b", AllowEmptyKeys(true))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want = obj{"a": obj{"": "b"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParseCharsets(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  []ParseOption
		want  obj
	}{
		{
			name:  "utf-8 escape",
			input: "a=%C2%A7",
			want:  obj{"a": "§"},
		},
		{
			name:  "iso-8859-1 escape",
			input: "a=%A7",
			opts:  []ParseOption{CharsetName("iso-8859-1")},
			want:  obj{"a": "§"},
		},
		{
			name:  "iso-8859-1 key",
			input: "%A7=a",
			opts:  []ParseOption{CharsetName("iso-8859-1")},
			want:  obj{"§": "a"},
		},
		{
			name:  "invalid utf-8 becomes replacement",
			input: "a=%A7",
			want:  obj{"a": "�"},
		},
		{
			name:  "sentinel switches to utf-8",
			input: "utf8=%E2%9C%93&a=%C2%A7",
			opts:  []ParseOption{CharsetName("iso-8859-1"), CharsetSentinel(true)},
			want:  obj{"a": "§"},
		},
		{
			name:  "sentinel switches to iso-8859-1",
			input: "utf8=%26%2310003%3B&a=%A7",
			opts:  []ParseOption{CharsetSentinel(true)},
			want:  obj{"a": "§"},
		},
		{
			name:  "legacy sentinel without semicolon",
			input: "a=%A7&utf8=%26%2310003",
			opts:  []ParseOption{CharsetSentinel(true)},
			want:  obj{"a": "§"},
		},
		{
			name:  "sentinel ignored without the option",
			input: "utf8=%E2%9C%93&a=b",
			want:  obj{"utf8": "✓", "a": "b"},
		},
		{
			name:  "sentinel does not count against the limit",
			input: "utf8=%E2%9C%93&a=b",
			opts:  []ParseOption{CharsetSentinel(true), ParameterLimit(1)},
			want:  obj{"a": "b"},
		},
		{
			name:  "unknown sentinel flattens",
			input: "utf8=%2BJxM-&a=b",
			opts:  []ParseOption{CharsetSentinel(true)},
			want:  obj{"utf8": arr{"+JxM-"}, "a": arr{"b"}},
		},
		{
			name:  "numeric entities interpret",
			input: "a=%26%239786%3B",
			opts:  []ParseOption{CharsetName("iso-8859-1"), InterpretNumericEntities(true)},
			want:  obj{"a": "☺"},
		},
		{
			name:  "numeric entities stay literal by default",
			input: "a=%26%239786%3B",
			opts:  []ParseOption{CharsetName("iso-8859-1")},
			want:  obj{"a": "&#9786;"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input, tt.opts...)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParsePrimitives(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  []ParseOption
		want  obj
	}{
		{
			name:  "off by default",
			input: "a=1&b=true",
			want:  obj{"a": "1", "b": "true"},
		},
		{
			name:  "integers",
			input: "a=1",
			opts:  []ParseOption{ParsePrimitive(true)},
			want:  obj{"a": int64(1)},
		},
		{
			name:  "floats",
			input: "a=1.5",
			opts:  []ParseOption{ParsePrimitive(true)},
			want:  obj{"a": 1.5},
		},
		{
			name:  "booleans and nulls",
			input: "a=true&b=false&c=null&d=None",
			opts:  []ParseOption{ParsePrimitive(true)},
			want:  obj{"a": true, "b": false, "c": nil, "d": nil},
		},
		{
			name:  "strict keeps other spellings",
			input: "a=TRUE&b=NONE",
			opts:  []ParseOption{ParsePrimitive(true)},
			want:  obj{"a": "TRUE", "b": "NONE"},
		},
		{
			name:  "loose matches case-insensitively",
			input: "a=TRUE&b=NONE&c=Null",
			opts:  []ParseOption{ParsePrimitive(true), PrimitiveStrict(false)},
			want:  obj{"a": true, "b": nil, "c": nil},
		},
		{
			name:  "list literal coerces per element",
			input: "a=[1,a,true,null]",
			opts:  []ParseOption{ParsePrimitive(true)},
			want:  obj{"a": arr{int64(1), "a", true, nil}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input, tt.opts...)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseValueLists(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  []ParseOption
		want  obj
	}{
		{
			name:  "comma splits",
			input: "a=b,c",
			opts:  []ParseOption{Comma(true)},
			want:  obj{"a": arr{"b", "c"}},
		},
		{
			name:  "comma leaves plain values scalar",
			input: "a=b",
			opts:  []ParseOption{Comma(true)},
			want:  obj{"a": "b"},
		},
		{
			name:  "comma off keeps the text",
			input: "a=b,c",
			want:  obj{"a": "b,c"},
		},
		{
			name:  "bracket literal needs no option",
			input: "a=[b, c]",
			want:  obj{"a": arr{"b", "c"}},
		},
		{
			name:  "empty bracket literal",
			input: "a=[]",
			want:  obj{"a": arr{}},
		},
		{
			name:  "single element literal stays a list",
			input: "a=[b]",
			want:  obj{"a": arr{"b"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input, tt.opts...)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseFromURL(t *testing.T) {
	got, err := Parse("http://localhost/path?a[b]=c#frag", FromURL(true))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := obj{"a": obj{"b": "c"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}

	got, err = Parse("http://localhost/path", FromURL(true))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if diff := cmp.Diff(obj{}, got); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConfigErrors(t *testing.T) {
	if _, err := Parse("a=b", DelimiterPattern("[")); err == nil {
		t.Errorf("bad delimiter pattern did not error")
	}
	_, err := Parse("a=b", CharsetName("utf-16"))
	if !errors.Is(err, token.ErrBadCharset) {
		t.Errorf("bad charset name error = %v, want ErrBadCharset", err)
	}
}
