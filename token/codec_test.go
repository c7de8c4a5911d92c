package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		cs       Charset
		expected string
	}{
		{name: "plain", in: "abc", cs: UTF8, expected: "abc"},
		{name: "escaped brackets", in: "a%5Bb%5D", cs: UTF8, expected: "a[b]"},
		{name: "utf8 multibyte", in: "%E2%9C%93", cs: UTF8, expected: "✓"},
		{name: "plus is literal", in: "a+b", cs: UTF8, expected: "a+b"},
		{name: "escaped plus", in: "%2BJxM-", cs: UTF8, expected: "+JxM-"},
		{name: "iso section sign", in: "%A7", cs: ISO88591, expected: "§"},
		{name: "iso o slash", in: "%F8", cs: ISO88591, expected: "ø"},
		{name: "utf8 invalid byte replaced", in: "%F8", cs: UTF8, expected: "�"},
		{name: "entity text", in: "%26%2310003%3B", cs: UTF8, expected: "&#10003;"},
		{name: "mixed literal and escaped", in: "caf%C3%A9 x", cs: UTF8, expected: "café x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.in, tt.cs)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDecodeMalformed(t *testing.T) {
	for _, in := range []string{"%", "%2", "a%zz", "%G0", "x%"} {
		_, err := Decode(in, UTF8)
		assert.ErrorIs(t, err, ErrMalformedInput, "input %q", in)
	}
}

func TestDecodeLenient(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		cs       Charset
		expected string
	}{
		{name: "plus to space", in: "a+b", cs: UTF8, expected: "a b"},
		{name: "escaped plus survives", in: "%2BJxM-", cs: UTF8, expected: "+JxM-"},
		{name: "broken escape literal", in: "100%zz", cs: UTF8, expected: "100%zz"},
		{name: "trailing percent", in: "50%", cs: UTF8, expected: "50%"},
		{name: "valid escape", in: "a%20b", cs: UTF8, expected: "a b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DecodeLenient(tt.in, tt.cs))
		})
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		cs       Charset
		expected string
	}{
		{name: "unreserved", in: "a-b_c.d~e/f", cs: UTF8, expected: "a-b_c.d~e/f"},
		{name: "brackets", in: "a[b]", cs: UTF8, expected: "a%5Bb%5D"},
		{name: "space", in: "a b", cs: UTF8, expected: "a%20b"},
		{name: "equals in value", in: "e=f", cs: UTF8, expected: "e%3Df"},
		{name: "utf8 checkmark", in: "✓", cs: UTF8, expected: "%E2%9C%93"},
		{name: "iso byte", in: "§", cs: ISO88591, expected: "%A7"},
		{name: "iso entity for wide rune", in: "✓", cs: ISO88591, expected: "%26%2310003%3B"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Encode(tt.in, tt.cs))
		})
	}
}

func TestUnescapeEntities(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{name: "decimal", in: "&#9786;", expected: "☺"},
		{name: "no semicolon", in: "&#9786", expected: "☺"},
		{name: "hex", in: "&#x2713;", expected: "✓"},
		{name: "embedded", in: "x&#38;y", expected: "x&y"},
		{name: "no digits stays literal", in: "&#;", expected: "&#;"},
		{name: "plain text", in: "a&b", expected: "a&b"},
		{name: "out of range replaced", in: "&#1114112;", expected: "�"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UnescapeEntities(tt.in))
		})
	}
}
