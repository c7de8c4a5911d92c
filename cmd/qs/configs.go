package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/queryforge/qs/parse"
	"github.com/queryforge/qs/qsdiff"
	"github.com/queryforge/qs/stringify"
)

type MainConfig struct {
	J bool `cli:"name=j aliases=json desc='write documents as json'"`
	Y bool `cli:"name=y aliases=yaml desc='write documents as yaml (default)'"`

	Color   bool `cli:"name=color desc='force color output'"`
	Verbose bool `cli:"name=v aliases=verbose desc='log what is being done'"`

	Depth      int  `cli:"name=depth desc='nesting depth budget'"`
	ParamLimit int  `cli:"name=limit desc='max distinct top-level keys'"`
	ArrayLimit int  `cli:"name=arrayLimit desc='max array index'"`
	Arrays     bool `cli:"name=arrays desc='parse array notation'"`
	Dots       bool `cli:"name=dots desc='split keys on dots'"`
	Sparse     bool `cli:"name=sparse desc='keep array holes as nulls'"`
	Empty      bool `cli:"name=empty desc='allow empty notation keys'"`
	Comma      bool `cli:"name=comma desc='split values on commas'"`
	Primitive  bool `cli:"name=primitive desc='coerce numbers, booleans, null'"`
	Loose      bool `cli:"name=loose desc='match boolean and null spellings case-insensitively'"`
	URL        bool `cli:"name=url desc='treat input as a whole url'"`
	Sentinel   bool `cli:"name=sentinel desc='honor a utf8 charset sentinel pair'"`
	Entities   bool `cli:"name=entities desc='interpret numeric character references'"`

	Delimiter string `cli:"name=d aliases=delimiter desc='pair separator'"`
	Pattern   string `cli:"name=p aliases=pattern desc='pair separator regexp'"`
	Charset   string `cli:"name=charset desc='utf-8 or iso-8859-1'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func defaultMainConfig() *MainConfig {
	return &MainConfig{
		Depth:      5,
		ParamLimit: 1000,
		ArrayLimit: 20,
	}
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	res := []parse.ParseOption{
		parse.Depth(cfg.Depth),
		parse.ParameterLimit(cfg.ParamLimit),
		parse.ArrayLimit(cfg.ArrayLimit),
		parse.ParseArrays(cfg.Arrays),
		parse.AllowDots(cfg.Dots),
		parse.AllowSparse(cfg.Sparse),
		parse.AllowEmptyKeys(cfg.Empty),
		parse.Comma(cfg.Comma),
		parse.ParsePrimitive(cfg.Primitive),
		parse.PrimitiveStrict(!cfg.Loose),
		parse.FromURL(cfg.URL),
		parse.CharsetSentinel(cfg.Sentinel),
		parse.InterpretNumericEntities(cfg.Entities),
	}
	if cfg.Delimiter != "" {
		res = append(res, parse.Delimiter(cfg.Delimiter))
	}
	if cfg.Pattern != "" {
		res = append(res, parse.DelimiterPattern(cfg.Pattern))
	}
	if cfg.Charset != "" {
		res = append(res, parse.CharsetName(cfg.Charset))
	}
	return res
}

// emit writes a document result, yaml by default and json with -j.
func (cfg *MainConfig) emit(w io.Writer, v any) error {
	if cfg.J {
		d, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		w.Write(d)
		w.Write([]byte{'\n'})
		return nil
	}
	d, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	w.Write(d)
	return nil
}

// colors resolves diff coloring: -color forces it on, otherwise it
// follows whether the output is a terminal.
func (cfg *MainConfig) colors(w io.Writer) *qsdiff.Colors {
	if cfg.Color {
		return qsdiff.NewColors()
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return qsdiff.NewColors()
	}
	return nil
}

type ParseConfig struct {
	*MainConfig
	Flat bool `cli:"name=flat desc='parse without notation'"`

	Parse *cli.Command
}

type StringifyConfig struct {
	*MainConfig
	Format     string `cli:"name=f aliases=format desc='array format: indices, brackets, repeat, comma'"`
	SDots      bool   `cli:"name=sdots desc='render named sub-keys with dots'"`
	Sort       bool   `cli:"name=sort desc='sort pairs by key'"`
	SortRev    bool   `cli:"name=sortRev desc='sort pairs by key, descending'"`
	NoEncode   bool   `cli:"name=raw desc='skip percent-encoding'"`
	ValuesOnly bool   `cli:"name=valuesOnly desc='percent-encode values only'"`

	Filter []any

	Stringify *cli.Command
}

func (cfg *StringifyConfig) stringifyOpts() []stringify.StringifyOption {
	res := []stringify.StringifyOption{
		stringify.AllowDots(cfg.SDots),
		stringify.Encode(!cfg.NoEncode),
		stringify.EncodeValuesOnly(cfg.ValuesOnly),
		stringify.Sort(cfg.Sort),
		stringify.SortReverse(cfg.SortRev),
		stringify.CharsetSentinel(cfg.Sentinel),
	}
	if cfg.Format != "" {
		res = append(res, stringify.FormatName(cfg.Format))
	}
	if cfg.Delimiter != "" {
		res = append(res, stringify.Delimiter(cfg.Delimiter))
	}
	if cfg.Charset != "" {
		res = append(res, stringify.CharsetName(cfg.Charset))
	}
	if len(cfg.Filter) > 0 {
		res = append(res, stringify.Filter(cfg.Filter...))
	}
	return res
}

// filterOpt collects -k selectors: decimal arguments select array
// indexes, anything else object keys.
func (cfg *StringifyConfig) filterOpt(_ *cli.Context, a string) (any, error) {
	if i, err := strconv.Atoi(a); err == nil {
		cfg.Filter = append(cfg.Filter, i)
		return i, nil
	}
	cfg.Filter = append(cfg.Filter, a)
	return a, nil
}

type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Doc bool `cli:"name=doc desc='emit the diff document instead of lines'"`

	Diff *cli.Command
}

type MergeConfig struct {
	*MainConfig
	Doc bool `cli:"name=doc desc='emit the merged document instead of a query string'"`

	Merge *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Eval *cli.Command
}

type SortConfig struct {
	*MainConfig
	Sort *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// queryArg resolves the query string input: the argument itself, or
// stdin when absent or "-".
func queryArg(args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		return args[0], nil
	}
	d, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return trimNewline(string(d)), nil
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}

func usagef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", cli.ErrUsage, fmt.Sprintf(format, args...))
}
