package qs

import (
	"github.com/expr-lang/expr"

	"github.com/queryforge/qs/debug"
	"github.com/queryforge/qs/node"
	"github.com/queryforge/qs/parse"
)

// Eval parses a query string and evaluates an expression against the
// result. The parsed mapping is the expression environment, so
// filter.age.gte reads straight into the structure. Expressions use
// expr-lang syntax.
func Eval(query, expression string, options ...parse.ParseOption) (any, error) {
	env, err := parse.Parse(query, options...)
	if err != nil {
		return nil, err
	}
	return EvalParsed(env, expression)
}

// EvalParsed evaluates an expression against an already parsed query.
func EvalParsed(env map[string]any, expression string) (any, error) {
	prg, err := expr.Compile(expression, exprOpts(env)...)
	if err != nil {
		return nil, err
	}
	if debug.Eval() {
		debug.Logf("eval %q over %v\n", expression, env)
	}
	return expr.Run(prg, env)
}

// exprOpts exposes helpers to expressions: has(path) probes a dotted
// path, get(path) reads one, str(v) renders any value in its
// canonical string form.
func exprOpts(env map[string]any) []expr.Option {
	return []expr.Option{
		expr.Env(env),
		expr.AllowUndefinedVariables(),
		expr.Function("has", func(params ...any) (any, error) {
			_, err := Get(env, params[0].(string))
			return err == nil, nil
		},
			new(func(string) bool)),
		expr.Function("get", func(params ...any) (any, error) {
			return Get(env, params[0].(string))
		},
			new(func(string) any)),
		expr.Function("str", func(params ...any) (any, error) {
			return node.StringForm(params[0]), nil
		},
			new(func(any) string)),
	}
}
