package main

import (
	"github.com/scott-cotton/cli"

	"github.com/queryforge/qs"
)

func evalRun(cfg *EvalConfig, cc *cli.Context, args []string) error {
	if len(args) != 2 {
		return usagef("eval needs a query and an expression, got %d args", len(args))
	}
	res, err := qs.Eval(args[0], args[1], cfg.parseOpts()...)
	if err != nil {
		return err
	}
	return cfg.emit(cc.Out, res)
}
