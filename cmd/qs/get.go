package main

import (
	"github.com/scott-cotton/cli"

	"github.com/queryforge/qs"
)

func getRun(cfg *GetConfig, cc *cli.Context, args []string) error {
	if len(args) == 0 {
		return usagef("get needs a path")
	}
	path := args[0]
	input, err := queryArg(args[1:])
	if err != nil {
		return err
	}
	res, err := qs.Parse(input, cfg.parseOpts()...)
	if err != nil {
		return err
	}
	v, err := qs.Get(res, path)
	if err != nil {
		return err
	}
	return cfg.emit(cc.Out, v)
}
