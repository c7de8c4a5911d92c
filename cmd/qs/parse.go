package main

import (
	"github.com/scott-cotton/cli"

	"github.com/queryforge/qs/parse"
)

func parseRun(cfg *ParseConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Parse.Parse(cc, args)
	if err != nil {
		return err
	}
	input, err := queryArg(args)
	if err != nil {
		return err
	}
	var res map[string]any
	if cfg.Flat {
		res, err = parse.ParseFlat(input, cfg.parseOpts()...)
	} else {
		res, err = parse.Parse(input, cfg.parseOpts()...)
	}
	if err != nil {
		return err
	}
	if cfg.Verbose {
		theLog.Info("parsed", "bytes", len(input), "keys", len(res))
	}
	return cfg.emit(cc.Out, res)
}
