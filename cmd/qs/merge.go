package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/queryforge/qs"
	"github.com/queryforge/qs/stringify"
)

func mergeRun(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return usagef("merge needs a base and a patch query, got %d args", len(args))
	}
	base, err := qs.Parse(args[0], cfg.parseOpts()...)
	if err != nil {
		return err
	}
	patch, err := qs.Parse(args[1], cfg.parseOpts()...)
	if err != nil {
		return err
	}
	merged, err := qs.Merge(base, patch)
	if err != nil {
		return err
	}
	if cfg.Doc {
		return cfg.emit(cc.Out, merged)
	}
	res, err := stringify.Stringify(merged, stringify.Encode(false))
	if err != nil {
		return err
	}
	fmt.Fprintln(cc.Out, res)
	return nil
}
