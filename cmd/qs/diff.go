package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/queryforge/qs"
	"github.com/queryforge/qs/qsdiff"
)

func diffRun(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return usagef("diff needs two query strings, got %d args", len(args))
	}
	from, err := qs.Parse(args[0], cfg.parseOpts()...)
	if err != nil {
		return err
	}
	to, err := qs.Parse(args[1], cfg.parseOpts()...)
	if err != nil {
		return err
	}
	doc := qsdiff.Diff(from, to)
	if doc == nil {
		return nil
	}
	if cfg.Doc {
		return cfg.emit(cc.Out, doc)
	}
	fmt.Fprint(cc.Out, qsdiff.Render(doc, cfg.colors(cc.Out)))
	return nil
}
