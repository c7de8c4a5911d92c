package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := defaultMainConfig()
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "qs").
		WithSynopsis("qs [opts] command [opts]").
		WithDescription("qs is a tool for working with nested query strings.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return qsMain(cfg, cc, args)
		}).
		WithSubs(
			ParseCommand(cfg),
			StringifyCommand(cfg),
			GetCommand(cfg),
			DiffCommand(cfg),
			MergeCommand(cfg),
			EvalCommand(cfg),
			SortCommand(cfg))
}

func ParseCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ParseConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("parse").
		WithAliases("p", "pa").
		WithSynopsis("parse [opts] [query]").
		WithDescription("parse a query string into a document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return parseRun(cfg, cc, args)
		})
	cfg.Parse = cmd
	return cmd
}

func StringifyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &StringifyConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "k",
		Description: "filter selector, repeatable: a key name or an array index",
		Type:        cli.NamedFuncOpt(cfg.filterOpt, "(selector)"),
	})
	cmd := cli.NewCommand("stringify").
		WithAliases("s", "str").
		WithSynopsis("stringify [opts] [file]").
		WithDescription("render a yaml or json document as a query string").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return stringifyRun(cfg, cc, args)
		})
	cfg.Stringify = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <path> [query]").
		WithDescription("look up a dotted path in a parsed query").
		WithRun(func(cc *cli.Context, args []string) error {
			return getRun(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithSynopsis("diff <query-a> <query-b>").
		WithDescription("structurally diff two query strings").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diffRun(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MergeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("merge").
		WithAliases("m").
		WithSynopsis("merge <base-query> <patch-query>").
		WithDescription("merge-patch one query string with another").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return mergeRun(cfg, cc, args)
		})
	cfg.Merge = cmd
	return cmd
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("eval").
		WithAliases("e", "ev").
		WithSynopsis("eval <query> <expression>").
		WithDescription("evaluate an expression over a parsed query").
		WithRun(func(cc *cli.Context, args []string) error {
			return evalRun(cfg, cc, args)
		})
	cfg.Eval = cmd
	return cmd
}

func SortCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SortConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("sort").
		WithSynopsis("sort <item> [items]").
		WithDescription("parse sort_by items and print direction/field pairs").
		WithRun(func(cc *cli.Context, args []string) error {
			return sortRun(cfg, cc, args)
		})
	cfg.Sort = cmd
	return cmd
}
