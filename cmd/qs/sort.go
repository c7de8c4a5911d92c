package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/queryforge/qs/model"
)

func sortRun(cfg *SortConfig, cc *cli.Context, args []string) error {
	if len(args) == 0 {
		return usagef("sort needs at least one item")
	}
	for _, item := range args {
		dir, name, err := model.ParseSortItem(item)
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%s\t%s\n", dir, name)
	}
	return nil
}
