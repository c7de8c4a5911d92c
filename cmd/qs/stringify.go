package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/queryforge/qs/stringify"
)

func stringifyRun(cfg *StringifyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Stringify.Parse(cc, args)
	if err != nil {
		return err
	}
	doc, err := readDocument(args)
	if err != nil {
		return err
	}
	res, err := stringify.Stringify(doc, cfg.stringifyOpts()...)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		theLog.Info("stringified", "keys", len(doc), "bytes", len(res))
	}
	fmt.Fprintln(cc.Out, res)
	return nil
}

// readDocument loads a yaml or json document from the argument file or
// stdin. yaml covers json input too.
func readDocument(args []string) (map[string]any, error) {
	var (
		d   []byte
		err error
	)
	if len(args) > 0 && args[0] != "-" {
		d, err = os.ReadFile(args[0])
	} else {
		d, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return nil, err
	}
	doc := map[string]any{}
	if err := yaml.Unmarshal(d, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
