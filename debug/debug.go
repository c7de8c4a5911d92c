package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse     bool
	Fallback  bool
	Stringify bool
	Merge     bool
	Diff      bool
	Eval      bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("QS_DEBUG_PARSE")
	d.Fallback = boolEnv("QS_DEBUG_FALLBACK")
	d.Stringify = boolEnv("QS_DEBUG_STRINGIFY")
	d.Merge = boolEnv("QS_DEBUG_MERGE")
	d.Diff = boolEnv("QS_DEBUG_DIFF")
	d.Eval = boolEnv("QS_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Fallback() bool {
	return d.Fallback
}
func Stringify() bool {
	return d.Stringify
}
func Merge() bool {
	return d.Merge
}
func Diff() bool {
	return d.Diff
}
func Eval() bool {
	return d.Eval
}
