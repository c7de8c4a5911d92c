package model

import (
	"fmt"
	"regexp"
)

// Direction of one sort item.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

var (
	signedItem = regexp.MustCompile(`^([+-]?)(\w+)$`)
	callItem   = regexp.MustCompile(`^(asc|desc)\((\w+)\)$`)
	dottedItem = regexp.MustCompile(`^(\w+)\.(asc|desc)$`)
)

// ParseSortItem reads one sort item in any of the three spellings:
// a sign prefix ("+name", "-name", bare name ascending), a call form
// ("asc(name)", "desc(name)"), or a suffix ("name.asc", "name.desc").
func ParseSortItem(item string) (Direction, string, error) {
	if m := signedItem.FindStringSubmatch(item); m != nil {
		if m[1] == "-" {
			return Descending, m[2], nil
		}
		return Ascending, m[2], nil
	}
	if m := callItem.FindStringSubmatch(item); m != nil {
		if m[1] == "desc" {
			return Descending, m[2], nil
		}
		return Ascending, m[2], nil
	}
	if m := dottedItem.FindStringSubmatch(item); m != nil {
		if m[2] == "desc" {
			return Descending, m[1], nil
		}
		return Ascending, m[1], nil
	}
	return Ascending, "", fmt.Errorf("invalid sort item %q", item)
}
