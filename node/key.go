package node

import "strconv"

// KeyKind discriminates the three ways a child is addressed under its
// parent.
type KeyKind int

const (
	// KeyNamed addresses by object-notation name.
	KeyNamed KeyKind = iota
	// KeyIndexed addresses by explicit array index.
	KeyIndexed
	// KeyPending marks an append ([] notation) whose index resolves
	// against the siblings already merged for the same top-level key.
	KeyPending
)

func (k KeyKind) String() string {
	switch k {
	case KeyNamed:
		return "named"
	case KeyIndexed:
		return "indexed"
	case KeyPending:
		return "pending"
	}
	return "unknown"
}

// Key is a comparable value type; two keys are the same child slot
// exactly when they are ==.
type Key struct {
	Kind  KeyKind
	Name  string
	Index int
}

func Named(name string) Key {
	return Key{Kind: KeyNamed, Name: name}
}

func Indexed(i int) Key {
	return Key{Kind: KeyIndexed, Index: i}
}

func Pending() Key {
	return Key{Kind: KeyPending}
}

func (k Key) IsInt() bool {
	return k.Kind == KeyIndexed
}

// String renders the key as a mapping key: indexes in decimal, pending
// keys empty.
func (k Key) String() string {
	switch k.Kind {
	case KeyIndexed:
		return strconv.Itoa(k.Index)
	case KeyPending:
		return ""
	default:
		return k.Name
	}
}
