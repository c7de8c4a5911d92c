package node

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUpdate(t *testing.T) {
	tests := []struct {
		name string
		base *Node
		in   *Node
		want any
	}{
		{
			name: "scalar pair becomes list",
			base: Leaf(Named("b"), "c"),
			in:   Leaf(Named("b"), "d"),
			want: []any{"c", "d"},
		},
		{
			name: "list extends on repeat",
			base: Leaf(Named("b"), []any{"c", "d"}),
			in:   Leaf(Named("b"), "e"),
			want: []any{"c", "d", "e"},
		},
		{
			name: "leaf meets structure",
			base: Leaf(Named("b"), "c"),
			in:   Wrap(Named("b"), Leaf(Named("d"), "e")),
			want: map[string]any{"c": true, "d": "e"},
		},
		{
			name: "leaf meets structure sharing the marker key",
			base: Leaf(Named("b"), "c"),
			in:   Wrap(Named("b"), Leaf(Named("c"), "d")),
			want: map[string]any{"c": []any{true, "d"}},
		},
		{
			name: "list leaf meets structure",
			base: Leaf(Named("b"), []any{"c", "f"}),
			in:   Wrap(Named("b"), Leaf(Named("d"), "e")),
			want: map[string]any{"[c, f]": true, "d": "e"},
		},
		{
			name: "structure meets leaf",
			base: Wrap(Named("b"), Leaf(Named("c"), "d")),
			in:   Leaf(Named("b"), "e"),
			want: map[string]any{"c": "d", "e": true},
		},
		{
			name: "structure meets leaf keyed like a child",
			base: Wrap(Named("a"), Leaf(Named("a"), "y")),
			in:   Leaf(Named("a"), "b"),
			want: map[string]any{"a": []any{"y", "b"}},
		},
		{
			name: "structures merge by key",
			base: Wrap(Named("a"), Leaf(Named("b"), "c")),
			in:   Wrap(Named("a"), Wrap(Named("b"), Leaf(Named("d"), "e"))),
			want: map[string]any{"b": map[string]any{"c": true, "d": "e"}},
		},
		{
			name: "disjoint children append",
			base: Wrap(Named("a"), Leaf(Named("b"), "c")),
			in:   Wrap(Named("a"), Leaf(Named("d"), "e")),
			want: map[string]any{"b": "c", "d": "e"},
		},
		{
			name: "indexed children re-sort",
			base: Wrap(Named("a"), Leaf(Indexed(1), "c")),
			in:   Wrap(Named("a"), Leaf(Indexed(0), "b")),
			want: []any{"b", "c"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.base.Update(tt.in)
			got := tt.base.Serialize(false)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Update mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSetIndex(t *testing.T) {
	t.Run("first pending resolves to zero", func(t *testing.T) {
		n := Wrap(Named("a"), Leaf(Pending(), "b"))
		if err := n.SetIndex(nil, 20); err != nil {
			t.Fatalf("SetIndex: %v", err)
		}
		want := Wrap(Named("a"), Leaf(Indexed(0), "b"))
		if diff := cmp.Diff(want, n); diff != "" {
			t.Errorf("SetIndex mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("pending continues after the base maximum", func(t *testing.T) {
		base := Wrap(Named("a"), Leaf(Indexed(3), "b"))
		n := Wrap(Named("a"), Leaf(Pending(), "c"))
		if err := n.SetIndex(base, 20); err != nil {
			t.Fatalf("SetIndex: %v", err)
		}
		if got := n.Children[0].Key; got != Indexed(4) {
			t.Errorf("resolved key = %v, want %v", got, Indexed(4))
		}
	})

	t.Run("nested pending resolves against the matching child", func(t *testing.T) {
		base := Wrap(Named("a"), Wrap(Indexed(0), Leaf(Indexed(0), "y")))
		n := Wrap(Named("a"), Wrap(Indexed(0), Leaf(Pending(), "x")))
		if err := n.SetIndex(base, 20); err != nil {
			t.Fatalf("SetIndex: %v", err)
		}
		if got := n.Children[0].Children[0].Key; got != Indexed(1) {
			t.Errorf("resolved key = %v, want %v", got, Indexed(1))
		}
	})

	t.Run("explicit index over the limit", func(t *testing.T) {
		n := Wrap(Named("a"), Leaf(Indexed(21), "b"))
		err := n.SetIndex(nil, 20)
		if !errors.Is(err, ErrArrayLimit) {
			t.Fatalf("SetIndex error = %v, want ErrArrayLimit", err)
		}
	})

	t.Run("resolved pending over the limit", func(t *testing.T) {
		base := Wrap(Named("a"), Leaf(Indexed(20), "b"))
		n := Wrap(Named("a"), Leaf(Pending(), "c"))
		err := n.SetIndex(base, 20)
		if !errors.Is(err, ErrArrayLimit) {
			t.Fatalf("SetIndex error = %v, want ErrArrayLimit", err)
		}
	})
}

func TestReorder(t *testing.T) {
	n := &Node{
		Key: Named("a"),
		Children: []*Node{
			Leaf(Indexed(2), "c"),
			Leaf(Indexed(0), "a"),
			Leaf(Indexed(1), "b"),
		},
	}
	n.Reorder()
	want := []any{"a", "b", "c"}
	if diff := cmp.Diff(want, n.Serialize(false)); diff != "" {
		t.Errorf("Reorder mismatch (-want +got):\n%s", diff)
	}

	mixed := &Node{
		Key: Named("a"),
		Children: []*Node{
			Leaf(Named("b"), "x"),
			Leaf(Indexed(0), "y"),
		},
	}
	mixed.Reorder()
	if mixed.Children[0].Key != Named("b") {
		t.Errorf("Reorder moved children of a non-array node")
	}
}

func TestToObjectNotation(t *testing.T) {
	n := Wrap(Named("a"), Wrap(Indexed(0), Leaf(Indexed(1), "x")))
	n.ToObjectNotation()
	want := map[string]any{"0": map[string]any{"1": "x"}}
	if diff := cmp.Diff(want, n.Serialize(false)); diff != "" {
		t.Errorf("ToObjectNotation mismatch (-want +got):\n%s", diff)
	}
}

func TestSerializeArrays(t *testing.T) {
	n := &Node{
		Key: Named("a"),
		Children: []*Node{
			Leaf(Indexed(0), "a"),
			Leaf(Indexed(2), "c"),
		},
	}
	if diff := cmp.Diff([]any{"a", "c"}, n.Serialize(false)); diff != "" {
		t.Errorf("compact mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]any{"a", nil, "c"}, n.Serialize(true)); diff != "" {
		t.Errorf("sparse mismatch (-want +got):\n%s", diff)
	}
}

func TestStringForm(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, "null"},
		{true, "true"},
		{false, "false"},
		{"s", "s"},
		{int64(5), "5"},
		{3.5, "3.5"},
		{float64(100000), "100000"},
		{1e21, "1e+21"},
		{[]any{"c", "f"}, "[c, f]"},
		{[]any{int64(1), nil}, "[1, null]"},
	}
	for _, tt := range tests {
		if got := StringForm(tt.in); got != tt.want {
			t.Errorf("StringForm(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLoad(t *testing.T) {
	data := map[string]any{
		"b": map[string]any{"z": "1", "a": "2"},
		"a": []any{"x", "y"},
	}
	got := Load(Named("q"), data, nil)
	want := &Node{
		Key: Named("q"),
		Children: []*Node{
			{
				Key: Named("a"),
				Children: []*Node{
					Leaf(Indexed(0), "x"),
					Leaf(Indexed(1), "y"),
				},
			},
			{
				Key: Named("b"),
				Children: []*Node{
					Leaf(Named("a"), "2"),
					Leaf(Named("z"), "1"),
				},
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFilter(t *testing.T) {
	data := map[string]any{
		"kept":    []any{"x", "y"},
		"dropped": "z",
	}
	got := Load(Named("a"), data, []any{"a", "kept", 0})
	want := &Node{
		Key: Named("a"),
		Children: []*Node{
			{
				Key: Named("kept"),
				Children: []*Node{
					Leaf(Indexed(0), "x"),
				},
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}

	if n := Load(Named("b"), data, []any{"a"}); n != nil {
		t.Errorf("Load admitted a filtered-out top key: %v", n)
	}
}
