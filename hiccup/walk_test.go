package hiccup

import (
	"errors"
	"testing"

	"github.com/signadot/hiccup/ir"
)

func TestDecompose(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		tag       string
		hasAttrs  bool
		nChildren int
	}{
		{"tag only", `["br"]`, "br", false, 0},
		{"attrs", `["div", {"id": "x"}]`, "div", true, 0},
		{"attrs and children", `["div", {"id": "x"}, "a", ["b"]]`, "div", true, 2},
		{"text first", `["p", "x", ["b"]]`, "p", false, 2},
		{"array first", `["p", ["b"], "x"]`, "p", false, 2},
		{"second object is a child", `["p", {"a": 1}, {"b": 2}]`, "p", true, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := Decompose(mustParse(t, tt.in), 3)
			if err != nil {
				t.Fatal(err)
			}
			if e.Tag != tt.tag {
				t.Errorf("tag %q, want %q", e.Tag, tt.tag)
			}
			if (e.Attrs != nil) != tt.hasAttrs {
				t.Errorf("attrs %v, want present=%t", e.Attrs, tt.hasAttrs)
			}
			if len(e.Children) != tt.nChildren {
				t.Errorf("%d children, want %d", len(e.Children), tt.nChildren)
			}
			if e.Depth != 3 {
				t.Errorf("depth %d, want 3", e.Depth)
			}
		})
	}
}

func TestDecomposeErrors(t *testing.T) {
	tests := []struct {
		name string
		in   *ir.Node
		want error
	}{
		{"nil", nil, ErrShape},
		{"string", ir.FromString("div"), ErrShape},
		{"object", ir.FromKeyVals(nil), ErrShape},
		{"null", ir.Null(), ErrShape},
		{"empty", ir.FromSlice(nil), ErrShape},
		{"number tag", ir.FromSlice([]*ir.Node{ir.FromInt(5)}), ErrTagType},
		{"array tag", ir.FromSlice([]*ir.Node{ir.FromSlice([]*ir.Node{ir.FromString("div")})}), ErrTagType},
		{"nil tag", ir.FromSlice([]*ir.Node{nil}), ErrTagType},
		{"nil attribute value", ir.FromSlice([]*ir.Node{ir.FromString("a"),
			ir.FromKeyVals([]ir.KeyVal{{Key: "x", Val: nil}})}), ErrAttributeType},
		{"nil attribute key", ir.FromSlice([]*ir.Node{ir.FromString("a"),
			{Type: ir.ObjectType, Fields: []*ir.Node{nil}, Values: []*ir.Node{ir.FromString("v")}}}), ErrAttributeType},
		{"unpaired attributes", ir.FromSlice([]*ir.Node{ir.FromString("a"),
			{Type: ir.ObjectType, Fields: []*ir.Node{ir.FromString("k")}}}), ErrAttributeType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decompose(tt.in, 2)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			var herr *Error
			if !errors.As(err, &herr) {
				t.Fatalf("expected *Error, got %T", err)
			}
			if herr.Depth != 2 {
				t.Errorf("depth %d, want 2", herr.Depth)
			}
		})
	}
}

func TestEachChildOrder(t *testing.T) {
	e, err := Decompose(mustParse(t, `["p", "a", ["b"], "c", 4, "never"]`), 0)
	if err != nil {
		t.Fatal(err)
	}
	var seen []string
	err = e.EachChild(
		func(s string) error {
			seen = append(seen, "text:"+s)
			return nil
		},
		func(child *ir.Node) error {
			seen = append(seen, "elem:"+child.Values[0].String)
			return nil
		})
	if !errors.Is(err, ErrChildType) {
		t.Fatalf("expected ErrChildType, got %v", err)
	}
	want := []string{"text:a", "elem:b", "text:c"}
	if len(seen) != len(want) {
		t.Fatalf("seen %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("seen[%d] = %q, want %q", i, seen[i], want[i])
		}
	}
	var herr *Error
	if errors.As(err, &herr) && (herr.Depth != 1 || herr.Tag != "p") {
		t.Errorf("error at depth %d tag %q, want depth 1 tag p", herr.Depth, herr.Tag)
	}
}
