package hiccup

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/signadot/hiccup/ir"
)

func TestRenderExample(t *testing.T) {
	got, err := Render(mustParse(t, exampleTree))
	if err != nil {
		t.Fatal(err)
	}
	want := `<body>
  <div id="myDiv">
    <h1 class="header">
      <a resource="iri:example">Hello World!</a>
    </h1>
  </div>
</body>`
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty element", `["div"]`, `<div></div>`},
		{"text only", `["p", "a", "b"]`, `<p>ab</p>`},
		{"text not escaped", `["p", "<b>&</b>"]`, `<p><b>&</b></p>`},
		{"mixed children", `["p", "x", ["b", "y"], "z"]`, "<p>x\n  <b>y</b>z\n</p>"},
		{"siblings", `["ul", ["li", "1"], ["li", "2"]]`, "<ul>\n  <li>1</li>\n  <li>2</li>\n</ul>"},
		{"empty nested", `["div", ["span"]]`, "<div>\n  <span></span>\n</div>"},
		{"attribute order", `["a", {"resource": "r", "href": "h", "class": "c"}]`, `<a resource="r" href="h" class="c"></a>`},
		{"scalar attributes", `["td", {"n": 3, "f": 1.5, "neg": -2, "b": true, "f2": false, "z": null}]`,
			`<td n="3" f="1.5" neg="-2" b="true" f2="false" z="null"></td>`},
		{"attribute value not escaped", `["p", {"title": "a\"b"}]`, `<p title="a"b"></p>`},
		{"number text kept", `["p", {"v": 1.0, "e": 1e2, "big": 123456789012345678901234567890}]`,
			`<p v="1.0" e="1e2" big="123456789012345678901234567890"></p>`},
		{"checked", `["input", {"type": "checkbox", "checked": false}]`, `<input type="checkbox" checked></input>`},
		{"checked any value", `["input", {"checked": [1, 2]}]`, `<input checked></input>`},
		{"meta", `["meta", {"charset": "utf-8"}]`, `<meta charset="utf-8"/>`},
		{"link drops children", `["link", {"rel": "x"}, "text", ["p", "y"]]`, `<link rel="x"/>`},
		{"path", `["path"]`, `<path/>`},
		{"nested void", `["head", ["meta", {"a": "b"}], ["title", "T"]]`,
			"<head>\n  <meta a=\"b\"/>\n  <title>T</title>\n</head>"},
		{"deep", `["a", ["b", ["c", ["d", "x"]]]]`,
			"<a>\n  <b>\n    <c>\n      <d>x</d>\n    </c>\n  </b>\n</a>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(mustParse(t, tt.in))
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestRenderVoidNeverCloses(t *testing.T) {
	for _, tag := range DefaultVoid {
		in := ir.FromSlice([]*ir.Node{
			ir.FromString(tag),
			ir.FromKeyVals([]ir.KeyVal{{Key: "k", Val: ir.FromString("v")}}),
			ir.FromString("text"),
			ir.FromSlice([]*ir.Node{ir.FromString("span"), ir.FromString("x")}),
		})
		got, err := Render(in)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasSuffix(got, "/>") {
			t.Errorf("%s: %q does not end in />", tag, got)
		}
		if strings.Contains(got, "</") {
			t.Errorf("%s: %q has a closing tag", tag, got)
		}
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name  string
		in    *ir.Node
		kind  error
		depth int
	}{
		{"root not list", ir.FromString("div"), ErrShape, 0},
		{"root empty", ir.FromSlice(nil), ErrShape, 0},
		{"nested empty", mustParse(t, `["div", []]`), ErrShape, 1},
		{"tag not string", mustParse(t, `[5]`), ErrTagType, 0},
		{"nested tag", mustParse(t, `["div", ["p", [true]]]`), ErrTagType, 2},
		{"number in attribute position", mustParse(t, `["div", 5, "x"]`), ErrChildType, 1},
		{"null child", mustParse(t, `["div", ["p", null]]`), ErrChildType, 2},
		{"bool child", mustParse(t, `["div", "x", false]`), ErrChildType, 1},
		{"object child", mustParse(t, `["div", ["p"], {"a": 1}]`), ErrChildType, 1},
		{"array attribute", mustParse(t, `["div", ["p", {"class": ["a", "b"]}]]`), ErrAttributeType, 1},
		{"object attribute", mustParse(t, `["div", {"style": {"color": "red"}}]`), ErrAttributeType, 0},
		{"exponent child", mustParse(t, `["p", 1e2]`), ErrChildType, 1},
		{"nil tag in nested element", ir.FromSlice([]*ir.Node{ir.FromString("div"), ir.FromSlice([]*ir.Node{nil})}), ErrTagType, 1},
		{"nil root tag", ir.FromSlice([]*ir.Node{ir.FromSlice([]*ir.Node{nil})}), ErrTagType, 0},
		{"nil attribute value", ir.FromSlice([]*ir.Node{ir.FromString("a"),
			ir.FromKeyVals([]ir.KeyVal{{Key: "x", Val: nil}})}), ErrAttributeType, 0},
		{"void children checked", mustParse(t, `["link", ["p", 5]]`), ErrChildType, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := bytes.NewBuffer(nil)
			err := RenderTo(buf, tt.in)
			if !errors.Is(err, tt.kind) {
				t.Fatalf("expected %v, got %v", tt.kind, err)
			}
			var herr *Error
			if !errors.As(err, &herr) {
				t.Fatalf("expected *Error, got %T", err)
			}
			if herr.Depth != tt.depth {
				t.Errorf("depth %d, want %d (%v)", herr.Depth, tt.depth, err)
			}
			if buf.Len() != 0 {
				t.Errorf("partial output written: %q", buf.String())
			}
		})
	}
}

func TestRenderErrorMessage(t *testing.T) {
	_, err := Render(mustParse(t, `["div", 5, "x"]`))
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	for _, want := range []string{"child type error", `"div"`, "5", "depth 1"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q lacks %q", msg, want)
		}
	}
}

func TestRenderIsPure(t *testing.T) {
	tree := mustParse(t, exampleTree)
	before := tree.Clone()
	a, err := Render(tree)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Render(tree)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("renders differ:\n%s\n%s", a, b)
	}
	if !ir.Equal(before, tree) {
		t.Error("render modified its input")
	}
}

func TestRenderOptions(t *testing.T) {
	tree := mustParse(t, `["div", ["br"], ["meta"]]`)
	got, err := Render(tree, RenderIndent("\t"), RenderVoid("br"))
	if err != nil {
		t.Fatal(err)
	}
	want := "<div>\n\t<br/>\n\t<meta></meta>\n</div>"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestRenderParsesAsHTML(t *testing.T) {
	tree, err := InsertHref(mustParse(t, exampleTree), "?id={curie}")
	if err != nil {
		t.Fatal(err)
	}
	out, err := Render(tree)
	if err != nil {
		t.Fatal(err)
	}
	doc, err := html.Parse(strings.NewReader(out))
	if err != nil {
		t.Fatal(err)
	}
	var anchors []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			anchors = append(anchors, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	if len(anchors) != 1 {
		t.Fatalf("found %d anchors in\n%s", len(anchors), out)
	}
	attrs := map[string]string{}
	for _, a := range anchors[0].Attr {
		attrs[a.Key] = a.Val
	}
	if attrs["href"] != "?id=iri:example" || attrs["resource"] != "iri:example" {
		t.Errorf("anchor attributes %v", attrs)
	}
	if c := anchors[0].FirstChild; c == nil || c.Data != "Hello World!" {
		t.Errorf("anchor text %v", c)
	}
}
