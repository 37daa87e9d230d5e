package hiccup

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/hiccup/debug"
	"github.com/signadot/hiccup/ir"
)

// DefaultVoid lists the tags rendered self-closing by default.
var DefaultVoid = []string{"meta", "link", "path"}

type renderOpts struct {
	indent string
	void   map[string]bool
}

type RenderOption func(*renderOpts)

// RenderIndent sets the string written once per depth level before an
// opening tag. The default is two spaces.
func RenderIndent(s string) RenderOption {
	return func(o *renderOpts) { o.indent = s }
}

// RenderVoid replaces the set of self-closing tags.
func RenderVoid(tags ...string) RenderOption {
	return func(o *renderOpts) {
		o.void = make(map[string]bool, len(tags))
		for _, tag := range tags {
			o.void[tag] = true
		}
	}
}

// Render renders a hiccup tree as indented HTML.
func Render(node *ir.Node, opts ...RenderOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := RenderTo(buf, node, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderTo renders a hiccup tree as indented HTML to w. Nothing is
// written if the tree is malformed.
func RenderTo(w io.Writer, node *ir.Node, opts ...RenderOption) error {
	o := &renderOpts{indent: "  "}
	RenderVoid(DefaultVoid...)(o)
	for _, opt := range opts {
		opt(o)
	}
	buf := bytes.NewBuffer(nil)
	if err := o.render(buf, node, 0); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func (o *renderOpts) render(w io.Writer, node *ir.Node, depth int) error {
	e, err := Decompose(node, depth)
	if err != nil {
		return err
	}
	if debug.Render() {
		debug.Logf("render %q depth %d children %d\n", e.Tag, depth, len(e.Children))
	}
	indent := strings.Repeat(o.indent, depth)
	io.WriteString(w, indent)
	io.WriteString(w, "<")
	io.WriteString(w, e.Tag)
	if err := o.renderAttrs(w, e); err != nil {
		return err
	}

	if o.void[e.Tag] {
		// children are checked, then dropped
		if err := o.renderChildren(io.Discard, e); err != nil {
			return err
		}
		io.WriteString(w, "/>")
		return nil
	}

	io.WriteString(w, ">")
	if err := o.renderChildren(w, e); err != nil {
		return err
	}
	io.WriteString(w, "</")
	io.WriteString(w, e.Tag)
	io.WriteString(w, ">")
	return nil
}

func (o *renderOpts) renderChildren(w io.Writer, e *Element) error {
	nested := false
	err := e.EachChild(
		func(s string) error {
			_, err := io.WriteString(w, s)
			return err
		},
		func(child *ir.Node) error {
			nested = true
			io.WriteString(w, "\n")
			return o.render(w, child, e.Depth+1)
		})
	if err != nil {
		return err
	}
	if nested {
		io.WriteString(w, "\n")
		io.WriteString(w, strings.Repeat(o.indent, e.Depth))
	}
	return nil
}

func (o *renderOpts) renderAttrs(w io.Writer, e *Element) error {
	if e.Attrs == nil {
		return nil
	}
	for i, field := range e.Attrs.Fields {
		key := field.String
		if key == "checked" {
			io.WriteString(w, " checked")
			continue
		}
		v, err := attrText(e, key, e.Attrs.Values[i])
		if err != nil {
			return err
		}
		io.WriteString(w, " ")
		io.WriteString(w, key)
		io.WriteString(w, `="`)
		io.WriteString(w, v)
		io.WriteString(w, `"`)
	}
	return nil
}

// attrText gives the text of a scalar attribute value. Strings are
// not escaped.
func attrText(e *Element, key string, v *ir.Node) (string, error) {
	if v == nil {
		return "", attrValueError(e.Tag, key, v, e.Depth)
	}
	switch v.Type {
	case ir.StringType:
		return v.String, nil
	case ir.NumberType:
		return v.NumberText(), nil
	case ir.BoolType:
		return strconv.FormatBool(v.Bool), nil
	case ir.NullType:
		return "null", nil
	default:
		return "", attrValueError(e.Tag, key, v, e.Depth)
	}
}
