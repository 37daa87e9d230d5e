package hiccup

import "github.com/signadot/hiccup/ir"

// Element is a hiccup node split into its parts.
type Element struct {
	Tag string
	// Attrs is the attribute object, or nil when the node has none.
	Attrs    *ir.Node
	Children []*ir.Node
	Depth    int
}

// Decompose validates the shape of node as a hiccup element found at
// depth and splits it into tag, attributes and children. Children are
// not checked here; EachChild checks them in order.
func Decompose(node *ir.Node, depth int) (*Element, error) {
	if node == nil || node.Type != ir.ArrayType {
		return nil, notListError(node, depth)
	}
	if len(node.Values) == 0 {
		return nil, emptyListError(depth)
	}
	tag := node.Values[0]
	if tag == nil || tag.Type != ir.StringType {
		return nil, tagTypeError(tag, depth)
	}
	e := &Element{Tag: tag.String, Depth: depth}
	i := 1
	if i < len(node.Values) && node.Values[i] != nil && node.Values[i].Type == ir.ObjectType {
		e.Attrs = node.Values[i]
		i++
		if err := e.checkAttrs(); err != nil {
			return nil, err
		}
	}
	e.Children = node.Values[i:]
	return e, nil
}

// checkAttrs rejects attribute objects holding nil keys or values.
// Value types are left to the renderer.
func (e *Element) checkAttrs() error {
	if len(e.Attrs.Fields) != len(e.Attrs.Values) {
		return attrShapeError(e.Tag, e.Attrs, e.Depth)
	}
	for i, f := range e.Attrs.Fields {
		if f == nil || f.Type != ir.StringType {
			return attrShapeError(e.Tag, e.Attrs, e.Depth)
		}
		if e.Attrs.Values[i] == nil {
			return attrValueError(e.Tag, f.String, nil, e.Depth)
		}
	}
	return nil
}

// EachChild visits the children of e in order, calling text for string
// children and elem for nested elements. Any other child stops the
// walk with a child type error at depth e.Depth+1.
func (e *Element) EachChild(text func(s string) error, elem func(child *ir.Node) error) error {
	for _, child := range e.Children {
		if child == nil {
			return childTypeError(e.Tag, child, e.Depth+1)
		}
		var err error
		switch child.Type {
		case ir.StringType:
			err = text(child.String)
		case ir.ArrayType:
			err = elem(child)
		default:
			err = childTypeError(e.Tag, child, e.Depth+1)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
