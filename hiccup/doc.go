// Package hiccup renders hiccup trees as HTML and rewrites the links in them.
//
// A hiccup tree is an ir.Node array of the form
//
//	[tag, attributes?, child...]
//
// where tag is a string, the optional attributes are an object placed
// immediately after the tag, and each child is either a string (text) or
// another hiccup array.
//
// # Rendering
//
// Render produces HTML indented by two spaces per nesting level:
//
//	tree, _ := parse.Parse([]byte(`["div", {"id": "d"}, ["p", "hi"]]`))
//	html, err := hiccup.Render(tree)
//	// <div id="d">
//	//   <p>hi</p>
//	// </div>
//
// Attribute values are written as is, without escaping. The "checked"
// attribute is written without a value. The void tags in DefaultVoid are
// written self-closing and their children, once checked, are dropped.
//
// # Links
//
// InsertHref, SetHrefs and InsertHrefFor return a copy of a tree in which
// "a" elements that have a "resource" attribute and no "href" attribute
// gain an href. The href comes from a pattern in which every "{curie}" is
// replaced by the resource. Transform applies an arbitrary Rule, and
// CompileRule builds one from an expr-lang expression.
//
// # Errors
//
// Malformed trees yield an *Error whose Kind is one of ErrShape,
// ErrTagType, ErrChildType or ErrAttributeType, carrying the depth and
// the offending value.
package hiccup
