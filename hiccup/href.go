package hiccup

import (
	"strings"

	"github.com/signadot/hiccup/debug"
	"github.com/signadot/hiccup/ir"
)

// CuriePlaceholder is replaced by an anchor's resource in href patterns.
const CuriePlaceholder = "{curie}"

// Anchor is an "a" element which has a "resource" attribute but no
// "href" attribute.
type Anchor struct {
	Tag      string
	Resource string
	Attrs    *ir.Node
	Depth    int
}

// A Rule decides the href of an anchor. If ok is false the anchor is
// left unchanged.
type Rule func(a *Anchor) (href string, ok bool, err error)

// Substitute replaces every occurrence of {curie} in pattern with resource.
func Substitute(pattern, resource string) string {
	return strings.ReplaceAll(pattern, CuriePlaceholder, resource)
}

// PatternRule gives every anchor the href pattern with its resource
// substituted.
func PatternRule(pattern string) Rule {
	return func(a *Anchor) (string, bool, error) {
		return Substitute(pattern, a.Resource), true, nil
	}
}

// MapRule gives an anchor an href only if its resource is a key of
// hrefs, using the pattern stored there.
func MapRule(hrefs map[string]string) Rule {
	return func(a *Anchor) (string, bool, error) {
		pattern, ok := hrefs[a.Resource]
		if !ok {
			return "", false, nil
		}
		return Substitute(pattern, a.Resource), true, nil
	}
}

// TargetRule is PatternRule restricted to anchors whose resource is one
// of targets.
func TargetRule(pattern string, targets []string) Rule {
	set := make(map[string]bool, len(targets))
	for _, t := range targets {
		set[t] = true
	}
	return func(a *Anchor) (string, bool, error) {
		if !set[a.Resource] {
			return "", false, nil
		}
		return Substitute(pattern, a.Resource), true, nil
	}
}

// InsertHref adds an href built from pattern to each anchor that has a
// resource but no href. It returns a new tree.
func InsertHref(node *ir.Node, pattern string) (*ir.Node, error) {
	return Transform(node, PatternRule(pattern))
}

// SetHrefs adds an href to each anchor whose resource is a key of
// hrefs, built from the pattern stored under that key.
func SetHrefs(node *ir.Node, hrefs map[string]string) (*ir.Node, error) {
	return Transform(node, MapRule(hrefs))
}

// InsertHrefFor is InsertHref limited to anchors whose resource is in
// targets.
func InsertHrefFor(node *ir.Node, pattern string, targets []string) (*ir.Node, error) {
	return Transform(node, TargetRule(pattern, targets))
}

// Transform returns a copy of node in which rule has been applied to
// every anchor. The input is not modified and shares no nodes with the
// result.
func Transform(node *ir.Node, rule Rule) (*ir.Node, error) {
	return transform(node, rule, 0)
}

func transform(node *ir.Node, rule Rule, depth int) (*ir.Node, error) {
	e, err := Decompose(node, depth)
	if err != nil {
		return nil, err
	}
	out := make([]*ir.Node, 0, len(node.Values))
	out = append(out, ir.FromString(e.Tag))
	if e.Attrs != nil {
		attrs := e.Attrs.Clone()
		if err := applyRule(e, attrs, rule); err != nil {
			return nil, err
		}
		out = append(out, attrs)
	}
	err = e.EachChild(
		func(s string) error {
			out = append(out, ir.FromString(s))
			return nil
		},
		func(child *ir.Node) error {
			res, err := transform(child, rule, depth+1)
			if err != nil {
				return err
			}
			out = append(out, res)
			return nil
		})
	if err != nil {
		return nil, err
	}
	return ir.FromSlice(out), nil
}

func applyRule(e *Element, attrs *ir.Node, rule Rule) error {
	if e.Tag != "a" || ir.Has(attrs, "href") {
		return nil
	}
	res := ir.Get(attrs, "resource")
	if res == nil {
		return nil
	}
	if res.Type != ir.StringType {
		return resourceTypeError(e.Tag, attrs, e.Depth)
	}
	href, ok, err := rule(&Anchor{
		Tag:      e.Tag,
		Resource: res.String,
		Attrs:    attrs,
		Depth:    e.Depth,
	})
	if err != nil {
		return err
	}
	if debug.Href() {
		debug.Logf("href %q at depth %d: %q (set %t)\n", res.String, e.Depth, href, ok)
	}
	if ok {
		attrs.Append("href", ir.FromString(href))
	}
	return nil
}
