package hiccup

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/signadot/hiccup/ir"
)

// CompileRule builds a Rule from a boolean expr-lang expression. The
// expression sees the variables resource, tag, depth and attrs (the
// anchor attributes as a map). Anchors for which it is true get the
// href pattern with their resource substituted.
//
//	resource startsWith "iri:" && attrs.class != "external"
func CompileRule(src, pattern string) (Rule, error) {
	prg, err := expr.Compile(src, expr.Env(ruleEnv(&Anchor{Attrs: ir.FromKeyVals(nil)})), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: compiling %q: %w", ErrRule, src, err)
	}
	return func(a *Anchor) (string, bool, error) {
		out, err := expr.Run(prg, ruleEnv(a))
		if err != nil {
			return "", false, fmt.Errorf("%w: evaluating %q for %q: %w", ErrRule, src, a.Resource, err)
		}
		match, ok := out.(bool)
		if !ok {
			return "", false, fmt.Errorf("%w: %q gave %T, not bool", ErrRule, src, out)
		}
		if !match {
			return "", false, nil
		}
		return Substitute(pattern, a.Resource), true, nil
	}, nil
}

func ruleEnv(a *Anchor) map[string]any {
	return map[string]any{
		"resource": a.Resource,
		"tag":      a.Tag,
		"depth":    a.Depth,
		"attrs":    toAny(a.Attrs),
	}
}

func toAny(node *ir.Node) any {
	switch node.Type {
	case ir.StringType:
		return node.String
	case ir.BoolType:
		return node.Bool
	case ir.NumberType:
		if node.Int64 != nil {
			return int(*node.Int64)
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return node.Number
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = toAny(v)
		}
		return res
	case ir.ObjectType:
		res := make(map[string]any, len(node.Fields))
		for i, f := range node.Fields {
			res[f.String] = toAny(node.Values[i])
		}
		return res
	case ir.NullType:
		return nil
	}
	return nil
}
