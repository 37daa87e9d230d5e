package parse

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/signadot/hiccup/debug"
	"github.com/signadot/hiccup/format"
	"github.com/signadot/hiccup/ir"
)

// Parse decodes a single JSON (the default) or YAML document.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{format: format.JSONFormat}
	for _, f := range opts {
		f(pOpts)
	}
	if len(bytes.TrimSpace(d)) == 0 {
		return nil, ErrEmpty
	}
	var (
		res *ir.Node
		err error
	)
	switch pOpts.format {
	case format.JSONFormat:
		if !json.Valid(d) {
			return nil, fmt.Errorf("%w: invalid json", ErrParse)
		}
		res, err = parseJSON(d)
	default:
		res, err = parseYAML(d)
	}
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parsed %s document: %s\n", pOpts.format, debug.Node{Node: res})
	}
	return res, nil
}

func parseYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return FromAny(v)
}

// FromAny converts a decoded value to an ir.Node. Objects must be
// yaml.MapSlice to keep their order; plain maps are accepted with
// their keys sorted.
func FromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case string:
		return ir.FromString(x), nil
	case bool:
		return ir.FromBool(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return ir.FromNumber(strconv.FormatUint(x, 10))
		}
		return ir.FromInt(int64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case []any:
		vals := make([]*ir.Node, len(x))
		for i := range x {
			n, err := FromAny(x[i])
			if err != nil {
				return nil, err
			}
			vals[i] = n
		}
		return ir.FromSlice(vals), nil
	case yaml.MapSlice:
		kvs := make([]ir.KeyVal, len(x))
		for i, item := range x {
			key, err := keyString(item.Key)
			if err != nil {
				return nil, err
			}
			n, err := FromAny(item.Value)
			if err != nil {
				return nil, err
			}
			kvs[i] = ir.KeyVal{Key: key, Val: n}
		}
		return ir.FromKeyVals(kvs), nil
	case map[string]any:
		m := make(map[string]*ir.Node, len(x))
		for k, xv := range x {
			n, err := FromAny(xv)
			if err != nil {
				return nil, err
			}
			m[k] = n
		}
		return ir.FromMap(m), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
	}
}

func keyString(k any) (string, error) {
	switch x := k.(type) {
	case string:
		return x, nil
	case nil:
		return "null", nil
	case bool, int, int64, uint64, float64:
		return fmt.Sprint(x), nil
	default:
		return "", fmt.Errorf("%w: key of type %T", ErrUnsupported, k)
	}
}
