package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/signadot/hiccup/ir"
)

// parseJSON decodes a JSON document token by token so that object keys
// keep their source order and numbers keep their source text. A
// repeated key keeps its first position and takes the last value.
func parseJSON(d []byte) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	res, err := jsonValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after json value", ErrParse)
	}
	return res, nil
}

func jsonValue(dec *json.Decoder) (*ir.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	switch x := tok.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case json.Number:
		n, err := ir.FromNumber(x.String())
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		return n, nil
	case json.Delim:
		switch x {
		case '[':
			return jsonArray(dec)
		case '{':
			return jsonObject(dec)
		}
	}
	return nil, fmt.Errorf("%w: unexpected token %v", ErrParse, tok)
}

func jsonArray(dec *json.Decoder) (*ir.Node, error) {
	vals := []*ir.Node{}
	for dec.More() {
		v, err := jsonValue(dec)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return ir.FromSlice(vals), nil
}

func jsonObject(dec *json.Decoder) (*ir.Node, error) {
	kvs := []ir.KeyVal{}
	index := map[string]int{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: object key %v", ErrParse, tok)
		}
		v, err := jsonValue(dec)
		if err != nil {
			return nil, err
		}
		if i, dup := index[key]; dup {
			kvs[i].Val = v
			continue
		}
		index[key] = len(kvs)
		kvs = append(kvs, ir.KeyVal{Key: key, Val: v})
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return ir.FromKeyVals(kvs), nil
}
