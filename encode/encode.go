package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/signadot/hiccup/format"
	"github.com/signadot/hiccup/ir"
)

type EncState struct {
	format format.Format
	indent int
	wire   bool
	depth  int

	Color func(ir.Type, ColorAttr, string) string
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

// Encode writes node to w in the format selected by opts, JSON by
// default.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	if node == nil {
		return fmt.Errorf("cannot encode nil node")
	}
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.JSONFormat:
		buf := bytes.NewBuffer(nil)
		if err := encodeJSON(node, buf, es); err != nil {
			return err
		}
		_, err := w.Write(buf.Bytes())
		return err
	case format.YAMLFormat:
		return encodeYAML(node, w, es)
	default:
		return fmt.Errorf("%w: %d", format.ErrBadFormat, es.format)
	}
}

func encodeJSON(node *ir.Node, buf *bytes.Buffer, es *EncState) error {
	if node == nil {
		return fmt.Errorf("cannot encode nil node")
	}
	switch node.Type {
	case ir.NullType:
		buf.WriteString(es.color(ir.NullType, ValueColor, "null"))
	case ir.BoolType:
		buf.WriteString(es.color(ir.BoolType, ValueColor, strconv.FormatBool(node.Bool)))
	case ir.NumberType:
		buf.WriteString(es.color(ir.NumberType, ValueColor, node.NumberText()))
	case ir.StringType:
		q, err := quote(node.String)
		if err != nil {
			return err
		}
		buf.WriteString(es.color(ir.StringType, ValueColor, q))
	case ir.ArrayType:
		return encodeJSONArray(node, buf, es)
	case ir.ObjectType:
		return encodeJSONObject(node, buf, es)
	default:
		return fmt.Errorf("cannot encode node of type %s", node.Type)
	}
	return nil
}

func encodeJSONArray(node *ir.Node, buf *bytes.Buffer, es *EncState) error {
	buf.WriteString(es.color(ir.ArrayType, SepColor, "["))
	if len(node.Values) == 0 {
		buf.WriteString(es.color(ir.ArrayType, SepColor, "]"))
		return nil
	}
	es.depth++
	for i, v := range node.Values {
		if i > 0 {
			buf.WriteString(es.color(ir.ArrayType, SepColor, ","))
		}
		es.newline(buf)
		if err := encodeJSON(v, buf, es); err != nil {
			return err
		}
	}
	es.depth--
	es.newline(buf)
	buf.WriteString(es.color(ir.ArrayType, SepColor, "]"))
	return nil
}

func encodeJSONObject(node *ir.Node, buf *bytes.Buffer, es *EncState) error {
	if len(node.Fields) != len(node.Values) {
		return fmt.Errorf("object has %d fields and %d values", len(node.Fields), len(node.Values))
	}
	buf.WriteString(es.color(ir.ObjectType, SepColor, "{"))
	if len(node.Fields) == 0 {
		buf.WriteString(es.color(ir.ObjectType, SepColor, "}"))
		return nil
	}
	es.depth++
	for i, field := range node.Fields {
		if i > 0 {
			buf.WriteString(es.color(ir.ObjectType, SepColor, ","))
		}
		es.newline(buf)
		if field == nil {
			return fmt.Errorf("object has a nil field")
		}
		q, err := quote(field.String)
		if err != nil {
			return err
		}
		buf.WriteString(es.color(ir.ObjectType, FieldColor, q))
		buf.WriteString(es.color(ir.ObjectType, SepColor, ":"))
		if !es.wire {
			buf.WriteByte(' ')
		}
		if err := encodeJSON(node.Values[i], buf, es); err != nil {
			return err
		}
	}
	es.depth--
	es.newline(buf)
	buf.WriteString(es.color(ir.ObjectType, SepColor, "}"))
	return nil
}

func (es *EncState) newline(buf *bytes.Buffer) {
	if es.wire {
		return
	}
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat(" ", es.indent*es.depth))
}

// quote gives the JSON string literal of s, leaving HTML characters
// unescaped.
func quote(s string) (string, error) {
	buf := bytes.NewBuffer(nil)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func encodeYAML(node *ir.Node, w io.Writer, es *EncState) error {
	v, err := ToYAML(node)
	if err != nil {
		return err
	}
	opts := []yaml.EncodeOption{yaml.Indent(es.indent)}
	if es.wire {
		opts = append(opts, yaml.Flow(true))
	}
	d, err := yaml.MarshalWithOptions(v, opts...)
	if err != nil {
		return fmt.Errorf("error encoding yaml: %w", err)
	}
	_, err = w.Write(d)
	return err
}

// ToYAML converts node to values the yaml package encodes in the same
// shape, with objects as yaml.MapSlice to keep field order.
func ToYAML(node *ir.Node) (any, error) {
	if node == nil {
		return nil, fmt.Errorf("cannot encode nil node")
	}
	switch node.Type {
	case ir.NullType:
		return nil, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.NumberType:
		if node.Int64 != nil {
			return *node.Int64, nil
		}
		if node.Float64 != nil {
			return *node.Float64, nil
		}
		f, err := strconv.ParseFloat(node.Number, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", node.Number, err)
		}
		return f, nil
	case ir.StringType:
		return node.String, nil
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			yv, err := ToYAML(v)
			if err != nil {
				return nil, err
			}
			res[i] = yv
		}
		return res, nil
	case ir.ObjectType:
		if len(node.Fields) != len(node.Values) {
			return nil, fmt.Errorf("object has %d fields and %d values", len(node.Fields), len(node.Values))
		}
		res := make(yaml.MapSlice, len(node.Fields))
		for i, f := range node.Fields {
			if f == nil {
				return nil, fmt.Errorf("object has a nil field")
			}
			yv, err := ToYAML(node.Values[i])
			if err != nil {
				return nil, err
			}
			res[i] = yaml.MapItem{Key: f.String, Value: yv}
		}
		return res, nil
	default:
		return nil, fmt.Errorf("cannot encode node of type %s", node.Type)
	}
}
