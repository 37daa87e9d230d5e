package hiccup

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/signadot/hiccup/encode"
	"github.com/signadot/hiccup/ir"
)

var (
	ErrShape         = errors.New("shape error")
	ErrTagType       = errors.New("tag type error")
	ErrChildType     = errors.New("child type error")
	ErrAttributeType = errors.New("attribute type error")
	ErrRule          = errors.New("rule error")
)

// Error describes a malformed value found while walking a hiccup tree.
// Kind is one of the Err* sentinels and is what errors.Is matches.
type Error struct {
	Kind  error
	Depth int
	Tag   string
	Value *ir.Node
	Msg   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func show(v *ir.Node) string {
	if v == nil {
		return "<nil>"
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(v, buf, encode.EncodeWire(true)); err != nil {
		return fmt.Sprint(v)
	}
	return buf.String()
}

func notListError(v *ir.Node, depth int) error {
	return &Error{
		Kind:  ErrShape,
		Depth: depth,
		Value: v,
		Msg:   fmt.Sprintf("element at depth %d is not a list: %s", depth, show(v)),
	}
}

func emptyListError(depth int) error {
	return &Error{
		Kind:  ErrShape,
		Depth: depth,
		Value: ir.FromSlice(nil),
		Msg:   fmt.Sprintf("element at depth %d is an empty list", depth),
	}
}

func tagTypeError(tag *ir.Node, depth int) error {
	return &Error{
		Kind:  ErrTagType,
		Depth: depth,
		Value: tag,
		Msg:   fmt.Sprintf("tag %s at depth %d is not a string", show(tag), depth),
	}
}

func childTypeError(tag string, child *ir.Node, depth int) error {
	return &Error{
		Kind:  ErrChildType,
		Depth: depth,
		Tag:   tag,
		Value: child,
		Msg:   fmt.Sprintf("bad type for %q child %s at depth %d", tag, show(child), depth),
	}
}

func attrValueError(tag, key string, v *ir.Node, depth int) error {
	return &Error{
		Kind:  ErrAttributeType,
		Depth: depth,
		Tag:   tag,
		Value: v,
		Msg: fmt.Sprintf("%q attribute %q value %s at depth %d is not a string, number, bool, or null",
			tag, key, show(v), depth),
	}
}

func resourceTypeError(tag string, attrs *ir.Node, depth int) error {
	return &Error{
		Kind:  ErrAttributeType,
		Depth: depth,
		Tag:   tag,
		Value: attrs,
		Msg:   fmt.Sprintf("no string 'resource' in %s at depth %d", show(attrs), depth),
	}
}

func attrShapeError(tag string, attrs *ir.Node, depth int) error {
	return &Error{
		Kind:  ErrAttributeType,
		Depth: depth,
		Tag:   tag,
		Value: attrs,
		Msg:   fmt.Sprintf("%q attributes at depth %d have a missing or non-string key", tag, depth),
	}
}
