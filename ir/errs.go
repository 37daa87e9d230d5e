package ir

import "errors"

var (
	ErrNotObject = errors.New("not an object")
	ErrFieldType = errors.New("bad field type")
)
