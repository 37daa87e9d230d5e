package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse       = errors.New("parse error")
	ErrEmpty       = fmt.Errorf("%w: empty document", ErrParse)
	ErrUnsupported = fmt.Errorf("%w: unsupported value", ErrParse)
)
