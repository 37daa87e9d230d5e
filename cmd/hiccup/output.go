package main

import (
	"bytes"
	"io"

	"github.com/signadot/hiccup/encode"
	"github.com/signadot/hiccup/format"
	"github.com/signadot/hiccup/ir"
)

// writeSep separates rendered outputs when there is more than one input.
func writeSep(w io.Writer, i, n int) error {
	if i >= n-1 {
		return nil
	}
	_, err := w.Write([]byte("\n---\n"))
	return err
}

// writeNode encodes node followed by a newline. When more inputs
// follow, YAML documents are separated by "---" and JSON values are
// newline delimited.
func writeNode(w io.Writer, node *ir.Node, i, n int, opts []encode.EncodeOption) error {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, opts...); err != nil {
		return err
	}
	if !bytes.HasSuffix(buf.Bytes(), []byte("\n")) {
		buf.WriteByte('\n')
	}
	if i < n-1 && encode.FormatFromOpts(opts...) == format.YAMLFormat {
		buf.WriteString("---\n")
	}
	_, err := w.Write(buf.Bytes())
	return err
}
