// Package encode encodes IR nodes as JSON or YAML text.
//
// # Usage
//
//	node := ir.FromSlice([]*ir.Node{ir.FromString("p"), ir.FromString("hi")})
//
//	// Encode to indented JSON
//	err := encode.Encode(node, os.Stdout)
//
//	// Encode to compact JSON
//	err = encode.Encode(node, os.Stdout, encode.EncodeWire(true))
//
//	// Encode to YAML
//	err = encode.Encode(node, os.Stdout, encode.EncodeFormat(format.YAMLFormat))
//
// Object fields are always written in their stored order.
//
// # Related Packages
//
//   - github.com/signadot/hiccup/ir - IR representation
//   - github.com/signadot/hiccup/parse - Parse text to IR
package encode
