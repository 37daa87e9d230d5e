// Package parse decodes JSON and YAML documents into ir.Node trees.
//
// Objects keep the key order of the source document, so that a hiccup
// attribute map renders its attributes in the order they were written.
//
//	node, err := parse.Parse(data)                   // JSON
//	node, err := parse.Parse(data, parse.ParseYAML()) // YAML
package parse
