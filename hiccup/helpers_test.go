package hiccup

import (
	"testing"

	"github.com/signadot/hiccup/ir"
	"github.com/signadot/hiccup/parse"
)

func mustParse(t *testing.T, in string) *ir.Node {
	t.Helper()
	node, err := parse.Parse([]byte(in))
	if err != nil {
		t.Fatalf("parse %s: %v", in, err)
	}
	return node
}

const exampleTree = `["body", ["div", {"id": "myDiv"}, ["h1", {"class": "header"}, ["a", {"resource": "iri:example"}, "Hello World!"]]]]`
