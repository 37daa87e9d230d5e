package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/hiccup/ir"
	"github.com/signadot/hiccup/parse"

	"github.com/scott-cotton/cli"
)

type input struct {
	name string
	node *ir.Node
}

// readInputs decodes each named file, or stdin when there are none.
func readInputs(cfg *MainConfig, cc *cli.Context, files []string) ([]input, error) {
	if len(files) == 0 {
		files = []string{"-"}
	}
	res := make([]input, 0, len(files))
	for _, file := range files {
		node, err := getObjFile(cfg, cc, file)
		if err != nil {
			return nil, err
		}
		res = append(res, input{name: file, node: node})
	}
	return res, nil
}

func getObjFile(cfg *MainConfig, cc *cli.Context, file string) (*ir.Node, error) {
	var r io.Reader
	if file == "-" {
		r = cc.In
	} else {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", file, err)
	}
	node, err := parse.Parse(d, cfg.parseOpts(file)...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	return node, nil
}
