package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	ins, err := readInputs(cfg.MainConfig, cc, args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	for i, in := range ins {
		if err := writeNode(cc.Out, in.node, i, len(ins), opts); err != nil {
			return fmt.Errorf("error encoding %s: %w", in.name, err)
		}
	}
	return nil
}
