package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/signadot/hiccup/hiccup"
	"github.com/signadot/hiccup/ir"
	"github.com/signadot/hiccup/libdiff"
)

func href(cfg *HrefConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Href.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.HTML && cfg.Diff {
		return fmt.Errorf("%w: -html and -diff are exclusive", cli.ErrUsage)
	}
	rule, err := cfg.rule(cc)
	if err != nil {
		return err
	}
	ins, err := readInputs(cfg.MainConfig, cc, args)
	if err != nil {
		return err
	}
	for i, in := range ins {
		if err := hrefOne(cfg, cc.Out, in.node, rule, i, len(ins)); err != nil {
			return fmt.Errorf("error processing %s: %w", in.name, err)
		}
	}
	return nil
}

func (cfg *HrefConfig) rule(cc *cli.Context) (hiccup.Rule, error) {
	if count(cfg.MapFile != "", cfg.Targets != "", cfg.Where != "") > 1 {
		return nil, fmt.Errorf("%w: must specify at most one of -m -t -where", cli.ErrUsage)
	}
	switch {
	case cfg.MapFile != "":
		node, err := getObjFile(cfg.MainConfig, cc, cfg.MapFile)
		if err != nil {
			return nil, err
		}
		hrefs, err := node.ToStringMap()
		if err != nil {
			return nil, fmt.Errorf("error in href map %s: %w", cfg.MapFile, err)
		}
		return hiccup.MapRule(hrefs), nil
	case cfg.Targets != "":
		return hiccup.TargetRule(cfg.Pattern, splitList(cfg.Targets)), nil
	case cfg.Where != "":
		return hiccup.CompileRule(cfg.Where, cfg.Pattern)
	default:
		return hiccup.PatternRule(cfg.Pattern), nil
	}
}

// hrefOne writes the transform of the i'th of n inputs. With -diff an
// input whose render does not change prints nothing.
func hrefOne(cfg *HrefConfig, w io.Writer, node *ir.Node, rule hiccup.Rule, i, n int) error {
	res, err := hiccup.Transform(node, rule)
	if err != nil {
		return err
	}
	switch {
	case cfg.Diff:
		from, err := hiccup.Render(node)
		if err != nil {
			return err
		}
		to, err := hiccup.Render(res)
		if err != nil {
			return err
		}
		lines := libdiff.DiffLines(from, to)
		if !libdiff.Changed(lines) {
			return nil
		}
		var colorFn func(libdiff.Op, string) string
		if cfg.colorize(w) {
			colorFn = diffColor
		}
		if err := libdiff.Write(w, lines, colorFn); err != nil {
			return err
		}
		return writeSep(w, i, n)
	case cfg.HTML:
		out, err := hiccup.Render(res)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, out); err != nil {
			return err
		}
		return writeSep(w, i, n)
	default:
		return writeNode(w, res, i, n, cfg.encOpts(w))
	}
}

func diffColor(op libdiff.Op, s string) string {
	switch op {
	case libdiff.Insert:
		return color.New(color.FgGreen).Sprint(s)
	case libdiff.Delete:
		return color.New(color.FgRed).Sprint(s)
	}
	return s
}
