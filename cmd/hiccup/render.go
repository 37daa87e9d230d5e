package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"
	"github.com/tdewolff/minify/v2"
	minhtml "github.com/tdewolff/minify/v2/html"

	"github.com/signadot/hiccup/hiccup"
	"github.com/signadot/hiccup/ir"
)

func render(cfg *RenderConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Render.Parse(cc, args)
	if err != nil {
		return err
	}
	ins, err := readInputs(cfg.MainConfig, cc, args)
	if err != nil {
		return err
	}
	for i, in := range ins {
		if err := renderOne(cfg, cc.Out, in.node); err != nil {
			return fmt.Errorf("error rendering %s: %w", in.name, err)
		}
		if err := writeSep(cc.Out, i, len(ins)); err != nil {
			return err
		}
	}
	return nil
}

func (cfg *RenderConfig) renderOpts() []hiccup.RenderOption {
	var res []hiccup.RenderOption
	if cfg.Indent != "" {
		res = append(res, hiccup.RenderIndent(cfg.Indent))
	}
	if cfg.Void != "" {
		res = append(res, hiccup.RenderVoid(splitList(cfg.Void)...))
	}
	return res
}

func renderOne(cfg *RenderConfig, w io.Writer, node *ir.Node) error {
	out, err := hiccup.Render(node, cfg.renderOpts()...)
	if err != nil {
		return err
	}
	if cfg.Min {
		out, err = minifyHTML(out)
		if err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

func minifyHTML(s string) (string, error) {
	m := minify.New()
	m.AddFunc("text/html", minhtml.Minify)
	res, err := m.String("text/html", s)
	if err != nil {
		return "", fmt.Errorf("error minifying: %w", err)
	}
	return res, nil
}

func splitList(s string) []string {
	var res []string
	for _, v := range strings.Split(s, ",") {
		v = strings.TrimSpace(v)
		if v != "" {
			res = append(res, v)
		}
	}
	return res
}
