package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y (default from file suffix)",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format for trees: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "hiccup").
		WithSynopsis("hiccup [opts] command [opts]").
		WithDescription("hiccup renders hiccup trees as HTML and adds links to their anchors.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return hiccupMain(cfg, cc, args)
		}).
		WithSubs(
			RenderCommand(cfg),
			HrefCommand(cfg),
			ViewCommand(cfg))
}

func RenderCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RenderConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("render").
		WithAliases("r").
		WithSynopsis("render [-min] [files]").
		WithDescription("render hiccup trees as HTML").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return render(cfg, cc, args)
		})
	cfg.Render = cmd
	return cmd
}

func HrefCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &HrefConfig{MainConfig: mainCfg, Pattern: defaultPattern}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("href").
		WithAliases("h").
		WithSynopsis("href [-p pattern] [-m mapfile | -t targets | -where expr] [-html] [-diff] [files]").
		WithDescription("add href attributes to anchors with a resource attribute").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return href(cfg, cc, args)
		})
	cfg.Href = cmd
	return cmd
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view hiccup trees, in color on a terminal").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}
