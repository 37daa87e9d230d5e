package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/hiccup/encode"
	"github.com/signadot/hiccup/format"
	"github.com/signadot/hiccup/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output trees in compact format'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// inFormat gives the format of the named input; "-" is stdin.
func (cfg *MainConfig) inFormat(path string) format.Format {
	switch {
	case cfg.InFormat != nil:
		return *cfg.InFormat
	case cfg.Y:
		return format.YAMLFormat
	case cfg.J:
		return format.JSONFormat
	case path == "-":
		return format.JSONFormat
	}
	return format.FromPath(path)
}

func (cfg *MainConfig) parseOpts(path string) []parse.ParseOption {
	return []parse.ParseOption{
		parse.ParseFormat(cfg.inFormat(path)),
	}
}

func (cfg *MainConfig) outFormat() format.Format {
	switch {
	case cfg.OutFormat != nil:
		return *cfg.OutFormat
	case cfg.Y:
		return format.YAMLFormat
	}
	return format.JSONFormat
}

// colorize reports whether output to w should be colored: -color was
// given, or w is a terminal and -color was not set to false.
func (cfg *MainConfig) colorize(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	var opts []*cli.Opt
	if cfg.Main != nil {
		opts = cfg.Main.Opts
	}
	for _, opt := range opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.colorize(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type RenderConfig struct {
	*MainConfig

	Min    bool   `cli:"name=min desc='minify the html'"`
	Indent string `cli:"name=indent desc='indent per nesting level (default two spaces)'"`
	Void   string `cli:"name=void desc='comma separated self-closing tags (default meta,link,path)'"`

	Render *cli.Command
}

const defaultPattern = "?id={curie}"

type HrefConfig struct {
	*MainConfig

	Pattern string `cli:"name=p aliases=pattern desc='href pattern, {curie} is replaced by the resource'"`
	MapFile string `cli:"name=m aliases=map desc='file with an object from resource to href pattern'"`
	Targets string `cli:"name=t aliases=targets desc='comma separated resources to link'"`
	Where   string `cli:"name=where desc='expression selecting the anchors to link'"`
	HTML    bool   `cli:"name=html desc='render the result as html'"`
	Diff    bool   `cli:"name=diff desc='show a diff of the html before and after'"`

	Href *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}
