package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/jsonv/format"
	"github.com/signadot/jsonv/profile"
	"github.com/signadot/jsonv/stream"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool   `cli:"name=color desc='encode with color'"`
	Compact bool   `cli:"name=c aliases=compact desc='output in compact format'"`
	Indent  int    `cli:"name=i aliases=indent desc='indentation width'"`
	Tabs    bool   `cli:"name=tabs desc='indent with tabs'"`
	HTML    bool   `cli:"name=html desc='escape <, > and & in strings'"`
	Profile string `cli:"name=p aliases=profile desc='formatter profile from the config file'"`
	Config  string `cli:"name=config desc='config file (default ./jv.yaml or ~/.config/jv/jv.yaml)'"`

	Layout *format.Layout

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) layoutOpt(_ *cli.Context, v string) (any, error) {
	l, err := format.ParseLayout(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Layout = &l
	return l, nil
}

// isSet reports whether the main option name was given on the command
// line.
func (cfg *MainConfig) isSet(name string) bool {
	if cfg.Main == nil {
		return false
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != name {
			continue
		}
		return opt.Value != nil
	}
	return false
}

// formatter builds the output formatter from the selected profile with
// command line options applied on top.
func (cfg *MainConfig) formatter() (*format.Formatter, error) {
	pc, err := profile.Load(cfg.Config)
	if err != nil {
		return nil, err
	}
	p, err := pc.Get(cfg.Profile)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	if pc.File != "" {
		theLog.Debug("loaded config", "file", pc.File, "profile", cfg.Profile)
	}
	var extra []format.Option
	if cfg.Layout != nil {
		p.Layout = ""
		extra = append(extra, cfg.Layout.Options()...)
	}
	if cfg.Compact {
		extra = append(extra, format.Compact())
	}
	if cfg.isSet("i") {
		p.IndentString = nil
		extra = append(extra, format.Indent(cfg.Indent))
	}
	if cfg.Tabs {
		p.Indent = nil
		extra = append(extra, format.IndentString("\t"))
	}
	return p.Formatter(extra...)
}

func (cfg *MainConfig) streamOpts(w io.Writer, f *format.Formatter) []stream.StreamOption {
	res := []stream.StreamOption{
		stream.WithFormatter(f),
		stream.WithEscapeHTML(cfg.HTML),
	}
	if cfg.useColor(w) {
		res = append(res, stream.WithColors(stream.NewColors()))
	}
	return res
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.isSet("color") {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type FmtConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='write result to the source file instead of the output'"`

	Fmt *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Context int  `cli:"name=C desc='lines of context around changes (default all)'"`

	Diff *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge  bool `cli:"name=merge desc='treat the patch as an RFC 7386 merge patch'"`
	String bool `cli:"name=s desc='patch arg as string'"`

	Patch *cli.Command
}

type FromYAMLConfig struct {
	*MainConfig

	FromYAML *cli.Command
}
