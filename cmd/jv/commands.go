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
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	}, &cli.Opt{
		Name:        "L",
		Aliases:     []string{"layout"},
		Description: "output layout: pretty/p, compact/c",
		Type:        cli.NamedFuncOpt(cfg.layoutOpt, "(layout)"),
	})

	return cli.NewCommandAt(&cfg.Main, "jv").
		WithSynopsis("jv [opts] command [opts]").
		WithDescription("jv is a tool for formatting and querying JSON documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jvMain(cfg, cc, args)
		}).
		WithSubs(
			FmtCommand(cfg),
			DiffCommand(cfg),
			GetCommand(cfg),
			PatchCommand(cfg),
			FromYAMLCommand(cfg))
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("fmt").
		WithAliases("f").
		WithOpts(opts...).
		WithSynopsis("fmt [-w] [files]").
		WithDescription("reformat JSON documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtMain(cfg, cc, args)
		})
	cfg.Fmt = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff a b").
		WithDescription("show line differences between normalized JSON documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g", "ge").
		WithSynopsis("get <expr> [files]").
		WithDescription(getDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

const getDescription = `get evaluates an expression against each document.

The document is bound to 'doc'. When the document is an object its fields
are also bound directly, so 'items[0].name' and 'doc.items[0].name' are the
same. The expression language is that of github.com/expr-lang/expr.`

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [opts] <patch> [files]").
		WithDescription("apply an RFC 6902 JSON patch, or with -merge an RFC 7386 merge patch").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func FromYAMLCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FromYAMLConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.FromYAML, "from-yaml").
		WithAliases("y").
		WithSynopsis("from-yaml [files]").
		WithDescription("convert YAML documents to JSON, keeping mapping order").
		WithRun(func(cc *cli.Context, args []string) error {
			return fromYAML(cfg, cc, args)
		})
}
