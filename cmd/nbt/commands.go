package main

import (
	"github.com/scott-cotton/cli"

	"github.com/nbt-format/go-nbt/profile"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Profile: profile.Java}
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
			Name:        "p",
			Aliases:     []string{"profile"},
			Description: "encoding profile: java/j, bedrock/b, network/n",
			Type:        cli.NamedFuncOpt(cfg.profileOpt, "(profile)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "nbt").
		WithSynopsis("nbt [opts] command [opts]").
		WithDescription("nbt is a tool for working with named binary tag data.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return nbtMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			GetCommand(cfg),
			SetCommand(cfg),
			RemoveCommand(cfg),
			ConvertCommand(cfg),
			DiffCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view binary tag files as text in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <tagpath> [files]").
		WithDescription("get tags from files").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg, Kind: "string"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("set").
		WithAliases("s").
		WithSynopsis("set [-k kind] <tagpath> <value> <file>").
		WithDescription("set a tag in a file, rewriting it in place").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
	cfg.Set = cmd
	return cmd
}

func RemoveCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RemoveConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("remove").
		WithAliases("rm").
		WithSynopsis("remove [-strict] <tagpath> <file>").
		WithDescription("remove a tag from a file, rewriting it in place").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return remove(cfg, cc, args)
		})
	cfg.Remove = cmd
	return cmd
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg, To: profile.Java}
	cmd := cli.NewCommand("convert").
		WithAliases("c", "co").
		WithSynopsis("convert [-I profile] [-O profile] [-z compression] [-T text] [file]").
		WithOpts(
			&cli.Opt{
				Name:        "I",
				Aliases:     []string{"ifmt"},
				Description: "input profile: java/j, bedrock/b, network/n",
				Type:        cli.NamedFuncOpt(cfg.profileOpt, "(profile)"),
			},
			&cli.Opt{
				Name:        "O",
				Aliases:     []string{"ofmt"},
				Description: "output profile: java/j, bedrock/b, network/n",
				Type:        cli.NamedFuncOpt(cfg.toOpt, "(profile)"),
			},
			&cli.Opt{
				Name:        "z",
				Description: "output compression: none, gzip, zlib",
				Type:        cli.NamedFuncOpt(cfg.compOpt, "(compression)"),
			},
			&cli.Opt{
				Name:        "T",
				Aliases:     []string{"text"},
				Description: "write text instead of binary: snbt, yaml, json",
				Type:        cli.NamedFuncOpt(cfg.textOpt, "(format)"),
			}).
		WithDescription("convert binary tag data between profiles, compressions and text forms").
		WithRun(func(cc *cli.Context, args []string) error {
			return convert(cfg, cc, args)
		})
	cfg.Convert = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff a b").
		WithDescription("diff two binary tag files").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}
