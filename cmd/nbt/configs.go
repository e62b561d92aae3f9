package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/nbt-format/go-nbt/frame"
	"github.com/nbt-format/go-nbt/profile"
	"github.com/nbt-format/go-nbt/snbt"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='force color output'"`

	Profile profile.Profile

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) profileOpt(_ *cli.Context, a string) (any, error) {
	p, err := profile.Parse(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Profile = p
	return p, nil
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// snbtOpts selects pretty indentation and gates color on an interactive
// stdout unless -color forces it.
func (cfg *MainConfig) snbtOpts() []snbt.Option {
	res := []snbt.Option{snbt.Indent(2)}
	if cfg.Color {
		return append(res, snbt.EncodeColors(snbt.NewColors()))
	}
	if cfg.Out == "" || cfg.Out == "-" {
		if isatty.IsTerminal(os.Stdout.Fd()) {
			return append(res, snbt.EncodeColors(snbt.NewColors()))
		}
	}
	return res
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

type SetConfig struct {
	*MainConfig
	Kind string `cli:"name=k desc='value kind: byte short int long float double string bool'"`

	Set *cli.Command
}

type RemoveConfig struct {
	*MainConfig
	Strict bool `cli:"name=strict desc='fail when the path is missing'"`

	Remove *cli.Command
}

type ConvertConfig struct {
	*MainConfig
	To   profile.Profile
	Comp frame.Compression
	Text string // "", "snbt", "yaml" or "json"

	Convert *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Diff *cli.Command
}
