package main

import (
	"io"

	"github.com/scott-cotton/cli"

	"github.com/nbt-format/go-nbt/snbt"
	"github.com/nbt-format/go-nbt/tag"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, file := range args {
		if err := viewFile(cfg, cc.Out, file); err != nil {
			return err
		}
		if i < len(args)-1 {
			cc.Out.Write([]byte("\n"))
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, w io.Writer, file string) error {
	name, root, _, err := readInput(cfg.MainConfig, file)
	if err != nil {
		return err
	}
	if name != "" {
		if _, err := io.WriteString(w, tag.QuoteName(name)+": "); err != nil {
			return err
		}
	}
	return snbt.Encode(root, w, cfg.snbtOpts()...)
}
