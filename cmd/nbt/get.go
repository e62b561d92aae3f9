package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/nbt-format/go-nbt/snbt"
	"github.com/nbt-format/go-nbt/tag"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a tag path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	if _, err := tag.ParsePath(path); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		_, root, _, err := readInput(cfg.MainConfig, file)
		if err != nil {
			return err
		}
		sub, err := root.GetPath(path)
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", file, path, err)
		}
		if err := snbt.Encode(sub, cc.Out, cfg.snbtOpts()...); err != nil {
			return err
		}
	}
	return nil
}
