package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/nbt-format/go-nbt/tag"
)

func remove(cfg *RemoveConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Remove.Parse(cc, args)
	if err != nil {
		cfg.Remove.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: remove requires 2 args: <tagpath> <file>, got %v", cli.ErrUsage, args)
	}
	path, file := args[0], args[1]
	if path != "" && path[0] != '$' {
		path = "$" + path
	}
	if _, err := tag.ParsePath(path); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	name, root, comp, err := readInput(cfg.MainConfig, file)
	if err != nil {
		return err
	}
	if err := root.RemovePath(path, cfg.Strict); err != nil {
		return fmt.Errorf("error removing %s from %s: %w", path, file, err)
	}
	return writeBack(cfg.MainConfig, file, name, root, comp)
}
