package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/nbt-format/go-nbt"
	"github.com/nbt-format/go-nbt/frame"
	"github.com/nbt-format/go-nbt/tag"
)

func nbtMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// readInput loads and decodes one document from file ("-" means stdin),
// reporting the compression it arrived in so rewrites can keep it.
func readInput(cfg *MainConfig, file string) (name string, root *tag.Tag, comp frame.Compression, err error) {
	var data []byte
	if file == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return "", nil, frame.None, fmt.Errorf("could not read %q: %w", file, err)
	}
	comp = frame.Detect(data)
	name, root, err = nbt.ReadBytes(data, nbt.WithProfile(cfg.Profile))
	if err != nil {
		return "", nil, frame.None, fmt.Errorf("error decoding %s: %w", file, err)
	}
	return name, root, comp, nil
}

// writeBack re-encodes a document over file with the compression it was
// read with.
func writeBack(cfg *MainConfig, file, name string, root *tag.Tag, comp frame.Compression) error {
	if file == "-" {
		return nbt.Write(os.Stdout, name, root,
			nbt.WithProfile(cfg.Profile), nbt.WithCompression(comp))
	}
	return nbt.WriteFile(file, name, root,
		nbt.WithProfile(cfg.Profile), nbt.WithCompression(comp))
}
