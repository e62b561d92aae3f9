package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/nbt-format/go-nbt/snbt"
	"github.com/nbt-format/go-nbt/tag"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := diffText(cfg, args[0])
	if err != nil {
		return err
	}
	b, err := diffText(cfg, args[1])
	if err != nil {
		return err
	}
	if a == b {
		return nil
	}
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	ds := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	for _, d := range ds {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			if _, err := io.WriteString(cc.Out, prefix+line); err != nil {
				return err
			}
		}
	}
	return cli.ExitCodeErr(1)
}

// diffText renders a file as plain indented text so the diff is
// line-oriented.
func diffText(cfg *DiffConfig, file string) (string, error) {
	name, root, _, err := readInput(cfg.MainConfig, file)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if name != "" {
		buf.WriteString(tag.QuoteName(name) + ": ")
	}
	if err := snbt.Encode(root, &buf, snbt.Indent(2)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
