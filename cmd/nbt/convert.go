package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/nbt-format/go-nbt"
	"github.com/nbt-format/go-nbt/frame"
	"github.com/nbt-format/go-nbt/profile"
	"github.com/nbt-format/go-nbt/snbt"
	"github.com/nbt-format/go-nbt/tag"
)

func (cfg *ConvertConfig) toOpt(_ *cli.Context, a string) (any, error) {
	p, err := profile.Parse(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.To = p
	return p, nil
}

func (cfg *ConvertConfig) compOpt(_ *cli.Context, a string) (any, error) {
	c, err := frame.Parse(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Comp = c
	return c, nil
}

func (cfg *ConvertConfig) textOpt(_ *cli.Context, a string) (any, error) {
	switch a {
	case "snbt", "yaml", "json":
		cfg.Text = a
		return a, nil
	}
	return nil, fmt.Errorf("%w: unknown text format %q", cli.ErrUsage, a)
}

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: convert takes at most one input file, got %v", cli.ErrUsage, args)
	}
	file := "-"
	if len(args) == 1 {
		file = args[0]
	}
	name, root, _, err := readInput(cfg.MainConfig, file)
	if err != nil {
		return err
	}
	switch cfg.Text {
	case "snbt":
		if name != "" {
			if _, err := io.WriteString(cc.Out, tag.QuoteName(name)+": "); err != nil {
				return err
			}
		}
		return snbt.Encode(root, cc.Out, cfg.snbtOpts()...)
	case "yaml":
		v := plain(root, true)
		if name != "" {
			v = yaml.MapSlice{{Key: name, Value: v}}
		}
		b, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = cc.Out.Write(b)
		return err
	case "json":
		v := plain(root, false)
		if name != "" {
			v = map[string]any{name: v}
		}
		enc := json.NewEncoder(cc.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	return nbt.Write(cc.Out, name, root,
		nbt.WithProfile(cfg.To), nbt.WithCompression(cfg.Comp))
}

// plain converts a tag tree to generic Go values for yaml or json
// marshalling. With ordered set, compounds become yaml.MapSlice so member
// order survives.
func plain(t *tag.Tag, ordered bool) any {
	switch t.Kind() {
	case tag.ByteKind:
		v, _ := t.ByteValue()
		return v
	case tag.ShortKind:
		v, _ := t.ShortValue()
		return v
	case tag.IntKind:
		v, _ := t.IntValue()
		return v
	case tag.LongKind:
		v, _ := t.LongValue()
		return v
	case tag.FloatKind:
		v, _ := t.FloatValue()
		return v
	case tag.DoubleKind:
		v, _ := t.DoubleValue()
		return v
	case tag.StringKind:
		v, _ := t.StringValue()
		return v
	case tag.ByteArrayKind:
		b, _ := t.ByteArrayValue()
		res := make([]int8, len(b))
		for i, v := range b {
			res[i] = int8(v)
		}
		return res
	case tag.IntArrayKind:
		v, _ := t.IntArrayValue()
		return v
	case tag.LongArrayKind:
		v, _ := t.LongArrayValue()
		return v
	case tag.ListKind:
		elems := t.Elems()
		res := make([]any, len(elems))
		for i, e := range elems {
			res[i] = plain(e, ordered)
		}
		return res
	case tag.CompoundKind:
		if ordered {
			res := make(yaml.MapSlice, 0, t.Len())
			for name, v := range t.All() {
				res = append(res, yaml.MapItem{Key: name, Value: plain(v, ordered)})
			}
			return res
		}
		res := make(map[string]any, t.Len())
		for name, v := range t.All() {
			res[name] = plain(v, ordered)
		}
		return res
	}
	return nil
}
