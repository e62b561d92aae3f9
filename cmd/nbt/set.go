package main

import (
	"fmt"
	"strconv"

	"github.com/scott-cotton/cli"

	"github.com/nbt-format/go-nbt/tag"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 3 {
		return fmt.Errorf("%w: set requires 3 args: <tagpath> <value> <file>, got %v", cli.ErrUsage, args)
	}
	path, val, file := args[0], args[1], args[2]
	if path != "" && path[0] != '$' {
		path = "$" + path
	}
	if _, err := tag.ParsePath(path); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	v, err := parseValue(cfg.Kind, val)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	name, root, comp, err := readInput(cfg.MainConfig, file)
	if err != nil {
		return err
	}
	if err := root.SetPath(path, v); err != nil {
		return fmt.Errorf("error setting %s in %s: %w", path, file, err)
	}
	return writeBack(cfg.MainConfig, file, name, root, comp)
}

func parseValue(kind, s string) (*tag.Tag, error) {
	switch kind {
	case "byte":
		n, err := strconv.ParseInt(s, 10, 8)
		if err != nil {
			return nil, err
		}
		return tag.FromByte(int8(n)), nil
	case "short":
		n, err := strconv.ParseInt(s, 10, 16)
		if err != nil {
			return nil, err
		}
		return tag.FromShort(int16(n)), nil
	case "int":
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return nil, err
		}
		return tag.FromInt(int32(n)), nil
	case "long":
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, err
		}
		return tag.FromLong(n), nil
	case "float":
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return nil, err
		}
		return tag.FromFloat(float32(f)), nil
	case "double":
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, err
		}
		return tag.FromDouble(f), nil
	case "bool":
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, err
		}
		return tag.FromBool(b), nil
	case "string":
		return tag.FromString(s), nil
	}
	return nil, fmt.Errorf("unknown value kind %q", kind)
}
