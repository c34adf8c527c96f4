package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/refgen"
	"go.yaml.in/yaml/v3"
)

// DefaultConfigFile is loaded from the working directory when present.
const DefaultConfigFile = ".refgen.yml"

// YAMLConfigLoader is a kong.ConfigurationLoader for YAML files.
//
// Top-level keys set flags of any command. A mapping named after a command
// sets flags for that command only and wins over top-level keys:
//
//	format: md
//	build:
//	  output: docs/api
//	  entry-selector: div.entry-detail
//
// Keys match flag names; underscores may stand in for dashes.
func YAMLConfigLoader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && !errors.Is(err, io.EOF) {
		return nil, refgen.Errorf(refgen.EINVALID, "invalid config: %s", err)
	}

	return kong.ResolverFunc(func(kctx *kong.Context, parent *kong.Path, flag *kong.Flag) (any, error) {
		if sel := kctx.Selected(); sel != nil {
			if section, ok := values[sel.Name].(map[string]any); ok {
				if v, ok := lookup(section, flag.Name); ok {
					return scalar(flag.Name, v)
				}
			}
		}
		if v, ok := lookup(values, flag.Name); ok {
			return scalar(flag.Name, v)
		}
		return nil, nil
	}), nil
}

func lookup(values map[string]any, name string) (any, bool) {
	if v, ok := values[name]; ok {
		return v, true
	}
	v, ok := values[strings.ReplaceAll(name, "-", "_")]
	return v, ok
}

// scalar renders a config value as the string kong would read from the
// command line.
func scalar(name string, v any) (any, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case map[string]any, []any:
		return nil, refgen.Errorf(refgen.EINVALID, "config key %q must be a scalar", name)
	default:
		return fmt.Sprint(v), nil
	}
}
