// Copyright (C) 2026 The jsondoc Authors. All Rights Reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/jsondoc/jsondoc"
	"github.com/jsondoc/jsondoc/ast"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type mainConfig struct {
	Color bool `cli:"name=color desc='colorize output'"`
	YAML  bool `cli:"name=y aliases=yaml desc='write output as YAML'"`
	Lax   bool `cli:"name=lax desc='ignore input after the first value'"`
	Depth int  `cli:"name=depth desc='maximum nesting depth'"`

	Main *cli.Command
}

// parse parses the complete contents of src with the configured settings.
func (cfg *mainConfig) parse(src jsondoc.Source) (*ast.Document, error) {
	p := ast.NewParser(src)
	p.MaxDepth(cfg.Depth)
	p.AllowTrailingInput(cfg.Lax)
	return p.Parse()
}

// load parses the named file, or the input of cc if name is "-". Files ending
// in .gz or .zst are decompressed first.
func (cfg *mainConfig) load(cc *cli.Context, name string) (*ast.Document, error) {
	if name == "-" {
		data, err := io.ReadAll(cc.In)
		if err != nil {
			return nil, fmt.Errorf("error reading: %w", err)
		}
		return cfg.parse(jsondoc.NewBytes(data))
	}
	if data, ok, err := readCompressed(name); ok {
		if err != nil {
			return nil, err
		}
		return cfg.parse(jsondoc.NewBytes(data))
	}
	src, err := jsondoc.OpenFile(name)
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return cfg.parse(src)
}

// colors returns the decorations for output written to w. Unless the color
// option was given explicitly, output is colorized when w is a terminal.
func (cfg *mainConfig) colors(w io.Writer) ast.Colors {
	if cfg.Color {
		return newColors()
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == "color" && opt.Value != nil {
			return ast.Colors{}
		}
	}
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return newColors()
	}
	return ast.Colors{}
}

// write writes v to w as formatted JSON, or as YAML if that option is set.
func (cfg *mainConfig) write(w io.Writer, v ast.Value) error {
	if cfg.YAML {
		return writeYAML(w, v)
	}
	return writeJSON(w, v, cfg.colors(w))
}

func writeJSON(w io.Writer, v ast.Value, c ast.Colors) error {
	if err := ast.FormatColors(w, v, c); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func writeYAML(w io.Writer, v ast.Value) error {
	data, err := yaml.Marshal(toYAML(v))
	if err != nil {
		return fmt.Errorf("error encoding YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}

type fmtConfig struct {
	*mainConfig

	Fmt *cli.Command
}

type getConfig struct {
	*mainConfig

	Len bool `cli:"name=len aliases=n desc='print the length of the value instead of the value'"`

	Get *cli.Command
}

type searchConfig struct {
	*mainConfig

	Where string `cli:"name=where aliases=w desc='select members by an expression over key and value'"`

	Search *cli.Command
}

type checkConfig struct {
	*mainConfig

	Check *cli.Command
}

type patchConfig struct {
	*mainConfig

	Patch *cli.Command
}
