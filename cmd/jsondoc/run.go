// Copyright (C) 2026 The jsondoc Authors. All Rights Reserved.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jsondoc/jsondoc/ast"
	"github.com/jsondoc/jsondoc/query"
	"github.com/scott-cotton/cli"
)

func runMain(cfg *mainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Depth < 0 {
		return fmt.Errorf("%w: depth must be positive", cli.ErrUsage)
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

// inputs returns the input files named by args, or "-" for standard input.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func runFmt(cfg *fmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, file := range inputs(args) {
		doc, err := cfg.load(cc, file)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", file, err)
		}
		root, ok := doc.Root()
		if !ok {
			continue // nothing to write for an empty document
		}
		if err := cfg.write(cc.Out, root); err != nil {
			return fmt.Errorf("error writing %s: %w", file, err)
		}
	}
	return nil
}

func runGet(cfg *getConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a path argument", cli.ErrUsage)
	}
	q, err := getQuery(args[0], cfg.Len)
	if err != nil {
		return err
	}
	for _, file := range inputs(args[1:]) {
		doc, err := cfg.load(cc, file)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", file, err)
		}
		v, err := query.EvalDocument(doc, q)
		if err != nil {
			return fmt.Errorf("error querying %s: %w", file, err)
		}
		if err := cfg.write(cc.Out, v); err != nil {
			return fmt.Errorf("error writing %s: %w", file, err)
		}
	}
	return nil
}

// getQuery compiles the path expression of a get command.
func getQuery(expr string, length bool) (query.Query, error) {
	q, err := query.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	if length {
		q = query.Seq{q, query.Len()}
	}
	return q, nil
}

func runSearch(cfg *searchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Search.Parse(cc, args)
	if err != nil {
		return err
	}
	var match func(string, ast.Value) bool
	if cfg.Where != "" {
		match, err = compileWhere(cfg.Where)
		if err != nil {
			return err
		}
	} else if len(args) == 0 {
		return fmt.Errorf("%w: search requires a key or an expression", cli.ErrUsage)
	} else {
		key := args[0]
		match = func(k string, _ ast.Value) bool { return k == key }
		args = args[1:]
	}
	for _, file := range inputs(args) {
		doc, err := cfg.load(cc, file)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", file, err)
		}
		if err := cfg.write(cc.Out, doc.Search(match)); err != nil {
			return fmt.Errorf("error writing %s: %w", file, err)
		}
	}
	return nil
}

func runCheck(cfg *checkConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	nbad := 0
	for _, file := range inputs(args) {
		doc, err := cfg.load(cc, file)
		fmt.Fprintln(cc.Out, checkResult(file, doc, err))
		if err != nil {
			nbad++
		}
	}
	if nbad != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// checkResult describes the outcome of parsing the named file.
func checkResult(file string, doc *ast.Document, err error) string {
	var pe *ast.ParseError
	switch {
	case errors.As(err, &pe):
		return fmt.Sprintf("%s:%d:%d: %s", file, pe.Location.Line, pe.Location.Column, pe.Message)
	case err != nil:
		return fmt.Sprintf("%s: %v", file, err)
	case doc.IsEmpty():
		return fmt.Sprintf("%s: ok (empty)", file)
	}
	return fmt.Sprintf("%s: ok", file)
}
