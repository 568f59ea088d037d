// Copyright (C) 2026 The jsondoc Authors. All Rights Reserved.

package main

import "github.com/scott-cotton/cli"

func mainCommand() *cli.Command {
	cfg := &mainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "jsondoc").
		WithSynopsis("jsondoc [opts] command [opts]").
		WithDescription("jsondoc is a tool for checking, formatting, and querying JSON documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runMain(cfg, cc, args)
		}).
		WithSubs(
			fmtCommand(cfg),
			getCommand(cfg),
			searchCommand(cfg),
			patchCommand(cfg),
			checkCommand(cfg))
}

func fmtCommand(mainCfg *mainConfig) *cli.Command {
	cfg := &fmtConfig{mainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Fmt, "fmt").
		WithAliases("f").
		WithSynopsis("fmt [files]").
		WithDescription("write each document in indented form").
		WithRun(func(cc *cli.Context, args []string) error {
			return runFmt(cfg, cc, args)
		})
}

func getCommand(mainCfg *mainConfig) *cli.Command {
	cfg := &getConfig{mainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get [--len] <path> [files]").
		WithDescription(`get the value at a path such as $.offices[1].address from each document`).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runGet(cfg, cc, args)
		})
}

func searchCommand(mainCfg *mainConfig) *cli.Command {
	cfg := &searchConfig{mainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Search, "search").
		WithAliases("s").
		WithSynopsis("search [--where expr] [key] [files]").
		WithDescription("list the values of object members with a key, or matching an expression over key and value").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runSearch(cfg, cc, args)
		})
}

func checkCommand(mainCfg *mainConfig) *cli.Command {
	cfg := &checkConfig{mainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [files]").
		WithDescription("report whether each document parses, and where it fails").
		WithRun(func(cc *cli.Context, args []string) error {
			return runCheck(cfg, cc, args)
		})
}

func patchCommand(mainCfg *mainConfig) *cli.Command {
	cfg := &patchConfig{mainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p").
		WithSynopsis("patch <patch-file> [files]").
		WithDescription("apply an RFC 6902 JSON Patch to each document and write the result").
		WithRun(func(cc *cli.Context, args []string) error {
			return runPatch(cfg, cc, args)
		})
}
