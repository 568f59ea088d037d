// Copyright (C) 2026 The jsondoc Authors. All Rights Reserved.

// Program jsondoc parses, checks, formats, and queries JSON documents.
//
// Usage:
//
//	jsondoc [opts] fmt [files]
//	jsondoc [opts] get [--len] <path> [files]
//	jsondoc [opts] search [--where expr] [key] [files]
//	jsondoc [opts] patch <patch-file> [files]
//	jsondoc [opts] check [files]
//
// A file named "-", or no files at all, reads standard input. Files ending in
// .gz or .zst are decompressed before parsing.
package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), mainCommand())
}
