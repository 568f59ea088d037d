// Copyright (C) 2026 The jsondoc Authors. All Rights Reserved.

package main

import (
	"github.com/fatih/color"
	"github.com/jsondoc/jsondoc/ast"
)

// newColors returns the terminal colors for formatted output. The colors are
// enabled even when standard output is not a terminal, so that an explicit
// color option is honored.
func newColors() ast.Colors {
	sprintf := func(c *color.Color) func(string, ...any) string {
		c.EnableColor()
		return c.SprintfFunc()
	}
	return ast.Colors{
		Key:     sprintf(color.RGB(128, 168, 196)),
		String:  sprintf(color.RGB(8, 196, 16)),
		Number:  sprintf(color.RGB(128, 216, 236)),
		Keyword: sprintf(color.New(color.FgCyan)),
		Punct:   sprintf(color.RGB(196, 128, 128)),
	}
}
