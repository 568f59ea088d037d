// Copyright (C) 2026 The jsondoc Authors. All Rights Reserved.

package ast_test

import (
	"fmt"
	"log"
	"os"

	"github.com/jsondoc/jsondoc/ast"
)

func Example() {
	doc, err := ast.ParseText(`{"a": [1, {"b": "x"}], "list": []}`)
	if err != nil {
		log.Fatalf("Parse: %v", err)
	}
	v, err := doc.Follow(ast.PathOf("a", 1, "b"))
	if err != nil {
		log.Fatalf("Follow: %v", err)
	}
	fmt.Println(v)

	if err := doc.Move(ast.PathOf("list", 0), ast.PathOf("a", 0)); err != nil {
		log.Fatalf("Move: %v", err)
	}
	doc.Dump(os.Stdout)
	fmt.Println()
	// Output:
	// x
	// {
	//   "a" : [
	//     {
	//       "b" : "x"
	//     }
	//   ],
	//   "list" : [
	//     1
	//   ]
	// }
}

func ExampleSearchKey() {
	root := ast.ObjectOf(
		ast.Field("id", 0),
		ast.Field("nested", ast.ObjectOf(ast.Field("id", 1))),
		ast.Field("list", []any{map[string]any{"id": 2}}),
	)
	fmt.Println(ast.SearchKey(root, "id").JSON())
	// Output:
	// [2,1,0]
}

func ExampleParsePath() {
	p, err := ast.ParsePath(`$.offices[1]["street address"]`)
	if err != nil {
		log.Fatalf("ParsePath: %v", err)
	}
	fmt.Println(len(p), p)
	// Output:
	// 3 $.offices[1]["street address"]
}
