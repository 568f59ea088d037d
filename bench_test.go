// Copyright (C) 2026 The jsondoc Authors. All Rights Reserved.

package jsondoc_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/jsondoc/jsondoc"
	"github.com/jsondoc/jsondoc/ast"
)

func benchInput(b *testing.B, name string) []byte {
	b.Helper()
	data, err := os.ReadFile("testdata/" + name)
	if err != nil {
		b.Fatalf("Read %s: %v", name, err)
	}
	b.SetBytes(int64(len(data)))
	return data
}

// Encoding/json is the baseline for each comparison.

func BenchmarkScanner(b *testing.B) {
	data := benchInput(b, "nested.json")

	b.Run("json.Decoder", func(b *testing.B) {
		for b.Loop() {
			dec := json.NewDecoder(bytes.NewReader(data))
			var err error
			for err == nil {
				_, err = dec.Token()
			}
			if !errors.Is(err, io.EOF) {
				b.Fatalf("Token: %v", err)
			}
		}
	})

	b.Run("Scanner", func(b *testing.B) {
		for b.Loop() {
			sc := jsondoc.NewScanner(jsondoc.NewBytes(data))
			for _, err := range sc.Tokens() {
				if err != nil {
					b.Fatalf("Next: %v", err)
				}
			}
		}
	})
}

func BenchmarkParse(b *testing.B) {
	data := benchInput(b, "organisation.json")

	b.Run("json.Unmarshal", func(b *testing.B) {
		for b.Loop() {
			var v any
			if err := json.Unmarshal(data, &v); err != nil {
				b.Fatalf("Unmarshal: %v", err)
			}
		}
	})

	b.Run("ParseBytes", func(b *testing.B) {
		for b.Loop() {
			if _, err := ast.ParseBytes(data); err != nil {
				b.Fatalf("Parse: %v", err)
			}
		}
	})
}

func BenchmarkDump(b *testing.B) {
	doc, err := ast.ParseBytes(benchInput(b, "nested.json"))
	if err != nil {
		b.Fatalf("Parse: %v", err)
	}
	for b.Loop() {
		if err := doc.Dump(io.Discard); err != nil {
			b.Fatalf("Dump: %v", err)
		}
	}
}

func BenchmarkSearchKey(b *testing.B) {
	doc, err := ast.ParseBytes(benchInput(b, "organisation.json"))
	if err != nil {
		b.Fatalf("Parse: %v", err)
	}
	for b.Loop() {
		doc.SearchKey("id")
	}
}
