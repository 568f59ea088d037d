// Copyright (C) 2026 The jsondoc Authors. All Rights Reserved.

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/jsondoc/jsondoc"
	"github.com/jsondoc/jsondoc/ast"
	"github.com/scott-cotton/cli"
)

// loadPatch reads the named file as an RFC 6902 JSON Patch. The file is parsed
// with the configured settings before it is decoded.
func (cfg *mainConfig) loadPatch(cc *cli.Context, name string) (jsonpatch.Patch, error) {
	doc, err := cfg.load(cc, name)
	if err != nil {
		return nil, err
	}
	root, ok := doc.Root()
	if !ok {
		return nil, fmt.Errorf("patch %s: %w", name, ast.ErrEmptyDocument)
	}
	if _, ok := root.(ast.Array); !ok {
		return nil, fmt.Errorf("patch %s: got %s, want array of operations", name, root.Kind())
	}
	return jsonpatch.DecodePatch(encodeStrict(root))
}

// applyPatch returns a copy of doc with patch applied. The input is not
// modified. Members of patched objects are reordered by key.
//
// The patch library reads and writes strict JSON, whose string escapes differ
// from those of the scanner, so values cross that boundary through
// encodeStrict and decodeStrict rather than the lenient text format.
func applyPatch(doc *ast.Document, patch jsonpatch.Patch) (*ast.Document, error) {
	root, ok := doc.Root()
	if !ok {
		return nil, ast.ErrEmptyDocument
	}
	out, err := patch.Apply(encodeStrict(root))
	if err != nil {
		return nil, err
	}
	v, err := decodeStrict(out)
	if err != nil {
		return nil, fmt.Errorf("decoding patched document: %w", err)
	}
	return ast.NewDocument(v), nil
}

// encodeStrict renders v as strict JSON, escaping strings as encoding/json
// does.
func encodeStrict(v ast.Value) []byte {
	var buf bytes.Buffer
	var put func(ast.Value)
	put = func(v ast.Value) {
		switch t := v.(type) {
		case ast.String:
			b, _ := json.Marshal(string(t)) // a string always encodes
			buf.Write(b)
		case ast.Number:
			buf.WriteString(jsondoc.FormatNumber(float64(t)))
		case ast.Array:
			buf.WriteByte('[')
			for i, elt := range t {
				if i > 0 {
					buf.WriteByte(',')
				}
				put(elt)
			}
			buf.WriteByte(']')
		case *ast.Object:
			buf.WriteByte('{')
			for i, m := range t.Members() {
				if i > 0 {
					buf.WriteByte(',')
				}
				put(ast.String(m.Key))
				buf.WriteByte(':')
				put(m.Value)
			}
			buf.WriteByte('}')
		default:
			buf.WriteString(v.JSON())
		}
	}
	put(v)
	return buf.Bytes()
}

// decodeStrict parses a single strict JSON value from data.
func decodeStrict(data []byte) (ast.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected input after value")
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (ast.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		var out ast.Value
		switch t {
		case '[':
			arr := ast.Array{}
			for dec.More() {
				elt, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, elt)
			}
			out = arr
		case '{':
			obj := new(ast.Object)
			for dec.More() {
				key, err := dec.Token()
				if err != nil {
					return nil, err
				}
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				obj.Set(key.(string), val)
			}
			out = obj
		default:
			return nil, fmt.Errorf("unexpected %q", t)
		}
		if _, err := dec.Token(); err != nil { // the closing delimiter
			return nil, err
		}
		return out, nil
	case string:
		return ast.String(t), nil
	case json.Number:
		f, err := strconv.ParseFloat(string(t), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, err
		}
		return ast.Number(f), nil // out of range values are ±Inf or 0
	case bool:
		return ast.Bool(t), nil
	case nil:
		return ast.Null, nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

func runPatch(cfg *patchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	patch, err := cfg.loadPatch(cc, args[0])
	if err != nil {
		return fmt.Errorf("error loading patch: %w", err)
	}
	for _, file := range inputs(args[1:]) {
		doc, err := cfg.load(cc, file)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", file, err)
		}
		out, err := applyPatch(doc, patch)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", file, err)
		}
		root, _ := out.Root()
		if err := cfg.write(cc.Out, root); err != nil {
			return fmt.Errorf("error writing %s: %w", file, err)
		}
	}
	return nil
}
