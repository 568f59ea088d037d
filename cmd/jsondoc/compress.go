// Copyright (C) 2026 The jsondoc Authors. All Rights Reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// decoders maps file extensions to constructors for decompressing readers.
var decoders = map[string]func(io.Reader) (io.ReadCloser, error){
	".gz": func(r io.Reader) (io.ReadCloser, error) { return gzip.NewReader(r) },
	".zst": func(r io.Reader) (io.ReadCloser, error) {
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	},
}

// readCompressed reads and decompresses the named file if its extension marks
// it as compressed, and reports whether it did so.
func readCompressed(name string) ([]byte, bool, error) {
	newReader, ok := decoders[filepath.Ext(name)]
	if !ok {
		return nil, false, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, true, err
	}
	defer f.Close()

	rc, err := newReader(f)
	if err != nil {
		return nil, true, fmt.Errorf("error decompressing %s: %w", name, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, true, fmt.Errorf("error decompressing %s: %w", name, err)
	}
	return data, true, nil
}
