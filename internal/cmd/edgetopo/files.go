// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/petenewcomb/edgetopo-go"
)

// createOutput opens path for writing, or returns stdout when path is empty or
// "-". The returned close function must always be called.
func createOutput(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func writeTableFile(path string, stdout io.Writer, nodes []edgetopo.Node) (err error) {
	out, closeOut, err := createOutput(path, stdout)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeOut(); err == nil {
			err = cerr
		}
	}()
	w := csv.NewWriter(out)
	if err := edgetopo.WriteTable(w, nodes); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func readTableFile(path string) ([]edgetopo.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	nodes, err := edgetopo.ReadTable(csv.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return nodes, nil
}
