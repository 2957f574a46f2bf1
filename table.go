// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package edgetopo

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
)

// Header names the columns of a topology table, in order.
var Header = []string{"ID", "Latitude", "Longitude", "Block", "Level", "Parent", "State", "Details"}

// RecordWriter is the sink for table rows. *csv.Writer satisfies it.
type RecordWriter interface {
	Write(record []string) error
}

// RecordReader is the source of table rows. *csv.Reader satisfies it.
type RecordReader interface {
	Read() (record []string, err error)
}

// Record renders n as one table row. Coordinates use the shortest
// representation that parses back to the same float64.
func (n Node) Record() []string {
	return []string{
		strconv.Itoa(n.ID),
		formatFloat(n.Latitude),
		formatFloat(n.Longitude),
		strconv.Itoa(n.Block),
		strconv.Itoa(int(n.Level)),
		strconv.Itoa(n.Parent),
		n.State,
		n.Details,
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// ParseRecord is the inverse of [Node.Record].
func ParseRecord(record []string) (Node, error) {
	if len(record) != len(Header) {
		return Node{}, fmt.Errorf("%w: want %d fields, got %d", ErrMalformedRecord, len(Header), len(record))
	}
	var n Node
	var err error
	ints := []struct {
		col int
		dst *int
	}{
		{0, &n.ID},
		{3, &n.Block},
		{5, &n.Parent},
	}
	for _, f := range ints {
		if *f.dst, err = strconv.Atoi(record[f.col]); err != nil {
			return Node{}, fmt.Errorf("%w: %s: %v", ErrMalformedRecord, Header[f.col], err)
		}
	}
	level, err := strconv.Atoi(record[4])
	if err != nil {
		return Node{}, fmt.Errorf("%w: %s: %v", ErrMalformedRecord, Header[4], err)
	}
	n.Level = Level(level)
	if n.Latitude, err = strconv.ParseFloat(record[1], 64); err != nil {
		return Node{}, fmt.Errorf("%w: %s: %v", ErrMalformedRecord, Header[1], err)
	}
	if n.Longitude, err = strconv.ParseFloat(record[2], 64); err != nil {
		return Node{}, fmt.Errorf("%w: %s: %v", ErrMalformedRecord, Header[2], err)
	}
	n.State = record[6]
	n.Details = record[7]
	return n, nil
}

// WriteTable writes the header and then one row per node. Buffered writers
// such as *csv.Writer must still be flushed by the caller.
func WriteTable(w RecordWriter, nodes []Node) error {
	if err := w.Write(Header); err != nil {
		return err
	}
	for _, n := range nodes {
		if err := w.Write(n.Record()); err != nil {
			return fmt.Errorf("writing %v: %w", n, err)
		}
	}
	return nil
}

// ReadTable reads a header row followed by node rows until io.EOF. Rows are
// returned as read; use [Validate] to check them.
func ReadTable(r RecordReader) ([]Node, error) {
	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: missing header", ErrMalformedRecord)
	}
	if err != nil {
		return nil, err
	}
	if !slices.Equal(header, Header) {
		return nil, fmt.Errorf("%w: unexpected header %q", ErrMalformedRecord, header)
	}
	var nodes []Node
	for row := 1; ; row++ {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nodes, nil
		}
		if err != nil {
			return nil, err
		}
		n, err := ParseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		nodes = append(nodes, n)
	}
}
