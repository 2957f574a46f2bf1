// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/petenewcomb/edgetopo-go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newShiftCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shift",
		Short: "Translate a latitude,longitude trace by a fixed offset",
		Long: `shift reads a two-column latitude,longitude file, adds an offset to every
row, and writes the result. The default offset moves Melbourne CBD traces onto
Dublin. A leading header row is copied through unchanged.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.shift(cmd)
		},
	}
	f := cmd.Flags()
	f.String("in", "", "input trace file")
	f.StringP("out", "o", "", "output file, stdout if empty or -")
	f.Float64("dlat", edgetopo.MelbourneToDublin.Latitude, "latitude offset in degrees")
	f.Float64("dlon", edgetopo.MelbourneToDublin.Longitude, "longitude offset in degrees")
	return cmd
}

func (a *app) shift(cmd *cobra.Command) (err error) {
	in := a.v.GetString("in")
	out := a.v.GetString("out")
	offset := edgetopo.Offset{
		Latitude:  a.v.GetFloat64("dlat"),
		Longitude: a.v.GetFloat64("dlon"),
	}
	log := a.log.With(zap.String("in", in), zap.String("out", out))

	if in == "" {
		return errors.New("no input trace given, set --in")
	}
	if same, err := samePath(in, out); err != nil {
		return err
	} else if same {
		err := fmt.Errorf("input and output are both %s", in)
		log.Error("refusing to overwrite input", zap.Error(err))
		return err
	}

	header, locs, err := readTrace(in)
	if err != nil {
		log.Error("reading trace failed", zap.Error(err))
		return err
	}
	shifted := edgetopo.ShiftAll(locs, offset)

	w, closeOut, err := createOutput(out, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeOut(); err == nil {
			err = cerr
		}
	}()
	if err := writeTrace(w, header, shifted); err != nil {
		log.Error("writing trace failed", zap.Error(err))
		return err
	}
	log.Info("shifted trace",
		zap.Int("points", len(shifted)),
		zap.Float64("dlat", offset.Latitude),
		zap.Float64("dlon", offset.Longitude))
	return nil
}

func samePath(in, out string) (bool, error) {
	if out == "" || out == "-" {
		return false, nil
	}
	absIn, err := filepath.Abs(in)
	if err != nil {
		return false, err
	}
	absOut, err := filepath.Abs(out)
	if err != nil {
		return false, err
	}
	return absIn == absOut, nil
}

// readTrace returns the optional header row and the locations of a
// latitude,longitude file. Spaces after commas are ignored.
func readTrace(path string) ([]string, []edgetopo.Location, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2
	r.TrimLeadingSpace = true

	var header []string
	var locs []edgetopo.Location
	for row := 1; ; row++ {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			return header, locs, nil
		}
		if err != nil {
			return nil, nil, err
		}
		lat, latErr := strconv.ParseFloat(record[0], 64)
		lon, lonErr := strconv.ParseFloat(record[1], 64)
		if latErr != nil || lonErr != nil {
			if row == 1 {
				header = record
				continue
			}
			return nil, nil, fmt.Errorf("%s row %d: %w", path, row, errors.Join(latErr, lonErr))
		}
		locs = append(locs, edgetopo.Location{Latitude: lat, Longitude: lon})
	}
}

func writeTrace(w io.Writer, header []string, locs []edgetopo.Location) error {
	cw := csv.NewWriter(w)
	if header != nil {
		if err := cw.Write(header); err != nil {
			return err
		}
	}
	for _, l := range locs {
		record := []string{
			strconv.FormatFloat(l.Latitude, 'g', -1, 64),
			strconv.FormatFloat(l.Longitude, 'g', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
