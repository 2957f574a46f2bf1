// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"github.com/petenewcomb/edgetopo-go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newGenerateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a topology and write it as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.generate(cmd)
		},
	}
	d := &edgetopo.DefaultConfig
	f := cmd.Flags()
	f.Int("count", d.Count, "number of nodes, data center included")
	f.Uint64("seed", 1, "random seed; equal seeds and parameters give equal output")
	f.Int("blocks", d.BlockCount, "number of block labels")
	f.Float64("min-lat", d.Box.MinLat, "southern bound of node positions")
	f.Float64("max-lat", d.Box.MaxLat, "northern bound of node positions")
	f.Float64("min-lon", d.Box.MinLon, "western bound of node positions")
	f.Float64("max-lon", d.Box.MaxLon, "eastern bound of node positions")
	f.Float64("root-lat", d.Root.Latitude, "latitude of the data center")
	f.Float64("root-lon", d.Root.Longitude, "longitude of the data center")
	f.String("state", d.State, "state label written to every node")
	f.StringP("out", "o", "", "output file, stdout if empty or -")
	return cmd
}

func (a *app) configFromFlags() edgetopo.Config {
	v := a.v
	return edgetopo.Config{
		Count: v.GetInt("count"),
		Box: edgetopo.Box{
			MinLat: v.GetFloat64("min-lat"),
			MaxLat: v.GetFloat64("max-lat"),
			MinLon: v.GetFloat64("min-lon"),
			MaxLon: v.GetFloat64("max-lon"),
		},
		BlockCount: v.GetInt("blocks"),
		State:      v.GetString("state"),
		Root: edgetopo.Location{
			Latitude:  v.GetFloat64("root-lat"),
			Longitude: v.GetFloat64("root-lon"),
		},
	}
}

func (a *app) generate(cmd *cobra.Command) error {
	config := a.configFromFlags()
	seed := a.v.GetUint64("seed")
	log := a.log.With(zap.Uint64("seed", seed))

	nodes, err := edgetopo.Generate(&config, edgetopo.NewSource(seed))
	if err != nil {
		log.Error("generation failed", zap.Error(err))
		return err
	}
	if err := edgetopo.Validate(nodes); err != nil {
		log.Error("generated topology is invalid", zap.Error(err))
		return err
	}
	out := a.v.GetString("out")
	if err := writeTableFile(out, cmd.OutOrStdout(), nodes); err != nil {
		log.Error("writing topology failed", zap.String("out", out), zap.Error(err))
		return err
	}
	logSummary(log, "generated topology", edgetopo.Summarize(nodes))
	return nil
}

func logSummary(log *zap.Logger, msg string, s edgetopo.Summary) {
	log.Info(msg,
		zap.Int("nodes", s.Count),
		zap.Int("proxies", s.ByLevel[edgetopo.LevelProxy]),
		zap.Int("gateways", s.ByLevel[edgetopo.LevelGateway]),
		zap.Int("maxDepth", s.MaxDepth),
		zap.String("blocks", s.Blocks()),
		zap.Float64s("extent", []float64{s.Extent.MinLat, s.Extent.MaxLat, s.Extent.MinLon, s.Extent.MaxLon}))
}
