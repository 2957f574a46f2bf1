// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"github.com/petenewcomb/edgetopo-go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newNearCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "near FILE",
		Short: "List the nodes of a topology closest to a point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nodes, err := readTableFile(args[0])
			if err != nil {
				a.log.Error("reading topology failed", zap.String("file", args[0]), zap.Error(err))
				return err
			}
			center := edgetopo.Location{
				Latitude:  a.v.GetFloat64("lat"),
				Longitude: a.v.GetFloat64("lon"),
			}
			nearest := edgetopo.Nearest(nodes, center, a.v.GetInt("k"))
			a.log.Debug("nearest nodes",
				zap.Float64("lat", center.Latitude),
				zap.Float64("lon", center.Longitude),
				zap.Int("found", len(nearest)))
			return writeTableFile("", cmd.OutOrStdout(), nearest)
		},
	}
	f := cmd.Flags()
	f.Float64("lat", edgetopo.DefaultConfig.Root.Latitude, "latitude of the query point")
	f.Float64("lon", edgetopo.DefaultConfig.Root.Longitude, "longitude of the query point")
	f.Int("k", 5, "number of nodes to list")
	return cmd
}
