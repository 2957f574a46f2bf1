// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"github.com/petenewcomb/edgetopo-go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Validate a topology table",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			log := a.log.With(zap.String("file", args[0]))
			nodes, err := readTableFile(args[0])
			if err != nil {
				log.Error("reading topology failed", zap.Error(err))
				return err
			}
			if err := edgetopo.Validate(nodes); err != nil {
				log.Error("topology is invalid", zap.Error(err))
				return err
			}
			logSummary(log, "topology is valid", edgetopo.Summarize(nodes))
			return nil
		},
	}
}
