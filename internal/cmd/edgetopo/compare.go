// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type tablesDifferError struct {
	a, b string
}

func (e tablesDifferError) Error() string {
	return fmt.Sprintf("%s and %s differ", e.a, e.b)
}

func newCompareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare A B",
		Short: "Report whether two topology tables are identical",
		Long: `compare reads two topology tables and prints a row-level diff if they are
not identical. Two runs of generate with the same seed and parameters must
compare equal.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := a.log.With(zap.String("a", args[0]), zap.String("b", args[1]))
			first, err := readTableFile(args[0])
			if err != nil {
				log.Error("reading topology failed", zap.Error(err))
				return err
			}
			second, err := readTableFile(args[1])
			if err != nil {
				log.Error("reading topology failed", zap.Error(err))
				return err
			}
			if diff := cmp.Diff(first, second); diff != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "--- %s\n+++ %s\n%s", args[0], args[1], diff)
				err := tablesDifferError{args[0], args[1]}
				log.Warn("topologies differ", zap.Int("nodesA", len(first)), zap.Int("nodesB", len(second)))
				return err
			}
			log.Info("topologies are identical", zap.Int("nodes", len(first)))
			return nil
		},
	}
}
