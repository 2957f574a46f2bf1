// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	v   *viper.Viper
	log *zap.Logger
}

func newRootCmd(a *app) *cobra.Command {
	if a.v == nil {
		a.v = viper.New()
	}
	cmd := &cobra.Command{
		Use:   "edgetopo",
		Short: "Synthetic edge resource topologies",
		Long: `edgetopo generates synthetic edge-computing resource topologies: one data
center, proxies reporting to it, and gateways reporting to earlier nodes, each
placed at random within a bounding box. Runs are reproducible from their seed.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.init,
	}
	f := cmd.PersistentFlags()
	f.String("config", "", "configuration file (yaml, json or toml)")
	f.Bool("debug", false, "human-readable debug logging")

	cmd.AddCommand(
		newGenerateCmd(a),
		newShiftCmd(a),
		newCheckCmd(a),
		newCompareCmd(a),
		newNearCmd(a),
	)
	return cmd
}

// init layers configuration as flags over environment over config file over
// flag defaults, then builds the logger.
func (a *app) init(cmd *cobra.Command, _ []string) error {
	a.v.SetEnvPrefix("EDGETOPO")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if path := a.v.GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return err
		}
	}

	if a.log == nil {
		var err error
		if a.v.GetBool("debug") {
			a.log, err = zap.NewDevelopment()
		} else {
			a.log, err = zap.NewProduction()
		}
		if err != nil {
			return err
		}
		zap.ReplaceGlobals(a.log)
	}
	a.log.Debug("configuration loaded",
		zap.String("command", cmd.Name()),
		zap.String("config", a.v.ConfigFileUsed()))
	return nil
}
