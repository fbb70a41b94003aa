package main

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

const (
	defaultConfigName = ".gasbump.toml"
)

type rootConfig struct {
	Ctx context.Context

	ConfigPath string
	Verbose    bool
}

func newRootCommand() *cobra.Command {
	config := new(rootConfig)
	cmd := &cobra.Command{
		Use:   "gasbump",
		Short: "Watch gas prices and suggest legal replacement transaction prices",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			config.Ctx = cmdCtx()
			return nil
		},
		Version: getVersion(),
	}
	cmd.PersistentFlags().StringVarP(
		&config.ConfigPath,
		"config", "",
		filepath.Join(homeDir, defaultConfigName),
		"Path to the TOML configuration")
	cmd.PersistentFlags().BoolVarP(
		&config.Verbose,
		"verbose", "v",
		false,
		"Also log rejected estimates")

	cmd.AddCommand(newWatchCommand(config))
	cmd.AddCommand(newPriceCommand(config))
	return cmd
}

func getVersion() string {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	return fmt.Sprintf("%s (built with %s)\n", buildInfo.Main.Version, runtime.Version())
}
