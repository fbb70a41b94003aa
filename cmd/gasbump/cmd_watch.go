package main

import (
	"context"
	"errors"
	"time"

	"github.com/kyokomi/emoji/v2"
	"github.com/spf13/cobra"

	"storj.io/gas-bump/pkg/eth"
	"storj.io/gas-bump/pkg/fancy"
	"storj.io/gas-bump/pkg/gasprice"
	"storj.io/gas-bump/pkg/increase"
	"storj.io/gas-bump/pkg/monitor"
)

type watchConfig struct {
	*rootConfig
	Policy      string
	GasPriceCap string
}

func newWatchCommand(rootConfig *rootConfig) *cobra.Command {
	config := &watchConfig{
		rootConfig: rootConfig,
	}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the gas price feed and print each accepted replacement price",
		RunE: func(cmd *cobra.Command, args []string) error {
			return doWatch(config)
		},
	}
	cmd.Flags().StringVarP(
		&config.Policy,
		"policy", "",
		"",
		"Override the replacement comparison policy (cap-and-tip or cap-only)")
	cmd.Flags().StringVarP(
		&config.GasPriceCap,
		"gas-price-cap", "",
		"",
		`Override the configured gas price cap (e.g. "70gwei")`)
	return cmd
}

func doWatch(config *watchConfig) error {
	cfg, err := loadConfig(config.ConfigPath)
	if err != nil {
		return err
	}

	policy := cfg.Monitor.Policy.Increase()
	if config.Policy != "" {
		policy, err = increase.PolicyFromString(config.Policy)
		if err != nil {
			return usageErr.Wrap(err)
		}
	}

	gasPriceCap := cfg.Monitor.GasPriceCap.GweiFloat()
	if config.GasPriceCap != "" {
		unit, err := eth.ParseUnit(config.GasPriceCap)
		if err != nil {
			return usageErr.Wrap(err)
		}
		gasPriceCap = unit.GweiFloat()
	}

	log, err := openLog(config.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	est, closeEstimator, err := cfg.NewEstimator(config.Ctx)
	if err != nil {
		return err
	}
	defer closeEstimator()

	mon, err := monitor.New(monitor.Config{
		Log:          log,
		Estimator:    est,
		GasPriceCap:  gasPriceCap,
		Policy:       policy,
		PollInterval: time.Duration(cfg.Monitor.PollInterval),
		OnPrice: func(ctx context.Context, price gasprice.EstimatedGasPrice) error {
			printAccepted(price)
			return nil
		},
	})
	if err != nil {
		return err
	}

	err = mon.Run(config.Ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func printAccepted(price gasprice.EstimatedGasPrice) {
	fancy.Successln(emoji.Sprintf(":white_check_mark: replacement price %s", price))
}
