package main

import (
	"github.com/spf13/cobra"
	"github.com/zeebo/errs/v2"

	"storj.io/gas-bump/pkg/fancy"
)

type priceConfig struct {
	*rootConfig
}

func newPriceCommand(rootConfig *rootConfig) *cobra.Command {
	config := &priceConfig{
		rootConfig: rootConfig,
	}

	cmd := &cobra.Command{
		Use:   "price",
		Short: "Print the current gas price estimate.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return doPrice(config)
		},
	}
	return cmd
}

func doPrice(config *priceConfig) error {
	cfg, err := loadConfig(config.ConfigPath)
	if err != nil {
		return err
	}

	est, closeEstimator, err := cfg.NewEstimator(config.Ctx)
	if err != nil {
		return err
	}
	defer closeEstimator()

	estimate, err := est.EstimateGasPrice(config.Ctx)
	if err != nil {
		return errs.Wrap(err)
	}

	fancy.Infof("estimate:  %s\n", estimate)
	fancy.Infof("cap:       %v gwei\n", estimate.Cap())
	fancy.Infof("tip:       %v gwei\n", estimate.Tip())
	fancy.Infof("effective: %v gwei\n", estimate.EffectiveGasPrice())
	return nil
}
