// Package config loads the TOML configuration for the gas price monitor.
package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pelletier/go-toml/v2"
	"github.com/zeebo/errs"

	"storj.io/gas-bump/pkg/estimator"
	"storj.io/gas-bump/pkg/eth"
	"storj.io/gas-bump/pkg/monitor"
)

type MissingFieldsError = toml.StrictMissingError

type Config struct {
	Monitor    Monitor     `toml:"monitor"`
	Eth        *Eth        `toml:"eth"`
	GasStation *GasStation `toml:"gasstation"`
}

type Monitor struct {
	// PollInterval is how often to poll the estimator for a fresh price.
	PollInterval Duration `toml:"poll_interval"`

	// GasPriceCap is the absolute price above which no replacement will
	// be suggested, e.g. "70gwei".
	GasPriceCap GasPrice `toml:"gas_price_cap"`

	// Policy is the replacement comparison policy: "cap-and-tip"
	// (default) or "cap-only".
	Policy Policy `toml:"policy"`
}

type Eth struct {
	// NodeAddress is the address of the ETH node to estimate from.
	NodeAddress string `toml:"node_address"`
}

func (c *Eth) NewEstimator(ctx context.Context) (_ estimator.Estimator, closeFunc func(), err error) {
	if c.NodeAddress == "" {
		return nil, nil, errors.New("node_address is not configured")
	}

	client, err := ethclient.Dial(c.NodeAddress)
	if err != nil {
		return nil, nil, errs.New("failed to dial node %q: %v", c.NodeAddress, err)
	}
	return estimator.NewNode(client), client.Close, nil
}

type GasStation struct {
	// URL is the gas station endpoint returning suggested gas fees.
	URL string `toml:"url"`

	// Level selects which recommendation to use: "low", "medium"
	// (default) or "high".
	Level string `toml:"level"`
}

func (c *GasStation) NewEstimator() (estimator.Estimator, error) {
	if c.URL == "" {
		return nil, errors.New("url is not configured")
	}

	level := estimator.LevelMedium
	if c.Level != "" {
		var err error
		level, err = estimator.LevelFromString(c.Level)
		if err != nil {
			return nil, err
		}
	}
	return estimator.NewWeb(c.URL, level), nil
}

// NewEstimator builds the estimator the config names. The node takes
// precedence when both are configured.
func (c *Config) NewEstimator(ctx context.Context) (_ estimator.Estimator, closeFunc func(), err error) {
	switch {
	case c.Eth != nil:
		return c.Eth.NewEstimator(ctx)
	case c.GasStation != nil:
		est, err := c.GasStation.NewEstimator()
		return est, func() {}, err
	}
	return nil, nil, errors.New("no estimator is configured")
}

func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	const (
		defaultPollInterval = Duration(monitor.DefaultPollInterval)
	)
	var (
		defaultGasPriceCap = GasPrice{Unit: eth.RequireParseUnit("70gwei")}
	)

	config := Config{
		Monitor: Monitor{
			PollInterval: defaultPollInterval,
			GasPriceCap:  defaultGasPriceCap,
		},
	}

	d := toml.NewDecoder(bytes.NewReader(data))
	d.DisallowUnknownFields()
	if err := d.Decode(&config); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return config, nil
}

func DumpUnknownFields(err error) string {
	var sme *toml.StrictMissingError
	if errors.As(err, &sme) {
		return sme.String()
	}
	return ""
}
