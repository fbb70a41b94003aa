package config_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storj.io/gas-bump/pkg/config"
	"storj.io/gas-bump/pkg/eth"
	"storj.io/gas-bump/pkg/increase"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("./testdata/defaults.toml")
	t.Logf("unknown fields:\n%s", config.DumpUnknownFields(err))
	require.NoError(t, err)

	assert.Equal(t, config.Config{
		Monitor: config.Monitor{
			PollInterval: config.Duration(time.Second * 15),
			GasPriceCap:  gasPrice("70gwei"),
			Policy:       config.Policy(increase.CapAndTip),
		},
		Eth: &config.Eth{
			NodeAddress: "https://someaddress.test",
		},
	}, cfg)
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := config.Load("./testdata/override.toml")
	require.NoError(t, err)

	assert.Equal(t, config.Config{
		Monitor: config.Monitor{
			PollInterval: config.Duration(time.Minute),
			GasPriceCap:  gasPrice("99gwei"),
			Policy:       config.Policy(increase.CapOnly),
		},
		GasStation: &config.GasStation{
			URL:   "https://gasstation.test/suggestedGasFees",
			Level: "high",
		},
	}, cfg)
}

func TestParse_UnknownFields(t *testing.T) {
	_, err := config.Parse([]byte("[monitor]\nbogus_field = 1\n"))
	require.Error(t, err)
}

func TestParse_InvalidGasPriceCap(t *testing.T) {
	_, err := config.Parse([]byte("[monitor]\ngas_price_cap = \"70parsecs\"\n"))
	require.Error(t, err)
}

func TestParse_InvalidPolicy(t *testing.T) {
	_, err := config.Parse([]byte("[monitor]\npolicy = \"bogus\"\n"))
	require.Error(t, err)
}

func TestNewEstimator_Unconfigured(t *testing.T) {
	_, _, err := (&config.Config{}).NewEstimator(context.Background())
	require.EqualError(t, err, "no estimator is configured")
}

func gasPrice(s string) config.GasPrice {
	return config.GasPrice{Unit: eth.RequireParseUnit(s)}
}
