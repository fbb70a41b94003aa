package estimator

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"storj.io/gas-bump/pkg/gasprice"
)

func TestWebEstimate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`
			{
			  "low": {
				"suggestedMaxPriorityFeePerGas": "0.05",
				"suggestedMaxFeePerGas": "16.334026964",
				"minWaitTimeEstimate": 15000,
				"maxWaitTimeEstimate": 30000
			  },
			  "medium": {
				"suggestedMaxPriorityFeePerGas": "0.1",
				"suggestedMaxFeePerGas": "22.083436402",
				"minWaitTimeEstimate": 15000,
				"maxWaitTimeEstimate": 45000
			  },
			  "high": {
				"suggestedMaxPriorityFeePerGas": "0.3",
				"suggestedMaxFeePerGas": "27.982845839",
				"minWaitTimeEstimate": 15000,
				"maxWaitTimeEstimate": 60000
			  },
			  "estimatedBaseFee": "16.284026964",
			  "networkCongestion": 0.5125,
			  "priorityFeeTrend": "down",
			  "baseFeeTrend": "up"
			}
		`))
	}))
	defer server.Close()

	estimate, err := NewWeb(server.URL, LevelMedium).EstimateGasPrice(context.Background())
	require.NoError(t, err)
	require.Equal(t, gasprice.EstimatedGasPrice{
		EIP1559: &gasprice.GasPrice1559{
			MaxFeePerGas:         22.083436402,
			MaxPriorityFeePerGas: 0.1,
			BaseFeePerGas:        16.284026964,
		},
	}, estimate)

	estimate, err = NewWeb(server.URL, LevelHigh).EstimateGasPrice(context.Background())
	require.NoError(t, err)
	require.Equal(t, 27.982845839, estimate.Cap())
}

func TestWebEstimateBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := NewWeb(server.URL, LevelMedium).EstimateGasPrice(context.Background())
	require.Error(t, err)
}

func TestLevelFromString(t *testing.T) {
	level, err := LevelFromString("LOW")
	require.NoError(t, err)
	require.Equal(t, LevelLow, level)

	_, err = LevelFromString("bogus")
	require.Error(t, err)
}
