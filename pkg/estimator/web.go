package estimator

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/zeebo/errs"

	"storj.io/gas-bump/pkg/gasprice"
)

// Level selects which of the gas station's recommendations to use.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// LevelFromString parses a string into a Level const.
func LevelFromString(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "low":
		return LevelLow, nil
	case "medium":
		return LevelMedium, nil
	case "high":
		return LevelHigh, nil
	default:
		return "", errs.New("invalid level %q", s)
	}
}

// SuggestedGasFees is the response document of a gas station endpoint such
// as Infura's suggestedGasFees API. All values are gwei.
type SuggestedGasFees struct {
	Low              RecommendedGasValues `json:"low"`
	Medium           RecommendedGasValues `json:"medium"`
	High             RecommendedGasValues `json:"high"`
	EstimatedBaseFee decimal.Decimal      `json:"estimatedBaseFee"`
}

type RecommendedGasValues struct {
	SuggestedMaxPriorityFeePerGas decimal.Decimal `json:"suggestedMaxPriorityFeePerGas"`
	SuggestedMaxFeePerGas         decimal.Decimal `json:"suggestedMaxFeePerGas"`
}

// Web estimates gas prices from a gas station HTTP endpoint.
type Web struct {
	url   string
	level Level
}

func NewWeb(url string, level Level) *Web {
	return &Web{url: url, level: level}
}

func (w *Web) EstimateGasPrice(ctx context.Context) (gasprice.EstimatedGasPrice, error) {
	fees, err := getSuggestedGasFees(ctx, w.url)
	if err != nil {
		return gasprice.EstimatedGasPrice{}, err
	}

	var values RecommendedGasValues
	switch w.level {
	case LevelLow:
		values = fees.Low
	case LevelMedium:
		values = fees.Medium
	case LevelHigh:
		values = fees.High
	default:
		return gasprice.EstimatedGasPrice{}, errs.New("invalid level %q", w.level)
	}

	return gasprice.EstimatedGasPrice{
		EIP1559: &gasprice.GasPrice1559{
			MaxFeePerGas:         values.SuggestedMaxFeePerGas.InexactFloat64(),
			MaxPriorityFeePerGas: values.SuggestedMaxPriorityFeePerGas.InexactFloat64(),
			BaseFeePerGas:        fees.EstimatedBaseFee.InexactFloat64(),
		},
	}, nil
}

func getSuggestedGasFees(ctx context.Context, reqURL string) (*SuggestedGasFees, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, errs.Wrap(err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, errs.Wrap(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errs.New("expected status code 200 but got %d: %s", resp.StatusCode, tryRead(resp.Body))
	}

	out := new(SuggestedGasFees)
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return nil, errs.Wrap(err)
	}

	return out, nil
}

func tryRead(r io.Reader) string {
	b := make([]byte, 256)
	n, _ := r.Read(b)
	return string(b[:n])
}
