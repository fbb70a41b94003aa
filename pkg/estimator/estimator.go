// Package estimator produces gas price estimates from external sources.
package estimator

import (
	"context"

	"storj.io/gas-bump/pkg/gasprice"
)

// Estimator estimates the gas price a transaction should offer right now.
type Estimator interface {
	EstimateGasPrice(ctx context.Context) (gasprice.EstimatedGasPrice, error)
}

// Fixed is an Estimator that always returns the same estimate.
type Fixed gasprice.EstimatedGasPrice

func (f Fixed) EstimateGasPrice(ctx context.Context) (gasprice.EstimatedGasPrice, error) {
	return gasprice.EstimatedGasPrice(f), nil
}
