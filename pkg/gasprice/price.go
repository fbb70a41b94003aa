// Package gasprice defines the gas price estimate model shared by the
// estimators and the replacement filter. All prices are in gwei.
package gasprice

import (
	"fmt"
	"math"
	"strconv"
)

// GasPrice1559 is an EIP-1559 gas price estimate.
type GasPrice1559 struct {
	// MaxFeePerGas is the maximum total price per gas unit the transaction
	// commits to.
	MaxFeePerGas float64

	// MaxPriorityFeePerGas is the tip paid to the block producer on top of
	// the base fee.
	MaxPriorityFeePerGas float64

	// BaseFeePerGas is the base fee of the block the estimate was made
	// against. It is an observation, not an offer, and is carried through
	// every operation unchanged.
	BaseFeePerGas float64
}

// EstimatedGasPrice is a single gas price estimate. Legacy holds the
// pre-EIP-1559 flat gas price. EIP1559, if set, takes precedence over
// Legacy wherever a single cap or tip value is needed.
//
// Values are immutable: every operation returns a new estimate.
type EstimatedGasPrice struct {
	Legacy  float64
	EIP1559 *GasPrice1559
}

// Cap returns the maximum price per gas unit the estimate commits to.
func (p EstimatedGasPrice) Cap() float64 {
	if p.EIP1559 != nil {
		return p.EIP1559.MaxFeePerGas
	}
	return p.Legacy
}

// Tip returns the priority incentive portion of the price. Legacy
// estimates have no separate tip, so the flat price stands in for it.
func (p EstimatedGasPrice) Tip() float64 {
	if p.EIP1559 != nil {
		return p.EIP1559.MaxPriorityFeePerGas
	}
	return p.Legacy
}

// EffectiveGasPrice returns the price per gas unit the transaction would
// actually pay if it were included right now.
func (p EstimatedGasPrice) EffectiveGasPrice() float64 {
	if p.EIP1559 != nil {
		return math.Min(p.EIP1559.MaxFeePerGas, p.EIP1559.BaseFeePerGas+p.EIP1559.MaxPriorityFeePerGas)
	}
	return p.Legacy
}

// Bump returns a copy with the cap and tip multiplied by factor.
func (p EstimatedGasPrice) Bump(factor float64) EstimatedGasPrice {
	out := EstimatedGasPrice{Legacy: p.Legacy * factor}
	if p.EIP1559 != nil {
		out.EIP1559 = &GasPrice1559{
			MaxFeePerGas:         p.EIP1559.MaxFeePerGas * factor,
			MaxPriorityFeePerGas: p.EIP1559.MaxPriorityFeePerGas * factor,
			BaseFeePerGas:        p.EIP1559.BaseFeePerGas,
		}
	}
	return out
}

// Ceil returns a copy with the cap and tip rounded up to the next whole
// gwei. Rounding is always up so a computed minimum replacement price can
// never fall below the network requirement through truncation.
func (p EstimatedGasPrice) Ceil() EstimatedGasPrice {
	out := EstimatedGasPrice{Legacy: math.Ceil(p.Legacy)}
	if p.EIP1559 != nil {
		out.EIP1559 = &GasPrice1559{
			MaxFeePerGas:         math.Ceil(p.EIP1559.MaxFeePerGas),
			MaxPriorityFeePerGas: math.Ceil(p.EIP1559.MaxPriorityFeePerGas),
			BaseFeePerGas:        p.EIP1559.BaseFeePerGas,
		}
	}
	return out
}

// LimitCap returns a copy whose cap does not exceed gasPriceCap. The tip
// is clamped to the new cap so it never exceeds it.
func (p EstimatedGasPrice) LimitCap(gasPriceCap float64) EstimatedGasPrice {
	out := EstimatedGasPrice{Legacy: math.Min(p.Legacy, gasPriceCap)}
	if p.EIP1559 != nil {
		maxFee := math.Min(p.EIP1559.MaxFeePerGas, gasPriceCap)
		out.EIP1559 = &GasPrice1559{
			MaxFeePerGas:         maxFee,
			MaxPriorityFeePerGas: math.Min(p.EIP1559.MaxPriorityFeePerGas, maxFee),
			BaseFeePerGas:        p.EIP1559.BaseFeePerGas,
		}
	}
	return out
}

func (p EstimatedGasPrice) String() string {
	if p.EIP1559 != nil {
		return fmt.Sprintf("cap %sgwei tip %sgwei base %sgwei",
			formatGwei(p.EIP1559.MaxFeePerGas),
			formatGwei(p.EIP1559.MaxPriorityFeePerGas),
			formatGwei(p.EIP1559.BaseFeePerGas),
		)
	}
	return fmt.Sprintf("%sgwei", formatGwei(p.Legacy))
}

func formatGwei(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
