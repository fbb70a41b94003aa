// Package increase enforces the minimum price bump a replacement
// transaction must offer over the pending transaction in the same nonce
// slot.
package increase

import (
	"context"
	"math"
	"strings"

	"github.com/zeebo/errs"

	"storj.io/gas-bump/pkg/gasprice"
)

// MinPriceBumpFactor is the factor a replacement transaction must raise
// the gas price by. Geth and openethereum require at least 12.5%; the
// epsilon keeps the computed minimum from rounding back below the
// requirement through floating point error.
const MinPriceBumpFactor = 1.125 * (1 + 2.220446049250313e-16)

// MinimumIncrease returns the lowest gas price allowed to replace
// previous, rounded up to whole gwei.
func MinimumIncrease(previous gasprice.EstimatedGasPrice) gasprice.EstimatedGasPrice {
	return previous.Bump(MinPriceBumpFactor).Ceil()
}

// Policy selects which fields of an estimate must increase for it to
// count as a genuine replacement.
type Policy int

const (
	// CapAndTip requires both the cap and the tip to increase, so a tip
	// decrease cannot hide behind a cap increase.
	CapAndTip Policy = iota

	// CapOnly requires only the cap to increase.
	CapOnly
)

func (p Policy) String() string {
	switch p {
	case CapAndTip:
		return "cap-and-tip"
	case CapOnly:
		return "cap-only"
	}
	return ""
}

// PolicyFromString parses a string into a Policy const.
func PolicyFromString(s string) (Policy, error) {
	switch strings.ToLower(s) {
	case "cap-and-tip":
		return CapAndTip, nil
	case "cap-only":
		return CapOnly, nil
	default:
		return 0, errs.New("invalid policy %q", s)
	}
}

// Filter passes through only those gas price estimates that are legal
// replacements for the last estimate it accepted, never exceeding the
// configured gas price cap. One Filter tracks one nonce slot; concurrent
// lineages must each own an independent instance.
type Filter struct {
	gasPriceCap float64
	policy      Policy
	last        *gasprice.EstimatedGasPrice
}

// NewFilter returns a Filter with empty history. Panics if gasPriceCap is
// negative or not finite.
func NewFilter(gasPriceCap float64, policy Policy) *Filter {
	if !isValidPrice(gasPriceCap) {
		panic("gas price cap must be finite and non-negative")
	}
	return &Filter{
		gasPriceCap: gasPriceCap,
		policy:      policy,
	}
}

// Apply decides whether estimate may replace the last accepted estimate.
// On acceptance it returns the estimate to use, adjusted up to the
// minimum legal increase and clamped to the gas price cap as needed, and
// records it. Rejection is an expected outcome, not an error.
//
// Panics if the estimate's cap is negative or not finite: that is a bug
// in the producer, and silently passing the value along risks submitting
// an invalid transaction.
func (f *Filter) Apply(estimate gasprice.EstimatedGasPrice) (gasprice.EstimatedGasPrice, bool) {
	if !isValidPrice(estimate.Cap()) {
		panic("gas price estimate must be finite and non-negative")
	}

	if f.last == nil {
		accepted := estimate.LimitCap(f.gasPriceCap)
		f.last = &accepted
		return accepted, true
	}

	accepted, ok := replacement(*f.last, estimate, f.gasPriceCap, f.policy)
	if !ok {
		return gasprice.EstimatedGasPrice{}, false
	}
	f.last = &accepted
	return accepted, true
}

// Last returns the last accepted estimate, if any.
func (f *Filter) Last() (gasprice.EstimatedGasPrice, bool) {
	if f.last == nil {
		return gasprice.EstimatedGasPrice{}, false
	}
	return *f.last, true
}

// Pump reads estimates from in and forwards the accepted replacements to
// out until in is closed or ctx is canceled. out is closed on return.
// Estimates are processed strictly in arrival order.
func (f *Filter) Pump(ctx context.Context, in <-chan gasprice.EstimatedGasPrice, out chan<- gasprice.EstimatedGasPrice) error {
	defer close(out)
	for {
		select {
		case estimate, ok := <-in:
			if !ok {
				return nil
			}
			accepted, ok := f.Apply(estimate)
			if !ok {
				continue
			}
			select {
			case out <- accepted:
			case <-ctx.Done():
				return ctx.Err()
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// replacement decides whether estimate may replace previous under the
// given cap and policy.
func replacement(previous, estimate gasprice.EstimatedGasPrice, gasPriceCap float64, policy Policy) (gasprice.EstimatedGasPrice, bool) {
	minimum := MinimumIncrease(previous)
	if minimum.Cap() > gasPriceCap {
		// No legal replacement price exists under the cap.
		return gasprice.EstimatedGasPrice{}, false
	}

	if estimate.Cap() <= previous.Cap() {
		// The price has not increased.
		return gasprice.EstimatedGasPrice{}, false
	}
	if policy == CapAndTip && estimate.Tip() <= previous.Tip() {
		return gasprice.EstimatedGasPrice{}, false
	}

	// The price increased but possibly by less than the network requires;
	// adjust it up to the minimum if it falls short.
	accepted := minimum
	if estimate.Cap() >= minimum.Cap() && (policy == CapOnly || estimate.Tip() >= minimum.Tip()) {
		accepted = estimate
	}

	return accepted.LimitCap(gasPriceCap), true
}

func isValidPrice(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
