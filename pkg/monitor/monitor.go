// Package monitor polls a gas price estimator and reports the prices that
// qualify as replacements for the previously reported price.
package monitor

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"storj.io/gas-bump/pkg/estimator"
	"storj.io/gas-bump/pkg/gasprice"
	"storj.io/gas-bump/pkg/increase"
)

const (
	// DefaultPollInterval is how often to ask the estimator for a fresh
	// price when the config does not say otherwise.
	DefaultPollInterval = time.Second * 15
)

type sleepFunc = func(context.Context, time.Duration) error

// PriceFunc receives each accepted replacement price, in order. Returning
// an error stops the monitor.
type PriceFunc = func(ctx context.Context, price gasprice.EstimatedGasPrice) error

type Config struct {
	// Log is the logger for logging monitor progress.
	Log *zap.Logger

	// Estimator supplies the raw gas price estimates.
	Estimator estimator.Estimator

	// GasPriceCap is the absolute gas price, in gwei, above which no
	// replacement will be reported.
	GasPriceCap float64

	// Policy selects the replacement comparison policy.
	Policy increase.Policy

	// PollInterval is how often to poll the estimator. Defaults to
	// DefaultPollInterval if unset.
	PollInterval time.Duration

	// OnPrice is invoked for every accepted replacement price.
	OnPrice PriceFunc

	// test hook used for sleeping so we aren't dependent on real time
	sleep sleepFunc
}

// Monitor owns one filter lineage, i.e. the replacement prices for a
// single nonce slot. Run a separate Monitor per pending nonce; sharing one
// across nonces corrupts the replacement history.
type Monitor struct {
	log *zap.Logger

	estimator    estimator.Estimator
	filter       *increase.Filter
	gasPriceCap  float64
	policy       increase.Policy
	pollInterval time.Duration
	onPrice      PriceFunc

	sleep sleepFunc
}

func New(config Config) (*Monitor, error) {
	switch {
	case config.Log == nil:
		return nil, errors.New("log is required")
	case config.Estimator == nil:
		return nil, errors.New("estimator is required")
	case config.OnPrice == nil:
		return nil, errors.New("price callback is required")
	}
	if config.PollInterval == 0 {
		config.PollInterval = DefaultPollInterval
	}
	if config.sleep == nil {
		config.sleep = sleepFor
	}

	return &Monitor{
		log:          config.Log,
		estimator:    config.Estimator,
		filter:       increase.NewFilter(config.GasPriceCap, config.Policy),
		gasPriceCap:  config.GasPriceCap,
		policy:       config.Policy,
		pollInterval: config.PollInterval,
		onPrice:      config.OnPrice,
		sleep:        config.sleep,
	}, nil
}

// Run polls the estimator until ctx is canceled or the price callback
// fails. Estimator failures are logged and retried on the next tick.
func (m *Monitor) Run(ctx context.Context) error {
	m.log.Info("Monitoring gas prices",
		zap.Float64("gas-price-cap", m.gasPriceCap),
		zap.Stringer("policy", m.policy),
		zap.String("poll-interval", m.pollInterval.String()),
	)

	for {
		if err := m.step(ctx); err != nil {
			return err
		}

		if err := m.sleep(ctx, m.pollInterval); err != nil {
			m.log.Error("Monitoring interrupted", zap.Error(err))
			return err
		}
	}
}

func (m *Monitor) step(ctx context.Context) error {
	estimate, err := m.estimator.EstimateGasPrice(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		m.log.Warn("Failed to estimate gas price; will retry", zap.Error(err))
		return nil
	}

	accepted, ok := m.filter.Apply(estimate)
	if !ok {
		m.log.Debug("Estimate is not a legal replacement; keeping current price",
			zap.Float64("cap", estimate.Cap()),
			zap.Float64("tip", estimate.Tip()),
		)
		return nil
	}

	m.log.Info("Replacement gas price accepted",
		zap.Float64("cap", accepted.Cap()),
		zap.Float64("tip", accepted.Tip()),
		zap.Float64("effective", accepted.EffectiveGasPrice()),
	)
	return m.onPrice(ctx, accepted)
}

func sleepFor(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		timer.Stop()
		return ctx.Err()
	}
}
