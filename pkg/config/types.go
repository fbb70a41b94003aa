package config

import (
	"time"

	"storj.io/gas-bump/pkg/eth"
	"storj.io/gas-bump/pkg/increase"
)

type Duration time.Duration

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// GasPrice is a price unit string such as "70gwei" or "0.05eth".
type GasPrice struct {
	eth.Unit
}

func (g *GasPrice) UnmarshalText(b []byte) error {
	u, err := eth.ParseUnit(string(b))
	if err != nil {
		return err
	}
	g.Unit = u
	return nil
}

// Policy is a replacement comparison policy name.
type Policy increase.Policy

func (p *Policy) UnmarshalText(b []byte) error {
	v, err := increase.PolicyFromString(string(b))
	if err != nil {
		return err
	}
	*p = Policy(v)
	return nil
}

func (p Policy) Increase() increase.Policy {
	return increase.Policy(p)
}
