// Package eth provides parsing and formatting of Ethereum price units.
package eth

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/zeebo/errs"
)

var (
	suffixRE = regexp.MustCompile(`([a-zA-Z]+)$`)
)

type Denom int32

const (
	WEI  Denom = 0
	GWEI Denom = 9
	ETH  Denom = 18
)

func (d Denom) String() string {
	switch d {
	case WEI:
		return "wei"
	case GWEI:
		return "gwei"
	case ETH:
		return "eth"
	}
	return ""
}

// Unit is an amount of WEI remembering the denomination it was expressed
// in.
type Unit struct {
	wei   decimal.Decimal
	denom Denom
}

// ParseUnit returns a WEI amount from string. Units accepted are:
// - ETH
// - GWEI
// - WEI
//
// If no unit is specified, WEI is assumed.
func ParseUnit(s string) (Unit, error) {
	if s == "" {
		return Unit{}, errs.New("invalid unit: empty")
	}

	var rawSuffix string
	if m := suffixRE.FindStringSubmatch(s); m != nil {
		rawSuffix = m[1]
	}

	s = s[:len(s)-len(rawSuffix)]

	var denom Denom
	switch strings.ToUpper(rawSuffix) {
	case "ETH":
		denom = ETH
	case "GWEI":
		denom = GWEI
	case "WEI", "":
		denom = WEI
	default:
		return Unit{}, errs.New("unsupported suffix %q", rawSuffix)
	}

	raw, err := decimal.NewFromString(s)
	if err != nil {
		return Unit{}, errs.New("%s is not a valid %s unit: %v", s, strings.ToUpper(denom.String()), err)
	}
	raw = raw.Shift(int32(denom))

	wei := raw.Truncate(0)
	if !wei.Equal(raw) {
		return Unit{}, errs.New("%s is not a valid %s unit: must be a whole number of WEI but got %s", s, strings.ToUpper(denom.String()), raw)
	}
	return Unit{wei: wei, denom: denom}, nil
}

func RequireParseUnit(s string) Unit {
	u, err := ParseUnit(s)
	if err != nil {
		panic(err)
	}
	return u
}

func UnitFromDecimal(value decimal.Decimal, denom Denom) Unit {
	if denom.String() == "" {
		panic("denom is not one of WEI, GWEI, ETH")
	}
	return Unit{wei: value.Shift(int32(denom)), denom: denom}
}

func (u Unit) Decimal(denom Denom) decimal.Decimal {
	return u.wei.Shift(-int32(denom))
}

// GweiFloat returns the amount as a float64 number of GWEI, the unit the
// gas price model works in.
func (u Unit) GweiFloat() float64 {
	return u.Decimal(GWEI).InexactFloat64()
}

func (u Unit) WEIInt() *big.Int {
	return u.wei.BigInt()
}

func (u Unit) IsZero() bool {
	return u.wei.IsZero()
}

func (u Unit) String() string {
	return fmt.Sprintf("%s%s", u.wei.Shift(-int32(u.denom)), u.denom)
}
