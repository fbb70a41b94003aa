package eth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storj.io/gas-bump/pkg/eth"
)

func TestParseUnit(t *testing.T) {
	for _, tc := range []struct {
		in  string
		out string
		err string
	}{
		{
			in:  "1.24ETH",
			out: "1.24eth",
		},
		{
			in:  "1.24eth",
			out: "1.24eth",
		},
		{
			in:  "1.24GWEI",
			out: "1.24gwei",
		},
		{
			in:  "1.24gwei",
			out: "1.24gwei",
		},
		{
			in:  "124WEI",
			out: "124wei",
		},
		{
			in:  "1.24e18",
			out: "1240000000000000000wei",
		},
		{
			in:  "",
			err: "invalid unit: empty",
		},
		{
			in:  "foo",
			err: `unsupported suffix "foo"`,
		},
		{
			in:  "1f1eth",
			err: "1f1 is not a valid ETH unit: can't convert 1f1 to decimal",
		},
		{
			in:  "1.24",
			err: "1.24 is not a valid WEI unit: must be a whole number of WEI but got 1.24",
		},
	} {
		t.Run(tc.in, func(t *testing.T) {
			out, err := eth.ParseUnit(tc.in)
			if tc.err != "" {
				assert.EqualError(t, err, tc.err)
				assert.Zero(t, out)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.out, out.String())
		})
	}
}

func TestUnitConversions(t *testing.T) {
	gwei := eth.RequireParseUnit("70gwei")
	assert.Equal(t, "70000000000", gwei.WEIInt().String())
	assert.Equal(t, "70", gwei.Decimal(eth.GWEI).String())
	assert.Equal(t, 70.0, gwei.GweiFloat())
	assert.False(t, gwei.IsZero())

	wei := eth.RequireParseUnit("1500000000wei")
	assert.Equal(t, 1.5, wei.GweiFloat())

	one := eth.RequireParseUnit("1eth")
	assert.Equal(t, "1000000000000000000", one.WEIInt().String())
	assert.Equal(t, 1_000_000_000.0, one.GweiFloat())
}
