package estimator

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/errs"

	"storj.io/gas-bump/pkg/gasprice"
)

type fakeEthClient struct {
	baseFee  *big.Int
	tip      *big.Int
	gasPrice *big.Int
	err      error
}

func (f *fakeEthClient) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &types.Header{BaseFee: f.baseFee}, nil
}

func (f *fakeEthClient) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	return f.tip, nil
}

func (f *fakeEthClient) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	return f.gasPrice, nil
}

func gwei(v int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(v), big.NewInt(1_000_000_000))
}

func TestNodeEstimateEIP1559(t *testing.T) {
	node := NewNode(&fakeEthClient{
		baseFee: gwei(50),
		tip:     gwei(2),
	})

	estimate, err := node.EstimateGasPrice(context.Background())
	require.NoError(t, err)
	require.Equal(t, gasprice.EstimatedGasPrice{
		EIP1559: &gasprice.GasPrice1559{
			MaxFeePerGas:         102.0,
			MaxPriorityFeePerGas: 2.0,
			BaseFeePerGas:        50.0,
		},
	}, estimate)
}

func TestNodeEstimateLegacy(t *testing.T) {
	node := NewNode(&fakeEthClient{
		gasPrice: gwei(30),
	})

	estimate, err := node.EstimateGasPrice(context.Background())
	require.NoError(t, err)
	require.Equal(t, gasprice.EstimatedGasPrice{Legacy: 30.0}, estimate)
}

func TestNodeEstimateError(t *testing.T) {
	node := NewNode(&fakeEthClient{
		err: errs.New("node is down"),
	})

	_, err := node.EstimateGasPrice(context.Background())
	require.Error(t, err)
}

func TestFixedEstimate(t *testing.T) {
	want := gasprice.EstimatedGasPrice{Legacy: 12.5}
	estimate, err := Fixed(want).EstimateGasPrice(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, estimate)
}
