package estimator

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/shopspring/decimal"
	"github.com/zeebo/errs"

	"storj.io/gas-bump/pkg/gasprice"
)

// EthClient is the subset of ethclient.Client the node estimator uses.
type EthClient interface {
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
}

// Node estimates gas prices by asking an Ethereum node.
type Node struct {
	client EthClient
}

func NewNode(client EthClient) *Node {
	return &Node{client: client}
}

// EstimateGasPrice returns an EIP-1559 estimate when the chain has a base
// fee and falls back to a legacy estimate otherwise.
func (n *Node) EstimateGasPrice(ctx context.Context) (gasprice.EstimatedGasPrice, error) {
	header, err := n.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return gasprice.EstimatedGasPrice{}, errs.Wrap(err)
	}

	if header.BaseFee == nil {
		suggested, err := n.client.SuggestGasPrice(ctx)
		if err != nil {
			return gasprice.EstimatedGasPrice{}, errs.Wrap(err)
		}
		return gasprice.EstimatedGasPrice{Legacy: weiToGwei(suggested)}, nil
	}

	tip, err := n.client.SuggestGasTipCap(ctx)
	if err != nil {
		return gasprice.EstimatedGasPrice{}, errs.Wrap(err)
	}

	// Only (baseFee + tip) * gas is paid, but the base fee can move before
	// inclusion, so budget for it doubling: 2 * baseFee + tip.
	maxFee := new(big.Int).Add(new(big.Int).Mul(header.BaseFee, big.NewInt(2)), tip)

	return gasprice.EstimatedGasPrice{
		EIP1559: &gasprice.GasPrice1559{
			MaxFeePerGas:         weiToGwei(maxFee),
			MaxPriorityFeePerGas: weiToGwei(tip),
			BaseFeePerGas:        weiToGwei(header.BaseFee),
		},
	}, nil
}

func weiToGwei(wei *big.Int) float64 {
	return decimal.NewFromBigInt(wei, -9).InexactFloat64()
}
