package types

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
)

func TestNegativeImbalance_ResolvesOnce(t *testing.T) {
	imbalance := NewNegativeImbalance("fee_collector", sdk.NewInt64Coin("ngonka", 50))
	require.False(t, imbalance.IsZero())
	require.False(t, imbalance.Resolved())
	require.Equal(t, "fee_collector", imbalance.Source())
	require.Equal(t, sdk.NewInt64Coin("ngonka", 50), imbalance.Peek())

	require.NoError(t, imbalance.MarkResolved())
	require.True(t, imbalance.Resolved())
	require.ErrorIs(t, imbalance.MarkResolved(), ErrImbalanceConsumed)
}

func TestZeroImbalance(t *testing.T) {
	imbalance := ZeroImbalance("ngonka")
	require.True(t, imbalance.IsZero())
	require.Equal(t, "ngonka", imbalance.Peek().Denom)
}

func TestNewNegativeImbalance_InvalidAmount(t *testing.T) {
	require.Panics(t, func() {
		NewNegativeImbalance("fee_collector", sdk.Coin{Denom: "ngonka"})
	})
}
