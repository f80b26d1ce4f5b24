package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// NegativeImbalance is currency that has left some account but has not been
// credited anywhere yet. The coins sit in the Source module account until a
// CurrencyLedger resolves the imbalance into a recipient. It must be resolved
// exactly once; dropping it unresolved leaves the coins stranded outside any
// user-visible balance.
type NegativeImbalance struct {
	source   string
	amount   sdk.Coin
	resolved bool
}

// NewNegativeImbalance wraps coins currently held by the source module account.
func NewNegativeImbalance(source string, amount sdk.Coin) *NegativeImbalance {
	if !amount.IsValid() {
		panic(fmt.Sprintf("invalid imbalance amount: %s", amount))
	}
	return &NegativeImbalance{
		source: source,
		amount: amount,
	}
}

// ZeroImbalance is an imbalance with nothing in it. Resolving it is a no-op.
func ZeroImbalance(denom string) *NegativeImbalance {
	return &NegativeImbalance{amount: sdk.NewCoin(denom, math.ZeroInt())}
}

// Peek returns the amount without consuming the imbalance.
func (i *NegativeImbalance) Peek() sdk.Coin {
	return i.amount
}

// Source is the module account holding the coins.
func (i *NegativeImbalance) Source() string {
	return i.source
}

func (i *NegativeImbalance) IsZero() bool {
	return i.amount.IsZero()
}

func (i *NegativeImbalance) Resolved() bool {
	return i.resolved
}

// MarkResolved consumes the imbalance. Only a CurrencyLedger that has
// credited the coins should call it.
func (i *NegativeImbalance) MarkResolved() error {
	if i.resolved {
		return ErrImbalanceConsumed.Wrapf("%s from %s", i.amount, i.source)
	}
	i.resolved = true
	return nil
}

func (i *NegativeImbalance) String() string {
	return fmt.Sprintf("%s from %s (resolved=%t)", i.amount, i.source, i.resolved)
}
