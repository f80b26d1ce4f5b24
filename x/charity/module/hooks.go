package charity

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/productscience/charity/x/charity/types"
)

// FeeBurnHandler redirects fees the runtime would otherwise burn from the
// fee collector into the pot.
type FeeBurnHandler struct {
	handler types.UnbalancedHandler
}

func NewFeeBurnHandler(handler types.UnbalancedHandler) FeeBurnHandler {
	return FeeBurnHandler{handler: handler}
}

// BurnFees hands each coin held by the fee collector to the pot as an imbalance.
func (h FeeBurnHandler) BurnFees(ctx context.Context, fees sdk.Coins) {
	for _, coin := range fees {
		h.handler.OnUnbalanced(ctx, types.NewNegativeImbalance(authtypes.FeeCollectorName, coin))
	}
}

// SlashHandler turns penalties into pot income instead of burning them.
type SlashHandler struct {
	ledger  types.CurrencyLedger
	handler types.UnbalancedHandler
}

func NewSlashHandler(ledger types.CurrencyLedger, handler types.UnbalancedHandler) SlashHandler {
	return SlashHandler{
		ledger:  ledger,
		handler: handler,
	}
}

// Slash takes penalty from offender and routes it to the pot.
func (h SlashHandler) Slash(ctx context.Context, offender sdk.AccAddress, penalty sdk.Coin) error {
	imbalance, err := h.ledger.Withdraw(ctx, offender, penalty, "slashed to charity")
	if err != nil {
		return errorsmod.Wrapf(err, "failed to slash %s from %s", penalty, offender)
	}
	h.handler.OnUnbalanced(ctx, imbalance)
	return nil
}
