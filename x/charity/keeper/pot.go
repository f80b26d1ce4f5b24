package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/charity/x/charity/types"
)

var _ types.UnbalancedHandler = Keeper{}

// Donate moves amount of the params denom from donor into the pot. The donor
// must already be authenticated. The donor account may be reaped if the
// donation empties it.
//
// A rejected transfer leaves every balance untouched and emits nothing.
func (k Keeper) Donate(ctx context.Context, donor sdk.AccAddress, amount math.Int) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	params := k.GetParams(ctx)

	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidDonation.Wrapf("donation must be positive, got %s", amount)
	}
	if amount.LT(params.MinDonation) {
		return types.ErrInvalidDonation.Wrapf("donation %s is below the minimum of %s", amount, params.MinDonation)
	}

	coin := sdk.NewCoin(params.Denom, amount)
	cacheCtx, write := sdkCtx.CacheContext()
	if err := k.ledger.Transfer(cacheCtx, donor, k.potAccount, coin, types.AllowDeath); err != nil {
		k.Logger().Info("donation rejected",
			"donor", donor.String(),
			"amount", coin.String(),
			"error", err,
		)
		return errorsmod.Wrapf(types.ErrTransferRejected, "%s from %s: %s", coin, donor, err)
	}
	write()

	addToTotal(ctx, k.TotalDonated, amount)
	previous, _ := k.GetDonation(ctx, donor)
	k.SetDonation(ctx, donor, previous.Add(amount))

	potBalance := k.PotBalance(ctx)
	k.events.EmitDonation(ctx, types.DonationReceived{
		Donor:      donor,
		Amount:     coin,
		PotBalance: potBalance,
	})

	k.Logger().Info("donation received",
		"donor", donor.String(),
		"amount", coin.String(),
		"pot_balance", potBalance.String(),
		"height", sdkCtx.BlockHeight(),
	)
	return nil
}

// OnUnbalanced takes an imbalance nobody else claimed. Empty imbalances are
// consumed without touching the ledger.
func (k Keeper) OnUnbalanced(ctx context.Context, imbalance *types.NegativeImbalance) {
	if imbalance.IsZero() {
		_ = imbalance.MarkResolved()
		return
	}
	k.Absorb(ctx, imbalance)
}

// Absorb credits the imbalance to the pot, creating the pot account if it does
// not exist yet.
//
// Failing to credit would destroy currency, so it panics with
// ErrImbalanceUnresolved instead of returning.
func (k Keeper) Absorb(ctx context.Context, imbalance *types.NegativeImbalance) {
	amount := imbalance.Peek()

	if err := k.ledger.ResolveCreating(ctx, k.potAccount, imbalance); err != nil {
		k.Logger().Error("failed to absorb imbalance",
			"amount", amount.String(),
			"source", imbalance.Source(),
			"error", err,
		)
		panic(errorsmod.Wrapf(types.ErrImbalanceUnresolved, "%s: %s", imbalance, err))
	}

	if amount.Denom == k.GetParams(ctx).Denom {
		addToTotal(ctx, k.TotalAbsorbed, amount.Amount)
	}

	potBalance := k.ledger.FreeBalance(ctx, k.potAccount, amount.Denom)
	k.events.EmitAbsorption(ctx, types.ImbalanceAbsorbed{
		Source:     imbalance.Source(),
		Amount:     amount,
		PotBalance: potBalance,
	})

	k.Logger().Debug("imbalance absorbed",
		"amount", amount.String(),
		"source", imbalance.Source(),
		"pot_balance", potBalance.String(),
	)
}
