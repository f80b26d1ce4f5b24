package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/charity/x/charity/types"
)

// GetParams get all parameters as types.Params
func (k Keeper) GetParams(ctx context.Context) types.Params {
	denom, err := k.denom.Get(ctx)
	if err != nil {
		panic(err)
	}
	minDonation, err := k.minDonation.Get(ctx)
	if err != nil {
		panic(err)
	}
	existentialDeposit, err := k.existentialDeposit.Get(ctx)
	if err != nil {
		panic(err)
	}
	return types.NewParams(denom, minDonation, existentialDeposit)
}

// SetParams set the params
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return errorsmod.Wrapf(err, "invalid parameters")
	}
	if err := k.denom.Set(ctx, params.Denom); err != nil {
		return err
	}
	if err := k.minDonation.Set(ctx, params.MinDonation); err != nil {
		return err
	}
	return k.existentialDeposit.Set(ctx, params.ExistentialDeposit)
}

// MinimumBalance is the existential deposit as a coin of the params denom.
func (k Keeper) MinimumBalance(ctx context.Context) sdk.Coin {
	params := k.GetParams(ctx)
	return sdk.NewCoin(params.Denom, params.ExistentialDeposit)
}
