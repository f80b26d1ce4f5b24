package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/charity/x/charity/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
// for the provided Keeper.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// Donate handles the MsgDonate message
func (k msgServer) Donate(goCtx context.Context, msg *types.MsgDonate) (*types.MsgDonateResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, errorsmod.Wrapf(err, "invalid message")
	}

	donor, err := sdk.AccAddressFromBech32(msg.Donor)
	if err != nil {
		return nil, errorsmod.Wrapf(err, "invalid donor address: %s", msg.Donor)
	}

	params := k.GetParams(goCtx)
	if msg.Amount.Denom != params.Denom {
		return nil, types.ErrInvalidDonation.Wrapf("expected denom %s, got %s", params.Denom, msg.Amount.Denom)
	}

	if err := k.Keeper.Donate(goCtx, donor, msg.Amount.Amount); err != nil {
		return nil, err
	}

	return &types.MsgDonateResponse{
		PotBalance: sdk.NewCoin(params.Denom, k.PotBalance(goCtx)),
	}, nil
}

// UpdateParams replaces the module params when sent by the authority
func (k msgServer) UpdateParams(goCtx context.Context, req *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if k.GetAuthority() != req.Authority {
		return nil, errorsmod.Wrapf(types.ErrInvalidSigner, "invalid authority; expected %s, got %s", k.GetAuthority(), req.Authority)
	}

	if err := k.SetParams(goCtx, req.Params); err != nil {
		return nil, err
	}

	return &types.MsgUpdateParamsResponse{}, nil
}
