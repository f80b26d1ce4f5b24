package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// MsgDonate moves Amount from the signing Donor into the pot.
type MsgDonate struct {
	Donor  string
	Amount sdk.Coin
}

type MsgDonateResponse struct {
	PotBalance sdk.Coin
}

func NewMsgDonate(donor string, amount sdk.Coin) *MsgDonate {
	return &MsgDonate{
		Donor:  donor,
		Amount: amount,
	}
}

// ValidateBasic performs basic validation of the MsgDonate
func (msg *MsgDonate) ValidateBasic() error {
	_, err := sdk.AccAddressFromBech32(msg.Donor)
	if err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid donor address: %s", err)
	}

	if !msg.Amount.IsValid() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidCoins, "invalid donation amount")
	}

	if !msg.Amount.IsPositive() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidCoins, "donation amount must be positive")
	}

	return nil
}

// MsgUpdateParams replaces the module params. Only the authority may send it.
type MsgUpdateParams struct {
	Authority string
	Params    Params
}

type MsgUpdateParamsResponse struct{}

func (msg *MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return errorsmod.Wrap(err, "invalid authority address")
	}
	return msg.Params.Validate()
}
