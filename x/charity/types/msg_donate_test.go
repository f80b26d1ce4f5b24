package types

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/productscience/charity/testutil/sample"
	"github.com/stretchr/testify/require"
)

func TestMsgDonate_ValidateBasic(t *testing.T) {
	tests := []struct {
		name string
		msg  MsgDonate
		err  error
	}{
		{
			name: "invalid address",
			msg:  *NewMsgDonate("invalid_address", sdk.NewInt64Coin("ngonka", 10)),
			err:  sdkerrors.ErrInvalidAddress,
		}, {
			name: "zero amount",
			msg:  *NewMsgDonate(sample.AccAddress(), sdk.NewInt64Coin("ngonka", 0)),
			err:  sdkerrors.ErrInvalidCoins,
		}, {
			name: "invalid coin",
			msg:  MsgDonate{Donor: sample.AccAddress(), Amount: sdk.Coin{Denom: "ngonka", Amount: math.NewInt(-5)}},
			err:  sdkerrors.ErrInvalidCoins,
		}, {
			name: "valid",
			msg:  *NewMsgDonate(sample.AccAddress(), sdk.NewInt64Coin("ngonka", 10)),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.ValidateBasic()
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestMsgUpdateParams_ValidateBasic(t *testing.T) {
	msg := MsgUpdateParams{Authority: sample.AccAddress(), Params: DefaultParams()}
	require.NoError(t, msg.ValidateBasic())

	msg.Authority = "bad"
	require.Error(t, msg.ValidateBasic())

	msg = MsgUpdateParams{Authority: sample.AccAddress(), Params: NewParams("ngonka", math.ZeroInt(), math.ZeroInt())}
	require.Error(t, msg.ValidateBasic())
}
