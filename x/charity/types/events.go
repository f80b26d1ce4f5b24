package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Event types for charity module
const (
	EventTypeDonationReceived  = "donation_received"
	EventTypeImbalanceAbsorbed = "imbalance_absorbed"
)

// Event attributes
const (
	AttributeKeyDonor      = "donor"
	AttributeKeyAmount     = "amount"
	AttributeKeyPotBalance = "pot_balance"
	AttributeKeySource     = "source"
)

// DonationReceived is emitted after a donor's transfer reached the pot.
type DonationReceived struct {
	Donor      sdk.AccAddress
	Amount     sdk.Coin
	PotBalance math.Int
}

func (e DonationReceived) ToSDKEvent() sdk.Event {
	return sdk.NewEvent(
		EventTypeDonationReceived,
		sdk.NewAttribute(AttributeKeyDonor, e.Donor.String()),
		sdk.NewAttribute(AttributeKeyAmount, e.Amount.String()),
		sdk.NewAttribute(AttributeKeyPotBalance, e.PotBalance.String()),
	)
}

// ImbalanceAbsorbed is emitted after an imbalance was credited to the pot.
type ImbalanceAbsorbed struct {
	Source     string
	Amount     sdk.Coin
	PotBalance math.Int
}

func (e ImbalanceAbsorbed) ToSDKEvent() sdk.Event {
	return sdk.NewEvent(
		EventTypeImbalanceAbsorbed,
		sdk.NewAttribute(AttributeKeySource, e.Source),
		sdk.NewAttribute(AttributeKeyAmount, e.Amount.String()),
		sdk.NewAttribute(AttributeKeyPotBalance, e.PotBalance.String()),
	)
}
