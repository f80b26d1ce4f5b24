package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Default parameter values
var (
	DefaultDenom              = "ngonka"
	DefaultMinDonation        = math.OneInt()
	DefaultExistentialDeposit = math.ZeroInt()
)

// Params holds the charity module configuration.
type Params struct {
	// Denom is the currency the pot balance is reported in.
	Denom string `json:"denom"`
	// MinDonation is the smallest accepted donation.
	MinDonation math.Int `json:"min_donation"`
	// ExistentialDeposit is the balance below which KeepAlive transfers are refused.
	ExistentialDeposit math.Int `json:"existential_deposit"`
}

// NewParams creates a new Params instance
func NewParams(denom string, minDonation, existentialDeposit math.Int) Params {
	return Params{
		Denom:              denom,
		MinDonation:        minDonation,
		ExistentialDeposit: existentialDeposit,
	}
}

// DefaultParams returns a default set of parameters
func DefaultParams() Params {
	return NewParams(
		DefaultDenom,
		DefaultMinDonation,
		DefaultExistentialDeposit,
	)
}

// Validate validates the set of params
func (p Params) Validate() error {
	if err := sdk.ValidateDenom(p.Denom); err != nil {
		return fmt.Errorf("invalid denom: %w", err)
	}
	if p.MinDonation.IsNil() || !p.MinDonation.IsPositive() {
		return fmt.Errorf("min donation must be positive, got %s", p.MinDonation)
	}
	if p.ExistentialDeposit.IsNil() || p.ExistentialDeposit.IsNegative() {
		return fmt.Errorf("existential deposit cannot be negative, got %s", p.ExistentialDeposit)
	}
	return nil
}
