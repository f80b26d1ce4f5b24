package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// DonorTotal is the cumulative amount one donor has given.
type DonorTotal struct {
	Donor  string   `json:"donor"`
	Amount math.Int `json:"amount"`
}

// GenesisState carries the module params and running totals. The pot balance
// itself lives in x/bank genesis.
type GenesisState struct {
	Params        Params       `json:"params"`
	TotalDonated  math.Int     `json:"total_donated"`
	TotalAbsorbed math.Int     `json:"total_absorbed"`
	Donations     []DonorTotal `json:"donations"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:        DefaultParams(),
		TotalDonated:  math.ZeroInt(),
		TotalAbsorbed: math.ZeroInt(),
		Donations:     []DonorTotal{},
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if gs.TotalDonated.IsNil() || gs.TotalDonated.IsNegative() {
		return fmt.Errorf("total donated cannot be negative")
	}
	if gs.TotalAbsorbed.IsNil() || gs.TotalAbsorbed.IsNegative() {
		return fmt.Errorf("total absorbed cannot be negative")
	}

	sum := math.ZeroInt()
	seenDonors := make(map[string]bool)
	for _, d := range gs.Donations {
		if _, err := sdk.AccAddressFromBech32(d.Donor); err != nil {
			return fmt.Errorf("invalid donor address %s: %w", d.Donor, err)
		}
		if seenDonors[d.Donor] {
			return fmt.Errorf("duplicate donation record for %s", d.Donor)
		}
		seenDonors[d.Donor] = true

		if d.Amount.IsNil() || !d.Amount.IsPositive() {
			return fmt.Errorf("donation total for %s must be positive", d.Donor)
		}
		sum = sum.Add(d.Amount)
	}
	if sum.GT(gs.TotalDonated) {
		return fmt.Errorf("donations sum %s exceeds total donated %s", sum, gs.TotalDonated)
	}

	return gs.Params.Validate()
}
