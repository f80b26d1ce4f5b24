package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/productscience/charity/testutil/sample"
	"github.com/productscience/charity/x/charity/types"
	"github.com/stretchr/testify/require"
)

func TestGenesisState_Validate(t *testing.T) {
	donor := sample.AccAddress()

	tests := []struct {
		desc     string
		genState *types.GenesisState
		valid    bool
	}{
		{
			desc:     "default is valid",
			genState: types.DefaultGenesis(),
			valid:    true,
		},
		{
			desc: "valid genesis state",
			genState: &types.GenesisState{
				Params:        types.DefaultParams(),
				TotalDonated:  math.NewInt(100),
				TotalAbsorbed: math.NewInt(40),
				Donations: []types.DonorTotal{
					{Donor: donor, Amount: math.NewInt(60)},
					{Donor: sample.AccAddress(), Amount: math.NewInt(40)},
				},
			},
			valid: true,
		},
		{
			desc: "negative total",
			genState: &types.GenesisState{
				Params:        types.DefaultParams(),
				TotalDonated:  math.NewInt(-1),
				TotalAbsorbed: math.ZeroInt(),
			},
		},
		{
			desc: "duplicate donor",
			genState: &types.GenesisState{
				Params:        types.DefaultParams(),
				TotalDonated:  math.NewInt(100),
				TotalAbsorbed: math.ZeroInt(),
				Donations: []types.DonorTotal{
					{Donor: donor, Amount: math.NewInt(10)},
					{Donor: donor, Amount: math.NewInt(10)},
				},
			},
		},
		{
			desc: "donations exceed total",
			genState: &types.GenesisState{
				Params:        types.DefaultParams(),
				TotalDonated:  math.NewInt(5),
				TotalAbsorbed: math.ZeroInt(),
				Donations: []types.DonorTotal{
					{Donor: donor, Amount: math.NewInt(10)},
				},
			},
		},
		{
			desc: "bad donor address",
			genState: &types.GenesisState{
				Params:        types.DefaultParams(),
				TotalDonated:  math.NewInt(10),
				TotalAbsorbed: math.ZeroInt(),
				Donations: []types.DonorTotal{
					{Donor: "not-an-address", Amount: math.NewInt(10)},
				},
			},
		},
		{
			desc: "invalid params",
			genState: &types.GenesisState{
				Params:        types.NewParams("ngonka", math.ZeroInt(), math.ZeroInt()),
				TotalDonated:  math.ZeroInt(),
				TotalAbsorbed: math.ZeroInt(),
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			err := tc.genState.Validate()
			if tc.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}
