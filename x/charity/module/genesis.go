package charity

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/charity/x/charity/keeper"
	"github.com/productscience/charity/x/charity/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, genState types.GenesisState) {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}

	k.SetTotals(ctx, genState.TotalDonated, genState.TotalAbsorbed)
	for _, elem := range genState.Donations {
		donor, err := sdk.AccAddressFromBech32(elem.Donor)
		if err != nil {
			panic(err)
		}
		k.SetDonation(ctx, donor, elem.Amount)
	}

	k.Logger().Info("charity pot initialized",
		"identifier", k.PotIdentifier().String(),
		"address", k.AccountID().String(),
	)
}

// ExportGenesis returns the module's exported genesis.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) *types.GenesisState {
	genesis := types.DefaultGenesis()
	genesis.Params = k.GetParams(ctx)
	genesis.TotalDonated = k.GetTotalDonated(ctx)
	genesis.TotalAbsorbed = k.GetTotalAbsorbed(ctx)

	if donations := k.GetAllDonations(ctx); donations != nil {
		genesis.Donations = donations
	}

	return genesis
}
