package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params
}

type QueryPotRequest struct{}

// QueryPotResponse reports the derived pot address and its live balance.
type QueryPotResponse struct {
	Identifier string
	Address    string
	Balance    sdk.Coin
}

type QueryDonationRequest struct {
	Donor string
}

type QueryDonationResponse struct {
	Donor  string
	Amount math.Int
}

type QueryTotalsRequest struct{}

type QueryTotalsResponse struct {
	TotalDonated  math.Int
	TotalAbsorbed math.Int
}
