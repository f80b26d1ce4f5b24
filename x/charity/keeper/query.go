package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/productscience/charity/x/charity/types"
)

// Querier serves the read-only charity queries.
type Querier struct {
	Keeper
}

var _ types.QueryServer = Querier{}

func NewQuerier(keeper Keeper) Querier {
	return Querier{Keeper: keeper}
}

func (q Querier) Params(ctx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	return &types.QueryParamsResponse{Params: q.GetParams(ctx)}, nil
}

// Pot returns the derived pot address with its live balance.
func (q Querier) Pot(ctx context.Context, req *types.QueryPotRequest) (*types.QueryPotResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	denom := q.GetParams(ctx).Denom
	return &types.QueryPotResponse{
		Identifier: q.PotIdentifier().String(),
		Address:    q.AccountID().String(),
		Balance:    sdk.NewCoin(denom, q.PotBalance(ctx)),
	}, nil
}

func (q Querier) Donation(ctx context.Context, req *types.QueryDonationRequest) (*types.QueryDonationResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	donor, err := sdk.AccAddressFromBech32(req.Donor)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid donor address: %s", err)
	}
	amount, _ := q.GetDonation(ctx, donor)
	return &types.QueryDonationResponse{
		Donor:  req.Donor,
		Amount: amount,
	}, nil
}

func (q Querier) Totals(ctx context.Context, req *types.QueryTotalsRequest) (*types.QueryTotalsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	return &types.QueryTotalsResponse{
		TotalDonated:  q.GetTotalDonated(ctx),
		TotalAbsorbed: q.GetTotalAbsorbed(ctx),
	}, nil
}
