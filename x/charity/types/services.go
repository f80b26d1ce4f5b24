package types

import "context"

// MsgServer is the charity module's transaction surface. Signers are
// authenticated by the runtime before a message gets here.
type MsgServer interface {
	Donate(context.Context, *MsgDonate) (*MsgDonateResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// QueryServer is the read-only surface of the charity module.
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Pot(context.Context, *QueryPotRequest) (*QueryPotResponse, error)
	Donation(context.Context, *QueryDonationRequest) (*QueryDonationResponse, error)
	Totals(context.Context, *QueryTotalsRequest) (*QueryTotalsResponse, error)
}
