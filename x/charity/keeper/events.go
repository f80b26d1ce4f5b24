package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/charity/x/charity/types"
)

// ContextEventSink emits pot events on the event manager of the current block context.
type ContextEventSink struct{}

var _ types.EventSink = ContextEventSink{}

func (ContextEventSink) EmitDonation(ctx context.Context, event types.DonationReceived) {
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(event.ToSDKEvent())
}

func (ContextEventSink) EmitAbsorption(ctx context.Context, event types.ImbalanceAbsorbed) {
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(event.ToSDKEvent())
}
