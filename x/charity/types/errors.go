package types

// DONTCOVER

import (
	sdkerrors "cosmossdk.io/errors"
)

// x/charity module sentinel errors
var (
	ErrInvalidSigner       = sdkerrors.Register(ModuleName, 1100, "expected gov account as only signer for proposal message")
	ErrTransferRejected    = sdkerrors.Register(ModuleName, 1101, "donation transfer rejected")
	ErrImbalanceUnresolved = sdkerrors.Register(ModuleName, 1102, "imbalance could not be credited to the pot")
	ErrImbalanceConsumed   = sdkerrors.Register(ModuleName, 1103, "imbalance already resolved")
	ErrInvalidDonation     = sdkerrors.Register(ModuleName, 1104, "invalid donation")
	ErrWouldKillAccount    = sdkerrors.Register(ModuleName, 1105, "transfer would reap the sender account")
	ErrInvalidPotID        = sdkerrors.Register(ModuleName, 1106, "invalid pot identifier")
)
