package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// AccountKeeper defines the expected interface for the Account module.
type AccountKeeper interface {
	GetAccount(context.Context, sdk.AccAddress) sdk.AccountI
	SetAccount(context.Context, sdk.AccountI)
	NewAccountWithAddress(context.Context, sdk.AccAddress) sdk.AccountI
	RemoveAccount(context.Context, sdk.AccountI)
}

// BankKeeper defines the expected interface for the Bank module (for read-only operations).
type BankKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	GetAllBalances(ctx context.Context, addr sdk.AccAddress) sdk.Coins
}

// BookkeepingBankKeeper defines the expected interface for logged bank operations.
type BookkeepingBankKeeper interface {
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins, memo string) error
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins, memo string) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins, memo string) error
}

// ExistenceRequirement tells a transfer what to do when the sender would be
// left below the existential deposit.
type ExistenceRequirement int

const (
	// KeepAlive rejects transfers that would leave the sender below the existential deposit.
	KeepAlive ExistenceRequirement = iota
	// AllowDeath lets the sender drop below the deposit; a sender emptied
	// completely is removed from the account store.
	AllowDeath
)

func (r ExistenceRequirement) String() string {
	switch r {
	case KeepAlive:
		return "keep_alive"
	case AllowDeath:
		return "allow_death"
	default:
		return "unknown"
	}
}

// CurrencyLedger is the balance accounting the pot relies on. Every call is
// atomic with respect to other ledger callers.
type CurrencyLedger interface {
	Transfer(ctx context.Context, from, to sdk.AccAddress, amount sdk.Coin, req ExistenceRequirement) error
	// FreeBalance returns zero for accounts that do not exist.
	FreeBalance(ctx context.Context, who sdk.AccAddress, denom string) math.Int
	// ResolveCreating credits the imbalance to who, creating the account if
	// needed. On error the imbalance is left unresolved.
	ResolveCreating(ctx context.Context, who sdk.AccAddress, imbalance *NegativeImbalance) error
	// Withdraw debits who and hands the coins back as an unresolved imbalance.
	Withdraw(ctx context.Context, who sdk.AccAddress, amount sdk.Coin, memo string) (*NegativeImbalance, error)
}

// EventSink receives pot events. Emission is fire and forget.
type EventSink interface {
	EmitDonation(ctx context.Context, event DonationReceived)
	EmitAbsorption(ctx context.Context, event ImbalanceAbsorbed)
}

// UnbalancedHandler takes ownership of imbalances nobody else wants.
type UnbalancedHandler interface {
	OnUnbalanced(ctx context.Context, imbalance *NegativeImbalance)
}
