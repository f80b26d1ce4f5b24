package keeper

import (
	"context"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/productscience/charity/x/charity/types"
)

// BankLedger is the CurrencyLedger backed by x/bank and x/auth.
type BankLedger struct {
	bankKeeper            types.BankKeeper
	accountKeeper         types.AccountKeeper
	bookkeepingBankKeeper types.BookkeepingBankKeeper

	minimumBalance func(context.Context) sdk.Coin
}

var _ types.CurrencyLedger = BankLedger{}

func NewBankLedger(
	bankKeeper types.BankKeeper,
	accountKeeper types.AccountKeeper,
	bookkeepingBankKeeper types.BookkeepingBankKeeper,
	minimumBalance func(context.Context) sdk.Coin,
) BankLedger {
	return BankLedger{
		bankKeeper:            bankKeeper,
		accountKeeper:         accountKeeper,
		bookkeepingBankKeeper: bookkeepingBankKeeper,
		minimumBalance:        minimumBalance,
	}
}

// Transfer sends amount from one account to another. With KeepAlive the
// sender must keep at least the existential deposit of that denom. With
// AllowDeath a sender left without any balance is removed from x/auth.
func (l BankLedger) Transfer(ctx context.Context, from, to sdk.AccAddress, amount sdk.Coin, req types.ExistenceRequirement) error {
	if !amount.IsValid() {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidCoins, "invalid transfer amount: %s", amount)
	}
	if amount.IsZero() {
		return nil
	}

	balance := l.bankKeeper.GetBalance(ctx, from, amount.Denom)
	if balance.IsLT(amount) {
		return errorsmod.Wrapf(sdkerrors.ErrInsufficientFunds, "%s is smaller than %s", balance, amount)
	}

	if req == types.KeepAlive {
		minimum := l.minimumBalance(ctx)
		remaining := balance.Sub(amount)
		if minimum.Denom == amount.Denom && remaining.IsLT(minimum) {
			return types.ErrWouldKillAccount.Wrapf("%s would keep %s, below the existential deposit of %s", from, remaining, minimum)
		}
	}

	memo := fmt.Sprintf("transfer to %s (%s)", to, req)
	if err := l.bookkeepingBankKeeper.SendCoins(ctx, from, to, sdk.NewCoins(amount), memo); err != nil {
		return err
	}

	if req == types.AllowDeath {
		l.reapIfEmpty(ctx, from)
	}
	return nil
}

// FreeBalance returns the balance of who in denom, zero if who does not exist.
func (l BankLedger) FreeBalance(ctx context.Context, who sdk.AccAddress, denom string) math.Int {
	return l.bankKeeper.GetBalance(ctx, who, denom).Amount
}

// ResolveCreating moves the imbalance's coins out of its source module
// account into who. The account is created first when missing.
func (l BankLedger) ResolveCreating(ctx context.Context, who sdk.AccAddress, imbalance *types.NegativeImbalance) error {
	if imbalance.Resolved() {
		return types.ErrImbalanceConsumed.Wrap(imbalance.String())
	}
	amount := imbalance.Peek()
	if amount.IsZero() {
		return imbalance.MarkResolved()
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, write := sdkCtx.CacheContext()

	if l.accountKeeper.GetAccount(cacheCtx, who) == nil {
		account := l.accountKeeper.NewAccountWithAddress(cacheCtx, who)
		l.accountKeeper.SetAccount(cacheCtx, account)
	}

	memo := fmt.Sprintf("imbalance from %s resolved", imbalance.Source())
	if err := l.bookkeepingBankKeeper.SendCoinsFromModuleToAccount(cacheCtx, imbalance.Source(), who, sdk.NewCoins(amount), memo); err != nil {
		return errorsmod.Wrapf(err, "failed to resolve %s into %s", amount, who)
	}
	write()

	return imbalance.MarkResolved()
}

// Withdraw pulls amount out of who into the charity module account and returns
// it as an imbalance that still needs a home.
func (l BankLedger) Withdraw(ctx context.Context, who sdk.AccAddress, amount sdk.Coin, memo string) (*types.NegativeImbalance, error) {
	if !amount.IsValid() {
		return nil, errorsmod.Wrapf(sdkerrors.ErrInvalidCoins, "invalid withdrawal amount: %s", amount)
	}
	if amount.IsZero() {
		return types.ZeroImbalance(amount.Denom), nil
	}

	if err := l.bookkeepingBankKeeper.SendCoinsFromAccountToModule(ctx, who, types.ModuleName, sdk.NewCoins(amount), memo); err != nil {
		return nil, err
	}
	return types.NewNegativeImbalance(types.ModuleName, amount), nil
}

// reapIfEmpty removes a plain account that no longer holds anything.
// Module accounts are kept.
func (l BankLedger) reapIfEmpty(ctx context.Context, addr sdk.AccAddress) {
	account := l.accountKeeper.GetAccount(ctx, addr)
	if account == nil {
		return
	}
	if _, isModule := account.(sdk.ModuleAccountI); isModule {
		return
	}
	if !l.bankKeeper.GetAllBalances(ctx, addr).IsZero() {
		return
	}
	l.accountKeeper.RemoveAccount(ctx, account)
}
