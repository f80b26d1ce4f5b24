package keeper

import (
	"context"
	"fmt"
	"sync"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

// InMemoryBank is a map-backed stand-in for x/bank and x/auth. It serves the
// raw bank interface the bookkeeper wraps as well as the read and account
// interfaces the charity ledger needs.
type InMemoryBank struct {
	balances      map[string]sdk.Coins
	accounts      map[string]sdk.AccountI
	frozen        map[string]bool
	accountNumber uint64
	mu            sync.RWMutex
}

func NewInMemoryBank() *InMemoryBank {
	return &InMemoryBank{
		balances: make(map[string]sdk.Coins),
		accounts: make(map[string]sdk.AccountI),
		frozen:   make(map[string]bool),
	}
}

// Fund credits coins to addr out of thin air, creating the account.
func (b *InMemoryBank) Fund(addr sdk.AccAddress, coins ...sdk.Coin) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ensureAccount(addr)
	b.balances[addr.String()] = b.balances[addr.String()].Add(coins...)
}

// FundModule credits coins to a module account, creating it as a module account.
func (b *InMemoryBank) FundModule(moduleName string, coins ...sdk.Coin) {
	b.mu.Lock()
	defer b.mu.Unlock()
	addr := authtypes.NewModuleAddress(moduleName)
	if _, ok := b.accounts[addr.String()]; !ok {
		b.accounts[addr.String()] = authtypes.NewEmptyModuleAccount(moduleName)
	}
	b.balances[addr.String()] = b.balances[addr.String()].Add(coins...)
}

// Freeze makes every outgoing transfer from addr fail.
func (b *InMemoryBank) Freeze(addr sdk.AccAddress) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.frozen[addr.String()] = true
}

func (b *InMemoryBank) HasAccount(addr sdk.AccAddress) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.accounts[addr.String()]
	return ok
}

// Supply is the sum of every balance held.
func (b *InMemoryBank) Supply() sdk.Coins {
	b.mu.RLock()
	defer b.mu.RUnlock()
	supply := sdk.NewCoins()
	for _, coins := range b.balances {
		supply = supply.Add(coins...)
	}
	return supply
}

func (b *InMemoryBank) GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return sdk.NewCoin(denom, b.balances[addr.String()].AmountOf(denom))
}

func (b *InMemoryBank) GetAllBalances(ctx context.Context, addr sdk.AccAddress) sdk.Coins {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if coins, exists := b.balances[addr.String()]; exists {
		return coins
	}
	return sdk.NewCoins()
}

func (b *InMemoryBank) SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.send(fromAddr, toAddr, amt)
}

func (b *InMemoryBank) SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	moduleAddr := authtypes.NewModuleAddress(senderModule)
	if _, ok := b.accounts[moduleAddr.String()]; !ok {
		return errorsmod.Wrapf(sdkerrors.ErrUnknownAddress, "module account %s does not exist", senderModule)
	}
	return b.send(moduleAddr, recipientAddr, amt)
}

func (b *InMemoryBank) SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	moduleAddr := authtypes.NewModuleAddress(recipientModule)
	if _, ok := b.accounts[moduleAddr.String()]; !ok {
		b.accounts[moduleAddr.String()] = authtypes.NewEmptyModuleAccount(recipientModule)
	}
	return b.send(senderAddr, moduleAddr, amt)
}

func (b *InMemoryBank) GetAccount(ctx context.Context, addr sdk.AccAddress) sdk.AccountI {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if acc, exists := b.accounts[addr.String()]; exists {
		return acc
	}
	return nil
}

func (b *InMemoryBank) SetAccount(ctx context.Context, acc sdk.AccountI) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if acc != nil {
		b.accounts[acc.GetAddress().String()] = acc
	}
}

func (b *InMemoryBank) NewAccountWithAddress(ctx context.Context, addr sdk.AccAddress) sdk.AccountI {
	b.mu.Lock()
	defer b.mu.Unlock()
	acc := authtypes.NewBaseAccountWithAddress(addr)
	b.accountNumber++
	if err := acc.SetAccountNumber(b.accountNumber); err != nil {
		panic(err)
	}
	return acc
}

func (b *InMemoryBank) RemoveAccount(ctx context.Context, acc sdk.AccountI) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.accounts, acc.GetAddress().String())
}

func (b *InMemoryBank) send(fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	fromKey := fromAddr.String()
	toKey := toAddr.String()

	if b.frozen[fromKey] {
		return fmt.Errorf("account %s is frozen", fromKey)
	}

	fromBalance := b.balances[fromKey]
	if !fromBalance.IsAllGTE(amt) {
		return errorsmod.Wrapf(sdkerrors.ErrInsufficientFunds, "%s is smaller than %s", fromBalance, amt)
	}

	newFromBalance := fromBalance.Sub(amt...)
	if newFromBalance.IsZero() {
		delete(b.balances, fromKey)
	} else {
		b.balances[fromKey] = newFromBalance
	}

	// x/bank creates the recipient account on first credit
	b.ensureAccount(toAddr)
	b.balances[toKey] = b.balances[toKey].Add(amt...)
	return nil
}

func (b *InMemoryBank) ensureAccount(addr sdk.AccAddress) {
	if _, ok := b.accounts[addr.String()]; ok {
		return
	}
	acc := authtypes.NewBaseAccountWithAddress(addr)
	b.accountNumber++
	if err := acc.SetAccountNumber(b.accountNumber); err != nil {
		panic(err)
	}
	b.accounts[addr.String()] = acc
}
