package keeper

import (
	"context"
	"fmt"
	"strings"

	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/charity/x/bookkeeper/types"
)

// Keeper forwards coin movements to x/bank and writes an audit line for each
// coin moved. It satisfies the BookkeepingBankKeeper the charity ledger expects.
type Keeper struct {
	logger     log.Logger
	bankKeeper types.BankKeeper
	logConfig  LogConfig
}

type LogConfig struct {
	DoubleEntry bool   `json:"double_entry"`
	SimpleEntry bool   `json:"simple_entry"`
	LogLevel    string `json:"log_level"`
}

func NewKeeper(
	logger log.Logger,
	bankKeeper types.BankKeeper,
	logConfig LogConfig,
) Keeper {
	return Keeper{
		logger:     logger,
		bankKeeper: bankKeeper,
		logConfig:  logConfig,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger() log.Logger {
	return k.logger.With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

func (k Keeper) SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins, memo string) error {
	err := k.bankKeeper.SendCoins(ctx, fromAddr, toAddr, amt)
	if err != nil {
		return err
	}
	for _, coin := range amt {
		k.logTransaction(ctx, toAddr.String(), fromAddr.String(), coin, memo)
	}
	return nil
}

func (k Keeper) SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins, memo string) error {
	err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, senderModule, recipientAddr, amt)
	if err != nil {
		return err
	}
	for _, coin := range amt {
		k.logTransaction(ctx, recipientAddr.String(), senderModule, coin, memo)
	}
	return nil
}

func (k Keeper) SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins, memo string) error {
	err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, senderAddr, recipientModule, amt)
	if err != nil {
		return err
	}
	for _, coin := range amt {
		k.logTransaction(ctx, recipientModule, senderAddr.String(), coin, memo)
	}
	return nil
}

func (k Keeper) logTransaction(ctx context.Context, to string, from string, coin sdk.Coin, memo string) {
	if coin.Amount.IsZero() {
		return
	}
	height := sdk.UnwrapSDKContext(ctx).BlockHeight()
	logFunc := k.getLogFunction(k.logConfig.LogLevel)
	amount := coin.Amount.String()
	if k.logConfig.DoubleEntry {
		logFunc("TransactionAudit", "type", "debit", "account", to, "counteraccount", from, "amount", amount, "denom", coin.Denom, "memo", memo, "signedAmount", amount, "height", height)
		logFunc("TransactionAudit", "type", "credit", "account", from, "counteraccount", to, "amount", amount, "denom", coin.Denom, "memo", memo, "signedAmount", "-"+amount, "height", height)
	}
	if k.logConfig.SimpleEntry {
		logFunc(fmt.Sprintf("TransactionEntry to=%s from=%s amount=%20s %-10s height=%8d memo=%s", fixedSize(to, 64), fixedSize(from, 64), amount, coin.Denom, height, memo))
	}
}

func (k Keeper) getLogFunction(level string) func(msg string, keyvals ...interface{}) {
	switch strings.ToLower(level) {
	case "debug":
		return k.Logger().Debug
	case "error":
		return k.Logger().Error
	case "warn":
		return k.Logger().Warn
	default:
		return k.Logger().Info
	}
}

// no easy way to truncate AND pad a string in Sprintf
func fixedSize(to string, size int) string {
	if len(to) > size {
		return to[:size]
	}
	return to + strings.Repeat(" ", size-len(to))
}
