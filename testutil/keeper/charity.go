package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	bookkeeper "github.com/productscience/charity/x/bookkeeper/keeper"
	"github.com/productscience/charity/x/charity/keeper"
	"github.com/productscience/charity/x/charity/types"
)

// CharityMocks holds all the mock keepers for testing
type CharityMocks struct {
	BankKeeper            *MockBankKeeper
	AccountKeeper         *MockAccountKeeper
	BookkeepingBankKeeper *MockBookkeepingBankKeeper
}

// CharityKeeper returns a keeper running on an in-memory bank routed through
// the bookkeeper, the way the app wires it.
func CharityKeeper(t testing.TB) (keeper.Keeper, sdk.Context, *InMemoryBank) {
	bank := NewInMemoryBank()
	bookkeeping := bookkeeper.NewKeeper(log.NewNopLogger(), bank, bookkeeper.LogConfig{
		DoubleEntry: true,
		LogLevel:    "debug",
	})
	k, ctx := CharityKeeperWithKeepers(t, bank, bank, bookkeeping)
	return k, ctx, bank
}

// CharityKeeperReturningMocks backs every expected keeper with a gomock mock.
func CharityKeeperReturningMocks(t testing.TB) (keeper.Keeper, sdk.Context, CharityMocks) {
	ctrl := gomock.NewController(t)
	mocks := CharityMocks{
		BankKeeper:            NewMockBankKeeper(ctrl),
		AccountKeeper:         NewMockAccountKeeper(ctrl),
		BookkeepingBankKeeper: NewMockBookkeepingBankKeeper(ctrl),
	}
	k, ctx := CharityKeeperWithKeepers(t, mocks.BankKeeper, mocks.AccountKeeper, mocks.BookkeepingBankKeeper)
	return k, ctx, mocks
}

func CharityKeeperWithKeepers(
	t testing.TB,
	bankKeeper types.BankKeeper,
	accountKeeper types.AccountKeeper,
	bookkeepingBankKeeper types.BookkeepingBankKeeper,
) (keeper.Keeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	authority := authtypes.NewModuleAddress(govtypes.ModuleName)

	k := keeper.NewKeeper(
		runtime.NewKVStoreService(storeKey),
		log.NewNopLogger(),
		authority.String(),
		types.DefaultPotID,
		bankKeeper,
		accountKeeper,
		bookkeepingBankKeeper,
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	// Initialize params
	if err := k.SetParams(ctx, types.DefaultParams()); err != nil {
		panic(err)
	}

	return k, ctx
}
