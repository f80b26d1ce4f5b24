package keeper_test

import (
	"context"
	"math/rand"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/productscience/charity/testutil"
	keepertest "github.com/productscience/charity/testutil/keeper"
	"github.com/productscience/charity/x/charity/types"
)

// recordingSink keeps emitted events together with the pot balance seen
// right after emission.
type recordingSink struct {
	balance     func(ctx context.Context) math.Int
	donations   []types.DonationReceived
	absorptions []types.ImbalanceAbsorbed
	seen        []math.Int
}

func (s *recordingSink) EmitDonation(ctx context.Context, event types.DonationReceived) {
	s.donations = append(s.donations, event)
	s.seen = append(s.seen, s.balance(ctx))
}

func (s *recordingSink) EmitAbsorption(ctx context.Context, event types.ImbalanceAbsorbed) {
	s.absorptions = append(s.absorptions, event)
	s.seen = append(s.seen, s.balance(ctx))
}

func eventsOfType(ctx sdk.Context, eventType string) []sdk.Event {
	var out []sdk.Event
	for _, ev := range ctx.EventManager().Events() {
		if ev.Type == eventType {
			out = append(out, ev)
		}
	}
	return out
}

func attribute(t *testing.T, ev sdk.Event, key string) string {
	t.Helper()
	for _, attr := range ev.Attributes {
		if attr.Key == key {
			return attr.Value
		}
	}
	t.Fatalf("attribute %s not found in %s", key, ev.Type)
	return ""
}

func TestAccountID_Deterministic(t *testing.T) {
	k, _, _ := keepertest.CharityKeeper(t)

	require.Equal(t, k.AccountID(), k.AccountID())
	require.Equal(t, types.DeriveAccountID(types.DefaultPotID), k.AccountID())
	require.Len(t, k.AccountID(), types.AccountIDLength)
}

func TestDonate(t *testing.T) {
	k, ctx, bank := keepertest.CharityKeeper(t)
	donor := testutil.Addr(1)
	bank.Fund(donor, testutil.Coin(100))

	require.True(t, k.PotBalance(ctx).IsZero())

	err := k.Donate(ctx, donor, math.NewInt(30))
	require.NoError(t, err)

	require.Equal(t, math.NewInt(70), bank.GetBalance(ctx, donor, testutil.Denom).Amount)
	require.Equal(t, math.NewInt(30), k.PotBalance(ctx))

	events := eventsOfType(ctx, types.EventTypeDonationReceived)
	require.Len(t, events, 1)
	require.Equal(t, donor.String(), attribute(t, events[0], types.AttributeKeyDonor))
	require.Equal(t, testutil.Coin(30).String(), attribute(t, events[0], types.AttributeKeyAmount))
	require.Equal(t, "30", attribute(t, events[0], types.AttributeKeyPotBalance))

	require.Equal(t, math.NewInt(30), k.GetTotalDonated(ctx))
	total, found := k.GetDonation(ctx, donor)
	require.True(t, found)
	require.Equal(t, math.NewInt(30), total)
}

func TestDonate_InsufficientFunds(t *testing.T) {
	k, ctx, bank := keepertest.CharityKeeper(t)
	donor := testutil.Addr(1)
	bank.Fund(donor, testutil.Coin(100))

	err := k.Donate(ctx, donor, math.NewInt(1000))
	require.ErrorIs(t, err, types.ErrTransferRejected)

	require.Equal(t, math.NewInt(100), bank.GetBalance(ctx, donor, testutil.Denom).Amount)
	require.True(t, k.PotBalance(ctx).IsZero())
	require.Empty(t, eventsOfType(ctx, types.EventTypeDonationReceived))
	require.True(t, k.GetTotalDonated(ctx).IsZero())
	_, found := k.GetDonation(ctx, donor)
	require.False(t, found)
}

func TestDonate_FrozenDonor(t *testing.T) {
	k, ctx, bank := keepertest.CharityKeeper(t)
	donor := testutil.Addr(1)
	bank.Fund(donor, testutil.Coin(100))
	bank.Freeze(donor)

	err := k.Donate(ctx, donor, math.NewInt(10))
	require.ErrorIs(t, err, types.ErrTransferRejected)
	require.Equal(t, math.NewInt(100), bank.GetBalance(ctx, donor, testutil.Denom).Amount)
	require.Empty(t, ctx.EventManager().Events())
}

func TestDonate_ReapsEmptiedDonor(t *testing.T) {
	k, ctx, bank := keepertest.CharityKeeper(t)
	donor := testutil.Addr(1)
	bank.Fund(donor, testutil.Coin(30))

	// the existential deposit does not stop a donation
	params := k.GetParams(ctx)
	params.ExistentialDeposit = math.NewInt(50)
	require.NoError(t, k.SetParams(ctx, params))

	require.NoError(t, k.Donate(ctx, donor, math.NewInt(30)))
	require.False(t, bank.HasAccount(donor))
	require.Equal(t, math.NewInt(30), k.PotBalance(ctx))
}

func TestDonate_KeepsDonorWithOtherCoins(t *testing.T) {
	k, ctx, bank := keepertest.CharityKeeper(t)
	donor := testutil.Addr(1)
	bank.Fund(donor, testutil.Coin(30), sdk.NewInt64Coin("uatom", 5))

	require.NoError(t, k.Donate(ctx, donor, math.NewInt(30)))
	require.True(t, bank.HasAccount(donor))
}

func TestDonate_InvalidAmount(t *testing.T) {
	k, ctx, bank := keepertest.CharityKeeper(t)
	donor := testutil.Addr(1)
	bank.Fund(donor, testutil.Coin(100))

	require.ErrorIs(t, k.Donate(ctx, donor, math.ZeroInt()), types.ErrInvalidDonation)
	require.ErrorIs(t, k.Donate(ctx, donor, math.NewInt(-5)), types.ErrInvalidDonation)

	params := k.GetParams(ctx)
	params.MinDonation = math.NewInt(10)
	require.NoError(t, k.SetParams(ctx, params))
	require.ErrorIs(t, k.Donate(ctx, donor, math.NewInt(9)), types.ErrInvalidDonation)

	require.Equal(t, math.NewInt(100), bank.GetBalance(ctx, donor, testutil.Denom).Amount)
	require.Empty(t, ctx.EventManager().Events())
}

func TestAbsorb(t *testing.T) {
	k, ctx, bank := keepertest.CharityKeeper(t)
	donor := testutil.Addr(1)
	bank.Fund(donor, testutil.Coin(100))
	require.NoError(t, k.Donate(ctx, donor, math.NewInt(30)))

	bank.FundModule(authtypes.FeeCollectorName, testutil.Coin(50))
	imbalance := types.NewNegativeImbalance(authtypes.FeeCollectorName, testutil.Coin(50))

	k.Absorb(ctx, imbalance)

	require.True(t, imbalance.Resolved())
	require.Equal(t, math.NewInt(80), k.PotBalance(ctx))
	require.Equal(t, math.NewInt(50), k.GetTotalAbsorbed(ctx))

	events := eventsOfType(ctx, types.EventTypeImbalanceAbsorbed)
	require.Len(t, events, 1)
	require.Equal(t, testutil.Coin(50).String(), attribute(t, events[0], types.AttributeKeyAmount))
	require.Equal(t, "80", attribute(t, events[0], types.AttributeKeyPotBalance))
	require.Equal(t, authtypes.FeeCollectorName, attribute(t, events[0], types.AttributeKeySource))
}

func TestAbsorb_CreatesPotAccount(t *testing.T) {
	k, ctx, bank := keepertest.CharityKeeper(t)
	require.False(t, bank.HasAccount(k.AccountID()))

	bank.FundModule(authtypes.FeeCollectorName, testutil.Coin(7))
	k.Absorb(ctx, types.NewNegativeImbalance(authtypes.FeeCollectorName, testutil.Coin(7)))

	require.True(t, bank.HasAccount(k.AccountID()))
	require.Equal(t, math.NewInt(7), k.PotBalance(ctx))
}

func TestAbsorb_ResolvedTwicePanics(t *testing.T) {
	k, ctx, bank := keepertest.CharityKeeper(t)
	bank.FundModule(authtypes.FeeCollectorName, testutil.Coin(100))
	imbalance := types.NewNegativeImbalance(authtypes.FeeCollectorName, testutil.Coin(50))

	k.Absorb(ctx, imbalance)
	require.Panics(t, func() { k.Absorb(ctx, imbalance) })
	require.Equal(t, math.NewInt(50), k.PotBalance(ctx))
}

func TestAbsorb_UnresolvedIsFatal(t *testing.T) {
	k, ctx, _ := keepertest.CharityKeeper(t)
	ctrl := gomock.NewController(t)
	ledger := keepertest.NewMockCurrencyLedger(ctrl)
	sink := keepertest.NewMockEventSink(ctrl)
	k = k.WithCurrencyLedger(ledger).WithEventSink(sink)

	imbalance := types.NewNegativeImbalance(authtypes.FeeCollectorName, testutil.Coin(50))
	ledger.EXPECT().
		ResolveCreating(gomock.Any(), k.AccountID(), imbalance).
		Return(sdkerrors.ErrUnknownAddress)
	sink.EXPECT().EmitAbsorption(gomock.Any(), gomock.Any()).Times(0)

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		require.ErrorIs(t, err, types.ErrImbalanceUnresolved)
		require.False(t, imbalance.Resolved())
		require.True(t, k.GetTotalAbsorbed(ctx).IsZero())
	}()
	k.Absorb(ctx, imbalance)
}

func TestOnUnbalanced_Zero(t *testing.T) {
	k, ctx, _ := keepertest.CharityKeeper(t)
	imbalance := types.ZeroImbalance(testutil.Denom)

	k.OnUnbalanced(ctx, imbalance)

	require.True(t, imbalance.Resolved())
	require.Empty(t, ctx.EventManager().Events())
	require.True(t, k.GetTotalAbsorbed(ctx).IsZero())
}

func TestEventBalanceMatchesPotBalance(t *testing.T) {
	k, ctx, bank := keepertest.CharityKeeper(t)
	sink := &recordingSink{balance: k.PotBalance}
	k = k.WithEventSink(sink)

	donor := testutil.Addr(1)
	bank.Fund(donor, testutil.Coin(100))
	bank.FundModule(authtypes.FeeCollectorName, testutil.Coin(100))

	require.NoError(t, k.Donate(ctx, donor, math.NewInt(40)))
	k.OnUnbalanced(ctx, types.NewNegativeImbalance(authtypes.FeeCollectorName, testutil.Coin(25)))
	require.NoError(t, k.Donate(ctx, donor, math.NewInt(5)))

	require.Len(t, sink.donations, 2)
	require.Len(t, sink.absorptions, 1)
	require.True(t, sink.seen[0].Equal(sink.donations[0].PotBalance))
	require.True(t, sink.seen[1].Equal(sink.absorptions[0].PotBalance))
	require.True(t, sink.seen[2].Equal(sink.donations[1].PotBalance))
	require.Equal(t, math.NewInt(70), k.PotBalance(ctx))
}

func TestConservation(t *testing.T) {
	k, ctx, bank := keepertest.CharityKeeper(t)
	r := rand.New(rand.NewSource(42))

	donors := make([]sdk.AccAddress, 5)
	for i := range donors {
		donors[i] = testutil.Addr(i)
		bank.Fund(donors[i], testutil.Coin(1_000))
	}
	bank.FundModule(authtypes.FeeCollectorName, testutil.Coin(100_000))
	supply := bank.Supply()

	expected := math.ZeroInt()
	for i := 0; i < 200; i++ {
		amount := math.NewInt(r.Int63n(300))
		if r.Intn(2) == 0 {
			before := k.PotBalance(ctx)
			donor := donors[r.Intn(len(donors))]
			if err := k.Donate(ctx, donor, amount); err == nil {
				expected = expected.Add(amount)
			} else {
				require.True(t, before.Equal(k.PotBalance(ctx)))
			}
		} else {
			before := k.PotBalance(ctx)
			k.OnUnbalanced(ctx, types.NewNegativeImbalance(authtypes.FeeCollectorName, sdk.NewCoin(testutil.Denom, amount)))
			require.True(t, before.Add(amount).Equal(k.PotBalance(ctx)))
			expected = expected.Add(amount)
		}
		require.Equal(t, supply, bank.Supply())
	}

	require.True(t, expected.Equal(k.PotBalance(ctx)), "pot %s, expected %s", k.PotBalance(ctx), expected)
	require.True(t, expected.Equal(k.GetTotalDonated(ctx).Add(k.GetTotalAbsorbed(ctx))))
}
