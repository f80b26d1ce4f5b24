package keeper

import (
	"context"
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/charity/x/charity/types"
)

type (
	Keeper struct {
		storeService store.KVStoreService
		logger       log.Logger

		// the address capable of executing a MsgUpdateParams message. Typically, this
		// should be the x/gov module account.
		authority string

		potID      types.PotIdentifier
		potAccount sdk.AccAddress

		ledger types.CurrencyLedger
		events types.EventSink

		// Collections schema and stores
		Schema             collections.Schema
		denom              collections.Item[string]
		minDonation        collections.Item[math.Int]
		existentialDeposit collections.Item[math.Int]
		TotalDonated       collections.Item[math.Int]
		TotalAbsorbed      collections.Item[math.Int]
		Donations          collections.Map[sdk.AccAddress, math.Int]
	}
)

// NewKeeper wires the keeper against x/bank and x/auth. Transfers go through
// the bookkeeping bank keeper so they show up in the audit log.
func NewKeeper(
	storeService store.KVStoreService,
	logger log.Logger,
	authority string,
	potID types.PotIdentifier,

	bankKeeper types.BankKeeper,
	accountKeeper types.AccountKeeper,
	bookkeepingBankKeeper types.BookkeepingBankKeeper,
) Keeper {
	if _, err := sdk.AccAddressFromBech32(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address: %s", authority))
	}

	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		storeService: storeService,
		authority:    authority,
		logger:       logger,

		potID:      potID,
		potAccount: types.DeriveAccountID(potID),
		events:     ContextEventSink{},
	}

	// Wire collections stores
	k.denom = collections.NewItem(sb, types.ParamsDenomKey, "denom", collections.StringValue)
	k.minDonation = collections.NewItem(sb, types.ParamsMinDonationKey, "min_donation", sdk.IntValue)
	k.existentialDeposit = collections.NewItem(sb, types.ParamsExistentialDepositKey, "existential_deposit", sdk.IntValue)
	k.TotalDonated = collections.NewItem(sb, types.TotalDonatedKey, "total_donated", sdk.IntValue)
	k.TotalAbsorbed = collections.NewItem(sb, types.TotalAbsorbedKey, "total_absorbed", sdk.IntValue)
	k.Donations = collections.NewMap(sb, types.DonationsKey, "donations", sdk.AccAddressKey, sdk.IntValue)

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	k.ledger = NewBankLedger(bankKeeper, accountKeeper, bookkeepingBankKeeper, k.MinimumBalance)

	return k
}

// WithCurrencyLedger returns a copy of the keeper backed by another ledger.
func (k Keeper) WithCurrencyLedger(ledger types.CurrencyLedger) Keeper {
	k.ledger = ledger
	return k
}

// CurrencyLedger is the ledger the pot is kept in.
func (k Keeper) CurrencyLedger() types.CurrencyLedger {
	return k.ledger
}

// WithEventSink returns a copy of the keeper emitting into sink.
func (k Keeper) WithEventSink(sink types.EventSink) Keeper {
	k.events = sink
	return k
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// Logger returns a module-specific logger.
func (k Keeper) Logger() log.Logger {
	return k.logger.With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// PotIdentifier is the identifier the pot address is derived from.
func (k Keeper) PotIdentifier() types.PotIdentifier {
	return k.potID
}

// AccountID is the address holding the pot's funds.
func (k Keeper) AccountID() sdk.AccAddress {
	return k.potAccount
}

// PotBalance is the pot's current balance in the params denom, read fresh
// from the ledger.
func (k Keeper) PotBalance(ctx context.Context) math.Int {
	return k.ledger.FreeBalance(ctx, k.potAccount, k.GetParams(ctx).Denom)
}

// GetDonation returns the cumulative amount donated by donor.
func (k Keeper) GetDonation(ctx context.Context, donor sdk.AccAddress) (math.Int, bool) {
	amount, err := k.Donations.Get(ctx, donor)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return math.ZeroInt(), false
		}
		panic(err)
	}
	return amount, true
}

func (k Keeper) SetDonation(ctx context.Context, donor sdk.AccAddress, amount math.Int) {
	if err := k.Donations.Set(ctx, donor, amount); err != nil {
		panic(err)
	}
}

// GetAllDonations returns every donor total, ordered by address.
func (k Keeper) GetAllDonations(ctx context.Context) []types.DonorTotal {
	var donations []types.DonorTotal
	err := k.Donations.Walk(ctx, nil, func(donor sdk.AccAddress, amount math.Int) (bool, error) {
		donations = append(donations, types.DonorTotal{
			Donor:  donor.String(),
			Amount: amount,
		})
		return false, nil
	})
	if err != nil {
		panic(err)
	}
	return donations
}

func (k Keeper) GetTotalDonated(ctx context.Context) math.Int {
	return getTotal(ctx, k.TotalDonated)
}

func (k Keeper) GetTotalAbsorbed(ctx context.Context) math.Int {
	return getTotal(ctx, k.TotalAbsorbed)
}

func (k Keeper) SetTotals(ctx context.Context, donated, absorbed math.Int) {
	if err := k.TotalDonated.Set(ctx, donated); err != nil {
		panic(err)
	}
	if err := k.TotalAbsorbed.Set(ctx, absorbed); err != nil {
		panic(err)
	}
}

func getTotal(ctx context.Context, item collections.Item[math.Int]) math.Int {
	total, err := item.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return math.ZeroInt()
		}
		panic(err)
	}
	return total
}

func addToTotal(ctx context.Context, item collections.Item[math.Int], amount math.Int) {
	if err := item.Set(ctx, getTotal(ctx, item).Add(amount)); err != nil {
		panic(err)
	}
}
