package types

import (
	"cosmossdk.io/collections"
)

const (
	// ModuleName defines the module name
	ModuleName = "charity"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_charity"
)

var (
	ParamsDenomKey              = collections.NewPrefix(0)
	ParamsMinDonationKey        = collections.NewPrefix(1)
	ParamsExistentialDepositKey = collections.NewPrefix(2)

	// TotalDonatedKey and TotalAbsorbedKey hold running totals, never the pot balance itself
	TotalDonatedKey  = collections.NewPrefix(3)
	TotalAbsorbedKey = collections.NewPrefix(4)

	// DonationsKey is the prefix for cumulative per-donor totals
	DonationsKey = collections.NewPrefix(5)
)
