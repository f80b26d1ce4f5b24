package types

const (
	// ModuleName defines the module name
	ModuleName = "bookkeeper"

	// SupplyAccount is the pseudo account used as counterparty for mints and burns
	SupplyAccount = "supply"
)
