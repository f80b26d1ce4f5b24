package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

// PotIDLength is the exact width of a pot identifier.
const PotIDLength = 8

// AccountIDLength is the width of a native account address. Derived pot
// addresses are truncated to it.
const AccountIDLength = 20

// PotIdentifier names the pot. The pot address is a pure function of it, so
// changing the identifier moves the pot and must be handled as a migration.
type PotIdentifier [PotIDLength]byte

// DefaultPotID is the identifier the chain ships with.
var DefaultPotID = PotIdentifier{'C', 'h', 'a', 'r', 'i', 't', 'y', '!'}

// ParsePotIdentifier accepts exactly PotIDLength bytes.
func ParsePotIdentifier(s string) (PotIdentifier, error) {
	var id PotIdentifier
	if len(s) != PotIDLength {
		return id, ErrInvalidPotID.Wrapf("pot identifier must be exactly %d bytes, got %d", PotIDLength, len(s))
	}
	copy(id[:], s)
	return id, nil
}

func (id PotIdentifier) String() string {
	return string(id[:])
}

// DeriveAccountID computes the pot address from its identifier.
//
// The identifier is used as the derivation key of an ADR-028 module address
// owned by this module: SHA-256 over ("module", ModuleName, 0, id). The 32 byte
// result is then cut to AccountIDLength. A 160 bit prefix of a SHA-256 digest
// keeps collisions with other derived or module accounts out of reach.
func DeriveAccountID(id PotIdentifier) sdk.AccAddress {
	full := address.Module(ModuleName, id[:])
	if len(full) < AccountIDLength {
		panic(fmt.Sprintf("derived address too short: %d bytes", len(full)))
	}
	return sdk.AccAddress(full[:AccountIDLength])
}
