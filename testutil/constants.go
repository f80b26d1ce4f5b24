package testutil

import (
	"crypto/sha256"
	"fmt"

	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	Denom = "ngonka"
)

// Addr returns a deterministic account address for the given seed.
func Addr(seed int) sdk.AccAddress {
	h := sha256.Sum256([]byte(fmt.Sprintf("addr-seed-%d", seed)))
	priv := secp256k1.PrivKey{Key: h[:]}
	return sdk.AccAddress(priv.PubKey().Address())
}

// Bech32Addr returns a valid bech32-encoded account address with the configured HRP.
func Bech32Addr(seed int) string {
	hrp := sdk.GetConfig().GetBech32AccountAddrPrefix()
	bech, err := sdk.Bech32ifyAddressBytes(hrp, Addr(seed))
	if err != nil {
		panic(err)
	}
	return bech
}

// Coin is shorthand for an amount of Denom.
func Coin(amount int64) sdk.Coin {
	return sdk.NewInt64Coin(Denom, amount)
}
