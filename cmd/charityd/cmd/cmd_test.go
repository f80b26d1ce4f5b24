package cmd_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/productscience/charity/cmd/charityd/cmd"
	"github.com/productscience/charity/x/charity/types"
)

func run(t *testing.T, args ...string) (string, error) {
	root := cmd.NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestPotAddress(t *testing.T) {
	out, err := run(t, "pot-address")
	require.NoError(t, err)

	expected, err := sdk.Bech32ifyAddressBytes(cmd.DefaultAccountPrefix, types.DeriveAccountID(types.DefaultPotID))
	require.NoError(t, err)
	require.Equal(t, expected, out)

	explicit, err := run(t, "pot-address", "Charity!")
	require.NoError(t, err)
	require.Equal(t, expected, explicit)

	other, err := run(t, "pot-address", "Relief!!", "--prefix", "cosmos")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(other, "cosmos1"))
}

func TestPotAddress_BadIdentifier(t *testing.T) {
	_, err := run(t, "pot-address", "short")
	require.ErrorIs(t, err, types.ErrInvalidPotID)
}

func TestGenesisCommands(t *testing.T) {
	out, err := run(t, "default-genesis")
	require.NoError(t, err)

	dir := t.TempDir()
	genesisFile := filepath.Join(dir, "charity.json")
	require.NoError(t, os.WriteFile(genesisFile, []byte(out), 0644))

	_, err = run(t, "validate-genesis", genesisFile)
	require.NoError(t, err)

	paramsFile := filepath.Join(dir, "params.toml")
	require.NoError(t, os.WriteFile(paramsFile, []byte(`
[charity]
min_donation = "500"
existential_deposit = "10"
`), 0644))

	_, err = run(t, "patch-params", genesisFile, paramsFile)
	require.NoError(t, err)

	bz, err := os.ReadFile(genesisFile)
	require.NoError(t, err)
	var patched types.GenesisState
	require.NoError(t, json.Unmarshal(bz, &patched))
	require.Equal(t, types.DefaultDenom, patched.Params.Denom)
	require.True(t, math.NewInt(500).Equal(patched.Params.MinDonation))
	require.True(t, math.NewInt(10).Equal(patched.Params.ExistentialDeposit))
}

func TestValidateGenesis_Invalid(t *testing.T) {
	genesisFile := filepath.Join(t.TempDir(), "charity.json")
	require.NoError(t, os.WriteFile(genesisFile, []byte(`{"params":{"denom":"ngonka","min_donation":"0","existential_deposit":"0"},"total_donated":"0","total_absorbed":"0"}`), 0644))

	_, err := run(t, "validate-genesis", genesisFile)
	require.Error(t, err)
}

func TestParamsOverride_Apply(t *testing.T) {
	override, err := cmd.ParseParamsToml([]byte("[charity]\ndenom = \"uatom\"\n"))
	require.NoError(t, err)

	params, err := override.Apply(types.DefaultParams())
	require.NoError(t, err)
	require.Equal(t, "uatom", params.Denom)
	require.True(t, types.DefaultMinDonation.Equal(params.MinDonation))

	_, err = cmd.ParamsOverride{MinDonation: "abc"}.Apply(types.DefaultParams())
	require.Error(t, err)

	_, err = cmd.ParamsOverride{MinDonation: "0"}.Apply(types.DefaultParams())
	require.Error(t, err)
}
