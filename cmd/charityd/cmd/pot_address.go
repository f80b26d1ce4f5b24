package cmd

import (
	"fmt"

	"cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"

	"github.com/productscience/charity/x/charity/types"
)

// PotAddressCmd prints the account a pot identifier derives to.
func PotAddressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pot-address [identifier]",
		Short: "Print the account address derived from an 8 byte pot identifier",
		Long:  "Print the account address derived from an 8 byte pot identifier. Without an argument the default identifier is used.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := types.DefaultPotID
			if len(args) == 1 {
				parsed, err := types.ParsePotIdentifier(args[0])
				if err != nil {
					return err
				}
				id = parsed
			}

			prefix, _ := cmd.Flags().GetString(flagPrefix)
			addr, err := sdk.Bech32ifyAddressBytes(prefix, types.DeriveAccountID(id))
			if err != nil {
				return errors.Wrapf(err, "failed to encode pot address with prefix %q", prefix)
			}

			fmt.Fprintln(cmd.OutOrStdout(), addr)
			return nil
		},
	}

	cmd.Flags().String(flagPrefix, DefaultAccountPrefix, "Bech32 account prefix")
	return cmd
}
