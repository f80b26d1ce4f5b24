package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"cosmossdk.io/errors"
	"github.com/spf13/cobra"

	"github.com/productscience/charity/x/charity/types"
)

// DefaultGenesisCmd prints the default charity genesis section.
func DefaultGenesisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "default-genesis",
		Short: "Print the default charity genesis state as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bz, err := json.MarshalIndent(types.DefaultGenesis(), "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(bz))
			return nil
		},
	}
	return cmd
}

// ValidateGenesisCmd checks a charity genesis file.
func ValidateGenesisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate-genesis [file]",
		Short: "Validate a charity genesis state JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			genesis, err := readGenesis(args[0])
			if err != nil {
				return err
			}
			if err := genesis.Validate(); err != nil {
				return errors.Wrapf(err, "invalid genesis in %s", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", args[0])
			return nil
		},
	}
	return cmd
}

func readGenesis(path string) (*types.GenesisState, error) {
	bz, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading genesis file %s: %w", path, err)
	}
	var genesis types.GenesisState
	if err := json.Unmarshal(bz, &genesis); err != nil {
		return nil, fmt.Errorf("error decoding genesis file %s: %w", path, err)
	}
	return &genesis, nil
}

func writeGenesis(path string, genesis *types.GenesisState) error {
	bz, err := json.MarshalIndent(genesis, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, bz, 0644)
}
