package cmd

import (
	"fmt"
	"os"

	"cosmossdk.io/math"
	"github.com/pelletier/go-toml"
	"github.com/spf13/cobra"

	"github.com/productscience/charity/x/charity/types"
)

// ParamsOverride is the [charity] table of a params TOML file. Empty fields
// leave the genesis value untouched.
type ParamsOverride struct {
	Denom              string `toml:"denom"`
	MinDonation        string `toml:"min_donation"`
	ExistentialDeposit string `toml:"existential_deposit"`
}

type paramsFile struct {
	Charity ParamsOverride `toml:"charity"`
}

func PatchParamsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patch-params [genesis-file] [params-toml]",
		Short: "Override charity params in a genesis JSON file with values from a TOML file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			genesisFile := args[0]
			paramsTomlFile := args[1]

			genesis, err := readGenesis(genesisFile)
			if err != nil {
				return err
			}

			content, err := os.ReadFile(paramsTomlFile)
			if err != nil {
				return fmt.Errorf("error reading params file %s: %w", paramsTomlFile, err)
			}
			override, err := ParseParamsToml(content)
			if err != nil {
				return err
			}

			params, err := override.Apply(genesis.Params)
			if err != nil {
				return err
			}
			genesis.Params = params
			if err := genesis.Validate(); err != nil {
				return fmt.Errorf("patched genesis is invalid: %w", err)
			}

			if err := writeGenesis(genesisFile, genesis); err != nil {
				return fmt.Errorf("error writing patched genesis to %s: %w", genesisFile, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Patched charity params in %s\n", genesisFile)
			return nil
		},
	}
	return cmd
}

// ParseParamsToml reads the [charity] table.
func ParseParamsToml(content []byte) (ParamsOverride, error) {
	var file paramsFile
	if err := toml.Unmarshal(content, &file); err != nil {
		return ParamsOverride{}, fmt.Errorf("error parsing params TOML: %w", err)
	}
	return file.Charity, nil
}

// Apply returns base with every non-empty override field replaced.
func (o ParamsOverride) Apply(base types.Params) (types.Params, error) {
	params := base
	if o.Denom != "" {
		params.Denom = o.Denom
	}
	if o.MinDonation != "" {
		v, ok := math.NewIntFromString(o.MinDonation)
		if !ok {
			return base, fmt.Errorf("invalid min_donation %q", o.MinDonation)
		}
		params.MinDonation = v
	}
	if o.ExistentialDeposit != "" {
		v, ok := math.NewIntFromString(o.ExistentialDeposit)
		if !ok {
			return base, fmt.Errorf("invalid existential_deposit %q", o.ExistentialDeposit)
		}
		params.ExistentialDeposit = v
	}
	return params, params.Validate()
}
