package cmd

import (
	"github.com/spf13/cobra"
)

const (
	flagPrefix = "prefix"

	DefaultAccountPrefix = "gonka"
)

// NewRootCmd builds the charityd command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "charityd",
		Short:         "Tools for the charity pot module",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		PotAddressCmd(),
		DefaultGenesisCmd(),
		ValidateGenesisCmd(),
		PatchParamsCmd(),
	)
	return rootCmd
}
