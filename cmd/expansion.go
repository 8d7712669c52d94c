package cmd

import (
	"github.com/spf13/cobra"
)

var expansionCmd = &cobra.Command{
	Use:   "expansion",
	Short: "Effective thermal expansion coefficients",
	Long: `Calculate effective thermal-expansion coefficients [alpha1, alpha2,
alpha3] along the three principal material axes.

Subcommands cover the supported structures:
  honeycomb   honeycomb core from cell geometry (Vanin)
  composite   unidirectional fibre composite (Vanin)`,
}

func init() {
	rootCmd.AddCommand(expansionCmd)
}
