package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "matprops",
	Short: "Homogenized thermal properties of composite and honeycomb materials",
	Long: `matprops - effective material property calculator

Computes homogenized (orthotropic) thermal properties of composite and
honeycomb materials from constituent-material parameters, using published
closed-form micromechanical models:

  - Thermal conductivity of a unidirectional composite
    (rule of mixtures, Vanin tetragonal packing)
  - Thermal expansion of a honeycomb core (Vanin)
  - Thermal expansion of a unidirectional composite (Vanin)

Every result is reported along the three principal material axes, in the
order primary (fibre direction), secondary, tertiary. Models are selected
by number; each property kind has its own numbering starting at 1.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
