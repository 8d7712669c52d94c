package cmd

import (
	"fmt"

	"github.com/compmech/matprops/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of matprops",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("matprops v%s (commit %s, built %s)\n",
			version.Version, version.GitCommit, version.BuildTime)
		fmt.Println("Effective material property calculator")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
