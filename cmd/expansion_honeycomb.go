package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/compmech/matprops/internal/honeycomb"
	"github.com/spf13/cobra"
)

var (
	// Honeycomb expansion inputs
	hcModelNum int
	hcLCell    float64
	hcHCell    float64
	hcWall     float64
	hcAngle    float64
	hcAlpha    float64
)

var expansionHoneycombCmd = &cobra.Command{
	Use:   "honeycomb",
	Short: "Thermal expansion of a honeycomb core",
	Long: `Calculate the effective thermal-expansion coefficients of a honeycomb
core from the cell geometry and the wall-material coefficient.

Models:
  1  Vanin

The wall thickness is accepted for future cell-wall models and does not
enter the Vanin formula.

Example:
  matprops expansion honeycomb --l-cell 9.24 --h-cell 8.4619 \
    --wall-thickness 0.4 --angle 0.5235988 --alpha 20e-5`,
	Run: runExpansionHoneycomb,
}

func init() {
	expansionCmd.AddCommand(expansionHoneycombCmd)

	expansionHoneycombCmd.Flags().IntVarP(&hcModelNum, "model", "m", 1, "Model number")
	expansionHoneycombCmd.Flags().Float64Var(&hcLCell, "l-cell", 0, "l cell side size [required]")
	expansionHoneycombCmd.Flags().Float64Var(&hcHCell, "h-cell", 0, "h cell side size [required]")
	expansionHoneycombCmd.Flags().Float64Var(&hcWall, "wall-thickness", 0, "Cell wall thickness")
	expansionHoneycombCmd.Flags().Float64Var(&hcAngle, "angle", 0, "Cell angle (radians) [required]")
	expansionHoneycombCmd.Flags().Float64Var(&hcAlpha, "alpha", 0, "Wall-material expansion coefficient [required]")

	expansionHoneycombCmd.MarkFlagRequired("l-cell")
	expansionHoneycombCmd.MarkFlagRequired("h-cell")
	expansionHoneycombCmd.MarkFlagRequired("angle")
	expansionHoneycombCmd.MarkFlagRequired("alpha")
}

func runExpansionHoneycomb(cmd *cobra.Command, args []string) {
	c := &honeycomb.Core{
		LCell:         hcLCell,
		HCell:         hcHCell,
		WallThickness: hcWall,
		Angle:         hcAngle,
		Alpha:         hcAlpha,
	}

	a, err := c.ThermalExpansion(hcModelNum)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     THERMAL EXPANSION - HONEYCOMB CORE")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Model:\t%d\n", hcModelNum)
	fmt.Fprintf(w, "  l cell side:\t%g\n", c.LCell)
	fmt.Fprintf(w, "  h cell side:\t%g\n", c.HCell)
	fmt.Fprintf(w, "  Wall thickness:\t%g\n", c.WallThickness)
	fmt.Fprintf(w, "  Cell angle:\t%g rad\n", c.Angle)
	fmt.Fprintf(w, "  Wall alpha:\t%g\n", c.Alpha)
	w.Flush()
	fmt.Println()

	fmt.Println("EFFECTIVE EXPANSION COEFFICIENTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  alpha1 (primary):\t%.10g\n", a[0])
	fmt.Fprintf(w, "  alpha2 (secondary):\t%.10g\n", a[1])
	fmt.Fprintf(w, "  alpha3 (tertiary):\t%.10g\n", a[2])
	w.Flush()
	fmt.Println()
}
