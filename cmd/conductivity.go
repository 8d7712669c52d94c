package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/compmech/matprops/internal/composite"
	"github.com/spf13/cobra"
)

var (
	// Conductivity inputs
	condModel        int
	condFibreContent float64
	condKFiber       float64
	condKMatrix      float64
	condMaterials    string
	condFiberName    string
	condMatrixName   string
)

var conductivityCmd = &cobra.Command{
	Use:   "conductivity",
	Short: "Effective thermal conductivity of a unidirectional composite",
	Long: `Calculate the effective thermal conductivities [k1, k2, k3] of a
unidirectional fibre composite from the constituent conductivities.

Models:
  1  Rule of mixtures (arithmetic mean along the fibre, harmonic across)
  2  Vanin, tetragonal fibre packing

Examples:
  # Vanin model for a 20% carbon/epoxy lamina
  matprops conductivity --model 2 --fibre-content 0.2 --k-fiber 100 --k-matrix 1

  # Constituents from a material library
  matprops conductivity --model 1 --fibre-content 0.55 \
    --materials materials.ini --fiber carbon-t300 --matrix epoxy`,
	Run: runConductivity,
}

func init() {
	rootCmd.AddCommand(conductivityCmd)

	conductivityCmd.Flags().IntVarP(&condModel, "model", "m", 1, "Model number")
	conductivityCmd.Flags().Float64VarP(&condFibreContent, "fibre-content", "c", 0, "Fibre volume fraction, 0..1 [required]")
	conductivityCmd.Flags().Float64Var(&condKFiber, "k-fiber", 0, "Fibre thermal conductivity")
	conductivityCmd.Flags().Float64Var(&condKMatrix, "k-matrix", 0, "Matrix thermal conductivity")

	// Material library flags
	conductivityCmd.Flags().StringVar(&condMaterials, "materials", "", "Path to an INI material library")
	conductivityCmd.Flags().StringVar(&condFiberName, "fiber", "", "Fibre preset name in the material library")
	conductivityCmd.Flags().StringVar(&condMatrixName, "matrix", "", "Matrix preset name in the material library")

	conductivityCmd.MarkFlagRequired("fibre-content")
}

func runConductivity(cmd *cobra.Command, args []string) {
	fiber := composite.Phase{K: condKFiber}
	matrix := composite.Phase{K: condKMatrix}
	if err := resolvePhases(condMaterials, condFiberName, condMatrixName, &fiber, &matrix); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	l := composite.NewLamina(condFibreContent, fiber, matrix)
	k, err := l.ThermalConductivity(condModel)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     THERMAL CONDUCTIVITY - UNIDIRECTIONAL COMPOSITE")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Model:\t%d\n", condModel)
	fmt.Fprintf(w, "  Fibre content:\t%g\n", l.FibreContent)
	fmt.Fprintf(w, "  k fibre:\t%g\n", l.Fiber.K)
	fmt.Fprintf(w, "  k matrix:\t%g\n", l.Matrix.K)
	w.Flush()
	fmt.Println()

	fmt.Println("EFFECTIVE CONDUCTIVITIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  k1 (fibre direction):\t%.10g\n", k[0])
	fmt.Fprintf(w, "  k2 (transverse):\t%.10g\n", k[1])
	fmt.Fprintf(w, "  k3 (transverse):\t%.10g\n", k[2])
	w.Flush()
	fmt.Println()
}
