package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/compmech/matprops/internal/composite"
	"github.com/compmech/matprops/internal/elastic"
	"github.com/spf13/cobra"
)

var (
	// Composite expansion inputs
	expModel        int
	expFibreContent float64
	expEFiber       float64
	expNuFiber      float64
	expAlphaFiber   float64
	expEMatrix      float64
	expNuMatrix     float64
	expAlphaMatrix  float64
	expModules      []float64
	expMaterials    string
	expFiberName    string
	expMatrixName   string
)

var expansionCompositeCmd = &cobra.Command{
	Use:   "composite",
	Short: "Thermal expansion of a unidirectional composite",
	Long: `Calculate the effective thermal-expansion coefficients of a
unidirectional fibre composite from the constituent elastic and thermal
properties.

Models:
  1  Vanin

The computation consumes the five effective elastic modules of the lamina
(e1, e2, e3, nu21*, nu31*), obtained from an external elastic-constants
calculation or measurement and passed with --modules.

Example:
  matprops expansion composite --fibre-content 0.2 \
    --e-fiber 100 --nu-fiber 0.3 --alpha-fiber 1e-6 \
    --e-matrix 5 --nu-matrix 0.2 --alpha-matrix 20e-5 \
    --modules 24.011723329425557,6.5683701067350135,6.5683701067350135,0.06240625050144681,0.06240625050144681`,
	Run: runExpansionComposite,
}

func init() {
	expansionCmd.AddCommand(expansionCompositeCmd)

	expansionCompositeCmd.Flags().IntVarP(&expModel, "model", "m", 1, "Model number")
	expansionCompositeCmd.Flags().Float64VarP(&expFibreContent, "fibre-content", "c", 0, "Fibre volume fraction, 0..1 [required]")

	// Constituent properties
	expansionCompositeCmd.Flags().Float64Var(&expEFiber, "e-fiber", 0, "Fibre Young's modulus")
	expansionCompositeCmd.Flags().Float64Var(&expNuFiber, "nu-fiber", 0, "Fibre Poisson's ratio")
	expansionCompositeCmd.Flags().Float64Var(&expAlphaFiber, "alpha-fiber", 0, "Fibre expansion coefficient")
	expansionCompositeCmd.Flags().Float64Var(&expEMatrix, "e-matrix", 0, "Matrix Young's modulus")
	expansionCompositeCmd.Flags().Float64Var(&expNuMatrix, "nu-matrix", 0, "Matrix Poisson's ratio")
	expansionCompositeCmd.Flags().Float64Var(&expAlphaMatrix, "alpha-matrix", 0, "Matrix expansion coefficient")

	// External elastic modules
	expansionCompositeCmd.Flags().Float64SliceVar(&expModules, "modules", nil, "Five elastic modules e1,e2,e3,nu21*,nu31* [required]")

	// Material library flags
	expansionCompositeCmd.Flags().StringVar(&expMaterials, "materials", "", "Path to an INI material library")
	expansionCompositeCmd.Flags().StringVar(&expFiberName, "fiber", "", "Fibre preset name in the material library")
	expansionCompositeCmd.Flags().StringVar(&expMatrixName, "matrix", "", "Matrix preset name in the material library")

	expansionCompositeCmd.MarkFlagRequired("fibre-content")
	expansionCompositeCmd.MarkFlagRequired("modules")
}

func runExpansionComposite(cmd *cobra.Command, args []string) {
	if len(expModules) != 5 {
		fmt.Printf("Error: --modules needs exactly 5 values (e1,e2,e3,nu21*,nu31*), got %d\n", len(expModules))
		return
	}

	fiber := composite.Phase{E: expEFiber, Nu: expNuFiber, Alpha: expAlphaFiber}
	matrix := composite.Phase{E: expEMatrix, Nu: expNuMatrix, Alpha: expAlphaMatrix}
	if err := resolvePhases(expMaterials, expFiberName, expMatrixName, &fiber, &matrix); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	provider := elastic.Fixed(elastic.Modules{
		expModules[0], expModules[1], expModules[2], expModules[3], expModules[4],
	})

	l := composite.NewLamina(expFibreContent, fiber, matrix)
	a, err := l.ThermalExpansion(expModel, provider)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     THERMAL EXPANSION - UNIDIRECTIONAL COMPOSITE")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Model:\t%d\n", expModel)
	fmt.Fprintf(w, "  Fibre content:\t%g\n", l.FibreContent)
	fmt.Fprintf(w, "  Fibre E / nu / alpha:\t%g / %g / %g\n", l.Fiber.E, l.Fiber.Nu, l.Fiber.Alpha)
	fmt.Fprintf(w, "  Matrix E / nu / alpha:\t%g / %g / %g\n", l.Matrix.E, l.Matrix.Nu, l.Matrix.Alpha)
	fmt.Fprintf(w, "  Elastic modules:\t%g\n", expModules)
	w.Flush()
	fmt.Println()

	fmt.Println("EFFECTIVE EXPANSION COEFFICIENTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  alpha1 (fibre direction):\t%.10g\n", a[0])
	fmt.Fprintf(w, "  alpha2 (transverse):\t%.10g\n", a[1])
	fmt.Fprintf(w, "  alpha3 (transverse):\t%.10g\n", a[2])
	w.Flush()
	fmt.Println()
}
