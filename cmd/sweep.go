package cmd

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/compmech/matprops/internal/chart"
	"github.com/compmech/matprops/internal/composite"
)

var (
	// Sweep inputs
	sweepModel     int
	sweepKFiber    float64
	sweepKMatrix   float64
	sweepSteps     int
	sweepDirection int
	sweepHeight    int
	sweepOut       string
	sweepMaterials string
	sweepFiber     string
	sweepMatrix    string
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep effective conductivity over fibre content",
	Long: `Evaluate the effective thermal conductivity across the full fibre
content range 0..1 and draw the result as a terminal chart, optionally
exporting it to an image file.

Examples:
  # Transverse conductivity under the Vanin model
  matprops sweep --model 2 --k-fiber 100 --k-matrix 1 --direction 2

  # Export the longitudinal sweep to a PNG
  matprops sweep --model 1 --k-fiber 100 --k-matrix 1 --direction 1 --out k1.png`,
	Run: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	sweepCmd.Flags().IntVarP(&sweepModel, "model", "m", 1, "Conductivity model number")
	sweepCmd.Flags().Float64Var(&sweepKFiber, "k-fiber", 0, "Fibre thermal conductivity")
	sweepCmd.Flags().Float64Var(&sweepKMatrix, "k-matrix", 0, "Matrix thermal conductivity")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 50, "Number of sweep intervals")
	sweepCmd.Flags().IntVarP(&sweepDirection, "direction", "d", 2, "Reported axis: 1, 2 or 3")
	sweepCmd.Flags().IntVar(&sweepHeight, "height", 12, "Terminal chart height (rows)")
	sweepCmd.Flags().StringVarP(&sweepOut, "out", "o", "", "Export the chart to this image file")

	// Material library flags
	sweepCmd.Flags().StringVar(&sweepMaterials, "materials", "", "Path to an INI material library")
	sweepCmd.Flags().StringVar(&sweepFiber, "fiber", "", "Fibre preset name in the material library")
	sweepCmd.Flags().StringVar(&sweepMatrix, "matrix", "", "Matrix preset name in the material library")
}

func runSweep(cmd *cobra.Command, args []string) {
	if sweepDirection < 1 || sweepDirection > 3 {
		fmt.Printf("Error: direction must be 1, 2 or 3, got %d\n", sweepDirection)
		return
	}
	if sweepSteps < 1 {
		fmt.Printf("Error: steps must be positive, got %d\n", sweepSteps)
		return
	}

	fiber := composite.Phase{K: sweepKFiber}
	matrix := composite.Phase{K: sweepKMatrix}
	if err := resolvePhases(sweepMaterials, sweepFiber, sweepMatrix, &fiber, &matrix); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	s := chart.Series{
		Contents: make([]float64, 0, sweepSteps+1),
		Values:   make([]float64, 0, sweepSteps+1),
		Label:    fmt.Sprintf("k%d, conductivity model %d", sweepDirection, sweepModel),
	}
	for i := 0; i <= sweepSteps; i++ {
		content := float64(i) / float64(sweepSteps)
		l := composite.NewLamina(content, fiber, matrix)
		k, err := l.ThermalConductivity(sweepModel)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		log.Debugf("content=%.4f k=%v", content, k)
		s.Contents = append(s.Contents, content)
		s.Values = append(s.Values, k[sweepDirection-1])
	}

	fmt.Println()
	fmt.Println(chart.ASCII(s, sweepHeight))
	fmt.Println()

	if sweepOut != "" {
		if err := chart.ExportPNG(s, sweepOut); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Chart exported to %s\n", sweepOut)
	}
}
