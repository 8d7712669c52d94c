package chart

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ExportPNG writes the series as a line chart to an image file. The format
// follows the filename extension; .png is appended when none is recognized.
func ExportPNG(s Series, filename string) error {
	p := plot.New()
	p.Title.Text = s.Label
	p.X.Label.Text = "Fibre content"
	p.Y.Label.Text = s.Label

	pts := make(plotter.XYs, len(s.Values))
	for i := range s.Values {
		pts[i] = plotter.XY{X: s.Contents[i], Y: s.Values[i]}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("failed to build chart line: %w", err)
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}

	p.Add(plotter.NewGrid())
	p.Add(line)

	width := 6 * vg.Inch
	height := 4 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	// Determine file format from extension
	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
