// Package chart renders fibre-content sweeps of a homogenized property as
// terminal or image charts.
package chart

import "github.com/guptarohit/asciigraph"

// Series is one swept property: Values[i] is the property evaluated at
// fibre content Contents[i].
type Series struct {
	Contents []float64
	Values   []float64
	Label    string
}

// ASCII renders the series as a terminal chart of the given height.
func ASCII(s Series, height int) string {
	return asciigraph.Plot(s.Values,
		asciigraph.Height(height),
		asciigraph.Caption(s.Label),
	)
}
