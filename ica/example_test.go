package ica_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fastica/ica"
	"gonum.org/v1/gonum/stat"
)

// ExampleAnalysis_Compute unmixes a sine wave and a square wave from two
// linear mixtures and checks that each source shows up in one component.
func ExampleAnalysis_Compute() {
	const n = 2000
	rows := make([][]float64, n)
	sine := make([]float64, n)
	square := make([]float64, n)
	for i := range rows {
		t := 8 * float64(i) / n
		sine[i] = math.Sin(2 * t)
		square[i] = math.Copysign(1, math.Sin(3*t))
		rows[i] = []float64{sine[i] + square[i], 0.5*sine[i] + 2*square[i]}
	}

	a, err := ica.NewFromRows(rows, ica.WithAlgorithm(ica.Deflation), ica.WithSeed(7))
	if err != nil {
		fmt.Println(err)
		return
	}
	if err = a.Compute(); err != nil {
		fmt.Println(err)
		return
	}

	comps, _ := a.Components()
	best := func(src []float64) float64 {
		m := 0.0
		for _, c := range comps {
			sig, _ := c.Signal()
			m = math.Max(m, math.Abs(stat.Correlation(src, sig, nil)))
		}
		return m
	}
	fmt.Println("components:", len(comps))
	fmt.Println("sine recovered:", best(sine) > 0.99)
	fmt.Println("square recovered:", best(square) > 0.99)
	// Output:
	// components: 2
	// sine recovered: true
	// square recovered: true
}

// ExampleContrastByName resolves a contrast from its configuration name.
func ExampleContrastByName() {
	c, err := ica.ContrastByName("exp", 1)
	if err != nil {
		fmt.Println(err)
		return
	}
	g, dg := make([]float64, 1), make([]float64, 1)
	c.Evaluate([]float64{0}, g, dg)
	fmt.Printf("%T g(0)=%g g'(0)=%g\n", c, g[0], dg[0])
	// Output:
	// ica.Exponential g(0)=0 g'(0)=1
}
