// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

func Test_platehole01(tst *testing.T) {

	chk.PrintTitle("platehole01")

	var sol PlateHole
	sol.Init(fun.Prms{
		&fun.Prm{N: "r", V: 1.0},
		&fun.Prm{N: "E", V: 1e3},
		&fun.Prm{N: "nu", V: 0.3},
		&fun.Prm{N: "qnV", V: 0.0},
		&fun.Prm{N: "qnH", V: 10.0},
	})

	// far from the hole, the stress concentration decays and σx → qnH
	sx, _, _, _ := sol.Stress(1, []float64{100, 0})
	chk.Scalar(tst, "far-field σx", 0.1, sx, 10.0)

	// at the top of the hole (on the y-axis), σx reaches the Kirsch concentration 3·qnH
	sx, _, _, _ = sol.Stress(1, []float64{0, 1})
	chk.Scalar(tst, "edge σx (Kirsch factor 3)", 0.1, sx, 30.0)
}

// Test_platehole_tractionfree checks that the hole boundary (r=1) is
// traction-free in the Kirsch solution: the radial stress, obtained by
// rotating the Cartesian stress at several angles around the hole into
// polar coordinates, must vanish.
func Test_platehole_tractionfree(tst *testing.T) {

	chk.PrintTitle("platehole_tractionfree")

	var sol PlateHole
	sol.Init(fun.Prms{
		&fun.Prm{N: "r", V: 1.0},
		&fun.Prm{N: "E", V: 1e3},
		&fun.Prm{N: "nu", V: 0.3},
		&fun.Prm{N: "qnV", V: 5.0},
		&fun.Prm{N: "qnH", V: 10.0},
	})

	for _, θ := range []float64{0, math.Pi / 6, math.Pi / 3, math.Pi / 2, 2 * math.Pi / 3} {
		x, y := math.Cos(θ), math.Sin(θ)
		sx, sy, _, sxy := sol.Stress(1, []float64{x, y})
		_, sr, _, _ := PolarStresses(x, y, sx, sy, sxy)
		chk.Scalar(tst, "σr at hole boundary", 1e-8, sr, 0.0)
	}
}
