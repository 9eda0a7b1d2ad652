// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"testing"

	"github.com/KMI020908/nonlocal/inp"
)

// Test_PatchLinear exercises spec §8 property #1: a linear reference
// solution u = a·x + b·y + c, with Dirichlet BCs set from u and p1 = 1,
// must be reproduced at every node to within 1e-10 (the Laplacian of a
// linear field is zero, so no body source is needed).
func Test_PatchLinear(tst *testing.T) {
	mesh := buildUnitSquareMesh(3)
	a, b, c := 2.0, -3.0, 1.5
	bc := &inp.BoundaryCond{Kind: inp.TEMPERATURE, Fx: linearTestFunc{a, b, c}}
	tag2bc := map[int]*inp.BoundaryCond{-1: bc, -2: bc, -3: bc, -4: bc}
	for _, cell := range mesh.Cells {
		cell.SetFaceConds(tag2bc)
	}
	matdb := scalarMatDb(1.0, "", 0)

	mp, err := NewMeshProxy(mesh, matdb)
	if err != nil {
		tst.Fatalf("mesh proxy: %v", err)
	}
	sim := &inp.Simulation{Problem: inp.Scalar, Mesh: mesh, MatDb: matdb}
	asm, err := NewAssembler(sim, mp)
	if err != nil {
		tst.Fatalf("assembler: %v", err)
	}
	asm.BuildDofMap()
	K, Kb, err := asm.AssembleScalar()
	if err != nil {
		tst.Fatalf("assemble: %v", err)
	}
	f, bv, err := asm.ApplyBoundaryConditions(Kb)
	if err != nil {
		tst.Fatalf("apply bc: %v", err)
	}
	solver := new(DenseSolver)
	if err := solver.Init(K); err != nil {
		tst.Fatalf("solver init: %v", err)
	}
	uFree, err := solver.Solve(f)
	if err != nil {
		tst.Fatalf("solve: %v", err)
	}
	u := asm.FullSolution(uFree, bv)

	for _, v := range mesh.Verts {
		want := a*v.C[0] + b*v.C[1] + c
		if math.Abs(u[v.Id]-want) > 1e-10*math.Max(1, math.Abs(want)) {
			tst.Fatalf("node %d: got %g, want %g", v.Id, u[v.Id], want)
		}
	}
}

type linearTestFunc struct{ a, b, c float64 }

func (o linearTestFunc) F(t float64, x []float64) float64   { return o.a*x[0] + o.b*x[1] + o.c }
func (o linearTestFunc) G(t float64, x []float64) []float64 { return []float64{o.a, o.b} }
func (o linearTestFunc) H(t float64, x []float64) [][]float64 {
	return [][]float64{{0, 0}, {0, 0}}
}
