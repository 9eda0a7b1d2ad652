// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"testing"

	"github.com/KMI020908/nonlocal/inp"
)

// denseFromSparse mirrors only the lower triangle K stores, for test
// inspection (DenseSolver.Init does the same but keeps the result private).
func denseFromSparse(m *SparseMatrix) [][]float64 {
	a := make([][]float64, m.NRows)
	for i := range a {
		a[i] = make([]float64, m.NCols)
	}
	for k := range m.I {
		a[m.I[k]][m.J[k]] += m.X[k]
		if m.I[k] != m.J[k] {
			a[m.J[k]][m.I[k]] += m.X[k]
		}
	}
	return a
}

// Test_LocalLimitSymmetry exercises spec §8 properties #2 and #4: with
// p1=1.0 no nonlocal pass runs (Kernel left empty), and the assembled K,
// mirrored to a full matrix, is symmetric to floating-point precision.
func Test_LocalLimitSymmetry(tst *testing.T) {
	mesh := buildUnitSquareMesh(3)
	quadraticDirichletBC(mesh)
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
	if asm.NT != nil {
		tst.Fatalf("p1=1.0 must not build a neighbor table")
	}
	asm.BuildDofMap()
	K, _, err := asm.AssembleScalar()
	if err != nil {
		tst.Fatalf("assemble: %v", err)
	}

	a := denseFromSparse(K)
	for i := range a {
		for j := 0; j < i; j++ {
			denom := math.Max(1, math.Abs(a[i][j]))
			if math.Abs(a[i][j]-a[j][i]) > 1e-10*denom {
				tst.Fatalf("K[%d][%d]=%g != K[%d][%d]=%g", i, j, a[i][j], j, i, a[j][i])
			}
		}
	}
}

// Test_NonlocalMixing checks that a p1=0.5 nonlocal assembly builds a
// neighbor table and yields a nonempty K.
func Test_NonlocalMixing(tst *testing.T) {
	mesh := buildUnitSquareMesh(3)
	quadraticDirichletBC(mesh)
	matdb := scalarMatDb(0.5, "polynomial_2d", 0.3)

	mp, err := NewMeshProxy(mesh, matdb)
	if err != nil {
		tst.Fatalf("mesh proxy: %v", err)
	}
	sim := &inp.Simulation{Problem: inp.Scalar, Mesh: mesh, MatDb: matdb}
	asm, err := NewAssembler(sim, mp)
	if err != nil {
		tst.Fatalf("assembler: %v", err)
	}
	if asm.NT == nil {
		tst.Fatalf("p1=0.5 must build a neighbor table")
	}
	asm.BuildDofMap()
	K, _, err := asm.AssembleScalar()
	if err != nil {
		tst.Fatalf("assemble: %v", err)
	}
	if len(K.X) == 0 {
		tst.Fatalf("expected a nonempty stiffness matrix")
	}
}
