// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/KMI020908/nonlocal/inp"
)

// rowHasCol reports whether p's row contains col, via linear scan (rows are
// short in these test meshes; no need for sortInts' insertion-sort tricks).
func rowHasCol(p *CSRPattern, row, col int) bool {
	for _, c := range p.ColIdx[p.RowPtr[row]:p.RowPtr[row+1]] {
		if c == col {
			return true
		}
	}
	return false
}

// checkPatternCovers fails tst if any nonzero entry of m falls outside the
// sparsity analyzer's predicted pattern p — the analyzer's whole purpose is
// to predict every column an assembled row can touch before assembly runs.
func checkPatternCovers(tst *testing.T, name string, p *CSRPattern, m *SparseMatrix) {
	for k := range m.I {
		row, col := m.I[k], m.J[k]
		if !rowHasCol(p, row, col) {
			tst.Fatalf("%s: assembled entry (%d,%d) missing from sparsity pattern", name, row, col)
		}
	}
}

// Test_SparsityCoversLocalAssembly checks BuildSparsity's prediction against
// the real local-only (p1=1) assembled K/K_b.
func Test_SparsityCoversLocalAssembly(tst *testing.T) {
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
	asm.BuildDofMap()
	if asm.KPattern == nil || asm.KbPattern == nil {
		tst.Fatalf("BuildDofMap must populate KPattern/KbPattern")
	}
	K, Kb, err := asm.AssembleScalar()
	if err != nil {
		tst.Fatalf("assemble: %v", err)
	}
	checkPatternCovers(tst, "K", asm.KPattern, K)
	checkPatternCovers(tst, "Kb", asm.KbPattern, Kb)
}

// Test_SparsityCoversNonlocalAssembly is the analogous check for a p1=0.5
// nonlocal assembly, where the pattern must also cover every neighbor
// column the kernel's support radius reaches.
func Test_SparsityCoversNonlocalAssembly(tst *testing.T) {
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
	asm.BuildDofMap()
	K, Kb, err := asm.AssembleScalar()
	if err != nil {
		tst.Fatalf("assemble: %v", err)
	}
	checkPatternCovers(tst, "K", asm.KPattern, K)
	checkPatternCovers(tst, "Kb", asm.KbPattern, Kb)
}
