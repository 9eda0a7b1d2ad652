// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"runtime"

	"github.com/KMI020908/nonlocal/inp"
	"github.com/KMI020908/nonlocal/kernel"
	"github.com/KMI020908/nonlocal/mconduct"
	"github.com/KMI020908/nonlocal/msolid"

	"github.com/cpmech/gosl/la"
)

// groupCtx resolves one material group's constitutive model, nonlocal
// mixing weight, influence kernel and search radius — built once from
// inp.Material and reused across every element of that tag.
type groupCtx struct {
	conduct *mconduct.Model // scalar problems
	elastic *msolid.Elastic2D // mechanical problems
	p1      float64
	kern    kernel.Kernel
	radius  float64
	local   bool
}

// Assembler builds the free-free block K and the free-Dirichlet block K_b
// of the stiffness matrix (spec §4.6), dispatching on inp.Simulation's
// Problem (Scalar/Mechanical) × Theory (local-only/nonlocal-extended) per
// material group, via groupCtx built once at construction.
type Assembler struct {
	Sim *inp.Simulation
	MP  *MeshProxy
	DM  *DofMap
	NT  NeighborTable

	groups map[int]*groupCtx // material tag -> resolved context

	// KPattern/KbPattern are the spec §4.4 two-pass sparsity analysis of
	// the free-free and free-Dirichlet blocks, built once BuildDofMap has
	// finalized the free/Dirichlet partition. They size-hint the COO
	// accumulators AssembleScalar/AssembleMechanical fill in, and let
	// tests check the real assembled nonzero pattern never exceeds what
	// the analyzer predicted.
	KPattern, KbPattern *CSRPattern

	searchRadius float64 // union of every nonlocal group's search radius
}

// NewAssembler resolves every material group's constitutive model and
// nonlocal configuration, building one NeighborTable shared by every
// nonlocal group. The table is built with the largest search radius of
// all nonlocal groups (maxSearchR); each group then passes its own
// nonlocal radius to every ForEach call.
func NewAssembler(sim *inp.Simulation, mp *MeshProxy) (*Assembler, error) {
	a := &Assembler{Sim: sim, MP: mp, DM: NewDofMap(mp.NumNodes(), ndofPerNode(sim)), groups: make(map[int]*groupCtx)}
	maxSearchR := 0.0
	for _, m := range sim.MatDb.Materials {
		gc := &groupCtx{p1: m.Model.LocalWeight, local: m.Model.IsLocal()}
		switch sim.Problem {
		case inp.Scalar:
			c := new(mconduct.Model)
			var err error
			if m.Physical.ConductivityXY != nil || m.Physical.ConductivityYY != nil {
				kxy, kyy := 0.0, m.Physical.Conductivity
				if m.Physical.ConductivityXY != nil {
					kxy = *m.Physical.ConductivityXY
				}
				if m.Physical.ConductivityYY != nil {
					kyy = *m.Physical.ConductivityYY
				}
				err = c.InitTensor(m.Physical.Conductivity, kxy, kyy)
			} else {
				err = c.Init(m.Physical.Conductivity)
			}
			if err != nil {
				return nil, Parameterf("assembler: material %q: %v", m.Name, err)
			}
			gc.conduct = c
		case inp.Mechanical:
			e := new(msolid.Elastic2D)
			if err := e.Init(m.Physical.E, m.Physical.Nu, m.Physical.ThermalExpansion, sim.Pstress); err != nil {
				return nil, Parameterf("assembler: material %q: %v", m.Name, err)
			}
			gc.elastic = e
		}
		if !gc.local {
			r, err := m.Model.Radius()
			if err != nil {
				return nil, err
			}
			sr, err := m.Model.SearchR()
			if err != nil {
				return nil, err
			}
			gc.radius = r
			k, err := kernel.New(m.Model.Influence, r, m.Model.InfluenceArgs)
			if err != nil {
				return nil, Configf("assembler: material %q: %v", m.Name, err)
			}
			gc.kern = k
			if sr > maxSearchR {
				maxSearchR = sr
			}
		}
		a.groups[m.Tag] = gc
	}
	if maxSearchR > 0 {
		a.NT = NewNeighborTable(mp, sim, maxSearchR)
	}
	a.searchRadius = maxSearchR
	return a, nil
}

func ndofPerNode(sim *inp.Simulation) int {
	if sim.Problem == inp.Mechanical {
		return 2
	}
	return 1
}

// BuildDofMap marks every Dirichlet DOF from the simulation's boundary
// conditions, finalizes the free/Dirichlet partition, and runs the sparsity
// analyzer (spec §4.4) over the now-known DOF layout. Must run before
// AssembleScalar/AssembleMechanical.
func (a *Assembler) BuildDofMap() {
	kind := inp.TEMPERATURE
	if a.Sim.Problem == inp.Mechanical {
		kind = inp.TRANSLATION
	}
	a.DM.CollectDirichletDofs(a.Sim.Mesh, kind)
	a.DM.Finalize()
	a.KPattern, a.KbPattern = BuildSparsity(a.MP, a.DM, a.NT, a.searchRadius, runtime.NumCPU())
}

// SparseMatrix is the assembler's own COO accumulator: its size isn't
// known up front (the nonlocal pass fans out to a variable number of
// columns per row), unlike la.Triplet which requires a capacity at
// Init. ToTriplet hands the finished matrix to any la.Triplet-based
// collaborator.
type SparseMatrix struct {
	NRows, NCols int
	I, J         []int
	X            []float64
}

// newSparseMatrix preallocates the COO accumulator's backing arrays to
// capHint entries (a CSRPattern's NNZ, typically) so AssembleScalar/
// AssembleMechanical's put calls don't repeatedly reallocate and copy.
func newSparseMatrix(nrows, ncols, capHint int) *SparseMatrix {
	return &SparseMatrix{
		NRows: nrows, NCols: ncols,
		I: make([]int, 0, capHint),
		J: make([]int, 0, capHint),
		X: make([]float64, 0, capHint),
	}
}

func (m *SparseMatrix) put(i, j int, v float64) {
	m.I = append(m.I, i)
	m.J = append(m.J, j)
	m.X = append(m.X, v)
}

// patternNNZ returns p's entry count, or 0 if the sparsity pattern hasn't
// been built yet (BuildDofMap not called).
func (a *Assembler) patternNNZ(p *CSRPattern) int {
	if p == nil {
		return 0
	}
	return p.NNZ()
}

// ToTriplet materializes a la.Triplet with the same entries.
func (m *SparseMatrix) ToTriplet() *la.Triplet {
	t := new(la.Triplet)
	t.Init(m.NRows, m.NCols, len(m.I))
	for k := range m.I {
		t.Put(m.I[k], m.J[k], m.X[k])
	}
	return t
}

// AssembleScalar assembles K and K_b for a scalar (thermal) problem.
func (a *Assembler) AssembleScalar() (K, Kb *SparseMatrix, err error) {
	bK := newSparseMatrix(a.DM.NFree(), a.DM.NFree(), a.patternNNZ(a.KPattern))
	bB := newSparseMatrix(a.DM.NFree(), a.DM.NDirichlet(), a.patternNNZ(a.KbPattern))
	mp := a.MP

	for e := 0; e < mp.NumElements(); e++ {
		c := mp.Cell(e)
		gc := a.groups[c.Tag]
		nv := c.Shp.Nverts
		cond := gc.conduct.C

		// local term
		kloc := make([][]float64, nv)
		for i := range kloc {
			kloc[i] = make([]float64, nv)
		}
		for q := 0; q < mp.QNodesCount(e); q++ {
			wJ := mp.QWeight(e, q) * mp.DetJ(e, q)
			for i := 0; i < nv; i++ {
				bix, biy := mp.Gradient(e, i, q)
				cbx := cond[0][0]*bix + cond[0][1]*biy
				cby := cond[1][0]*bix + cond[1][1]*biy
				for j := 0; j < nv; j++ {
					bjx, bjy := mp.Gradient(e, j, q)
					kloc[i][j] += wJ * (cbx*bjx + cby*bjy)
				}
			}
		}

		// nonlocal term, factored inner sum per qL
		var knl [][]float64
		var nlNodes []int
		if !gc.local && gc.kern != nil {
			knl, nlNodes = a.scalarNonlocal(e, gc, cond)
		}

		for i := 0; i < nv; i++ {
			gi := c.Verts[i]
			dofI := a.DM.Dof(gi, 0)
			if a.DM.IsDirichlet(dofI) {
				continue // Dirichlet rows are pinned by ApplyBoundaryConditions
			}
			rowI := a.DM.FreeIndex(dofI)
			for j := 0; j < nv; j++ {
				gj := c.Verts[j]
				dofJ := a.DM.Dof(gj, 0)
				a.putScalar(bK, bB, rowI, dofJ, gc.p1*kloc[i][j])
			}
			if knl != nil {
				for jj, gj := range nlNodes {
					dofJ := a.DM.Dof(gj, 0)
					val := (1 - gc.p1) * knl[i][jj]
					a.putScalar(bK, bB, rowI, dofJ, val)
				}
			}
		}
	}
	return bK, bB, nil
}

// putScalar routes one (row,col) contribution into K or K_b, keeping only
// the lower-triangular half of K (row's global dof >= col's global dof)
// per spec §4.6's storage convention; Dirichlet-column entries always go
// into K_b regardless of triangle.
func (a *Assembler) putScalar(bK, bB *SparseMatrix, rowFree, colDof int, val float64) {
	if val == 0 {
		return
	}
	if a.DM.IsDirichlet(colDof) {
		bB.put(rowFree, a.DM.DirichletColumn(colDof), val)
		return
	}
	colFree := a.DM.FreeIndex(colDof)
	rowDof := a.DM.GlobalOfFree(rowFree)
	if rowDof < colDof {
		return // upper triangle dropped; caller mirrors if it needs the full matrix
	}
	bK.put(rowFree, colFree, val)
}

// scalarNonlocal computes, for element eL, the nonlocal stiffness block
// against every neighbor reached through gc's kernel radius, factoring
// the inner (eNL,qNL) sum once per qL before combining with B_iL.
func (a *Assembler) scalarNonlocal(eL int, gc *groupCtx, cond [2][2]float64) (knl [][]float64, nlNodes []int) {
	mp := a.MP
	c := mp.Cell(eL)
	nv := c.Shp.Nverts

	node2col := make(map[int]int)
	for q := 0; q < mp.QNodesCount(eL); q++ {
		x0, y0 := mp.QuadCoord(eL, q)
		wJ := mp.QWeight(eL, q) * mp.DetJ(eL, q)

		acc := make(map[int][2]float64)
		a.NT.ForEach(eL, q, gc.radius, func(eNL, qNL int, dist float64) {
			cNL := mp.Cell(eNL)
			x1, y1 := mp.QuadCoord(eNL, qNL)
			kap := gc.kern.Eval([]float64{x0, y0}, []float64{x1, y1})
			if kap == 0 {
				return
			}
			w := mp.QWeight(eNL, qNL) * mp.DetJ(eNL, qNL) * kap
			for jl := 0; jl < cNL.Shp.Nverts; jl++ {
				gx, gy := mp.Gradient(eNL, jl, qNL)
				g := cNL.Verts[jl]
				v := acc[g]
				v[0] += w * gx
				v[1] += w * gy
				acc[g] = v
			}
		})
		if knl == nil {
			knl = make([][]float64, nv)
			for i := range knl {
				knl[i] = make([]float64, 0)
			}
		}
		for g, vec := range acc {
			col, ok := node2col[g]
			if !ok {
				col = len(nlNodes)
				node2col[g] = col
				nlNodes = append(nlNodes, g)
				for i := range knl {
					knl[i] = append(knl[i], 0)
				}
			}
			cbx := cond[0][0]*vec[0] + cond[0][1]*vec[1]
			cby := cond[1][0]*vec[0] + cond[1][1]*vec[1]
			for i := 0; i < nv; i++ {
				bix, biy := mp.Gradient(eL, i, q)
				knl[i][col] += wJ * (bix*cbx + biy*cby)
			}
		}
	}
	return
}
