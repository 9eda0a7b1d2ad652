// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/KMI020908/nonlocal/inp"
)

// BoundaryValues holds the prescribed value of every Dirichlet DOF,
// produced by ApplyBoundaryConditions and needed to assemble the final
// nodal solution once the free system is solved.
type BoundaryValues struct {
	Val map[int]float64 // global dof -> prescribed value
}

// ApplyBoundaryConditions runs the order spec §4.7 requires: Neumann
// integration into f first, then Dirichlet elimination (K_b's
// contribution moved to f). The third step in the spec's ordering —
// "pin f[dof(v)] = u_bc(v)" — is a no-op here: Dirichlet DOFs were
// already excluded from the free system by DofMap, so there is no row
// in f to overwrite; BoundaryValues carries the prescribed values
// instead, consumed when the final nodal solution is assembled.
func (a *Assembler) ApplyBoundaryConditions(Kb *SparseMatrix) (f []float64, bv *BoundaryValues, err error) {
	f = make([]float64, a.DM.NFree())
	if err := a.applyNeumann(f); err != nil {
		return nil, nil, err
	}
	bv, err = a.dirichletValues()
	if err != nil {
		return nil, nil, err
	}
	a.eliminateDirichlet(Kb, f, bv)
	return f, bv, nil
}

func (a *Assembler) applyNeumann(f []float64) error {
	mesh := a.Sim.Mesh
	kind := inp.FLUX
	vectorial := a.Sim.Problem == inp.Mechanical
	if vectorial {
		kind = inp.FORCE
	}
	for _, c := range mesh.Cells {
		s := c.Shp
		x := mesh.Coords(c)
		for _, fc := range c.FaceBcs {
			if fc.Kind != kind {
				continue
			}
			for _, ipf := range s.IpsFace {
				if err := s.CalcAtFaceIp(x, ipf, fc.FaceId); err != nil {
					return Numericalf("bc: cell %d face %d: %v", c.Id, fc.FaceId, err)
				}
				t := math.Hypot(s.Fnvec[0], s.Fnvec[1])
				w := ipf[2]
				var xp, yp float64
				for k, n := range fc.LocalVerts {
					xp += s.Sf[k] * x[0][n]
					yp += s.Sf[k] * x[1][n]
				}
				pt := []float64{xp, yp}
				fxv := fc.Fx.F(0, pt)
				for k, n := range fc.LocalVerts {
					dofI := a.DM.Dof(c.Verts[n], 0)
					if a.DM.IsDirichlet(dofI) {
						continue
					}
					f[a.DM.FreeIndex(dofI)] += w * t * s.Sf[k] * fxv
				}
				if vectorial {
					fyv := fc.Fy.F(0, pt)
					for k, n := range fc.LocalVerts {
						dofI := a.DM.Dof(c.Verts[n], 1)
						if a.DM.IsDirichlet(dofI) {
							continue
						}
						f[a.DM.FreeIndex(dofI)] += w * t * s.Sf[k] * fyv
					}
				}
			}
		}
	}
	return nil
}

func (a *Assembler) dirichletValues() (*BoundaryValues, error) {
	mesh := a.Sim.Mesh
	kind := inp.TEMPERATURE
	vectorial := a.Sim.Problem == inp.Mechanical
	if vectorial {
		kind = inp.TRANSLATION
	}
	bv := &BoundaryValues{Val: make(map[int]float64)}
	for _, c := range mesh.Cells {
		for _, fc := range c.FaceBcs {
			if fc.Kind != kind {
				continue
			}
			for _, v := range fc.GlobalVerts {
				coord := mesh.Verts[v].C
				bv.Val[a.DM.Dof(v, 0)] = fc.Fx.F(0, coord)
				if vectorial {
					bv.Val[a.DM.Dof(v, 1)] = fc.Fy.F(0, coord)
				}
			}
		}
	}
	return bv, nil
}

func (a *Assembler) eliminateDirichlet(Kb *SparseMatrix, f []float64, bv *BoundaryValues) {
	for k := range Kb.I {
		row, col, val := Kb.I[k], Kb.J[k], Kb.X[k]
		dof := a.DM.GlobalOfDirichletColumn(col)
		f[row] -= val * bv.Val[dof]
	}
}

// FullSolution combines the solved free-DOF vector with the prescribed
// Dirichlet values into the full nodal solution, indexed by global DOF.
func (a *Assembler) FullSolution(uFree []float64, bv *BoundaryValues) []float64 {
	u := make([]float64, a.DM.NDof)
	for row, v := range uFree {
		u[a.DM.GlobalOfFree(row)] = v
	}
	for dof, v := range bv.Val {
		u[dof] = v
	}
	return u
}
