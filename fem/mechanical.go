// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/la"
)

// bMatrix is the 3x2 strain-displacement matrix of one node's basis,
// mapping its (ux,uy) DOFs to the Voigt strain increment {exx,eyy,gxy}
// (gxy engineering, not tensorial — matches msolid.Elastic2D.CalcD's
// convention).
type bMatrix [3][2]float64

func nodeB(dNdx, dNdy float64) bMatrix {
	return bMatrix{{dNdx, 0}, {0, dNdy}, {dNdy, dNdx}}
}

// cMul computes Bi^T · C · Bj, a 2x2 block relating node i's (ux,uy) DOFs
// to node j's.
func cMul(C [][]float64, bi, bj bMatrix) (k [2][2]float64) {
	var cb [3][2]float64
	for r := 0; r < 3; r++ {
		for c := 0; c < 2; c++ {
			cb[r][c] = C[r][0]*bj[0][c] + C[r][1]*bj[1][c] + C[r][2]*bj[2][c]
		}
	}
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			var s float64
			for m := 0; m < 3; m++ {
				s += bi[m][r] * cb[m][c]
			}
			k[r][c] = s
		}
	}
	return
}

// AssembleMechanical assembles K and K_b for a plane-mechanics problem,
// expanding every node pair into the four component pairs {XX,XY,YX,YY}
// (spec §4.6's "Assembly dispatch"). The nonlocal term's neighbor-side
// strain-displacement matrix is used un-transposed (DESIGN.md's Open
// Question 1 resolution): it already maps the neighbor's displacement
// DOFs to strain the same way the source-side matrix does, so no row
// swap is needed in the bilinear form Bᵢᵀ·C·κ·Bⱼ.
func (a *Assembler) AssembleMechanical() (K, Kb *SparseMatrix, err error) {
	bK := newSparseMatrix(a.DM.NFree(), a.DM.NFree(), a.patternNNZ(a.KPattern))
	bB := newSparseMatrix(a.DM.NFree(), a.DM.NDirichlet(), a.patternNNZ(a.KbPattern))
	mp := a.MP

	for e := 0; e < mp.NumElements(); e++ {
		c := mp.Cell(e)
		gc := a.groups[c.Tag]
		nv := c.Shp.Nverts
		D := la.MatAlloc(3, 3)
		if err := gc.elastic.CalcD(D); err != nil {
			return nil, nil, Numericalf("assembler: cell %d: %v", c.Id, err)
		}

		kloc := make([][][2][2]float64, nv)
		for i := range kloc {
			kloc[i] = make([][2][2]float64, nv)
		}
		for q := 0; q < mp.QNodesCount(e); q++ {
			wJ := mp.QWeight(e, q) * mp.DetJ(e, q)
			bs := make([]bMatrix, nv)
			for i := 0; i < nv; i++ {
				gx, gy := mp.Gradient(e, i, q)
				bs[i] = nodeB(gx, gy)
			}
			for i := 0; i < nv; i++ {
				for j := 0; j < nv; j++ {
					blk := cMul(D, bs[i], bs[j])
					for r := 0; r < 2; r++ {
						for col := 0; col < 2; col++ {
							kloc[i][j][r][col] += wJ * blk[r][col]
						}
					}
				}
			}
		}

		var knl map[[2]int][2][2]float64
		if !gc.local && gc.kern != nil {
			knl = a.mechanicalNonlocal(e, gc, D)
		}

		for i := 0; i < nv; i++ {
			gi := c.Verts[i]
			for j := 0; j < nv; j++ {
				gj := c.Verts[j]
				var blk [2][2]float64
				for r := 0; r < 2; r++ {
					for col := 0; col < 2; col++ {
						blk[r][col] = gc.p1 * kloc[i][j][r][col]
					}
				}
				if knl != nil {
					if nl, ok := knl[[2]int{gi, gj}]; ok {
						for r := 0; r < 2; r++ {
							for col := 0; col < 2; col++ {
								blk[r][col] += (1 - gc.p1) * nl[r][col]
							}
						}
					}
				}
				a.putMechanicalBlock(bK, bB, gi, gj, blk)
			}
		}
		// nonlocal pairs whose column node lies outside element e
		for key, nl := range knl {
			inside := false
			for _, v := range c.Verts {
				inside = inside || v == key[1]
			}
			if !inside {
				var blk [2][2]float64
				for r := 0; r < 2; r++ {
					for col := 0; col < 2; col++ {
						blk[r][col] = (1 - gc.p1) * nl[r][col]
					}
				}
				a.putMechanicalBlock(bK, bB, key[0], key[1], blk)
			}
		}
	}
	return bK, bB, nil
}

// putMechanicalBlock routes a 2x2 node-pair block into K/K_b per
// component, honoring the lower-triangular and Dirichlet-routing rules.
func (a *Assembler) putMechanicalBlock(bK, bB *SparseMatrix, gi, gj int, blk [2][2]float64) {
	for r := 0; r < 2; r++ {
		dofI := a.DM.Dof(gi, r)
		if a.DM.IsDirichlet(dofI) {
			continue
		}
		rowFree := a.DM.FreeIndex(dofI)
		for col := 0; col < 2; col++ {
			dofJ := a.DM.Dof(gj, col)
			v := blk[r][col]
			if v == 0 {
				continue
			}
			if a.DM.IsDirichlet(dofJ) {
				bB.put(rowFree, a.DM.DirichletColumn(dofJ), v)
				continue
			}
			if dofI < dofJ {
				continue
			}
			bK.put(rowFree, a.DM.FreeIndex(dofJ), v)
		}
	}
}

// mechanicalNonlocal mirrors scalarNonlocal: for each quadrature node of
// eL, the inner sum over every (eNL,qNL) reached by the kernel radius is
// accumulated once per node pair, keyed by the global node pair.
func (a *Assembler) mechanicalNonlocal(eL int, gc *groupCtx, D [][]float64) map[[2]int][2][2]float64 {
	mp := a.MP
	c := mp.Cell(eL)
	nv := c.Shp.Nverts
	out := make(map[[2]int][2][2]float64)

	for q := 0; q < mp.QNodesCount(eL); q++ {
		x0, y0 := mp.QuadCoord(eL, q)
		wJ := mp.QWeight(eL, q) * mp.DetJ(eL, q)
		bi := make([]bMatrix, nv)
		for i := 0; i < nv; i++ {
			gx, gy := mp.Gradient(eL, i, q)
			bi[i] = nodeB(gx, gy)
		}

		accB := make(map[int]bMatrix)
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
				bj := nodeB(gx, gy)
				g := cNL.Verts[jl]
				acc := accB[g]
				for m := 0; m < 3; m++ {
					for cc := 0; cc < 2; cc++ {
						acc[m][cc] += w * bj[m][cc]
					}
				}
				accB[g] = acc
			}
		})

		for i := 0; i < nv; i++ {
			gi := c.Verts[i]
			for gj, bjAcc := range accB {
				blk := cMul(D, bi[i], bjAcc)
				for r := 0; r < 2; r++ {
					for col := 0; col < 2; col++ {
						blk[r][col] *= wJ
					}
				}
				key := [2]int{gi, gj}
				cur := out[key]
				for r := 0; r < 2; r++ {
					for col := 0; col < 2; col++ {
						cur[r][col] += blk[r][col]
					}
				}
				out[key] = cur
			}
		}
	}
	return out
}

// ApplyThermalLoad adds the thermal-eigenstrain load to f: for every
// quadrature node, f += B_i^T · σ_th dΩ where σ_th = D·ε_th(ΔT), mixing
// local and nonlocal ΔT the same way the stiffness terms mix, grounded on
// original_source's temperature_condition_2d.hpp (local term from the
// element's own ΔT, nonlocal term sampling ΔT through the material's
// influence kernel rather than re-deriving a neighbor stiffness block).
func (a *Assembler) ApplyThermalLoad(f []float64, deltaT fun.Func) error {
	mp := a.MP
	D := la.MatAlloc(3, 3)
	for e := 0; e < mp.NumElements(); e++ {
		c := mp.Cell(e)
		gc := a.groups[c.Tag]
		if err := gc.elastic.CalcD(D); err != nil {
			return Numericalf("thermal load: cell %d: %v", c.Id, err)
		}
		for q := 0; q < mp.QNodesCount(e); q++ {
			wJ := mp.QWeight(e, q) * mp.DetJ(e, q)
			x0, y0 := mp.QuadCoord(e, q)
			dT := deltaT.F(0, []float64{x0, y0})

			if !gc.local && gc.kern != nil {
				var s float64
				a.NT.ForEach(e, q, gc.radius, func(e2, q2 int, dist float64) {
					x1, y1 := mp.QuadCoord(e2, q2)
					kap := gc.kern.Eval([]float64{x0, y0}, []float64{x1, y1})
					if kap == 0 {
						return
					}
					w := mp.QWeight(e2, q2) * mp.DetJ(e2, q2) * kap
					s += w * deltaT.F(0, []float64{x1, y1})
				})
				dT = gc.p1*dT + (1-gc.p1)*s
			}

			eps := gc.elastic.ThermalStrain(dT)
			sig := [3]float64{
				D[0][0]*eps[0] + D[0][1]*eps[1] + D[0][2]*eps[2],
				D[1][0]*eps[0] + D[1][1]*eps[1] + D[1][2]*eps[2],
				D[2][0]*eps[0] + D[2][1]*eps[1] + D[2][2]*eps[2],
			}
			for i := 0; i < c.Shp.Nverts; i++ {
				dx, dy := mp.Gradient(e, i, q)
				dofX := a.DM.Dof(c.Verts[i], 0)
				if !a.DM.IsDirichlet(dofX) {
					f[a.DM.FreeIndex(dofX)] += wJ * (dx*sig[0] + dy*sig[2])
				}
				dofY := a.DM.Dof(c.Verts[i], 1)
				if !a.DM.IsDirichlet(dofY) {
					f[a.DM.FreeIndex(dofY)] += wJ * (dy*sig[1] + dx*sig[2])
				}
			}
		}
	}
	return nil
}
