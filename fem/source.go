// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "github.com/cpmech/gosl/fun"

// ApplyDomainSource adds a body load to f: for a scalar problem,
// f[dof(i)] += Σ_q w_q |det J(e,q)| · src(x(e,q)) · N_i(e,q), integrated
// over every element of the mesh. Same quadrature pattern as
// applyNeumann's boundary integral, just over the domain instead of an
// edge — the end-to-end patch scenarios (spec §8 S1/S2) need a nonzero
// RHS to reproduce a quadratic reference solution, which a pure Dirichlet
// BC cannot supply on its own.
func (a *Assembler) ApplyDomainSource(f []float64, src fun.Func) error {
	mp := a.MP
	for e := 0; e < mp.NumElements(); e++ {
		c := mp.Cell(e)
		for q := 0; q < mp.QNodesCount(e); q++ {
			wJ := mp.QWeight(e, q) * mp.DetJ(e, q)
			x, y := mp.QuadCoord(e, q)
			sv := src.F(0, []float64{x, y})
			for i := 0; i < c.Shp.Nverts; i++ {
				dof := a.DM.Dof(c.Verts[i], 0)
				if a.DM.IsDirichlet(dof) {
					continue
				}
				f[a.DM.FreeIndex(dof)] += wJ * sv * mp.ShapeValue(e, i, q)
			}
		}
	}
	return nil
}
