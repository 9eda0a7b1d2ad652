// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "github.com/cpmech/gosl/mpi"

// Reducer is the injected collective-communication collaborator (spec
// §5): diagnostics computed locally per rank are combined with an
// all-reduce rather than linking MPI directly into the core.
type Reducer interface {
	IsOn() bool
	Rank() int
	Size() int
	AllReduceSum(dest, src []float64)
}

// MPIReducer delegates straight to gosl/mpi, exactly as the teacher's
// mpi.IsOn()-gated code paths in fem/fem.go/fem/solver.go do.
type MPIReducer struct{}

func (MPIReducer) IsOn() bool { return mpi.IsOn() }
func (MPIReducer) Rank() int  { return mpi.Rank() }
func (MPIReducer) Size() int  { return mpi.Size() }
func (MPIReducer) AllReduceSum(dest, src []float64) { mpi.AllReduceSum(dest, src) }

// SerialReducer is the single-process no-op default used by tests and
// single-rank runs: every reduction is simply a copy.
type SerialReducer struct{}

func (SerialReducer) IsOn() bool   { return false }
func (SerialReducer) Rank() int    { return 0 }
func (SerialReducer) Size() int    { return 1 }
func (SerialReducer) AllReduceSum(dest, src []float64) { copy(dest, src) }

// DomainIntegral computes ∫_Ω u dx over the mesh (diagnostic, spec §6),
// then reduces the per-rank partial sum with the injected Reducer.
func DomainIntegral(mp *MeshProxy, u []float64, dm *DofMap, red Reducer) float64 {
	var local float64
	for e := 0; e < mp.NumElements(); e++ {
		c := mp.Cell(e)
		for q := 0; q < mp.QNodesCount(e); q++ {
			w := mp.QWeight(e, q) * mp.DetJ(e, q)
			var uq float64
			for i := 0; i < c.Shp.Nverts; i++ {
				uq += mp.ShapeValue(e, i, q) * u[dm.Dof(c.Verts[i], 0)]
			}
			local += w * uq
		}
	}
	if red == nil || !red.IsOn() {
		return local
	}
	dest := make([]float64, 1)
	red.AllReduceSum(dest, []float64{local})
	return dest[0]
}
