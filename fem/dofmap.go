// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sort"

	"github.com/KMI020908/nonlocal/inp"
)

// Component tags a mechanical DOF's direction.
const (
	X = 0
	Y = 1
)

// DofMap maps node indices to global DOF indices (spec §3: scalar problems
// use DOF==node; vector problems use 2*node+component) and partitions DOFs
// into the free set and the Dirichlet set D.
type DofMap struct {
	NDofPerNode int
	NDof        int
	dirichlet   map[int]bool // global dof -> is in D
	free2global []int        // free-row index -> global dof
	global2free []int        // global dof -> free-row index, or -1
	dir2col     []int        // global dof -> Dirichlet-column index, or -1
	col2dir     []int        // Dirichlet-column index -> global dof
}

// NewDofMap builds the DOF numbering for a mesh with the given number of
// DOFs per node (1 for scalar problems, 2 for plane mechanics).
func NewDofMap(nNodes, ndofPerNode int) *DofMap {
	return &DofMap{
		NDofPerNode: ndofPerNode,
		NDof:        nNodes * ndofPerNode,
		dirichlet:   make(map[int]bool),
	}
}

// Dof returns the global DOF index of node v's component c.
func (o *DofMap) Dof(v, c int) int { return o.NDofPerNode*v + c }

// SetDirichlet marks dof as belonging to the Dirichlet set D.
func (o *DofMap) SetDirichlet(dof int) { o.dirichlet[dof] = true }

// IsDirichlet reports whether dof is in D.
func (o *DofMap) IsDirichlet(dof int) bool { return o.dirichlet[dof] }

// Finalize computes the free<->global DOF index mappings; call once after
// every SetDirichlet call, before building the sparsity pattern.
func (o *DofMap) Finalize() {
	o.global2free = make([]int, o.NDof)
	o.dir2col = make([]int, o.NDof)
	o.free2global = o.free2global[:0]
	o.col2dir = o.col2dir[:0]
	for d := 0; d < o.NDof; d++ {
		if o.dirichlet[d] {
			o.global2free[d] = -1
			o.dir2col[d] = len(o.col2dir)
			o.col2dir = append(o.col2dir, d)
			continue
		}
		o.global2free[d] = len(o.free2global)
		o.free2global = append(o.free2global, d)
		o.dir2col[d] = -1
	}
}

// NDirichlet returns the number of Dirichlet DOFs (the K_b block's column
// count).
func (o *DofMap) NDirichlet() int { return len(o.col2dir) }

// DirichletColumn returns the K_b column index of a global Dirichlet DOF,
// or -1 if dof is free.
func (o *DofMap) DirichletColumn(dof int) int { return o.dir2col[dof] }

// GlobalOfDirichletColumn returns the global DOF index of K_b column i.
func (o *DofMap) GlobalOfDirichletColumn(i int) int { return o.col2dir[i] }

// NFree returns the number of free DOFs.
func (o *DofMap) NFree() int { return len(o.free2global) }

// FreeIndex returns the free-row index of a global free DOF, or -1 if dof
// is in D.
func (o *DofMap) FreeIndex(dof int) int { return o.global2free[dof] }

// GlobalOfFree returns the global DOF index of free-row index i.
func (o *DofMap) GlobalOfFree(i int) int { return o.free2global[i] }

// DirichletDofsSorted returns every Dirichlet DOF in ascending order.
func (o *DofMap) DirichletDofsSorted() []int {
	ds := make([]int, 0, len(o.dirichlet))
	for d := range o.dirichlet {
		ds = append(ds, d)
	}
	sort.Ints(ds)
	return ds
}

// CollectDirichletDofs applies a Dirichlet boundary group's node set to
// this map, marking every component per node Dirichlet (one component for
// scalar problems, both for mechanical — TRANSLATION prescribes the whole
// displacement vector at once).
func (o *DofMap) CollectDirichletDofs(mesh *inp.Mesh, kinds ...string) {
	for _, c := range mesh.Cells {
		for _, v := range c.FaceBcs.GetVerts(kinds...) {
			for comp := 0; comp < o.NDofPerNode; comp++ {
				o.SetDirichlet(o.Dof(v, comp))
			}
		}
	}
}
