// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "sync"

// CSRPattern is a compressed-row sparsity pattern: row i's nonzero columns
// are ColIdx[RowPtr[i]:RowPtr[i+1]], stored in ascending order.
type CSRPattern struct {
	NRows, NCols int
	RowPtr       []int
	ColIdx       []int
}

// NNZ returns the number of stored entries.
func (p *CSRPattern) NNZ() int { return len(p.ColIdx) }

// connectivity visits, for DOF row's owning node, every column DOF that a
// nonzero stiffness contribution can touch: every node sharing an element
// with it (the local term) and every node of every element reachable via
// the nonlocal kernel's radius from any of its quadrature nodes.
func connectivity(mp *MeshProxy, nt NeighborTable, radius float64, node int, visit func(col int)) {
	seenElems := make(map[int]bool)
	for _, e1 := range mp.NodeElements(node) {
		if !seenElems[e1] {
			seenElems[e1] = true
			for _, w := range mp.Cell(e1).Verts {
				visit(w)
			}
		}
		if radius <= 0 {
			continue
		}
		for q1 := 0; q1 < mp.QNodesCount(e1); q1++ {
			nt.ForEach(e1, q1, radius, func(e2, q2 int, dist float64) {
				if seenElems[e2] {
					return
				}
				seenElems[e2] = true
				for _, w := range mp.Cell(e2).Verts {
					visit(w)
				}
			})
		}
	}
}

// BuildSparsity runs the two-pass count/fill analysis (spec §4.4) over
// every free-DOF row, splitting the result into the free-free block K and
// the free-Dirichlet block K_b. Row construction is split across nworkers
// goroutines, each owning a private []bool dedup bitset for its row range
// (no pool needed: a worker's bitset lives for that worker's lifetime and
// is reset, not reallocated, between rows).
func BuildSparsity(mp *MeshProxy, dm *DofMap, nt NeighborTable, radius float64, nworkers int) (K, Kb *CSRPattern) {
	nFree := dm.NFree()
	nDir := dm.NDirichlet()
	if nworkers < 1 {
		nworkers = 1
	}

	kCols := make([][]int, nFree)
	bCols := make([][]int, nFree)

	var wg sync.WaitGroup
	chunk := (nFree + nworkers - 1) / nworkers
	if chunk < 1 {
		chunk = 1
	}
	for w := 0; w < nworkers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > nFree {
			hi = nFree
		}
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			seenK := make([]bool, nFree)
			seenB := make([]bool, nDir)
			touchedK := make([]int, 0, 64)
			touchedB := make([]int, 0, 64)
			for row := lo; row < hi; row++ {
				dof := dm.GlobalOfFree(row)
				node := dof / dm.NDofPerNode
				touchedK = touchedK[:0]
				touchedB = touchedB[:0]
				connectivity(mp, nt, radius, node, func(col int) {
					for c := 0; c < dm.NDofPerNode; c++ {
						cdof := dm.Dof(col, c)
						if dm.IsDirichlet(cdof) {
							j := dm.DirichletColumn(cdof)
							if !seenB[j] {
								seenB[j] = true
								touchedB = append(touchedB, j)
							}
						} else {
							j := dm.FreeIndex(cdof)
							if !seenK[j] {
								seenK[j] = true
								touchedK = append(touchedK, j)
							}
						}
					}
				})
				ks := make([]int, len(touchedK))
				copy(ks, touchedK)
				sortInts(ks)
				bs := make([]int, len(touchedB))
				copy(bs, touchedB)
				sortInts(bs)
				kCols[row] = ks
				bCols[row] = bs
				for _, j := range touchedK {
					seenK[j] = false
				}
				for _, j := range touchedB {
					seenB[j] = false
				}
			}
		}(lo, hi)
	}
	wg.Wait()

	K = flattenCSR(nFree, nFree, kCols)
	Kb = flattenCSR(nFree, nDir, bCols)
	return
}

func flattenCSR(nrows, ncols int, cols [][]int) *CSRPattern {
	p := &CSRPattern{NRows: nrows, NCols: ncols, RowPtr: make([]int, nrows+1)}
	for i, c := range cols {
		p.RowPtr[i+1] = p.RowPtr[i] + len(c)
	}
	p.ColIdx = make([]int, p.RowPtr[nrows])
	for i, c := range cols {
		copy(p.ColIdx[p.RowPtr[i]:], c)
	}
	return p
}

// sortInts is a small insertion sort: row fan-in counts are tiny (element
// connectivity degree plus a handful of nonlocal neighbors), so this beats
// sort.Ints's overhead in the common case.
func sortInts(a []int) {
	for i := 1; i < len(a); i++ {
		v := a[i]
		j := i - 1
		for j >= 0 && a[j] > v {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = v
	}
}
