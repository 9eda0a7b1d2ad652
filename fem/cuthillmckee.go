// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "sort"

// nodeGraph is the node-adjacency CSR Cuthill-McKee operates on, built
// over either the LOCAL or the NONLOCAL connectivity.
type nodeGraph struct {
	shifts  []int
	indices []int
}

func (g *nodeGraph) degree(node int) int { return g.shifts[node+1] - g.shifts[node] }

// graphNeighbors visits node's raw (possibly repeated) adjacency
// candidates: under LOCAL theory every node sharing an incident element;
// under NONLOCAL theory every node of every element the kernel radius
// reaches from an incident element's quadrature nodes.
func graphNeighbors(mp *MeshProxy, nt NeighborTable, radius float64, nonlocal bool, node int, fn func(nb int)) {
	for _, e := range mp.NodeElements(node) {
		if !nonlocal {
			for _, w := range mp.Cell(e).Verts {
				fn(w)
			}
			continue
		}
		for q := 0; q < mp.QNodesCount(e); q++ {
			nt.ForEach(e, q, radius, func(e2, q2 int, dist float64) {
				for _, w := range mp.Cell(e2).Verts {
					fn(w)
				}
			})
		}
	}
}

// buildNodeGraph runs the two-pass count/fill dedup over every node's raw
// neighbor candidates, mirroring the teacher's shifts/indices_initializer
// pair from the C++ original.
func buildNodeGraph(mp *MeshProxy, nt NeighborTable, radius float64, nonlocal bool) *nodeGraph {
	n := mp.NumNodes()
	g := &nodeGraph{shifts: make([]int, n+1)}
	include := make([]bool, n)
	for node := 0; node < n; node++ {
		for i := range include {
			include[i] = false
		}
		count := 0
		graphNeighbors(mp, nt, radius, nonlocal, node, func(nb int) {
			if nb != node && !include[nb] {
				include[nb] = true
				count++
			}
		})
		g.shifts[node+1] = count
	}
	for i := 1; i <= n; i++ {
		g.shifts[i] += g.shifts[i-1]
	}
	g.indices = make([]int, g.shifts[n])
	for node := 0; node < n; node++ {
		for i := range include {
			include[i] = false
		}
		k := g.shifts[node]
		graphNeighbors(mp, nt, radius, nonlocal, node, func(nb int) {
			if nb != node && !include[nb] {
				include[nb] = true
				g.indices[k] = nb
				k++
			}
		})
	}
	return g
}

func minDegreeNode(g *nodeGraph) int {
	n := len(g.shifts) - 1
	best, bestDeg := 0, g.degree(0)
	for node := 1; node < n; node++ {
		if d := g.degree(node); d < bestDeg {
			best, bestDeg = node, d
		}
	}
	return best
}

// calcPermutation runs the layered BFS: each node already placed in the
// current layer contributes its own unvisited neighbors, sorted by
// ascending degree, to the next layer — matching the teacher's per-node
// std::multimap<degree,node> ordering exactly.
func calcPermutation(g *nodeGraph, start int) []int {
	n := len(g.shifts) - 1
	perm := make([]int, n)
	for i := range perm {
		perm[i] = -1
	}
	idx := 0
	perm[start] = idx
	idx++
	curr := []int{start}
	for idx < n {
		var next []int
		for _, node := range curr {
			type cand struct{ deg, nb int }
			var cands []cand
			for s := g.shifts[node]; s < g.shifts[node+1]; s++ {
				nb := g.indices[s]
				if perm[nb] == -1 {
					cands = append(cands, cand{g.degree(nb), nb})
				}
			}
			sort.SliceStable(cands, func(i, j int) bool { return cands[i].deg < cands[j].deg })
			for _, c := range cands {
				if perm[c.nb] != -1 {
					continue
				}
				perm[c.nb] = idx
				idx++
				next = append(next, c.nb)
			}
		}
		if len(next) == 0 && idx < n {
			nx, best := -1, -1
			for node := 0; node < n; node++ {
				if perm[node] == -1 && (best == -1 || g.degree(node) < best) {
					nx, best = node, g.degree(node)
				}
			}
			if nx == -1 {
				break
			}
			perm[nx] = idx
			idx++
			next = []int{nx}
		}
		curr = next
	}
	return perm
}

// CuthillMcKee returns the bandwidth-reducing node permutation (spec
// §4.5): perm[node] is node's new index. The nonlocal flag selects
// whether adjacency is built over the local (shared-element) graph or
// the nonlocal (kernel-radius) graph.
func CuthillMcKee(mp *MeshProxy, nt NeighborTable, radius float64, nonlocal bool) []int {
	g := buildNodeGraph(mp, nt, radius, nonlocal)
	start := minDegreeNode(g)
	return calcPermutation(g, start)
}

// ReverseCuthillMcKee returns the reverse permutation, conventionally
// giving a tighter envelope for skyline/banded solvers.
func ReverseCuthillMcKee(mp *MeshProxy, nt NeighborTable, radius float64, nonlocal bool) []int {
	perm := CuthillMcKee(mp, nt, radius, nonlocal)
	n := len(perm)
	rev := make([]int, n)
	for node, p := range perm {
		rev[node] = n - 1 - p
	}
	return rev
}
