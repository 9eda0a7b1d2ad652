// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "testing"

// graphBandwidth returns the maximum |numbering[i]-numbering[j]| over all
// edges (node,nb) of g, where numbering maps a node to its row/column index.
func graphBandwidth(g *nodeGraph, numbering []int) int {
	bw := 0
	n := len(g.shifts) - 1
	for node := 0; node < n; node++ {
		for s := g.shifts[node]; s < g.shifts[node+1]; s++ {
			nb := g.indices[s]
			d := numbering[node] - numbering[nb]
			if d < 0 {
				d = -d
			}
			if d > bw {
				bw = d
			}
		}
	}
	return bw
}

func identity(n int) []int {
	id := make([]int, n)
	for i := range id {
		id[i] = i
	}
	return id
}

// Test_CuthillMcKeeReducesBandwidth exercises spec §8 property #5: the
// permuted local-adjacency graph's bandwidth must not exceed the original
// node numbering's bandwidth, on an 8×8 quad4 grid of the unit square.
func Test_CuthillMcKeeReducesBandwidth(tst *testing.T) {
	mesh := buildUnitSquareMesh(8)
	matdb := scalarMatDb(1.0, "", 0)
	mp, err := NewMeshProxy(mesh, matdb)
	if err != nil {
		tst.Fatalf("mesh proxy: %v", err)
	}

	g := buildNodeGraph(mp, nil, 0, false)
	before := graphBandwidth(g, identity(mp.NumNodes()))

	perm := CuthillMcKee(mp, nil, 0, false)
	after := graphBandwidth(g, perm)

	if after > before {
		tst.Fatalf("bandwidth grew: before=%d after=%d", before, after)
	}
}
