// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "testing"

// Test_speedTableHonorsCallRadius checks that a speedTable built with a
// wide union radius still filters each ForEach call down to its own,
// narrower r, matching memoryTable/bruteTable's per-call contract (a
// material group configured with a tighter radius than NewAssembler's
// maxSearchR union must never see neighbors beyond its own radius).
func Test_speedTableHonorsCallRadius(tst *testing.T) {
	mesh := buildUnitSquareMesh(4)
	matdb := scalarMatDb(0.5, "polynomial_2d", 0.5)
	mp, err := NewMeshProxy(mesh, matdb)
	if err != nil {
		tst.Fatalf("mesh proxy: %v", err)
	}

	wide := NewSpeedNeighborTable(mp, 0.5)
	narrow := NewBruteNeighborTable(mp)

	var wideHits, narrowHits int
	wide.ForEach(0, 0, 0.15, func(e2, q2 int, dist float64) {
		wideHits++
		if dist > 0.15 {
			tst.Fatalf("speedTable.ForEach returned a neighbor at dist %g beyond requested radius 0.15", dist)
		}
	})
	narrow.ForEach(0, 0, 0.15, func(e2, q2 int, dist float64) {
		narrowHits++
	})
	if wideHits != narrowHits {
		tst.Fatalf("speedTable.ForEach(r=0.15) found %d neighbors, bruteTable found %d", wideHits, narrowHits)
	}
}

// Test_speedTablePanicsBeyondBuiltRadius checks that requesting a radius
// wider than the table was built with is rejected rather than silently
// under-reporting neighbors the kd-tree search already discarded.
func Test_speedTablePanicsBeyondBuiltRadius(tst *testing.T) {
	mesh := buildUnitSquareMesh(4)
	matdb := scalarMatDb(0.5, "polynomial_2d", 0.2)
	mp, err := NewMeshProxy(mesh, matdb)
	if err != nil {
		tst.Fatalf("mesh proxy: %v", err)
	}
	table := NewSpeedNeighborTable(mp, 0.2)

	defer func() {
		if r := recover(); r == nil {
			tst.Fatalf("expected panic requesting radius beyond the table's built radius")
		}
	}()
	table.ForEach(0, 0, 0.5, func(e2, q2 int, dist float64) {})
}
