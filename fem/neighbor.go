// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/KMI020908/nonlocal/inp"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/spatial/kdtree"
)

// QPoint identifies one quadrature node: element index e, local node q.
type QPoint struct {
	E, Q int
}

// NeighborTable answers radius queries over every quadrature node of a
// MeshProxy (spec §4.3): "which quadrature nodes lie within radius r of
// quadrature node (e,q)". Three implementations (speed, memory and a
// brute-force scan for Balancing NO) trade memory for query speed,
// selected by the simulation's Balancing setting (spec §6).
type NeighborTable interface {
	// ForEach invokes fn once per quadrature node within radius r of (e,q),
	// including (e,q) itself, passing the Euclidean distance between them.
	ForEach(e, q int, r float64, fn func(e2, q2 int, dist float64))
}

// flatten assigns each (element,qnode) pair a dense index and records its
// physical coordinates, shared by every NeighborTable implementation.
type flatten struct {
	pts   []QPoint
	coord kdtree.Points
	index map[QPoint]int
}

func newFlatten(mp *MeshProxy) *flatten {
	f := &flatten{index: make(map[QPoint]int)}
	for e := 0; e < mp.NumElements(); e++ {
		for q := 0; q < mp.QNodesCount(e); q++ {
			x, y := mp.QuadCoord(e, q)
			f.index[QPoint{e, q}] = len(f.pts)
			f.pts = append(f.pts, QPoint{e, q})
			f.coord = append(f.coord, kdtree.Point{x, y})
		}
	}
	return f
}

// radiusKeeper collects every candidate within a fixed squared radius,
// per the standard gonum kdtree pattern for bounded-radius search: Max
// always returns the search radius squared so NearestSet prunes any
// subtree that cannot contain a closer point, and Keep records every
// candidate actually within that bound.
type radiusKeeper struct {
	r2  float64
	hit []kdtree.ComparableDist
}

func (k *radiusKeeper) Keep(cd kdtree.ComparableDist) {
	if cd.Dist <= k.r2 {
		k.hit = append(k.hit, cd)
	}
}
func (k *radiusKeeper) Max() float64 { return k.r2 }

// speedTable precomputes the full adjacency list once, over a kd-tree,
// built against a single fixed radius shared by every material group
// (NewAssembler's maxSearchR union). ForEach still takes a per-call radius
// so it can serve a group whose own radius is smaller than that union
// without rebuilding the table, as long as that radius never exceeds the
// one the table was built with.
type speedTable struct {
	f      *flatten
	tree   *kdtree.Tree
	adj    map[QPoint][]QPoint
	radius float64
}

// NewSpeedNeighborTable builds a kd-tree over every quadrature node and
// materializes each node's radius-r neighbor list up front. Costs O(n)
// extra memory for the adjacency lists, paid once, in exchange for O(1)
// lookups during assembly and post-processing.
func NewSpeedNeighborTable(mp *MeshProxy, radius float64) *speedTable {
	f := newFlatten(mp)
	t := kdtree.New(f.coord, false)
	o := &speedTable{f: f, tree: t, adj: make(map[QPoint][]QPoint, len(f.pts)), radius: radius}
	r2 := radius * radius
	for i, p := range f.pts {
		keeper := &radiusKeeper{r2: r2}
		t.NearestSet(keeper, f.coord[i])
		list := make([]QPoint, 0, len(keeper.hit))
		for _, cd := range keeper.hit {
			j := indexOfPoint(f, cd.Comparable.(kdtree.Point))
			list = append(list, f.pts[j])
		}
		o.adj[p] = list
	}
	return o
}

func indexOfPoint(f *flatten, pt kdtree.Point) int {
	for i, c := range f.coord {
		if c[0] == pt[0] && c[1] == pt[1] {
			return i
		}
	}
	return -1
}

// ForEach filters the precomputed adjacency list down to the caller's own
// radius r, which must not exceed the radius the table was built with —
// a group configured with a tighter radius than the shared table must not
// see neighbors beyond it, even though the table's own kd-tree search
// already discarded everything past the wider union radius.
func (o *speedTable) ForEach(e, q int, r float64, fn func(e2, q2 int, dist float64)) {
	if r > o.radius {
		chk.Panic("speedTable.ForEach: requested radius %g exceeds table radius %g", r, o.radius)
	}
	p := QPoint{e, q}
	x0 := o.f.coord[o.f.index[p]]
	for _, p2 := range o.adj[p] {
		x1 := o.f.coord[o.f.index[p2]]
		dx, dy := x0[0]-x1[0], x0[1]-x1[1]
		d := math.Sqrt(dx*dx + dy*dy)
		if d > r {
			continue
		}
		fn(p2.E, p2.Q, d)
	}
}

// memoryTable builds the same kd-tree but queries it fresh on every call
// instead of caching the adjacency list, trading CPU for memory.
type memoryTable struct {
	f    *flatten
	tree *kdtree.Tree
}

// NewMemoryNeighborTable builds a kd-tree over every quadrature node
// without precomputing neighbor lists; ForEach streams candidates
// straight out of the tree.
func NewMemoryNeighborTable(mp *MeshProxy) *memoryTable {
	f := newFlatten(mp)
	return &memoryTable{f: f, tree: kdtree.New(f.coord, false)}
}

func (o *memoryTable) ForEach(e, q int, r float64, fn func(e2, q2 int, dist float64)) {
	i := o.f.index[QPoint{e, q}]
	keeper := &radiusKeeper{r2: r * r}
	o.tree.NearestSet(keeper, o.f.coord[i])
	for _, cd := range keeper.hit {
		j := indexOfPoint(o.f, cd.Comparable.(kdtree.Point))
		p2 := o.f.pts[j]
		fn(p2.E, p2.Q, math.Sqrt(cd.Dist))
	}
}

// bruteTable scans every quadrature node pair directly, O(n^2) per query.
// Used only for small meshes (Balancing == NO), where building a tree
// isn't worth it and deterministic, allocation-free iteration aids tests.
type bruteTable struct {
	f *flatten
}

// NewBruteNeighborTable builds the plain O(n) point list with no tree.
func NewBruteNeighborTable(mp *MeshProxy) *bruteTable {
	return &bruteTable{f: newFlatten(mp)}
}

func (o *bruteTable) ForEach(e, q int, r float64, fn func(e2, q2 int, dist float64)) {
	i := o.f.index[QPoint{e, q}]
	x0 := o.f.coord[i]
	for j, x1 := range o.f.coord {
		dx, dy := x0[0]-x1[0], x0[1]-x1[1]
		d := math.Sqrt(dx*dx + dy*dy)
		if d <= r {
			p2 := o.f.pts[j]
			fn(p2.E, p2.Q, d)
		}
	}
}

// NewNeighborTable selects an implementation per the simulation's
// Balancing config (spec §6): SPEED precomputes adjacency over a
// kd-tree, MEMORY queries the same kd-tree on demand, NO brute-forces.
func NewNeighborTable(mp *MeshProxy, sim *inp.Simulation, radius float64) NeighborTable {
	switch sim.Balancing {
	case inp.SPEED:
		return NewSpeedNeighborTable(mp, radius)
	case inp.MEMORY:
		return NewMemoryNeighborTable(mp)
	default:
		return NewBruteNeighborTable(mp)
	}
}
