// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inp implements the input data model: the mesh container, the
// simulation/material configuration, and boundary-condition bookkeeping.
package inp

import (
	"encoding/json"
	"path/filepath"
	"sort"

	"github.com/KMI020908/nonlocal/shp"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Vert holds one mesh vertex: an index and a 2-D coordinate pair.
type Vert struct {
	Id int       `json:"id"`
	Tag int      `json:"tag"`
	C   []float64 `json:"c"`
}

// Cell holds one mesh element: an element-kind tag, its node incidence and
// any edge (face) boundary tags. Immutable once read.
type Cell struct {
	Id    int    `json:"id"`
	Tag   int    `json:"tag"`   // material-group tag (negative convention, as in the mesh file)
	Type  string `json:"type"`  // element kind, e.g. "tri3", "quad9" (shp.Kinds())
	Verts []int  `json:"verts"`
	FTags []int  `json:"ftags"` // per-edge boundary tag, 0 if none

	// derived
	Shp     *shp.Shape `json:"-"`
	FaceBcs FaceConds  `json:"-"`
}

// Mesh holds the full 2-D unstructured mesh: nodal coordinates, element
// incidence, and the derived tag maps every other component consumes.
type Mesh struct {
	Verts []*Vert `json:"verts"`
	Cells []*Cell `json:"cells"`

	FnamePath  string
	Xmin, Xmax float64
	Ymin, Ymax float64

	VertTag2verts map[int][]*Vert    // named boundary node groups
	CellTag2cells map[int][]*Cell    // named material groups
	FaceTag2cells map[int][]CellFaceId
	FaceTag2verts map[int][]int
	Ctype2cells   map[string][]*Cell
}

// CellFaceId identifies one (cell, local-face) pair.
type CellFaceId struct {
	C   *Cell
	Fid int
}

// ReadMesh reads and validates a JSON-encoded mesh file, resolving each
// cell's shape-function catalog entry. Returns a structured error (not nil)
// naming the problem, per spec §7's fail-fast mesh-error policy.
func ReadMesh(dir, fn string) (*Mesh, error) {
	var o Mesh
	o.FnamePath = filepath.Join(dir, fn)
	b, err := io.ReadFile(o.FnamePath)
	if err != nil {
		return nil, ErrMeshf("cannot read mesh file %q: %v", o.FnamePath, err)
	}
	if err := json.Unmarshal(b, &o); err != nil {
		return nil, ErrMeshf("cannot parse mesh file %q: %v", o.FnamePath, err)
	}
	if len(o.Verts) < 2 {
		return nil, ErrMeshf("mesh %q has too few vertices", o.FnamePath)
	}
	if len(o.Cells) < 1 {
		return nil, ErrMeshf("mesh %q has no cells", o.FnamePath)
	}

	o.Xmin, o.Ymin = o.Verts[0].C[0], o.Verts[0].C[1]
	o.Xmax, o.Ymax = o.Xmin, o.Ymin
	o.VertTag2verts = make(map[int][]*Vert)
	for i, v := range o.Verts {
		if v.Id != i {
			return nil, ErrMeshf("mesh %q: vertex id %d out of order (expected %d)", o.FnamePath, v.Id, i)
		}
		if len(v.C) != 2 {
			return nil, ErrMeshf("mesh %q: vertex %d must have 2 coordinates", o.FnamePath, v.Id)
		}
		if v.Tag < 0 {
			o.VertTag2verts[v.Tag] = append(o.VertTag2verts[v.Tag], v)
		}
		o.Xmin, o.Xmax = utl.Min(o.Xmin, v.C[0]), utl.Max(o.Xmax, v.C[0])
		o.Ymin, o.Ymax = utl.Min(o.Ymin, v.C[1]), utl.Max(o.Ymax, v.C[1])
	}

	o.CellTag2cells = make(map[int][]*Cell)
	o.FaceTag2cells = make(map[int][]CellFaceId)
	o.FaceTag2verts = make(map[int][]int)
	o.Ctype2cells = make(map[string][]*Cell)
	for i, c := range o.Cells {
		if c.Id != i {
			return nil, ErrMeshf("mesh %q: cell id %d out of order (expected %d)", o.FnamePath, c.Id, i)
		}
		o.CellTag2cells[c.Tag] = append(o.CellTag2cells[c.Tag], c)
		for fid, ftag := range c.FTags {
			if ftag < 0 {
				o.FaceTag2cells[ftag] = append(o.FaceTag2cells[ftag], CellFaceId{c, fid})
				for _, l := range shp.GetFaceLocalVerts(c.Type, fid) {
					o.FaceTag2verts[ftag] = appendUnique(o.FaceTag2verts[ftag], c.Verts[l])
				}
			}
		}
		o.Ctype2cells[c.Type] = append(o.Ctype2cells[c.Type], c)
		c.Shp = shp.Get(c.Type, 0)
		if c.Shp == nil {
			return nil, ErrMeshf("mesh %q: cell %d has unknown element kind %q", o.FnamePath, c.Id, c.Type)
		}
	}
	return &o, nil
}

func appendUnique(s []int, v int) []int {
	if utl.IntIndexSmall(s, v) >= 0 {
		return s
	}
	s = append(s, v)
	sort.Ints(s)
	return s
}

// Coords returns the physical coordinates of cell c's nodes as a
// [ndim][nverts] matrix (the layout shp.Shape.CalcAtIp expects).
func (o *Mesh) Coords(c *Cell) [][]float64 {
	x := [][]float64{make([]float64, len(c.Verts)), make([]float64, len(c.Verts))}
	for i, vid := range c.Verts {
		x[0][i] = o.Verts[vid].C[0]
		x[1][i] = o.Verts[vid].C[1]
	}
	return x
}

// NumNodes returns the number of mesh vertices (nodes).
func (o *Mesh) NumNodes() int { return len(o.Verts) }
