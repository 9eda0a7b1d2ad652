// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"sort"

	"github.com/KMI020908/nonlocal/shp"

	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/utl"
)

// Boundary condition kinds (spec §6).
const (
	TEMPERATURE  = "TEMPERATURE"
	FLUX         = "FLUX"
	TRANSLATION  = "TRANSLATION"
	FORCE        = "FORCE"
)

// BoundaryCond is one named boundary group's condition: a kind plus one
// (scalar problems) or two (mechanical) component functions of (x,y),
// referenced by name into the simulation's function table.
type BoundaryCond struct {
	Name    string `json:"name"`
	Tag     int    `json:"tag"`  // matches a mesh face tag
	Kind    string `json:"kind"` // TEMPERATURE, FLUX, TRANSLATION or FORCE
	FxName  string `json:"fx"`   // scalar value, or x-component
	FyName  string `json:"fy"`   // y-component (TRANSLATION/FORCE only)

	Fx, Fy fun.Func `json:"-"` // resolved by Simulation.resolveBoundaries
}

// FaceCond binds one boundary condition to the concrete (cell, face)
// geometry it applies to, mirroring the teacher's FaceCond/FaceConds shape.
type FaceCond struct {
	FaceId      int
	LocalVerts  []int
	GlobalVerts []int
	Kind        string
	Fx, Fy      fun.Func
}

// FaceConds holds every face boundary condition of one cell.
type FaceConds []*FaceCond

// GetVerts returns, in ascending order, every global vertex id touched by
// any condition of the given kinds.
func (o FaceConds) GetVerts(kinds ...string) (verts []int) {
	for _, fc := range o {
		if utl.StrIndexSmall(kinds, fc.Kind) < 0 {
			continue
		}
		for _, v := range fc.GlobalVerts {
			if utl.IntIndexSmall(verts, v) < 0 {
				verts = append(verts, v)
			}
		}
	}
	sort.Ints(verts)
	return
}

// SetFaceConds attaches boundary conditions to a cell's tagged edges, given
// the simulation's tag => condition lookup.
func (c *Cell) SetFaceConds(tag2bc map[int]*BoundaryCond) {
	c.FaceBcs = nil
	for faceId, ftag := range c.FTags {
		if ftag >= 0 {
			continue
		}
		bc := tag2bc[ftag]
		if bc == nil {
			continue
		}
		lverts := shp.GetFaceLocalVerts(c.Type, faceId)
		gverts := make([]int, len(lverts))
		for i, l := range lverts {
			gverts[i] = c.Verts[l]
		}
		c.FaceBcs = append(c.FaceBcs, &FaceCond{faceId, lverts, gverts, bc.Kind, bc.Fx, bc.Fy})
	}
}
