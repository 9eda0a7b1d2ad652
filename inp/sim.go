// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"

	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// Balancing selects the neighborhood engine's memory/speed tradeoff (spec §6).
type Balancing string

const (
	SPEED  Balancing = "SPEED"
	MEMORY Balancing = "MEMORY"
	NO     Balancing = "NO"
)

// Problem selects the physics: scalar heat conduction or plane mechanics.
type Problem string

const (
	Scalar     Problem = "scalar"
	Mechanical Problem = "mechanical"
)

// FuncDef is one named analytic function entry in the simulation's function
// table, decoded into a gosl/fun.Func via fun.NewFuncExpr-style dispatch.
type FuncDef struct {
	Name   string   `json:"name"`
	Type   string   `json:"type"` // "cte" (or empty), "affine" or "radial_quadratic"
	Prms   fun.Prms `json:"prms"`
	Expr   string   `json:"expr"` // decoded but not read by newFunc; "expr" is not an accepted Type
}

// Simulation is the top-level JSON-decoded configuration (spec §6).
type Simulation struct {
	Desc       string    `json:"desc"`
	MeshFile   string    `json:"meshFile"`
	MatDbFile  string    `json:"matDbFile"`
	DirOut     string    `json:"dirOut"`
	Key        string    `json:"key"`
	Problem    Problem   `json:"problem"`
	Pstress    bool      `json:"pstress"` // mechanical: plane-stress vs plane-strain
	Balancing  Balancing `json:"balancing"`
	Functions  []*FuncDef      `json:"functions"`
	Boundaries []*BoundaryCond `json:"boundaries"`
	SourceName string          `json:"source"`           // optional scalar-problem body load, by function name
	DeltaTName string          `json:"deltaTemperature"` // optional mechanical thermal-load field, by function name

	// derived
	Mesh    *Mesh
	MatDb   *MatDb
	Source  fun.Func
	DeltaT  fun.Func
	name2fn map[string]fun.Func
	tag2bc  map[int]*BoundaryCond
}

// ReadSim reads the simulation file and the mesh/material files it
// references, resolving boundary-condition functions and indexing
// materials/boundaries. Fails fast with a Configuration-kind error.
func ReadSim(dir, fn string) (*Simulation, error) {
	fp := io.Sf("%s/%s", dir, fn)
	b, err := io.ReadFile(fp)
	if err != nil {
		return nil, ErrConfigf("cannot read simulation file %q: %v", fp, err)
	}
	var o Simulation
	if err := json.Unmarshal(b, &o); err != nil {
		return nil, ErrConfigf("cannot parse simulation file %q: %v", fp, err)
	}
	if o.MeshFile == "" {
		return nil, ErrConfigf("simulation %q: meshFile is required", fp)
	}
	if o.Problem != Scalar && o.Problem != Mechanical {
		return nil, ErrConfigf("simulation %q: problem must be %q or %q, got %q", fp, Scalar, Mechanical, o.Problem)
	}
	if o.Balancing == "" {
		o.Balancing = NO
	}

	o.Mesh, err = ReadMesh(dir, o.MeshFile)
	if err != nil {
		return nil, err
	}
	if o.MatDbFile != "" {
		o.MatDb, err = ReadMatDb(dir, o.MatDbFile)
		if err != nil {
			return nil, err
		}
	}

	o.name2fn = make(map[string]fun.Func)
	for _, fd := range o.Functions {
		f, err := newFunc(fd)
		if err != nil {
			return nil, err
		}
		o.name2fn[fd.Name] = f
	}

	if o.SourceName != "" {
		o.Source = o.name2fn[o.SourceName]
		if o.Source == nil {
			return nil, ErrConfigf("simulation %q: unknown source function %q", fp, o.SourceName)
		}
	}

	if o.DeltaTName != "" {
		o.DeltaT = o.name2fn[o.DeltaTName]
		if o.DeltaT == nil {
			return nil, ErrConfigf("simulation %q: unknown deltaTemperature function %q", fp, o.DeltaTName)
		}
	}

	o.tag2bc = make(map[int]*BoundaryCond)
	for _, bc := range o.Boundaries {
		if bc.FxName != "" {
			bc.Fx = o.name2fn[bc.FxName]
			if bc.Fx == nil {
				return nil, ErrConfigf("boundary %q: unknown function %q", bc.Name, bc.FxName)
			}
		}
		if bc.FyName != "" {
			bc.Fy = o.name2fn[bc.FyName]
			if bc.Fy == nil {
				return nil, ErrConfigf("boundary %q: unknown function %q", bc.Name, bc.FyName)
			}
		}
		o.tag2bc[bc.Tag] = bc
	}

	for _, c := range o.Mesh.Cells {
		c.SetFaceConds(o.tag2bc)
	}
	return &o, nil
}


// TagToMaterial resolves a cell's tag to its material-group parameters.
func (o *Simulation) TagToMaterial(tag int) (*Material, error) {
	if o.MatDb == nil {
		return nil, ErrConfigf("simulation: no material database loaded")
	}
	m := o.MatDb.GetByTag(tag)
	if m == nil {
		return nil, ErrConfigf("simulation: no material group with tag %d", tag)
	}
	return m, nil
}
