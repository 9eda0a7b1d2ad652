// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"

	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// MaxNonlocalWeight is the sentinel at or above which a material group's
// nonlocal assembly pass is skipped outright (spec §3/§6).
const MaxNonlocalWeight = 0.999

// NonlocalModel is a material group's nonlocal-extension configuration.
type NonlocalModel struct {
	Influence     string    `json:"influence"`     // kernel family name (kernel.New)
	InfluenceArgs fun.Prms  `json:"influenceArgs"` // kernel parameters, e.g. {a,b} for polynomial_2d
	LocalWeight   float64   `json:"localWeight"`   // p1 ∈ [0,1]
	NonlocalRadius []float64 `json:"nonlocalRadius"` // support radius; len 1 (isotropic) or 2 (per-axis)
	SearchRadius  []float64 `json:"searchRadius"`  // neighborhood search radius; defaults to NonlocalRadius
}

// IsLocal reports whether this model disables the nonlocal pass outright.
func (o *NonlocalModel) IsLocal() bool { return o.LocalWeight >= MaxNonlocalWeight }

// Radius returns the (isotropic) nonlocal radius, erroring on anisotropic
// radii (the core's neighborhood engine assumes a scalar radius; a 2-vector
// radius is accepted in config but must be isotropic until a future
// extension needs otherwise).
func (o *NonlocalModel) Radius() (float64, error) {
	switch len(o.NonlocalRadius) {
	case 0:
		return 0, ErrConfigf("materials: nonlocalRadius is required when localWeight < %g", MaxNonlocalWeight)
	case 1:
		return o.NonlocalRadius[0], nil
	case 2:
		if o.NonlocalRadius[0] != o.NonlocalRadius[1] {
			return 0, ErrConfigf("materials: anisotropic nonlocalRadius %v not supported", o.NonlocalRadius)
		}
		return o.NonlocalRadius[0], nil
	default:
		return 0, ErrConfigf("materials: nonlocalRadius must have length 1 or 2, got %d", len(o.NonlocalRadius))
	}
}

// SearchR returns the neighborhood search radius, defaulting to the
// nonlocal radius when unset (spec §6).
func (o *NonlocalModel) SearchR() (float64, error) {
	if len(o.SearchRadius) == 0 {
		return o.Radius()
	}
	return o.SearchRadius[0], nil
}

// Physical holds the per-material physical parameters for either the
// scalar (thermal) or mechanical problem.
type Physical struct {
	// thermal
	Conductivity    float64  `json:"conductivity"`
	ConductivityXY  *float64 `json:"conductivityXY"` // set together with Kyy for an anisotropic tensor
	ConductivityYY  *float64 `json:"conductivityYY"`

	// mechanical
	E                float64 `json:"E"`
	Nu               float64 `json:"nu"`
	ThermalExpansion float64 `json:"thermalExpansion"`
}

// Material is a named group of elements sharing physical parameters and a
// nonlocal model (spec §3).
type Material struct {
	Name     string        `json:"name"`
	Tag      int           `json:"tag"` // matches inp.Cell.Tag
	Model    NonlocalModel `json:"model"`
	Physical Physical      `json:"physical"`
}

// MatDb is the material database: every material group in the simulation.
type MatDb struct {
	Materials []*Material `json:"materials"`

	name2mat map[string]*Material
	tag2mat  map[int]*Material
}

// ReadMatDb reads and indexes a material database JSON file.
func ReadMatDb(dir, fn string) (*MatDb, error) {
	fp := io.Sf("%s/%s", dir, fn)
	b, err := io.ReadFile(fp)
	if err != nil {
		return nil, ErrConfigf("cannot read material database %q: %v", fp, err)
	}
	var o MatDb
	if err := json.Unmarshal(b, &o); err != nil {
		return nil, ErrConfigf("cannot parse material database %q: %v", fp, err)
	}
	o.index()
	for _, m := range o.Materials {
		if m.Model.LocalWeight < 0 || m.Model.LocalWeight > 1 {
			return nil, ErrConfigf("material %q: localWeight must be in [0,1], got %g", m.Name, m.Model.LocalWeight)
		}
		if !m.Model.IsLocal() {
			if _, err := m.Model.Radius(); err != nil {
				return nil, err
			}
		}
	}
	return &o, nil
}

// NewMatDb builds an already-indexed material database from in-memory
// material groups, the path used by programmatic callers (tests,
// scenario builders) that skip ReadMatDb's JSON file.
func NewMatDb(materials []*Material) *MatDb {
	db := &MatDb{Materials: materials}
	db.index()
	return db
}

func (o *MatDb) index() {
	o.name2mat = make(map[string]*Material)
	o.tag2mat = make(map[int]*Material)
	for _, m := range o.Materials {
		o.name2mat[m.Name] = m
		o.tag2mat[m.Tag] = m
	}
}

// Get returns the material named name, or nil.
func (o *MatDb) Get(name string) *Material { return o.name2mat[name] }

// GetByTag returns the material whose tag matches a cell's Tag, or nil.
func (o *MatDb) GetByTag(tag int) *Material { return o.tag2mat[tag] }
