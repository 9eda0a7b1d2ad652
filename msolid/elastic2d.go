// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package msolid implements the mechanical constitutive model: plane-stress
// or plane-strain linear elasticity with an optional thermal eigenstrain.
package msolid

import "github.com/cpmech/gosl/chk"

// Elastic2D is plane-stress/plane-strain linear elasticity with thermal
// expansion, grounded on the constitutive block of spec §4.6/§6.
type Elastic2D struct {
	E       float64 // Young's modulus
	Nu      float64 // Poisson's ratio
	Alpha   float64 // thermal expansion coefficient
	Pstress bool    // true: plane stress; false: plane strain
}

// Init sets up the model from its physical parameters.
func (o *Elastic2D) Init(E, nu, alpha float64, pstress bool) error {
	if E <= 0 {
		return chk.Err("msolid: E must be positive, got %g", E)
	}
	if nu <= -1 || nu >= 0.5 {
		return chk.Err("msolid: nu must be in (-1, 0.5), got %g", nu)
	}
	o.E, o.Nu, o.Alpha, o.Pstress = E, nu, alpha, pstress
	return nil
}

// CalcD fills the 3x3 constitutive matrix D relating {σxx,σyy,σxy} to
// {εxx,εyy,γxy} (engineering shear strain), per spec §4.6's coeff list.
func (o Elastic2D) CalcD(D [][]float64) (err error) {
	E, ν := o.E, o.Nu
	var c0, c1, c2 float64
	if o.Pstress {
		c0 = E / (1 - ν*ν)
		c1 = ν * c0
		c2 = E / (2 * (1 + ν))
	} else {
		c0 = E * (1 - ν) / ((1 + ν) * (1 - 2*ν))
		c1 = ν * E / ((1 + ν) * (1 - 2*ν))
		c2 = E / (2 * (1 + ν))
	}
	D[0][0], D[0][1], D[0][2] = c0, c1, 0
	D[1][0], D[1][1], D[1][2] = c1, c0, 0
	D[2][0], D[2][1], D[2][2] = 0, 0, c2
	return
}

// ThermalStrain returns the isotropic thermal eigenstrain {εxx,εyy,γxy}
// for a temperature change ΔT: ε_th = α·ΔT·{1,1,0}.
func (o Elastic2D) ThermalStrain(deltaT float64) [3]float64 {
	return [3]float64{o.Alpha * deltaT, o.Alpha * deltaT, 0}
}
