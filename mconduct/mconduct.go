// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mconduct implements the thermal conductivity constitutive model
// used by the scalar (heat) assembler: a 2x2 conductivity tensor, built
// from either an isotropic scalar or explicit tensor entries.
package mconduct

import "github.com/cpmech/gosl/chk"

// Model holds a constant conductivity tensor C (2x2, symmetric).
//
//	q = -C · ∇u
type Model struct {
	C [2][2]float64
}

// Init builds an isotropic model from a scalar conductivity k.
func (o *Model) Init(k float64) error {
	if k <= 0 {
		return chk.Err("mconduct: conductivity must be positive, got %g", k)
	}
	o.C = [2][2]float64{{k, 0}, {0, k}}
	return nil
}

// InitTensor builds an anisotropic model from explicit tensor entries
// kxx, kxy, kyy (symmetric 2x2 tensor).
func (o *Model) InitTensor(kxx, kxy, kyy float64) error {
	det := kxx*kyy - kxy*kxy
	if det <= 0 || kxx <= 0 {
		return chk.Err("mconduct: conductivity tensor must be positive-definite, got [%g %g; %g %g]", kxx, kxy, kxy, kyy)
	}
	o.C = [2][2]float64{{kxx, kxy}, {kxy, kyy}}
	return nil
}

// Flux computes q = -C·gradU at one quadrature node.
func (o *Model) Flux(gradU []float64) (q [2]float64) {
	q[0] = -(o.C[0][0]*gradU[0] + o.C[0][1]*gradU[1])
	q[1] = -(o.C[1][0]*gradU[0] + o.C[1][1]*gradU[1])
	return
}
