// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fem implements the nonlocal finite-element core: the mesh proxy
// (geometry cache), the neighborhood engine, the sparsity analyzer, the
// Cuthill-McKee reordering, the stiffness assembler, the boundary-condition
// applier and the flux/strain post-processor.
package fem

import "github.com/KMI020908/nonlocal/inp"

// Error is the structured error every fail-fast path in the core returns,
// re-exporting inp's Kind taxonomy so callers only ever see fem.Error.
type Error = inp.Error

// Error kinds (spec §7).
const (
	ErrConfig    = inp.ErrConfig
	ErrMesh      = inp.ErrMesh
	ErrParameter = inp.ErrParameter
	ErrNumerical = inp.ErrNumerical
)

// Configf, Meshf, Parameterf and Numericalf build a Kind-tagged error.
func Configf(format string, a ...interface{}) error    { return inp.ErrConfigf(format, a...) }
func Meshf(format string, a ...interface{}) error      { return inp.ErrMeshf(format, a...) }
func Parameterf(format string, a ...interface{}) error { return inp.ErrParameterf(format, a...) }
func Numericalf(format string, a ...interface{}) error { return inp.ErrNumericalf(format, a...) }
