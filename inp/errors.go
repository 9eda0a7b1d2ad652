// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import "fmt"

// Kind tags the category of a structured core error (spec §7's taxonomy).
// Declared in inp (the lowest-level package with fail-fast checks) and
// re-exported by fem, which every other package's caller ultimately sees.
type Kind int

const (
	ErrConfig Kind = iota
	ErrMesh
	ErrParameter
	ErrNumerical
)

func (k Kind) String() string {
	switch k {
	case ErrConfig:
		return "config"
	case ErrMesh:
		return "mesh"
	case ErrParameter:
		return "parameter"
	case ErrNumerical:
		return "numerical"
	}
	return "unknown"
}

// Error is the structured error every fail-fast path in the core returns.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return fmt.Sprintf("[%s] %s", e.Kind, e.Msg) }

func newErr(k Kind, format string, a ...interface{}) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, a...)}
}

// ErrConfigf builds a Configuration-kind error.
func ErrConfigf(format string, a ...interface{}) *Error { return newErr(ErrConfig, format, a...) }

// ErrMeshf builds a Mesh-kind error.
func ErrMeshf(format string, a ...interface{}) *Error { return newErr(ErrMesh, format, a...) }

// ErrParameterf builds a Parameter-kind error.
func ErrParameterf(format string, a ...interface{}) *Error { return newErr(ErrParameter, format, a...) }

// ErrNumericalf builds a Numerical-kind error.
func ErrNumericalf(format string, a ...interface{}) *Error { return newErr(ErrNumerical, format, a...) }
