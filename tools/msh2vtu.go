// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

// msh2vtu converts a mesh file to a .vtu unstructured grid with no
// solution fields, for inspecting mesh geometry alone. The full
// nodal-field export lives in the out package, used by the nonlocal
// driver after a solve.
package main

import (
	"github.com/KMI020908/nonlocal/inp"
	"github.com/KMI020908/nonlocal/out"

	"github.com/cpmech/gosl/io"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	var mshfn, fnkey string
	mshfn, fnkey = io.ArgToFilename(0, "data/d2-coarse", ".msh", true)
	io.Pf("\n%v\n", io.ArgsTable("mesh filename", "mshfn", mshfn))

	dir, fn := splitPath(mshfn)
	mesh, err := inp.ReadMesh(dir, fn)
	if err != nil {
		io.PfRed("cannot read mesh:\n%v", err)
		return
	}
	out.WriteVTK("/tmp/nonlocal", fnkey, mesh, nil, nil)
}

func splitPath(fnamepath string) (dir, fn string) {
	for i := len(fnamepath) - 1; i >= 0; i-- {
		if fnamepath[i] == '/' {
			return fnamepath[:i], fnamepath[i+1:]
		}
	}
	return "", fnamepath
}
