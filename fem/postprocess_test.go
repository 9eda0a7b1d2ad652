// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"testing"

	"github.com/KMI020908/nonlocal/inp"
)

// Test_PostProcessRoundTrip exercises spec §8 property #6: projecting a
// linear field's nodal values down to quadrature gradients and lumping
// them back up to nodes must recover the exact constant gradient (a,b),
// since the lumped L2 projection of a constant field reproduces it
// exactly (partition of unity).
func Test_PostProcessRoundTrip(tst *testing.T) {
	mesh := buildUnitSquareMesh(3)
	a, b, c := 2.0, -3.0, 1.5
	u := make([]float64, len(mesh.Verts))
	for _, v := range mesh.Verts {
		u[v.Id] = a*v.C[0] + b*v.C[1] + c
	}

	matdb := scalarMatDb(1.0, "", 0)
	mp, err := NewMeshProxy(mesh, matdb)
	if err != nil {
		tst.Fatalf("mesh proxy: %v", err)
	}
	sim := &inp.Simulation{Problem: inp.Scalar, Mesh: mesh, MatDb: matdb}
	asm, err := NewAssembler(sim, mp)
	if err != nil {
		tst.Fatalf("assembler: %v", err)
	}
	asm.BuildDofMap()

	pp := NewPostProcessor(asm)
	field, err := pp.ProcessScalar(0, u)
	if err != nil {
		tst.Fatalf("postprocess: %v", err)
	}
	for v := range mesh.Verts {
		if math.Abs(field.Gradient[v][0]-a) > 1e-10 {
			tst.Fatalf("node %d: grad_x=%g, want %g", v, field.Gradient[v][0], a)
		}
		if math.Abs(field.Gradient[v][1]-b) > 1e-10 {
			tst.Fatalf("node %d: grad_y=%g, want %g", v, field.Gradient[v][1], b)
		}
	}

	field2, err := pp.ProcessScalar(0, u)
	if err != nil {
		tst.Fatalf("postprocess cached call: %v", err)
	}
	if field2 != field {
		tst.Fatalf("ProcessScalar with the same generation must return the cached result")
	}
}
