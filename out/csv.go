// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"

	"github.com/KMI020908/nonlocal/inp"

	"github.com/cpmech/gosl/io"
)

// WriteCSV dumps one node-indexed column table: x,y followed by one column
// per named field, in the style of tools/PlotLrm.go's buffer-then-
// io.WriteFile pattern.
func WriteCSV(fnpath string, mesh *inp.Mesh, columns []Scalars) {
	var buf bytes.Buffer
	io.Ff(&buf, "x,y")
	for _, c := range columns {
		io.Ff(&buf, ",%s", c.Name)
	}
	io.Ff(&buf, "\n")
	for i, v := range mesh.Verts {
		io.Ff(&buf, "%23.15e,%23.15e", v.C[0], v.C[1])
		for _, c := range columns {
			io.Ff(&buf, ",%23.15e", c.Vals[i])
		}
		io.Ff(&buf, "\n")
	}
	io.WriteFile(fnpath, &buf)
}
