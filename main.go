// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/KMI020908/nonlocal/fem"
	"github.com/KMI020908/nonlocal/inp"
	"github.com/KMI020908/nonlocal/out"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"
)

func main() {

	// catch errors
	exitCode := 0
	defer func() {
		if err := recover(); err != nil {
			if mpi.Rank() == 0 {
				chk.Verbose = true
				for i := 8; i > 3; i-- {
					chk.CallerInfo(i)
				}
				io.PfRed("ERROR: %v\n", err)
			}
			exitCode = 1
		}
		mpi.Stop(false)
		os.Exit(exitCode)
	}()
	mpi.Start(false)

	// input data
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	dir, fn := filepath.Split(fnamepath)

	if mpi.Rank() == 0 && verbose {
		io.PfWhite("\nnonlocal -- 2-D nonlocal finite-element solver\n\n")
		io.Pf("\n%v\n", io.ArgsTable(
			"simulation file", "fnamepath", fnamepath,
		))
	}

	sim, err := inp.ReadSim(dir, fn)
	if err != nil {
		chk.Panic("cannot read simulation:\n%v", err)
	}

	mp, err := fem.NewMeshProxy(sim.Mesh, sim.MatDb)
	if err != nil {
		chk.Panic("cannot build mesh proxy:\n%v", err)
	}

	asm, err := fem.NewAssembler(sim, mp)
	if err != nil {
		chk.Panic("cannot build assembler:\n%v", err)
	}
	asm.BuildDofMap()

	var K, Kb *fem.SparseMatrix
	switch sim.Problem {
	case inp.Scalar:
		K, Kb, err = asm.AssembleScalar()
	case inp.Mechanical:
		K, Kb, err = asm.AssembleMechanical()
	}
	if err != nil {
		chk.Panic("assembly failed:\n%v", err)
	}

	f, bv, err := asm.ApplyBoundaryConditions(Kb)
	if err != nil {
		chk.Panic("boundary-condition application failed:\n%v", err)
	}
	if sim.Source != nil {
		if err := asm.ApplyDomainSource(f, sim.Source); err != nil {
			chk.Panic("domain source application failed:\n%v", err)
		}
	}
	if sim.DeltaT != nil {
		if sim.Problem != inp.Mechanical {
			chk.Panic("deltaTemperature is only valid for mechanical problems")
		}
		if err := asm.ApplyThermalLoad(f, sim.DeltaT); err != nil {
			chk.Panic("thermal load application failed:\n%v", err)
		}
	}

	solver := new(fem.DenseSolver)
	if err := solver.Init(K); err != nil {
		chk.Panic("solver init failed:\n%v", err)
	}
	uFree, err := solver.Solve(f)
	if err != nil {
		chk.Panic("solve failed:\n%v", err)
	}
	u := asm.FullSolution(uFree, bv)

	dirout := sim.DirOut
	if dirout == "" {
		dirout = "/tmp/nonlocal"
	}
	key := sim.Key
	if key == "" {
		key = "out"
	}

	var scalars []out.Scalars
	var vectors []out.Vectors
	switch sim.Problem {
	case inp.Scalar:
		pp := fem.NewPostProcessor(asm)
		field, err := pp.ProcessScalar(0, u)
		if err != nil {
			chk.Panic("post-processing failed:\n%v", err)
		}
		uVals := u
		gradVals := make([][]float64, len(field.Gradient))
		fluxVals := make([][]float64, len(field.Flux))
		for i := range field.Gradient {
			gradVals[i] = []float64{field.Gradient[i][0], field.Gradient[i][1]}
			fluxVals[i] = []float64{field.Flux[i][0], field.Flux[i][1]}
		}
		scalars = []out.Scalars{{Name: "u", Vals: uVals}}
		vectors = []out.Vectors{{Name: "gradient", Vals: gradVals}, {Name: "flux", Vals: fluxVals}}
	case inp.Mechanical:
		pp := fem.NewPostProcessor(asm)
		field, err := pp.ProcessMechanical(0, u)
		if err != nil {
			chk.Panic("post-processing failed:\n%v", err)
		}
		ux := make([]float64, sim.Mesh.NumNodes())
		uy := make([]float64, sim.Mesh.NumNodes())
		for v := 0; v < sim.Mesh.NumNodes(); v++ {
			ux[v] = u[asm.DM.Dof(v, fem.X)]
			uy[v] = u[asm.DM.Dof(v, fem.Y)]
		}
		strainVals := make([][]float64, len(field.Strain))
		stressVals := make([][]float64, len(field.Stress))
		for i := range field.Strain {
			strainVals[i] = []float64{field.Strain[i][0], field.Strain[i][1], field.Strain[i][2]}
			stressVals[i] = []float64{field.Stress[i][0], field.Stress[i][1], field.Stress[i][2]}
		}
		scalars = []out.Scalars{{Name: "ux", Vals: ux}, {Name: "uy", Vals: uy}}
		vectors = []out.Vectors{{Name: "strain", Vals: strainVals}, {Name: "stress", Vals: stressVals}}
	}

	out.WriteVTK(dirout, key, sim.Mesh, scalars, vectors)
	out.WriteCSV(io.Sf("%s/%s.csv", dirout, key), sim.Mesh, scalars)

	if sim.Problem == inp.Scalar {
		integral := fem.DomainIntegral(mp, u, asm.DM, fem.SerialReducer{})
		if mpi.Rank() == 0 && verbose {
			io.Pf("\ndomain integral of solution = %g\n", integral)
		}
	}
}
