// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "github.com/cpmech/gosl/la"

// LinearSolver is the injected collaborator that factors and solves the
// assembled free-free system K·u = f (spec §2's "external collaborator,
// no concrete binding" — production drivers wire a real sparse solver;
// DenseSolver below is a small, dependency-free default good enough for
// test meshes and patch-test scenarios).
type LinearSolver interface {
	Init(K *SparseMatrix) error
	Solve(f []float64) (u []float64, err error)
}

// DenseSolver converts K to a dense matrix and solves by Gaussian
// elimination with partial pivoting. Quadratic memory in NFree; not
// meant for production-sized meshes, only for the core's own tests and
// scenarios where a real sparse solver isn't wired in.
type DenseSolver struct {
	n int
	a [][]float64
}

func (o *DenseSolver) Init(K *SparseMatrix) error {
	if K.NRows != K.NCols {
		return Numericalf("densesolver: K must be square, got %dx%d", K.NRows, K.NCols)
	}
	o.n = K.NRows
	o.a = la.MatAlloc(o.n, o.n)
	for k := range K.I {
		i, j, v := K.I[k], K.J[k], K.X[k]
		o.a[i][j] += v
		if i != j {
			o.a[j][i] += v // K is stored lower-triangular only; mirror it
		}
	}
	return nil
}

// Solve runs Gaussian elimination with partial pivoting on a fresh copy
// of the factored matrix (no factorization is cached; each call re-
// eliminates, trading speed for simplicity).
func (o *DenseSolver) Solve(f []float64) (u []float64, err error) {
	n := o.n
	if len(f) != n {
		return nil, Numericalf("densesolver: rhs length %d does not match system size %d", len(f), n)
	}
	a := la.MatAlloc(n, n)
	for i := 0; i < n; i++ {
		copy(a[i], o.a[i])
	}
	b := make([]float64, n)
	copy(b, f)

	for col := 0; col < n; col++ {
		piv := col
		best := a[col][col]
		if best < 0 {
			best = -best
		}
		for r := col + 1; r < n; r++ {
			v := a[r][col]
			if v < 0 {
				v = -v
			}
			if v > best {
				piv, best = r, v
			}
		}
		if best == 0 {
			return nil, Numericalf("densesolver: singular system at column %d", col)
		}
		if piv != col {
			a[col], a[piv] = a[piv], a[col]
			b[col], b[piv] = b[piv], b[col]
		}
		for r := col + 1; r < n; r++ {
			f := a[r][col] / a[col][col]
			if f == 0 {
				continue
			}
			for c := col; c < n; c++ {
				a[r][c] -= f * a[col][c]
			}
			b[r] -= f * b[col]
		}
	}
	u = make([]float64, n)
	for row := n - 1; row >= 0; row-- {
		s := b[row]
		for c := row + 1; c < n; c++ {
			s -= a[row][c] * u[c]
		}
		u[row] = s / a[row][row]
	}
	return u, nil
}
