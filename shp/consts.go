// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// MinDet is the minimum |det J| accepted before a Jacobian is considered
// degenerate (mirrors shp.MINDET from the original shape package).
const MinDet = 1.0e-14

// CubicSerendipityP is the default shape parameter for the QUAD12 basis.
// It is the value of the integral, over the reference element, of a corner
// basis function; p=-1/2 recovers the classical cubic serendipity element
// while avoiding negative values at the corner nodes.
const CubicSerendipityP = -0.5
