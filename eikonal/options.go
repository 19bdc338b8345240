// Copyright 2024 The eik3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eikonal

// Options holds the tunable numerical parameters of the face update's
// projected-Newton iteration, following the teacher's habit (see
// msolid.Driver) of exposing tunables as public, documented fields with a
// constructor that fills in the defaults.
type Options struct {
	MaxNewtonIter int     // Newton iteration budget before non-convergence is declared
	ArmijoC1      float64 // Armijo sufficient-decrease constant
	ArmijoShrink  float64 // backtracking shrink factor
	ArmijoAtol    float64 // absolute tolerance added to the Armijo test
	LagrangeTol   float64 // |multiplier| below which a constraint is considered inactive
	TieBreakTol   float64 // absolute tolerance for adjacent-face tie-breaking
	CoplanarTol   float64 // relative tolerance for the coplanarity degeneracy test
}

// DefaultOptions returns the option set the spec's constants describe.
func DefaultOptions() Options {
	return Options{
		MaxNewtonIter: 100,
		ArmijoC1:      1e-4,
		ArmijoShrink:  0.9,
		ArmijoAtol:    1e-15,
		LagrangeTol:   1e-15,
		TieBreakTol:   1e-15,
		CoplanarTol:   1e-12,
	}
}

// Stats counts non-fatal events observed during a solve: accepted
// vertices, degenerate candidates skipped, non-convergent candidates
// kept at their best iterate, and the largest Newton iteration count
// observed on any single candidate. Spec §7 requires these be "recorded
// as a counter, not an exception" — plain fields, no metrics library is
// wired here (see DESIGN.md).
type Stats struct {
	Accepted          int
	Degenerate        int
	NonConvergent     int
	MaxNewtonObserved int
}

// Logger receives optional progress/diagnostic messages from the solver.
// Library code never requires one: the zero value (nil) means "discard".
// cmd/eik3solve wires a Logger that calls gosl/utl's colored Pf family,
// mirroring how msolid.Driver.Silent gates the teacher's own utl.Pf calls.
type Logger interface {
	Logf(format string, a ...interface{})
}
