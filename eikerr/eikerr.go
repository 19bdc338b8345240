// Copyright 2024 The eik3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package eikerr defines the error values the eikonal solver distinguishes
// between: soft, per-candidate conditions that the update cascade absorbs
// silently, and fatal invariant violations that indicate a broken caller
// contract and are raised by panic, the same way the teacher corpus's
// chk.Panic/utl.Panic mark unrecoverable conditions.
package eikerr

import (
	"errors"
	"fmt"
)

// ErrDegenerate is returned by a local update when its base simplex is
// degenerate (coplanar 4-tuple or zero-area face). Non-fatal: the update
// cascade simply discards this candidate.
var ErrDegenerate = errors.New("eik3: degenerate update (coplanar base simplex)")

// ErrNonConvergent is returned when the face-update Newton iteration
// exhausts its iteration budget outside the degenerate branch. Non-fatal:
// the best iterate found is kept and the occurrence is counted.
var ErrNonConvergent = errors.New("eik3: face update did not converge within MaxNewtonIter")

// InvariantError reports a broken solver invariant: a caller contract
// violation such as a duplicate AddValid over a TRIAL vertex, or a VALID
// vertex observed with infinite arrival time. These are fatal: the
// scheduler panics with an InvariantError rather than returning it, since
// continuing would silently violate monotone acceptance.
type InvariantError struct {
	Vertex int
	Msg    string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("eik3: invariant violated at vertex %d: %s", e.Vertex, e.Msg)
}

// Raise panics with an InvariantError. Callers that want to recover this
// into a regular error wrap the call in a deferred recover, exactly as
// the teacher corpus's tests recover from chk.Panic.
func Raise(vertex int, format string, a ...interface{}) {
	panic(&InvariantError{Vertex: vertex, Msg: fmt.Sprintf(format, a...)})
}
