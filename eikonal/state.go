// Copyright 2024 The eik3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eikonal

// VertexState is the label-setting state of a vertex: states move
// monotonically FAR -> TRIAL -> VALID; SHADOW is a terminal non-VALID
// state set externally (obstruction shadowing) that the scheduler never
// assigns itself.
type VertexState int

const (
	Far VertexState = iota
	Trial
	Valid
	Shadow
)

func (s VertexState) String() string {
	switch s {
	case Far:
		return "FAR"
	case Trial:
		return "TRIAL"
	case Valid:
		return "VALID"
	case Shadow:
		return "SHADOW"
	default:
		return "UNKNOWN"
	}
}
