// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package collision declares the narrow contract the locomotion core
// consumes from the host engine's collision system: a single downward
// test (ray- or shapecast) and its hit list. The collision system itself
// — broadphase, narrowphase, shape queries — is out of scope; this
// package only shapes the result the core reads.
package collision

import "github.com/quill3d/locomotion/math32"

// Contact is one hit reported by a TestHandle, modeled on the
// distance/normal pair a raycast intersection carries.
type Contact struct {
	// Distance is the hit fraction in [0,1] of the test's Direction.
	Distance float32
	Normal   math32.Vector3
}

// TestHandle is a borrowed reference to a collision test the host engine
// has already executed (typically once per frame, before the locomotion
// core's post-physics step runs). The core never owns or schedules the
// test itself.
type TestHandle interface {
	// Origin is the world-space point the test was cast from.
	Origin() math32.Vector3
	// Direction is the world-space cast vector (not normalized: its
	// length multiplies Contact.Distance to produce a world distance).
	Direction() math32.Vector3
	// InfoCount is the number of hits recorded, 0 for a clean miss.
	InfoCount() int
	// Info returns the hit at index i. i must be < InfoCount().
	Info(i int) Contact
}
