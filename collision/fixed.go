// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collision

import "github.com/quill3d/locomotion/math32"

// Fixed is a TestHandle backed by a static origin/direction/hit list. It
// exists for tests and for simple embedding applications that pre-compute
// their collision tests synchronously before driving the locomotion core;
// a real engine would back TestHandle with its own raycast/shapecast result.
type Fixed struct {
	origin    math32.Vector3
	direction math32.Vector3
	hits      []Contact
}

// NewFixed creates a Fixed test handle with the given origin, direction and
// recorded hits (nil/empty means a clean miss).
func NewFixed(origin, direction math32.Vector3, hits ...Contact) *Fixed {
	return &Fixed{origin: origin, direction: direction, hits: hits}
}

func (f *Fixed) Origin() math32.Vector3    { return f.origin }
func (f *Fixed) Direction() math32.Vector3 { return f.direction }
func (f *Fixed) InfoCount() int            { return len(f.hits) }
func (f *Fixed) Info(i int) Contact        { return f.hits[i] }

// SetHits replaces the recorded hits, e.g. to simulate a new frame's cast.
func (f *Fixed) SetHits(hits ...Contact) {
	f.hits = hits
}
