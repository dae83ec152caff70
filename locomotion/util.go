// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package locomotion

import (
	"math"

	"github.com/quill3d/locomotion/math32"
)

func log2f32(v float32) float32 {
	return float32(math.Log2(float64(v)))
}

func absf32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func signf32(v float32) float32 {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}

// normalize360 folds v into [0, 360).
func normalize360(v float32) float32 {
	v = math32.Mod(v, 360)
	if v < 0 {
		v += 360
	}
	return v
}

// normalizeSigned180 folds v into [-180, 180].
func normalizeSigned180(v float32) float32 {
	v = math32.Mod(v+180, 360)
	if v < 0 {
		v += 360
	}
	return v - 180
}
