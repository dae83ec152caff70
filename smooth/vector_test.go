// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smooth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quill3d/locomotion/math32"
)

func TestVector_ZeroDtLeavesValueUnchanged(t *testing.T) {
	var v Vector
	v.SetAdjustTime(0.5)
	v.SetAdjustRange(10)
	v.SetGoal(*math32.NewVector3(1, 2, 3))
	v.Update(0)
	assert.Equal(t, math32.Vector3{}, v.Value())
}

func TestVector_AdjustTimeZeroSnaps(t *testing.T) {
	var v Vector
	goal := *math32.NewVector3(1, 2, 3)
	v.SetGoal(goal)
	v.Update(0.1)
	assert.Equal(t, goal, v.Value())
}

func TestVector_ApproachesGoal(t *testing.T) {
	var v Vector
	v.SetAdjustTime(0.3)
	v.SetAdjustRange(1000)
	v.SetGoal(*math32.NewVector3(10, 0, 0))
	for i := 0; i < 50; i++ {
		v.Update(0.05)
	}
	assert.InDelta(t, 10, v.Value().X, 0.05)
}
