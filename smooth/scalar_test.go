// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smooth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScalar_ZeroDtLeavesValueUnchanged(t *testing.T) {
	var s Scalar
	s.SetAdjustTime(0.5)
	s.SetAdjustRange(90)
	s.SetGoal(45)
	s.Update(0)
	assert.Equal(t, float32(0), s.Value())
}

func TestScalar_AdjustTimeZeroSnaps(t *testing.T) {
	var s Scalar
	s.SetGoal(45)
	s.Update(0.1)
	assert.Equal(t, float32(45), s.Value())
	assert.Equal(t, float32(0), s.ChangeSpeed())
}

func TestScalar_NeverOvershoots(t *testing.T) {
	var s Scalar
	s.SetAdjustTime(0.5)
	s.SetAdjustRange(1000)
	s.SetGoal(45)
	for i := 0; i < 50; i++ {
		before := s.Value()
		s.Update(0.1)
		after := s.Value()
		assert.True(t, after >= before && after <= 45, "value must approach goal monotonically without overshoot: before=%v after=%v", before, after)
	}
	assert.InDelta(t, 45, s.Value(), 0.01)
}

func TestScalar_RespectsMaxSpeed(t *testing.T) {
	var s Scalar
	s.SetAdjustTime(1)
	s.SetAdjustRange(1) // peak speed == 1 unit/s
	s.SetGoal(1000)
	s.Update(0.1)
	assert.LessOrEqual(t, s.Value(), float32(0.1)+1e-4)
}

func TestScalar_ZeroAdjustRangeNeverMoves(t *testing.T) {
	var s Scalar
	s.SetAdjustTime(0.5)
	s.SetGoal(45)
	s.Update(1)
	assert.Equal(t, float32(0), s.Value())
}

func TestScalar_Reset(t *testing.T) {
	var s Scalar
	s.SetAdjustTime(0.5)
	s.SetAdjustRange(10)
	s.SetValue(5)
	s.SetGoal(10)
	s.SetChangeSpeed(3)
	s.Reset()
	assert.Equal(t, float32(0), s.Value())
	assert.Equal(t, float32(0), s.Goal())
	assert.Equal(t, float32(0), s.ChangeSpeed())
}
