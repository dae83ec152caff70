// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateEmptyCurve(t *testing.T) {
	c := NewCurve(Linear)
	assert.Equal(t, float32(0), c.Evaluate(5))
}

func TestEvaluateLinear(t *testing.T) {
	c := NewCurve(Linear)
	c.AddPoint(Point{Input: 0, Output: 0})
	c.AddPoint(Point{Input: 10, Output: 100})

	assert.Equal(t, float32(50), c.Evaluate(5))
	assert.Equal(t, float32(0), c.Evaluate(-5))
	assert.Equal(t, float32(100), c.Evaluate(15))
}

func TestEvaluateConstant(t *testing.T) {
	c := NewCurve(Constant)
	c.AddPoint(Point{Input: 0, Output: 1})
	c.AddPoint(Point{Input: 10, Output: 2})

	assert.Equal(t, float32(1), c.Evaluate(5))
	assert.Equal(t, float32(2), c.Evaluate(10))
}

func TestEvaluateCubicBezierEndpoints(t *testing.T) {
	c := NewCurve(CubicBezier)
	c.AddPoint(Point{Input: 0, Output: 0})
	c.AddPoint(Point{Input: 10, Output: 10})

	assert.InDelta(t, 0, c.Evaluate(0), 0.001)
	assert.InDelta(t, 10, c.Evaluate(10), 0.001)
}

func TestInterpolationString(t *testing.T) {
	assert.Equal(t, "Constant", Constant.String())
	assert.Equal(t, "Linear", Linear.String())
	assert.Equal(t, "CubicBezier", CubicBezier.String())
}
