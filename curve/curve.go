// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package curve implements a small ordered-point curve container with
// constant, linear and cubic-Bezier evaluation, the shape an
// animator-rule graph samples when driving a controller over time. It is
// a data container only: the locomotion core never evaluates one itself
// (see package animator), but it is the type a real animator-rule
// implementation would hold.
package curve

import "github.com/quill3d/locomotion/math32"

// Interpolation selects how Evaluate blends between neighbouring points.
type Interpolation int

const (
	// Constant holds the value of the preceding point until the next one.
	Constant Interpolation = iota
	// Linear interpolates directly between neighbouring points.
	Linear
	// CubicBezier interpolates using each point's handle pair.
	CubicBezier
)

func (it Interpolation) String() string {
	switch it {
	case Constant:
		return "Constant"
	case Linear:
		return "Linear"
	case CubicBezier:
		return "CubicBezier"
	default:
		return "Unknown"
	}
}

// Point is one sample of the curve: an input/output pair plus the two
// Bezier handles used when the curve's interpolation is CubicBezier.
// Handle1 precedes the point, Handle2 follows it, both in (input, output)
// space.
type Point struct {
	Input, Output float32
	Handle1       math32.Vector2
	Handle2       math32.Vector2
}

// Curve is an ordered list of Points, evaluated by Evaluate at any input
// value within its domain.
type Curve struct {
	points []Point
	interp Interpolation
}

// NewCurve creates an empty curve with the given interpolation mode.
func NewCurve(interp Interpolation) *Curve {
	return &Curve{interp: interp}
}

// SetInterpolation changes how Evaluate blends between points.
func (c *Curve) SetInterpolation(it Interpolation) {
	c.interp = it
}

// Interpolation returns the curve's interpolation mode.
func (c *Curve) Interpolation() Interpolation {
	return c.interp
}

// AddPoint appends a point. Points must be added in non-decreasing Input
// order; Evaluate assumes this ordering.
func (c *Curve) AddPoint(p Point) {
	c.points = append(c.points, p)
}

// Points returns the curve's points in order.
func (c *Curve) Points() []Point {
	return c.points
}

// Evaluate samples the curve at input, clamping to the first/last point
// outside the curve's domain. Evaluating an empty curve returns 0.
func (c *Curve) Evaluate(input float32) float32 {
	n := len(c.points)
	if n == 0 {
		return 0
	}
	if n == 1 || input <= c.points[0].Input {
		return c.points[0].Output
	}
	if input >= c.points[n-1].Input {
		return c.points[n-1].Output
	}

	idx := 0
	for idx < n-2 && input >= c.points[idx+1].Input {
		idx++
	}
	p0, p1 := c.points[idx], c.points[idx+1]
	span := p1.Input - p0.Input
	var k float32
	if span > 0 {
		k = (input - p0.Input) / span
	}

	switch c.interp {
	case Constant:
		return p0.Output
	case CubicBezier:
		return evaluateCubicBezier(p0, p1, k)
	default: // Linear
		return p0.Output + (p1.Output-p0.Output)*k
	}
}

// evaluateCubicBezier blends p0 -> p1 using p0's trailing handle and p1's
// leading handle as the two interior Bezier control points, solving for
// the output at parametric position k along the input axis.
func evaluateCubicBezier(p0, p1 Point, k float32) float32 {
	a0 := 1 - k
	// De Casteljau blend in output-space only; the handle inputs are
	// assumed monotonic with p0/p1 so k (an input-space fraction) is a
	// reasonable stand-in for the Bezier parameter t.
	o0 := p0.Output
	o1 := p0.Output + p0.Handle2.Y
	o2 := p1.Output + p1.Handle1.Y
	o3 := p1.Output
	return a0*a0*a0*o0 + 3*a0*a0*k*o1 + 3*a0*k*k*o2 + k*k*k*o3
}
