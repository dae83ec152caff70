// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package smooth implements the critically-damped interpolation primitives
// used throughout the locomotion core: a value that eases toward a goal
// over time, bounded by a configurable peak rate of change.
package smooth

import (
	"math"
)

// decayConstant is chosen so that, under a step input with dt == adjustTime,
// a Scalar closes roughly 85% of the remaining distance to its goal.
const decayConstant = float32(1.897119984)

func expf32(x float32) float32 {
	return float32(math.Exp(float64(x)))
}

func absf32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// Scalar is a critically-damped interpolated float value. It never
// overshoots its goal and its per-tick change is bounded by
// AdjustRange/AdjustTime (its peak change speed).
type Scalar struct {
	value       float32
	goal        float32
	changeSpeed float32
	adjustTime  float32
	adjustRange float32
}

// Value returns the current interpolated value.
func (s *Scalar) Value() float32 {
	return s.value
}

// Goal returns the target value.
func (s *Scalar) Goal() float32 {
	return s.goal
}

// ChangeSpeed returns the signed rate of change applied on the last Update.
func (s *Scalar) ChangeSpeed() float32 {
	return s.changeSpeed
}

// AdjustTime returns the configured response time in seconds.
func (s *Scalar) AdjustTime() float32 {
	return s.adjustTime
}

// AdjustRange returns the configured peak-rate range.
func (s *Scalar) AdjustRange() float32 {
	return s.adjustRange
}

// SetValue overwrites the current value without affecting the goal.
func (s *Scalar) SetValue(v float32) {
	s.value = v
}

// SetGoal sets the target the value eases toward.
func (s *Scalar) SetGoal(v float32) {
	s.goal = v
}

// SetChangeSpeed overwrites the reported rate of change.
func (s *Scalar) SetChangeSpeed(v float32) {
	s.changeSpeed = v
}

// SetAdjustTime sets the response time. Negative values are clamped to zero,
// which makes Update snap the value straight to the goal.
func (s *Scalar) SetAdjustTime(t float32) {
	if t < 0 {
		t = 0
	}
	s.adjustTime = t
}

// SetAdjustRange sets the peak-rate range. Negative values are clamped to zero.
func (s *Scalar) SetAdjustRange(r float32) {
	if r < 0 {
		r = 0
	}
	s.adjustRange = r
}

// Reset zeroes value, goal and change speed, keeping adjust time/range.
func (s *Scalar) Reset() {
	s.value = 0
	s.goal = 0
	s.changeSpeed = 0
}

// Snap immediately sets the value to the goal and clears change speed.
func (s *Scalar) Snap() {
	s.value = s.goal
	s.changeSpeed = 0
}

// Update advances value toward goal over dt seconds. It never overshoots
// the goal and never changes faster than AdjustRange/AdjustTime.
func (s *Scalar) Update(dt float32) {
	if dt <= 0 {
		return
	}
	if s.adjustTime <= 1e-5 {
		s.Snap()
		return
	}

	diff := s.goal - s.value
	if diff == 0 {
		s.changeSpeed = 0
		return
	}

	factor := 1 - expf32(-decayConstant*dt/s.adjustTime)
	step := diff * factor

	if s.adjustRange > 0 {
		maxStep := (s.adjustRange / s.adjustTime) * dt
		if absf32(step) > maxStep {
			if step > 0 {
				step = maxStep
			} else {
				step = -maxStep
			}
		}
	} else {
		step = 0
	}

	if absf32(step) >= absf32(diff) {
		step = diff
	}

	s.value += step
	s.changeSpeed = step / dt
}
