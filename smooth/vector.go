// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smooth

import (
	"github.com/quill3d/locomotion/math32"
)

// Vector is the 3-component analogue of Scalar: a critically-damped
// interpolated Vector3 value bounded by AdjustRange/AdjustTime.
type Vector struct {
	value       math32.Vector3
	goal        math32.Vector3
	changeSpeed math32.Vector3
	adjustTime  float32
	adjustRange float32
}

// Value returns the current interpolated vector.
func (v *Vector) Value() math32.Vector3 {
	return v.value
}

// Goal returns the target vector.
func (v *Vector) Goal() math32.Vector3 {
	return v.goal
}

// ChangeSpeed returns the rate of change applied on the last Update.
func (v *Vector) ChangeSpeed() math32.Vector3 {
	return v.changeSpeed
}

// AdjustTime returns the configured response time in seconds.
func (v *Vector) AdjustTime() float32 {
	return v.adjustTime
}

// AdjustRange returns the configured peak-rate range.
func (v *Vector) AdjustRange() float32 {
	return v.adjustRange
}

// SetValue overwrites the current value without affecting the goal.
func (v *Vector) SetValue(val math32.Vector3) {
	v.value = val
}

// SetGoal sets the target the value eases toward.
func (v *Vector) SetGoal(val math32.Vector3) {
	v.goal = val
}

// SetChangeSpeed overwrites the reported rate of change.
func (v *Vector) SetChangeSpeed(val math32.Vector3) {
	v.changeSpeed = val
}

// SetAdjustTime sets the response time. Negative values are clamped to zero.
func (v *Vector) SetAdjustTime(t float32) {
	if t < 0 {
		t = 0
	}
	v.adjustTime = t
}

// SetAdjustRange sets the peak-rate range. Negative values are clamped to zero.
func (v *Vector) SetAdjustRange(r float32) {
	if r < 0 {
		r = 0
	}
	v.adjustRange = r
}

// Reset zeroes value, goal and change speed, keeping adjust time/range.
func (v *Vector) Reset() {
	v.value.Zero()
	v.goal.Zero()
	v.changeSpeed.Zero()
}

// Snap immediately sets the value to the goal and clears change speed.
func (v *Vector) Snap() {
	v.value = v.goal
	v.changeSpeed.Zero()
}

// Update advances value toward goal over dt seconds along the difference
// vector, with the step length bounded by AdjustRange/AdjustTime.
func (v *Vector) Update(dt float32) {
	if dt <= 0 {
		return
	}
	if v.adjustTime <= 1e-5 {
		v.Snap()
		return
	}

	diff := math32.NewVec3().SubVectors(&v.goal, &v.value)
	if diff.Length() == 0 {
		v.changeSpeed.Zero()
		return
	}

	factor := 1 - expf32(-decayConstant*dt/v.adjustTime)
	step := diff.Clone().MultiplyScalar(factor)

	if v.adjustRange > 0 {
		maxStep := (v.adjustRange / v.adjustTime) * dt
		if step.Length() > maxStep {
			step.SetLength(maxStep)
		}
	} else {
		step.Zero()
	}

	if step.Length() >= diff.Length() {
		step = diff
	}

	v.value.Add(step)
	v.changeSpeed = *step.Clone().MultiplyScalar(1 / dt)
}
