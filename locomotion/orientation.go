// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package locomotion

import "github.com/quill3d/locomotion/math32"

// updateOrientation computes this tick's body rotation and applies it,
// branching on whether the actor is moving. Returns the applied rotation
// in degrees, mostly for tests.
func (s *State) updateOrientation(dt float32) float32 {
	if !s.CanTurn {
		s.lookHorizontal.SetValue(math32.Clamp(s.lookHorizontal.Value(), s.limitLookLeft, s.limitLookRight))
		s.lookHorizontal.SetGoal(math32.Clamp(s.lookHorizontal.Goal(), s.limitLookLeft, s.limitLookRight))
		s.turnHorizontal = 0
		s.turningSpeed = 0
		s.angularVelocity = math32.Vector3{}
		return 0
	}

	var adjust float32
	if s.isMoving {
		adjust = s.updateOrientationMoving(dt)
	} else {
		adjust = s.updateOrientationNotMoving(dt)
	}

	adjust = s.checkLookingRangeViolation(adjust)
	s.AdjustOrientation(adjust)

	if dt > 0 {
		s.turningSpeed = adjust / dt
	} else {
		s.turningSpeed = 0
	}
	s.angularVelocity = math32.Vector3{Y: s.turningSpeed}

	return adjust
}

func (s *State) updateOrientationMoving(dt float32) float32 {
	adjust := s.turnHorizontal

	if s.adjustTimeOrientation > 0.001 {
		limitTurnSpeed := 90 / s.adjustTimeOrientation
		scale := math32.Min(dt/(s.adjustTimeOrientation*0.25), 1)
		adjust *= scale

		limitAccel := s.climbLimitAccel * 90 * dt
		prevSpeed := math32.Clamp(s.turningSpeed, -limitTurnSpeed, limitTurnSpeed)

		var speedDiff float32
		if dt > 0 {
			speedDiff = adjust/dt - prevSpeed
		}

		if speedDiff > limitAccel && adjust > 0 {
			adjust = (prevSpeed + limitAccel) * dt
		} else if speedDiff < -limitAccel && adjust < 0 {
			adjust = (prevSpeed - limitAccel) * dt
		}
	}

	return adjust
}

func (s *State) updateOrientationNotMoving(dt float32) float32 {
	adjust := s.turnHorizontal

	if s.adjustTimeOrientation > 0.001 {
		adjustFactor := math32.Min(2.5/s.adjustTimeOrientation*dt, 1)
		limitTurnSpeed := 90 / s.adjustTimeOrientation
		limitTurnAccel := limitTurnSpeed * 3.5

		adjust *= adjustFactor

		if dt > 0 {
			speed := adjust / dt
			if speed > limitTurnSpeed {
				adjust = limitTurnSpeed * dt
			} else if speed < -limitTurnSpeed {
				adjust = -limitTurnSpeed * dt
			}

			speedDiff := adjust/dt - s.turningSpeed
			if speedDiff > limitTurnAccel {
				adjust = (s.turningSpeed + limitTurnAccel) * dt
			} else if speedDiff < -limitTurnAccel {
				adjust = (s.turningSpeed - limitTurnAccel) * dt
			}
		}
	}

	if s.CanTurnInPlace {
		adjust = s.updateTurnInPlace(dt, adjust)
	} else {
		s.isTurningIP = false
		s.turnIP = 0
	}

	return adjust
}

// updateTurnInPlace runs the turn-in-place state machine. While active it
// overrides adjust with the turn-in-place step; otherwise it returns
// adjust unchanged.
func (s *State) updateTurnInPlace(dt, adjust float32) float32 {
	if !s.isTurningIP {
		if s.lookHorizontal.Goal() > s.limitTurnInPlaceRight {
			s.isTurningIP = true
			s.turnIP = 90
			s.resetTimeTurnIP = true
		} else if s.lookHorizontal.Goal() < s.limitTurnInPlaceLeft {
			s.isTurningIP = true
			s.turnIP = -90
			s.resetTimeTurnIP = true
		}
	} else {
		if s.turnIP > 0 && s.lookHorizontal.Goal() < s.limitTurnInPlaceLeft {
			s.turnIP -= 90
			s.reverseTimeTurnIP = true
		} else if s.turnIP < 0 && s.lookHorizontal.Goal() > s.limitTurnInPlaceRight {
			s.turnIP += 90
			s.reverseTimeTurnIP = true
		}
	}

	if !s.isTurningIP {
		return adjust
	}

	if s.adjustTimeTurnIP <= 1e-5 {
		adjust = s.turnIP
		s.turnIP = 0
		s.isTurningIP = false
		return adjust
	}

	step := signf32(s.turnIP) * 90 * dt / s.adjustTimeTurnIP
	if absf32(step) >= absf32(s.turnIP) {
		adjust = s.turnIP
		s.turnIP = 0
		s.isTurningIP = false
	} else {
		adjust = step
		s.turnIP -= step
	}

	return adjust
}

// checkLookingRangeViolation trims adjust so look_horizontal stays inside
// its limits, or (when the caller always enforces left/right limits
// directly) clamps look_horizontal itself instead.
func (s *State) checkLookingRangeViolation(adjust float32) float32 {
	if s.CanTurn && !s.AlwaysLimitLeftRight {
		proposed := s.lookHorizontal.Goal() - adjust
		clamped := math32.Clamp(proposed, s.limitLookLeft, s.limitLookRight)
		adjust = s.lookHorizontal.Goal() - clamped
	} else {
		s.lookHorizontal.SetValue(math32.Clamp(s.lookHorizontal.Value(), s.limitLookLeft, s.limitLookRight))
		s.lookHorizontal.SetGoal(math32.Clamp(s.lookHorizontal.Goal(), s.limitLookLeft, s.limitLookRight))
	}
	return adjust
}

// AdjustOrientation rotates the body by angle degrees this tick,
// propagating the rotation into orientation, look-horizontal,
// analog-moving-horizontal and the pending turn_horizontal budget.
func (s *State) AdjustOrientation(angle float32) {
	s.orientation = normalize360(s.orientation + angle)
	s.refreshOrientationQuaternion()

	s.lookHorizontal.SetValue(s.lookHorizontal.Value() - angle)
	s.analogMovingHorizontal.SetValue(s.analogMovingHorizontal.Value() - angle)

	if s.TurnAdjustLookHorizontal {
		s.lookHorizontal.SetGoal(s.lookHorizontal.Goal() - angle)
		s.analogMovingHorizontal.SetGoal(s.analogMovingHorizontal.Goal() - angle)
	}

	if angle > 0 {
		s.turnHorizontal = math32.Max(s.turnHorizontal-angle, 0)
	} else if angle < 0 {
		s.turnHorizontal = math32.Min(s.turnHorizontal-angle, 0)
	}
}
