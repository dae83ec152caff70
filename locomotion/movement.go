// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package locomotion

import "github.com/quill3d/locomotion/math32"

var forward = math32.NewVector3(0, 0, 1)

// updateIsMoving recomputes is_moving from analog_moving_speed and fires
// the reset_time_walk / reset_time_turn_ip pulses on state transitions.
func (s *State) updateIsMoving() {
	newIsMoving := absf32(s.analogMovingSpeed) > 0.001

	if newIsMoving && !s.isMoving {
		if s.movingSpeed < 0.001 {
			s.resetTimeWalk = true
		}
		s.isTurningIP = false
		s.turnIP = 0
	}
	if !newIsMoving && s.isMoving {
		s.resetTimeTurnIP = true
	}

	s.isMoving = newIsMoving
}

// updateLinearVelocity derives the world-space linear velocity goal from
// orientation and analog move input, advances it, and recomputes the
// moving-derived quantities that read from it.
func (s *State) updateLinearVelocity(dt float32) {
	if s.isMoving {
		s.movingOrientation = normalize360(s.orientation + s.analogMovingHorizontal.Value())
	}

	var rot math32.Quaternion
	rot.SetFromAxisAngle(math32.NewVector3(0, 1, 0), math32.DegToRad(s.movingOrientation))
	goal := forward.Clone().ApplyQuaternion(&rot).MultiplyScalar(s.analogMovingSpeed)
	s.linearVelocity.SetGoal(*goal)
	s.linearVelocity.Update(dt)

	lv := s.linearVelocity.Value()
	s.movingSpeed = lv.Length()

	if s.movingSpeed > 0.001 {
		s.movingOrientation = normalize360(-math32.RadToDeg(math32.Atan2(lv.X, lv.Z)))
	}
	s.movingDirection = normalizeSigned180(s.movingOrientation - s.orientation)
}

// updateStance advances the smoothed stance scalar toward its goal.
func (s *State) updateStance(dt float32) {
	s.stance.Update(dt)
}
