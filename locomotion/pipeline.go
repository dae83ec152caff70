// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package locomotion

import "github.com/quill3d/locomotion/math32"

// UpdateLooking advances the smoothed look and analog-moving-horizontal
// scalars toward their goals. Call before UpdateLocomotion each tick.
func (s *State) UpdateLooking(dt float32) {
	s.lookVertical.Update(dt)
	s.clampLookVertical()
	s.lookHorizontal.Update(dt)
	s.analogMovingHorizontal.Update(dt)
}

// UpdateLocomotion runs the per-tick locomotion pipeline: is-moving,
// orientation, linear velocity, then stance. Call after UpdateLooking and
// before running physics.
func (s *State) UpdateLocomotion(dt float32) {
	s.clearPulses()

	s.updateIsMoving()
	s.updateOrientation(dt)
	s.updateLinearVelocity(dt)
	s.updateStance(dt)
}

// UpdatePostLocomotion samples ground tilt and re-applies the post-only
// controller mappings (TiltOffset, TiltVertical, TiltHorizontal). Call
// after physics has run this tick.
func (s *State) UpdatePostLocomotion(dt float32) {
	s.updateTilt(dt)
	for _, m := range s.mappings {
		if m.attribute.isPostOnly() {
			m.apply(s, dt)
		}
	}
	s.clearPulses()
}

// UpdateAnimatorInstance writes every mapped derived value onto its bound
// controller, then clears the one-shot pulse flags.
func (s *State) UpdateAnimatorInstance(dt float32) {
	for _, m := range s.mappings {
		m.apply(s, dt)
	}
	s.clearPulses()
}

// UpdateAIcollider pushes the current linear velocity, and optionally the
// angular velocity, to the attached physics collider. A no-op if no
// collider is attached.
func (s *State) UpdateAIcollider() {
	if s.aiCollider == nil {
		return
	}
	s.aiCollider.SetLinearVelocity(s.linearVelocity.Value())
	if s.UpdateAIColliderAngularVelocity {
		av := s.angularVelocity
		av.MultiplyScalar(math32.DegToRad(1))
		s.aiCollider.SetAngularVelocity(av)
	}
}

// clearPulses clears the one-shot flags that must not survive past the
// consumer that reads them within the same tick.
func (s *State) clearPulses() {
	s.resetTimeWalk = false
	s.reverseTimeTurnIP = false
	s.resetTimeTurnIP = false
}

// ApplyStates snaps all intermediate state to its goals without
// interpolation (a teleport): used when an actor is warped or spawned and
// should not animate the transition. Every smoothed scalar/vector ends
// the call with value == goal and a zero change speed.
func (s *State) ApplyStates() {
	s.orientation = normalize360(s.orientation + s.turnHorizontal)
	s.turnHorizontal = 0
	s.refreshOrientationQuaternion()

	s.lookHorizontal.Snap()
	s.analogMovingHorizontal.Snap()
	s.lookVertical.Snap()
	s.stance.Snap()

	s.turningSpeed = 0
	s.turnIP = 0
	s.isTurningIP = false

	s.movingOrientation = normalize360(s.orientation + s.analogMovingHorizontal.Value())

	var rot math32.Quaternion
	rot.SetFromAxisAngle(math32.NewVector3(0, 1, 0), math32.DegToRad(s.movingOrientation))
	lv := forward.Clone().ApplyQuaternion(&rot).MultiplyScalar(s.analogMovingSpeed)
	s.linearVelocity.SetGoal(*lv)
	s.linearVelocity.Snap()

	s.movingSpeed = absf32(s.analogMovingSpeed)
	s.movingDirection = normalizeSigned180(s.movingOrientation - s.orientation)
	s.isMoving = absf32(s.analogMovingSpeed) > 0.001

	s.tiltVertical.Snap()
	s.tiltHorizontal.Snap()

	s.clearPulses()
}

// CancelInput zeroes pending move/turn input and freezes look & stance at
// their current values.
func (s *State) CancelInput() {
	s.analogMovingHorizontal.SetGoal(0)
	s.analogMovingSpeed = 0
	s.turnHorizontal = 0
	s.lookVertical.SetGoal(s.lookVertical.Value())
	s.lookHorizontal.SetGoal(s.lookHorizontal.Value())
	s.stance.SetGoal(s.stance.Value())
}

// CancelMovement cancels input and resets all movement-derived state.
func (s *State) CancelMovement() {
	s.CancelInput()
	s.linearVelocity.SetValue(math32.Vector3{})
	s.linearVelocity.SetGoal(math32.Vector3{})
	s.movingSpeed = 0
	s.movingOrientation = 0
	s.movingDirection = 0
	s.resetTimeWalk = false
}

// CancelMotion cancels movement and turn-in-place, and freezes tilt at
// its current values.
func (s *State) CancelMotion() {
	s.CancelMovement()
	s.CancelTurnInPlace()
	s.turningSpeed = 0
	s.tiltVertical.SetGoal(s.tiltVertical.Value())
	s.tiltHorizontal.SetGoal(s.tiltHorizontal.Value())
}

// CancelTurnInPlace clears turn-in-place state and its pulse flags.
func (s *State) CancelTurnInPlace() {
	s.turnIP = 0
	s.isTurningIP = false
	s.resetTimeTurnIP = false
	s.reverseTimeTurnIP = false
}

// ForceBodyAdjustment folds the pending look-horizontal goal (and, if
// turn-in-place is enabled, the remaining turn_ip) into turn_horizontal,
// clearing turn-in-place state. No-op if the actor can't turn.
func (s *State) ForceBodyAdjustment() {
	if !s.CanTurn {
		return
	}
	s.turnHorizontal += s.lookHorizontal.Goal()
	if s.CanTurnInPlace {
		s.turnHorizontal += s.turnIP
	}
	s.turnIP = 0
	s.isTurningIP = false
}
