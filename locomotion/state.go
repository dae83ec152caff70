// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package locomotion implements the per-actor locomotion state machine:
// it turns desired look angles, move direction/speed, stance and
// turn-in-place intent into frame-coherent orientation, velocity, body
// tilt and animation-controller drive values.
package locomotion

import (
	"github.com/quill3d/locomotion/aicollider"
	"github.com/quill3d/locomotion/animator"
	"github.com/quill3d/locomotion/math32"
	"github.com/quill3d/locomotion/smooth"
)

// State is one actor's locomotion state. It is created once per
// controllable actor and mutated in place by the owning game code every
// tick; it is not safe for concurrent use by multiple goroutines.
type State struct {
	// Configuration flags.
	CanTurn                         bool
	AlwaysLimitLeftRight            bool
	TurnAdjustLookHorizontal        bool
	CanTurnInPlace                  bool
	CanTilt                         bool
	UpdateAIColliderAngularVelocity bool

	// Looking.
	limitLookUp, limitLookDown    float32
	limitLookLeft, limitLookRight float32
	lookVertical                  smooth.Scalar
	lookHorizontal                smooth.Scalar

	// Analog movement input.
	analogMovingHorizontal smooth.Scalar
	// analogMovingVertical is stored for host-application compatibility
	// but no update step reads it; there is intentionally no consumer.
	analogMovingVertical float32
	analogMovingSpeed    float32
	turnHorizontal       float32

	// Orientation.
	orientation           float32
	orientationQuaternion math32.Quaternion
	turningSpeed          float32
	angularVelocity       math32.Vector3
	adjustTimeOrientation float32
	climbLimitAccel       float32

	// Moving derived.
	isMoving          bool
	movingSpeed       float32
	movingOrientation float32
	movingDirection   float32
	linearVelocity    smooth.Vector

	// Stance.
	stance smooth.Scalar

	// Turn in place.
	isTurningIP                                 bool
	adjustTimeTurnIP                            float32
	turnIP                                      float32
	resetTimeTurnIP                             bool
	reverseTimeTurnIP                           bool
	limitTurnInPlaceLeft, limitTurnInPlaceRight float32
	resetTimeWalk                               bool

	// Tilt.
	tiltMode                      TiltMode
	tiltVertical                  smooth.Scalar
	tiltHorizontal                smooth.Scalar
	tiltOffset                    float32
	limitTiltUp, limitTiltDown    float32
	limitTiltLeft, limitTiltRight float32

	// Mapping set: at most one Mapping per (instance, index) pair.
	mappings []*Mapping

	// External attachments.
	aiCollider aicollider.Collider
}

// NewState creates a locomotion state pre-seeded with the same smoothing
// defaults as the original locomotion component: look and analog-moving
// horizontal ease over their full 90-degree range, linear velocity and
// stance settle over half a second, and tilt eases over half a second
// across 30 degrees. Callers may still override any of these with the
// corresponding Set*AdjustTime/Set*AdjustRange setters.
func NewState() *State {
	s := &State{tiltMode: TiltNone{}}
	s.orientationQuaternion.SetIdentity()

	s.lookVertical.SetAdjustRange(90)
	s.lookHorizontal.SetAdjustRange(90)
	s.analogMovingHorizontal.SetAdjustRange(90)

	s.linearVelocity.SetAdjustTime(0.5)
	s.linearVelocity.SetAdjustRange(4.0)

	s.stance.SetAdjustTime(0.5)
	s.stance.SetAdjustRange(1.0)

	s.tiltVertical.SetAdjustTime(0.5)
	s.tiltVertical.SetAdjustRange(30.0)
	s.tiltHorizontal.SetAdjustTime(0.5)
	s.tiltHorizontal.SetAdjustRange(30.0)

	return s
}

// --- Look limits -----------------------------------------------------

func (s *State) SetLimitLookUp(v float32)    { s.limitLookUp = v; s.clampLookVertical() }
func (s *State) SetLimitLookDown(v float32)  { s.limitLookDown = v; s.clampLookVertical() }
func (s *State) SetLimitLookLeft(v float32)  { s.limitLookLeft = v; s.clampLookHorizontalRange() }
func (s *State) SetLimitLookRight(v float32) { s.limitLookRight = v; s.clampLookHorizontalRange() }

func (s *State) LimitLookUp() float32    { return s.limitLookUp }
func (s *State) LimitLookDown() float32  { return s.limitLookDown }
func (s *State) LimitLookLeft() float32  { return s.limitLookLeft }
func (s *State) LimitLookRight() float32 { return s.limitLookRight }

func (s *State) clampLookVertical() {
	s.lookVertical.SetValue(math32.Clamp(s.lookVertical.Value(), s.limitLookDown, s.limitLookUp))
	s.lookVertical.SetGoal(math32.Clamp(s.lookVertical.Goal(), s.limitLookDown, s.limitLookUp))
}

// clampLookHorizontalRange only clamps when the caller always limits
// left/right (see AlwaysLimitLeftRight / checkLookingRangeViolation);
// otherwise look_horizontal is bounded through turn adjustment instead.
func (s *State) clampLookHorizontalRange() {
	if !s.AlwaysLimitLeftRight {
		return
	}
	s.lookHorizontal.SetValue(math32.Clamp(s.lookHorizontal.Value(), s.limitLookLeft, s.limitLookRight))
	s.lookHorizontal.SetGoal(math32.Clamp(s.lookHorizontal.Goal(), s.limitLookLeft, s.limitLookRight))
}

// --- Look / analog-move smoothing configuration ------------------------

func (s *State) SetLookVerticalAdjustTime(t float32)  { s.lookVertical.SetAdjustTime(t) }
func (s *State) SetLookVerticalAdjustRange(r float32) { s.lookVertical.SetAdjustRange(r) }
func (s *State) SetLookHorizontalAdjustTime(t float32)  { s.lookHorizontal.SetAdjustTime(t) }
func (s *State) SetLookHorizontalAdjustRange(r float32) { s.lookHorizontal.SetAdjustRange(r) }
func (s *State) SetAnalogMovingHorizontalAdjustTime(t float32)  { s.analogMovingHorizontal.SetAdjustTime(t) }
func (s *State) SetAnalogMovingHorizontalAdjustRange(r float32) { s.analogMovingHorizontal.SetAdjustRange(r) }
func (s *State) SetLinearVelocityAdjustTime(t float32)  { s.linearVelocity.SetAdjustTime(t) }
func (s *State) SetLinearVelocityAdjustRange(r float32) { s.linearVelocity.SetAdjustRange(r) }
func (s *State) SetStanceAdjustTime(t float32)  { s.stance.SetAdjustTime(t) }
func (s *State) SetStanceAdjustRange(r float32) { s.stance.SetAdjustRange(r) }

// --- Inputs ------------------------------------------------------------

// SetLookVerticalGoal sets the desired look-vertical angle, clamped to
// [limit_look_down, limit_look_up].
func (s *State) SetLookVerticalGoal(v float32) {
	s.lookVertical.SetGoal(math32.Clamp(v, s.limitLookDown, s.limitLookUp))
}

// SetLookHorizontalGoal sets the desired look-horizontal angle. Unlike
// look-vertical it is not clamped at the setter: range enforcement for
// look-horizontal happens through turn adjustment (see
// checkLookingRangeViolation) unless AlwaysLimitLeftRight is set.
func (s *State) SetLookHorizontalGoal(v float32) {
	if s.AlwaysLimitLeftRight {
		v = math32.Clamp(v, s.limitLookLeft, s.limitLookRight)
	}
	s.lookHorizontal.SetGoal(v)
}

func (s *State) SetAnalogMovingHorizontalGoal(v float32) {
	s.analogMovingHorizontal.SetGoal(normalizeSigned180(v))
}

func (s *State) SetAnalogMovingVertical(v float32) {
	s.analogMovingVertical = math32.Clamp(v, -90, 90)
}

func (s *State) SetAnalogMovingSpeed(v float32) { s.analogMovingSpeed = v }

func (s *State) SetTurnHorizontal(v float32) { s.turnHorizontal = v }

func (s *State) SetStanceGoal(v float32) { s.stance.SetGoal(v) }

// SetStanceRange clamps the current stance value and goal into
// [min, max]. The range itself is not stored: goals set later through
// SetStanceGoal are not clamped.
func (s *State) SetStanceRange(min, max float32) {
	s.stance.SetValue(math32.Clamp(s.stance.Value(), min, max))
	s.stance.SetGoal(math32.Clamp(s.stance.Goal(), min, max))
}

// --- Orientation ---------------------------------------------------

// SetAdjustTimeOrientation sets the orientation response time; negative
// values are rejected.
func (s *State) SetAdjustTimeOrientation(t float32) error {
	if t < 0 {
		return ErrInvalidParameter
	}
	s.adjustTimeOrientation = t
	if t > 0.001 {
		s.climbLimitAccel = math32.Pow(4, 1-log2f32(t))
	} else {
		s.climbLimitAccel = 0
	}
	return nil
}

func (s *State) AdjustTimeOrientation() float32 { return s.adjustTimeOrientation }
func (s *State) ClimbLimitAccel() float32       { return s.climbLimitAccel }

func (s *State) Orientation() float32                      { return s.orientation }
func (s *State) OrientationQuaternion() math32.Quaternion   { return s.orientationQuaternion }
func (s *State) TurningSpeed() float32                      { return s.turningSpeed }
func (s *State) AngularVelocity() math32.Vector3             { return s.angularVelocity }

// SetOrientation directly sets the body orientation in degrees, folding
// it into [0, 360) and refreshing the derived quaternion.
func (s *State) SetOrientation(degrees float32) {
	s.orientation = normalize360(degrees)
	s.refreshOrientationQuaternion()
}

func (s *State) refreshOrientationQuaternion() {
	s.orientationQuaternion.SetFromAxisAngle(math32.NewVector3(0, 1, 0), math32.DegToRad(s.orientation))
}

// --- Turn in place ---------------------------------------------------

func (s *State) SetAdjustTimeTurnIP(t float32) error {
	if t < 0 {
		return ErrInvalidParameter
	}
	s.adjustTimeTurnIP = t
	return nil
}

func (s *State) SetLimitTurnInPlaceLeft(v float32)  { s.limitTurnInPlaceLeft = v }
func (s *State) SetLimitTurnInPlaceRight(v float32) { s.limitTurnInPlaceRight = v }

func (s *State) IsTurningIP() bool   { return s.isTurningIP }
func (s *State) TurnIP() float32     { return s.turnIP }
func (s *State) ResetTimeTurnIP() bool   { return s.resetTimeTurnIP }
func (s *State) ReverseTimeTurnIP() bool { return s.reverseTimeTurnIP }
func (s *State) ResetTimeWalk() bool     { return s.resetTimeWalk }

// --- Moving derived ----------------------------------------------------

func (s *State) IsMoving() bool            { return s.isMoving }
func (s *State) MovingSpeed() float32      { return s.movingSpeed }
func (s *State) MovingOrientation() float32 { return s.movingOrientation }
func (s *State) MovingDirection() float32  { return s.movingDirection }
func (s *State) LinearVelocity() math32.Vector3 { return s.linearVelocity.Value() }
func (s *State) StanceValue() float32      { return s.stance.Value() }

// --- Look / tilt observation --------------------------------------------

func (s *State) LookVertical() float32      { return s.lookVertical.Value() }
func (s *State) LookHorizontal() float32    { return s.lookHorizontal.Value() }
func (s *State) LookVerticalGoal() float32  { return s.lookVertical.Goal() }
func (s *State) LookHorizontalGoal() float32 { return s.lookHorizontal.Goal() }
func (s *State) AnalogMovingHorizontal() float32 { return s.analogMovingHorizontal.Value() }
func (s *State) AnalogMovingVertical() float32   { return s.analogMovingVertical }
func (s *State) AnalogMovingSpeed() float32      { return s.analogMovingSpeed }
func (s *State) TurnHorizontal() float32         { return s.turnHorizontal }

func (s *State) TiltVertical() float32   { return s.tiltVertical.Value() }
func (s *State) TiltHorizontal() float32 { return s.tiltHorizontal.Value() }
func (s *State) TiltOffset() float32     { return s.tiltOffset }

// --- Tilt configuration --------------------------------------------------

func (s *State) SetLimitTiltUp(v float32)    { s.limitTiltUp = v; s.clampTiltVertical() }
func (s *State) SetLimitTiltDown(v float32)  { s.limitTiltDown = v; s.clampTiltVertical() }
func (s *State) SetLimitTiltLeft(v float32)  { s.limitTiltLeft = v; s.clampTiltHorizontal() }
func (s *State) SetLimitTiltRight(v float32) { s.limitTiltRight = v; s.clampTiltHorizontal() }

func (s *State) SetTiltVerticalAdjustTime(t float32)  { s.tiltVertical.SetAdjustTime(t) }
func (s *State) SetTiltVerticalAdjustRange(r float32) { s.tiltVertical.SetAdjustRange(r) }
func (s *State) SetTiltHorizontalAdjustTime(t float32)  { s.tiltHorizontal.SetAdjustTime(t) }
func (s *State) SetTiltHorizontalAdjustRange(r float32) { s.tiltHorizontal.SetAdjustRange(r) }

func (s *State) clampTiltVertical() {
	s.tiltVertical.SetValue(math32.Clamp(s.tiltVertical.Value(), s.limitTiltDown, s.limitTiltUp))
	s.tiltVertical.SetGoal(math32.Clamp(s.tiltVertical.Goal(), s.limitTiltDown, s.limitTiltUp))
}

func (s *State) clampTiltHorizontal() {
	s.tiltHorizontal.SetValue(math32.Clamp(s.tiltHorizontal.Value(), s.limitTiltLeft, s.limitTiltRight))
	s.tiltHorizontal.SetGoal(math32.Clamp(s.tiltHorizontal.Goal(), s.limitTiltLeft, s.limitTiltRight))
}

// SetTiltMode selects how tilt goals are sampled. A nil mode is rejected.
func (s *State) SetTiltMode(mode TiltMode) error {
	if mode == nil {
		return ErrInvalidParameter
	}
	s.tiltMode = mode
	return nil
}

func (s *State) TiltMode() TiltMode { return s.tiltMode }

// --- External attachments -----------------------------------------------

// SetAICollider attaches the physics collider this state pushes
// velocities to. Pass nil to detach.
func (s *State) SetAICollider(c aicollider.Collider) { s.aiCollider = c }

func (s *State) AICollider() aicollider.Collider { return s.aiCollider }

// --- Controller mappings --------------------------------------------------

// AddControllerMapping binds attribute to the given (instance, index)
// pair, replacing any existing mapping for that pair.
func (s *State) AddControllerMapping(instance animator.Instance, index int, attribute Attribute) error {
	if instance == nil {
		return ErrInvalidParameter
	}
	for _, m := range s.mappings {
		if m.instance == instance && m.index == index {
			m.attribute = attribute
			return nil
		}
	}
	s.mappings = append(s.mappings, &Mapping{instance: instance, index: index, attribute: attribute})
	return nil
}

// RemoveControllerMapping removes the mapping for (instance, index), if any.
func (s *State) RemoveControllerMapping(instance animator.Instance, index int) {
	for i, m := range s.mappings {
		if m.instance == instance && m.index == index {
			s.mappings = append(s.mappings[:i], s.mappings[i+1:]...)
			return
		}
	}
}

// RemoveAllControllerMappings clears the mapping set.
func (s *State) RemoveAllControllerMappings() {
	s.mappings = nil
}

// ControllerMappings returns the current mapping set in insertion order.
func (s *State) ControllerMappings() []*Mapping {
	out := make([]*Mapping, len(s.mappings))
	copy(out, s.mappings)
	return out
}
