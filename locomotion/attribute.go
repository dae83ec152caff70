// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package locomotion

// Attribute selects which derived locomotion value a ControllerMapping
// pushes onto its bound controller each frame.
type Attribute int

const (
	ElapsedTime Attribute = iota
	LookVertical
	LookHorizontal
	MovingSpeed
	MovingDirection
	RelativeMovingSpeed
	TurningSpeed
	Stance
	Displacement
	TimeTurnIP
	TiltOffset
	TiltVertical
	TiltHorizontal
	// RelativeDisplacement is Displacement negated while the actor moves
	// backward relative to its facing (|moving_direction| > 90), resolved
	// symmetrically to RelativeMovingSpeed per the design notes.
	RelativeDisplacement
)

func (a Attribute) String() string {
	switch a {
	case ElapsedTime:
		return "ElapsedTime"
	case LookVertical:
		return "LookVertical"
	case LookHorizontal:
		return "LookHorizontal"
	case MovingSpeed:
		return "MovingSpeed"
	case MovingDirection:
		return "MovingDirection"
	case RelativeMovingSpeed:
		return "RelativeMovingSpeed"
	case TurningSpeed:
		return "TurningSpeed"
	case Stance:
		return "Stance"
	case Displacement:
		return "Displacement"
	case TimeTurnIP:
		return "TimeTurnIP"
	case TiltOffset:
		return "TiltOffset"
	case TiltVertical:
		return "TiltVertical"
	case TiltHorizontal:
		return "TiltHorizontal"
	case RelativeDisplacement:
		return "RelativeDisplacement"
	default:
		return "Unknown"
	}
}

// isPostOnly reports whether this attribute is only meaningful after
// physics has run this tick (the three tilt-derived attributes).
func (a Attribute) isPostOnly() bool {
	switch a {
	case TiltOffset, TiltVertical, TiltHorizontal:
		return true
	default:
		return false
	}
}
