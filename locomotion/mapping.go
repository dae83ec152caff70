// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package locomotion

import "github.com/quill3d/locomotion/animator"

// Mapping binds one (animator instance, controller index) pair to a
// locomotion Attribute. At most one Mapping exists per (instance, index)
// pair within a State's mapping set.
type Mapping struct {
	instance  animator.Instance
	index     int
	attribute Attribute
}

// Instance returns the mapping's bound animator instance.
func (m *Mapping) Instance() animator.Instance { return m.instance }

// ControllerIndex returns the mapping's bound controller index.
func (m *Mapping) ControllerIndex() int { return m.index }

// Attribute returns the locomotion value this mapping pushes.
func (m *Mapping) Attribute() Attribute { return m.attribute }

// apply writes the mapping's attribute onto its controller. If the
// instance is stale or the index is out of range, this is a no-op.
func (m *Mapping) apply(s *State, dt float32) {
	c, ok := m.instance.Controller(m.index)
	if !ok {
		return
	}

	switch m.attribute {
	case ElapsedTime:
		c.SetCurrentValue(c.CurrentValue() + dt)

	case LookVertical:
		c.SetCurrentValue(s.lookVertical.Value())

	case LookHorizontal:
		c.SetCurrentValue(s.lookHorizontal.Value())

	case MovingSpeed:
		c.SetCurrentValue(s.movingSpeed)

	case MovingDirection:
		c.SetCurrentValue(s.movingDirection)

	case RelativeMovingSpeed:
		c.SetCurrentValue(s.movingSpeed * relativeSign(s.movingDirection))

	case TurningSpeed:
		c.SetCurrentValue(s.turningSpeed)

	case Stance:
		c.SetCurrentValue(s.stance.Value())

	case Displacement:
		c.SetCurrentValue(c.CurrentValue() + absf32(s.movingSpeed)*dt)

	case RelativeDisplacement:
		c.SetCurrentValue(c.CurrentValue() + relativeSign(s.movingDirection)*absf32(s.movingSpeed)*dt)

	case TimeTurnIP:
		if s.reverseTimeTurnIP {
			c.SetCurrentValue(c.MaxValue() - c.CurrentValue())
		}
		if s.resetTimeTurnIP {
			c.SetCurrentValue(dt)
		} else {
			c.SetCurrentValue(c.CurrentValue() + dt)
		}

	case TiltOffset:
		c.SetCurrentValue(s.tiltOffset)

	case TiltVertical:
		c.SetCurrentValue(s.tiltVertical.Value())

	case TiltHorizontal:
		c.SetCurrentValue(s.tiltHorizontal.Value())

	default:
		return
	}

	c.NotifyChanged()
}

// relativeSign returns -1 when the actor is moving backward relative to
// its facing (|movingDirection| > 90 degrees), +1 otherwise.
func relativeSign(movingDirection float32) float32 {
	if absf32(movingDirection) > 90 {
		return -1
	}
	return 1
}
