// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package locomotion

import "github.com/quill3d/locomotion/math32"
import "github.com/quill3d/locomotion/collision"

// TiltMode selects how the body tilt goals are sampled from the ground:
// not at all, from a single downward test, or weighted from four corner
// tests. It is a closed sum type so each variant carries exactly the
// collision tests it needs.
type TiltMode interface {
	tiltMode()
}

// TiltNone disables ground tilt sampling; both tilt goals ease to zero.
type TiltNone struct{}

// TiltSingle samples tilt from one downward collision test beneath the
// actor's center.
type TiltSingle struct {
	Test collision.TestHandle
}

// TiltWeighted samples tilt from four corner collision tests, producing a
// smoother result across uneven or sloped ground than TiltSingle.
type TiltWeighted struct {
	FrontLeft, FrontRight, BackLeft, BackRight collision.TestHandle
}

func (TiltNone) tiltMode()     {}
func (TiltSingle) tiltMode()   {}
func (TiltWeighted) tiltMode() {}

// updateTilt recomputes the tilt goals from the configured TiltMode and
// advances the smoothed tilt scalars. A TiltMode requiring a collision
// test or AI collider that is absent is a silent no-op: tilt goals are
// left untouched, per the MissingCollaborator error taxonomy.
func (s *State) updateTilt(dt float32) {
	if !s.CanTilt {
		return
	}

	switch m := s.tiltMode.(type) {
	case TiltNone:
		s.tiltHorizontal.SetGoal(0)
		s.tiltVertical.SetGoal(0)

	case TiltSingle:
		if m.Test == nil || s.aiCollider == nil {
			return
		}
		s.updateTiltSingle(m)

	case TiltWeighted:
		if m.FrontLeft == nil || m.FrontRight == nil || m.BackLeft == nil || m.BackRight == nil {
			return
		}
		s.updateTiltWeighted(m)

	default:
		return
	}

	s.tiltVertical.Update(dt)
	s.tiltHorizontal.Update(dt)
}

func (s *State) updateTiltSingle(m TiltSingle) {
	if m.Test.InfoCount() < 1 {
		s.tiltHorizontal.SetGoal(0)
		s.tiltVertical.SetGoal(0)
		s.tiltOffset = 0
		return
	}

	hit := m.Test.Info(0)
	normal := hit.Normal

	// Transform the world-space hit normal into the actor's local frame
	// by applying the conjugate (inverse) of its orientation quaternion.
	local := normal
	inv := s.orientationQuaternion
	inv.Conjugate()
	local.ApplyQuaternion(&inv)

	horizGoal := math32.RadToDeg(math32.Atan2(local.X, local.Y))
	vertGoal := math32.RadToDeg(math32.Atan2(local.Z, local.Y))

	s.tiltHorizontal.SetGoal(math32.Clamp(horizGoal, s.limitTiltLeft, s.limitTiltRight))
	s.tiltVertical.SetGoal(math32.Clamp(vertGoal, s.limitTiltDown, s.limitTiltUp))

	origin := m.Test.Origin()
	dir := m.Test.Direction()
	dirLen := dir.Length()
	s.tiltOffset = origin.Y - hit.Distance*dirLen
}

func groundHeight(h collision.TestHandle) float32 {
	origin := h.Origin()
	dir := h.Direction()
	dirLen := dir.Length()
	if h.InfoCount() >= 1 {
		return origin.Y - h.Info(0).Distance*dirLen
	}
	return origin.Y - dirLen
}

func (s *State) updateTiltWeighted(m TiltWeighted) {
	fl := groundHeight(m.FrontLeft)
	fr := groundHeight(m.FrontRight)
	bl := groundHeight(m.BackLeft)
	br := groundHeight(m.BackRight)

	flOrigin := m.FrontLeft.Origin()
	frOrigin := m.FrontRight.Origin()
	blOrigin := m.BackLeft.Origin()

	spreadHorizontal := math32.Max(frOrigin.X-flOrigin.X, 0.01)
	spreadFrontBack := math32.Max(flOrigin.Z-blOrigin.Z, 0.01)

	deltaHorizontal := ((fl - fr) + (bl - br)) / 2
	deltaVertical := ((fl - bl) + (fr - br)) / 2

	horizGoal := math32.RadToDeg(math32.Atan(deltaHorizontal / spreadHorizontal))
	vertGoal := math32.RadToDeg(math32.Atan(deltaVertical / spreadFrontBack))

	s.tiltHorizontal.SetGoal(math32.Clamp(horizGoal, s.limitTiltLeft, s.limitTiltRight))
	s.tiltVertical.SetGoal(math32.Clamp(vertGoal, s.limitTiltDown, s.limitTiltUp))
	s.tiltOffset = (fl + fr + bl + br) / 4
}
