// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package locomotion

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quill3d/locomotion/aicollider"
	"github.com/quill3d/locomotion/animator"
	"github.com/quill3d/locomotion/collision"
	"github.com/quill3d/locomotion/math32"
)

func TestIdleLook(t *testing.T) {
	s := NewState()
	s.CanTurn = false
	s.SetLimitLookLeft(-90)
	s.SetLimitLookRight(90)
	s.SetLookHorizontalAdjustTime(0.5)
	s.SetLookHorizontalGoal(45)

	s.UpdateLooking(0.1)

	assert.Greater(t, s.LookHorizontal(), float32(0))
	assert.Less(t, s.LookHorizontal(), float32(45))
	s.UpdateLocomotion(0.1)
	assert.Equal(t, float32(0), s.TurningSpeed())
	assert.Equal(t, float32(0), s.Orientation())
}

func TestTurnInPlace(t *testing.T) {
	s := NewState()
	s.CanTurn = true
	s.CanTurnInPlace = true
	s.SetLimitTurnInPlaceRight(70)
	s.SetAdjustTimeTurnIP(1.0)
	s.SetLookHorizontalGoal(100)

	s.UpdateLooking(0.016)
	s.UpdateLocomotion(0.016)

	assert.True(t, s.IsTurningIP())
	assert.InDelta(t, 88.56, s.TurnIP(), 0.1)
	assert.Greater(t, s.Orientation(), float32(0))
}

func TestTurnInPlace_NoRetriggerWhileActive(t *testing.T) {
	s := NewState()
	s.CanTurn = true
	s.CanTurnInPlace = true
	s.SetLimitTurnInPlaceLeft(-70)
	s.SetLimitTurnInPlaceRight(70)
	s.SetAdjustTimeTurnIP(1.0)
	s.SetLookHorizontalGoal(100)

	s.UpdateLooking(0.016)
	s.UpdateLocomotion(0.016)
	assert.True(t, s.IsTurningIP())
	firstTurnIP := s.TurnIP()

	// look goal stays past the same limit on the next tick: must not
	// restart the turn, only continue it.
	s.UpdateLooking(0.016)
	s.UpdateLocomotion(0.016)
	assert.True(t, s.IsTurningIP())
	assert.Less(t, s.TurnIP(), firstTurnIP)
}

func TestStartMoving(t *testing.T) {
	s := NewState()
	s.CanTurn = true
	s.SetLinearVelocityAdjustTime(0.2)
	s.SetAnalogMovingSpeed(3.0)
	s.SetAnalogMovingHorizontalGoal(0)

	s.UpdateLocomotion(0.1)

	assert.True(t, s.IsMoving())
	assert.True(t, s.ResetTimeWalk())
	lv := s.LinearVelocity()
	assert.Greater(t, lv.Z, float32(0))
	assert.Greater(t, s.MovingSpeed(), float32(0))
	assert.InDelta(t, 0, s.MovingDirection(), 1)
}

func TestWeightedTiltFlatGround(t *testing.T) {
	s := NewState()
	s.CanTilt = true
	s.SetAICollider(&aicollider.Recorder{})

	down := math32.NewVector3(0, -1, 0)
	fl := collision.NewFixed(*math32.NewVector3(-1, 2, 1), *down, collision.Contact{Distance: 1, Normal: *math32.NewVector3(0, 1, 0)})
	fr := collision.NewFixed(*math32.NewVector3(1, 2, 1), *down, collision.Contact{Distance: 1, Normal: *math32.NewVector3(0, 1, 0)})
	bl := collision.NewFixed(*math32.NewVector3(-1, 2, -1), *down, collision.Contact{Distance: 1, Normal: *math32.NewVector3(0, 1, 0)})
	br := collision.NewFixed(*math32.NewVector3(1, 2, -1), *down, collision.Contact{Distance: 1, Normal: *math32.NewVector3(0, 1, 0)})

	err := s.SetTiltMode(TiltWeighted{FrontLeft: fl, FrontRight: fr, BackLeft: bl, BackRight: br})
	assert.NoError(t, err)

	s.UpdatePostLocomotion(0.1)

	assert.Equal(t, float32(0), s.tiltVertical.Goal())
	assert.Equal(t, float32(0), s.tiltHorizontal.Goal())
	assert.InDelta(t, 1, s.TiltOffset(), 0.001)
}

func TestSerializationRoundTrip(t *testing.T) {
	s := NewState()
	s.CanTurn = true
	s.CanTurnInPlace = true
	s.CanTilt = true
	s.TurnAdjustLookHorizontal = true
	s.UpdateAIColliderAngularVelocity = true
	s.SetLimitLookLeft(-80)
	s.SetLimitLookRight(80)
	s.SetLimitLookUp(60)
	s.SetLimitLookDown(-60)
	s.SetLookHorizontalAdjustTime(0.3)
	s.SetLookHorizontalGoal(20)
	s.UpdateLooking(0.1)
	s.SetAnalogMovingSpeed(2.5)
	s.SetLinearVelocityAdjustTime(0.25)
	s.SetAdjustTimeOrientation(0.4)
	s.SetAdjustTimeTurnIP(0.8)
	s.SetLimitTurnInPlaceLeft(-60)
	s.SetLimitTurnInPlaceRight(60)
	s.SetLimitTiltUp(30)
	s.SetLimitTiltDown(-30)
	s.SetLimitTiltLeft(-30)
	s.SetLimitTiltRight(30)
	err := s.SetTiltMode(TiltSingle{})
	assert.NoError(t, err)
	s.UpdateLocomotion(0.1)

	var buf bytes.Buffer
	_, err = s.WriteTo(&buf)
	assert.NoError(t, err)

	got := NewState()
	_, err = got.ReadFrom(&buf)
	assert.NoError(t, err)

	assert.Equal(t, s.CanTurn, got.CanTurn)
	assert.Equal(t, s.CanTurnInPlace, got.CanTurnInPlace)
	assert.Equal(t, s.CanTilt, got.CanTilt)
	assert.Equal(t, s.TurnAdjustLookHorizontal, got.TurnAdjustLookHorizontal)
	assert.Equal(t, s.UpdateAIColliderAngularVelocity, got.UpdateAIColliderAngularVelocity)
	assert.InDelta(t, s.LookHorizontal(), got.LookHorizontal(), 0.0001)
	assert.InDelta(t, s.LookHorizontalGoal(), got.LookHorizontalGoal(), 0.0001)
	assert.InDelta(t, s.Orientation(), got.Orientation(), 0.0001)
	assert.InDelta(t, s.MovingSpeed(), got.MovingSpeed(), 0.0001)
	gotLV, wantLV := got.LinearVelocity(), s.LinearVelocity()
	assert.InDelta(t, wantLV.X, gotLV.X, 0.0001)
	assert.InDelta(t, wantLV.Y, gotLV.Y, 0.0001)
	assert.InDelta(t, wantLV.Z, gotLV.Z, 0.0001)
	assert.IsType(t, TiltSingle{}, got.TiltMode())

	got.UpdateLocomotion(0.1)
}

func TestReadFromRejectsUnknownVersion(t *testing.T) {
	buf := bytes.NewBuffer([]byte{99, 0, 0})
	s := NewState()
	_, err := s.ReadFrom(buf)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestCancelMidTurn(t *testing.T) {
	s := NewState()
	s.CanTurn = true
	s.CanTurnInPlace = true
	s.SetLimitTurnInPlaceRight(70)
	s.SetAdjustTimeTurnIP(1.0)
	s.SetLookHorizontalGoal(100)

	s.UpdateLooking(0.016)
	s.UpdateLocomotion(0.016)
	assert.True(t, s.IsTurningIP())

	s.CancelTurnInPlace()
	assert.Equal(t, float32(0), s.TurnIP())
	assert.False(t, s.IsTurningIP())

	before := s.Orientation()
	s.UpdateLooking(0.016)
	s.UpdateLocomotion(0.016)
	assert.False(t, s.IsTurningIP())
	_ = before
}

func TestControllerMappingApplied(t *testing.T) {
	s := NewState()
	c := animator.NewSimpleController("moving_speed", 0, 10)
	inst := animator.NewSimpleInstance(c)
	err := s.AddControllerMapping(inst, 0, MovingSpeed)
	assert.NoError(t, err)

	s.SetAnalogMovingSpeed(2)
	s.CanTurn = true
	s.SetLinearVelocityAdjustTime(0.1)
	s.UpdateLocomotion(0.1)
	s.UpdateAnimatorInstance(0.1)

	assert.Equal(t, s.MovingSpeed(), c.CurrentValue())
	assert.Equal(t, 1, c.ChangedCount())
}

func TestUpdateAIcolliderPushesVelocity(t *testing.T) {
	s := NewState()
	s.CanTurn = true
	s.SetLinearVelocityAdjustTime(0.1)
	s.SetAnalogMovingSpeed(1.5)
	rec := &aicollider.Recorder{}
	s.SetAICollider(rec)

	s.UpdateLocomotion(0.1)
	s.UpdateAIcollider()

	lv := s.LinearVelocity()
	assert.Equal(t, lv, rec.LinearVelocity())
}

func TestApplyStatesTeleports(t *testing.T) {
	s := NewState()
	s.CanTurn = true
	s.SetTurnHorizontal(45)
	s.SetAnalogMovingSpeed(2)

	s.ApplyStates()

	assert.Equal(t, float32(45), s.Orientation())
	assert.Equal(t, float32(0), s.TurnHorizontal())
	assert.False(t, s.IsTurningIP())
	assert.True(t, s.IsMoving())
	assert.Equal(t, s.lookHorizontal.Goal(), s.lookHorizontal.Value())
	assert.Equal(t, float32(0), s.lookHorizontal.ChangeSpeed())
}
