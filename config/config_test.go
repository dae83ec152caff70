// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quill3d/locomotion/locomotion"
)

const sampleYAML = `
can_turn: true
can_turn_in_place: true
can_tilt: true
looking:
  limit_up: 60
  limit_down: -60
  limit_left: -90
  limit_right: 90
  vertical_adjust_time: 0.2
  horizontal_adjust_time: 0.2
moving:
  velocity_adjust_time: 0.25
turn:
  adjust_time_orientation: 0.3
turn_in_place:
  adjust_time: 1.0
  limit_left: -70
  limit_right: 70
stance:
  adjust_time: 0.5
  min: 0
  max: 1
tilt:
  limit_up: 30
  limit_down: -30
  limit_left: -30
  limit_right: 30
`

func TestLoadAndApply(t *testing.T) {
	d, err := Load(strings.NewReader(sampleYAML))
	assert.NoError(t, err)
	assert.True(t, d.CanTurn)
	assert.NotNil(t, d.Looking)

	s := locomotion.NewState()
	err = Apply(s, d)
	assert.NoError(t, err)

	assert.True(t, s.CanTurn)
	assert.True(t, s.CanTurnInPlace)
	assert.True(t, s.CanTilt)
	assert.Equal(t, float32(60), s.LimitLookUp())
	assert.Equal(t, float32(-90), s.LimitLookLeft())
	assert.Equal(t, float32(0.3), s.AdjustTimeOrientation())
}

func TestApplyRejectsInvalidAdjustTime(t *testing.T) {
	d := &Descriptor{
		Turn: &TurnDescriptor{AdjustTimeOrientation: -1},
	}
	s := locomotion.NewState()
	err := Apply(s, d)
	assert.ErrorIs(t, err, locomotion.ErrInvalidParameter)
}
