// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config builds a locomotion.State from a declarative YAML
// description, for embedding applications that keep per-actor locomotion
// tuning in data files rather than hand-written setter calls.
package config

import (
	"io"
	"io/ioutil"

	"gopkg.in/yaml.v2"

	"github.com/quill3d/locomotion/locomotion"
	"github.com/quill3d/locomotion/util/logger"
)

var log = logger.New("CONFIG", logger.Default)

// Descriptor is the parsed shape of one actor's locomotion YAML
// description. Sub-descriptors left out of the YAML are skipped and keep
// the State default; a sub-descriptor that is present applies all of its
// fields, zero values included. The boolean flags are always applied.
type Descriptor struct {
	CanTurn                         bool `yaml:"can_turn"`
	AlwaysLimitLeftRight            bool `yaml:"always_limit_left_right"`
	TurnAdjustLookHorizontal        bool `yaml:"turn_adjust_look_horizontal"`
	CanTurnInPlace                  bool `yaml:"can_turn_in_place"`
	CanTilt                         bool `yaml:"can_tilt"`
	UpdateAIColliderAngularVelocity bool `yaml:"update_ai_collider_angular_velocity"`

	Looking *LookingDescriptor `yaml:"looking"`
	Moving  *MovingDescriptor  `yaml:"moving"`
	Turn    *TurnDescriptor    `yaml:"turn"`
	TurnIP  *TurnIPDescriptor  `yaml:"turn_in_place"`
	Stance  *StanceDescriptor  `yaml:"stance"`
	Tilt    *TiltDescriptor    `yaml:"tilt"`
}

// LookingDescriptor configures the look-vertical/horizontal limits and
// smoothing.
type LookingDescriptor struct {
	LimitUp      float32 `yaml:"limit_up"`
	LimitDown    float32 `yaml:"limit_down"`
	LimitLeft    float32 `yaml:"limit_left"`
	LimitRight   float32 `yaml:"limit_right"`
	VerticalAdjustTime    float32 `yaml:"vertical_adjust_time"`
	VerticalAdjustRange   float32 `yaml:"vertical_adjust_range"`
	HorizontalAdjustTime  float32 `yaml:"horizontal_adjust_time"`
	HorizontalAdjustRange float32 `yaml:"horizontal_adjust_range"`
}

// MovingDescriptor configures analog-move smoothing.
type MovingDescriptor struct {
	HorizontalAdjustTime  float32 `yaml:"horizontal_adjust_time"`
	HorizontalAdjustRange float32 `yaml:"horizontal_adjust_range"`
	VelocityAdjustTime    float32 `yaml:"velocity_adjust_time"`
	VelocityAdjustRange   float32 `yaml:"velocity_adjust_range"`
}

// TurnDescriptor configures body-orientation response time.
type TurnDescriptor struct {
	AdjustTimeOrientation float32 `yaml:"adjust_time_orientation"`
}

// TurnIPDescriptor configures turn-in-place response time and trigger limits.
type TurnIPDescriptor struct {
	AdjustTime  float32 `yaml:"adjust_time"`
	LimitLeft   float32 `yaml:"limit_left"`
	LimitRight  float32 `yaml:"limit_right"`
}

// StanceDescriptor configures stance smoothing and valid range.
type StanceDescriptor struct {
	AdjustTime  float32 `yaml:"adjust_time"`
	AdjustRange float32 `yaml:"adjust_range"`
	Min         float32 `yaml:"min"`
	Max         float32 `yaml:"max"`
}

// TiltDescriptor configures tilt limits and smoothing. The tilt mode
// itself (which collision tests feed it) is not data-driven: an embedding
// application attaches it in code after Apply runs, via
// (*locomotion.State).SetTiltMode.
type TiltDescriptor struct {
	LimitUp               float32 `yaml:"limit_up"`
	LimitDown             float32 `yaml:"limit_down"`
	LimitLeft             float32 `yaml:"limit_left"`
	LimitRight            float32 `yaml:"limit_right"`
	VerticalAdjustTime    float32 `yaml:"vertical_adjust_time"`
	VerticalAdjustRange   float32 `yaml:"vertical_adjust_range"`
	HorizontalAdjustTime  float32 `yaml:"horizontal_adjust_time"`
	HorizontalAdjustRange float32 `yaml:"horizontal_adjust_range"`
}

// Load reads and parses a Descriptor from r.
func Load(r io.Reader) (*Descriptor, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var d Descriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// Apply drives s's setters from d. Setter validation errors (an invalid
// adjust time, most commonly) are returned immediately; s may be
// partially configured in that case.
func Apply(s *locomotion.State, d *Descriptor) error {
	s.CanTurn = d.CanTurn
	s.AlwaysLimitLeftRight = d.AlwaysLimitLeftRight
	s.TurnAdjustLookHorizontal = d.TurnAdjustLookHorizontal
	s.CanTurnInPlace = d.CanTurnInPlace
	s.CanTilt = d.CanTilt
	s.UpdateAIColliderAngularVelocity = d.UpdateAIColliderAngularVelocity

	if l := d.Looking; l != nil {
		s.SetLimitLookUp(l.LimitUp)
		s.SetLimitLookDown(l.LimitDown)
		s.SetLimitLookLeft(l.LimitLeft)
		s.SetLimitLookRight(l.LimitRight)
		s.SetLookVerticalAdjustTime(l.VerticalAdjustTime)
		s.SetLookVerticalAdjustRange(l.VerticalAdjustRange)
		s.SetLookHorizontalAdjustTime(l.HorizontalAdjustTime)
		s.SetLookHorizontalAdjustRange(l.HorizontalAdjustRange)
	}

	if m := d.Moving; m != nil {
		s.SetAnalogMovingHorizontalAdjustTime(m.HorizontalAdjustTime)
		s.SetAnalogMovingHorizontalAdjustRange(m.HorizontalAdjustRange)
		s.SetLinearVelocityAdjustTime(m.VelocityAdjustTime)
		s.SetLinearVelocityAdjustRange(m.VelocityAdjustRange)
	}

	if t := d.Turn; t != nil {
		if err := s.SetAdjustTimeOrientation(t.AdjustTimeOrientation); err != nil {
			return err
		}
	}

	if t := d.TurnIP; t != nil {
		if err := s.SetAdjustTimeTurnIP(t.AdjustTime); err != nil {
			return err
		}
		s.SetLimitTurnInPlaceLeft(t.LimitLeft)
		s.SetLimitTurnInPlaceRight(t.LimitRight)
	}

	if st := d.Stance; st != nil {
		s.SetStanceAdjustTime(st.AdjustTime)
		s.SetStanceAdjustRange(st.AdjustRange)
		s.SetStanceRange(st.Min, st.Max)
	}

	if t := d.Tilt; t != nil {
		s.SetLimitTiltUp(t.LimitUp)
		s.SetLimitTiltDown(t.LimitDown)
		s.SetLimitTiltLeft(t.LimitLeft)
		s.SetLimitTiltRight(t.LimitRight)
		s.SetTiltVerticalAdjustTime(t.VerticalAdjustTime)
		s.SetTiltVerticalAdjustRange(t.VerticalAdjustRange)
		s.SetTiltHorizontalAdjustTime(t.HorizontalAdjustTime)
		s.SetTiltHorizontalAdjustRange(t.HorizontalAdjustRange)
	}

	log.Debug("applied locomotion config (can_turn=%v can_tilt=%v)", s.CanTurn, s.CanTilt)
	return nil
}
