// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package animator declares the narrow contract the locomotion core uses
// to drive an animation-controller graph: a weakly-referenced instance
// exposing indexed controllers. Building and evaluating the animator-rule
// graph itself (animation blending, rule trees, curve-driven rules) is out
// of scope here — only the read/write surface the core touches.
package animator

import (
	"github.com/quill3d/locomotion/math32"
	"github.com/quill3d/locomotion/util/logger"
)

var log = logger.New("ANIMATOR", logger.Default)

// Controller is a single animation-controller value on an animator
// instance, read and written once per frame by a locomotion
// ControllerMapping.
type Controller interface {
	MinValue() float32
	MaxValue() float32
	CurrentValue() float32
	SetCurrentValue(float32)
	VectorValue() math32.Vector3
	SetVectorValue(math32.Vector3)
	Frozen() bool
	Clamp() bool
	Name() string
	// NotifyChanged signals the animator that this controller's value was
	// written this frame, so dependent animator rules re-evaluate.
	NotifyChanged()
}

// Instance is a weak reference to an animator instance: looking up a
// controller by index may fail if the instance was destroyed or the
// index is out of range, in which case callers must treat it as a no-op
// rather than an error.
type Instance interface {
	// Controller returns the controller at index, or ok=false if the
	// instance is stale or index is out of range.
	Controller(index int) (c Controller, ok bool)
}
