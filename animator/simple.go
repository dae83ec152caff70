// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package animator

import "github.com/quill3d/locomotion/math32"

// SimpleController is a minimal in-memory Controller, useful for tests and
// for embedding applications that don't yet have a full animator-rule
// graph wired up.
type SimpleController struct {
	name         string
	min, max     float32
	current      float32
	vector       math32.Vector3
	frozen       bool
	clamp        bool
	changedCount int
}

// NewSimpleController creates a controller with the given name and value
// range. Clamp defaults to true, matching a typical animator-controller
// default of keeping its value inside [min, max].
func NewSimpleController(name string, min, max float32) *SimpleController {
	return &SimpleController{name: name, min: min, max: max, clamp: true}
}

func (c *SimpleController) MinValue() float32     { return c.min }
func (c *SimpleController) MaxValue() float32     { return c.max }
func (c *SimpleController) CurrentValue() float32 { return c.current }

func (c *SimpleController) SetCurrentValue(v float32) {
	if c.frozen {
		return
	}
	if c.clamp {
		v = math32.Clamp(v, c.min, c.max)
	}
	c.current = v
}

func (c *SimpleController) VectorValue() math32.Vector3 { return c.vector }

func (c *SimpleController) SetVectorValue(v math32.Vector3) {
	if c.frozen {
		return
	}
	c.vector = v
}

func (c *SimpleController) Frozen() bool { return c.frozen }
func (c *SimpleController) SetFrozen(v bool) {
	c.frozen = v
}

func (c *SimpleController) Clamp() bool { return c.clamp }
func (c *SimpleController) SetClamp(v bool) {
	c.clamp = v
}

func (c *SimpleController) Name() string { return c.name }

func (c *SimpleController) NotifyChanged() {
	c.changedCount++
	log.Debug("controller %q changed (count=%d)", c.name, c.changedCount)
}

// ChangedCount reports how many times NotifyChanged fired, useful in tests
// asserting that a mapping actually touched its controller this tick.
func (c *SimpleController) ChangedCount() int {
	return c.changedCount
}

// SimpleInstance is a minimal in-memory Instance: a flat slice of
// controllers addressed by index, with no weak-reference decay — tests
// that need to exercise the stale-reference no-op path should simply omit
// the index from the slice or use a nil *SimpleInstance, whose Controller
// reports every index as missing.
type SimpleInstance struct {
	controllers []Controller
}

// NewSimpleInstance creates an instance with the given controllers in
// index order.
func NewSimpleInstance(controllers ...Controller) *SimpleInstance {
	return &SimpleInstance{controllers: controllers}
}

func (i *SimpleInstance) Controller(index int) (Controller, bool) {
	if i == nil || index < 0 || index >= len(i.controllers) {
		return nil, false
	}
	return i.controllers[index], true
}
