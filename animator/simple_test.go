// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package animator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleControllerClampsWhenEnabled(t *testing.T) {
	c := NewSimpleController("stance", 0, 1)
	c.SetCurrentValue(5)
	assert.Equal(t, float32(1), c.CurrentValue())
}

func TestSimpleControllerFrozenIgnoresWrites(t *testing.T) {
	c := NewSimpleController("stance", 0, 1)
	c.SetCurrentValue(0.5)
	c.SetFrozen(true)
	c.SetCurrentValue(0.9)
	assert.Equal(t, float32(0.5), c.CurrentValue())
}

func TestSimpleControllerNotifyChangedCounts(t *testing.T) {
	c := NewSimpleController("stance", 0, 1)
	c.NotifyChanged()
	c.NotifyChanged()
	assert.Equal(t, 2, c.ChangedCount())
}

func TestSimpleInstanceOutOfRangeIsNoOp(t *testing.T) {
	inst := NewSimpleInstance(NewSimpleController("a", 0, 1))
	_, ok := inst.Controller(5)
	assert.False(t, ok)
}
