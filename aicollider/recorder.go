// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aicollider

import "github.com/quill3d/locomotion/math32"

// Recorder is a Collider that simply remembers the last velocities it was
// given. It exists for tests and for embedding applications without a
// physics engine wired up yet.
type Recorder struct {
	linear  math32.Vector3
	angular math32.Vector3
}

func (r *Recorder) SetLinearVelocity(v math32.Vector3)  { r.linear = v }
func (r *Recorder) SetAngularVelocity(v math32.Vector3) { r.angular = v }

func (r *Recorder) LinearVelocity() math32.Vector3  { return r.linear }
func (r *Recorder) AngularVelocity() math32.Vector3 { return r.angular }
