// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package aicollider declares the narrow contract the locomotion core
// uses to push its computed velocities onto the actor's physics
// collider. Physics simulation stepping itself is out of scope.
package aicollider

import "github.com/quill3d/locomotion/math32"

// Collider is a borrowed reference to the physics collider attached to
// the actor this locomotion state drives.
type Collider interface {
	SetLinearVelocity(math32.Vector3)
	SetAngularVelocity(math32.Vector3)
}
