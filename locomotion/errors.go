// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package locomotion

import "errors"

// ErrInvalidParameter is returned by setters that require a value in a
// known domain (e.g. a non-negative adjust time, a non-nil tilt mode)
// when given something outside it. No mutation happens when this error
// is returned.
var ErrInvalidParameter = errors.New("locomotion: invalid parameter")

// ErrInvalidFormat is returned by ReadFrom when the stream's version byte
// is unrecognised or the stream is truncated mid-field.
var ErrInvalidFormat = errors.New("locomotion: invalid format")
