// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package locomotion

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/quill3d/locomotion/math32"
	"github.com/quill3d/locomotion/smooth"
)

const formatVersion = 1

const (
	flagCanTurn                  uint16 = 0x1
	flagTurnAdjustLookHorizontal uint16 = 0x2
	flagIsMoving                 uint16 = 0x4
	flagIsTurningIP              uint16 = 0x8
	flagResetTimeTurnIP          uint16 = 0x10
	flagReverseTimeTurnIP        uint16 = 0x20
	flagCanTurnInPlace           uint16 = 0x40
	flagResetTimeWalk            uint16 = 0x80
	flagCanTilt                  uint16 = 0x100
	flagUpdateAIColliderAngVel   uint16 = 0x200
)

// WriteTo encodes s in the little-endian binary layout described by the
// programmatic surface's persistence format and writes it to w. It
// satisfies io.WriterTo.
func (s *State) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}

	writeU8(cw, formatVersion)

	var flags uint16
	if s.CanTurn {
		flags |= flagCanTurn
	}
	if s.TurnAdjustLookHorizontal {
		flags |= flagTurnAdjustLookHorizontal
	}
	if s.isMoving {
		flags |= flagIsMoving
	}
	if s.isTurningIP {
		flags |= flagIsTurningIP
	}
	if s.resetTimeTurnIP {
		flags |= flagResetTimeTurnIP
	}
	if s.reverseTimeTurnIP {
		flags |= flagReverseTimeTurnIP
	}
	if s.CanTurnInPlace {
		flags |= flagCanTurnInPlace
	}
	if s.resetTimeWalk {
		flags |= flagResetTimeWalk
	}
	if s.CanTilt {
		flags |= flagCanTilt
	}
	if s.UpdateAIColliderAngularVelocity {
		flags |= flagUpdateAIColliderAngVel
	}
	writeU16(cw, flags)

	writeF32(cw, s.limitLookUp, s.limitLookDown)
	writeScalar(cw, &s.lookVertical)
	writeF32(cw, s.limitLookLeft, s.limitLookRight)
	writeScalar(cw, &s.lookHorizontal)
	writeScalar(cw, &s.analogMovingHorizontal)
	writeF32(cw, s.turnHorizontal)
	writeF32(cw, s.analogMovingSpeed)
	writeF32(cw, s.adjustTimeOrientation, s.climbLimitAccel)
	writeF32(cw, s.orientation)
	writeF32(cw, s.turningSpeed)
	writeVec3(cw, s.angularVelocity)
	writeF32(cw, s.movingSpeed, s.movingOrientation, s.movingDirection)
	writeVector(cw, &s.linearVelocity)
	writeScalar(cw, &s.stance)
	writeF32(cw, s.adjustTimeTurnIP, s.turnIP)
	writeF32(cw, s.limitTurnInPlaceLeft, s.limitTurnInPlaceRight)
	writeU8(cw, tiltModeTag(s.tiltMode))
	writeF32(cw, s.limitTiltUp, s.limitTiltDown)
	writeScalar(cw, &s.tiltVertical)
	writeF32(cw, s.limitTiltLeft, s.limitTiltRight)
	writeScalar(cw, &s.tiltHorizontal)
	writeF32(cw, s.tiltOffset)

	return cw.n, cw.err
}

// ReadFrom decodes a state written by WriteTo into s, replacing its
// current contents. It satisfies io.ReaderFrom. The orientation
// quaternion is recomputed from the decoded Y-axis orientation rather
// than read from the stream. Controller mappings, the tilt mode's
// collision tests and the AI collider are external borrowed references
// and are not part of the persisted format; callers must re-attach them
// after a read.
func (s *State) ReadFrom(r io.Reader) (int64, error) {
	cr := &countingReader{r: r}

	version := readU8(cr)
	if cr.err == nil && version != formatVersion {
		return cr.n, ErrInvalidFormat
	}

	flags := readU16(cr)
	s.CanTurn = flags&flagCanTurn != 0
	s.TurnAdjustLookHorizontal = flags&flagTurnAdjustLookHorizontal != 0
	s.isMoving = flags&flagIsMoving != 0
	s.isTurningIP = flags&flagIsTurningIP != 0
	s.resetTimeTurnIP = flags&flagResetTimeTurnIP != 0
	s.reverseTimeTurnIP = flags&flagReverseTimeTurnIP != 0
	s.CanTurnInPlace = flags&flagCanTurnInPlace != 0
	s.resetTimeWalk = flags&flagResetTimeWalk != 0
	s.CanTilt = flags&flagCanTilt != 0
	s.UpdateAIColliderAngularVelocity = flags&flagUpdateAIColliderAngVel != 0

	s.limitLookUp, s.limitLookDown = readF32(cr), readF32(cr)
	readScalar(cr, &s.lookVertical)
	s.limitLookLeft, s.limitLookRight = readF32(cr), readF32(cr)
	readScalar(cr, &s.lookHorizontal)
	readScalar(cr, &s.analogMovingHorizontal)
	s.turnHorizontal = readF32(cr)
	s.analogMovingSpeed = readF32(cr)
	s.adjustTimeOrientation, s.climbLimitAccel = readF32(cr), readF32(cr)
	s.orientation = readF32(cr)
	s.turningSpeed = readF32(cr)
	s.angularVelocity = readVec3(cr)
	s.movingSpeed, s.movingOrientation, s.movingDirection = readF32(cr), readF32(cr), readF32(cr)
	readVector(cr, &s.linearVelocity)
	readScalar(cr, &s.stance)
	s.adjustTimeTurnIP, s.turnIP = readF32(cr), readF32(cr)
	s.limitTurnInPlaceLeft, s.limitTurnInPlaceRight = readF32(cr), readF32(cr)
	tag := readU8(cr)
	s.limitTiltUp, s.limitTiltDown = readF32(cr), readF32(cr)
	readScalar(cr, &s.tiltVertical)
	s.limitTiltLeft, s.limitTiltRight = readF32(cr), readF32(cr)
	readScalar(cr, &s.tiltHorizontal)
	s.tiltOffset = readF32(cr)

	if cr.err != nil {
		if cr.err == io.EOF || cr.err == io.ErrUnexpectedEOF {
			return cr.n, ErrInvalidFormat
		}
		return cr.n, cr.err
	}

	s.tiltMode = tiltModeFromTag(tag)
	s.refreshOrientationQuaternion()

	return cr.n, nil
}

func tiltModeTag(m TiltMode) uint8 {
	switch m.(type) {
	case TiltSingle:
		return 1
	case TiltWeighted:
		return 2
	default:
		return 0
	}
}

// tiltModeFromTag reconstructs the tilt mode's shape without its
// collision tests, which are borrowed external references and have no
// persisted representation. Callers re-attach real tests after a read.
func tiltModeFromTag(tag uint8) TiltMode {
	switch tag {
	case 1:
		return TiltSingle{}
	case 2:
		return TiltWeighted{}
	default:
		return TiltNone{}
	}
}

func writeScalar(c *countingWriter, sc *smooth.Scalar) {
	writeF32(c, sc.Value(), sc.Goal(), sc.AdjustRange(), sc.AdjustTime(), sc.ChangeSpeed())
}

func readScalar(c *countingReader, sc *smooth.Scalar) {
	sc.SetValue(readF32(c))
	sc.SetGoal(readF32(c))
	sc.SetAdjustRange(readF32(c))
	sc.SetAdjustTime(readF32(c))
	sc.SetChangeSpeed(readF32(c))
}

func writeVector(c *countingWriter, v *smooth.Vector) {
	writeVec3(c, v.Value())
	writeVec3(c, v.Goal())
	writeF32(c, v.AdjustRange(), v.AdjustTime())
	writeVec3(c, v.ChangeSpeed())
}

func readVector(c *countingReader, v *smooth.Vector) {
	v.SetValue(readVec3(c))
	v.SetGoal(readVec3(c))
	v.SetAdjustRange(readF32(c))
	v.SetAdjustTime(readF32(c))
	v.SetChangeSpeed(readVec3(c))
}

// --- low-level helpers ---------------------------------------------------

type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) write(buf []byte) {
	if c.err != nil {
		return
	}
	var n int
	n, c.err = c.w.Write(buf)
	c.n += int64(n)
}

type countingReader struct {
	r   io.Reader
	n   int64
	err error
}

func (c *countingReader) read(buf []byte) {
	if c.err != nil {
		return
	}
	var n int
	n, c.err = io.ReadFull(c.r, buf)
	c.n += int64(n)
}

func writeU8(c *countingWriter, v uint8) { c.write([]byte{v}) }

func writeU16(c *countingWriter, v uint16) {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	c.write(buf[:])
}

func writeF32(c *countingWriter, vs ...float32) {
	for _, v := range vs {
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], math.Float32bits(v))
		c.write(buf[:])
	}
}

func writeVec3(c *countingWriter, v math32.Vector3) {
	writeF32(c, v.X, v.Y, v.Z)
}

func readU8(c *countingReader) uint8 {
	var buf [1]byte
	c.read(buf[:])
	return buf[0]
}

func readU16(c *countingReader) uint16 {
	var buf [2]byte
	c.read(buf[:])
	return binary.LittleEndian.Uint16(buf[:])
}

func readF32(c *countingReader) float32 {
	var buf [4]byte
	c.read(buf[:])
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[:]))
}

func readVec3(c *countingReader) math32.Vector3 {
	return math32.Vector3{X: readF32(c), Y: readF32(c), Z: readF32(c)}
}
