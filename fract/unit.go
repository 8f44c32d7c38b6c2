package fract

import "math"

import "golang.org/x/image/math/fixed"

// A 26.6 fixed point value: 26 bits for the integer part and 6 bits
// for the fractional part. Where a Millis value of 1000 would be one
// second, a Unit value of 64 is one pixel, and 96 is a pixel and a
// half.
//
// Shaped glyph offsets and advances are given in this unit, and the
// representation is the same as [fixed.Int26_6].
//
// [fixed.Int26_6]: golang.org/x/image/math/fixed.Int26_6
type Unit int32

// One whole pixel.
const One Unit = 64

// Same representation, so this is only a type change.
func FromFixed(value fixed.Int26_6) Unit { return Unit(value) }
func (self Unit) ToFixed() fixed.Int26_6 { return fixed.Int26_6(self) }

// Converts to the closest Unit, rounding half away from zero.
// NaNs, infinites and overflows are not accounted for.
func FromFloat64(value float64) Unit {
	return Unit(math.Round(value*64))
}

func (self Unit) ToFloat64() float64 { return float64(self)/64.0 }
func (self Unit) ToFloat32() float32 { return float32(self)/64.0 }

// Rounds towards negative infinity and returns the integer part.
func (self Unit) ToIntFloor() int { return int(self) >> 6 }

func (self Unit) Floor() Unit { return self & ^0x3F }
func (self Unit) Ceil() Unit { return (self + 0x3F) & ^0x3F }

// Returns the fractional part as a value between 0 and 63, relative
// to the floor. For -0.25 (-16) the result is 0.75 (48).
func (self Unit) FractShift() Unit { return self & 0x3F }
